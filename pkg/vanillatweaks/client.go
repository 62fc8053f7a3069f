// Package vanillatweaks talks to the VanillaTweaks website,
// it fetches the catalogs and downloads the requested packs.
package vanillatweaks

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/constants"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/pack"
	"mcpkg.io/mcpkg/pkg/reporter"
)

// catalogPrefix is the file name prefix of the category listing of each pack type.
var catalogPrefix = map[pack.PackType]string{
	pack.Datapack:      "dp",
	pack.CraftingTweak: "ct",
	pack.ResourcePack:  "rp",
}

// Client is the client of the VanillaTweaks website.
type Client struct {
	baseUrl     string
	gameVersion string
	httpClient  *http.Client
	logWriter   io.Writer
}

type Option func(*Client)

// WithBaseUrl sets the url of the website, e.g. 'https://vanillatweaks.net'.
func WithBaseUrl(baseUrl string) Option {
	return func(c *Client) {
		c.baseUrl = strings.TrimSuffix(baseUrl, "/")
	}
}

// WithGameVersion sets the game version the catalogs and packs are requested for.
func WithGameVersion(gameVersion string) Option {
	return func(c *Client) {
		c.gameVersion = gameVersion
	}
}

// WithTimeout bounds every request, zero disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogWriter sets the writer of the download progress.
func WithLogWriter(logWriter io.Writer) Option {
	return func(c *Client) {
		c.logWriter = logWriter
	}
}

func NewClient(opts ...Option) *Client {
	httpClient := cleanhttp.DefaultPooledClient()
	httpClient.Timeout = constants.DefaultTimeout * time.Second

	c := &Client{
		baseUrl:     constants.DefaultBaseUrl,
		gameVersion: constants.DefaultGameVersion,
		httpClient:  httpClient,
		logWriter:   os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CatalogUrl returns the url of the category listing of 'packType'.
func (c *Client) CatalogUrl(packType pack.PackType) string {
	return fmt.Sprintf(constants.CategoryUrlPattern, c.baseUrl, c.gameVersion, catalogPrefix[packType])
}

// DownloadRequestUrl returns the url packs of 'packType' are requested from.
func (c *Client) DownloadRequestUrl(packType pack.PackType) string {
	return fmt.Sprintf(constants.ZipRequestPattern, c.baseUrl, packType)
}

// FetchCatalog fetches the category listing of 'packType'. The caller closes the returned body.
func (c *Client) FetchCatalog(ctx context.Context, packType pack.PackType) (io.ReadCloser, error) {
	if _, ok := catalogPrefix[packType]; !ok {
		return nil, reporter.NewErrorEvent(reporter.Bug, errors.InternalBug, fmt.Sprintf("no catalog for pack type '%s'.", packType))
	}

	catalogUrl := c.CatalogUrl(packType)
	logrus.Debugf("fetching '%s'", catalogUrl)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, catalogUrl, nil)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedFetchCatalog, err, fmt.Sprintf("failed to fetch '%s'.", catalogUrl))
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, reporter.NewErrorEvent(reporter.FailedFetchCatalog, err, fmt.Sprintf("failed to fetch '%s'.", catalogUrl))
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, reporter.NewErrorEvent(
			reporter.FailedFetchCatalog,
			fmt.Errorf("unexpected status '%s'", resp.Status),
			fmt.Sprintf("failed to fetch '%s'.", catalogUrl),
		)
	}
	return resp.Body, nil
}

// downloadResponse is the answer to a download request.
type downloadResponse struct {
	Status  string `json:"status"`
	Link    string `json:"link"`
	Message string `json:"message"`
}

// RequestDownload asks the website to bundle 'packs' and returns the url of the bundle.
// All packs must be of 'packType'.
func (c *Client) RequestDownload(ctx context.Context, packType pack.PackType, packs []*pack.Pack) (string, error) {
	request := map[string][]string{}
	for _, p := range packs {
		if p.Type != packType {
			return "", reporter.NewErrorEvent(
				reporter.Bug,
				errors.InternalBug,
				fmt.Sprintf("'%s' is a %s, it can not be requested as a %s.", p.Id, p.Type, packType),
			)
		}
		request[p.Category] = append(request[p.Category], p.RemoteName)
	}
	packsJson, err := json.Marshal(request)
	if err != nil {
		return "", reporter.NewErrorEvent(reporter.Bug, err, "failed to encode the download request.")
	}

	form := url.Values{}
	form.Set("packs", string(packsJson))
	form.Set("version", c.gameVersion)

	requestUrl := c.DownloadRequestUrl(packType)
	logrus.Debugf("sending request '%s' to '%s'", form.Encode(), requestUrl)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestUrl, strings.NewReader(form.Encode()))
	if err != nil {
		return "", reporter.NewErrorEvent(reporter.VendorRequestFailed, err, fmt.Sprintf("failed to request packs from '%s'.", requestUrl))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", reporter.NewErrorEvent(reporter.VendorRequestFailed, err, fmt.Sprintf("failed to request packs from '%s'.", requestUrl))
	}
	defer resp.Body.Close()

	var res downloadResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", reporter.NewErrorEvent(
			reporter.VendorRequestFailed,
			fmt.Errorf("%w: %v", errors.VendorRequest, err),
			fmt.Sprintf("unexpected response from '%s' (%s).", requestUrl, resp.Status),
		)
	}
	if res.Status == "error" {
		return "", reporter.NewErrorEvent(
			reporter.VendorRequestFailed,
			fmt.Errorf("%w: %s", errors.VendorRequest, res.Message),
			fmt.Sprintf("couldn't get packs, response from '%s':", requestUrl),
		)
	}
	if res.Link == "" {
		return "", reporter.NewErrorEvent(
			reporter.VendorRequestFailed,
			fmt.Errorf("%w: no download link", errors.VendorRequest),
			fmt.Sprintf("unexpected response from '%s'.", requestUrl),
		)
	}

	link := c.baseUrl + res.Link
	logrus.Debugf("got '%s'", link)
	return link, nil
}
