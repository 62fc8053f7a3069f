package vanillatweaks

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/hashicorp/go-getter"
	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"mcpkg.io/mcpkg/pkg/constants"
	"mcpkg.io/mcpkg/pkg/errors"
	"mcpkg.io/mcpkg/pkg/reporter"
)

// Download downloads the bundle at 'link' into the directory 'dstDir'.
// It returns the path of the downloaded file and the file name of the bundle.
func (c *Client) Download(ctx context.Context, link, dstDir string) (string, string, error) {
	filename := bundleFilename(link)
	dst := filepath.Join(dstDir, uuid.NewString()+constants.ZipPathSuffix)

	reporter.ReportMsgTo(fmt.Sprintf("downloading '%s'", filename), c.logWriter)
	getterClient := &getter.Client{
		Ctx:  ctx,
		Src:  link,
		Dst:  dst,
		Mode: getter.ClientModeFile,
		Getters: map[string]getter.Getter{
			"http":  &getter.HttpGetter{Client: c.httpClient, DoNotCheckHeadFirst: true},
			"https": &getter.HttpGetter{Client: c.httpClient, DoNotCheckHeadFirst: true},
		},
		// The bundle is split by the caller, it is never unpacked here.
		Decompressors:    map[string]getter.Decompressor{},
		Detectors:        []getter.Detector{},
		ProgressListener: &progressTracker{logWriter: c.logWriter},
	}
	if err := getterClient.Get(); err != nil {
		os.Remove(dst)
		return "", "", reporter.NewErrorEvent(
			reporter.FailedDownload,
			fmt.Errorf("%w: %v", errors.FailedDownload, err),
			fmt.Sprintf("failed to download '%s'.", link),
		)
	}
	logrus.Debugf("downloaded '%s' to '%s'", link, dst)
	return dst, filename, nil
}

// bundleFilename returns the unescaped last element of the path of 'link'.
func bundleFilename(link string) string {
	u, err := url.Parse(link)
	if err != nil {
		return path.Base(link)
	}
	return path.Base(u.Path)
}

// progressTracker shows a progress bar for every download with a known length.
type progressTracker struct {
	logWriter io.Writer
}

func (t *progressTracker) TrackProgress(src string, currentSize, totalSize int64, stream io.ReadCloser) io.ReadCloser {
	if t.logWriter == nil || totalSize <= 0 {
		return stream
	}
	bar, err := pterm.DefaultProgressbar.
		WithTotal(int(totalSize)).
		WithTitle(src).
		WithWriter(t.logWriter).
		Start()
	if err != nil {
		logrus.Debugf("no progress bar: %v", err)
		return stream
	}
	bar.Add(int(currentSize))
	return &progressReader{ReadCloser: stream, bar: bar}
}

type progressReader struct {
	io.ReadCloser
	bar *pterm.ProgressbarPrinter
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.ReadCloser.Read(p)
	r.bar.Add(n)
	return n, err
}

func (r *progressReader) Close() error {
	_, _ = r.bar.Stop()
	return r.ReadCloser.Close()
}
