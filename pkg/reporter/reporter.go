// Copyright 2026 The mcpkg Authors. All rights reserved.

package reporter

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Init the log.
// With 'verbose' the debug diagnostics are printed to stderr.
func InitReporter(verbose bool) {
	log.SetFlags(0)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

// Fatal prints to the logger and exit with 1.
// Arguments are handled in the manner of fmt.Println.
func Fatal(v ...any) {
	log.Fatal(v...)
}

// Event is the interface that specifies the event used to show logs to users.
type Event interface {
	Event() string
}

type EventType int

const (
	Default EventType = iota

	// errors event type means the event is an error.
	VendorRequestFailed
	MalformedCatalog
	FailedFetchCatalog
	FailedLoadPackDB
	FailedStorePackDB
	FailedLoadSettings
	FailedAccessHomePath
	FailedDownload
	FailedSplitBundle
	UnparsablePackFilename
	PackNotFound
	FailedInstall
	FailedLoadInstalled
	InvalidCmd
	Bug

	// normal event type means the event is a normal event.
	WaitingLock
	FetchingCatalog
	FetchComplete
	Downloading
	Installing
	Installed
	UpToDate
	NotInstalled
	CanBeUpdated
	NoLocalCache
	PipeDetected
)

// McpkgEvent is the event used to show mcpkg logs to users.
type McpkgEvent struct {
	errType EventType
	msg     string
	err     error
}

// Type returns the event type.
func (e *McpkgEvent) Type() EventType {
	return e.errType
}

// Error makes McpkgEvent can be used as an error.
func (e *McpkgEvent) Error() string {
	result := ""
	if e.msg != "" {
		// append msg
		result = fmt.Sprintf("%s\n", e.msg)
	}
	if e.err != nil {
		result = fmt.Sprintf("%s%s\n", result, e.err.Error())
	}
	return result
}

// Unwrap returns the wrapped error, so that errors.Is can match the sentinel errors.
func (e *McpkgEvent) Unwrap() error {
	return e.err
}

// Event returns the msg of the event without error message.
func (e *McpkgEvent) Event() string {
	if e.msg != "" {
		return fmt.Sprintf("%s\n", e.msg)
	}
	return ""
}

// NewErrorEvent returns a new McpkgEvent with error.
func NewErrorEvent(errType EventType, err error, args ...string) *McpkgEvent {
	return &McpkgEvent{
		errType: errType,
		msg:     strings.Join(args, ""),
		err:     err,
	}
}

// NewEvent returns a new McpkgEvent without error.
func NewEvent(errType EventType, args ...string) *McpkgEvent {
	return &McpkgEvent{
		errType: errType,
		msg:     strings.Join(args, ""),
		err:     nil,
	}
}

// ReportEventTo reports the event to users to 'w'.
func ReportEventTo(event *McpkgEvent, w io.Writer) {
	if w != nil {
		fmt.Fprintf(w, "%v", event.Event())
	}
}

func ReportMsgTo(msg string, w io.Writer) {
	if w != nil {
		fmt.Fprintf(w, "%s\n", msg)
	}
}
