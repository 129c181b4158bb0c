package cli

import (
	"errors"
	"fmt"
	"io"

	"logreport/internal/ingest"
)

// Process exit statuses.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitFileAccess = 2
	ExitIORead     = 3
	ExitLogFormat  = 4
)

// reportError prints the user-facing message for err and returns its exit status.
func reportError(w io.Writer, err error) int {
	status, message := describeError(err)
	fmt.Fprintln(w, message)
	return status
}

func describeError(err error) (int, string) {
	var (
		accessErr *ingest.FileAccessError
		readErr   *ingest.IOReadError
		formatErr *ingest.LogFormatError
	)
	switch {
	case errors.As(err, &accessErr):
		return ExitFileAccess, "File not found."
	case errors.As(err, &formatErr):
		return ExitLogFormat, fmt.Sprintf("Error parsing data: %v", formatErr)
	case errors.As(err, &readErr):
		return ExitIORead, fmt.Sprintf("Error reading file: %v", readErr.Err)
	default:
		return ExitFailure, fmt.Sprintf("Error: %v", err)
	}
}
