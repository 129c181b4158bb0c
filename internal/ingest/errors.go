package ingest

import "fmt"

// FileAccessError reports that the requested log file does not exist.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// IOReadError reports a file that exists but could not be read.
type IOReadError struct {
	Path string
	Err  error
}

func (e *IOReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *IOReadError) Unwrap() error { return e.Err }

// LogFormatError reports the first line that failed to parse. Line is 1-based.
type LogFormatError struct {
	Path    string
	Line    int
	Content string
	Err     error
}

func (e *LogFormatError) Error() string {
	return fmt.Sprintf("line %d: invalid log format: %q", e.Line, e.Content)
}

func (e *LogFormatError) Unwrap() error { return e.Err }
