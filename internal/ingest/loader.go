package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"github.com/zeebo/xxh3"

	"logreport/config"
	"logreport/internal/model"
	"logreport/internal/parser"
)

// Result is a fully parsed log file.
type Result struct {
	Path    string
	Entries []model.LogEntry
	Bytes   int64
	Digest  string
}

type Loader interface {
	Load(ctx context.Context, path string) (*Result, error)
	LoadReader(ctx context.Context, name string, r io.Reader) (*Result, error)
}

type fileLoader struct {
	parser       parser.LineParser
	maxLineBytes int
}

func NewLoader(cfg *config.Config, p parser.LineParser) Loader {
	return &fileLoader{
		parser:       p,
		maxLineBytes: cfg.Ingest.MaxLineBytes,
	}
}

// Load reads and parses the whole file. Any failure discards everything read so far.
func (l *fileLoader) Load(ctx context.Context, path string) (*Result, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &FileAccessError{Path: path, Err: err}
		}
		return nil, &IOReadError{Path: path, Err: err}
	}
	defer file.Close()

	return l.LoadReader(ctx, path, file)
}

// LoadReader parses r as a log file named name. Zero-length lines, including
// the one after a trailing newline, are skipped; every other line must parse.
func (l *fileLoader) LoadReader(ctx context.Context, name string, r io.Reader) (*Result, error) {
	hasher := xxh3.New()
	counter := &countingWriter{}
	scanner := bufio.NewScanner(io.TeeReader(r, io.MultiWriter(hasher, counter)))
	if l.maxLineBytes > 0 {
		// One extra byte so a line of exactly maxLineBytes still has room for its newline.
		scanner.Buffer(make([]byte, 0, min(l.maxLineBytes+1, 64*1024)), l.maxLineBytes+1)
	}

	var entries []model.LogEntry
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		select {
		case <-ctx.Done():
			log.Info().Str("file", name).Msg("Context cancelled during log ingestion.")
			return nil, ctx.Err()
		default:
		}

		line := scanner.Text()
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, &IOReadError{Path: name, Err: fmt.Errorf("line %d is not valid UTF-8", lineNo)}
		}

		entry, err := l.parser.Parse(line)
		if err != nil {
			log.Debug().Str("file", name).Int("line", lineNo).Msg("Aborting ingestion on malformed line")
			return nil, &LogFormatError{Path: name, Line: lineNo, Content: line, Err: err}
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOReadError{Path: name, Err: err}
	}

	log.Debug().
		Str("file", name).
		Str("size", humanize.Bytes(uint64(counter.n))).
		Str("entries", humanize.Comma(int64(len(entries)))).
		Msg("Ingested log file")

	return &Result{
		Path:    name,
		Entries: entries,
		Bytes:   counter.n,
		Digest:  fmt.Sprintf("%016x", hasher.Sum64()),
	}, nil
}

type countingWriter struct {
	n int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += int64(len(p))
	return len(p), nil
}
