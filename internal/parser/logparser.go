package parser

import (
	"errors"
	"fmt"
	"regexp"

	"logreport/internal/model"

	"github.com/rs/zerolog/log"
)

var ErrInvalidFormat = errors.New("invalid log format")

type LineParser interface {
	Parse(line string) (model.LogEntry, error)
}

type regexLineParser struct {
	logRegex *regexp.Regexp
}

func NewLineParser() LineParser {
	// Groups: 1:Timestamp, 2:Level, 3:Message (may be empty, separator is not)
	regex := regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}) (\S+) (.*)$`)
	return &regexLineParser{logRegex: regex}
}

func (p *regexLineParser) Parse(line string) (model.LogEntry, error) {
	matches := p.logRegex.FindStringSubmatch(line)
	if len(matches) != 4 {
		log.Trace().Str("line", line).Msg("Log line did not match expected format")
		return model.LogEntry{}, fmt.Errorf("%w: %q", ErrInvalidFormat, line)
	}

	return model.LogEntry{
		Timestamp: matches[1],
		Level:     matches[2],
		Message:   matches[3],
	}, nil
}
