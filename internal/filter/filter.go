package filter

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog/log"

	"logreport/internal/aggregator"
	"logreport/internal/model"
)

// maxSuggestDistance bounds how far a requested level may be from a known one
// before no suggestion is offered.
const maxSuggestDistance = 2

// Result is the outcome of filtering one parsed log by level.
type Result struct {
	Requested  string   `json:"requested,omitempty" yaml:"requested,omitempty"`
	Level      string   `json:"level,omitempty" yaml:"level,omitempty"`
	Lines      []string `json:"lines" yaml:"lines"`
	Diagnostic string   `json:"diagnostic,omitempty" yaml:"diagnostic,omitempty"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Apply selects the entries whose level matches requested. The lookup against
// the keys of counts is case-insensitive, but it resolves to a single concrete
// key (the first one seen) and only entries carrying exactly that key match.
// An unknown level is not an error: it produces a Diagnostic and no lines.
func Apply(entries []model.LogEntry, counts aggregator.Counts, requested string) Result {
	requested = strings.TrimSpace(requested)
	result := Result{Requested: requested, Lines: []string{}}
	if requested == "" {
		return result
	}

	key, ok := MatchLevel(counts, requested)
	if !ok {
		result.Diagnostic = fmt.Sprintf("invalid level: %s", requested)
		result.Suggestion = suggest(counts, requested)
		log.Info().
			Str("requested", requested).
			Str("suggestion", result.Suggestion).
			Strs("known_levels", counts.Levels()).
			Msg("Requested level not present in log")
		return result
	}

	result.Level = key
	for _, entry := range entries {
		if entry.Level == key {
			result.Lines = append(result.Lines, entry.String())
		}
	}
	log.Debug().Str("level", key).Int("matched", len(result.Lines)).Msg("Filtered entries by level")
	return result
}

// MatchLevel resolves requested to the first key of counts with the same
// uppercase form.
func MatchLevel(counts aggregator.Counts, requested string) (string, bool) {
	want := strings.ToUpper(requested)
	for _, level := range counts.Levels() {
		if strings.ToUpper(level) == want {
			return level, true
		}
	}
	return "", false
}

func suggest(counts aggregator.Counts, requested string) string {
	want := strings.ToUpper(requested)
	best, bestDist := "", maxSuggestDistance+1
	for _, level := range counts.Levels() {
		d := levenshtein.ComputeDistance(want, strings.ToUpper(level))
		if d < bestDist {
			best, bestDist = level, d
		}
	}
	return best
}
