// Package report renders log reports as an aligned text table or as
// structured documents.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"logreport/internal/aggregator"
)

const columnSeparator = " | "

// TableRenderer writes the two-column level/count table followed by the
// matched lines. Widths are measured in terminal cells.
type TableRenderer struct {
	LevelHeader string
	CountHeader string
	// Style, when set, decorates each padded level cell. It must not change
	// the visible width.
	Style func(level, cell string) string

	cond *runewidth.Condition
}

func NewTableRenderer(levelHeader, countHeader string) *TableRenderer {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return &TableRenderer{
		LevelHeader: levelHeader,
		CountHeader: countHeader,
		cond:        cond,
	}
}

// Render writes the table. With matched lines, the closing rule is as wide as
// the last line; without, it is as wide as the header row.
func (r *TableRenderer) Render(w io.Writer, counts aggregator.Counts, lines []string) error {
	items := counts.Items()
	values := make([]string, len(items))

	levelWidth := r.width(r.LevelHeader)
	countWidth := r.width(r.CountHeader)
	for i, item := range items {
		values[i] = strconv.Itoa(item.Count)
		levelWidth = max(levelWidth, r.width(item.Level))
		countWidth = max(countWidth, r.width(values[i]))
	}

	header := r.fillRight(r.LevelHeader, levelWidth) + columnSeparator + r.fillLeft(r.CountHeader, countWidth)
	rule := strings.Repeat("-", r.width(header))

	var b strings.Builder
	b.WriteString(header + "\n")
	b.WriteString(rule + "\n")
	for i, item := range items {
		cell := r.fillRight(item.Level, levelWidth)
		if r.Style != nil {
			cell = r.Style(item.Level, cell)
		}
		b.WriteString(cell + columnSeparator + r.fillLeft(values[i], countWidth) + "\n")
	}

	if len(lines) > 0 {
		for _, line := range lines {
			b.WriteString(line + "\n")
		}
		rule = strings.Repeat("-", r.width(lines[len(lines)-1]))
	}
	b.WriteString(rule + "\n")

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write report table: %w", err)
	}
	return nil
}

// RenderString returns the table as a string.
func (r *TableRenderer) RenderString(counts aggregator.Counts, lines []string) string {
	var b strings.Builder
	_ = r.Render(&b, counts, lines)
	return b.String()
}

func (r *TableRenderer) width(s string) int {
	return r.condition().StringWidth(s)
}

func (r *TableRenderer) fillLeft(s string, w int) string {
	return r.condition().FillLeft(s, w)
}

func (r *TableRenderer) fillRight(s string, w int) string {
	return r.condition().FillRight(s, w)
}

func (r *TableRenderer) condition() *runewidth.Condition {
	if r.cond == nil {
		r.cond = runewidth.NewCondition()
		r.cond.EastAsianWidth = false
	}
	return r.cond
}
