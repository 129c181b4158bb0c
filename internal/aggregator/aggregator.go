// Package aggregator reduces parsed log entries into per-level counts.
package aggregator

import "logreport/internal/model"

// LevelCount is one row of a Counts table.
type LevelCount struct {
	Level string `json:"level" yaml:"level"`
	Count int    `json:"count" yaml:"count"`
}

// Counts maps level tokens to occurrence counts, iterating in first-seen order.
// A Counts is only built by Aggregate and is read-only afterwards.
type Counts struct {
	items []LevelCount
	index map[string]int
}

// Aggregate counts entries by their exact level token. Every call returns a new
// Counts; nothing is shared with earlier results.
func Aggregate(entries []model.LogEntry) Counts {
	c := Counts{index: make(map[string]int)}
	for _, entry := range entries {
		i, ok := c.index[entry.Level]
		if !ok {
			i = len(c.items)
			c.index[entry.Level] = i
			c.items = append(c.items, LevelCount{Level: entry.Level})
		}
		c.items[i].Count++
	}
	return c
}

// Len returns the number of distinct levels.
func (c Counts) Len() int { return len(c.items) }

// Get returns the count for an exact level token.
func (c Counts) Get(level string) (int, bool) {
	i, ok := c.index[level]
	if !ok {
		return 0, false
	}
	return c.items[i].Count, true
}

// Levels returns the level tokens in first-seen order.
func (c Counts) Levels() []string {
	levels := make([]string, len(c.items))
	for i, item := range c.items {
		levels[i] = item.Level
	}
	return levels
}

// Items returns a copy of the rows in first-seen order.
func (c Counts) Items() []LevelCount {
	items := make([]LevelCount, len(c.items))
	copy(items, c.items)
	return items
}

// Total is the sum of all counts.
func (c Counts) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Count
	}
	return total
}
