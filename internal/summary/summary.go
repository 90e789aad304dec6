// Package summary aggregates loaded records by their level field.
package summary

import (
	"sort"

	"logsum/internal/model"
)

// LevelCount pairs a level name with its record count.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// Summary holds per-level record counts for one loaded collection.
// The sum of all counts equals the length of the source collection.
type Summary struct {
	counts map[string]int
}

// Summarize counts records grouped by level. Order of the input does not
// affect the result.
func Summarize(records model.Collection) Summary {
	counts := make(map[string]int)
	for _, rec := range records {
		counts[rec.Level()]++
	}
	return Summary{counts: counts}
}

// IsEmpty reports whether no records were counted.
func (s Summary) IsEmpty() bool {
	return len(s.counts) == 0
}

// Count returns the number of records seen for level.
func (s Summary) Count(level string) int {
	return s.counts[level]
}

// Total returns the number of records across all levels.
func (s Summary) Total() int {
	total := 0
	for _, count := range s.counts {
		total += count
	}
	return total
}

// Levels returns the distinct level names sorted lexicographically.
func (s Summary) Levels() []string {
	levels := make([]string, 0, len(s.counts))
	for level := range s.counts {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	return levels
}

// Sorted returns level counts sorted lexicographically by level name.
func (s Summary) Sorted() []LevelCount {
	entries := make([]LevelCount, 0, len(s.counts))
	for _, level := range s.Levels() {
		entries = append(entries, LevelCount{Level: level, Count: s.counts[level]})
	}
	return entries
}
