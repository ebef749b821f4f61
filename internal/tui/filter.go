package tui

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Filter returns the indices of lines matching query, in display order.
// An empty query matches every line in its original order.
type Filter func(query string, lines []string) []int

// FuzzyFilter ranks lines by fuzzy match score, best first
func FuzzyFilter(query string, lines []string) []int {
	if query == "" {
		return allLines(lines)
	}
	matches := fuzzy.Find(query, lines)
	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.Index
	}
	return out
}

// SubstringFilter keeps lines containing query, ignoring case
func SubstringFilter(query string, lines []string) []int {
	if query == "" {
		return allLines(lines)
	}
	q := strings.ToLower(query)
	var out []int
	for i, l := range lines {
		if strings.Contains(strings.ToLower(l), q) {
			out = append(out, i)
		}
	}
	return out
}

func allLines(lines []string) []int {
	out := make([]int, len(lines))
	for i := range lines {
		out[i] = i
	}
	return out
}
