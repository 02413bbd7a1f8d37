package engine

import (
	"cmp"
	"encoding/json"
	"slices"
)

// Histogram maps each rune to the number of times it occurred.
// Runes that never occurred are absent; counts are always positive.
type Histogram map[rune]int

// Entry is a single rune and its count.
type Entry struct {
	Char  rune
	Count int
}

// MarshalJSON encodes the entry as {"char":"a","count":2}.
func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Char  string `json:"char"`
		Count int    `json:"count"`
	}{string(e.Char), e.Count})
}

// Sequential counts every rune of every line in a single pass on the
// calling goroutine.
func Sequential(lines []string) Histogram {
	h := make(Histogram)
	for _, line := range lines {
		for _, r := range line {
			h[r]++
		}
	}
	return h
}

// Total returns the sum of all counts.
func (h Histogram) Total() int {
	total := 0
	for _, n := range h {
		total += n
	}
	return total
}

// Merge adds the counts of other into h.
func (h Histogram) Merge(other Histogram) {
	for r, n := range other {
		h[r] += n
	}
}

// MergeAll sums the given histograms into a new one. Nil parts are skipped.
func MergeAll(parts ...Histogram) Histogram {
	size := 0
	for _, p := range parts {
		size = max(size, len(p))
	}

	out := make(Histogram, size)
	for _, p := range parts {
		out.Merge(p)
	}
	return out
}

// Equal reports whether h and other hold the same rune counts.
func (h Histogram) Equal(other Histogram) bool {
	if len(h) != len(other) {
		return false
	}
	for r, n := range h {
		if m, ok := other[r]; !ok || m != n {
			return false
		}
	}
	return true
}

// Entries returns every rune and count ordered by count descending, then
// rune ascending, so the order is stable across runs.
func (h Histogram) Entries() []Entry {
	entries := make([]Entry, 0, len(h))
	for r, n := range h {
		entries = append(entries, Entry{Char: r, Count: n})
	}
	slices.SortFunc(entries, func(a, b Entry) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Char, b.Char)
	})
	return entries
}

// Top returns the n most frequent entries in Entries order.
func (h Histogram) Top(n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	entries := h.Entries()
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
