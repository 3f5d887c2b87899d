package colstats

import "sort"

// Entry is a word and its count.
type Entry struct {
	Word  string
	Count int
}

// Rank returns every entry of t, highest count first. Equal counts are
// ordered by word so the result does not depend on map iteration order.
func Rank(t Table) []Entry {
	entries := make([]Entry, 0, len(t))
	for w, c := range t {
		entries = append(entries, Entry{Word: w, Count: c})
	}

	less := func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			// Sort in reverse order
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	}
	sort.Slice(entries, less)
	return entries
}

// Truncate returns a copy of the first n entries.
func Truncate(entries []Entry, n int) []Entry {
	if n <= 0 {
		return []Entry{}
	}
	if n > len(entries) {
		n = len(entries)
	}

	out := make([]Entry, n)
	copy(out, entries[:n])
	return out
}

// SortByWord returns a copy of entries in ascending word order.
func SortByWord(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Word < out[j].Word
	})
	return out
}

// Select returns the n most frequent entries of t sorted by word.
func Select(t Table, n int) []Entry {
	return SortByWord(Truncate(Rank(t), n))
}
