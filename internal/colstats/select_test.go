package colstats

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fruit = Table{"apple": 5, "banana": 9, "cherry": 9, "date": 1}

func TestRank(t *testing.T) {
	expected := []Entry{{"banana", 9}, {"cherry", 9}, {"apple", 5}, {"date", 1}}
	assert.Equal(t, expected, Rank(fruit))
}

func TestSelect(t *testing.T) {
	tests := []struct {
		n        int
		expected []Entry
	}{
		{-1, []Entry{}},
		{0, []Entry{}},
		{1, []Entry{{"banana", 9}}},
		{2, []Entry{{"banana", 9}, {"cherry", 9}}},
		{3, []Entry{{"apple", 5}, {"banana", 9}, {"cherry", 9}}},
		{10000, []Entry{{"apple", 5}, {"banana", 9}, {"cherry", 9}, {"date", 1}}},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("n=%d", tc.n), func(t *testing.T) {
			assert.Equal(t, tc.expected, Select(fruit, tc.n))
		})
	}
}

func TestSelectDoesNotMutate(t *testing.T) {
	table := Table{"b": 2, "a": 1}
	ranked := Rank(table)
	_ = Select(table, 1)
	_ = SortByWord(ranked)
	_ = Truncate(ranked, 1)

	assert.Equal(t, Table{"b": 2, "a": 1}, table)
	assert.Equal(t, []Entry{{"b", 2}, {"a", 1}}, ranked)
}

func randomTable(rnd *rand.Rand, size int) Table {
	t := make(Table, size)
	for len(t) < size {
		t[fmt.Sprintf("w%05d", rnd.Intn(size*10))] = rnd.Intn(20)
	}
	return t
}

func TestSelectProperties(t *testing.T) {
	const seed = 12345
	rnd := rand.New(rand.NewSource(seed))

	for i := 0; i < 50; i++ {
		table := randomTable(rnd, 1+rnd.Intn(200))
		n := rnd.Intn(250)

		got := Select(table, n)
		require.Equal(t, got, Select(table, n), "deterministic")

		size := n
		if len(table) < size {
			size = len(table)
		}
		require.Len(t, got, size)

		require.True(t, sort.SliceIsSorted(got, func(i, j int) bool {
			return got[i].Word < got[j].Word
		}), "sorted by word")

		kept := make(map[string]bool, len(got))
		minKept := -1
		for _, e := range got {
			count, ok := table[e.Word]
			require.True(t, ok, "fabricated %q", e.Word)
			require.Equal(t, count, e.Count)
			kept[e.Word] = true
			if minKept < 0 || e.Count < minKept {
				minKept = e.Count
			}
		}

		for w, c := range table {
			if kept[w] || len(got) == 0 {
				continue
			}
			require.LessOrEqual(t, c, minKept, "%q left out", w)
			if c == minKept {
				// boundary ties are cut by word
				for _, e := range got {
					if e.Count == minKept {
						require.Less(t, e.Word, w)
					}
				}
			}
		}
	}
}
