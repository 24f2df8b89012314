package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// noRuns is a diagonal pattern with no three equal neighbours in any line
var noRuns = []string{
	"ABCDEFAB",
	"BCDEFABC",
	"CDEFABCD",
	"DEFABCDE",
	"EFABCDEF",
	"FABCDEFA",
	"ABCDEFAB",
	"BCDEFABC",
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		want  []Coord
		count int
	}{
		{
			name:  "no runs",
			rows:  noRuns,
			count: 0,
		},
		{
			name: "horizontal three",
			rows: []string{
				"AAABCDEF",
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
				"EFABCDEF",
				"FABCDEFA",
				"ABCDEFAB",
				"BCDEFABC",
			},
			want:  []Coord{At(0, 0), At(0, 1), At(0, 2)},
			count: 3,
		},
		{
			name: "vertical run at bottom edge",
			rows: []string{
				"ABCDEFAB",
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
				"EFABCDEF",
				"FABCDEFD",
				"ABCDEFAD",
				"BCDEFABD",
			},
			want:  []Coord{At(5, 7), At(6, 7), At(7, 7)},
			count: 3,
		},
		{
			name: "full row counted once",
			rows: []string{
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
				"AAAAAAAA",
				"EFABCDEF",
				"FABCDEFA",
				"BCDEFABC",
				"CDEFABCD",
			},
			count: 8,
		},
		{
			name: "cross shares the centre cell",
			rows: []string{
				"BCDEFABC",
				"CDEAFBCD",
				"DEAAAFDE",
				"EFBABCEF",
				"FABCDEFA",
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
			},
			want:  []Coord{At(1, 3), At(2, 2), At(2, 3), At(2, 4), At(3, 3)},
			count: 5,
		},
		{
			name: "two is not a run",
			rows: []string{
				"AABCDEFA",
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
				"EFABCDEF",
				"FABCDEFA",
				"ABCDEFAB",
				"BCDEFABC",
			},
			count: 0,
		},
		{
			name: "empty cells never match",
			rows: []string{
				"...ABCDE",
				".BCDEFAB",
				".CDEFABC",
				"DEFABCDE",
				"EFABCDEF",
				"FABCDEFA",
				"ABCDEFAB",
				"BCDEFABC",
			},
			count: 0,
		},
		{
			name: "run split by empty cell",
			rows: []string{
				"AA.AABCD",
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
				"EFABCDEF",
				"FABCDEFA",
				"ABCDEFAB",
				"BCDEFABC",
			},
			count: 0,
		},
		{
			name: "run of four",
			rows: []string{
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
				"EFABCDEF",
				"FABCCCCA",
				"BCDEFABC",
				"CDEFABCD",
				"DEFABCDE",
			},
			want:  []Coord{At(4, 3), At(4, 4), At(4, 5), At(4, 6)},
			count: 4,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := MustFromRows(tc.rows...)
			m := b.FindMatches()

			assert.Equal(t, tc.count, m.Len())
			assert.Equal(t, tc.count == 0, m.Empty())
			assert.Equal(t, tc.count != 0, b.HasMatch())
			if tc.want != nil {
				assert.Equal(t, tc.want, m.Coords())
				for _, c := range tc.want {
					assert.True(t, m.Contains(c), "missing %v", c)
				}
			}
		})
	}
}

func TestFindMatchesOrderIndependent(t *testing.T) {
	b := MustFromRows(
		"AAABBBCC",
		"DEFDCEFA",
		"AFDCEFDB",
		"ABBBFDEC",
		"AEFDCEFC",
		"FDCEDFAC",
		"BCDEFABD",
		"CDEFABCE",
	)
	m := b.FindMatches()

	// Two runs in row 0, one in row 3, one in column 0 and one in column 7
	assert.Equal(t, 6+3+3+3, m.Len())
	assert.True(t, m.Contains(At(0, 5)))
	assert.False(t, m.Contains(At(0, 6)))
	assert.True(t, m.Contains(At(3, 2)))
	assert.True(t, m.Contains(At(4, 0)))
	assert.True(t, m.Contains(At(5, 7)))
	assert.False(t, m.Contains(At(-1, 0)))
}
