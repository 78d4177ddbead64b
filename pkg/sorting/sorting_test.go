package sorting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type rec struct {
	name  string
	power string
}

var records = []rec{
	{name: "Charlie", power: "70"},
	{name: "alice", power: "100"},
	{name: "Bob", power: ""},
	{name: "delta", power: "100"},
	{name: "Echo", power: "null"},
}

func powerCmp() func(a, b rec) int {
	return Numeric(func(r rec) string { return r.power })
}

func nameCmp() func(a, b rec) int {
	return Text(func(r rec) string { return r.name })
}

func TestParseNumberCoercion(t *testing.T) {
	require.Equal(t, 42, ParseNumber("42"))
	require.Equal(t, 42, ParseNumber(" 42 "))
	require.Equal(t, 0, ParseNumber(""))
	require.Equal(t, 0, ParseNumber("null"))
	require.Equal(t, 0, ParseNumber("NULL"))
	require.Equal(t, 0, ParseNumber("not-a-number"))
}

func TestParseDirection(t *testing.T) {
	require.Equal(t, Asc, ParseDirection(""))
	require.Equal(t, Asc, ParseDirection("ascending"))
	require.Equal(t, Desc, ParseDirection("desc"))
	require.Equal(t, Desc, ParseDirection("DESC"))
}

func TestApplyNumericDescending(t *testing.T) {
	out := Apply(records, powerCmp(), Desc, Page{})

	require.Len(t, out, len(records))
	for i := 1; i < len(out); i++ {
		require.GreaterOrEqual(t,
			ParseNumber(out[i-1].power), ParseNumber(out[i].power),
			"sequence must be monotonically non-increasing")
	}
}

func TestApplyStableTieBreak(t *testing.T) {
	// alice and delta both have power 100; input order must survive.
	out := Apply(records, powerCmp(), Desc, Page{})
	require.Equal(t, "alice", out[0].name)
	require.Equal(t, "delta", out[1].name)
}

func TestApplyTextCaseInsensitive(t *testing.T) {
	out := Apply(records, nameCmp(), Asc, Page{})
	require.Equal(t,
		[]string{"alice", "Bob", "Charlie", "delta", "Echo"},
		[]string{out[0].name, out[1].name, out[2].name, out[3].name, out[4].name})
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := make([]rec, len(records))
	copy(before, records)
	_ = Apply(records, nameCmp(), Desc, Page{})
	require.Equal(t, before, records)
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	require.Equal(t, []int{1, 2, 3}, Paginate(items, Page{Limit: 3}))
	require.Equal(t, []int{3, 4, 5}, Paginate(items, Page{Offset: 2}))
	require.Equal(t, []int{3, 4}, Paginate(items, Page{Limit: 2, Offset: 2}))
	require.Equal(t, []int{5}, Paginate(items, Page{Limit: 10, Offset: 4}))
	require.Empty(t, Paginate(items, Page{Offset: 99}))
	require.Equal(t, items, Paginate(items, Page{Offset: -1}))
}

func TestPaginateCountLaw(t *testing.T) {
	items := make([]int, 20)
	for limit := 1; limit <= 5; limit++ {
		for offset := 0; offset+limit <= len(items); offset++ {
			got := Paginate(items, Page{Limit: limit, Offset: offset})
			require.Len(t, got, limit)
		}
	}
}
