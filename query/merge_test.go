package query_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/urikit/query"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		base, add *query.Map
		dup       bool
		want      string
	}{
		{"both nil", nil, nil, false, ""},
		{"nil add", query.Parse("a=1"), nil, true, "a=1"},
		{"nil base", nil, query.Parse("a=1"), true, "a=1"},
		{"override", query.Parse("year=2023"), query.Parse("year=2024"), false, "year=2024"},
		{"accumulate", query.Parse("year=2023"), query.Parse("year=2024&sort=asc"), true, "year=2023&year=2024&sort=asc"},
		{"override keeps position", query.Parse("a=1&b=2"), query.Parse("c=3&a=4"), false, "a=4&b=2&c=3"},
		{"accumulate sequences", query.Parse("a=1&a=2"), query.Parse("a=3&a=4"), true, "a=1&a=2&a=3&a=4"},
		{"override sequence with scalar", query.Parse("a=1&a=2"), query.Parse("a=3"), false, "a=3"},
		{"accumulate new key stays scalar", query.Parse("a=1"), query.Parse("b=2"), true, "a=1&b=2"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := query.Build(query.Merge(c.base, c.add, c.dup), true); got != c.want {
				t.Errorf("query.Merge(%v, %v, %v) = %q, want %q", c.base, c.add, c.dup, got, c.want)
			}
		})
	}
}

func TestMerge_Immutable(t *testing.T) {
	t.Parallel()

	base := query.Parse("a=1&a=2")
	add := query.Parse("a=3")
	res := query.Merge(base, add, true)
	res.Add("a", "4")

	if diff := cmp.Diff(base, query.Parse("a=1&a=2")); diff != "" {
		t.Errorf("base changed\ndiff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(add, query.Parse("a=3")); diff != "" {
		t.Errorf("add changed\ndiff (-got +want):\n%v", diff)
	}
}
