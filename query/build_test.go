package query_test

import (
	"testing"

	"github.com/ghettovoice/urikit/internal/util"
	"github.com/ghettovoice/urikit/query"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		m      *query.Map
		encode bool
		want   string
	}{
		{"nil", nil, true, ""},
		{"empty", query.New(), true, ""},
		{"null", query.New().Set("foo", query.Null()), true, "foo="},
		{"empty scalar", query.New().Set("foo", query.Scalar("")), true, "foo="},
		{
			"sequence",
			util.Must2(query.FromMap(map[string]any{"ids": []int{1, 2, 3}})),
			true,
			"ids=1&ids=2&ids=3",
		},
		{"empty sequence", query.New().Set("a", query.Sequence()).Set("b", query.Scalar("1")), true, "b=1"},
		{
			"insertion order",
			query.New().Set("z", query.Scalar("1")).Set("a", query.Scalar("2")),
			true,
			"z=1&a=2",
		},
		{
			"encoded",
			query.New().Set("first name", query.Scalar("John Doe")).Set("q", query.Scalar("a&b=c/d?")),
			true,
			"first%20name=John%20Doe&q=a%26b%3Dc%2Fd%3F",
		},
		{
			"not encoded",
			query.New().Set("first name", query.Scalar("John Doe")).Set("q", query.Scalar("a/b")),
			false,
			"first name=John Doe&q=a/b",
		},
		{"percent", query.New().Set("p", query.Scalar("100%")), true, "p=100%25"},
		{"unreserved", query.New().Set("a-b.c_d~", query.Scalar("X.y-Z_0~")), true, "a-b.c_d~=X.y-Z_0~"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := query.Build(c.m, c.encode); got != c.want {
				t.Errorf("query.Build(%v, %v) = %q, want %q", c.m, c.encode, got, c.want)
			}
		})
	}
}

func TestMap_String(t *testing.T) {
	t.Parallel()

	m := query.New().Set("a b", query.Scalar("c"))
	if got, want := m.String(), "a%20b=c"; got != want {
		t.Errorf("m.String() = %q, want %q", got, want)
	}
}

func TestRoundTrip_Map(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		m    *query.Map
	}{
		{"empty", query.New()},
		{"scalars", query.New().Set("a", query.Scalar("1")).Set("b", query.Scalar("two words"))},
		{
			"reserved chars",
			query.New().
				Set("k&=?#/", query.Scalar("v&=?#/")).
				Set("pct", query.Scalar("100% a%20b")).
				Set("plus", query.Scalar("a+b")),
		},
		{"sequence", query.New().Set("ids", query.Sequence("1", "2", "3"))},
		{"unicode", query.New().Set("ключ", query.Scalar("мир"))},
		{"empty values", query.New().Set("a", query.Scalar("")).Set("", query.Scalar("x"))},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			raw := query.Build(c.m, true)
			got := query.Parse(raw)
			if got.Len() != c.m.Len() {
				t.Fatalf("query.Parse(%q).Len() = %d, want %d", raw, got.Len(), c.m.Len())
			}
			for k, v := range c.m.All() {
				gv, ok := got.Get(k)
				if !ok || !gv.EqualStrings(v) {
					t.Errorf("query.Parse(%q)[%q] = %v (%v), want %v", raw, k, gv, ok, v)
				}
			}
		})
	}
}

func TestRoundTrip_String(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"a=1&b=2",
		"name=John%20Doe&age=30&age=40",
		"flag&x=&&y=a=b",
		"q=a+b&p=%7e%2f",
		"broken=%zz&end=%",
	}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()

			want := query.Parse(raw)
			rebuilt := query.Build(want, true)
			if got := query.Parse(rebuilt); !got.Equal(want) {
				t.Errorf("query.Parse(%q) = %v, want %v", rebuilt, got, want)
			}
		})
	}
}
