package query_test

import (
	"errors"
	"net/url"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/urikit/query"
)

func keysOf(m *query.Map) []string { return slices.Collect(m.Keys()) }

func TestMap_Set(t *testing.T) {
	t.Parallel()

	m := query.New().
		Set("a", query.Scalar("1")).
		Set("b", query.Scalar("2")).
		Set("a", query.Sequence("3", "4"))

	if diff := cmp.Diff(keysOf(m), []string{"a", "b"}); diff != "" {
		t.Errorf("keys mismatch\ndiff (-got +want):\n%v", diff)
	}
	if got, _ := m.Get("a"); !got.Equal(query.Sequence("3", "4")) {
		t.Errorf("m.Get(\"a\") = %#v, want %#v", got, query.Sequence("3", "4"))
	}

	var zero query.Map
	zero.Set("x", query.Scalar("y"))
	if !zero.Has("x") {
		t.Error("zero.Has(\"x\") = false, want true")
	}
}

func TestMap_Add(t *testing.T) {
	t.Parallel()

	m := query.New().Add("a", "1")
	if got, _ := m.Get("a"); !got.Equal(query.Scalar("1")) {
		t.Errorf("after first add m.Get(\"a\") = %#v, want scalar", got)
	}
	m.Add("a", "2")
	if got, _ := m.Get("a"); !got.Equal(query.Sequence("1", "2")) {
		t.Errorf("after second add m.Get(\"a\") = %#v, want two-element sequence", got)
	}
	m.Add("a", "3")
	if got, _ := m.Get("a"); !got.Equal(query.Sequence("1", "2", "3")) {
		t.Errorf("after third add m.Get(\"a\") = %#v, want three-element sequence", got)
	}
}

func TestMap_Del(t *testing.T) {
	t.Parallel()

	m := query.New().Set("a", query.Scalar("1")).Set("b", query.Scalar("2")).Set("c", query.Scalar("3"))
	m.Del("b").Del("missing")
	if diff := cmp.Diff(keysOf(m), []string{"a", "c"}); diff != "" {
		t.Errorf("keys mismatch\ndiff (-got +want):\n%v", diff)
	}
	if m.Has("b") {
		t.Error("m.Has(\"b\") = true, want false")
	}

	var nilMap *query.Map
	if nilMap.Del("a") != nil || nilMap.Len() != 0 || nilMap.Has("a") {
		t.Error("nil map must behave as an empty map")
	}
}

func TestMap_Iterators(t *testing.T) {
	t.Parallel()

	m := query.New().Set("z", query.Scalar("1")).Set("a", query.Scalar("2")).Set("m", query.Scalar("3"))

	var got []string
	for k := range m.Keys() {
		got = append(got, k)
		if k == "a" {
			break
		}
	}
	if diff := cmp.Diff(got, []string{"z", "a"}); diff != "" {
		t.Errorf("keys mismatch\ndiff (-got +want):\n%v", diff)
	}

	got = got[:0]
	for k, v := range m.All() {
		s, _ := v.First()
		got = append(got, k+"="+s)
	}
	if diff := cmp.Diff(got, []string{"z=1", "a=2", "m=3"}); diff != "" {
		t.Errorf("pairs mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestMap_Clone(t *testing.T) {
	t.Parallel()

	m := query.New().Set("a", query.Sequence("1", "2"))
	c := m.Clone()
	c.Add("a", "3").Set("b", query.Scalar("x"))

	if got, _ := m.Get("a"); !got.Equal(query.Sequence("1", "2")) {
		t.Errorf("original changed: m.Get(\"a\") = %#v", got)
	}
	if m.Has("b") {
		t.Error("original changed: m.Has(\"b\") = true")
	}

	var nilMap *query.Map
	if c := nilMap.Clone(); c == nil || c.Len() != 0 {
		t.Errorf("nilMap.Clone() = %v, want empty map", c)
	}
}

func TestMap_Equal(t *testing.T) {
	t.Parallel()

	a := query.New().Set("a", query.Scalar("1")).Set("b", query.Sequence("2", "3"))
	b := query.New().Set("b", query.Sequence("2", "3")).Set("a", query.Scalar("1"))
	if !a.Equal(b) {
		t.Error("a.Equal(b) = false, want true")
	}
	if a.Equal(query.New().Set("a", query.Scalar("1"))) {
		t.Error("a.Equal(subset) = true, want false")
	}
	if a.Equal(query.New().Set("a", query.Scalar("1")).Set("b", query.Sequence("3", "2"))) {
		t.Error("a.Equal(reordered sequence) = true, want false")
	}
	if !(*query.Map)(nil).Equal(query.New()) {
		t.Error("nil.Equal(empty) = false, want true")
	}
}

func TestFromValues(t *testing.T) {
	t.Parallel()

	m := query.FromValues(url.Values{"b": {"1", "2"}, "a": {"x"}})
	want := query.New().Set("a", query.Scalar("x")).Set("b", query.Sequence("1", "2"))
	if diff := cmp.Diff(m, want); diff != "" {
		t.Errorf("query.FromValues() mismatch\ndiff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(keysOf(m), []string{"a", "b"}); diff != "" {
		t.Errorf("keys mismatch\ndiff (-got +want):\n%v", diff)
	}
	if diff := cmp.Diff(m.Values(), url.Values{"b": {"1", "2"}, "a": {"x"}}); diff != "" {
		t.Errorf("m.Values() mismatch\ndiff (-got +want):\n%v", diff)
	}
}

func TestFromStrings(t *testing.T) {
	t.Parallel()

	m := query.FromStrings(map[string]string{"sort": "asc", "page": "2"})
	if got, want := query.Build(m, true), "page=2&sort=asc"; got != want {
		t.Errorf("query.Build(m, true) = %q, want %q", got, want)
	}
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	m, err := query.FromMap(map[string]any{"year": 2024, "sort": "asc", "tags": []string{"a", "b"}, "x": nil})
	if err != nil {
		t.Fatalf("query.FromMap() error = %v, want nil", err)
	}
	if got, want := query.Build(m, true), "sort=asc&tags=a&tags=b&x=&year=2024"; got != want {
		t.Errorf("query.Build(m, true) = %q, want %q", got, want)
	}

	_, err = query.FromMap(map[string]any{"nested": map[string]any{"a": 1}})
	if !errors.Is(err, query.ErrInvalidType) {
		t.Errorf("query.FromMap(nested) error = %v, want %v", err, query.ErrInvalidType)
	}
}

func TestMap_ZeroValue(t *testing.T) {
	t.Parallel()

	var m query.Map
	m.Set("a", query.Scalar("1")).Add("a", "2").Add("b", "x")
	if got, want := m.String(), "a=1&a=2&b=x"; got != want {
		t.Errorf("m.String() = %q, want %q", got, want)
	}

	var nilMap *query.Map
	if nilMap.Len() != 0 || nilMap.Has("a") || len(keysOf(nilMap)) != 0 {
		t.Error("nil map read methods must behave as an empty map")
	}

	defer func() {
		if recover() == nil {
			t.Error("nilMap.Set() did not panic")
		}
	}()
	nilMap.Set("a", query.Scalar("1"))
}

func TestMapOf(t *testing.T) {
	t.Parallel()

	type name string

	cases := []struct {
		name    string
		in      any
		want    string
		wantErr error
	}{
		{"ints", map[string]int{"b": 2, "a": 1}, "a=1&b=2", nil},
		{"int slices", map[string][]int{"id": {1, 2}}, "id=1&id=2", nil},
		{"named keys", map[name]string{"q": "x y"}, "q=x%20y", nil},
		{"any values", map[string]any{"n": nil, "s": "v"}, "n=&s=v", nil},
		{"empty", map[string]bool{}, "", nil},
		{"nil", nil, "", query.ErrInvalidType},
		{"not a map", 42, "", query.ErrInvalidType},
		{"int keys", map[int]string{1: "a"}, "", query.ErrInvalidType},
		{"nested", map[string]map[string]int{"a": {"b": 1}}, "", query.ErrInvalidType},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			m, err := query.MapOf(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("query.MapOf(%v) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				return
			}
			if got := query.Build(m, true); got != c.want {
				t.Errorf("query.Build(query.MapOf(%v), true) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}
