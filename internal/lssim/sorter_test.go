// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"slices"
	"testing"
	"time"
)

func names(entries []*Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func TestSort(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	fixture := func() []*Entry {
		return []*Entry{
			{Name: "b", Size: 30, ModTime: base.Add(time.Hour)},
			{Name: "c", Size: 10, ModTime: base},
			{Name: "a", Size: 20, ModTime: base.Add(2 * time.Hour)},
		}
	}

	tests := []struct {
		name    string
		key     SortKey
		reverse bool
		want    []string
	}{
		{"name", SortByName, false, []string{"a", "b", "c"}},
		{"name reversed", SortByName, true, []string{"c", "b", "a"}},
		{"size descending", SortBySize, false, []string{"b", "a", "c"}},
		{"size reversed is ascending", SortBySize, true, []string{"c", "a", "b"}},
		{"time newest first", SortByTime, false, []string{"a", "b", "c"}},
		{"time reversed", SortByTime, true, []string{"c", "b", "a"}},
		{"none keeps order", SortNone, false, []string{"b", "c", "a"}},
		{"none reversed", SortNone, true, []string{"a", "c", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			entries := fixture()
			Sort(entries, tt.key, tt.reverse)
			if got := names(entries); !slices.Equal(got, tt.want) {
				t.Errorf("Sort(%s, reverse=%v) = %q, want %q", tt.key, tt.reverse, got, tt.want)
			}
		})
	}
}

func TestSort_ReverseSizeYieldsAscending(t *testing.T) {
	t.Parallel()

	entries := []*Entry{{Name: "x", Size: 30}, {Name: "y", Size: 10}, {Name: "z", Size: 20}}
	Sort(entries, SortBySize, true)

	var sizes []int64
	for _, e := range entries {
		sizes = append(sizes, e.Size)
	}
	if !slices.Equal(sizes, []int64{10, 20, 30}) {
		t.Errorf("sizes = %v, want [10 20 30]", sizes)
	}
}

func TestSort_StableOnTies(t *testing.T) {
	t.Parallel()

	entries := []*Entry{{Name: "first", Size: 5}, {Name: "second", Size: 5}, {Name: "big", Size: 9}}
	Sort(entries, SortBySize, false)

	if got := names(entries); !slices.Equal(got, []string{"big", "first", "second"}) {
		t.Errorf("Sort = %q", got)
	}
}
