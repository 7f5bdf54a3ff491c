// SPDX-License-Identifier: MPL-2.0

package lssim

import (
	"cmp"
	"slices"
	"strings"
)

// Sort orders entries in place by key, keeping the relative order of equal
// entries, then reverses the whole sequence when reverse is set.
func Sort(entries []*Entry, key SortKey, reverse bool) {
	switch key {
	case SortBySize:
		slices.SortStableFunc(entries, func(a, b *Entry) int {
			return cmp.Compare(b.Size, a.Size)
		})
	case SortByTime:
		slices.SortStableFunc(entries, func(a, b *Entry) int {
			return b.ModTime.Compare(a.ModTime)
		})
	case SortByName:
		slices.SortStableFunc(entries, func(a, b *Entry) int {
			return strings.Compare(a.Name, b.Name)
		})
	case SortNone:
	}

	if reverse {
		slices.Reverse(entries)
	}
}
