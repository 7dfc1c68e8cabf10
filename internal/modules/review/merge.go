package review

import (
	"slices"

	"travelbook/internal/domain"
	"travelbook/internal/pkg/isotime"
)

// Merge combines curated seed reviews with stored ones for display.
//
// seed is walked before stored and only the first record seen for an id is
// kept, whole, so a curated entry shadows a stored one with the same id.
// The result is ordered newest date first; equal dates keep their merged
// order and unparsable dates sort last.
func Merge(seed, stored []domain.Review) []domain.Review {
	out := make([]domain.Review, 0, len(seed)+len(stored))
	seen := make(map[string]struct{}, len(seed)+len(stored))

	for _, list := range [][]domain.Review{seed, stored} {
		for _, rv := range list {
			if _, dup := seen[rv.ID]; dup {
				continue
			}
			seen[rv.ID] = struct{}{}
			out = append(out, rv)
		}
	}

	slices.SortStableFunc(out, func(a, b domain.Review) int {
		return isotime.ParseOrLowest(b.Date).Compare(isotime.ParseOrLowest(a.Date))
	})
	return out
}
