package history

import (
	"fmt"
	"slices"
	"strings"

	"github.com/abhisek/timedquiz/internal/store"
)

// Order is the presentation order of attempts.
type Order string

const (
	NewestFirst Order = "newest"
	OldestFirst Order = "oldest"
)

// ParseOrder maps a config value to an Order. Empty means NewestFirst.
func ParseOrder(s string) (Order, error) {
	switch Order(strings.ToLower(strings.TrimSpace(s))) {
	case "", NewestFirst:
		return NewestFirst, nil
	case OldestFirst:
		return OldestFirst, nil
	default:
		return "", fmt.Errorf("unknown history order %q: want newest or oldest", s)
	}
}

// Sort returns a copy of attempts sorted by date in the given order. The
// store's own iteration order is never relied on.
func Sort(attempts []store.Attempt, order Order) []store.Attempt {
	out := slices.Clone(attempts)
	slices.SortStableFunc(out, func(a, b store.Attempt) int {
		c := strings.Compare(a.Date, b.Date)
		if order == OldestFirst {
			return c
		}
		return -c
	})
	return out
}
