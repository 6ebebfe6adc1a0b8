// Package history holds the presentation logic for browsing past attempts:
// explicit ordering and fixed-size pagination.
package history

import (
	"charm.land/bubbles/v2/paginator"

	"github.com/abhisek/timedquiz/internal/store"
)

// DefaultPageSize is the number of attempts shown per page.
const DefaultPageSize = 5

// Pager splits attempts into fixed-size pages. Pages are numbered from 1
// and navigation is clamped to [1, TotalPages]. An empty list still has
// one (empty) page.
type Pager struct {
	items []store.Attempt
	p     paginator.Model
}

// NewPager creates a pager over items positioned at page 1.
func NewPager(items []store.Attempt, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	p := paginator.New()
	p.Type = paginator.Arabic
	p.PerPage = pageSize
	p.TotalPages = 1
	p.SetTotalPages(len(items))
	return &Pager{items: items, p: p}
}

// Page returns the current 1-based page number.
func (pg *Pager) Page() int { return pg.p.Page + 1 }

// TotalPages returns ceil(len/pageSize), at least 1.
func (pg *Pager) TotalPages() int {
	if pg.p.TotalPages < 1 {
		return 1
	}
	return pg.p.TotalPages
}

// PageSize returns the number of items per page.
func (pg *Pager) PageSize() int { return pg.p.PerPage }

// Len returns the total number of items.
func (pg *Pager) Len() int { return len(pg.items) }

// Items returns the attempts on the current page.
func (pg *Pager) Items() []store.Attempt {
	start, end := pg.p.GetSliceBounds(len(pg.items))
	return pg.items[start:end]
}

// Prev moves one page back; no-op on page 1.
func (pg *Pager) Prev() { pg.p.PrevPage() }

// Next moves one page forward; no-op on the last page.
func (pg *Pager) Next() {
	if pg.Page() < pg.TotalPages() {
		pg.p.NextPage()
	}
}

// SetPage jumps to the 1-based page n, clamped to [1, TotalPages].
func (pg *Pager) SetPage(n int) {
	if n > pg.TotalPages() {
		n = pg.TotalPages()
	}
	if n < 1 {
		n = 1
	}
	pg.p.Page = n - 1
}

// HasPrev reports whether Prev would move.
func (pg *Pager) HasPrev() bool { return pg.Page() > 1 }

// HasNext reports whether Next would move.
func (pg *Pager) HasNext() bool { return pg.Page() < pg.TotalPages() }

// Dots renders the paginator's compact position indicator.
func (pg *Pager) Dots() string {
	p := pg.p
	p.Type = paginator.Dots
	return p.View()
}
