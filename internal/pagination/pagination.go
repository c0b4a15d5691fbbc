// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pagination computes page-number navigation for admin lists.
// A Paginator holds no state beyond its four numbers; templates read it
// and page changes are reported through a callback.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// Paginator describes one page of a list.
type Paginator struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int
	ItemsPerPage int
}

// New builds a paginator, deriving TotalPages from the item count when the
// backend did not report it.
func New(current, totalPages, totalItems, perPage int) Paginator {
	if perPage < 1 {
		perPage = 1
	}
	if totalPages < 1 {
		totalPages = (totalItems + perPage - 1) / perPage
	}
	if totalPages < 1 {
		totalPages = 1
	}
	if current < 1 {
		current = 1
	}
	if current > totalPages {
		current = totalPages
	}
	return Paginator{CurrentPage: current, TotalPages: totalPages, TotalItems: totalItems, ItemsPerPage: perPage}
}

// IsEmpty reports whether the list has no items.
func (p Paginator) IsEmpty() bool {
	return p.TotalItems <= 0
}

// Start is the 1-based index of the first item on the page, or 0 when empty.
func (p Paginator) Start() int {
	if p.IsEmpty() {
		return 0
	}
	return (p.CurrentPage-1)*p.ItemsPerPage + 1
}

// End is the 1-based index of the last item on the page.
func (p Paginator) End() int {
	return min(p.CurrentPage*p.ItemsPerPage, p.TotalItems)
}

// Range renders the visible span, e.g. "11-20 of 25". Empty lists render
// "0 of 0".
func (p Paginator) Range() string {
	if p.IsEmpty() {
		return "0 of 0"
	}
	return fmt.Sprintf("%d-%d of %d", p.Start(), p.End(), p.TotalItems)
}

// Prev returns the previous page and whether it exists.
func (p Paginator) Prev() (int, bool) {
	if p.CurrentPage <= 1 {
		return p.CurrentPage, false
	}
	return p.CurrentPage - 1, true
}

// Next returns the next page and whether it exists.
func (p Paginator) Next() (int, bool) {
	if p.CurrentPage >= p.TotalPages {
		return p.CurrentPage, false
	}
	return p.CurrentPage + 1, true
}

// HasPrev reports whether a previous page exists.
func (p Paginator) HasPrev() bool {
	_, ok := p.Prev()
	return ok
}

// HasNext reports whether a next page exists.
func (p Paginator) HasNext() bool {
	_, ok := p.Next()
	return ok
}

// PrevPage returns the previous page number, or the current page on page 1.
func (p Paginator) PrevPage() int {
	n, _ := p.Prev()
	return n
}

// NextPage returns the next page number, or the current page on the last.
func (p Paginator) NextPage() int {
	n, _ := p.Next()
	return n
}

// Change calls onPageChange with target if it is a real page other than
// the current one, and reports whether it did.
func (p Paginator) Change(target int, onPageChange func(page int)) bool {
	if target < 1 || target > p.TotalPages || target == p.CurrentPage {
		return false
	}
	if onPageChange != nil {
		onPageChange(target)
	}
	return true
}

// Window returns up to n page numbers centred on the current page.
func (p Paginator) Window(n int) []int {
	if n < 1 || p.TotalPages < 1 {
		return nil
	}
	n = min(n, p.TotalPages)
	start := p.CurrentPage - n/2
	start = max(1, min(start, p.TotalPages-n+1))

	pages := make([]int, n)
	for i := range pages {
		pages[i] = start + i
	}
	return pages
}

// URL returns base with its page query parameter set to page. Other query
// parameters (filters, search) are kept.
func URL(base *url.URL, page int) string {
	u := *base
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	return u.RequestURI()
}

// PageParam reads the page query parameter, defaulting to 1.
func PageParam(q url.Values) int {
	n, err := strconv.Atoi(q.Get("page"))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
