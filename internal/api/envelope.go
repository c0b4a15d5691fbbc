// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package api

// Page is one page of a paginated collection.
type Page[T any] struct {
	Items       []T
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// Listing is the result of a best-effort public collection call. Success
// is false when the backend had nothing to serve (for example a 404); Data
// is then an empty, non-nil slice.
type Listing[T any] struct {
	Success bool
	Data    []T
}

// paginationKeys mark an object as a paginator rather than an envelope.
var paginationKeys = []string{"current_page", "currentPage", "last_page", "lastPage", "total"}

// unwrap strips {"success": ..., "data": ...} envelopes until it reaches
// the payload. Paginator objects are returned as-is.
func unwrap(v any) any {
	for {
		rec := asRecord(v)
		if rec == nil {
			return v
		}
		inner, ok := rec["data"]
		if !ok || isPaginator(rec) {
			return v
		}
		v = inner
	}
}

func isPaginator(rec record) bool {
	for _, k := range paginationKeys {
		if _, ok := rec[k]; ok {
			return true
		}
	}
	if meta := rec.object("meta"); meta != nil {
		for _, k := range paginationKeys {
			if _, ok := meta[k]; ok {
				return true
			}
		}
	}
	return false
}

// pageOf converts a list or paginator response into a Page.
func pageOf[T any](v any, conv func(record) T) *Page[T] {
	v = unwrap(v)
	page := &Page[T]{Items: []T{}}

	var items []any
	if rec := asRecord(v); rec != nil {
		items, _ = arrayValue(rec["data"])
		meta := rec
		if m := rec.object("meta"); m != nil {
			meta = m
		}
		page.CurrentPage = meta.integer("current_page", "currentPage")
		page.LastPage = meta.integer("last_page", "lastPage", "total_pages", "totalPages")
		page.PerPage = meta.integer("per_page", "perPage")
		page.Total = meta.integer("total", "total_items", "totalItems")
	} else {
		items, _ = v.([]any)
	}

	for _, item := range items {
		if rec := asRecord(item); rec != nil {
			page.Items = append(page.Items, conv(rec))
		}
	}

	if page.CurrentPage == 0 {
		page.CurrentPage = 1
	}
	if page.Total == 0 {
		page.Total = len(page.Items)
	}
	if page.PerPage == 0 {
		page.PerPage = len(page.Items)
	}
	if page.LastPage == 0 {
		page.LastPage = 1
		if page.PerPage > 0 {
			page.LastPage = (page.Total + page.PerPage - 1) / page.PerPage
		}
		if page.LastPage == 0 {
			page.LastPage = 1
		}
	}
	return page
}

// listOf converts a list response into a slice, ignoring pagination.
func listOf[T any](v any, conv func(record) T) []T {
	return pageOf(v, conv).Items
}

// oneOf converts a single-object response. Missing payloads produce the
// zero value converted from an empty record.
func oneOf[T any](v any, conv func(record) T) T {
	rec := asRecord(unwrap(v))
	if rec == nil {
		rec = record{}
	}
	return conv(rec)
}
