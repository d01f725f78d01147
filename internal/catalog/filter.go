// Package catalog implements the public catalog query composition: it turns
// the loosely-typed filter parameters of the storefront API into concrete
// SQL predicates executed by the template repository.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Pagination bounds. Limit defaults to a large page because the frontend
// does client-side refinement on top of the filtered set; MaxLimit keeps a
// single request from dragging the whole catalog.
const (
	DefaultLimit   = 100
	MaxLimit       = 500
	MaxSearchLimit = 100
)

// Filter is the declarative filter request accepted by the public template
// listing. Every field is optional.
type Filter struct {
	CategorySlug  string `form:"categorySlug"`
	CategoryName  string `form:"categoryName"`
	Style         string `form:"style"`
	Color         string `form:"color"`
	Language      string `form:"language"`
	EditableLevel string `form:"editableLevel"`
	ProductType   string `form:"productType"`
	Dimension     string `form:"dimension"`
	MinPrice      string `form:"minPrice"`
	MaxPrice      string `form:"maxPrice"`
	Sort          string `form:"sort"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// Pagination normalizes page and limit: page floors at 1, limit floors at 1
// with DefaultLimit when unset and MaxLimit as the upper bound.
func (f Filter) Pagination() (page, limit int) {
	page = f.Page
	if page < 1 {
		page = 1
	}
	limit = f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// SplitValues turns a single value or comma-separated list into a slice,
// trimming whitespace and dropping empty entries.
func SplitValues(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParsePrice parses a price bound from the query string. Invalid or
// non-numeric input is treated as absent.
func ParsePrice(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// SortClause maps a public sort keyword onto an ORDER BY clause.
// Unrecognized values fall back to newest-created-first.
func SortClause(sort string) string {
	switch sort {
	case "price_asc":
		return "sale_price ASC"
	case "price_desc":
		return "sale_price DESC"
	case "name_asc":
		return "title ASC"
	case "name_desc":
		return "title DESC"
	default:
		return "created_at DESC"
	}
}
