// Package query turns raw HTTP query parameters into an engine-agnostic list
// query: an equality/comparison filter set, a projection, a sort order, and
// 1-based pagination. The storage layer translates the result into its own
// operators; pagination metadata is computed from the pre-pagination total.
package query

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

// reserved parameter names are extracted before the remaining parameters are
// interpreted as filters.
var reserved = map[string]struct{}{
	"select": {},
	"sort":   {},
	"page":   {},
	"limit":  {},
}

// operator suffixes recognised on filter parameter names, e.g. tuition_lte=5000.
var operators = map[string]struct{}{
	"gt":  {},
	"gte": {},
	"lt":  {},
	"lte": {},
	"in":  {},
}

// Query is the parsed form of a list request.
type Query struct {
	// Filter maps a field either to a scalar (equality) or to a
	// map[string]any of operator name to operand.
	Filter map[string]any
	Select []string
	Sort   []string // "-" prefix means descending
	Page   int
	Limit  int
}

// Skip returns the number of records preceding the requested page.
func (q Query) Skip() int {
	return (q.Page - 1) * q.Limit
}

// Parse extracts reserved parameters and interprets the remainder as filters.
// Every operator-suffixed parameter is translated, not just the first one.
func Parse(values url.Values) Query {
	q := Query{
		Filter: make(map[string]any),
		Page:   DefaultPage,
		Limit:  DefaultLimit,
	}

	if sel := values.Get("select"); sel != "" {
		q.Select = splitList(sel)
	}
	if sort := values.Get("sort"); sort != "" {
		q.Sort = splitList(sort)
	} else {
		q.Sort = []string{"-createdAt"}
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page > 0 {
		q.Page = page
	}
	if limit, err := strconv.Atoi(values.Get("limit")); err == nil && limit > 0 {
		q.Limit = limit
	}

	for name, vals := range values {
		if _, ok := reserved[name]; ok || len(vals) == 0 {
			continue
		}
		field, op := splitOperator(name)
		raw := vals[0]

		if op == "" {
			q.Filter[field] = parseScalar(raw)
			continue
		}

		ops, ok := q.Filter[field].(map[string]any)
		if !ok {
			ops = make(map[string]any)
			q.Filter[field] = ops
		}
		if op == "in" {
			parts := splitList(raw)
			set := make([]any, 0, len(parts))
			for _, p := range parts {
				set = append(set, parseScalar(p))
			}
			ops[op] = set
		} else {
			ops[op] = parseScalar(raw)
		}
	}

	return q
}

// splitOperator detects a whole-word operator suffix on a parameter name.
// "tuition_gte" yields ("tuition", "gte"); "career_path" yields itself with
// no operator since "path" is not a recognised token.
func splitOperator(name string) (field, op string) {
	i := strings.LastIndex(name, "_")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	suffix := name[i+1:]
	if _, ok := operators[suffix]; !ok {
		return name, ""
	}
	return name[:i], suffix
}

// parseScalar interprets a raw parameter value as number, bool, or string.
func parseScalar(raw string) any {
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Page reference inside pagination metadata.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination points at the neighbouring pages when they exist.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// Paginate computes pagination metadata from the pre-pagination total:
// next exists iff page*limit < total, prev iff the page is past the first.
func Paginate(q Query, total int64) Pagination {
	var p Pagination
	if int64(q.Page*q.Limit) < total {
		p.Next = &PageRef{Page: q.Page + 1, Limit: q.Limit}
	}
	if q.Skip() > 0 {
		p.Prev = &PageRef{Page: q.Page - 1, Limit: q.Limit}
	}
	return p
}
