package content

import (
	"net/url"
	"strconv"
	"strings"
)

// ListOptions captures the filter variant of a list query. Two options with
// the same field values address the same cache entry and the same fetch
// generation, regardless of where the structs were built.
type ListOptions struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

// Variant serializes the options into a canonical string used for cache
// keys and fetch identity. Zero-valued fields are omitted so the empty
// options serialize to "".
func (o ListOptions) Variant() string {
	parts := make([]string, 0, 4)
	if s := strings.TrimSpace(o.Search); s != "" {
		parts = append(parts, "search="+url.QueryEscape(s))
	}
	if c := strings.TrimSpace(o.Category); c != "" {
		parts = append(parts, "category="+url.QueryEscape(c))
	}
	if o.Page > 0 {
		parts = append(parts, "page="+strconv.Itoa(o.Page))
	}
	if o.Limit > 0 {
		parts = append(parts, "limit="+strconv.Itoa(o.Limit))
	}
	return strings.Join(parts, "&")
}

// Query returns the options as request query parameters.
func (o ListOptions) Query() map[string]string {
	params := map[string]string{}
	if s := strings.TrimSpace(o.Search); s != "" {
		params["search"] = s
	}
	if c := strings.TrimSpace(o.Category); c != "" {
		params["category"] = c
	}
	if o.Page > 0 {
		params["page"] = strconv.Itoa(o.Page)
	}
	if o.Limit > 0 {
		params["limit"] = strconv.Itoa(o.Limit)
	}
	return params
}
