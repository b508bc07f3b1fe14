package models

// PageInfo is the pagination metadata returned alongside list results.
// Limit reports the number of items actually returned, not the requested
// page size.
type PageInfo struct {
	Next     int `json:"next"`
	Limit    int `json:"limit"`
	Previous int `json:"previous"`
}

// NewPageInfo builds pagination metadata for a page request.
// Previous is not clamped: at offset 0 it goes negative. Callers depend on
// the raw value.
func NewPageInfo(limit, offset, returned int) PageInfo {
	return PageInfo{
		Next:     offset + limit,
		Limit:    returned,
		Previous: offset - limit,
	}
}
