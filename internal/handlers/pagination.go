package handlers

import (
	"fmt"
	"net/http"
	"strconv"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

// parsePageParams reads limit and offset query parameters, applying the
// defaults 10 and 0 when absent.
func parsePageParams(r *http.Request) (limit, offset int, err error) {
	limit = defaultLimit
	offset = defaultOffset

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return 0, 0, fmt.Errorf("invalid limit parameter: %q", raw)
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, fmt.Errorf("invalid offset parameter: %q", raw)
		}
	}
	return limit, offset, nil
}
