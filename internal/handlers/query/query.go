// Package query reads pagination and filter parameters from request URLs.
package query

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/refchain/internal/domain"
)

// DefaultLimit applies when a listing request carries no limit.
const DefaultLimit = 50

func Int(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", domain.ErrValidation, name)
	}
	return v, nil
}

// Page returns limit and offset. limit=0 asks for every row.
func Page(r *http.Request) (limit, offset int, err error) {
	if limit, err = Int(r, "limit", DefaultLimit); err != nil {
		return 0, 0, err
	}
	if offset, err = Int(r, "offset", 0); err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}
