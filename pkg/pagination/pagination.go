package pagination

import (
	"fmt"
	"strconv"
)

// PageSize is the fixed number of readings returned per page.
const PageSize = 50

// Params holds the limit/skip descriptor handed to the storage layer.
type Params struct {
	Limit int64
	Skip  int64
}

// FromPage builds the descriptor for a zero-indexed page number. Page 0 and
// an absent page are equivalent.
func FromPage(page int64) Params {
	return Params{
		Limit: PageSize,
		Skip:  page * PageSize,
	}
}

// Parse interprets the raw `page` query parameter. An empty string means the
// first page. Anything that is not a non-negative integer is rejected.
func Parse(raw string) (Params, error) {
	if raw == "" {
		return FromPage(0), nil
	}

	page, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || page < 0 {
		return Params{}, fmt.Errorf("page must be a non-negative integer, got %q", raw)
	}

	return FromPage(page), nil
}
