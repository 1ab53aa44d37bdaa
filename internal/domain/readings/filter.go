package readings

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/cfa-hud/readings-api/pkg/pagination"
)

// ErrInvalidQuery marks query parameters that fail validation; handlers map
// it to HTTP 400.
var ErrInvalidQuery = errors.New("invalid query parameter")

// Query holds the raw optional query parameters of a readings retrieval.
type Query struct {
	Patient string
	From    string
	Until   string
	Page    string
}

// BuildFilter translates the query into a database filter and a pagination
// descriptor. It is pure: no clock, no I/O.
//
// from and until restrict reading_at as a half-open interval
// [from, until). Both bounds land in one range document so they always apply
// together.
func BuildFilter(q Query) (bson.M, pagination.Params, error) {
	filter := bson.M{}

	if q.Patient != "" {
		filter["patient.bluetooth_id"] = q.Patient
	}

	readingAt := bson.M{}
	if q.From != "" {
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return nil, pagination.Params{}, fmt.Errorf("%w: from must be an RFC3339 date-time, got %q", ErrInvalidQuery, q.From)
		}
		readingAt["$gte"] = from
	}
	if q.Until != "" {
		until, err := time.Parse(time.RFC3339, q.Until)
		if err != nil {
			return nil, pagination.Params{}, fmt.Errorf("%w: until must be an RFC3339 date-time, got %q", ErrInvalidQuery, q.Until)
		}
		readingAt["$lt"] = until
	}
	if len(readingAt) > 0 {
		filter["reading_at"] = readingAt
	}

	page, err := pagination.Parse(q.Page)
	if err != nil {
		return nil, pagination.Params{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	return filter, page, nil
}
