package readings

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/cfa-hud/readings-api/pkg/pagination"
)

// Repository is the storage gateway for readings. Implementations must be
// safe for concurrent use by multiple in-flight requests.
type Repository interface {
	// Find returns the readings matching filter, sliced per page. An empty
	// result is a nil-free empty slice, not an error.
	Find(ctx context.Context, filter bson.M, page pagination.Params) ([]Reading, error)

	// Insert performs an unordered bulk insert and returns the number of
	// documents written. On any failure only the error is reported; no
	// partial counts.
	Insert(ctx context.Context, records []Reading) (int, error)
}
