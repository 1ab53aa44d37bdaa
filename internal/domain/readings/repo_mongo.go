package readings

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cfa-hud/readings-api/pkg/pagination"
)

const collectionName = "readings"

// RepoMongo is the MongoDB-backed readings repository. It holds the shared
// client handle; the driver's client is safe for concurrent use, so the repo
// carries no locking and no per-request state.
type RepoMongo struct {
	coll *mongo.Collection
}

func NewRepoMongo(client *mongo.Client, dbName string) *RepoMongo {
	return &RepoMongo{coll: client.Database(dbName).Collection(collectionName)}
}

func (r *RepoMongo) Find(ctx context.Context, filter bson.M, page pagination.Params) ([]Reading, error) {
	opts := options.Find().
		SetLimit(page.Limit).
		SetSkip(page.Skip).
		SetBatchSize(int32(page.Limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find readings: %w", err)
	}

	results := []Reading{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode readings: %w", err)
	}

	return results, nil
}

func (r *RepoMongo) Insert(ctx context.Context, records []Reading) (int, error) {
	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = rec
	}

	res, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("insert readings: %w", err)
	}

	return len(res.InsertedIDs), nil
}
