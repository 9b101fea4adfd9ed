// FILE: database/repository/day/indexes.go
package dayRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the days collection.
func EnsureIndexes(repo DayRepository) error {
	r, ok := repo.(*mongoDayRepo)
	if !ok {
		return nil
	}
	return r.ensureIndexes()
}

func (r *mongoDayRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// At most one live override per user and day; also serves the range query.
		{
			Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"deleted": false}).
				SetName("user_date_live_unique"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create day indexes: %w", err)
	}
	return nil
}
