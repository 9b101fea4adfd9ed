// File: database/repository/day/queries.go
package dayRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplanner/models"
	"studyplanner/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoDayRepo) Get(ctx context.Context, userID string, date time.Time) (*models.DayOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{
		"userId":  userID,
		"date":    utils.DayKey(utils.StartOfDay(date)),
		"deleted": false,
	}

	var day models.DayOverride
	if err := r.coll.FindOne(ctx, filter).Decode(&day); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &day, nil
}

func (r *mongoDayRepo) ListFrom(ctx context.Context, userID string, from time.Time) ([]models.DayOverride, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{
		"userId":  userID,
		"deleted": false,
		"date":    bson.M{"$gte": utils.DayKey(utils.StartOfDay(from))},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch days: %w", err)
	}
	defer cursor.Close(ctx)

	days := []models.DayOverride{}
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("error decoding days: %w", err)
	}
	return days, nil
}
