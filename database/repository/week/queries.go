package weekRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplanner/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoWeekRepo) GetByUserID(ctx context.Context, userID string) (*models.WeeklyTemplate, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var tpl models.WeeklyTemplate
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&tpl)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch week for user %s: %w", userID, err)
	}
	return &tpl, nil
}

func (r *mongoWeekRepo) Upsert(ctx context.Context, tpl *models.WeeklyTemplate) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now()
	tpl.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"freeMinutes": tpl.FreeMinutes,
			"updatedAt":   now,
		},
		"$setOnInsert": bson.M{
			"id":        uuid.New().String(),
			"createdAt": now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var saved models.WeeklyTemplate
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"userId": tpl.UserID}, update, opts).Decode(&saved); err != nil {
		return fmt.Errorf("failed to save week for user %s: %w", tpl.UserID, err)
	}
	*tpl = saved
	return nil
}
