package homeworkRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoHomeworkRepo) Create(ctx context.Context, hw *models.Homework) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	now := time.Now()
	hw.CreatedAt = now
	hw.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, hw); err != nil {
		return fmt.Errorf("failed to create homework: %w", err)
	}
	return nil
}

func (r *mongoHomeworkRepo) GetByID(ctx context.Context, id string) (*models.Homework, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var hw models.Homework
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "deleted": false}).Decode(&hw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch homework %s: %w", id, err)
	}
	return &hw, nil
}

func (r *mongoHomeworkRepo) ListByUser(ctx context.Context, userID string) ([]models.Homework, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "expirationDate", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID, "deleted": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve homework: %w", err)
	}
	defer cursor.Close(ctx)

	list := []models.Homework{}
	if err := cursor.All(ctx, &list); err != nil {
		return nil, fmt.Errorf("failed to decode homework: %w", err)
	}
	return list, nil
}
