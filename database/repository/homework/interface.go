// File: database/repository/homework/interface.go
package homeworkRepo

import (
	"context"
	"time"

	"studyplanner/database"
	"studyplanner/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type HomeworkRepository interface {
	Create(ctx context.Context, hw *models.Homework) error
	// GetByID returns the live homework with the given id, or nil.
	GetByID(ctx context.Context, id string) (*models.Homework, error)
	ListByUser(ctx context.Context, userID string) ([]models.Homework, error)
}

type mongoHomeworkRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoHomeworkRepo constructs a new MongoDB HomeworkRepository.
func NewMongoHomeworkRepo() HomeworkRepository {
	return &mongoHomeworkRepo{
		coll:    database.DB().Collection("homework"),
		timeout: database.Timeout(),
	}
}
