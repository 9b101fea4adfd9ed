// File: database/repository/week/interface.go
package weekRepo

import (
	"context"
	"time"

	"studyplanner/database"
	"studyplanner/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// WeekRepository gives access to users' weekly templates.
type WeekRepository interface {
	// GetByUserID returns the user's template, or nil when none was defined.
	GetByUserID(ctx context.Context, userID string) (*models.WeeklyTemplate, error)
	// Upsert creates or replaces the user's template.
	Upsert(ctx context.Context, tpl *models.WeeklyTemplate) error
}

type mongoWeekRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoWeekRepo constructs a new MongoDB WeekRepository.
func NewMongoWeekRepo() WeekRepository {
	return newMongoWeekRepo(database.DB().Collection("weeks"), database.Timeout())
}

func newMongoWeekRepo(coll *mongo.Collection, timeout time.Duration) *mongoWeekRepo {
	return &mongoWeekRepo{coll: coll, timeout: timeout}
}
