// File: database/repository/day/interface.go
package dayRepo

import (
	"context"
	"time"

	"studyplanner/database"
	"studyplanner/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// DayRepository stores per-date free-minute overrides. All reads ignore soft-deleted rows.
type DayRepository interface {
	// Get returns the live override for the calendar day of date, or nil.
	Get(ctx context.Context, userID string, date time.Time) (*models.DayOverride, error)
	// ListFrom returns every live override dated on or after from, ascending.
	ListFrom(ctx context.Context, userID string, from time.Time) ([]models.DayOverride, error)
	// UpsertDecrement subtracts minutes from the day's balance, creating the row from the
	// template capacity on first touch. Replaying the same allocationID is a no-op.
	UpsertDecrement(ctx context.Context, userID string, date time.Time, minutes int, allocationID string, tpl models.WeeklyTemplate) error
	// SoftDelete marks the live override deleted so the day falls back to the template.
	SoftDelete(ctx context.Context, userID string, date time.Time) error
}

type mongoDayRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoDayRepo constructs a new MongoDB DayRepository.
func NewMongoDayRepo() DayRepository {
	return newMongoDayRepo(database.DB().Collection("days"), database.Timeout())
}

func newMongoDayRepo(coll *mongo.Collection, timeout time.Duration) *mongoDayRepo {
	return &mongoDayRepo{coll: coll, timeout: timeout}
}
