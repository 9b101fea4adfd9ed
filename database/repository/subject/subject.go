// File: database/repository/subject/subject.go
package subjectRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplanner/database"
	"studyplanner/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubjectRepository is a read-only view of a user's subjects.
type SubjectRepository interface {
	// GetByID returns the user's live subject with the given id, or nil.
	GetByID(ctx context.Context, userID, id string) (*models.Subject, error)
}

type mongoSubjectRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoSubjectRepo constructs a new MongoDB SubjectRepository.
func NewMongoSubjectRepo() SubjectRepository {
	return &mongoSubjectRepo{
		coll:    database.DB().Collection("subjects"),
		timeout: database.Timeout(),
	}
}

func (r *mongoSubjectRepo) GetByID(ctx context.Context, userID, id string) (*models.Subject, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"id": id, "userId": userID, "deleted": false}
	var subject models.Subject
	if err := r.coll.FindOne(ctx, filter).Decode(&subject); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch subject %s: %w", id, err)
	}
	return &subject, nil
}
