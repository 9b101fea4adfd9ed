// File: database/repository/day/crud.go
package dayRepo

import (
	"context"
	"fmt"
	"time"

	"studyplanner/models"
	"studyplanner/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ifNull(field string, fallback interface{}) bson.D {
	return bson.D{{Key: "$ifNull", Value: bson.A{field, fallback}}}
}

func literal(v interface{}) bson.D {
	return bson.D{{Key: "$literal", Value: v}}
}

// decrementPipeline builds the single-document update that either seeds a new day
// from baseline or decrements the stored balance. An allocation already listed in
// appliedAllocations leaves the document untouched.
func decrementPipeline(newID string, baseline, minutes int, allocationID string, now time.Time) mongo.Pipeline {
	applied := ifNull("$appliedAllocations", bson.A{})

	var alreadyApplied interface{} = false
	appliedAfter := interface{}(applied)
	if allocationID != "" {
		alreadyApplied = bson.D{{Key: "$in", Value: bson.A{literal(allocationID), applied}}}
		appliedAfter = bson.D{{Key: "$setUnion", Value: bson.A{applied, bson.A{literal(allocationID)}}}}
	}

	decremented := bson.D{{Key: "$subtract", Value: bson.A{ifNull("$freeMinutes", baseline), minutes}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "id", Value: ifNull("$id", newID)},
			{Key: "freeMinutes", Value: bson.D{{Key: "$cond", Value: bson.A{alreadyApplied, "$freeMinutes", decremented}}}},
			{Key: "appliedAllocations", Value: appliedAfter},
			{Key: "createdAt", Value: ifNull("$createdAt", now)},
			{Key: "updatedAt", Value: bson.D{{Key: "$cond", Value: bson.A{alreadyApplied, "$updatedAt", now}}}},
		}}},
	}
}

func (r *mongoDayRepo) UpsertDecrement(
	ctx context.Context,
	userID string,
	date time.Time,
	minutes int,
	allocationID string,
	tpl models.WeeklyTemplate,
) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	day := utils.StartOfDay(date)
	key := utils.DayKey(day)

	filter := bson.M{
		"userId":  userID,
		"date":    key,
		"deleted": false,
	}
	pipeline := decrementPipeline(uuid.New().String(), tpl.MinutesOn(day.Weekday()), minutes, allocationID, time.Now())

	_, err := r.coll.UpdateOne(ctx, filter, pipeline, options.Update().SetUpsert(true))
	if mongo.IsDuplicateKeyError(err) {
		// Another request created the day between our match and insert; it exists now.
		_, err = r.coll.UpdateOne(ctx, filter, pipeline)
	}
	if err != nil {
		return fmt.Errorf("failed to decrement day %s for user %s: %w", key, userID, err)
	}
	return nil
}

func (r *mongoDayRepo) SoftDelete(ctx context.Context, userID string, date time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{
		"userId":  userID,
		"date":    utils.DayKey(utils.StartOfDay(date)),
		"deleted": false,
	}
	update := bson.M{
		"$set": bson.M{
			"deleted":   true,
			"updatedAt": time.Now(),
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to delete day: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
