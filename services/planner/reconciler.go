package planner

import (
	"context"
	"time"

	dayRepo "studyplanner/database/repository/day"
	"studyplanner/models"
	"studyplanner/utils"
)

// Reconciler turns planned allocations into day decrements.
type Reconciler struct {
	Days dayRepo.DayRepository
}

// Plan applies each allocation in order. It stops at the first failure and returns a
// *PartialWriteError; earlier decrements stay committed. Decrements are keyed by
// allocation id, so calling Plan again with the same list only applies the missing ones.
func (r *Reconciler) Plan(ctx context.Context, userID string, allocations []models.PlannedAllocation, tpl models.WeeklyTemplate) error {
	for i, a := range allocations {
		// Stored dates come back from Mongo in UTC.
		day := utils.StartOfDay(a.Date.In(time.Local))
		if err := r.Days.UpsertDecrement(ctx, userID, day, a.Minutes, a.ID, tpl); err != nil {
			return &PartialWriteError{
				Applied: i,
				Total:   len(allocations),
				Date:    utils.DayKey(day),
				Err:     err,
			}
		}
	}
	return nil
}
