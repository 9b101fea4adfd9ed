package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studyplanner/models"
	"studyplanner/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

func (s *DefaultPlannerService) GetWeek(ctx context.Context, userID string) (*models.WeeklyTemplate, error) {
	return s.loadTemplate(ctx, userID)
}

// SaveWeek replaces the user's template. Days already baked keep their balances.
func (s *DefaultPlannerService) SaveWeek(ctx context.Context, userID string, tpl models.WeeklyTemplate) (*models.WeeklyTemplate, error) {
	for day, minutes := range tpl.FreeMinutes {
		if minutes < 0 {
			return nil, newError(KindInvalidInput, "invalid weekly template",
				fmt.Errorf("%s free minutes cannot be negative", time.Weekday(day)))
		}
	}

	tpl.UserID = userID
	if err := s.Weeks.Upsert(ctx, &tpl); err != nil {
		return nil, newError(KindWriteFailure, "unable to save weekly template", err)
	}
	return &tpl, nil
}

// ResetDay removes a day's override so it resolves from the template again.
func (s *DefaultPlannerService) ResetDay(ctx context.Context, userID, date string) error {
	day, err := utils.ParseDay(date)
	if err != nil {
		return newError(KindInvalidInput, "invalid date", err)
	}
	if err := s.Days.SoftDelete(ctx, userID, day); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return newError(KindNotFound, fmt.Sprintf("no override for %s", utils.DayKey(day)), err)
		}
		return newError(KindWriteFailure, "unable to reset day", err)
	}
	return nil
}
