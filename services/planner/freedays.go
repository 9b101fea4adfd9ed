package planner

import (
	"context"

	"studyplanner/models"
	"studyplanner/utils"

	"go.uber.org/zap"
)

// FreeDays returns one page of free days between today and the homework deadline.
func (s *DefaultPlannerService) FreeDays(ctx context.Context, userID, expirationDate string, pageNumber int) ([]models.FreeDayEntry, error) {
	if pageNumber < 1 {
		return nil, newError(KindInvalidInput, "page number must be 1 or greater", nil)
	}
	deadline, err := utils.ParseDay(expirationDate)
	if err != nil {
		return nil, newError(KindInvalidInput, "invalid expiration date", err)
	}

	tpl, err := s.loadTemplate(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := utils.StartOfDay(s.now())
	overrides, err := s.Days.ListFrom(ctx, userID, today)
	if err != nil {
		s.Logger.Error("free days lookup failed", zap.String("userId", userID), zap.Error(err))
		return nil, newError(KindDataFetchFailure, "an error has occurred finding the free hours", err)
	}

	size := s.pageSize()
	start := PageStart(today, pageNumber, size)
	entries := Paginate(start, deadline, *tpl, IndexOverrides(overrides), size)

	s.Logger.Debug("free days page computed",
		zap.String("userId", userID),
		zap.Int("page", pageNumber),
		zap.String("start", utils.DayKey(start)),
		zap.String("deadline", utils.DayKey(deadline)),
		zap.Int("overrides", len(overrides)),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}
