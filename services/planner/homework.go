package planner

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"studyplanner/models"
	"studyplanner/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func validateHomework(req models.CreateHomeworkRequest) (*models.Homework, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("name is required")
	}
	if req.SubjectID == "" {
		return nil, errors.New("subjectId is required")
	}
	if req.Duration < 0 {
		return nil, errors.New("duration cannot be negative")
	}
	expiration, err := utils.ParseDay(req.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("expirationDate: %w", err)
	}

	planned := make([]models.PlannedAllocation, 0, len(req.PlannedDates))
	for i, p := range req.PlannedDates {
		if p.Minutes < 0 {
			return nil, fmt.Errorf("plannedDates[%d]: minutes cannot be negative", i)
		}
		day, err := utils.ParseDay(p.Date)
		if err != nil {
			return nil, fmt.Errorf("plannedDates[%d]: %w", i, err)
		}
		planned = append(planned, models.PlannedAllocation{
			ID:      uuid.New().String(),
			Date:    day,
			Minutes: p.Minutes,
		})
	}

	return &models.Homework{
		ID:             uuid.New().String(),
		SubjectID:      req.SubjectID,
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Duration:       req.Duration,
		ExpirationDate: expiration,
		PlannedDates:   planned,
	}, nil
}

// CreateHomework stores the homework and then applies its planned allocations.
// When only part of the allocations could be applied the created homework is returned
// together with a partialWriteFailure error, and a background replay is scheduled.
func (s *DefaultPlannerService) CreateHomework(ctx context.Context, userID string, req models.CreateHomeworkRequest) (*models.Homework, error) {
	hw, err := validateHomework(req)
	if err != nil {
		return nil, newError(KindInvalidInput, "invalid homework", err)
	}
	hw.UserID = userID

	subject, err := s.Subjects.GetByID(ctx, userID, req.SubjectID)
	if err != nil {
		return nil, newError(KindDataFetchFailure, "failed to load subject", err)
	}
	if subject == nil {
		return nil, newError(KindPreconditionMissing, ErrSubjectNotFound.Error(), ErrSubjectNotFound)
	}

	tpl, err := s.loadTemplate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.Homework.Create(ctx, hw); err != nil {
		s.Logger.Error("homework creation failed", zap.String("userId", userID), zap.Error(err))
		return nil, newError(KindWriteFailure, "unable to create homework", err)
	}

	if err := s.Reconciler.Plan(ctx, userID, hw.PlannedDates, *tpl); err != nil {
		s.Logger.Error("homework allocations partially applied",
			zap.String("userId", userID),
			zap.String("homeworkId", hw.ID),
			zap.Error(err),
		)
		msg := "homework created but some planned dates were not applied; reconciliation scheduled"
		if enqErr := s.scheduleReconcile(ctx, userID, hw.ID); enqErr != nil {
			s.Logger.Error("failed to schedule reconciliation", zap.String("homeworkId", hw.ID), zap.Error(enqErr))
			msg = "homework created but some planned dates were not applied; reconciliation could not be scheduled"
		}
		return hw, newError(KindPartialWriteFailure, msg, err)
	}

	s.Logger.Info("homework created",
		zap.String("userId", userID),
		zap.String("homeworkId", hw.ID),
		zap.Int("plannedDates", len(hw.PlannedDates)),
	)
	return hw, nil
}

func (s *DefaultPlannerService) scheduleReconcile(ctx context.Context, userID, homeworkID string) error {
	if s.Enqueuer == nil {
		return errors.New("no reconcile enqueuer configured")
	}
	return s.Enqueuer.EnqueueReconcile(ctx, userID, homeworkID)
}

func (s *DefaultPlannerService) ListHomework(ctx context.Context, userID string) ([]models.Homework, error) {
	list, err := s.Homework.ListByUser(ctx, userID)
	if err != nil {
		return nil, newError(KindDataFetchFailure, "failed to list homework", err)
	}
	return list, nil
}

// ReconcileHomework replays every allocation of a homework. Already applied
// allocations are skipped by the day store.
func (s *DefaultPlannerService) ReconcileHomework(ctx context.Context, userID, homeworkID string) error {
	hw, err := s.Homework.GetByID(ctx, homeworkID)
	if err != nil {
		return newError(KindDataFetchFailure, "failed to load homework", err)
	}
	if hw == nil || hw.UserID != userID {
		return newError(KindNotFound, fmt.Sprintf("homework %s not found", homeworkID), nil)
	}

	tpl, err := s.loadTemplate(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.Reconciler.Plan(ctx, userID, hw.PlannedDates, *tpl); err != nil {
		return newError(KindPartialWriteFailure, "homework reconciliation incomplete", err)
	}
	s.Logger.Info("homework reconciled", zap.String("homeworkId", homeworkID))
	return nil
}
