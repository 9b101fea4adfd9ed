package planner

import (
	"context"
	"errors"
	"time"

	"studyplanner/config"
	dayRepo "studyplanner/database/repository/day"
	homeworkRepo "studyplanner/database/repository/homework"
	subjectRepo "studyplanner/database/repository/subject"
	weekRepo "studyplanner/database/repository/week"
	"studyplanner/models"

	"go.uber.org/zap"
)

type PlannerService interface {
	// Free days
	FreeDays(ctx context.Context, userID, expirationDate string, pageNumber int) ([]models.FreeDayEntry, error)

	// Homework
	CreateHomework(ctx context.Context, userID string, req models.CreateHomeworkRequest) (*models.Homework, error)
	ListHomework(ctx context.Context, userID string) ([]models.Homework, error)
	ReconcileHomework(ctx context.Context, userID, homeworkID string) error

	// Weekly template and day overrides
	GetWeek(ctx context.Context, userID string) (*models.WeeklyTemplate, error)
	SaveWeek(ctx context.Context, userID string, tpl models.WeeklyTemplate) (*models.WeeklyTemplate, error)
	ResetDay(ctx context.Context, userID, date string) error
}

// ReconcileEnqueuer schedules a background replay of a homework's allocations.
type ReconcileEnqueuer interface {
	EnqueueReconcile(ctx context.Context, userID, homeworkID string) error
}

// DefaultPlannerService is the production implementation.
type DefaultPlannerService struct {
	Weeks      weekRepo.WeekRepository
	Days       dayRepo.DayRepository
	Homework   homeworkRepo.HomeworkRepository
	Subjects   subjectRepo.SubjectRepository
	Reconciler *Reconciler
	Enqueuer   ReconcileEnqueuer
	PageSize   int
	Logger     *zap.Logger
	Now        func() time.Time
}

func NewDefaultPlannerService(
	weeks weekRepo.WeekRepository,
	days dayRepo.DayRepository,
	homework homeworkRepo.HomeworkRepository,
	subjects subjectRepo.SubjectRepository,
	enqueuer ReconcileEnqueuer,
	logger *zap.Logger,
) (*DefaultPlannerService, error) {
	if weeks == nil || days == nil || homework == nil || subjects == nil || logger == nil {
		return nil, errors.New("planner service initialization error: one or more dependencies are nil")
	}

	pageSize := config.AppConfig.FreeDaysPageSize
	if pageSize <= 0 {
		pageSize = config.DefaultFreeDaysPageSize
	}

	return &DefaultPlannerService{
		Weeks:      weeks,
		Days:       days,
		Homework:   homework,
		Subjects:   subjects,
		Reconciler: &Reconciler{Days: days},
		Enqueuer:   enqueuer,
		PageSize:   pageSize,
		Logger:     logger,
		Now:        time.Now,
	}, nil
}

func (s *DefaultPlannerService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultPlannerService) pageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return config.DefaultFreeDaysPageSize
}

// loadTemplate maps "no template" to a precondition failure.
func (s *DefaultPlannerService) loadTemplate(ctx context.Context, userID string) (*models.WeeklyTemplate, error) {
	tpl, err := s.Weeks.GetByUserID(ctx, userID)
	if err != nil {
		return nil, newError(KindDataFetchFailure, "failed to load weekly template", err)
	}
	if tpl == nil {
		return nil, newError(KindPreconditionMissing, ErrTemplateMissing.Error(), ErrTemplateMissing)
	}
	return tpl, nil
}
