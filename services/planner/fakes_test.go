package planner

import (
	"context"
	"errors"
	"sync"
	"time"

	"studyplanner/models"
	"studyplanner/utils"

	"go.mongodb.org/mongo-driver/mongo"
)

// fakeDayRepo mirrors the Mongo day store in memory.
type fakeDayRepo struct {
	mu      sync.Mutex
	days    map[string]*models.DayOverride // userID + "/" + day key
	calls   int
	failOn  map[string]error // day key -> error returned by UpsertDecrement
	listErr error
}

func newFakeDayRepo() *fakeDayRepo {
	return &fakeDayRepo{days: map[string]*models.DayOverride{}, failOn: map[string]error{}}
}

func dayKeyFor(userID string, date time.Time) string {
	return userID + "/" + utils.DayKey(utils.StartOfDay(date))
}

func (f *fakeDayRepo) Get(_ context.Context, userID string, date time.Time) (*models.DayOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.days[dayKeyFor(userID, date)]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDayRepo) ListFrom(_ context.Context, userID string, from time.Time) ([]models.DayOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	fromKey := utils.DayKey(utils.StartOfDay(from))
	out := []models.DayOverride{}
	for _, d := range f.days {
		if d.UserID == userID && d.Date >= fromKey {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (f *fakeDayRepo) UpsertDecrement(_ context.Context, userID string, date time.Time, minutes int, allocationID string, tpl models.WeeklyTemplate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	day := utils.StartOfDay(date)
	if err := f.failOn[utils.DayKey(day)]; err != nil {
		return err
	}

	key := dayKeyFor(userID, day)
	d, ok := f.days[key]
	if !ok {
		d = &models.DayOverride{
			UserID:      userID,
			Date:        utils.DayKey(day),
			FreeMinutes: tpl.MinutesOn(day.Weekday()),
		}
		f.days[key] = d
	}
	for _, id := range d.AppliedAllocations {
		if id == allocationID {
			return nil
		}
	}
	d.FreeMinutes -= minutes
	d.AppliedAllocations = append(d.AppliedAllocations, allocationID)
	return nil
}

func (f *fakeDayRepo) SoftDelete(_ context.Context, userID string, date time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := dayKeyFor(userID, date)
	if _, ok := f.days[key]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(f.days, key)
	return nil
}

type fakeWeekRepo struct {
	weeks  map[string]models.WeeklyTemplate
	getErr error
}

func (f *fakeWeekRepo) GetByUserID(_ context.Context, userID string) (*models.WeeklyTemplate, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	tpl, ok := f.weeks[userID]
	if !ok {
		return nil, nil
	}
	return &tpl, nil
}

func (f *fakeWeekRepo) Upsert(_ context.Context, tpl *models.WeeklyTemplate) error {
	if f.weeks == nil {
		f.weeks = map[string]models.WeeklyTemplate{}
	}
	f.weeks[tpl.UserID] = *tpl
	return nil
}

type fakeHomeworkRepo struct {
	items     map[string]models.Homework
	createErr error
}

func (f *fakeHomeworkRepo) Create(_ context.Context, hw *models.Homework) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.items == nil {
		f.items = map[string]models.Homework{}
	}
	f.items[hw.ID] = *hw
	return nil
}

func (f *fakeHomeworkRepo) GetByID(_ context.Context, id string) (*models.Homework, error) {
	hw, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return &hw, nil
}

func (f *fakeHomeworkRepo) ListByUser(_ context.Context, userID string) ([]models.Homework, error) {
	out := []models.Homework{}
	for _, hw := range f.items {
		if hw.UserID == userID {
			out = append(out, hw)
		}
	}
	return out, nil
}

type fakeSubjectRepo struct {
	subjects map[string]models.Subject
}

func (f *fakeSubjectRepo) GetByID(_ context.Context, userID, id string) (*models.Subject, error) {
	s, ok := f.subjects[id]
	if !ok || s.UserID != userID {
		return nil, nil
	}
	return &s, nil
}

type fakeEnqueuer struct {
	calls []string
	err   error
}

func (f *fakeEnqueuer) EnqueueReconcile(_ context.Context, userID, homeworkID string) error {
	f.calls = append(f.calls, userID+"/"+homeworkID)
	return f.err
}

var errBoom = errors.New("boom")
