package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"studyplanner/models"
	"studyplanner/services/planner"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Logger = zap.NewNop()
}

// fakePlanner records the arguments it receives and returns canned results.
type fakePlanner struct {
	err error

	gotUser string
	gotPage int
	gotDate string
	gotReq  models.CreateHomeworkRequest
	gotWeek models.WeeklyTemplate

	homework *models.Homework
	days     []models.FreeDayEntry
}

func (f *fakePlanner) FreeDays(_ context.Context, userID, expirationDate string, pageNumber int) ([]models.FreeDayEntry, error) {
	f.gotUser, f.gotDate, f.gotPage = userID, expirationDate, pageNumber
	return f.days, f.err
}

func (f *fakePlanner) CreateHomework(_ context.Context, userID string, req models.CreateHomeworkRequest) (*models.Homework, error) {
	f.gotUser, f.gotReq = userID, req
	return f.homework, f.err
}

func (f *fakePlanner) ListHomework(_ context.Context, userID string) ([]models.Homework, error) {
	f.gotUser = userID
	return []models.Homework{}, f.err
}

func (f *fakePlanner) ReconcileHomework(context.Context, string, string) error {
	return f.err
}

func (f *fakePlanner) GetWeek(_ context.Context, userID string) (*models.WeeklyTemplate, error) {
	f.gotUser = userID
	if f.err != nil {
		return nil, f.err
	}
	return &models.WeeklyTemplate{UserID: userID}, nil
}

func (f *fakePlanner) SaveWeek(_ context.Context, userID string, tpl models.WeeklyTemplate) (*models.WeeklyTemplate, error) {
	f.gotUser, f.gotWeek = userID, tpl
	tpl.UserID = userID
	return &tpl, f.err
}

func (f *fakePlanner) ResetDay(_ context.Context, userID, date string) error {
	f.gotUser, f.gotDate = userID, date
	return f.err
}

func newRouter(svc planner.PlannerService, userID string) *gin.Engine {
	b := NewHandlerBundle(NewPlannerHandler(svc))
	r := gin.New()
	api := r.Group("/api", func(c *gin.Context) {
		if userID != "" {
			c.Set("userID", userID)
		}
		c.Next()
	})
	api.POST("/homework", b.CreateHomeworkHandler)
	api.GET("/homework", b.ListHomeworkHandler)
	api.POST("/homework/free-days/:pageNumber", b.FreeDaysHandler)
	api.GET("/week", b.GetWeekHandler)
	api.PUT("/week", b.SaveWeekHandler)
	api.DELETE("/days/:date", b.ResetDayHandler)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestFreeDaysHandler(t *testing.T) {
	svc := &fakePlanner{days: []models.FreeDayEntry{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), FreeMinutes: 60},
	}}
	w := do(newRouter(svc, "u1"), http.MethodPost, "/api/homework/free-days/2", `{"expirationDate":"2024-01-20"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if svc.gotUser != "u1" || svc.gotPage != 2 || svc.gotDate != "2024-01-20" {
		t.Errorf("service got user=%q page=%d date=%q", svc.gotUser, svc.gotPage, svc.gotDate)
	}

	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(got) != 1 || got[0]["freeMinutes"] != float64(60) {
		t.Errorf("body = %v, want one entry with freeMinutes 60", got)
	}
}

func TestFreeDaysHandler_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "non numeric page", path: "/api/homework/free-days/two", body: `{"expirationDate":"2024-01-20"}`},
		{name: "missing expiration", path: "/api/homework/free-days/1", body: `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&fakePlanner{}, "u1"), http.MethodPost, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		kind planner.ErrorKind
		want int
	}{
		{planner.KindPreconditionMissing, http.StatusBadRequest},
		{planner.KindInvalidInput, http.StatusBadRequest},
		{planner.KindDataFetchFailure, http.StatusBadRequest},
		{planner.KindNotFound, http.StatusNotFound},
		{planner.KindWriteFailure, http.StatusInternalServerError},
		{planner.KindPartialWriteFailure, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			svc := &fakePlanner{err: &planner.PlannerError{Kind: tt.kind, Message: "nope"}}
			w := do(newRouter(svc, "u1"), http.MethodGet, "/api/week", "")
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}

			var body utils.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Message != "nope" {
				t.Errorf("message = %q, want %q", body.Message, "nope")
			}
		})
	}
}

func TestCreateHomeworkHandler(t *testing.T) {
	body := `{"name":"Essay","subjectId":"math","duration":35,"expirationDate":"2024-01-10",
		"plannedDates":[{"date":"2024-01-01","minutes":20}]}`

	t.Run("created", func(t *testing.T) {
		svc := &fakePlanner{homework: &models.Homework{ID: "hw1", Name: "Essay"}}
		w := do(newRouter(svc, "u1"), http.MethodPost, "/api/homework", body)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
		}
		if len(svc.gotReq.PlannedDates) != 1 || svc.gotReq.PlannedDates[0].Minutes != 20 {
			t.Errorf("request planned dates = %+v", svc.gotReq.PlannedDates)
		}
	})

	t.Run("partial write returns homework", func(t *testing.T) {
		svc := &fakePlanner{
			homework: &models.Homework{ID: "hw1"},
			err: &planner.PlannerError{
				Kind:    planner.KindPartialWriteFailure,
				Message: "homework created but some planned dates were not applied; reconciliation scheduled",
				Err:     &planner.PartialWriteError{Applied: 0, Total: 1, Date: "2024-01-01", Err: context.DeadlineExceeded},
			},
		}
		w := do(newRouter(svc, "u1"), http.MethodPost, "/api/homework", body)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		var got struct {
			Message  string          `json:"message"`
			Details  string          `json:"details"`
			Homework models.Homework `json:"homework"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decoding body: %v", err)
		}
		if got.Homework.ID != "hw1" || got.Details == "" {
			t.Errorf("body = %+v, want homework hw1 with details", got)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		w := do(newRouter(&fakePlanner{}, "u1"), http.MethodPost, "/api/homework", `{"subjectId":"math","expirationDate":"2024-01-10"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestSaveWeekHandler_NamedFields(t *testing.T) {
	svc := &fakePlanner{}
	w := do(newRouter(svc, "u1"), http.MethodPut, "/api/week", `{"mondayFreeMinutes":90,"saturdayFreeMinutes":30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if svc.gotWeek.MinutesOn(time.Monday) != 90 || svc.gotWeek.MinutesOn(time.Saturday) != 30 {
		t.Errorf("template = %v, want Monday 90 and Saturday 30", svc.gotWeek.FreeMinutes)
	}
}

func TestResetDayHandler(t *testing.T) {
	svc := &fakePlanner{}
	w := do(newRouter(svc, "u1"), http.MethodDelete, "/api/days/2024-01-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.gotDate != "2024-01-01" {
		t.Errorf("date = %q, want 2024-01-01", svc.gotDate)
	}
}

func TestHandlers_RequireUser(t *testing.T) {
	w := do(newRouter(&fakePlanner{}, ""), http.MethodGet, "/api/homework", "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
