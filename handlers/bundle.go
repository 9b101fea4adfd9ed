package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers wired by routes.RegisterRoutes.
type HandlerBundle struct {
	// Homework endpoints
	CreateHomeworkHandler gin.HandlerFunc
	ListHomeworkHandler   gin.HandlerFunc
	FreeDaysHandler       gin.HandlerFunc

	// Weekly template and day endpoints
	GetWeekHandler  gin.HandlerFunc
	SaveWeekHandler gin.HandlerFunc
	ResetDayHandler gin.HandlerFunc
}

// NewHandlerBundle binds every route to the planner handler.
func NewHandlerBundle(h *PlannerHandler) *HandlerBundle {
	return &HandlerBundle{
		CreateHomeworkHandler: h.CreateHomeworkHandler,
		ListHomeworkHandler:   h.ListHomeworkHandler,
		FreeDaysHandler:       h.FreeDaysHandler,
		GetWeekHandler:        h.GetWeekHandler,
		SaveWeekHandler:       h.SaveWeekHandler,
		ResetDayHandler:       h.ResetDayHandler,
	}
}
