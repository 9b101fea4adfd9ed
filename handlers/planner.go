package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studyplanner/models"
	"studyplanner/services/planner"
	"studyplanner/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlannerHandler struct {
	Service planner.PlannerService
}

func NewPlannerHandler(svc planner.PlannerService) *PlannerHandler {
	return &PlannerHandler{Service: svc}
}

// statusFor maps a planner error kind to an HTTP status.
func statusFor(err error) int {
	switch planner.KindOf(err) {
	case planner.KindPreconditionMissing, planner.KindInvalidInput, planner.KindDataFetchFailure:
		return http.StatusBadRequest
	case planner.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	message := "Internal Server Error"
	var pe *planner.PlannerError
	if errors.As(err, &pe) {
		message = pe.Message
	}
	details := ""
	if pe != nil && pe.Err != nil {
		details = pe.Err.Error()
	}
	utils.JSONError(c, statusFor(err), message, details)
}

// currentUser reads the id set by JWTAuthUserMiddleware.
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "User not authenticated"})
		return "", false
	}
	return userID, true
}

func (h *PlannerHandler) CreateHomeworkHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req models.CreateHomeworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	hw, err := h.Service.CreateHomework(c.Request.Context(), userID, req)
	if err != nil {
		if planner.KindOf(err) == planner.KindPartialWriteFailure && hw != nil {
			getLogger(c).Error("homework saved with unapplied planned dates",
				zap.String("homeworkId", hw.ID), zap.Error(err))
			resp := gin.H{"message": err.Error(), "homework": hw}
			var pe *planner.PlannerError
			if errors.As(err, &pe) {
				resp["message"] = pe.Message
				if pe.Err != nil {
					resp["details"] = pe.Err.Error()
				}
			}
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, hw)
}

func (h *PlannerHandler) ListHomeworkHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.Service.ListHomework(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// FreeDaysHandler serves one page of free days before a deadline.
func (h *PlannerHandler) FreeDaysHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.Param("pageNumber"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid page number", err.Error())
		return
	}

	var body models.FreeDaysRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing or invalid expirationDate in request body", err.Error())
		return
	}

	days, err := h.Service.FreeDays(c.Request.Context(), userID, body.ExpirationDate, page)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *PlannerHandler) GetWeekHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	tpl, err := h.Service.GetWeek(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tpl)
}

func (h *PlannerHandler) SaveWeekHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var tpl models.WeeklyTemplate
	if err := c.ShouldBindJSON(&tpl); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	saved, err := h.Service.SaveWeek(c.Request.Context(), userID, tpl)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *PlannerHandler) ResetDayHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.Service.ResetDay(c.Request.Context(), userID, c.Param("date")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Day reset to the weekly template"})
}
