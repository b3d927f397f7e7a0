package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"diario/wellness-app/internal/domain"
	"diario/wellness-app/internal/service"
)

// WorkoutHandler covers routines and the workout session lifecycle.
type WorkoutHandler struct {
	wellness service.WellnessService
}

func NewWorkoutHandler(wellness service.WellnessService) *WorkoutHandler {
	return &WorkoutHandler{wellness: wellness}
}

// SaveRoutines replaces the full routine list.
func (h *WorkoutHandler) SaveRoutines(c *gin.Context) {
	var routines []domain.WorkoutRoutine
	if err := c.ShouldBindJSON(&routines); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.wellness.SaveRoutines(c.Request.Context(), routines); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save routines.")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteRoutine removes one routine by id.
func (h *WorkoutHandler) DeleteRoutine(c *gin.Context) {
	if err := h.wellness.DeleteRoutine(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete routine.")
		return
	}
	c.Status(http.StatusNoContent)
}

// StartWorkout opens the active-session slot from a routine.
func (h *WorkoutHandler) StartWorkout(c *gin.Context) {
	var routine domain.WorkoutRoutine
	if err := c.ShouldBindJSON(&routine); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	session, err := h.wellness.StartWorkout(c.Request.Context(), routine)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to start workout.")
		return
	}
	c.JSON(http.StatusCreated, session)
}

// UpdateActiveSession overwrites the in-progress session (sets logged,
// notes, exercise completion).
func (h *WorkoutHandler) UpdateActiveSession(c *gin.Context) {
	var session *domain.WorkoutSession
	if err := c.ShouldBindJSON(&session); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.wellness.UpdateActiveSession(c.Request.Context(), session); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update active session.")
		return
	}
	c.Status(http.StatusNoContent)
}

// FinishWorkout moves the active session into history.
func (h *WorkoutHandler) FinishWorkout(c *gin.Context) {
	var session domain.WorkoutSession
	if err := c.ShouldBindJSON(&session); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if session.ID == "" {
		abortWithError(c, http.StatusBadRequest, "Session id is required.")
		return
	}
	if err := h.wellness.FinishWorkout(c.Request.Context(), session); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to finish workout.")
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateHistorySession edits one past session.
func (h *WorkoutHandler) UpdateHistorySession(c *gin.Context) {
	var session domain.WorkoutSession
	if err := c.ShouldBindJSON(&session); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	session.ID = c.Param("id")
	if err := h.wellness.UpdateHistorySession(c.Request.Context(), session); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update session.")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteHistorySession removes one past session.
func (h *WorkoutHandler) DeleteHistorySession(c *gin.Context) {
	if err := h.wellness.DeleteHistorySession(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete session.")
		return
	}
	c.Status(http.StatusNoContent)
}

// parseDate validates a YYYY-MM-DD date key.
func parseDate(date string) (time.Time, error) {
	return time.Parse(domain.DateLayout, date)
}
