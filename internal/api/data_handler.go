package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"diario/wellness-app/internal/domain"
	"diario/wellness-app/internal/service"
	"diario/wellness-app/internal/store"
)

// DataHandler exposes the aggregate state and the per-entity save
// operations over HTTP. It is the UI shell's adapter onto the wellness
// service; all real semantics live below it.
type DataHandler struct {
	wellness service.WellnessService
}

func NewDataHandler(wellness service.WellnessService) *DataHandler {
	return &DataHandler{wellness: wellness}
}

// GetState returns the full aggregate snapshot plus the preset routines.
func (h *DataHandler) GetState(c *gin.Context) {
	state, err := h.wellness.Bootstrap(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			abortWithError(c, http.StatusServiceUnavailable, "Local storage is unavailable.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to load application state.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state":   state,
		"presets": domain.PresetRoutines(),
	})
}

type settingsRequest struct {
	Theme *domain.Theme `json:"theme"`
	View  *domain.View  `json:"view"`
}

// SaveSettings persists theme and/or last-active view.
func (h *DataHandler) SaveSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	ctx := c.Request.Context()
	if req.Theme != nil {
		if err := h.wellness.SaveTheme(ctx, *req.Theme); err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to save theme.")
			return
		}
	}
	if req.View != nil {
		if err := h.wellness.SaveView(ctx, *req.View); err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to save view.")
			return
		}
	}
	c.Status(http.StatusNoContent)
}

// SaveGoals replaces the goal set.
func (h *DataHandler) SaveGoals(c *gin.Context) {
	var goals domain.NutritionGoals
	if err := c.ShouldBindJSON(&goals); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.wellness.SaveGoals(c.Request.Context(), goals); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save goals.")
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveDailyLog replaces the full meal map for one date.
func (h *DataHandler) SaveDailyLog(c *gin.Context) {
	date := c.Param("date")
	if _, err := parseDate(date); err != nil {
		abortWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD.")
		return
	}
	var dayLog domain.DailyLog
	if err := c.ShouldBindJSON(&dayLog); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if err := h.wellness.SaveDailyLog(c.Request.Context(), date, dayLog); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save daily log.")
		return
	}
	c.Status(http.StatusNoContent)
}

// SaveMeasurement upserts the body measurement for its date.
func (h *DataHandler) SaveMeasurement(c *gin.Context) {
	var m domain.BodyMeasurement
	if err := c.ShouldBindJSON(&m); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	if _, err := parseDate(m.Date); err != nil {
		abortWithError(c, http.StatusBadRequest, "Date must be YYYY-MM-DD.")
		return
	}
	if m.Weight <= 0 {
		abortWithError(c, http.StatusBadRequest, "Weight is required.")
		return
	}
	if err := h.wellness.SaveMeasurement(c.Request.Context(), m); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save measurement.")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMeasurement removes the measurement for a date; absent dates still
// return success.
func (h *DataHandler) DeleteMeasurement(c *gin.Context) {
	date := c.Param("date")
	if err := h.wellness.DeleteMeasurement(c.Request.Context(), date); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete measurement.")
		return
	}
	c.Status(http.StatusNoContent)
}
