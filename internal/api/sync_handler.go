package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"diario/wellness-app/internal/domain"
	"diario/wellness-app/internal/remote"
	"diario/wellness-app/internal/service"
	"diario/wellness-app/internal/storage"
)

// SyncHandler covers remote sync engagement, snapshot backups, and the AI
// analysis endpoints.
type SyncHandler struct {
	wellness service.WellnessService
}

func NewSyncHandler(wellness service.WellnessService) *SyncHandler {
	return &SyncHandler{wellness: wellness}
}

// EngageSync turns on remote sync for the authenticated user and returns
// the sanitized remote document.
func (h *SyncHandler) EngageSync(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	doc, err := h.wellness.Engage(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSyncDisabled):
			abortWithError(c, http.StatusServiceUnavailable, "Remote sync is not configured.")
		case errors.Is(err, remote.ErrUnavailable):
			abortWithError(c, http.StatusBadGateway, "Remote store is unreachable; continuing local-only.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to engage sync.")
		}
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DisengageSync returns the app to local-only operation.
func (h *SyncHandler) DisengageSync(c *gin.Context) {
	h.wellness.Disengage()
	c.Status(http.StatusNoContent)
}

// Backup uploads a snapshot of the aggregate state.
func (h *SyncHandler) Backup(c *gin.Context) {
	key, err := h.wellness.Backup(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrBackupDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, "Snapshot backup is not configured.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Backup failed.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"objectKey": key})
}

// snapshotKeyParam extracts the object key from a wildcard route segment.
// Snapshot keys contain slashes, so the routes use *key and gin includes the
// leading slash in the parameter.
func snapshotKeyParam(c *gin.Context) string {
	return strings.TrimPrefix(c.Param("key"), "/")
}

// RestoreBackup downloads a snapshot and replaces the local state with it.
func (h *SyncHandler) RestoreBackup(c *gin.Context) {
	key := snapshotKeyParam(c)
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "Snapshot key is required.")
		return
	}
	state, err := h.wellness.RestoreBackup(c.Request.Context(), key)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBackupDisabled):
			abortWithError(c, http.StatusServiceUnavailable, "Snapshot backup is not configured.")
		case errors.Is(err, storage.ErrSnapshotNotFound):
			abortWithError(c, http.StatusNotFound, "Snapshot not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Restore failed.")
		}
		return
	}
	c.JSON(http.StatusOK, state)
}

// DeleteBackup removes one snapshot object.
func (h *SyncHandler) DeleteBackup(c *gin.Context) {
	key := snapshotKeyParam(c)
	if key == "" {
		abortWithError(c, http.StatusBadRequest, "Snapshot key is required.")
		return
	}
	if err := h.wellness.DeleteBackup(c.Request.Context(), key); err != nil {
		switch {
		case errors.Is(err, service.ErrBackupDisabled):
			abortWithError(c, http.StatusServiceUnavailable, "Snapshot backup is not configured.")
		case errors.Is(err, storage.ErrSnapshotNotFound):
			abortWithError(c, http.StatusNotFound, "Snapshot not found.")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete snapshot.")
		}
		return
	}
	c.Status(http.StatusNoContent)
}

type analyzeMealRequest struct {
	Date        string          `json:"date" binding:"required"`
	Meal        domain.MealType `json:"meal" binding:"required"`
	Description string          `json:"description" binding:"required"`
}

// AnalyzeMeal runs a meal description through the AI service and appends
// the sanitized result to the day's log.
func (h *SyncHandler) AnalyzeMeal(c *gin.Context) {
	var req analyzeMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	items, err := h.wellness.AnalyzeMeal(c.Request.Context(), req.Date, req.Meal, req.Description)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisFailed) {
			abortWithError(c, http.StatusBadGateway, "Meal analysis is unavailable right now.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to record analyzed meal.")
		return
	}
	c.JSON(http.StatusOK, items)
}

type importRoutinesRequest struct {
	Goal string `json:"goal" binding:"required"`
}

// ImportRoutines generates routines for a goal and appends them to the
// user's routine list.
func (h *SyncHandler) ImportRoutines(c *gin.Context) {
	var req importRoutinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	routines, err := h.wellness.ImportRoutines(c.Request.Context(), req.Goal)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisFailed) {
			abortWithError(c, http.StatusBadGateway, "Routine generation is unavailable right now.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to import routines.")
		return
	}
	c.JSON(http.StatusOK, routines)
}

// AnalyzeProgress returns the AI service's free-text summary of the user's
// recent training and nutrition data.
func (h *SyncHandler) AnalyzeProgress(c *gin.Context) {
	summary, err := h.wellness.AnalyzeProgress(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrAnalysisFailed) {
			abortWithError(c, http.StatusBadGateway, "Progress analysis is unavailable right now.")
			return
		}
		abortWithError(c, http.StatusInternalServerError, "Failed to analyze progress.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": summary})
}
