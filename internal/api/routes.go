package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"diario/wellness-app/internal/auth"
	"diario/wellness-app/internal/service"
)

// SetupRoutes wires the HTTP surface over the wellness service. Every data
// route sits behind the identity provider's JWT and the email allow-list.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	allowList auth.AllowList,
	wellness service.WellnessService,
) {
	dataHandler := NewDataHandler(wellness)
	workoutHandler := NewWorkoutHandler(wellness)
	syncHandler := NewSyncHandler(wellness)

	authMiddleware := AuthMiddleware(jwtSecret, allowList)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID, "email": c.GetString(ContextUserEmailKey)})
		})

		// --- Aggregate state and settings ---
		protected.GET("/state", dataHandler.GetState)
		protected.PUT("/settings", dataHandler.SaveSettings)
		protected.PUT("/goals", dataHandler.SaveGoals)

		// --- Daily nutrition logs ---
		protected.PUT("/logs/:date", dataHandler.SaveDailyLog)
		protected.POST("/logs/analyze", syncHandler.AnalyzeMeal)

		// --- Routines ---
		routineGroup := protected.Group("/routines")
		{
			routineGroup.PUT("", workoutHandler.SaveRoutines)
			routineGroup.DELETE("/:id", workoutHandler.DeleteRoutine)
			routineGroup.POST("/import", syncHandler.ImportRoutines)
		}

		// --- Workout sessions ---
		sessionGroup := protected.Group("/sessions")
		{
			sessionGroup.POST("/start", workoutHandler.StartWorkout)
			sessionGroup.PUT("/active", workoutHandler.UpdateActiveSession)
			sessionGroup.POST("/finish", workoutHandler.FinishWorkout)
			sessionGroup.PUT("/history/:id", workoutHandler.UpdateHistorySession)
			sessionGroup.DELETE("/history/:id", workoutHandler.DeleteHistorySession)
		}

		// --- Body measurements ---
		measurementGroup := protected.Group("/measurements")
		{
			measurementGroup.PUT("", dataHandler.SaveMeasurement)
			measurementGroup.DELETE("/:date", dataHandler.DeleteMeasurement)
		}

		// --- AI progress analysis ---
		protected.GET("/analysis", syncHandler.AnalyzeProgress)

		// --- Remote sync and backups ---
		syncGroup := protected.Group("/sync")
		{
			syncGroup.POST("/engage", syncHandler.EngageSync)
			syncGroup.POST("/disengage", syncHandler.DisengageSync)
			syncGroup.POST("/backup", syncHandler.Backup)
			// Snapshot keys contain slashes, hence the wildcard match.
			syncGroup.GET("/backup/*key", syncHandler.RestoreBackup)
			syncGroup.DELETE("/backup/*key", syncHandler.DeleteBackup)
		}
	}
}
