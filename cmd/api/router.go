package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authDelivery "mytask-backend/internal/auth/delivery"
	boardDelivery "mytask-backend/internal/board/delivery"
	notificationDelivery "mytask-backend/internal/notification/delivery"
	planDelivery "mytask-backend/internal/plan/delivery"
	reminderDelivery "mytask-backend/internal/reminder/delivery"
	taskDelivery "mytask-backend/internal/task/delivery"
)

// Handlers bundles the delivery-layer handlers the router wires up
type Handlers struct {
	Verifier      authDelivery.TokenVerifier
	Boards        *boardDelivery.BoardHandler
	Tasks         *taskDelivery.TaskHandler
	Plans         *planDelivery.PlanHandler
	Notifications *notificationDelivery.NotificationHandler
	Jobs          *reminderDelivery.JobHandler
}

func SetupRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Deployment-internal surfaces: the scheduler trigger and the
		// window inspector. Reached only from inside the deployment, so
		// no user auth.
		api.POST("/jobs/reminders/run", h.Jobs.RunReminders)
		api.GET("/debug/reminder-window", h.Jobs.InspectWindow)
		api.POST("/debug/reminder-window", h.Jobs.InspectWindow)

		auth := authDelivery.AuthMiddleware(h.Verifier)

		// Board routes (protected)
		boards := api.Group("/boards")
		boards.Use(auth)
		{
			boards.GET("", h.Boards.GetBoards)
			boards.POST("", h.Boards.CreateBoard)
			boards.GET("/:boardId", h.Boards.GetBoardByID)
			boards.PUT("/:boardId", h.Boards.UpdateBoard)
			boards.DELETE("/:boardId", h.Boards.DeleteBoard)

			// Task routes nested under their board
			boards.GET("/:boardId/tasks", h.Tasks.GetTasks)
			boards.POST("/:boardId/tasks", h.Tasks.CreateTask)
			boards.GET("/:boardId/tasks/:id", h.Tasks.GetTaskByID)
			boards.PUT("/:boardId/tasks/:id", h.Tasks.UpdateTask)
			boards.DELETE("/:boardId/tasks/:id", h.Tasks.DeleteTask)
			boards.PATCH("/:boardId/tasks/:id/status", h.Tasks.UpdateTaskStatus)
			boards.POST("/:boardId/tasks/:id/archive", h.Tasks.ArchiveTask)
			boards.GET("/:boardId/archived", h.Tasks.GetArchivedTasks)
		}

		// Planner routes (protected)
		plans := api.Group("/plans")
		plans.Use(auth)
		{
			plans.GET("", h.Plans.GetPlans)
			plans.POST("", h.Plans.CreatePlan)
			plans.PUT("/:id", h.Plans.UpdatePlan)
			plans.DELETE("/:id", h.Plans.DeletePlan)
		}

		// Notification routes (protected)
		notifications := api.Group("/notifications")
		notifications.Use(auth)
		{
			notifications.GET("", h.Notifications.GetNotifications)
			notifications.PATCH("/:id/read", h.Notifications.MarkRead)
			notifications.DELETE("/:id", h.Notifications.DeleteNotification)
		}

		// Analytics (protected)
		analytics := api.Group("/analytics")
		analytics.Use(auth)
		{
			analytics.GET("/summary", h.Tasks.GetAnalyticsSummary)
		}
	}
}
