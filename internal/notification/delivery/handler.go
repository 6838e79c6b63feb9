package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mytask-backend/internal/notification/repository"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	notificationRepo repository.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationRepo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// GetNotifications returns the caller's notifications, newest first
// GET /api/notifications
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	notifications, err := h.notificationRepo.FindByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications, "total": len(notifications)})
}

// MarkRead flips a notification's read flag
// PATCH /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationRepo.MarkRead(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "read"})
}

// DeleteNotification removes a notification
// DELETE /api/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notificationRepo.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
