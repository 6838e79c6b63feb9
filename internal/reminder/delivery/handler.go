package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mytask-backend/internal/reminder"
)

// JobHandler exposes the reminder engine and window inspector over HTTP so an
// external scheduler can trigger runs and an operator can debug the window.
type JobHandler struct {
	engine    *reminder.Engine
	inspector *reminder.Inspector
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(engine *reminder.Engine, inspector *reminder.Inspector) *JobHandler {
	return &JobHandler{engine: engine, inspector: inspector}
}

// RunReminders triggers one reminder scan
// POST /api/jobs/reminders/run
func (h *JobHandler) RunReminders(c *gin.Context) {
	if err := h.engine.Run(c.Request.Context()); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// InspectWindow reports the raw reminder-window test for every stored task
// GET|POST /api/debug/reminder-window
func (h *JobHandler) InspectWindow(c *gin.Context) {
	report, err := h.inspector.Report(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, report)
}
