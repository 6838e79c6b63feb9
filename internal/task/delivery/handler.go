package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mytask-backend/internal/task/domain"
	"mytask-backend/internal/task/usecase"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    string  `json:"priority"`
}

// GetTasks returns all tasks on a board
// GET /api/boards/:boardId/tasks
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")
	boardID := c.Param("boardId")

	tasks, err := h.taskUsecase.GetBoardTasks(c.Request.Context(), userID, boardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GetTaskByID returns a specific task
// GET /api/boards/:boardId/tasks/:id
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	userID := c.GetString("userID")

	task, err := h.taskUsecase.GetTaskByID(c.Request.Context(), userID, c.Param("boardId"), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, task)
}

// CreateTask creates a new task on a board
// POST /api/boards/:boardId/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")
	userEmail := c.GetString("userEmail")
	boardID := c.Param("boardId")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(c.Request.Context(), userID, userEmail, boardID, req.Title, req.Description, req.DueDate, req.Priority)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/boards/:boardId/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(c.Request.Context(), userID, c.Param("boardId"), c.Param("id"), updates)
	if err != nil {
		h.writeUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTaskStatus updates only a task's status
// PATCH /api/boards/:boardId/tasks/:id/status
func (h *TaskHandler) UpdateTaskStatus(c *gin.Context) {
	userID := c.GetString("userID")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTaskStatus(c.Request.Context(), userID, c.Param("boardId"), c.Param("id"), domain.TaskStatus(req.Status))
	if err != nil {
		h.writeUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/boards/:boardId/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.taskUsecase.DeleteTask(c.Request.Context(), userID, c.Param("boardId"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// ArchiveTask moves a task to the board's archive
// POST /api/boards/:boardId/tasks/:id/archive
func (h *TaskHandler) ArchiveTask(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.taskUsecase.ArchiveTask(c.Request.Context(), userID, c.Param("boardId"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "archived"})
}

// GetArchivedTasks returns a board's archived tasks
// GET /api/boards/:boardId/archived
func (h *TaskHandler) GetArchivedTasks(c *gin.Context) {
	userID := c.GetString("userID")

	tasks, err := h.taskUsecase.GetArchivedTasks(c.Request.Context(), userID, c.Param("boardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks, "total": len(tasks)})
}

// GetAnalyticsSummary returns the caller's task counts per status
// GET /api/analytics/summary
func (h *TaskHandler) GetAnalyticsSummary(c *gin.Context) {
	userID := c.GetString("userID")

	counts, err := h.taskUsecase.CountByStatus(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pending":     counts[domain.TaskStatusPending],
		"in_progress": counts[domain.TaskStatusInProgress],
		"done":        counts[domain.TaskStatusDone],
	})
}

func (h *TaskHandler) writeUsecaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, usecase.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
