package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mytask-backend/internal/board/domain"
	"mytask-backend/internal/board/repository"
)

// BoardHandler handles board-related HTTP requests
type BoardHandler struct {
	boardRepo repository.BoardRepository
}

// NewBoardHandler creates a new BoardHandler
func NewBoardHandler(boardRepo repository.BoardRepository) *BoardHandler {
	return &BoardHandler{boardRepo: boardRepo}
}

type boardRequest struct {
	Name string `json:"name" binding:"required"`
}

// GetBoards returns the caller's boards
// GET /api/boards
func (h *BoardHandler) GetBoards(c *gin.Context) {
	boards, err := h.boardRepo.FindByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"boards": boards, "total": len(boards)})
}

// GetBoardByID returns one board
// GET /api/boards/:boardId
func (h *BoardHandler) GetBoardByID(c *gin.Context) {
	board, err := h.boardRepo.FindByID(c.Request.Context(), c.GetString("userID"), c.Param("boardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}
	c.JSON(http.StatusOK, board)
}

// CreateBoard creates a board
// POST /api/boards
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board := &domain.Board{Name: req.Name}
	if err := h.boardRepo.Create(c.Request.Context(), c.GetString("userID"), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, board)
}

// UpdateBoard renames a board
// PUT /api/boards/:boardId
func (h *BoardHandler) UpdateBoard(c *gin.Context) {
	var req boardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetString("userID")
	board, err := h.boardRepo.FindByID(c.Request.Context(), userID, c.Param("boardId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if board == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
		return
	}

	board.Name = req.Name
	if err := h.boardRepo.Update(c.Request.Context(), userID, board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, board)
}

// DeleteBoard deletes a board
// DELETE /api/boards/:boardId
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	if err := h.boardRepo.Delete(c.Request.Context(), c.GetString("userID"), c.Param("boardId")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
