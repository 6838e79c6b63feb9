package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mytask-backend/internal/plan/domain"
	"mytask-backend/internal/plan/repository"
)

// PlanHandler handles planner HTTP requests
type PlanHandler struct {
	planRepo repository.PlanRepository
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planRepo repository.PlanRepository) *PlanHandler {
	return &PlanHandler{planRepo: planRepo}
}

type planRequest struct {
	Date  string            `json:"date" binding:"required"`
	Items []domain.PlanItem `json:"items"`
}

// GetPlans returns the caller's plans
// GET /api/plans
func (h *PlanHandler) GetPlans(c *gin.Context) {
	plans, err := h.planRepo.FindByUser(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans, "total": len(plans)})
}

// CreatePlan creates a day plan
// POST /api/plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := &domain.Plan{Date: req.Date, Items: req.Items}
	if err := h.planRepo.Create(c.Request.Context(), c.GetString("userID"), plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan replaces a plan's date and items
// PUT /api/plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := &domain.Plan{ID: c.Param("id"), Date: req.Date, Items: req.Items}
	if err := h.planRepo.Update(c.Request.Context(), c.GetString("userID"), plan); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// DeletePlan removes a plan
// DELETE /api/plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	if err := h.planRepo.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
