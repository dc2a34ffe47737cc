package handler

import (
	"time"

	financeapp "github.com/finsight/backend/internal/application/finance"
	"github.com/finsight/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LiabilityHandler handles liability API endpoints
type LiabilityHandler struct {
	BaseHandler
	liabilityService *financeapp.LiabilityService
}

// NewLiabilityHandler creates a new LiabilityHandler
func NewLiabilityHandler(liabilityService *financeapp.LiabilityService) *LiabilityHandler {
	return &LiabilityHandler{
		liabilityService: liabilityService,
	}
}

// CreateLiabilityRequest represents a request to create a liability
type CreateLiabilityRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=100"`
	Type         string     `json:"type" binding:"required,oneof=mortgage auto_loan student_loan personal_loan other"`
	Principal    float64    `json:"principal" binding:"min=0"`
	InterestRate *float64   `json:"interest_rate" binding:"omitempty,min=0,max=100"`
	DueAt        *time.Time `json:"due_at"`
	Notes        string     `json:"notes" binding:"max=2000"`
}

// UpdateLiabilityRequest represents a request to update a liability
type UpdateLiabilityRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=100"`
	Type         string     `json:"type" binding:"required,oneof=mortgage auto_loan student_loan personal_loan other"`
	Principal    float64    `json:"principal" binding:"min=0"`
	InterestRate *float64   `json:"interest_rate" binding:"omitempty,min=0,max=100"`
	DueAt        *time.Time `json:"due_at"`
	Notes        string     `json:"notes" binding:"max=2000"`
}

// Create godoc
// @Summary      Create a liability
// @Tags         liabilities
// @Accept       json
// @Produce      json
// @Param        request body CreateLiabilityRequest true "Liability fields"
// @Success      201 {object} dto.Response{data=financeapp.LiabilityResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /liabilities [post]
func (h *LiabilityHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.liabilityService.Create(c.Request.Context(), ownerID, financeapp.CreateLiabilityRequest{
		Name:         req.Name,
		Type:         req.Type,
		Principal:    toDecimal(req.Principal),
		InterestRate: toDecimalPtrFrom(req.InterestRate),
		DueAt:        req.DueAt,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID godoc
// @Summary      Get a liability
// @Tags         liabilities
// @Produce      json
// @Param        id path string true "Liability ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.LiabilityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /liabilities/{id} [get]
func (h *LiabilityHandler) GetByID(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid liability ID")
		return
	}

	resp, err := h.liabilityService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List liabilities
// @Tags         liabilities
// @Produce      json
// @Success      200 {object} dto.Response{data=[]financeapp.LiabilityResponse}
// @Security     BearerAuth
// @Router       /liabilities [get]
func (h *LiabilityHandler) List(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.liabilityService.List(c.Request.Context(), ownerID, query.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a liability
// @Tags         liabilities
// @Accept       json
// @Produce      json
// @Param        id path string true "Liability ID" format(uuid)
// @Param        request body UpdateLiabilityRequest true "Liability fields"
// @Success      200 {object} dto.Response{data=financeapp.LiabilityResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /liabilities/{id} [put]
func (h *LiabilityHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid liability ID")
		return
	}

	var req UpdateLiabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.liabilityService.Update(c.Request.Context(), ownerID, id, financeapp.UpdateLiabilityRequest{
		Name:         req.Name,
		Type:         req.Type,
		Principal:    toDecimal(req.Principal),
		InterestRate: toDecimalPtrFrom(req.InterestRate),
		DueAt:        req.DueAt,
		Notes:        req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a liability
// @Tags         liabilities
// @Produce      json
// @Param        id path string true "Liability ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /liabilities/{id} [delete]
func (h *LiabilityHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid liability ID")
		return
	}

	if err := h.liabilityService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
