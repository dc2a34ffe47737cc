package handler

import (
	"time"

	financeapp "github.com/finsight/backend/internal/application/finance"
	"github.com/finsight/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// IncomeHandler handles income record API endpoints
type IncomeHandler struct {
	BaseHandler
	incomeService *financeapp.IncomeService
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeService *financeapp.IncomeService) *IncomeHandler {
	return &IncomeHandler{
		incomeService: incomeService,
	}
}

// CreateIncomeRequest represents a request to record income
type CreateIncomeRequest struct {
	Source     string     `json:"source" binding:"required,min=1,max=100"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	Frequency  string     `json:"frequency" binding:"required,oneof=daily weekly bi-weekly monthly quarterly yearly one-time"`
	ReceivedAt *time.Time `json:"received_at"`
	Notes      string     `json:"notes" binding:"max=2000"`
}

// UpdateIncomeRequest represents a request to update an income record
type UpdateIncomeRequest struct {
	Source     string     `json:"source" binding:"required,min=1,max=100"`
	Amount     float64    `json:"amount" binding:"required,gt=0"`
	Frequency  string     `json:"frequency" binding:"required,oneof=daily weekly bi-weekly monthly quarterly yearly one-time"`
	ReceivedAt *time.Time `json:"received_at"`
	Notes      string     `json:"notes" binding:"max=2000"`
}

// Create godoc
// @Summary      Record income
// @Tags         income
// @Accept       json
// @Produce      json
// @Param        request body CreateIncomeRequest true "Income fields"
// @Success      201 {object} dto.Response{data=financeapp.IncomeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /income [post]
func (h *IncomeHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.incomeService.Create(c.Request.Context(), ownerID, financeapp.CreateIncomeRequest{
		Source:     req.Source,
		Amount:     toDecimal(req.Amount),
		Frequency:  req.Frequency,
		ReceivedAt: req.ReceivedAt,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID godoc
// @Summary      Get an income record
// @Tags         income
// @Produce      json
// @Param        id path string true "Income record ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.IncomeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /income/{id} [get]
func (h *IncomeHandler) GetByID(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid income record ID")
		return
	}

	resp, err := h.incomeService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List income records
// @Tags         income
// @Produce      json
// @Success      200 {object} dto.Response{data=[]financeapp.IncomeResponse}
// @Security     BearerAuth
// @Router       /income [get]
func (h *IncomeHandler) List(c *gin.Context) {
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

	page, err := h.incomeService.List(c.Request.Context(), ownerID, query.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update an income record
// @Tags         income
// @Accept       json
// @Produce      json
// @Param        id path string true "Income record ID" format(uuid)
// @Param        request body UpdateIncomeRequest true "Income fields"
// @Success      200 {object} dto.Response{data=financeapp.IncomeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /income/{id} [put]
func (h *IncomeHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid income record ID")
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.incomeService.Update(c.Request.Context(), ownerID, id, financeapp.UpdateIncomeRequest{
		Source:     req.Source,
		Amount:     toDecimal(req.Amount),
		Frequency:  req.Frequency,
		ReceivedAt: req.ReceivedAt,
		Notes:      req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete an income record
// @Tags         income
// @Produce      json
// @Param        id path string true "Income record ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /income/{id} [delete]
func (h *IncomeHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid income record ID")
		return
	}

	if err := h.incomeService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
