package handler

import (
	"time"

	financeapp "github.com/finsight/backend/internal/application/finance"
	"github.com/finsight/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreditCardHandler handles credit card account API endpoints
type CreditCardHandler struct {
	BaseHandler
	cardService *financeapp.CreditCardService
}

// NewCreditCardHandler creates a new CreditCardHandler
func NewCreditCardHandler(cardService *financeapp.CreditCardService) *CreditCardHandler {
	return &CreditCardHandler{
		cardService: cardService,
	}
}

// CreateCreditCardRequest represents a request to create a credit card account
type CreateCreditCardRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=100"`
	Issuer       string     `json:"issuer" binding:"max=100"`
	CreditLimit  float64    `json:"credit_limit" binding:"required,gt=0"`
	Balance      float64    `json:"balance" binding:"min=0"`
	APR          *float64   `json:"apr" binding:"omitempty,min=0,max=100"`
	PaymentDueAt *time.Time `json:"payment_due_at"`
}

// UpdateCreditCardRequest represents a request to update a credit card account
type UpdateCreditCardRequest struct {
	Name         string     `json:"name" binding:"required,min=1,max=100"`
	Issuer       string     `json:"issuer" binding:"max=100"`
	CreditLimit  float64    `json:"credit_limit" binding:"required,gt=0"`
	Balance      float64    `json:"balance" binding:"min=0"`
	APR          *float64   `json:"apr" binding:"omitempty,min=0,max=100"`
	PaymentDueAt *time.Time `json:"payment_due_at"`
}

// Create godoc
// @Summary      Create a credit card account
// @Tags         credit-cards
// @Accept       json
// @Produce      json
// @Param        request body CreateCreditCardRequest true "Credit card fields"
// @Success      201 {object} dto.Response{data=financeapp.CreditCardResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /credit-cards [post]
func (h *CreditCardHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.cardService.Create(c.Request.Context(), ownerID, financeapp.CreateCreditCardRequest{
		Name:         req.Name,
		Issuer:       req.Issuer,
		CreditLimit:  toDecimal(req.CreditLimit),
		Balance:      toDecimal(req.Balance),
		APR:          toDecimalPtrFrom(req.APR),
		PaymentDueAt: req.PaymentDueAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID godoc
// @Summary      Get a credit card account
// @Tags         credit-cards
// @Produce      json
// @Param        id path string true "Credit card ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.CreditCardResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /credit-cards/{id} [get]
func (h *CreditCardHandler) GetByID(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid credit card ID")
		return
	}

	resp, err := h.cardService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List credit card accounts
// @Tags         credit-cards
// @Produce      json
// @Success      200 {object} dto.Response{data=[]financeapp.CreditCardResponse}
// @Security     BearerAuth
// @Router       /credit-cards [get]
func (h *CreditCardHandler) List(c *gin.Context) {
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

	page, err := h.cardService.List(c.Request.Context(), ownerID, query.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update a credit card account
// @Tags         credit-cards
// @Accept       json
// @Produce      json
// @Param        id path string true "Credit card ID" format(uuid)
// @Param        request body UpdateCreditCardRequest true "Credit card fields"
// @Success      200 {object} dto.Response{data=financeapp.CreditCardResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /credit-cards/{id} [put]
func (h *CreditCardHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid credit card ID")
		return
	}

	var req UpdateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.cardService.Update(c.Request.Context(), ownerID, id, financeapp.UpdateCreditCardRequest{
		Name:         req.Name,
		Issuer:       req.Issuer,
		CreditLimit:  toDecimal(req.CreditLimit),
		Balance:      toDecimal(req.Balance),
		APR:          toDecimalPtrFrom(req.APR),
		PaymentDueAt: req.PaymentDueAt,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete a credit card account
// @Tags         credit-cards
// @Produce      json
// @Param        id path string true "Credit card ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /credit-cards/{id} [delete]
func (h *CreditCardHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid credit card ID")
		return
	}

	if err := h.cardService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
