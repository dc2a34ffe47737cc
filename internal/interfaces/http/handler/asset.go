package handler

import (
	"time"

	financeapp "github.com/finsight/backend/internal/application/finance"
	"github.com/finsight/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssetHandler handles asset-related API endpoints
type AssetHandler struct {
	BaseHandler
	assetService *financeapp.AssetService
}

// NewAssetHandler creates a new AssetHandler
func NewAssetHandler(assetService *financeapp.AssetService) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
	}
}

// CreateAssetRequest represents a request to create a new asset
type CreateAssetRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=100"`
	Type          string     `json:"type" binding:"required,oneof=cash investment property vehicle other"`
	CurrentValue  float64    `json:"current_value" binding:"min=0"`
	PurchaseValue *float64   `json:"purchase_value" binding:"omitempty,min=0"`
	PurchasedAt   *time.Time `json:"purchased_at"`
	Notes         string     `json:"notes" binding:"max=2000"`
}

// UpdateAssetRequest represents a request to update an asset
type UpdateAssetRequest struct {
	Name          string     `json:"name" binding:"required,min=1,max=100"`
	Type          string     `json:"type" binding:"required,oneof=cash investment property vehicle other"`
	CurrentValue  float64    `json:"current_value" binding:"min=0"`
	PurchaseValue *float64   `json:"purchase_value" binding:"omitempty,min=0"`
	PurchasedAt   *time.Time `json:"purchased_at"`
	Notes         string     `json:"notes" binding:"max=2000"`
}

// Create godoc
// @Summary      Create an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        request body CreateAssetRequest true "Asset fields"
// @Success      201 {object} dto.Response{data=financeapp.AssetResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.assetService.Create(c.Request.Context(), ownerID, financeapp.CreateAssetRequest{
		Name:          req.Name,
		Type:          req.Type,
		CurrentValue:  toDecimal(req.CurrentValue),
		PurchaseValue: toDecimalPtrFrom(req.PurchaseValue),
		PurchasedAt:   req.PurchasedAt,
		Notes:         req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID godoc
// @Summary      Get an asset
// @Tags         assets
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Success      200 {object} dto.Response{data=financeapp.AssetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /assets/{id} [get]
func (h *AssetHandler) GetByID(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	resp, err := h.assetService.GetByID(c.Request.Context(), ownerID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List godoc
// @Summary      List assets
// @Tags         assets
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Items per page"
// @Param        search query string false "Search in name and notes"
// @Success      200 {object} dto.Response{data=[]financeapp.AssetResponse}
// @Security     BearerAuth
// @Router       /assets [get]
func (h *AssetHandler) List(c *gin.Context) {
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

	page, err := h.assetService.List(c.Request.Context(), ownerID, query.toFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update godoc
// @Summary      Update an asset
// @Tags         assets
// @Accept       json
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Param        request body UpdateAssetRequest true "Asset fields"
// @Success      200 {object} dto.Response{data=financeapp.AssetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /assets/{id} [put]
func (h *AssetHandler) Update(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	resp, err := h.assetService.Update(c.Request.Context(), ownerID, id, financeapp.UpdateAssetRequest{
		Name:          req.Name,
		Type:          req.Type,
		CurrentValue:  toDecimal(req.CurrentValue),
		PurchaseValue: toDecimalPtrFrom(req.PurchaseValue),
		PurchasedAt:   req.PurchasedAt,
		Notes:         req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete godoc
// @Summary      Delete an asset
// @Tags         assets
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID")
		return
	}

	if err := h.assetService.Delete(c.Request.Context(), ownerID, id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
