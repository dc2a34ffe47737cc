package handler

import (
	advisorapp "github.com/finsight/backend/internal/application/advisor"
	"github.com/finsight/backend/internal/domain/advisor"
	"github.com/gin-gonic/gin"
)

// AdvisorHandler handles financial metrics and recommendation endpoints
type AdvisorHandler struct {
	BaseHandler
	metricsService        *advisorapp.MetricsService
	recommendationService *advisorapp.RecommendationService
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(
	metricsService *advisorapp.MetricsService,
	recommendationService *advisorapp.RecommendationService,
) *AdvisorHandler {
	return &AdvisorHandler{
		metricsService:        metricsService,
		recommendationService: recommendationService,
	}
}

// RecommendationData wraps a recommendation payload with cache provenance
type RecommendationData struct {
	Recommendation advisor.RecommendationPayload `json:"recommendation"`
	FromCache      bool                          `json:"from_cache"`
}

// GetMetrics godoc
// @Summary      Get financial metrics
// @Description  Aggregates the caller's records into a metrics snapshot
// @Tags         advisor
// @Produce      json
// @Success      200 {object} dto.Response{data=advisor.MetricsSnapshot}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advisor/metrics [get]
func (h *AdvisorHandler) GetMetrics(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	snapshot, err := h.metricsService.Snapshot(c.Request.Context(), ownerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// Recommend godoc
// @Summary      Generate a recommendation
// @Description  Returns a cached recommendation when the caller's metrics are unchanged, otherwise generates a fresh one
// @Tags         advisor
// @Produce      json
// @Param        type path string true "Recommendation type" Enums(budget, investment, savings, debt)
// @Success      200 {object} dto.Response{data=RecommendationData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /advisor/recommendations/{type} [post]
func (h *AdvisorHandler) Recommend(c *gin.Context) {
	ownerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recType := advisor.RecommendationType(c.Param("type"))
	if !recType.IsValid() {
		h.BadRequest(c, "Unknown recommendation type: "+c.Param("type"))
		return
	}

	result, err := h.recommendationService.Recommend(c.Request.Context(), ownerID, recType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, RecommendationData{
		Recommendation: result.Payload,
		FromCache:      result.FromCache,
	})
}

// CacheStats godoc
// @Summary      Recommendation cache statistics
// @Tags         admin
// @Produce      json
// @Success      200 {object} dto.Response{data=advisor.CacheStats}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/cache/stats [get]
func (h *AdvisorHandler) CacheStats(c *gin.Context) {
	h.Success(c, h.recommendationService.CacheStats())
}

// ClearCache godoc
// @Summary      Clear the recommendation cache
// @Tags         admin
// @Produce      json
// @Success      200 {object} dto.Response
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/cache [delete]
func (h *AdvisorHandler) ClearCache(c *gin.Context) {
	h.recommendationService.ClearCache()
	h.Success(c, gin.H{"message": "Cache cleared"})
}

// InvalidateType godoc
// @Summary      Invalidate cached recommendations of one type
// @Tags         admin
// @Produce      json
// @Param        type path string true "Recommendation type" Enums(budget, investment, savings, debt)
// @Success      200 {object} dto.Response{data=CountData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /admin/cache/{type} [delete]
func (h *AdvisorHandler) InvalidateType(c *gin.Context) {
	recType := advisor.RecommendationType(c.Param("type"))
	if !recType.IsValid() {
		h.BadRequest(c, "Unknown recommendation type: "+c.Param("type"))
		return
	}

	removed, err := h.recommendationService.InvalidateType(recType)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, CountData{Count: int64(removed)})
}
