package handler

import (
	"net/http"

	"github.com/Bezziboi/j-app/internal/apierror"
	"github.com/Bezziboi/j-app/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct{ svc *service.AnalyticsService }

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Summary godoc
// @Summary Aggregated report statistics (all-time, last 7 days, current month)
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AnalyticsSummaryResponse
// @Router /v1/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	resp, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Failed to compute analytics"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
