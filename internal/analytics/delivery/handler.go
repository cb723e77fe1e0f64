package delivery

import (
	"net/http"

	"hafez-backend/internal/analytics/usecase"
	"hafez-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsUsecase usecase.AnalyticsUsecase
	log              *logger.Logger
}

func NewAnalyticsHandler(analyticsUsecase usecase.AnalyticsUsecase, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUsecase: analyticsUsecase,
		log:              log,
	}
}

func (h *AnalyticsHandler) GetOverview(c *gin.Context) {
	resp, err := h.analyticsUsecase.Overview(c.Query("timeframe"))
	if err != nil {
		h.log.Error("analytics overview failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
