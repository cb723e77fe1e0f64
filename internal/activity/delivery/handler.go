package delivery

import (
	"errors"
	"net/http"

	"hafez-backend/internal/activity/dto"
	"hafez-backend/internal/activity/usecase"
	"hafez-backend/pkg/apperr"
	"hafez-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	activityUsecase usecase.ActivityUsecase
	log             *logger.Logger
}

func NewActivityHandler(activityUsecase usecase.ActivityUsecase, log *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityUsecase: activityUsecase,
		log:             log,
	}
}

func (h *ActivityHandler) LogActivity(c *gin.Context) {
	var req dto.LogActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if err := h.activityUsecase.Log(&req); err != nil {
		var validation *apperr.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.Message})
			return
		}
		h.log.Error("log activity failed", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Activity logged"})
}
