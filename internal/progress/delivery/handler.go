package delivery

import (
	"errors"
	"net/http"

	"hafez-backend/internal/progress/dto"
	"hafez-backend/internal/progress/usecase"
	"hafez-backend/pkg/apperr"
	"hafez-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressUsecase usecase.ProgressUsecase
	log             *logger.Logger
}

func NewProgressHandler(progressUsecase usecase.ProgressUsecase, log *logger.Logger) *ProgressHandler {
	return &ProgressHandler{
		progressUsecase: progressUsecase,
		log:             log,
	}
}

func (h *ProgressHandler) SaveProgress(c *gin.Context) {
	var req dto.SaveProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if err := h.progressUsecase.Save(&req); err != nil {
		var validation *apperr.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.Message})
			return
		}
		h.log.Error("save progress failed", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Progress saved successfully"})
}

func (h *ProgressHandler) LoadProgress(c *gin.Context) {
	email := c.Param("email")

	resp, err := h.progressUsecase.Load(email)
	if err != nil {
		var validation *apperr.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.Message})
			return
		}
		h.log.Error("load progress failed", "email", email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
