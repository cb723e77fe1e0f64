package delivery

import (
	"errors"
	"net/http"

	"hafez-backend/internal/otp/dto"
	"hafez-backend/internal/otp/usecase"
	"hafez-backend/pkg/apperr"
	"hafez-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

type OTPHandler struct {
	otpUsecase usecase.OTPUsecase
	log        *logger.Logger
}

func NewOTPHandler(otpUsecase usecase.OTPUsecase, log *logger.Logger) *OTPHandler {
	return &OTPHandler{
		otpUsecase: otpUsecase,
		log:        log,
	}
}

func (h *OTPHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	if err := h.otpUsecase.Send(req.Email, req.OTP); err != nil {
		var validation *apperr.ValidationError
		if errors.As(err, &validation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validation.Message})
			return
		}

		var upstream *apperr.UpstreamError
		if errors.As(err, &upstream) && upstream.AuthFailure {
			h.log.Error("send otp rejected by provider", "email", req.Email, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Email service authentication failed"})
			return
		}

		h.log.Error("send otp failed", "email", req.Email, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to send email: " + err.Error()})
		return
	}

	h.log.Info("otp email sent", "email", req.Email)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent successfully"})
}
