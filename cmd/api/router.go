package api

import (
	"net/http"
	"time"

	activityDelivery "hafez-backend/internal/activity/delivery"
	analyticsDelivery "hafez-backend/internal/analytics/delivery"
	otpDelivery "hafez-backend/internal/otp/delivery"
	progressDelivery "hafez-backend/internal/progress/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, otpHandler *otpDelivery.OTPHandler, progressHandler *progressDelivery.ProgressHandler, activityHandler *activityDelivery.ActivityHandler, analyticsHandler *analyticsDelivery.AnalyticsHandler, startedAt time.Time) {
	// Liveness descriptor
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "Hafez Quraan API is running"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
			"uptime":    time.Since(startedAt).String(),
		})
	})

	r.POST("/send-otp", otpHandler.SendOTP)
	r.POST("/save-progress", progressHandler.SaveProgress)
	r.GET("/load-progress/:email", progressHandler.LoadProgress)
	r.POST("/log-activity", activityHandler.LogActivity)
	r.GET("/analytics", analyticsHandler.GetOverview)
}
