package api

import (
	"time"

	activityDelivery "hafez-backend/internal/activity/delivery"
	analyticsDelivery "hafez-backend/internal/analytics/delivery"
	otpDelivery "hafez-backend/internal/otp/delivery"
	progressDelivery "hafez-backend/internal/progress/delivery"
	"hafez-backend/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	otpHandler       *otpDelivery.OTPHandler
	progressHandler  *progressDelivery.ProgressHandler
	activityHandler  *activityDelivery.ActivityHandler
	analyticsHandler *analyticsDelivery.AnalyticsHandler
	config           *config.Config
	startedAt        time.Time
}

func NewHandler(otpHandler *otpDelivery.OTPHandler, progressHandler *progressDelivery.ProgressHandler, activityHandler *activityDelivery.ActivityHandler, analyticsHandler *analyticsDelivery.AnalyticsHandler, cfg *config.Config) *Handler {
	return &Handler{
		otpHandler:       otpHandler,
		progressHandler:  progressHandler,
		activityHandler:  activityHandler,
		analyticsHandler: analyticsHandler,
		config:           cfg,
		startedAt:        time.Now(),
	}
}

// Engine builds the gin engine with middleware and routes; main wraps it in
// an http.Server so shutdown stays under its control.
func (h *Handler) Engine() *gin.Engine {
	if h.config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"https://hafezquraan.com", "http://localhost:3000", "https://*.github.io"}
	corsConfig.AllowWildcard = true
	corsConfig.AllowMethods = []string{"GET", "POST"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	corsConfig.AllowCredentials = true
	r.Use(cors.New(corsConfig))

	SetupRoutes(r, h.otpHandler, h.progressHandler, h.activityHandler, h.analyticsHandler, h.startedAt)
	return r
}
