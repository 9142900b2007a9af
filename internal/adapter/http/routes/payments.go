package routes

import (
	"backing_tracks/internal/adapter/http/handlers"
	"backing_tracks/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const PathPayments = "/payments"

// Payment routes accept guest tokens too, so they share the view limiter.
func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler, viewLimiter *middleware.RateLimiter) {
	payments := rg.Group(PathPayments, viewLimiter.Handler())
	{
		payments.GET("/by-id/:id", h.GetPayment)
		payments.POST("/:request_id", h.CreatePaymentByRequestID)
		payments.GET("/:request_id", h.GetPaymentByRequestID)
	}
}
