package routes

import (
	"backing_tracks/internal/adapter/http/handlers"
	"backing_tracks/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes        = "/quotes"
	PathTrackRequests = "/track-requests"
)

func addTrackRequestRoutes(rg *gin.RouterGroup, h *handlers.TrackRequestHandler, viewLimiter *middleware.RateLimiter) {
	rg.POST(PathQuotes, h.Quote)

	trackRequests := rg.Group(PathTrackRequests)
	{
		trackRequests.POST("", h.Submit)
		trackRequests.GET("", h.List)
		// Tokenised links are guessable only by brute force; slow that down.
		trackRequests.GET("/:id", viewLimiter.Handler(), h.Get)
		trackRequests.POST("/:id/claim", h.Claim)
		trackRequests.POST("/:id/legacy-link", viewLimiter.Handler(), h.MigrateLegacyLink)

		// Operator only; the use case enforces it.
		trackRequests.PATCH("/:id/pricing", h.UpdatePricing)
		trackRequests.PATCH("/:id/status", h.UpdateStatus)
	}
}
