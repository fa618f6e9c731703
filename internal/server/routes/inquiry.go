package routes

import (
	"github.com/ChMubasharAli/getpiepay/internal/api/handlers"
	"github.com/ChMubasharAli/getpiepay/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// SetupInquiryRoutes configures the inquiry submission routes.
// Both endpoints run the same pipeline; the root-level one keeps the path
// and flat response shape the deployed website frontend was built against.
func SetupInquiryRoutes(router *gin.Engine, v1 *gin.RouterGroup, inquiry *handlers.InquiryHandler, m *Middleware) {
	// Public endpoints with rate limiting (no auth required)
	// RPS=1 allows ~1 request per second, Burst=5 allows short bursts
	limit := middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   1,
		Burst: 5,
	})

	v1.POST("/inquiry/submit",
		limit,
		m.Validation.ValidateInquiryRequest(false),
		inquiry.Submit,
	)

	// Legacy alias
	router.POST("/api/send-inquiry",
		limit,
		m.Validation.ValidateInquiryRequest(true),
		inquiry.SubmitLegacy,
	)
}
