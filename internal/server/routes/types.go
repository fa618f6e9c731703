package routes

import (
	"github.com/ChMubasharAli/getpiepay/internal/api/handlers"
	"github.com/ChMubasharAli/getpiepay/internal/api/middleware"
)

// Handlers contains all the route handlers
type Handlers struct {
	Inquiry    *handlers.InquiryHandler
	Health     *handlers.HealthHandler
	SiteConfig *handlers.SiteConfigHandler
}

// Middleware contains all the middleware
type Middleware struct {
	Validation *middleware.ValidationMiddleware
}
