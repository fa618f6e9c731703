package server

import (
	"io"

	"github.com/ChMubasharAli/getpiepay/internal/api/handlers"
	"github.com/ChMubasharAli/getpiepay/internal/api/middleware"
	"github.com/ChMubasharAli/getpiepay/internal/config"
	"github.com/ChMubasharAli/getpiepay/internal/server/routes"
	"github.com/ChMubasharAli/getpiepay/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	config *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	// Create a new engine without default middleware
	router := gin.New()

	return &Server{
		router: router,
		config: cfg,
	}
}

// Init wires middleware, services and routes
func (s *Server) Init() {
	routes.SetupGlobalMiddleware(s.router)

	// Create services
	recaptchaService := service.NewRecaptchaService()
	mailerService := service.NewMailerService(service.MailConfig{
		Host:     s.config.SMTPHost,
		Port:     s.config.SMTPPort,
		Username: s.config.SMTPUser,
		Password: s.config.SMTPPass,
		From:     s.config.EmailFrom,
		To:       s.config.EmailTo,
	})
	inquiryService := service.NewInquiryService(recaptchaService, mailerService)

	// Create handlers and middleware
	h := &routes.Handlers{
		Inquiry:    handlers.NewInquiryHandler(inquiryService),
		Health:     handlers.NewHealthHandler(mailerService),
		SiteConfig: handlers.NewSiteConfigHandler(s.config.RecaptchaSiteKey),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	routes.Setup(s.router, h, m)
}

// Start starts the server
func (s *Server) Start() error {
	return s.router.Run(":" + s.config.Port)
}
