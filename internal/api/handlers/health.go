package handlers

import (
	"net/http"

	"github.com/ChMubasharAli/getpiepay/internal/service"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	mailer *service.MailerService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(mailer *service.MailerService) *HealthHandler {
	return &HealthHandler{mailer: mailer}
}

// Check reports whether the service is up and whether outbound mail is
// configured. It never dials the relay; pre-flight happens per submission.
func (h *HealthHandler) Check(c *gin.Context) {
	mailConfigured := h.mailer.CheckConfig() == nil

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"mail_configured": mailConfigured,
	})
}
