package handlers

import (
	"github.com/ChMubasharAli/getpiepay/internal/utils"

	"github.com/gin-gonic/gin"
)

// SiteConfigHandler exposes the public client configuration
type SiteConfigHandler struct {
	recaptchaSiteKey string
}

// NewSiteConfigHandler creates a new site config handler
func NewSiteConfigHandler(recaptchaSiteKey string) *SiteConfigHandler {
	return &SiteConfigHandler{recaptchaSiteKey: recaptchaSiteKey}
}

// Get returns the public settings the website form needs. Only the
// reCAPTCHA site key is public; the secret key never leaves the server.
func (h *SiteConfigHandler) Get(c *gin.Context) {
	utils.HandleSuccess(c, gin.H{
		"recaptchaSiteKey": h.recaptchaSiteKey,
	})
}
