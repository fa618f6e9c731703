package routes

import (
	"github.com/ChMubasharAli/getpiepay/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupSiteConfigRoutes configures the public client configuration endpoint
func SetupSiteConfigRoutes(v1 *gin.RouterGroup, siteConfig *handlers.SiteConfigHandler) {
	v1.GET("/config", siteConfig.Get)
}
