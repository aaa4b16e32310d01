package routes

import (
	"apptrack/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every handler under the versioned API prefix.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.Companies.RegisterRoutes(api)
		appHandlers.Jobs.RegisterRoutes(api)
		appHandlers.Attachments.RegisterRoutes(api)
	}
}
