package handler

import (
	"net/http"
	"slices"
	"time"

	_ "batepapo/backend/docs" // registers the generated OpenAPI document
	"batepapo/backend/internal/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", auth.UserHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// NewRouter builds the gin engine with every chat route registered.
func NewRouter(h *Handler, allowedOrigins []string) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(corsConfig(allowedOrigins)))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("")
	api.Use(auth.UserMiddleware(h.sanitizer))
	{
		api.POST("/participants", h.Join)
		api.GET("/participants", h.ListParticipants)

		api.POST("/messages", h.PostMessage)
		api.GET("/messages", h.ListMessages)
		api.PUT("/messages/:id", h.EditMessage)
		api.DELETE("/messages/:id", h.DeleteMessage)

		api.POST("/status", h.Heartbeat)
	}

	return router
}
