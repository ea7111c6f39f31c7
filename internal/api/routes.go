package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(handlers *Handlers) *gin.Engine {
	router := gin.Default()

	// Add CORS middleware
	router.Use(corsMiddleware())

	// API routes
	api := router.Group("/api")
	{
		messages := api.Group("/messages")
		{
			messages.POST("/generate", handlers.GenerateMessageHandler)
		}

		letters := api.Group("/letters")
		{
			letters.POST("/generate", handlers.GenerateLetterHandler)
			letters.POST("/generate-sync", handlers.GenerateLetterSyncHandler)
			letters.GET("/status/:taskId", handlers.GetTaskStatusHandler)
			letters.GET("/download/:taskId/audio", handlers.DownloadAudioHandler)
			letters.GET("/download/:taskId/pdf", handlers.DownloadPDFHandler)
			letters.POST("/email/:taskId", handlers.SendLetterEmailHandler)
		}

		speech := api.Group("/speech")
		{
			speech.POST("/generate", handlers.GenerateSpeechHandler)
		}

		api.GET("/avatars", handlers.ListAvatarsHandler)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
