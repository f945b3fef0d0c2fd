package api

import (
	"net/http"

	_ "drone-vision-go/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (s *Server) setupSwagger() {
	s.router.GET("/api/info", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"title":       "Drone Vision API",
			"version":     s.config.Version,
			"description": "Wildlife detection worker: frame preprocessing, model inference, thermal visualization and rolling telemetry",
			"swagger_ui":  "/docs/index.html",
			"endpoints": gin.H{
				"status":  "/",
				"health":  "/health",
				"predict": "/predict",
				"stream":  "/stream",
				"metrics": "/metrics",
				"config":  "/config",
			},
			"worker_id": s.config.WorkerID,
			"port":      s.config.Port,
		})
	})

	s.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.router.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
}
