package api

import "github.com/gin-gonic/gin"

func (s *Server) setupRoutes() {
	s.router.GET("/", s.healthHandler.Index)
	s.router.GET("/health", s.healthHandler.Health)

	s.router.POST("/predict", s.detectHandler.Predict)
	s.router.POST("/stream", s.detectHandler.Stream)

	s.router.GET("/metrics", s.metricsHandler.Metrics)
	s.router.GET("/metrics/prometheus", gin.WrapH(s.metricsHandler.Prometheus()))

	s.router.GET("/config", s.configHandler.Get)
	s.router.POST("/config", s.configHandler.Update)
}
