package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"drone-vision-go/internal/api/handlers"
	"drone-vision-go/internal/config"
	"drone-vision-go/internal/metrics"
)

type Server struct {
	config *config.Config
	router *gin.Engine
	server *http.Server

	healthHandler  *handlers.HealthHandler
	detectHandler  *handlers.DetectHandler
	metricsHandler *handlers.MetricsHandler
	configHandler  *handlers.ConfigHandler
}

func NewServer(cfg *config.Config, store *config.Store, proc handlers.Processor, tracker *metrics.Tracker, exporter *metrics.Exporter) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	return &Server{
		config:         cfg,
		router:         router,
		healthHandler:  handlers.NewHealthHandler(cfg, store, tracker),
		detectHandler:  handlers.NewDetectHandler(proc, tracker),
		metricsHandler: handlers.NewMetricsHandler(store, tracker, exporter),
		configHandler:  handlers.NewConfigHandler(store),
	}
}

func (s *Server) Setup() error {
	s.setupMiddleware()

	s.setupRoutes()

	s.setupSwagger()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.config.Port),
		Handler: s.router,
	}

	return nil
}

func (s *Server) Start() error {
	log.Info().Int("port", s.config.Port).Msg("starting drone vision API")
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("stopping drone vision API")
	return s.server.Shutdown(ctx)
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
