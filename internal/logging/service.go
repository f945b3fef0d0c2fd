package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"drone-vision-go/internal/config"
)

func NewServiceLogger(cfg *config.Config, service string) zerolog.Logger {
	return log.With().Str("worker_id", cfg.WorkerID).Str("service", service).Logger()
}

func WithFrame(base zerolog.Logger, frameIdx int) zerolog.Logger {
	return base.With().Int("frame_idx", frameIdx).Logger()
}
