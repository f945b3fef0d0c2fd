// Package messaging publishes detection events over NATS for downstream
// consumers (alerting dashboards, recorders). Publishing is fire and forget;
// the detection pipeline never blocks on a subscriber.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"drone-vision-go/internal/config"
)

// DetectionEvent is the payload published for every processed frame that
// produced at least one detection.
type DetectionEvent struct {
	WorkerID   string    `json:"worker_id"`
	FrameIdx   int       `json:"frame_idx"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Count      int       `json:"count"`
	Timestamp  time.Time `json:"timestamp"`
}

type Service struct {
	conn    *nats.Conn
	subject string
}

func NewService(cfg *config.Config) (*Service, error) {
	opts := []nats.Option{
		nats.Name("drone-vision-worker"),
		nats.Timeout(cfg.NatsConnectTimeout),
		nats.ReconnectWait(cfg.NatsReconnectWait),
		nats.MaxReconnects(cfg.NatsMaxReconnects),
	}

	conn, err := nats.Connect(cfg.NatsURL, opts...)
	if err != nil {
		return nil, err
	}

	log.Info().Str("url", cfg.NatsURL).Str("subject", cfg.DetectionsSubject).Msg("NATS connection established")

	return &Service{
		conn:    conn,
		subject: cfg.DetectionsSubject,
	}, nil
}

func (s *Service) PublishDetectionEvent(event DetectionEvent) error {
	return s.Publish(s.subject, event)
}

func (s *Service) Publish(subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return s.conn.Publish(subject, payload)
}

func (s *Service) IsConnected() bool {
	return s.conn != nil && s.conn.IsConnected()
}

func (s *Service) Shutdown(ctx context.Context) error {
	if s.conn != nil {
		// Try graceful drain, fall back to immediate close
		if err := s.conn.Drain(); err != nil {
			log.Warn().Err(err).Msg("Failed to drain NATS connection gracefully, closing immediately")
			s.conn.Close()
		}
	}
	return nil
}
