package config

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Settings are the runtime-tunable pipeline parameters. They are updated
// through the /config endpoint while requests are in flight; readers always
// get a full copy, never a partially written struct.
type Settings struct {
	FrameSkipRate       int     `json:"frame_skip_rate"`
	TargetFPS           int     `json:"target_fps"`
	ConfThreshold       float64 `json:"conf_threshold"`
	MaxFrameSize        [2]int  `json:"max_frame_size"`
	EnableThermal       bool    `json:"enable_thermal"`
	EnableCLAHE         bool    `json:"enable_clahe"`
	EnableBlurDetection bool    `json:"enable_blur_detection"`
}

// Store guards the mutable Settings record. One writer (the config endpoint),
// many concurrent readers (request handlers); no cross-field transaction is
// needed beyond copy-on-read.
type Store struct {
	mu       sync.RWMutex
	settings Settings
}

// NewStore seeds the runtime settings from startup configuration.
func NewStore(cfg *Config) *Store {
	return &Store{
		settings: Settings{
			FrameSkipRate:       cfg.FrameSkipRate,
			TargetFPS:           cfg.TargetFPS,
			ConfThreshold:       cfg.ConfThreshold,
			MaxFrameSize:        [2]int{cfg.MaxFrameWidth, cfg.MaxFrameHeight},
			EnableThermal:       cfg.EnableThermal,
			EnableCLAHE:         cfg.EnableCLAHE,
			EnableBlurDetection: cfg.EnableBlurDetection,
		},
	}
}

// Get returns a copy of the current settings, safe for concurrent use.
func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Update applies a partial update. Recognized keys are validated and applied;
// unrecognized keys are silently ignored. An out-of-range value rejects the
// whole update, leaving the settings untouched.
func (s *Store) Update(partial map[string]json.RawMessage) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := s.settings
	for key, raw := range partial {
		if err := applyKey(&updated, key, raw); err != nil {
			return s.settings, err
		}
	}

	s.settings = updated
	return s.settings, nil
}

func applyKey(settings *Settings, key string, raw json.RawMessage) error {
	switch key {
	case "frame_skip_rate":
		v, err := parseInt(key, raw)
		if err != nil {
			return err
		}
		if v < 1 {
			return fmt.Errorf("frame_skip_rate must be >= 1, got %d", v)
		}
		settings.FrameSkipRate = v
	case "target_fps":
		v, err := parseInt(key, raw)
		if err != nil {
			return err
		}
		if v < 1 {
			return fmt.Errorf("target_fps must be positive, got %d", v)
		}
		settings.TargetFPS = v
	case "conf_threshold":
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("conf_threshold must be a number: %w", err)
		}
		if v < 0 || v > 1 {
			return fmt.Errorf("conf_threshold must be within [0, 1], got %v", v)
		}
		settings.ConfThreshold = v
	case "max_frame_size":
		var v [2]int
		if err := json.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("max_frame_size must be a [width, height] pair: %w", err)
		}
		if v[0] < 1 || v[1] < 1 {
			return fmt.Errorf("max_frame_size dimensions must be positive, got %v", v)
		}
		settings.MaxFrameSize = v
	case "enable_thermal":
		return parseBool(key, raw, &settings.EnableThermal)
	case "enable_clahe":
		return parseBool(key, raw, &settings.EnableCLAHE)
	case "enable_blur_detection":
		return parseBool(key, raw, &settings.EnableBlurDetection)
	default:
		log.Debug().Str("key", key).Msg("Ignoring unrecognized config key")
	}
	return nil
}

func parseInt(key string, raw json.RawMessage) (int, error) {
	var v int
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}

func parseBool(key string, raw json.RawMessage, dst *bool) error {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	*dst = v
	return nil
}
