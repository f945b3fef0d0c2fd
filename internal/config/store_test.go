package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(&Config{
		FrameSkipRate:       2,
		TargetFPS:           15,
		ConfThreshold:       0.25,
		MaxFrameWidth:       1280,
		MaxFrameHeight:      720,
		EnableThermal:       true,
		EnableCLAHE:         true,
		EnableBlurDetection: true,
	})
}

func partial(t *testing.T, body string) map[string]json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func TestStoreSeedsFromConfig(t *testing.T) {
	s := newTestStore()

	got := s.Get()
	assert.Equal(t, 2, got.FrameSkipRate)
	assert.Equal(t, 15, got.TargetFPS)
	assert.Equal(t, 0.25, got.ConfThreshold)
	assert.Equal(t, [2]int{1280, 720}, got.MaxFrameSize)
	assert.True(t, got.EnableThermal)
	assert.True(t, got.EnableCLAHE)
	assert.True(t, got.EnableBlurDetection)
}

func TestStoreUpdateSingleField(t *testing.T) {
	s := newTestStore()

	updated, err := s.Update(partial(t, `{"frame_skip_rate": 5}`))
	require.NoError(t, err)

	assert.Equal(t, 5, updated.FrameSkipRate)
	// Everything else untouched.
	assert.Equal(t, 15, updated.TargetFPS)
	assert.Equal(t, 0.25, updated.ConfThreshold)
	assert.Equal(t, 5, s.Get().FrameSkipRate)
}

func TestStoreUpdateMultipleFields(t *testing.T) {
	s := newTestStore()

	updated, err := s.Update(partial(t, `{"conf_threshold": 0.5, "enable_thermal": false, "max_frame_size": [640, 480]}`))
	require.NoError(t, err)

	assert.Equal(t, 0.5, updated.ConfThreshold)
	assert.False(t, updated.EnableThermal)
	assert.Equal(t, [2]int{640, 480}, updated.MaxFrameSize)
}

func TestStoreUpdateIgnoresUnknownKeys(t *testing.T) {
	s := newTestStore()

	updated, err := s.Update(partial(t, `{"target_fps": 30, "model_name": "yolo"}`))
	require.NoError(t, err)
	assert.Equal(t, 30, updated.TargetFPS)
}

func TestStoreUpdateRejectsOutOfRangeValues(t *testing.T) {
	s := newTestStore()
	before := s.Get()

	cases := map[string]string{
		"zero skip rate":        `{"frame_skip_rate": 0}`,
		"negative fps":          `{"target_fps": -1}`,
		"confidence above one":  `{"conf_threshold": 1.5}`,
		"negative confidence":   `{"conf_threshold": -0.1}`,
		"zero frame dimension":  `{"max_frame_size": [0, 720]}`,
		"wrong type":            `{"frame_skip_rate": "fast"}`,
		"bool as number":        `{"enable_thermal": 1}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.Update(partial(t, body))
			assert.Error(t, err)
			assert.Equal(t, before, s.Get(), "failed update must not change state")
		})
	}
}

func TestStoreUpdateIsAtomic(t *testing.T) {
	s := newTestStore()

	// A valid field alongside an invalid one: nothing may be applied.
	_, err := s.Update(partial(t, `{"target_fps": 30, "conf_threshold": 2.0}`))
	require.Error(t, err)
	assert.Equal(t, 15, s.Get().TargetFPS)
}
