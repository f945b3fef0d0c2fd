package pipeline

import "errors"

// Sentinel errors classifying per-request pipeline failures. Handlers map
// these onto HTTP statuses and error accounting.
var (
	// ErrDecode means the submitted bytes are not a decodable image.
	ErrDecode = errors.New("unable to decode frame")

	// ErrInference means the external detection model call failed.
	ErrInference = errors.New("model inference failed")
)
