package common

import (
	"context"
	"encoding/json"
	"fmt"
)

// ---------------------------------------------------------------------------
// InputFormat enum
// ---------------------------------------------------------------------------

type InputFormat int

const (
	FormatJSON InputFormat = iota
	FormatProtobuf
)

func (f InputFormat) String() string {
	switch f {
	case FormatJSON:
		return "JSON"
	case FormatProtobuf:
		return "Protobuf"
	default:
		return "Unknown"
	}
}

// ---------------------------------------------------------------------------
// ModelBackend interface
// ---------------------------------------------------------------------------

// ModelBackend defines the interface for invoking served models (Triton,
// TorchServe, ONNX, plain HTTP).  The affinity scorer and the narrative engine
// both speak to their models exclusively through this contract.
type ModelBackend interface {
	Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error)
	Healthy(ctx context.Context) error
	Close() error
}

// ---------------------------------------------------------------------------
// Logger interface
// ---------------------------------------------------------------------------

// Logger defines a lightweight structured logging interface for the
// intelligence layer, compatible with zap-style sugared loggers.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type noopLogger struct{}

func (n *noopLogger) Info(string, ...interface{})  {}
func (n *noopLogger) Warn(string, ...interface{})  {}
func (n *noopLogger) Debug(string, ...interface{}) {}
func (n *noopLogger) Error(string, ...interface{}) {}

// NewNoopLogger returns a Logger that discards all logs.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// ---------------------------------------------------------------------------
// Predict types
// ---------------------------------------------------------------------------

// PredictRequest carries the input payload for model inference.
type PredictRequest struct {
	ModelName    string            `json:"model_name"`
	ModelVersion string            `json:"model_version,omitempty"`
	InputData    []byte            `json:"input_data"`
	InputFormat  InputFormat       `json:"input_format"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the request is well-formed.
func (r *PredictRequest) Validate() error {
	if r == nil {
		return fmt.Errorf("predict request is nil")
	}
	if r.ModelName == "" {
		return fmt.Errorf("model_name is required")
	}
	if len(r.InputData) == 0 {
		return fmt.Errorf("input_data is required")
	}
	return nil
}

// PredictResponse carries the raw outputs from model inference.
type PredictResponse struct {
	ModelName       string            `json:"model_name"`
	ModelVersion    string            `json:"model_version"`
	Outputs         map[string][]byte `json:"outputs"`
	InferenceTimeMs int64             `json:"inference_time_ms"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// ---------------------------------------------------------------------------
// Payload helpers
// ---------------------------------------------------------------------------

// EncodeFloat64Vector encodes a score vector into a JSON byte slice.
func EncodeFloat64Vector(vec []float64) []byte {
	b, _ := json.Marshal(vec)
	return b
}

// DecodeFloat64Vector decodes a JSON byte slice into a score vector.
func DecodeFloat64Vector(data []byte) ([]float64, error) {
	var vec []float64
	if err := json.Unmarshal(data, &vec); err != nil {
		return nil, fmt.Errorf("decoding score vector: %w", err)
	}
	return vec, nil
}
