package translator

import (
	"context"
)

// GenerationParams bounds a single generation call.
type GenerationParams struct {
	// MaxNewTokens caps the number of tokens the model may generate.
	MaxNewTokens int
	// NumBeams is the beam width used for decoding.
	NumBeams int
}

// RunnerInfo identifies the model runner serving the capability.
type RunnerInfo struct {
	Device    string `json:"device"`
	ModelName string `json:"model_name"`
}

// Model is the sequence-to-sequence capability the pipeline depends on.
// Implementations own tokenization details (padding, truncation, special
// tokens); token IDs are opaque to the caller.
type Model interface {
	Encode(ctx context.Context, text string) ([]int64, error)
	Generate(ctx context.Context, tokens []int64, params GenerationParams) ([]int64, error)
	Decode(ctx context.Context, tokens []int64) (string, error)
	Info(ctx context.Context) (RunnerInfo, error)
}

// Result carries both the cleaned translation and the verbatim decoder output.
type Result struct {
	TranslatedText string
	RawOutput      string
}

type Translator interface {
	Translate(ctx context.Context, req Request) (Result, error)
}

// ValidationError reports a malformed request field. The caller can recover
// by correcting the request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// InferenceError wraps any failure surfaced by the model capability during
// tokenization, generation or decoding.
type InferenceError struct {
	Cause error
}

func (e *InferenceError) Error() string {
	return "model inference failed: " + e.Cause.Error()
}

func (e *InferenceError) Unwrap() error {
	return e.Cause
}
