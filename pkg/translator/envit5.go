package translator

import (
	"context"
	"fmt"
)

// ModelName is the upstream checkpoint the runner is expected to serve.
const ModelName = "VietAI/envit5-translation"

// DefaultNumBeams trades latency for output quality over greedy decoding.
const DefaultNumBeams = 4

type Config struct {
	// NumBeams is the beam width for generation. Zero selects DefaultNumBeams.
	NumBeams int
}

// EnViT5 drives the envit5 model through a single prompt-in, text-out pass:
// build the prefixed prompt, encode, generate, decode, strip the target
// language marker. It holds no per-request state, so one instance is shared
// by all requests.
type EnViT5 struct {
	model    Model
	numBeams int
}

func NewEnViT5(model Model, cfg Config) *EnViT5 {
	numBeams := cfg.NumBeams
	if numBeams <= 0 {
		numBeams = DefaultNumBeams
	}

	return &EnViT5{
		model:    model,
		numBeams: numBeams,
	}
}

// Translate runs one request through the model. Every model failure comes
// back as an *InferenceError; validation has already happened in NewRequest.
func (t *EnViT5) Translate(ctx context.Context, req Request) (Result, error) {
	prompt := req.Direction.Prompt(req.Text)

	tokens, err := t.model.Encode(ctx, prompt)
	if err != nil {
		return Result{}, &InferenceError{Cause: fmt.Errorf("encode: %w", err)}
	}

	generated, err := t.model.Generate(ctx, tokens, GenerationParams{
		MaxNewTokens: req.MaxLength,
		NumBeams:     t.numBeams,
	})
	if err != nil {
		return Result{}, &InferenceError{Cause: fmt.Errorf("generate: %w", err)}
	}

	raw, err := t.model.Decode(ctx, generated)
	if err != nil {
		return Result{}, &InferenceError{Cause: fmt.Errorf("decode: %w", err)}
	}

	return Result{
		TranslatedText: StripPrefix(raw),
		RawOutput:      raw,
	}, nil
}
