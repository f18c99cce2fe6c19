package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var _ Model = (*Runner)(nil)

// Runner talks to the model runner process that owns the envit5 weights and
// tokenizer. The runner handles padding, truncation and special tokens; this
// client only moves token IDs around. The runner picks its device (cuda or
// cpu) once at its own startup and reports it via /info.
type Runner struct {
	baseURL string
	client  *http.Client
}

func NewRunner(baseURL string, timeout time.Duration) *Runner {
	return &Runner{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (r *Runner) Encode(ctx context.Context, text string) ([]int64, error) {
	in := map[string]interface{}{
		"text":       text,
		"padding":    true,
		"truncation": true,
	}
	var out struct {
		Tokens []int64 `json:"tokens"`
	}
	if err := r.post(ctx, "/tokenize", in, &out); err != nil {
		return nil, err
	}
	return out.Tokens, nil
}

func (r *Runner) Generate(ctx context.Context, tokens []int64, params GenerationParams) ([]int64, error) {
	in := map[string]interface{}{
		"tokens":               tokens,
		"max_new_tokens":       params.MaxNewTokens,
		"num_beams":            params.NumBeams,
		"num_return_sequences": 1,
	}
	var out struct {
		Tokens []int64 `json:"tokens"`
	}
	if err := r.post(ctx, "/generate", in, &out); err != nil {
		return nil, err
	}
	return out.Tokens, nil
}

func (r *Runner) Decode(ctx context.Context, tokens []int64) (string, error) {
	in := map[string]interface{}{
		"tokens":              tokens,
		"skip_special_tokens": true,
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := r.post(ctx, "/detokenize", in, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

func (r *Runner) Info(ctx context.Context) (RunnerInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/info", nil)
	if err != nil {
		return RunnerInfo{}, err
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return RunnerInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RunnerInfo{}, responseError("/info", resp)
	}

	var info RunnerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return RunnerInfo{}, fmt.Errorf("runner /info: %w", err)
	}
	return info, nil
}

func (r *Runner) post(ctx context.Context, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("runner %s: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("runner %s: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("runner %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return responseError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("runner %s: %w", path, err)
	}
	return nil
}

func responseError(path string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(body))
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("runner %s: status %d: %s", path, resp.StatusCode, detail)
}
