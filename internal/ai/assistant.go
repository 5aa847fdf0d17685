// Package ai backs the assistant side panel. The completion capability
// comes in two variants selected at construction time: a remote client
// when an API key is configured, and a local echo fallback when not.
// Callers never probe for the remote service at call time.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"gxplorer/internal/config"
	"gxplorer/internal/errors"
	"gxplorer/internal/log"

	"github.com/hashicorp/go-retryablehttp"
)

// Completer turns a free-text prompt into a response.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// FromConfig picks the completer variant: remote when the configured
// environment variable holds an API key, echo otherwise.
func FromConfig(cfg *config.Config) Completer {
	key := os.Getenv(cfg.AI.APIKeyEnv)
	if key == "" {
		log.Debugf("no API key in $%s, assistant runs in echo mode", cfg.AI.APIKeyEnv)
		return NewEcho()
	}
	return NewRemote(cfg.AI.Endpoint, cfg.AI.Model, key)
}

// Echo is the no-credential fallback: it reflects the prompt back so
// the panel stays usable offline.
type Echo struct{}

// NewEcho creates the echo completer.
func NewEcho() *Echo {
	return &Echo{}
}

// Complete returns a canned reflection of the prompt.
func (e *Echo) Complete(_ context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("empty prompt")
	}
	return fmt.Sprintf("Demo mode: you said %q. Configure an API key for real completions.", prompt), nil
}

// Remote posts prompts to an OpenAI-style completions endpoint.
type Remote struct {
	endpoint string
	model    string
	apiKey   string
	client   *retryablehttp.Client
}

// NewRemote creates the remote completer.
func NewRemote(endpoint, model, apiKey string) *Remote {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.Logger = nil

	return &Remote{
		endpoint: endpoint,
		model:    model,
		apiKey:   apiKey,
		client:   client,
	}
}

type completionRequest struct {
	Model     string `json:"model"`
	Prompt    string `json:"prompt"`
	MaxTokens int    `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Text string `json:"text"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt and returns the first choice's text.
func (r *Remote) Complete(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("empty prompt")
	}

	body, err := json.Marshal(completionRequest{
		Model:     r.model,
		Prompt:    prompt,
		MaxTokens: 256,
	})
	if err != nil {
		return "", errors.Wrap(err, "cannot encode request")
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "cannot build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "cannot read response")
	}

	var parsed completionResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", errors.Wrap(err, "cannot decode response")
	}
	if parsed.Error != nil {
		return "", errors.Newf("completion service: %s", parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errors.Newf("completion service returned %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("completion service returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Text), nil
}
