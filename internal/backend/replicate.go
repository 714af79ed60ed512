package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paintpreview/internal/domain"
)

const (
	defaultReplicateBaseURL = "https://api.replicate.com/v1"

	// Documented generation parameter defaults.
	DefaultInferenceSteps = 50
	DefaultGuidanceScale  = 7.5
	DefaultPromptStrength = 0.8
	DefaultScheduler      = "K_EULER"

	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 60
)

// ReplicateOptions configures the prediction-API client. Zero values fall
// back to the documented defaults above.
type ReplicateOptions struct {
	BaseURL    string
	APIToken   string
	Version    string
	HTTPClient *http.Client

	InferenceSteps int
	GuidanceScale  float64
	PromptStrength float64
	Scheduler      string

	PollInterval    time.Duration
	MaxPollAttempts int
}

// ReplicateBackend drives a prediction-based remote API: submit a job, then
// poll the prediction resource until it reaches a terminal status.
type ReplicateBackend struct {
	httpClient *http.Client
	baseURL    string
	token      string
	version    string

	steps     int
	guidance  float64
	strength  float64
	scheduler string

	pollInterval    time.Duration
	maxPollAttempts int
}

func NewReplicateBackend(opts ReplicateOptions) *ReplicateBackend {
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = defaultReplicateBaseURL
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	steps := opts.InferenceSteps
	if steps <= 0 {
		steps = DefaultInferenceSteps
	}
	guidance := opts.GuidanceScale
	if guidance <= 0 {
		guidance = DefaultGuidanceScale
	}
	strength := opts.PromptStrength
	if strength <= 0 {
		strength = DefaultPromptStrength
	}
	scheduler := strings.TrimSpace(opts.Scheduler)
	if scheduler == "" {
		scheduler = DefaultScheduler
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}
	attempts := opts.MaxPollAttempts
	if attempts <= 0 {
		attempts = defaultMaxPollAttempts
	}
	return &ReplicateBackend{
		httpClient:      client,
		baseURL:         base,
		token:           strings.TrimSpace(opts.APIToken),
		version:         strings.TrimSpace(opts.Version),
		steps:           steps,
		guidance:        guidance,
		strength:        strength,
		scheduler:       scheduler,
		pollInterval:    interval,
		maxPollAttempts: attempts,
	}
}

// Ready reports whether the client holds a credential. Without one, callers
// should not attempt generation at all.
func (b *ReplicateBackend) Ready() bool {
	return b != nil && b.token != ""
}

type predictionInput struct {
	Image             string  `json:"image"`
	Prompt            string  `json:"prompt"`
	NegativePrompt    string  `json:"negative_prompt,omitempty"`
	NumOutputs        int     `json:"num_outputs"`
	NumInferenceSteps int     `json:"num_inference_steps"`
	GuidanceScale     float64 `json:"guidance_scale"`
	PromptStrength    float64 `json:"prompt_strength"`
	Scheduler         string  `json:"scheduler"`
}

type predictionRequest struct {
	Version string          `json:"version"`
	Input   predictionInput `json:"input"`
}

type predictionResponse struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Output []string `json:"output,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// Generate submits a prediction and waits for it to complete. The poll loop
// is the only blocking wait in the system; ctx cancellation aborts it.
func (b *ReplicateBackend) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	if !b.Ready() {
		return "", domain.ErrBackendNotReady
	}
	pred, err := b.submit(ctx, req)
	if err != nil {
		return "", err
	}
	return b.waitForCompletion(ctx, pred.ID)
}

func (b *ReplicateBackend) submit(ctx context.Context, req GenerateRequest) (*predictionResponse, error) {
	payload := predictionRequest{
		Version: b.version,
		Input: predictionInput{
			Image:             req.Image,
			Prompt:            req.Prompt,
			NegativePrompt:    req.NegativePrompt,
			NumOutputs:        1,
			NumInferenceSteps: b.steps,
			GuidanceScale:     b.guidance,
			PromptStrength:    b.strength,
			Scheduler:         b.scheduler,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendSubmitFailed, err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/predictions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendSubmitFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Token "+b.token)

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendSubmitFailed, err)
	}
	defer resp.Body.Close()

	var pred predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrBackendSubmitFailed, err)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if pred.Error != "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrBackendSubmitFailed, pred.Error)
		}
		return nil, fmt.Errorf("%w: http %d", domain.ErrBackendSubmitFailed, resp.StatusCode)
	}
	if pred.ID == "" {
		return nil, fmt.Errorf("%w: missing prediction id", domain.ErrBackendSubmitFailed)
	}
	return &pred, nil
}

// waitForCompletion polls the prediction at a fixed cadence up to the attempt
// cap. A failed submission is never retried here; only an already-accepted
// prediction is polled.
func (b *ReplicateBackend) waitForCompletion(ctx context.Context, predictionID string) (string, error) {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for attempt := 0; attempt < b.maxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", domain.ErrPollTimeout, ctx.Err())
		case <-ticker.C:
		}

		pred, err := b.poll(ctx, predictionID)
		if err != nil {
			return "", err
		}
		switch pred.Status {
		case "succeeded":
			if len(pred.Output) == 0 {
				return "", domain.ErrEmptyOutput
			}
			return pred.Output[0], nil
		case "failed":
			if pred.Error != "" {
				return "", fmt.Errorf("%w: %s", domain.ErrBackendFailure, pred.Error)
			}
			return "", domain.ErrBackendFailure
		case "starting", "processing":
			// keep polling
		default:
			return "", fmt.Errorf("%w: unknown status %q", domain.ErrBackendFailure, pred.Status)
		}
	}
	return "", fmt.Errorf("%w: after %d attempts", domain.ErrPollTimeout, b.maxPollAttempts)
}

func (b *ReplicateBackend) poll(ctx context.Context, predictionID string) (*predictionResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/predictions/"+predictionID, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}
	req.Header.Set("Authorization", "Token "+b.token)

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBackendFailure, err)
	}
	defer resp.Body.Close()

	var pred predictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&pred); err != nil {
		return nil, fmt.Errorf("%w: decode poll response: %v", domain.ErrBackendFailure, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: poll http %d", domain.ErrBackendFailure, resp.StatusCode)
	}
	return &pred, nil
}

var _ Generator = (*ReplicateBackend)(nil)
