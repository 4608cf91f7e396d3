package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ErrNoPredictions is returned when the inference endpoint answers with an empty result
var ErrNoPredictions = errors.New("inference endpoint returned no predictions")

// InferenceRequest is the body sent to a text-classification endpoint
type InferenceRequest struct {
	Inputs  string            `json:"inputs"`
	Options *InferenceOptions `json:"options,omitempty"`
}

// InferenceOptions controls endpoint-side behaviour of a request
type InferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// Prediction is a single label/score pair produced by the model
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// InferenceError is the error body returned by the endpoint on failure
type InferenceError struct {
	Error         string  `json:"error"`
	EstimatedTime float64 `json:"estimated_time,omitempty"`
}

// StatusError is returned when the endpoint answers with a non-200 status
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("inference endpoint returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("inference endpoint returned status %d: %s", e.StatusCode, e.Message)
}

// InferenceClient is an HTTP client for a Hugging Face compatible
// text-classification endpoint serving a single model
type InferenceClient struct {
	endpoint     string
	token        string
	waitForModel bool
	httpClient   *http.Client
}

// NewInferenceClient creates a client for modelID served under baseURL
func NewInferenceClient(baseURL, modelID, token string, waitForModel bool, timeout time.Duration) (*InferenceClient, error) {
	endpoint, err := url.JoinPath(baseURL, "models", modelID)
	if err != nil {
		return nil, fmt.Errorf("invalid inference base url %q: %w", baseURL, err)
	}

	return &InferenceClient{
		endpoint:     endpoint,
		token:        token,
		waitForModel: waitForModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// readinessText is the input sent by Ready
const readinessText = "ready"

// Classify sends text to the model and returns every prediction it produced
func (c *InferenceClient) Classify(ctx context.Context, text string) ([]Prediction, error) {
	return c.predict(ctx, text, c.waitForModel)
}

// Ready checks that the model answers a classification right now. It never
// waits for a cold model, so a model that is still loading is reported as not ready.
func (c *InferenceClient) Ready(ctx context.Context) error {
	predictions, err := c.predict(ctx, readinessText, false)
	if err != nil {
		return err
	}
	if len(predictions) == 0 {
		return ErrNoPredictions
	}
	return nil
}

func (c *InferenceClient) predict(ctx context.Context, text string, waitForModel bool) ([]Prediction, error) {
	reqBody := InferenceRequest{Inputs: text}
	if waitForModel {
		reqBody.Options = &InferenceOptions{WaitForModel: true}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newStatusError(resp.StatusCode, respBody)
	}

	return decodePredictions(respBody)
}

func newStatusError(status int, body []byte) *StatusError {
	var ie InferenceError
	if err := json.Unmarshal(body, &ie); err == nil && ie.Error != "" {
		return &StatusError{StatusCode: status, Message: ie.Error}
	}
	return &StatusError{StatusCode: status, Message: string(bytes.TrimSpace(body))}
}

// decodePredictions accepts both the flat [{label,score}] shape and the
// nested [[{label,score}]] shape returned for a single input.
func decodePredictions(body []byte) ([]Prediction, error) {
	var nested [][]Prediction
	if err := json.Unmarshal(body, &nested); err == nil {
		if len(nested) == 0 {
			return nil, ErrNoPredictions
		}
		return nested[0], nil
	}

	var flat []Prediction
	if err := json.Unmarshal(body, &flat); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return flat, nil
}
