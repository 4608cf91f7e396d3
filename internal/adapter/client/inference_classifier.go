package client

import (
	"context"
	"fmt"

	"github.com/tweetsense/sentiment-api/internal/domain/service"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/config"
)

// warmupText is sent once at startup to make sure the model is loaded
const warmupText = "warmup"

// InferenceClassifier adapts InferenceClient to the Classifier interface.
// It holds no mutable state and is safe for concurrent use.
type InferenceClassifier struct {
	client *InferenceClient
}

// NewInferenceClassifier creates a new InferenceClassifier
func NewInferenceClassifier(client *InferenceClient) *InferenceClassifier {
	return &InferenceClassifier{client: client}
}

// LoadClassifier builds the process-wide classifier handle from cfg. When
// warmup is enabled one warmup inference is made and its failure is returned,
// so a model that cannot be loaded stops the service from starting.
func LoadClassifier(ctx context.Context, cfg *config.ModelConfig) (*InferenceClassifier, error) {
	client, err := NewInferenceClient(cfg.BaseURL, cfg.ID, cfg.Token, cfg.WaitForModel, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	classifier := NewInferenceClassifier(client)
	if cfg.Warmup {
		if _, err := classifier.Classify(ctx, warmupText); err != nil {
			return nil, fmt.Errorf("failed to load model %s: %w", cfg.ID, err)
		}
	}

	return classifier, nil
}

// Ready reports whether the model endpoint can serve classifications
func (c *InferenceClassifier) Ready(ctx context.Context) error {
	return c.client.Ready(ctx)
}

// Classify returns the highest-scoring prediction for text
func (c *InferenceClassifier) Classify(ctx context.Context, text string) (*service.ClassificationResult, error) {
	predictions, err := c.client.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	top, err := topPrediction(predictions)
	if err != nil {
		return nil, err
	}

	return &service.ClassificationResult{
		Label: top.Label,
		Score: top.Score,
	}, nil
}

func topPrediction(predictions []Prediction) (Prediction, error) {
	if len(predictions) == 0 {
		return Prediction{}, ErrNoPredictions
	}

	top := predictions[0]
	for _, p := range predictions[1:] {
		if p.Score > top.Score {
			top = p
		}
	}
	return top, nil
}
