package service

import "context"

// ClassificationResult is the top prediction returned by the model
type ClassificationResult struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier defines the interface for text classification
type Classifier interface {
	// Classify returns the single highest-scoring prediction for text
	Classify(ctx context.Context, text string) (*ClassificationResult, error)
}
