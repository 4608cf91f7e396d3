package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tweetsense/sentiment-api/internal/domain/entity"
	"github.com/tweetsense/sentiment-api/internal/domain/service"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/metrics"
)

// ClassifyInput represents the input for classifying a text
type ClassifyInput struct {
	Text string `json:"text"`
}

// ClassifyOutput represents the output for a classification
type ClassifyOutput struct {
	Label entity.Sentiment `json:"label"`
	Score float64          `json:"score"`
}

// SentimentUsecase defines the interface for sentiment classification
type SentimentUsecase interface {
	Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error)
}

type sentimentUsecase struct {
	classifier service.Classifier
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewSentimentUsecase creates a new sentiment usecase. m may be nil.
func NewSentimentUsecase(classifier service.Classifier, m *metrics.Metrics, logger *zap.Logger) SentimentUsecase {
	return &sentimentUsecase{
		classifier: classifier,
		metrics:    m,
		logger:     logger,
	}
}

func (u *sentimentUsecase) Classify(ctx context.Context, input *ClassifyInput) (*ClassifyOutput, error) {
	if input == nil || input.Text == "" {
		return nil, InvalidInput(MsgNoText)
	}

	start := time.Now()
	result, err := u.classifier.Classify(ctx, input.Text)
	elapsed := time.Since(start)

	if err != nil {
		u.observe("", elapsed, err)
		u.logger.Error("Classification failed",
			zap.Error(err),
			zap.Int("text_length", len(input.Text)),
			zap.Duration("latency", elapsed),
		)
		return nil, wrap(KindClassification, err)
	}

	classification := entity.NewClassification(input.Text, result.Label, result.Score)
	u.observe(string(classification.Sentiment), elapsed, nil)

	u.logger.Debug("Text classified",
		zap.String("model_label", classification.ModelLabel),
		zap.String("label", string(classification.Sentiment)),
		zap.Float64("score", classification.Score),
		zap.Duration("latency", elapsed),
	)

	return &ClassifyOutput{
		Label: classification.Sentiment,
		Score: classification.Score,
	}, nil
}

func (u *sentimentUsecase) observe(label string, elapsed time.Duration, err error) {
	if u.metrics != nil {
		u.metrics.ObserveClassification(label, elapsed, err)
	}
}
