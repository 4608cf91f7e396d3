package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tweetsense/sentiment-api/internal/domain/service"
)

// MockClassifier is a mock implementation of service.Classifier
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(ctx context.Context, text string) (*service.ClassificationResult, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ClassificationResult), args.Error(1)
}

// MockPublisher is a mock implementation of service.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic, message string) error {
	args := m.Called(ctx, topic, message)
	return args.Error(0)
}
