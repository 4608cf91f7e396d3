package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/tweetsense/sentiment-api/internal/domain/entity"
	"github.com/tweetsense/sentiment-api/internal/domain/service"
	"github.com/tweetsense/sentiment-api/internal/infrastructure/metrics"
)

// ReceiveTweetInput represents a tweet submitted by the extension
type ReceiveTweetInput struct {
	TweetText string `json:"tweetText"`
}

// ReceiveTweetOutput echoes the accepted tweet
type ReceiveTweetOutput struct {
	TweetText string `json:"tweetText"`
	Published bool   `json:"-"`
}

// TweetUsecase defines the interface for accepting tweets
type TweetUsecase interface {
	Receive(ctx context.Context, input *ReceiveTweetInput) (*ReceiveTweetOutput, error)
}

type tweetUsecase struct {
	publisher service.Publisher
	topic     string
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewTweetUsecase creates a new tweet usecase. A nil publisher disables
// forwarding, in which case tweets are only logged and echoed.
func NewTweetUsecase(publisher service.Publisher, topic string, m *metrics.Metrics, logger *zap.Logger) TweetUsecase {
	return &tweetUsecase{
		publisher: publisher,
		topic:     topic,
		metrics:   m,
		logger:    logger,
	}
}

func (u *tweetUsecase) Receive(ctx context.Context, input *ReceiveTweetInput) (*ReceiveTweetOutput, error) {
	if input == nil || input.TweetText == "" {
		return nil, InvalidInput(MsgNoTweetText)
	}

	tweet := entity.NewTweet(input.TweetText)
	u.logger.Info("Received tweet text",
		zap.String("tweet_text", tweet.Text),
		zap.Time("received_at", tweet.ReceivedAt),
	)

	published := false
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, u.topic, tweet.Text); err != nil {
			u.logger.Error("Failed to publish tweet", zap.String("topic", u.topic), zap.Error(err))
			return nil, wrap(KindPublish, err)
		}
		published = true
	}

	if u.metrics != nil {
		u.metrics.ObserveTweet(published)
	}

	return &ReceiveTweetOutput{
		TweetText: tweet.Text,
		Published: published,
	}, nil
}
