package entity

// Sentiment is the simplified label returned to clients
type Sentiment string

const (
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
	SentimentPositive Sentiment = "positive"
)

// NeutralScore is the single score that maps to SentimentNeutral
const NeutralScore = 0.5

// SentimentFromScore maps a model confidence score to a sentiment.
// Scores below 0.5 are negative, above are positive, exactly 0.5 is neutral.
func SentimentFromScore(score float64) Sentiment {
	switch {
	case score < NeutralScore:
		return SentimentNegative
	case score > NeutralScore:
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}

// Classification is the outcome of classifying a single text
type Classification struct {
	Text       string
	ModelLabel string
	Score      float64
	Sentiment  Sentiment
}

// NewClassification builds a Classification from the model's top prediction
func NewClassification(text, modelLabel string, score float64) *Classification {
	return &Classification{
		Text:       text,
		ModelLabel: modelLabel,
		Score:      score,
		Sentiment:  SentimentFromScore(score),
	}
}
