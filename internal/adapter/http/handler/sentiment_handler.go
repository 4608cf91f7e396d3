package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tweetsense/sentiment-api/internal/usecase"
)

// SentimentHandler handles classification and tweet requests
type SentimentHandler struct {
	sentimentUC usecase.SentimentUsecase
	tweetUC     usecase.TweetUsecase
}

// NewSentimentHandler creates a new sentiment handler
func NewSentimentHandler(sentimentUC usecase.SentimentUsecase, tweetUC usecase.TweetUsecase) *SentimentHandler {
	return &SentimentHandler{
		sentimentUC: sentimentUC,
		tweetUC:     tweetUC,
	}
}

// Classify handles POST /classify
func (h *SentimentHandler) Classify(c *gin.Context) {
	var input usecase.ClassifyInput
	if err := BindOptionalJSON(c, &input); err != nil {
		// a body the classifier cannot be given counts as a classification failure
		HandleUsecaseError(c, usecase.ClassificationFailed(err))
		return
	}

	output, err := h.sentimentUC.Classify(c.Request.Context(), &input)
	if err != nil {
		HandleUsecaseError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, output)
}

// FetchTweet handles POST /fetch-tweet
func (h *SentimentHandler) FetchTweet(c *gin.Context) {
	var input usecase.ReceiveTweetInput
	if err := BindOptionalJSON(c, &input); err != nil {
		respondTweetError(c, http.StatusBadRequest, err.Error())
		return
	}

	output, err := h.tweetUC.Receive(c.Request.Context(), &input)
	if err != nil {
		HandleTweetError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, TweetResponse{
		Status:    StatusSuccess,
		TweetText: output.TweetText,
	})
}
