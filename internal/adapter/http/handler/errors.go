package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tweetsense/sentiment-api/internal/usecase"
)

// ErrorMapping is the HTTP status and message an error is reported with
type ErrorMapping struct {
	StatusCode int
	Message    string
}

// MapUsecaseError maps usecase errors to HTTP status codes. The message is
// always the error's own description.
func MapUsecaseError(err error) ErrorMapping {
	if usecase.KindOf(err) == usecase.KindInvalidInput {
		return ErrorMapping{StatusCode: http.StatusBadRequest, Message: err.Error()}
	}
	// classification and publish failures, and anything unexpected
	return ErrorMapping{StatusCode: http.StatusInternalServerError, Message: err.Error()}
}

// HandleUsecaseError responds with the {"error": ...} shape
func HandleUsecaseError(c *gin.Context, err error) {
	m := MapUsecaseError(err)
	_ = c.Error(err)
	respondError(c, m.StatusCode, m.Message)
}

// HandleTweetError responds with the {"status":"error","message": ...} shape
func HandleTweetError(c *gin.Context, err error) {
	m := MapUsecaseError(err)
	_ = c.Error(err)
	respondTweetError(c, m.StatusCode, m.Message)
}
