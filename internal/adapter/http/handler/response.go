package handler

import (
	"github.com/gin-gonic/gin"
)

// Tweet endpoint statuses
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the body returned by /classify on failure
type ErrorResponse struct {
	Error string `json:"error"`
}

// TweetResponse is the body returned by /fetch-tweet
type TweetResponse struct {
	Status    string `json:"status"`
	TweetText string `json:"tweetText,omitempty"`
	Message   string `json:"message,omitempty"`
}

func respondJSON(c *gin.Context, status int, body interface{}) {
	c.JSON(status, body)
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

func respondTweetError(c *gin.Context, status int, message string) {
	c.JSON(status, TweetResponse{Status: StatusError, Message: message})
}
