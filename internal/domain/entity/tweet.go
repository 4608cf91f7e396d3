package entity

import "time"

// Tweet is a tweet body submitted by the browser extension
type Tweet struct {
	Text       string
	ReceivedAt time.Time
}

// NewTweet creates a Tweet stamped with the current UTC time
func NewTweet(text string) *Tweet {
	return &Tweet{
		Text:       text,
		ReceivedAt: time.Now().UTC(),
	}
}
