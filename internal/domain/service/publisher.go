package service

import "context"

// Publisher forwards messages to a topic on an external broker
type Publisher interface {
	Publish(ctx context.Context, topic, message string) error
}
