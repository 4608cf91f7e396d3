package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tweetsense/sentiment-api/internal/infrastructure/config"
)

func TestNewRedisClient(t *testing.T) {
	t.Run("returns error when server is unreachable", func(t *testing.T) {
		client, err := NewRedisClient(&config.RedisConfig{Host: "127.0.0.1", Port: 1})

		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "127.0.0.1:1")
	})
}
