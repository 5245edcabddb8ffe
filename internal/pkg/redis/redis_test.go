package redis_test

import (
	"context"
	"errors"
	"testing"

	"ticketbari/internal/pkg/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectPing().SetVal("PONG")

		assert.NoError(t, redis.HealthCheck(context.Background(), client))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unhealthy", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectPing().SetErr(errors.New("connection refused"))

		err := redis.HealthCheck(context.Background(), client)
		assert.ErrorContains(t, err, "redis health check failed")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
