package redis

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bvs/config"
	"bvs/internal/domain/entity"
	"bvs/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*miniredis.Miniredis, repository.OTPRepository) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() { mr.Close() })

	client := NewClient(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewOTPRepository(client)
}

func newOTP(email, code string, ttl time.Duration) *entity.OneTimePassword {
	return &entity.OneTimePassword{
		Email:     email,
		Code:      code,
		Purpose:   entity.OTPPurposeVerification,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestOTPRepository_ConsumeOnce(t *testing.T) {
	mr, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newOTP("a@example.com", "123456", 10*time.Minute)))
	assert.True(t, mr.Exists("otp:a@example.com:123456"))

	require.NoError(t, store.Consume(ctx, "a@example.com", "123456"))

	err := store.Consume(ctx, "a@example.com", "123456")
	assert.True(t, errors.Is(err, repository.ErrOTPNotFound))
}

func TestOTPRepository_WrongCode(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newOTP("a@example.com", "123456", 10*time.Minute)))

	err := store.Consume(ctx, "a@example.com", "654321")
	assert.True(t, errors.Is(err, repository.ErrOTPNotFound))

	err = store.Consume(ctx, "b@example.com", "123456")
	assert.True(t, errors.Is(err, repository.ErrOTPNotFound))
}

func TestOTPRepository_MultipleOutstandingCodes(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newOTP("a@example.com", "111111", 10*time.Minute)))
	require.NoError(t, store.Create(ctx, newOTP("a@example.com", "222222", 10*time.Minute)))

	require.NoError(t, store.Consume(ctx, "a@example.com", "111111"))
	require.NoError(t, store.Consume(ctx, "a@example.com", "222222"))
}

func TestOTPRepository_Expired(t *testing.T) {
	mr, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newOTP("a@example.com", "123456", time.Minute)))
	assert.Equal(t, time.Minute, mr.TTL("otp:a@example.com:123456").Round(time.Second))

	mr.FastForward(2 * time.Minute)

	err := store.Consume(ctx, "a@example.com", "123456")
	assert.True(t, errors.Is(err, repository.ErrOTPNotFound))
}

func TestOTPRepository_ConcurrentConsume(t *testing.T) {
	_, store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, newOTP("a@example.com", "123456", 10*time.Minute)))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if store.Consume(ctx, "a@example.com", "123456") == nil {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}

func TestOTPRepository_DeleteExpiredIsNoop(t *testing.T) {
	_, store := setupTestStore(t)

	n, err := store.DeleteExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
