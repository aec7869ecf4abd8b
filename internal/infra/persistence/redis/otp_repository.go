package redis

import (
	"context"
	"time"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const otpKeyPrefix = "otp:"

// otpRepository keeps each code under its own key so several codes per email can coexist
// and expiry is enforced by Redis itself.
type otpRepository struct {
	client goredis.UniversalClient
	now    func() time.Time
}

// NewOTPRepository returns an OTP store backed by Redis keys with native TTL.
func NewOTPRepository(client goredis.UniversalClient) repository.OTPRepository {
	return &otpRepository{client: client, now: time.Now}
}

func otpKey(email, code string) string {
	return otpKeyPrefix + email + ":" + code
}

func (repo *otpRepository) Create(ctx context.Context, otp *entity.OneTimePassword) error {
	now := repo.now()
	ttl := otp.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}

	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = now
	}

	if err := repo.client.Set(ctx, otpKey(otp.Email, otp.Code), string(otp.Purpose), ttl).Err(); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store otp in redis")
	}

	return nil
}

// Consume deletes the key; DEL is atomic, so only one caller observes a count of one.
func (repo *otpRepository) Consume(ctx context.Context, email, code string) error {
	deleted, err := repo.client.Del(ctx, otpKey(email, code)).Result()
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to consume otp in redis")
	}
	if deleted == 0 {
		return repository.ErrOTPNotFound
	}

	return nil
}

// DeleteExpired is a no-op: Redis evicts expired keys on its own.
func (repo *otpRepository) DeleteExpired(context.Context) (int64, error) {
	return 0, nil
}
