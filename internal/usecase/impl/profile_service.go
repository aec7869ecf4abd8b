package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "bvs/internal/delivery/context"
	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	"bvs/internal/domain/service"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	maxProfileNameLen = 100
	minPasswordLen    = 6
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's account.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting user profile", slog.String("userID", userID.String()))

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile renames the caller's account.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	name := strings.TrimSpace(input.Name)
	if n := utf8.RuneCountInString(name); n == 0 || n > maxProfileNameLen {
		return nil, domainerrors.NewValidationError(domainerrors.FieldErrors{"name": "must be between 1 and 100 characters"})
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user profile")
	}

	user.Name = name
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Info("User profile updated", slog.String("userID", userID.String()))

	return user, nil
}

// ChangePassword replaces the password after checking the current one, then revokes every session.
func (srv *profileService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if utf8.RuneCountInString(input.NewPassword) < minPasswordLen {
		return domainerrors.NewValidationError(domainerrors.FieldErrors{"newPassword": "must be at least 6 characters"})
	}

	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.log(ctx).Warn("Current password mismatch", slog.String("userID", userID.String()))

		return errors.Wrap(domainerrors.ErrInvalidCurrentPassword, "password change refused")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user.PasswordHash = hashedPassword
		if err := repoFactory.NewUserRepository().Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password change transaction")
	}

	srv.log(ctx).Info("Password changed", slog.String("userID", userID.String()))

	return nil
}

func (srv *profileService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
