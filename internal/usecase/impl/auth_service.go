// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"bvs/config"
	deliverycontext "bvs/internal/delivery/context"
	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	"bvs/internal/domain/service"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fallbackOTPTTL = 10 * time.Minute

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	otpRepo          repository.OTPRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	otpGenerator     service.OTPGenerator
	mailer           service.Mailer
	otpTTL           time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	OTPRepo          repository.OTPRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OTPGenerator     service.OTPGenerator
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	otpTTL := fallbackOTPTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		otpRepo:          params.OTPRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		otpGenerator:     params.OTPGenerator,
		mailer:           params.Mailer,
		otpTTL:           otpTTL,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an unverified account and mails it a verification code.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Hash outside the transaction; bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var (
		newUser *entity.User
		code    string
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		_, findErr := userRepo.FindByEmail(ctx, email)
		if findErr == nil {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
		}
		if !errors.Is(findErr, repository.ErrUserNotFound) {
			return errors.Wrap(findErr, "failed to check existing user")
		}

		newUser = &entity.User{
			ID:           uuid.New(),
			Name:         strings.TrimSpace(input.Name),
			Email:        email,
			PasswordHash: hashedPassword,
			Role:         entity.RoleUser,
		}
		if createErr := userRepo.Create(ctx, newUser); createErr != nil {
			if errors.Is(createErr, repository.ErrUserEmailTaken) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "email already registered")
			}

			return errors.Wrap(createErr, "failed to create user during registration")
		}

		var issueErr error
		code, issueErr = srv.issueOTP(ctx, repoFactory.NewOTPRepository(), email, entity.OTPPurposeVerification)

		return issueErr
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	// The account exists now; a lost mail is recovered through forgot-password.
	if mailErr := srv.mailer.SendOTP(ctx, email, code, entity.OTPPurposeVerification); mailErr != nil {
		srv.log(ctx).Error("Failed to send verification email",
			slog.String("userID", newUser.ID.String()),
			slog.Any("error", mailErr),
		)
	}

	srv.log(ctx).Info("Registration completed", slog.String("userID", newUser.ID.String()))

	return &usecase.RegisterOutput{UserID: newUser.ID}, nil
}

// VerifyOTP consumes a verification code and marks the account as verified.
func (srv *authService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) error {
	email := normalizeEmail(input.Email)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := consumeOTP(ctx, repoFactory.NewOTPRepository(), email, input.OTP); err != nil {
			return err
		}

		if err := repoFactory.NewUserRepository().MarkVerified(ctx, email); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no account for verified email")
			}

			return errors.Wrap(err, "failed to mark user verified")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("OTP verification failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to verify otp")
	}

	srv.log(ctx).Info("Email verified", slog.String("email", email))

	return nil
}

// Login checks the credentials and issues an access and refresh token pair.
// Unknown emails and wrong passwords fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !user.IsVerified {
		return nil, errors.Wrap(domainerrors.ErrEmailNotVerified, "login refused")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.now()
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// ForgotPassword mails a password reset code to a registered address.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	if _, err := srv.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "forgot password")
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}

	code, err := srv.issueOTP(ctx, srv.otpRepo, email, entity.OTPPurposePasswordReset)
	if err != nil {
		return err
	}

	if err := srv.mailer.SendOTP(ctx, email, code, entity.OTPPurposePasswordReset); err != nil {
		return errors.Wrap(err, "failed to send password reset email")
	}

	srv.log(ctx).Info("Password reset code sent", slog.String("email", email))

	return nil
}

// ResetPassword consumes a code and replaces the password. Existing sessions are revoked.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	email := normalizeEmail(input.Email)

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := consumeOTP(ctx, repoFactory.NewOTPRepository(), email, input.OTP); err != nil {
			return err
		}

		userRepo := repoFactory.NewUserRepository()
		user, err := userRepo.FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no account for reset email")
			}

			return errors.Wrap(err, "failed to load user for password reset")
		}

		user.PasswordHash = hashedPassword
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions after password reset")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("email", email))

	return nil
}

// RefreshToken issues a new access token for a stored, unexpired refresh token.
// The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}
	if stored.UserID != claims.UserID {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token subject mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load refresh token owner")
	}

	accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Debug("Access token refreshed", slog.String("userID", user.ID.String()))

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout revokes a refresh token. Revoking an unknown token succeeds.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	if strings.TrimSpace(refreshToken) == "" {
		return domainerrors.NewValidationError(domainerrors.FieldErrors{"refreshToken": "is required"})
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	srv.log(ctx).Info("User logged out")

	return nil
}

func (srv *authService) issueOTP(ctx context.Context, otpRepo repository.OTPRepository, email string, purpose entity.OTPPurpose) (string, error) {
	code, err := srv.otpGenerator.Generate()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate otp")
	}

	now := srv.now()
	if err := otpRepo.Create(ctx, &entity.OneTimePassword{
		ID:        uuid.New(),
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: now.Add(srv.otpTTL),
		CreatedAt: now,
	}); err != nil {
		return "", errors.Wrap(err, "failed to store otp")
	}

	return code, nil
}

func consumeOTP(ctx context.Context, otpRepo repository.OTPRepository, email, code string) error {
	if err := otpRepo.Consume(ctx, email, code); err != nil {
		if errors.Is(err, repository.ErrOTPNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidOTP, "otp did not match")
		}

		return errors.Wrap(err, "failed to consume otp")
	}

	return nil
}
