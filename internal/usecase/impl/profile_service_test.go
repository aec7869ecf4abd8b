package impl

import (
	"context"
	"testing"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	mockRepo "bvs/internal/mocks/repository"
	mockSvc "bvs/internal/mocks/service"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service          usecase.ProfileUsecase
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
	}
	fx.service = NewProfileService(fx.txManager, fx.userRepo, fx.hasher, newDiscardLogger())

	return fx
}

func TestProfileService_GetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Name: "Teja", Email: "teja@example.com"}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		got, err := fx.service.GetProfile(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		userID := uuid.New()
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetProfile(ctx, userID)

		appErr := requireAppError(t, err, domainerrors.ErrUserNotFound)
		assert.Equal(t, 404, appErr.HTTPCode())
	})
}

func TestProfileService_UpdateProfile(t *testing.T) {
	t.Run("rejects blank name", func(t *testing.T) {
		fx := createTestProfileService(t)

		_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{Name: "   "})

		appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, appErr.Details(), "name")
	})

	t.Run("trims and saves", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Name: "Old"}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Name == "Krishna Teja" })).
			Return(nil)

		got, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{Name: "  Krishna Teja "})

		require.NoError(t, err)
		assert.Equal(t, "Krishna Teja", got.Name)
	})
}

func TestProfileService_ChangePassword(t *testing.T) {
	t.Run("short new password is rejected first", func(t *testing.T) {
		fx := createTestProfileService(t)

		err := fx.service.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
			CurrentPassword: "whatever",
			NewPassword:     "12345",
		})

		appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
		assert.Contains(t, appErr.Details(), "newPassword")
	})

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), PasswordHash: "stored-hash"}
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "stored-hash").Return(false)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "wrong",
			NewPassword:     "newsecret",
		})

		appErr := requireAppError(t, err, domainerrors.ErrInvalidCurrentPassword)
		assert.Equal(t, 400, appErr.HTTPCode())
		assert.Equal(t, "stored-hash", user.PasswordHash)
	})

	t.Run("updates hash and revokes sessions", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), PasswordHash: "stored-hash"}

		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.hasher.EXPECT().Check("oldsecret", "stored-hash").Return(true)
		fx.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil)
		fx.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType(txFuncType)).
			RunAndReturn(runInTx(fx.factory))
		fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo)
		fx.factory.EXPECT().NewRefreshTokenRepository().Return(fx.refreshTokenRepo)
		fx.userRepo.EXPECT().
			Update(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.PasswordHash == "new-hash" })).
			Return(nil)
		fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(nil)

		err := fx.service.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "oldsecret",
			NewPassword:     "newsecret",
		})

		require.NoError(t, err)
	})
}
