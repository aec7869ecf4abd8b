package impl

import (
	"context"
	"testing"
	"time"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	"bvs/internal/domain/repository"
	"bvs/internal/domain/service"
	mockRepo "bvs/internal/mocks/repository"
	mockSvc "bvs/internal/mocks/service"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type agreementServiceFixtures struct {
	service   *agreementService
	repo      *mockRepo.MockAgreementRepository
	qr        *mockSvc.MockQRCodeService
	publisher *mockSvc.MockEventPublisher
}

func createTestAgreementService(t *testing.T) agreementServiceFixtures {
	repo := mockRepo.NewMockAgreementRepository(t)
	qr := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewAgreementService(AgreementServiceParams{
		AgreementRepo: repo,
		QRService:     qr,
		Publisher:     publisher,
		Logger:        newDiscardLogger(),
	}).(*agreementService)
	svc.now = func() time.Time { return date(2024, time.March, 15) }

	return agreementServiceFixtures{service: svc, repo: repo, qr: qr, publisher: publisher}
}

func websiteServices() []entity.ServiceItem {
	return []entity.ServiceItem{
		{Description: "Logo", Cost: 500},
		{Description: "Website", Cost: 1500},
	}
}

func TestAgreementService_Create_DerivesTotalsAndDates(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Agreement")).Return(nil)
	fx.publisher.EXPECT().
		PublishAgreementEvent(ctx, mock.MatchedBy(func(e *service.AgreementEvent) bool {
			return e.EventType == service.AgreementEventCreated &&
				e.Kind == service.AgreementKindStandard &&
				e.OwnerID == ownerID.String() &&
				e.TotalCost == 2000 &&
				!e.OccurredAt.IsZero()
		})).
		Return(nil)

	agreement, err := fx.service.Create(ctx, ownerID, &usecase.AgreementInput{
		ClientName:    "  Acme  ",
		ClientCompany: "Acme Corp",
		Services:      websiteServices(),
		WarrantyYears: intPtr(2),
		StartDate:     timePtr(date(2024, time.January, 1)),
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, agreement.ID)
	assert.Equal(t, ownerID, agreement.CreatedBy)
	assert.Equal(t, "Acme", agreement.ClientName)
	assert.InDelta(t, 2000, agreement.TotalCost, 0.0001)
	assert.Equal(t, date(2026, time.January, 1), agreement.EndDate)
	assert.Equal(t, entity.AgreementStatusActive, agreement.Status)
}

func TestAgreementService_Create_Defaults(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Agreement")).Return(nil)
	fx.publisher.EXPECT().PublishAgreementEvent(ctx, mock.Anything).Return(nil)

	agreement, err := fx.service.Create(ctx, uuid.New(), &usecase.AgreementInput{
		ClientName:    "Acme",
		ClientCompany: "Acme Corp",
		Services:      []entity.ServiceItem{{Description: "Support", Cost: 100}},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.DefaultWarrantyYears, agreement.WarrantyYears)
	assert.Equal(t, date(2024, time.March, 15), agreement.StartDate)
	assert.Equal(t, date(2025, time.March, 15), agreement.EndDate)
}

func TestAgreementService_Create_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()

	fx.repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Agreement")).Return(nil)
	fx.publisher.EXPECT().PublishAgreementEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.AgreementInput{
		ClientName:    "Acme",
		ClientCompany: "Acme Corp",
		Services:      websiteServices(),
	})

	require.NoError(t, err)
}

func TestAgreementService_Create_Validation(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.AgreementInput
		wantField string
	}{
		{
			name:      "client name too short",
			input:     usecase.AgreementInput{ClientName: "A", ClientCompany: "Acme Corp", Services: websiteServices()},
			wantField: "clientName",
		},
		{
			name:      "missing company",
			input:     usecase.AgreementInput{ClientName: "Acme", ClientCompany: "   ", Services: websiteServices()},
			wantField: "clientCompany",
		},
		{
			name:      "no services",
			input:     usecase.AgreementInput{ClientName: "Acme", ClientCompany: "Acme Corp"},
			wantField: "services",
		},
		{
			name: "blank service description",
			input: usecase.AgreementInput{
				ClientName: "Acme", ClientCompany: "Acme Corp",
				Services: []entity.ServiceItem{{Description: " ", Cost: 10}},
			},
			wantField: "services[0].description",
		},
		{
			name: "negative cost",
			input: usecase.AgreementInput{
				ClientName: "Acme", ClientCompany: "Acme Corp",
				Services: []entity.ServiceItem{{Description: "Logo", Cost: -1}},
			},
			wantField: "services[0].cost",
		},
		{
			name: "sub-cent cost",
			input: usecase.AgreementInput{
				ClientName: "Acme", ClientCompany: "Acme Corp",
				Services: []entity.ServiceItem{{Description: "Logo", Cost: 0.005}},
			},
			wantField: "services[0].cost",
		},
		{
			name: "cost beyond storable range",
			input: usecase.AgreementInput{
				ClientName: "Acme", ClientCompany: "Acme Corp",
				Services: []entity.ServiceItem{{Description: "Logo", Cost: 1e12}},
			},
			wantField: "services[0].cost",
		},
		{
			name: "total beyond storable range",
			input: usecase.AgreementInput{
				ClientName: "Acme", ClientCompany: "Acme Corp",
				Services: []entity.ServiceItem{
					{Description: "Logo", Cost: 600_000_000_000},
					{Description: "Website", Cost: 600_000_000_000},
				},
			},
			wantField: "totalCost",
		},
		{
			name: "warranty out of range",
			input: usecase.AgreementInput{
				ClientName: "Acme", ClientCompany: "Acme Corp",
				Services: websiteServices(), WarrantyYears: intPtr(4),
			},
			wantField: "warrantyYears",
		},
		{
			name: "unknown status",
			input: usecase.AgreementInput{
				ClientName: "Acme", ClientCompany: "Acme Corp",
				Services: websiteServices(), Status: "Active",
			},
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAgreementService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), &tt.input)

			appErr := requireAppError(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, 400, appErr.HTTPCode())
			fields, ok := appErr.Details().(domainerrors.FieldErrors)
			require.True(t, ok)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestAgreementService_OtherOwnerIsNotFound(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	intruder := uuid.New()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id, intruder).Return(nil, repository.ErrAgreementNotFound).Times(2)
	fx.repo.EXPECT().Delete(ctx, id, intruder).Return(repository.ErrAgreementNotFound)

	_, err := fx.service.Get(ctx, intruder, id)
	requireAppError(t, err, domainerrors.ErrAgreementNotFound)

	_, err = fx.service.Update(ctx, intruder, id, &usecase.AgreementInput{
		ClientName:    "Acme",
		ClientCompany: "Acme Corp",
		Services:      websiteServices(),
	})
	requireAppError(t, err, domainerrors.ErrAgreementNotFound)

	err = fx.service.Delete(ctx, intruder, id)
	appErr := requireAppError(t, err, domainerrors.ErrAgreementNotFound)
	assert.Equal(t, 404, appErr.HTTPCode())
}

func TestAgreementService_Update_ReplacesFieldsAndRederives(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()

	stored := &entity.Agreement{
		ID:            id,
		ClientName:    "Old",
		ClientCompany: "Old Co",
		Services:      []entity.ServiceItem{{Description: "Logo", Cost: 100}},
		TotalCost:     100,
		WarrantyYears: 3,
		StartDate:     date(2023, time.June, 1),
		EndDate:       date(2026, time.June, 1),
		Status:        entity.AgreementStatusActive,
		CreatedBy:     ownerID,
	}

	fx.repo.EXPECT().FindByID(ctx, id, ownerID).Return(stored, nil)
	fx.repo.EXPECT().Update(ctx, stored).Return(nil)
	fx.publisher.EXPECT().
		PublishAgreementEvent(ctx, mock.MatchedBy(func(e *service.AgreementEvent) bool {
			return e.EventType == service.AgreementEventUpdated && e.AgreementID == id.String()
		})).
		Return(nil)

	updated, err := fx.service.Update(ctx, ownerID, id, &usecase.AgreementInput{
		ClientName:    "New",
		ClientCompany: "New Co",
		Services:      websiteServices(),
		Status:        "cancelled",
	})

	require.NoError(t, err)
	assert.Equal(t, "New", updated.ClientName)
	assert.InDelta(t, 2000, updated.TotalCost, 0.0001)
	assert.Equal(t, 3, updated.WarrantyYears)
	assert.Equal(t, date(2023, time.June, 1), updated.StartDate)
	assert.Equal(t, date(2026, time.June, 1), updated.EndDate)
	assert.Equal(t, entity.AgreementStatusCancelled, updated.Status)
}

func TestAgreementService_Update_ExplicitEndDateWins(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()

	stored := &entity.Agreement{
		ID:            id,
		WarrantyYears: 1,
		StartDate:     date(2024, time.January, 1),
		EndDate:       date(2025, time.January, 1),
		Status:        entity.AgreementStatusActive,
		CreatedBy:     ownerID,
	}

	fx.repo.EXPECT().FindByID(ctx, id, ownerID).Return(stored, nil)
	fx.repo.EXPECT().Update(ctx, stored).Return(nil)
	fx.publisher.EXPECT().PublishAgreementEvent(ctx, mock.Anything).Return(nil)

	updated, err := fx.service.Update(ctx, ownerID, id, &usecase.AgreementInput{
		ClientName:    "Acme",
		ClientCompany: "Acme Corp",
		Services:      websiteServices(),
		EndDate:       timePtr(date(2024, time.July, 1)),
	})

	require.NoError(t, err)
	assert.Equal(t, date(2024, time.July, 1), updated.EndDate)
	assert.Equal(t, entity.AgreementStatusActive, updated.Status)
}

func TestAgreementService_Update_EndDateWithoutTermChange(t *testing.T) {
	customEnd := date(2024, time.June, 30)

	tests := []struct {
		name    string
		input   usecase.AgreementInput
		wantEnd time.Time
	}{
		{
			name:    "notes only keeps custom end date",
			input:   usecase.AgreementInput{Notes: "renewal discussed"},
			wantEnd: customEnd,
		},
		{
			name: "same start date and warranty keep custom end date",
			input: usecase.AgreementInput{
				StartDate:     timePtr(date(2024, time.January, 1)),
				WarrantyYears: intPtr(1),
			},
			wantEnd: customEnd,
		},
		{
			name:    "warranty change derives end date again",
			input:   usecase.AgreementInput{WarrantyYears: intPtr(2)},
			wantEnd: date(2026, time.January, 1),
		},
		{
			name:    "start date change derives end date again",
			input:   usecase.AgreementInput{StartDate: timePtr(date(2024, time.March, 1))},
			wantEnd: date(2025, time.March, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAgreementService(t)
			ctx := context.Background()
			ownerID := uuid.New()
			id := uuid.New()

			stored := &entity.Agreement{
				ID:            id,
				WarrantyYears: 1,
				StartDate:     date(2024, time.January, 1),
				EndDate:       customEnd,
				Status:        entity.AgreementStatusActive,
				CreatedBy:     ownerID,
			}

			fx.repo.EXPECT().FindByID(ctx, id, ownerID).Return(stored, nil)
			fx.repo.EXPECT().Update(ctx, stored).Return(nil)
			fx.publisher.EXPECT().PublishAgreementEvent(ctx, mock.Anything).Return(nil)

			input := tt.input
			input.ClientName = "Acme"
			input.ClientCompany = "Acme Corp"
			input.Services = websiteServices()

			updated, err := fx.service.Update(ctx, ownerID, id, &input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd, updated.EndDate)
		})
	}
}

func TestAgreementService_Delete_PublishesEvent(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()

	fx.repo.EXPECT().Delete(ctx, id, ownerID).Return(nil)
	fx.publisher.EXPECT().
		PublishAgreementEvent(ctx, mock.MatchedBy(func(e *service.AgreementEvent) bool {
			return e.EventType == service.AgreementEventDeleted && e.AgreementID == id.String()
		})).
		Return(nil)

	require.NoError(t, fx.service.Delete(ctx, ownerID, id))
}

func TestAgreementService_ListAndStats(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	list := []*entity.Agreement{{ID: uuid.New()}, {ID: uuid.New()}}
	stats := &entity.AgreementStats{
		Summary:        entity.AgreementSummary{TotalAgreements: 2, TotalRevenue: 2500, ActiveAgreements: 1},
		MonthlyRevenue: []entity.MonthlyRevenue{{Year: 2024, Month: 3, Revenue: 2500, Count: 2}},
	}

	fx.repo.EXPECT().ListByOwner(ctx, ownerID).Return(list, nil)
	fx.repo.EXPECT().Stats(ctx, ownerID).Return(stats, nil)

	got, err := fx.service.List(ctx, ownerID)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	gotStats, err := fx.service.Stats(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, stats, gotStats)
}

func TestAgreementService_QRCode(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id, ownerID).Return(&entity.Agreement{ID: id, CreatedBy: ownerID}, nil)
	fx.qr.EXPECT().GenerateAgreementQR(service.AgreementKindStandard, id).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

	png, err := fx.service.QRCode(ctx, ownerID, id)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
}

func TestAgreementService_QRCode_NotOwned(t *testing.T) {
	fx := createTestAgreementService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	id := uuid.New()

	fx.repo.EXPECT().FindByID(ctx, id, ownerID).Return(nil, repository.ErrAgreementNotFound)

	_, err := fx.service.QRCode(ctx, ownerID, id)

	requireAppError(t, err, domainerrors.ErrAgreementNotFound)
}
