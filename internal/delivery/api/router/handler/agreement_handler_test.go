package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	mockUC "bvs/internal/mocks/usecase"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAgreementHandler_Create_ParsesCalendarDates(t *testing.T) {
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	h := NewAgreementHandler(agreementUC)
	userID := uuid.New()

	agreementUC.EXPECT().
		Create(mock.Anything, userID, mock.MatchedBy(func(in *usecase.AgreementInput) bool {
			return in.StartDate != nil &&
				in.StartDate.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)) &&
				in.EndDate == nil &&
				in.WarrantyYears != nil && *in.WarrantyYears == 2 &&
				len(in.Services) == 2
		})).
		Return(&entity.Agreement{
			ID:            uuid.New(),
			ClientName:    "Acme",
			Services:      []entity.ServiceItem{{Description: "Logo", Cost: 500}, {Description: "Website", Cost: 1500}},
			TotalCost:     2000,
			WarrantyYears: 2,
			StartDate:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			EndDate:       time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			Status:        entity.AgreementStatusActive,
			CreatedBy:     userID,
		}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/agreements",
		userID: userID,
		body: `{"clientName":"Acme","clientCompany":"Acme Corp","warrantyYears":2,"startDate":"2024-01-01",
			"services":[{"description":"Logo","cost":500},{"description":"Website","cost":1500}]}`,
	})
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data AgreementResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.InDelta(t, 2000, data.TotalCost, 0.0001)
	assert.Equal(t, "active", data.Status)
	assert.Equal(t, 2026, data.EndDate.Year())
}

func TestAgreementHandler_Create_RejectsBadDate(t *testing.T) {
	h := NewAgreementHandler(mockUC.NewMockAgreementUsecase(t))

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/agreements",
		userID: uuid.New(),
		body:   `{"clientName":"Acme","startDate":"15/03/2024"}`,
	})
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAgreementHandler_Create_ServiceWithoutCost(t *testing.T) {
	h := NewAgreementHandler(mockUC.NewMockAgreementUsecase(t))

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/agreements",
		userID: uuid.New(),
		body:   `{"clientName":"Acme","clientCompany":"Acme Ltd","services":[{"description":"Logo"}]}`,
	})
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "is required", env.Error.Details["services[0].cost"])
}

func TestAgreementHandler_Create_ZeroCostAndZeroWarranty(t *testing.T) {
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	h := NewAgreementHandler(agreementUC)
	userID := uuid.New()

	agreementUC.EXPECT().
		Create(mock.Anything, userID, mock.MatchedBy(func(in *usecase.AgreementInput) bool {
			return in.WarrantyYears == nil &&
				len(in.Services) == 1 && in.Services[0].Cost == 0
		})).
		Return(&entity.Agreement{ID: uuid.New(), WarrantyYears: 1}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/agreements",
		userID: userID,
		body: `{"clientName":"Acme","clientCompany":"Acme Ltd","warrantyYears":0,
			"services":[{"description":"Courtesy visit","cost":0}]}`,
	})
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestAgreementHandler_List_SetsCount(t *testing.T) {
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	h := NewAgreementHandler(agreementUC)
	userID := uuid.New()

	agreementUC.EXPECT().List(mock.Anything, userID).Return([]*entity.Agreement{
		{ID: uuid.New(), CreatedBy: userID},
		{ID: uuid.New(), CreatedBy: userID},
	}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/agreements", userID: userID})
	require.NoError(t, h.List(c))

	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Count)
	assert.Equal(t, 2, *env.Count)
}

func TestAgreementHandler_List_EmptyIsArray(t *testing.T) {
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	h := NewAgreementHandler(agreementUC)
	userID := uuid.New()

	agreementUC.EXPECT().List(mock.Anything, userID).Return(nil, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/agreements", userID: userID})
	require.NoError(t, h.List(c))

	env := decodeEnvelope(t, rec)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, 0, *env.Count)
}

func TestAgreementHandler_Get_MalformedIDIsNotFound(t *testing.T) {
	h := NewAgreementHandler(mockUC.NewMockAgreementUsecase(t))

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/agreements/not-a-uuid",
		userID: uuid.New(),
		id:     "not-a-uuid",
	})
	require.NoError(t, h.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "AGREEMENT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestAgreementHandler_Delete_NotOwned(t *testing.T) {
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	h := NewAgreementHandler(agreementUC)
	userID := uuid.New()
	id := uuid.New()

	agreementUC.EXPECT().Delete(mock.Anything, userID, id).Return(domainerrors.ErrAgreementNotFound)

	c, rec := newTestContext(testRequest{
		method: http.MethodDelete,
		target: "/api/agreements/" + id.String(),
		userID: userID,
		id:     id.String(),
	})
	require.NoError(t, h.Delete(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAgreementHandler_Stats_EmptyMonthlyRevenue(t *testing.T) {
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	h := NewAgreementHandler(agreementUC)
	userID := uuid.New()

	agreementUC.EXPECT().Stats(mock.Anything, userID).Return(&entity.AgreementStats{}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/agreements/stats/summary", userID: userID})
	require.NoError(t, h.Stats(c))

	assert.JSONEq(t,
		`{"summary":{"totalAgreements":0,"totalRevenue":0,"activeAgreements":0},"monthlyRevenue":[]}`,
		string(decodeEnvelope(t, rec).Data))
}

func TestAgreementHandler_QRCode(t *testing.T) {
	agreementUC := mockUC.NewMockAgreementUsecase(t)
	h := NewAgreementHandler(agreementUC)
	userID := uuid.New()
	id := uuid.New()

	agreementUC.EXPECT().QRCode(mock.Anything, userID, id).Return([]byte("\x89PNG"), nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodGet,
		target: "/api/agreements/" + id.String() + "/qrcode",
		userID: userID,
		id:     id.String(),
	})
	require.NoError(t, h.QRCode(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes())
}
