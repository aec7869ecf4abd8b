package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"bvs/internal/domain/entity"
	domainerrors "bvs/internal/domain/errors"
	mockUC "bvs/internal/mocks/usecase"
	"bvs/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDigitalAgreementHandler_List_PassesSearch(t *testing.T) {
	digitalUC := mockUC.NewMockDigitalAgreementUsecase(t)
	h := NewDigitalAgreementHandler(digitalUC)
	userID := uuid.New()

	digitalUC.EXPECT().List(mock.Anything, userID, "sun").Return([]*entity.DigitalAgreement{{ID: uuid.New()}}, nil)

	c, rec := newTestContext(testRequest{method: http.MethodGet, target: "/api/digital-agreements?search=sun", userID: userID})
	require.NoError(t, h.List(c))

	env := decodeEnvelope(t, rec)
	assert.Equal(t, 1, *env.Count)
}

func TestDigitalAgreementHandler_Create_MapsBody(t *testing.T) {
	digitalUC := mockUC.NewMockDigitalAgreementUsecase(t)
	h := NewDigitalAgreementHandler(digitalUC)
	userID := uuid.New()

	digitalUC.EXPECT().
		Create(mock.Anything, userID, mock.MatchedBy(func(in *usecase.DigitalAgreementInput) bool {
			return in.ClientAddress == "12 Beach Road" &&
				in.StartDate != nil && in.EndDate != nil &&
				len(in.Platforms) == 2 && in.DroneShoot && !in.TravelAllowance &&
				len(in.AdditionalServices) == 2
		})).
		Return(&entity.DigitalAgreement{
			ID:                 uuid.New(),
			Provider:           entity.Provider{Name: "K. KRISHNA TEJA", Company: "BUSINESS VICTORY SOLUTIONS"},
			AdditionalServices: []entity.ServiceItem{{Description: "Photo shoot", Cost: 250}},
			TotalCost:          1250,
			Status:             entity.DigitalAgreementStatusDraft,
		}, nil)

	c, rec := newTestContext(testRequest{
		method: http.MethodPost,
		target: "/api/digital-agreements",
		userID: userID,
		body: `{"clientName":"Sunrise Cafe","clientCompany":"Sunrise Foods","clientAddress":"12 Beach Road",
			"services":[{"description":"Social media","cost":1000}],
			"additionalServices":[{"description":"Photo shoot","cost":250},{"description":" ","cost":9}],
			"startDate":"2024-02-01","endDate":"2024-08-01T00:00:00Z",
			"platforms":["Instagram","YouTube"],"droneShoot":true}`,
	})
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var data DigitalAgreementResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, "BUSINESS VICTORY SOLUTIONS", data.ProviderCompany)
	assert.Equal(t, "Draft", data.Status)
	assert.Empty(t, data.Platforms)
	assert.NotNil(t, data.Platforms)
}

func TestDigitalAgreementHandler_Create_AdditionalServiceCost(t *testing.T) {
	t.Run("blank line may omit cost", func(t *testing.T) {
		digitalUC := mockUC.NewMockDigitalAgreementUsecase(t)
		h := NewDigitalAgreementHandler(digitalUC)
		userID := uuid.New()

		digitalUC.EXPECT().
			Create(mock.Anything, userID, mock.MatchedBy(func(in *usecase.DigitalAgreementInput) bool {
				return len(in.AdditionalServices) == 1 && in.AdditionalServices[0].Cost == 0
			})).
			Return(&entity.DigitalAgreement{ID: uuid.New(), Status: entity.DigitalAgreementStatusDraft}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/digital-agreements",
			userID: userID,
			body: `{"clientName":"Sunrise Cafe","clientCompany":"Sunrise Foods","clientAddress":"12 Beach Road",
				"services":[{"description":"Social media","cost":1000}],
				"additionalServices":[{"description":""}],
				"startDate":"2024-02-01","endDate":"2024-08-01"}`,
		})
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("described line needs cost", func(t *testing.T) {
		h := NewDigitalAgreementHandler(mockUC.NewMockDigitalAgreementUsecase(t))

		c, rec := newTestContext(testRequest{
			method: http.MethodPost,
			target: "/api/digital-agreements",
			userID: uuid.New(),
			body: `{"clientName":"Sunrise Cafe","clientCompany":"Sunrise Foods","clientAddress":"12 Beach Road",
				"services":[{"description":"Social media","cost":1000}],
				"additionalServices":[{"description":"Photo shoot"}],
				"startDate":"2024-02-01","endDate":"2024-08-01"}`,
		})
		require.NoError(t, h.Create(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "is required", env.Error.Details["additionalServices[0].cost"])
	})
}

func TestDigitalAgreementHandler_UpdateStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		digitalUC := mockUC.NewMockDigitalAgreementUsecase(t)
		h := NewDigitalAgreementHandler(digitalUC)
		userID := uuid.New()
		id := uuid.New()

		digitalUC.EXPECT().
			UpdateStatus(mock.Anything, userID, id, "Paused").
			Return(nil, domainerrors.ErrInvalidStatus.WithDetails(domainerrors.FieldErrors{"status": "must be one of"}))

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			target: "/api/digital-agreements/" + id.String() + "/status",
			userID: userID,
			id:     id.String(),
			body:   `{"status":"Paused"}`,
		})
		require.NoError(t, h.UpdateStatus(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		assert.Equal(t, "INVALID_STATUS", env.Error.Code)
		assert.Contains(t, env.Error.Details, "status")
	})

	t.Run("malformed id", func(t *testing.T) {
		h := NewDigitalAgreementHandler(mockUC.NewMockDigitalAgreementUsecase(t))

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			target: "/api/digital-agreements/123/status",
			userID: uuid.New(),
			id:     "123",
			body:   `{"status":"Active"}`,
		})
		require.NoError(t, h.UpdateStatus(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DIGITAL_AGREEMENT_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
	})

	t.Run("updated", func(t *testing.T) {
		digitalUC := mockUC.NewMockDigitalAgreementUsecase(t)
		h := NewDigitalAgreementHandler(digitalUC)
		userID := uuid.New()
		id := uuid.New()

		digitalUC.EXPECT().
			UpdateStatus(mock.Anything, userID, id, "Completed").
			Return(&entity.DigitalAgreement{ID: id, Status: entity.DigitalAgreementStatusCompleted}, nil)

		c, rec := newTestContext(testRequest{
			method: http.MethodPatch,
			target: "/api/digital-agreements/" + id.String() + "/status",
			userID: userID,
			id:     id.String(),
			body:   `{"status":"Completed"}`,
		})
		require.NoError(t, h.UpdateStatus(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Digital agreement status updated successfully", decodeEnvelope(t, rec).Message)
	})
}
