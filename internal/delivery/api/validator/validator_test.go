package validator

import (
	"testing"

	domainerrors "bvs/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineItem struct {
	Description string  `json:"description" validate:"required"`
	Cost        float64 `json:"cost" validate:"min=0"`
}

type sampleRequest struct {
	Email    string     `json:"email" validate:"required,email"`
	Password string     `json:"password" validate:"min=6"`
	Services []lineItem `json:"services" validate:"required,min=1,dive"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		err := v.Validate(&sampleRequest{
			Email:    "a@example.com",
			Password: "secret1",
			Services: []lineItem{{Description: "Logo", Cost: 10}},
		})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&sampleRequest{
			Email:    "not-an-email",
			Password: "123",
			Services: []lineItem{{Description: "", Cost: -1}},
		})
		require.Error(t, err)
		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		fields, ok := appErr.Details().(domainerrors.FieldErrors)
		require.True(t, ok)

		assert.Equal(t, "must be a valid email address", fields["email"])
		assert.Equal(t, "must be at least 6 characters", fields["password"])
		assert.Equal(t, "is required", fields["services[0].description"])
		assert.Equal(t, "must be at least 0", fields["services[0].cost"])
	})
}
