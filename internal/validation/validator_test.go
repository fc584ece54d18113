package validation

import (
	"testing"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&service.ClientInput{TaxID: "123", Email: "not-an-email"})
	require.ErrorIs(t, err, apperr.ErrValidation)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "is required", appErr.Fields["name"])
	assert.Equal(t, "must have at least 11 characters", appErr.Fields["tax_id"])
	assert.Equal(t, "must be a valid email address", appErr.Fields["email"])
	assert.NotContains(t, appErr.Fields, "phone")
}

func TestValidateEnumsAndNumbers(t *testing.T) {
	v := New()

	err := v.Validate(&service.ServiceInput{Name: "x", Description: "x", Price: 0, Category: "GAMES"})
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "must be greater than 0", appErr.Fields["price"])
	assert.Equal(t, "must be one of RECHARGE, FINANCIAL, DIGITAL", appErr.Fields["category"])

	err = v.Validate(&service.AddressInput{Street: "Rua", Number: "1", City: "Recife", State: "P1", PostalCode: "123", ClientID: 1})
	appErr, ok = apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "must contain only letters", appErr.Fields["state"])
	assert.Equal(t, "must have at least 8 characters", appErr.Fields["postal_code"])
}

func TestValidatePasses(t *testing.T) {
	assert.NoError(t, New().Validate(&service.CategoryInput{Name: "VIP", Description: "Premium"}))
}
