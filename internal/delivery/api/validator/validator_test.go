package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addressRequest struct {
	City string `json:"city" validate:"required"`
}

type orderRequest struct {
	PaymentMethod   string         `json:"paymentMethod" validate:"required,oneof=UPI CREDIT_CARD"`
	Email           string         `json:"email" validate:"omitempty,email"`
	Quantity        int            `json:"quantity" validate:"gt=0"`
	ShippingAddress addressRequest `json:"shippingAddress"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	err := v.Validate(&orderRequest{
		PaymentMethod:   "UPI",
		Quantity:        1,
		ShippingAddress: addressRequest{City: "Pune"},
	})
	require.NoError(t, err)

	err = v.Validate(&orderRequest{PaymentMethod: "BTC", Email: "nope"})
	require.Error(t, err)

	var fieldErrs ValidationErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.ElementsMatch(t, ValidationErrors{
		{Field: "paymentMethod", Message: "must be one of [UPI CREDIT_CARD]"},
		{Field: "email", Message: "must be a valid email address"},
		{Field: "quantity", Message: "must be greater than 0"},
		{Field: "shippingAddress.city", Message: "is required"},
	}, fieldErrs)
	assert.Contains(t, err.Error(), "shippingAddress.city: is required")
}
