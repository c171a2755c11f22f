package validator

import (
	"context"
	"testing"

	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAuthValidator_ValidateOTPRequest(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.ValidateOTPRequest(ctx, "ravi@example.com"))
	assert.NoError(t, v.ValidateOTPRequest(ctx, "9876543210"))
	assert.NoError(t, v.ValidateOTPRequest(ctx, "+91-9876543210"))

	assert.Error(t, v.ValidateOTPRequest(ctx, ""))
	assert.Error(t, v.ValidateOTPRequest(ctx, "not a contact"))
	assert.Error(t, v.ValidateOTPRequest(ctx, "123"))
	assert.Error(t, v.ValidateOTPRequest(ctx, "no-at-sign.example.com"))
}

func TestAuthValidator_ValidateRegister(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.ValidateRegister(ctx, "ravi@example.com", "1234", "Ravi", "secret123"))

	err := v.ValidateRegister(ctx, "ravi@example.com", "", "Ravi", "secret123")
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, "otp required", he.Message)

	assert.Error(t, v.ValidateRegister(ctx, "ravi@example.com", "1234", " ", "secret123"))
	assert.Error(t, v.ValidateRegister(ctx, "ravi@example.com", "1234", "Ravi", "short"))
}

func TestAuthValidator_ValidateLogin(t *testing.T) {
	v := NewAuthValidator()
	ctx := context.Background()

	assert.NoError(t, v.ValidateLogin(ctx, "ravi@example.com", "secret123"))
	assert.Error(t, v.ValidateLogin(ctx, "", "secret123"))
	assert.Error(t, v.ValidateLogin(ctx, "ravi@example.com", ""))
}
