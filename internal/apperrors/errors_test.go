package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/contractor_marketplace/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestStoreFailure_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.StoreFailure("failed to lock job 7", cause)

	assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed to lock job 7: connection reset", err.Error())

	var appErr *apperrors.AppError
	assert.True(t, errors.As(fmt.Errorf("pay: %w", err), &appErr))
	assert.Equal(t, 500, appErr.Code)
}

func TestStoreFailure_NilIsNil(t *testing.T) {
	assert.NoError(t, apperrors.StoreFailure("noop", nil))
}

func TestAppError_ClientCodesAreNotStoreFailures(t *testing.T) {
	err := apperrors.NewAppError(400, "bad input", nil)
	assert.False(t, errors.Is(err, apperrors.ErrStoreFailure))
	assert.Equal(t, "bad input", err.Error())
}
