package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nttbank/account-service/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesKind(t *testing.T) {
	cause := errors.New("insert failed")
	err := apperrors.New(apperrors.KindAccountNotCreated, "could not persist", cause)
	wrapped := fmt.Errorf("create: %w", err)

	assert.ErrorIs(t, wrapped, apperrors.ErrAccountNotCreated)
	assert.ErrorIs(t, wrapped, cause)
	assert.NotErrorIs(t, wrapped, apperrors.ErrAccountNotFound)
}

func TestAppError_DefaultsAndStatus(t *testing.T) {
	err := apperrors.New(apperrors.KindAccountAlreadyInactive, "", nil)

	assert.Equal(t, "AC-007", err.Code)
	assert.Equal(t, "Account is already inactive", err.Message)
	assert.Equal(t, http.StatusConflict, err.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, apperrors.ErrAccountNotFound.HTTPStatus())
	assert.Equal(t, http.StatusServiceUnavailable, apperrors.ErrUpstreamUnavailable.HTTPStatus())
}

func TestErrDuplicateAccountNumber_WrapsDuplicate(t *testing.T) {
	err := fmt.Errorf("insert: %w", apperrors.ErrDuplicateAccountNumber)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAccountNumber)
}
