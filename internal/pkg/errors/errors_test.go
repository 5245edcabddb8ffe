package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"ticketbari/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
		kind     errors.Kind
	}{
		{"bad request", errors.BadRequest("x"), http.StatusBadRequest, errors.KindBadRequest},
		{"unauthorized", errors.UnauthorizedError("x"), http.StatusUnauthorized, errors.KindUnauthorized},
		{"forbidden", errors.ForbiddenError("x"), http.StatusForbidden, errors.KindForbidden},
		{"not found", errors.NotFound("x"), http.StatusNotFound, errors.KindNotFound},
		{"insufficient inventory", errors.InsufficientInventory("x"), http.StatusBadRequest, errors.KindInsufficientInventory},
		{"payment provider", errors.PaymentProviderError("x"), http.StatusInternalServerError, errors.KindPaymentProvider},
		{"store", errors.InternalServerError("x"), http.StatusInternalServerError, errors.KindStore},
		{"wrapped", fmt.Errorf("accept: %w", errors.NotFound("x")), http.StatusNotFound, errors.KindNotFound},
		{"plain", stderrors.New("boom"), http.StatusInternalServerError, errors.KindStore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errors.HTTPStatus(tc.err))
			assert.Equal(t, tc.kind, errors.KindOf(tc.err))
		})
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrap: %w", errors.InsufficientInventory("sold out"))

	assert.True(t, errors.Is(err, errors.KindInsufficientInventory))
	assert.False(t, errors.Is(err, errors.KindNotFound))
	assert.False(t, errors.Is(stderrors.New("boom"), errors.KindStore))
	assert.Equal(t, "sold out", errors.InsufficientInventory("sold out").Error())
}
