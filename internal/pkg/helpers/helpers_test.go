package helpers_test

import (
	stderrors "errors"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"ticketbari/internal/pkg/errors"
	"ticketbari/internal/pkg/helpers"
	log_internal "ticketbari/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingID(t *testing.T) {
	now := time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

	id, err := helpers.GenerateTrackingID(now)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^TKT-20261015-[0-9A-F]{6}$`), id)

	other, err := helpers.GenerateTrackingID(now)
	require.NoError(t, err)
	assert.NotEqual(t, id, other)
}

func TestRespError(t *testing.T) {
	logger := log_internal.Setup()

	testCases := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
		expectedKind    errors.Kind
	}{
		{"not found", errors.NotFound("booking not found"), 404, "booking not found", errors.KindNotFound},
		{"forbidden", errors.ForbiddenError("not your booking"), 403, "not your booking", errors.KindForbidden},
		{"inventory", errors.InsufficientInventory("not enough tickets"), 400, "not enough tickets", errors.KindInsufficientInventory},
		{"unknown", stderrors.New("pq: connection refused"), 500, "internal server error", errors.KindStore},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return helpers.RespError(c, logger, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			body, _ := io.ReadAll(resp.Body)
			var got helpers.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &got))
			assert.Equal(t, tc.expectedMessage, got.Message)
			assert.Equal(t, tc.expectedKind, got.Error)
		})
	}
}

func TestRespSuccess(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return helpers.RespSuccess(c, nil, map[string]string{"status": "accepted"}, "success accept booking")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"message":"success accept booking","data":{"status":"accepted"}}`, string(body))
}
