package booking

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"warehouse-booking/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlersRequireActor(t *testing.T) {
	bc := NewBookingController(nil)
	app := fiber.New()
	app.Get("/bookings", bc.Index)
	app.Get("/bookings/:id", bc.Show)
	app.Post("/bookings", bc.Store)
	app.Post("/bookings/:id/agreement/accept", bc.AcceptAgreement)
	app.Post("/bookings/:id/cancel", bc.Cancel)

	cases := []struct{ method, path string }{
		{fiber.MethodGet, "/bookings"},
		{fiber.MethodGet, "/bookings/abc"},
		{fiber.MethodPost, "/bookings"},
		{fiber.MethodPost, "/bookings/abc/agreement/accept"},
		{fiber.MethodPost, "/bookings/abc/cancel"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tc.method, tc.path, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
			var body types.ApiResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, "UNAUTHORIZED", body.Code)
		})
	}
}
