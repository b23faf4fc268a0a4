package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"warehouse-booking/config"
	"warehouse-booking/database"
	"warehouse-booking/database/seeders"
	userModel "warehouse-booking/models/user"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "route-test-secret"

type envelope struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

type detailBody struct {
	Booking struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"booking"`
	Agreement struct {
		Status           string     `json:"status"`
		HostAcceptedAt   *time.Time `json:"host_accepted_at"`
		RenterAcceptedAt *time.Time `json:"renter_accepted_at"`
	} `json:"agreement"`
	Inventory []struct {
		Name string `json:"name"`
	} `json:"inventory"`
}

type harness struct {
	app *fiber.App
	db  *gorm.DB
	m   *seeders.Marketplace
}

func setup(t *testing.T) *harness {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	m, err := seeders.SeedDemoMarketplace(db)
	require.NoError(t, err)

	app := fiber.New()
	asyncLogger := SetupRoutes(app, db, &config.Config{JWTSecret: testSecret, PlatformName: "WareShare"})
	t.Cleanup(asyncLogger.Close)

	return &harness{app: app, db: db, m: m}
}

func token(t *testing.T, u userModel.User) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uuid": u.Uuid,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (h *harness) call(t *testing.T, method, path string, as *userModel.User, body interface{}) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if as != nil {
		req.Header.Set("Authorization", "Bearer "+token(t, *as))
	}

	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func (h *harness) createBooking(t *testing.T) detailBody {
	t.Helper()
	status, env := h.call(t, http.MethodPost, "/api/bookings", &h.m.Renter, map[string]interface{}{
		"listing_id":           h.m.Listing.ID,
		"start_date":           "2026-06-01",
		"end_date":             "2026-08-31",
		"space_requested_sqft": 1500,
		"inventory": []map[string]interface{}{
			{"name": "Office chairs", "type": "pallet", "quantity": 4},
		},
	})
	require.Equal(t, http.StatusCreated, status, env.Message)
	return decode[detailBody](t, env.Data)
}

func TestBookingFlowOverHTTP(t *testing.T) {
	h := setup(t)

	created := h.createBooking(t)
	assert.Equal(t, "agreement_draft", created.Booking.Status)
	assert.Equal(t, "draft", created.Agreement.Status)
	require.Len(t, created.Inventory, 1)
	id := created.Booking.ID

	status, env := h.call(t, http.MethodPut, "/api/bookings/"+id+"/agreement", &h.m.Host, map[string]interface{}{
		"special_conditions": []string{"No hazardous materials"},
	})
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "host_edited", decode[detailBody](t, env.Data).Booking.Status)

	status, env = h.call(t, http.MethodPost, "/api/bookings/"+id+"/agreement/accept", &h.m.Renter, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "renter_accepted", decode[detailBody](t, env.Data).Booking.Status)

	status, env = h.call(t, http.MethodPost, "/api/bookings/"+id+"/agreement/accept", &h.m.Renter, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", env.Code)

	status, env = h.call(t, http.MethodPost, "/api/bookings/"+id+"/agreement/accept", &h.m.Host, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	confirmed := decode[detailBody](t, env.Data)
	assert.Equal(t, "confirmed", confirmed.Booking.Status)
	assert.Equal(t, "fully_accepted", confirmed.Agreement.Status)
	assert.NotNil(t, confirmed.Agreement.HostAcceptedAt)
	assert.NotNil(t, confirmed.Agreement.RenterAcceptedAt)

	status, env = h.call(t, http.MethodGet, "/api/listings/"+h.m.Listing.ID+"/calendar", &h.m.Host, nil)
	require.Equal(t, http.StatusOK, status)
	calendar := decode[struct {
		Blocks []struct {
			BookingID string `json:"booking_id"`
		} `json:"blocks"`
	}](t, env.Data)
	require.Len(t, calendar.Blocks, 1)
	assert.Equal(t, id, calendar.Blocks[0].BookingID)

	status, env = h.call(t, http.MethodGet, "/api/notifications/unread-count", &h.m.Renter, nil)
	require.Equal(t, http.StatusOK, status)
	// agreement_ready, agreement_signed, booking_approved
	assert.EqualValues(t, 3, decode[map[string]int64](t, env.Data)["unread_count"])

	status, _ = h.call(t, http.MethodPost, "/api/notifications/read", &h.m.Renter, map[string]interface{}{"read_all": true})
	require.Equal(t, http.StatusOK, status)
	_, env = h.call(t, http.MethodGet, "/api/notifications/unread-count", &h.m.Renter, nil)
	assert.Zero(t, decode[map[string]int64](t, env.Data)["unread_count"])

	status, env = h.call(t, http.MethodPost, "/api/bookings/"+id+"/cancel", &h.m.Renter, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "cancelled", decode[detailBody](t, env.Data).Booking.Status)

	_, env = h.call(t, http.MethodGet, "/api/listings/"+h.m.Listing.ID+"/calendar", &h.m.Host, nil)
	calendar = decode[struct {
		Blocks []struct {
			BookingID string `json:"booking_id"`
		} `json:"blocks"`
	}](t, env.Data)
	assert.Empty(t, calendar.Blocks)
}

func TestAuthGates(t *testing.T) {
	h := setup(t)

	status, env := h.call(t, http.MethodGet, "/api/bookings", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.Code)

	stranger := userModel.User{Uuid: uuid.NewString()}
	status, env = h.call(t, http.MethodGet, "/api/bookings", &stranger, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", env.Code)

	require.NoError(t, h.db.Model(&userModel.User{}).Where("id = ?", h.m.Renter.ID).
		Update("approval_status", userModel.ApprovalPending).Error)
	status, env = h.call(t, http.MethodGet, "/api/bookings", &h.m.Renter, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "PENDING_APPROVAL", env.Code)

	status, env = h.call(t, http.MethodGet, "/api/auth/profile", &h.m.Renter, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "pending", decode[map[string]interface{}](t, env.Data)["approval_status"])

	require.NoError(t, h.db.Model(&userModel.User{}).Where("id = ?", h.m.Renter.ID).
		Update("approval_status", userModel.ApprovalRejected).Error)
	status, env = h.call(t, http.MethodGet, "/api/notifications", &h.m.Renter, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "REJECTED_ACCOUNT", env.Code)
}

func TestRoleAndValidationFailures(t *testing.T) {
	h := setup(t)
	created := h.createBooking(t)

	status, env := h.call(t, http.MethodPost, "/api/bookings/"+created.Booking.ID+"/reject", &h.m.Renter, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", env.Code)

	status, env = h.call(t, http.MethodPost, "/api/bookings", &h.m.Host, map[string]interface{}{
		"listing_id": h.m.Listing.ID, "start_date": "2026-06-01", "end_date": "2026-08-31",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, env = h.call(t, http.MethodPost, "/api/bookings", &h.m.Renter, map[string]interface{}{
		"listing_id": h.m.Listing.ID, "start_date": "06/01/2026", "end_date": "2026-08-31",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)

	status, env = h.call(t, http.MethodPut, "/api/bookings/"+created.Booking.ID+"/agreement", &h.m.Host, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)

	status, env = h.call(t, http.MethodGet, "/api/bookings/"+uuid.NewString(), &h.m.Renter, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Code)

	reason := map[string]interface{}{"reason": "Dates no longer available"}
	status, env = h.call(t, http.MethodPost, "/api/bookings/"+created.Booking.ID+"/reject", &h.m.Host, reason)
	require.Equal(t, http.StatusOK, status, env.Message)
	assert.Equal(t, "rejected", decode[detailBody](t, env.Data).Booking.Status)

	status, env = h.call(t, http.MethodPost, "/api/bookings/"+created.Booking.ID+"/cancel", &h.m.Renter, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", env.Code)

	status, env = h.call(t, http.MethodPost, "/api/bookings/"+created.Booking.ID+"/inventory", &h.m.Renter, map[string]interface{}{"name": "Late pallet"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Booking not found or is no longer active", env.Message)
}

func TestListBookingsPaginates(t *testing.T) {
	h := setup(t)
	h.createBooking(t)
	h.createBooking(t)

	status, env := h.call(t, http.MethodGet, "/api/bookings?per_page=1&page=2", &h.m.Host, nil)
	require.Equal(t, http.StatusOK, status, env.Message)
	page := decode[struct {
		Bookings   []json.RawMessage `json:"bookings"`
		Pagination struct {
			Page       int   `json:"page"`
			PerPage    int   `json:"per_page"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	}](t, env.Data)
	assert.Len(t, page.Bookings, 1)
	assert.Equal(t, 2, page.Pagination.Page)
	assert.EqualValues(t, 2, page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)

	status, env = h.call(t, http.MethodGet, "/api/bookings?status=bogus", &h.m.Host, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Code)
}
