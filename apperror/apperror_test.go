package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(Conflict("cannot accept: booking is %s", "confirmed")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", NotFound("Booking not found"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	cases := map[error]int{
		NotFound("x"):             fiber.StatusNotFound,
		Forbidden("x"):            fiber.StatusForbidden,
		Conflict("x"):             fiber.StatusConflict,
		Validation("x"):           fiber.StatusBadRequest,
		Internal("x", nil):        fiber.StatusInternalServerError,
		errors.New("plain error"): fiber.StatusInternalServerError,
	}
	for err, status := range cases {
		assert.Equal(t, status, HTTPStatus(err), err.Error())
	}
}

func TestMessageOf_HidesInternalDetails(t *testing.T) {
	err := Internal("failed to load booking", errors.New("connection reset"))
	assert.Equal(t, "Internal server error", MessageOf(err))
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, "cannot accept: booking is confirmed", MessageOf(Conflict("cannot accept: booking is %s", "confirmed")))
}
