package utils

import (
	"testing"

	"warehouse-booking/apperror"
	bookingTypes "warehouse-booking/types/booking"
	inventoryTypes "warehouse-booking/types/inventory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-06-01 ")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01T00:00:00Z", d.Format("2006-01-02T15:04:05Z07:00"))

	_, err = ParseDate("06/01/2026")
	assert.Error(t, err)
}

func TestValidateStruct(t *testing.T) {
	valid := bookingTypes.BookingCreateRequest{
		ListingID: "listing-1",
		StartDate: "2026-06-01",
		EndDate:   "2026-08-31",
		Inventory: []inventoryTypes.InventoryItemRequest{{Name: "Boxes", Type: "box"}},
	}
	require.NoError(t, ValidateStruct(&valid))

	invalid := valid
	invalid.StartDate = "June 1st"
	invalid.Inventory = []inventoryTypes.InventoryItemRequest{{Name: "Crate", Type: "crate"}}

	err := ValidateStruct(&invalid)
	require.Error(t, err)
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
	assert.Contains(t, apperror.MessageOf(err), "StartDate must be a date in 2006-01-02 format")
	assert.Contains(t, apperror.MessageOf(err), "Inventory[0].Type must be one of: pallet box item")
}

func TestRedactHeaders(t *testing.T) {
	raw := []byte("Host: example.com\r\nAuthorization: Bearer abc.def.ghi\r\nAccept: */*\r\n")

	out := redactHeaders(raw)

	assert.NotContains(t, out, "abc.def.ghi")
	assert.Contains(t, out, "Authorization: [REDACTED]")
	assert.Contains(t, out, "Accept: */*")
}
