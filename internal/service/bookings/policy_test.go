package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanView(t *testing.T) {
	b := joinedBooking(1, 10, 20, 30)

	assert.True(t, CanView(b, 10), "booker can view")
	assert.True(t, CanView(b, 30), "laundry owner can view")
	assert.False(t, CanView(b, 99), "third party cannot view")
}

func TestCanModifyAsOwner(t *testing.T) {
	b := joinedBooking(1, 10, 20, 30)

	assert.True(t, CanModifyAsOwner(b, 30))
	assert.False(t, CanModifyAsOwner(b, 10))
	assert.False(t, CanModifyAsOwner(b, 99))
}

func TestCanModifyAsBooker(t *testing.T) {
	b := joinedBooking(1, 10, 20, 30)

	assert.True(t, CanModifyAsBooker(b, 10))
	assert.False(t, CanModifyAsBooker(b, 30))
}

func TestPolicy_OrphanedBooking(t *testing.T) {
	// SET NULL foreign keys: a deleted laundry leaves no owner, a deleted
	// booker leaves no userId.
	b := joinedBooking(1, 10, 20, 30)
	b.Laundry = nil

	assert.True(t, CanView(b, 10))
	assert.False(t, CanModifyAsOwner(b, 30))

	b.UserID = nil
	assert.False(t, CanView(b, 10))
	assert.False(t, CanModifyAsBooker(b, 10))
}

func TestPolicy_NilBooking(t *testing.T) {
	assert.False(t, CanView(nil, 1))
	assert.False(t, CanModifyAsOwner(nil, 1))
	assert.False(t, CanModifyAsBooker(nil, 1))
}
