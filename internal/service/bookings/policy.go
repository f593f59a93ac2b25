package bookings

import "github.com/evseevdm/laundrobook/internal/domain"

// Authorization predicates over a booking that was fetched with its laundry
// summary attached. Nil-safe: orphaned bookings (nulled foreign keys after a
// laundry or user deletion) fail the related check instead of panicking.

func CanView(b *domain.Booking, actorID int64) bool {
	return CanModifyAsOwner(b, actorID) || CanModifyAsBooker(b, actorID)
}

func CanModifyAsOwner(b *domain.Booking, actorID int64) bool {
	return b != nil && b.Laundry != nil && b.Laundry.OwnerID == actorID
}

func CanModifyAsBooker(b *domain.Booking, actorID int64) bool {
	return b != nil && b.UserID != nil && *b.UserID == actorID
}
