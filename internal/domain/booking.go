package domain

import (
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ParseBookingStatus normalizes case and reports whether the value is part of
// the closed status set.
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch st := BookingStatus(strings.ToLower(s)); st {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return st, true
	}
	return "", false
}

// Booking references its booker and laundry through nullable foreign keys:
// deleting either side sets the reference to null and the booking survives.
type Booking struct {
	ID          int64         `json:"id"`
	Reference   string        `json:"reference"`
	UserID      *int64        `json:"userId"`
	LaundryID   *int64        `json:"laundryId"`
	Status      BookingStatus `json:"status"`
	ScheduledAt *time.Time    `json:"scheduledAt"`
	ServiceType *string       `json:"serviceType"`
	Notes       *string       `json:"notes"`
	Price       *float64      `json:"price"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`

	// Populated on joined reads.
	Laundry *LaundrySummary `json:"Laundry,omitempty"`
	User    *UserSummary    `json:"User,omitempty"`
}

// UserSummary is the slice of booker fields attached to joined booking reads.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}
