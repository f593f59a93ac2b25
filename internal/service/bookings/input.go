package bookings

import (
	"math"
	"strconv"
	"strings"
	"time"
)

type CreateBookingInput struct {
	LaundryID   int64      `json:"laundryId"`
	ScheduledAt string     `json:"scheduledAt"`
	ServiceType string     `json:"serviceType"`
	Notes       string     `json:"notes"`
	Price       PriceField `json:"price"`
}

// UpdateBookingInput distinguishes absent fields (nil) from supplied ones;
// a JSON null counts as absent.
type UpdateBookingInput struct {
	ScheduledAt *string     `json:"scheduledAt"`
	ServiceType *string     `json:"serviceType"`
	Notes       *string     `json:"notes"`
	Price       *PriceField `json:"price"`
	Status      *string     `json:"status"`
}

func (in UpdateBookingInput) empty() bool {
	return in.ScheduledAt == nil && in.ServiceType == nil && in.Notes == nil && in.Price == nil && in.Status == nil
}

// PriceField accepts a JSON number or a numeric string. Empty strings and
// non-numeric values normalize to null rather than failing the request.
type PriceField struct {
	value *float64
}

func (p *PriceField) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	p.value = &f
	return nil
}

func (p PriceField) Value() *float64 { return p.value }

// parseTimestamp turns an RFC 3339 string into a timestamp; empty or
// unparseable input normalizes to null.
func parseTimestamp(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// normalizeText nulls out empty strings.
func normalizeText(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
