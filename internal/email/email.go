package email

import (
	"context"
	"fmt"

	"github.com/evseevdm/laundrobook/internal/kafka"
)

// Sender delivers booking notifications to customers. Delivery is a stub that
// writes to stdout; the transport behind it is swappable.
type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	to := event.Email
	if to == "" {
		to = fmt.Sprintf("user-%d", event.UserID)
	}
	fmt.Printf("notify %s: booking %s is now %s\n", to, event.Reference, event.Status)
	return nil
}
