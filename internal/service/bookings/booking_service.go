package bookings

import (
	"context"
	"log"

	"github.com/evseevdm/laundrobook/internal/domain"
	"github.com/evseevdm/laundrobook/internal/kafka"
	"github.com/evseevdm/laundrobook/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Create(ctx context.Context, actor domain.Actor, input CreateBookingInput) (*domain.Booking, error)
	ListForOwner(ctx context.Context, actor domain.Actor) ([]domain.Booking, error)
	ListForBooker(ctx context.Context, actor domain.Actor) ([]domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error)
	Update(ctx context.Context, actor domain.Actor, id int64, input UpdateBookingInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, actor domain.Actor, id int64, status string) (*domain.Booking, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	laundries          repository.LaundryRepository
	producer           Producer
	eventsTopic        string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	laundries repository.LaundryRepository,
	producer Producer,
	eventsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		laundries:   laundries,
		producer:    producer,
		eventsTopic: eventsTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Create(ctx context.Context, actor domain.Actor, input CreateBookingInput) (*domain.Booking, error) {
	if input.LaundryID == 0 {
		return nil, domain.ValidationError("laundryId is required")
	}

	laundry, err := s.laundries.GetByID(ctx, input.LaundryID)
	if err != nil {
		return nil, err
	}
	if laundry.OwnerID == actor.ID {
		return nil, domain.ValidationError("owners cannot book their own laundry")
	}

	userID := actor.ID
	laundryID := laundry.ID
	booking := &domain.Booking{
		Reference:   uuid.NewString(),
		UserID:      &userID,
		LaundryID:   &laundryID,
		ScheduledAt: parseTimestamp(input.ScheduledAt),
		ServiceType: normalizeText(input.ServiceType),
		Notes:       normalizeText(input.Notes),
		Price:       input.Price.Value(),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	booking.Laundry = &domain.LaundrySummary{
		ID:       laundry.ID,
		Name:     laundry.Name,
		Address:  laundry.Address,
		Phone:    laundry.Phone,
		ImageURL: laundry.ImageURL,
		OwnerID:  laundry.OwnerID,
	}
	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) ListForOwner(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	return s.bookings.ListByOwner(ctx, actor.ID)
}

func (s *BookingService) ListForBooker(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, actor.ID)
}

func (s *BookingService) Get(ctx context.Context, actor domain.Actor, id int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanView(booking, actor.ID) {
		return nil, domain.ErrForbidden
	}
	return booking, nil
}

// Update applies the general field-mutation contract: owner or booker only,
// status reserved for the owner, empty strings nulled, and at least one
// recognized field required.
func (s *BookingService) Update(ctx context.Context, actor domain.Actor, id int64, input UpdateBookingInput) (*domain.Booking, error) {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := CanModifyAsOwner(booking, actor.ID)
	isBooker := CanModifyAsBooker(booking, actor.ID)
	if !isOwner && !isBooker {
		return nil, domain.ErrForbidden
	}
	if input.Status != nil && !isOwner {
		return nil, domain.ForbiddenError("only laundry owner can change status")
	}
	if input.empty() {
		return nil, domain.ValidationError("no updatable fields provided")
	}

	prev := booking.Status
	if input.ScheduledAt != nil {
		booking.ScheduledAt = parseTimestamp(*input.ScheduledAt)
	}
	if input.ServiceType != nil {
		booking.ServiceType = normalizeText(*input.ServiceType)
	}
	if input.Notes != nil {
		booking.Notes = normalizeText(*input.Notes)
	}
	if input.Price != nil {
		booking.Price = input.Price.Value()
	}
	if input.Status != nil {
		status, ok := domain.ParseBookingStatus(*input.Status)
		if !ok {
			return nil, domain.ErrInvalidStatus
		}
		booking.Status = status
	}

	updated, err := s.bookings.Update(ctx, booking)
	if err != nil {
		return nil, err
	}
	updated.Laundry = booking.Laundry
	updated.User = booking.User

	if updated.Status != prev {
		s.publish(ctx, "booking_"+string(updated.Status), updated)
	}
	return updated, nil
}

// UpdateStatus is the owner-only transition operation. The status is checked
// against the closed set first; any enumerated value is accepted regardless
// of the current state.
func (s *BookingService) UpdateStatus(ctx context.Context, actor domain.Actor, id int64, status string) (*domain.Booking, error) {
	next, ok := domain.ParseBookingStatus(status)
	if !ok {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanModifyAsOwner(booking, actor.ID) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	updated.Laundry = booking.Laundry
	updated.User = booking.User

	s.publish(ctx, "booking_"+string(updated.Status), updated)
	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanModifyAsOwner(booking, actor.ID) && !CanModifyAsBooker(booking, actor.ID) {
		return domain.ErrForbidden
	}

	if err := s.bookings.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, "booking_deleted", booking)
	return nil
}

// publish is best-effort: the request path never fails on a broker error.
func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		Type:        eventType,
		BookingID:   booking.ID,
		Reference:   booking.Reference,
		Status:      string(booking.Status),
		ScheduledAt: booking.ScheduledAt,
	}
	if booking.LaundryID != nil {
		event.LaundryID = *booking.LaundryID
	}
	if booking.UserID != nil {
		event.UserID = *booking.UserID
	}
	if booking.User != nil {
		event.Email = booking.User.Email
	}

	if err := s.producer.Publish(ctx, s.eventsTopic, booking.Reference, event); err != nil {
		log.Printf("WARNING: publish %s for booking %s: %v", eventType, booking.Reference, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, booking.Reference, event); err != nil {
			log.Printf("WARNING: publish notification for booking %s: %v", booking.Reference, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
