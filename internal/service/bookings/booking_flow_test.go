package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/evseevdm/laundrobook/internal/domain"
	authsvc "github.com/evseevdm/laundrobook/internal/service/auth"
	"github.com/evseevdm/laundrobook/internal/service/laundries"
	"github.com/evseevdm/laundrobook/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory fakes backing the full marketplace flow.

type fakeStore struct {
	users     map[int64]*domain.User
	laundries map[int64]*domain.Laundry
	bookings  map[int64]*domain.Booking
	nextID    int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:     map[int64]*domain.User{},
		laundries: map[int64]*domain.Laundry{},
		bookings:  map[int64]*domain.Booking{},
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	for _, u := range r.store.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	user.ID = r.store.id()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := r.store.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

type fakeLaundryRepo struct{ store *fakeStore }

func (r *fakeLaundryRepo) List(context.Context) ([]domain.Laundry, error) {
	out := make([]domain.Laundry, 0, len(r.store.laundries))
	for _, l := range r.store.laundries {
		out = append(out, *l)
	}
	return out, nil
}

func (r *fakeLaundryRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Laundry, error) {
	out := make([]domain.Laundry, 0)
	for _, l := range r.store.laundries {
		if l.OwnerID == ownerID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *fakeLaundryRepo) GetByID(_ context.Context, id int64) (*domain.Laundry, error) {
	if l, ok := r.store.laundries[id]; ok {
		return l, nil
	}
	return nil, domain.ErrLaundryNotFound
}

func (r *fakeLaundryRepo) Create(_ context.Context, laundry *domain.Laundry) error {
	laundry.ID = r.store.id()
	r.store.laundries[laundry.ID] = laundry
	return nil
}

func (r *fakeLaundryRepo) Update(_ context.Context, laundry *domain.Laundry) error {
	if _, ok := r.store.laundries[laundry.ID]; !ok {
		return domain.ErrLaundryNotFound
	}
	r.store.laundries[laundry.ID] = laundry
	return nil
}

func (r *fakeLaundryRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.laundries[id]; !ok {
		return domain.ErrLaundryNotFound
	}
	delete(r.store.laundries, id)
	return nil
}

type fakeBookingRepo struct{ store *fakeStore }

func (r *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	booking.ID = r.store.id()
	booking.Status = domain.BookingStatusPending
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = booking.CreatedAt
	stored := *booking
	r.store.bookings[booking.ID] = &stored
	return nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return r.joined(b), nil
}

func (r *fakeBookingRepo) joined(b *domain.Booking) *domain.Booking {
	out := *b
	if b.LaundryID != nil {
		if l, ok := r.store.laundries[*b.LaundryID]; ok {
			out.Laundry = &domain.LaundrySummary{ID: l.ID, Name: l.Name, OwnerID: l.OwnerID}
		}
	}
	if b.UserID != nil {
		if u, ok := r.store.users[*b.UserID]; ok {
			out.User = &domain.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
		}
	}
	return &out
}

func (r *fakeBookingRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0)
	for _, b := range r.store.bookings {
		j := r.joined(b)
		if j.Laundry != nil && j.Laundry.OwnerID == ownerID {
			out = append(out, *j)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByUser(_ context.Context, userID int64) ([]domain.Booking, error) {
	out := make([]domain.Booking, 0)
	for _, b := range r.store.bookings {
		if b.UserID != nil && *b.UserID == userID {
			out = append(out, *r.joined(b))
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if _, ok := r.store.bookings[booking.ID]; !ok {
		return nil, domain.ErrBookingNotFound
	}
	stored := *booking
	stored.Laundry, stored.User = nil, nil
	r.store.bookings[booking.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	out := *b
	return &out, nil
}

func (r *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.store.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(r.store.bookings, id)
	return nil
}

// TestMarketplaceFlow walks the whole happy path: owner registers and lists a
// laundry, a customer books it, the owner confirms, and the customer is
// refused the owner-only transition.
func TestMarketplaceFlow(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	tokens := token.NewManager("flow-secret", time.Hour)
	authService := authsvc.NewAuthService(&fakeUserRepo{store}, tokens)
	laundryService := laundries.NewLaundryService(&fakeLaundryRepo{store}, nil)
	bookingService := NewBookingService(&fakeBookingRepo{store}, &fakeLaundryRepo{store}, nil, "")

	owner, err := authService.Register(ctx, authsvc.RegisterInput{Email: "owner@example.com", Password: "hunter22", Role: "owner"})
	require.NoError(t, err)

	ownerToken, err := authService.Login(ctx, "owner@example.com", "hunter22")
	require.NoError(t, err)
	ownerClaims, err := tokens.Parse(ownerToken)
	require.NoError(t, err)
	ownerActor := domain.Actor{ID: ownerClaims.UserID, Role: domain.Role(ownerClaims.Role)}
	assert.Equal(t, owner.ID, ownerActor.ID)

	laundry, err := laundryService.Create(ctx, ownerActor, laundries.CreateLaundryInput{
		Name: "Fresh Spin", Lat: ptr(55.75), Lng: ptr(37.61),
	})
	require.NoError(t, err)

	customer, err := authService.Register(ctx, authsvc.RegisterInput{Email: "customer@example.com", Password: "secret99"})
	require.NoError(t, err)
	customerActor := domain.Actor{ID: customer.ID, Role: customer.Role}

	booking, err := bookingService.Create(ctx, customerActor, CreateBookingInput{LaundryID: laundry.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)

	confirmed, err := bookingService.UpdateStatus(ctx, ownerActor, booking.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, confirmed.Status)

	_, err = bookingService.UpdateStatus(ctx, customerActor, booking.ID, "cancelled")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := bookingService.Get(ctx, ownerActor, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
}
