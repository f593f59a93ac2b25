package repository

import (
	"context"
	"errors"

	"github.com/evseevdm/laundrobook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `b.id, b.reference, b.user_id, b.laundry_id, b.status, b.scheduled_at, b.service_type, b.notes, b.price, b.created_at, b.updated_at`
const laundryJoinColumns = `l.id, l.name, l.address, l.phone, l.image_url, l.owner_id`
const bookerJoinColumns = `u.id, u.name, u.email, u.phone`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	booking.Status = domain.BookingStatusPending
	return r.db.QueryRow(ctx, `INSERT INTO bookings (reference, user_id, laundry_id, status, scheduled_at, service_type, notes, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		booking.Reference, booking.UserID, booking.LaundryID, booking.Status, booking.ScheduledAt, booking.ServiceType, booking.Notes, booking.Price).
		Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+`, `+laundryJoinColumns+`, `+bookerJoinColumns+`
		FROM bookings b
		LEFT JOIN laundries l ON l.id = b.laundry_id
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.id=$1`, id)
	b, err := scanJoinedBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

// ListByOwner returns every booking placed against a laundry the owner holds,
// with laundry and booker fields joined, newest first.
func (r *PGBookingRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+`, `+laundryJoinColumns+`, `+bookerJoinColumns+`
		FROM bookings b
		JOIN laundries l ON l.id = b.laundry_id AND l.owner_id=$1
		LEFT JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJoinedBookings(rows)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+`, `+laundryJoinColumns+`, `+bookerJoinColumns+`
		FROM bookings b
		LEFT JOIN laundries l ON l.id = b.laundry_id
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.user_id=$1
		ORDER BY b.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectJoinedBookings(rows)
}

func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET scheduled_at=$1, service_type=$2, notes=$3, price=$4, status=$5, updated_at=now()
		WHERE id=$6
		RETURNING `+bareBookingColumns,
		booking.ScheduledAt, booking.ServiceType, booking.Notes, booking.Price, booking.Status, booking.ID)
	return scanBooking(row)
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `UPDATE bookings SET status=$1, updated_at=now() WHERE id=$2
		RETURNING `+bareBookingColumns, status, id)
	return scanBooking(row)
}

func (r *PGBookingRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

const bareBookingColumns = `id, reference, user_id, laundry_id, status, scheduled_at, service_type, notes, price, created_at, updated_at`

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.Reference, &b.UserID, &b.LaundryID, &b.Status, &b.ScheduledAt, &b.ServiceType, &b.Notes, &b.Price, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func scanJoinedBooking(row pgx.Row) (*domain.Booking, error) {
	var b domain.Booking
	var (
		lID, lOwnerID                   *int64
		lName, lAddress, lPhone, lImage *string
		uID                             *int64
		uName, uEmail, uPhone           *string
	)
	if err := row.Scan(&b.ID, &b.Reference, &b.UserID, &b.LaundryID, &b.Status, &b.ScheduledAt, &b.ServiceType, &b.Notes, &b.Price, &b.CreatedAt, &b.UpdatedAt,
		&lID, &lName, &lAddress, &lPhone, &lImage, &lOwnerID,
		&uID, &uName, &uEmail, &uPhone); err != nil {
		return nil, err
	}
	if lID != nil {
		b.Laundry = &domain.LaundrySummary{
			ID:       *lID,
			Name:     deref(lName),
			Address:  deref(lAddress),
			Phone:    deref(lPhone),
			ImageURL: deref(lImage),
			OwnerID:  deref(lOwnerID),
		}
	}
	if uID != nil {
		b.User = &domain.UserSummary{
			ID:    *uID,
			Name:  deref(uName),
			Email: deref(uEmail),
			Phone: deref(uPhone),
		}
	}
	return &b, nil
}

func collectJoinedBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanJoinedBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

var _ BookingRepository = (*PGBookingRepository)(nil)
