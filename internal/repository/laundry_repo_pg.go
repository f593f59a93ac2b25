package repository

import (
	"context"
	"errors"

	"github.com/evseevdm/laundrobook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LaundryRepository interface {
	List(ctx context.Context) ([]domain.Laundry, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Laundry, error)
	GetByID(ctx context.Context, id int64) (*domain.Laundry, error)
	Create(ctx context.Context, laundry *domain.Laundry) error
	Update(ctx context.Context, laundry *domain.Laundry) error
	Delete(ctx context.Context, id int64) error
}

type PGLaundryRepository struct {
	db *pgxpool.Pool
}

func NewLaundryRepository(db *pgxpool.Pool) LaundryRepository {
	return &PGLaundryRepository{db: db}
}

const laundryColumns = `id, owner_id, name, description, address, phone, image_url, lat, lng, created_at, updated_at`

func (r *PGLaundryRepository) List(ctx context.Context) ([]domain.Laundry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+laundryColumns+` FROM laundries ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLaundries(rows)
}

func (r *PGLaundryRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Laundry, error) {
	rows, err := r.db.Query(ctx, `SELECT `+laundryColumns+` FROM laundries WHERE owner_id=$1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLaundries(rows)
}

func (r *PGLaundryRepository) GetByID(ctx context.Context, id int64) (*domain.Laundry, error) {
	row := r.db.QueryRow(ctx, `SELECT `+laundryColumns+` FROM laundries WHERE id=$1`, id)
	var l domain.Laundry
	if err := scanLaundry(row, &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrLaundryNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (r *PGLaundryRepository) Create(ctx context.Context, laundry *domain.Laundry) error {
	return r.db.QueryRow(ctx, `INSERT INTO laundries (owner_id, name, description, address, phone, image_url, lat, lng)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`,
		laundry.OwnerID, laundry.Name, laundry.Description, laundry.Address, laundry.Phone, laundry.ImageURL, laundry.Lat, laundry.Lng).
		Scan(&laundry.ID, &laundry.CreatedAt, &laundry.UpdatedAt)
}

func (r *PGLaundryRepository) Update(ctx context.Context, laundry *domain.Laundry) error {
	row := r.db.QueryRow(ctx, `UPDATE laundries SET name=$1, description=$2, address=$3, phone=$4, image_url=$5, lat=$6, lng=$7, updated_at=now()
		WHERE id=$8 RETURNING updated_at`,
		laundry.Name, laundry.Description, laundry.Address, laundry.Phone, laundry.ImageURL, laundry.Lat, laundry.Lng, laundry.ID)
	if err := row.Scan(&laundry.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrLaundryNotFound
		}
		return err
	}
	return nil
}

func (r *PGLaundryRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM laundries WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrLaundryNotFound
	}
	return nil
}

func scanLaundry(row pgx.Row, l *domain.Laundry) error {
	return row.Scan(&l.ID, &l.OwnerID, &l.Name, &l.Description, &l.Address, &l.Phone, &l.ImageURL, &l.Lat, &l.Lng, &l.CreatedAt, &l.UpdatedAt)
}

func collectLaundries(rows pgx.Rows) ([]domain.Laundry, error) {
	laundries := make([]domain.Laundry, 0)
	for rows.Next() {
		var l domain.Laundry
		if err := scanLaundry(rows, &l); err != nil {
			return nil, err
		}
		laundries = append(laundries, l)
	}
	return laundries, rows.Err()
}

var _ LaundryRepository = (*PGLaundryRepository)(nil)
