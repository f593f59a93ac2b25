package laundries

import (
	"context"

	"github.com/evseevdm/laundrobook/internal/domain"
	"github.com/evseevdm/laundrobook/internal/repository"
)

type LaundryUseCase interface {
	List(ctx context.Context) ([]domain.Laundry, error)
	GetByID(ctx context.Context, id int64) (*domain.Laundry, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Laundry, error)
	Create(ctx context.Context, actor domain.Actor, input CreateLaundryInput) (*domain.Laundry, error)
	Update(ctx context.Context, actor domain.Actor, id int64, input UpdateLaundryInput) (*domain.Laundry, error)
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type Cache interface {
	GetLaundries(ctx context.Context) ([]domain.Laundry, error)
	SetLaundries(ctx context.Context, laundries []domain.Laundry) error
	InvalidateLaundries(ctx context.Context) error
}

type CreateLaundryInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	Phone       string   `json:"phone"`
	ImageURL    string   `json:"imageUrl"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

type UpdateLaundryInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	ImageURL    *string  `json:"imageUrl"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

type LaundryService struct {
	repo  repository.LaundryRepository
	cache Cache
}

func NewLaundryService(repo repository.LaundryRepository, cache Cache) *LaundryService {
	return &LaundryService{repo: repo, cache: cache}
}

func (s *LaundryService) List(ctx context.Context) ([]domain.Laundry, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetLaundries(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	laundries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetLaundries(ctx, laundries)
	}
	return laundries, nil
}

func (s *LaundryService) GetByID(ctx context.Context, id int64) (*domain.Laundry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LaundryService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Laundry, error) {
	return s.repo.ListByOwner(ctx, actor.ID)
}

func (s *LaundryService) Create(ctx context.Context, actor domain.Actor, input CreateLaundryInput) (*domain.Laundry, error) {
	if actor.Role != domain.RoleOwner {
		return nil, domain.ForbiddenError("only owners can create laundries")
	}
	if input.Name == "" {
		return nil, domain.ValidationError("name is required")
	}
	if input.Lat == nil || input.Lng == nil {
		return nil, domain.ValidationError("lat and lng are required")
	}

	laundry := &domain.Laundry{
		OwnerID:     actor.ID,
		Name:        input.Name,
		Description: input.Description,
		Address:     input.Address,
		Phone:       input.Phone,
		ImageURL:    input.ImageURL,
		Lat:         *input.Lat,
		Lng:         *input.Lng,
	}
	if err := s.repo.Create(ctx, laundry); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateLaundries(ctx)
	}
	return laundry, nil
}

func (s *LaundryService) Update(ctx context.Context, actor domain.Actor, id int64, input UpdateLaundryInput) (*domain.Laundry, error) {
	laundry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if laundry.OwnerID != actor.ID {
		return nil, domain.ForbiddenError("you can only update your own laundry")
	}

	if input.Name != nil {
		laundry.Name = *input.Name
	}
	if input.Description != nil {
		laundry.Description = *input.Description
	}
	if input.Address != nil {
		laundry.Address = *input.Address
	}
	if input.Phone != nil {
		laundry.Phone = *input.Phone
	}
	if input.ImageURL != nil {
		laundry.ImageURL = *input.ImageURL
	}
	if input.Lat != nil {
		laundry.Lat = *input.Lat
	}
	if input.Lng != nil {
		laundry.Lng = *input.Lng
	}

	if err := s.repo.Update(ctx, laundry); err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateLaundries(ctx)
	}
	return laundry, nil
}

func (s *LaundryService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	laundry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if laundry.OwnerID != actor.ID {
		return domain.ForbiddenError("you can only delete your own laundry")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateLaundries(ctx)
	}
	return nil
}

var _ LaundryUseCase = (*LaundryService)(nil)
