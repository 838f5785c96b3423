package service

import (
	"context"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

type amenityService struct {
	check *checker
}

func newAmenityService(check *checker) *amenityService {
	return &amenityService{check: check}
}

func (s *amenityService) GetAll(ctx context.Context, st storage.Store) ([]*domain.Amenity, error) {
	return list[*domain.Amenity](ctx, st, domain.KindAmenity, nil)
}

func (s *amenityService) GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.Amenity, error) {
	return getOne[*domain.Amenity](ctx, st, domain.KindAmenity, id)
}

func (s *amenityService) Create(ctx context.Context, st storage.Store, body map[string]any) (*domain.Amenity, error) {
	if err := requireBody(body); err != nil {
		return nil, err
	}

	amenity := domain.NewAmenity()
	if err := domain.Apply(amenity, body); err != nil {
		return nil, err
	}
	if err := s.check.entity(amenity); err != nil {
		return nil, err
	}

	st.New(amenity)
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (s *amenityService) Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.Amenity, error) {
	amenity, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return nil, err
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}

	if err := domain.Update(amenity, body); err != nil {
		return nil, err
	}
	if err := s.check.changed(amenity); err != nil {
		return nil, err
	}
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return amenity, nil
}

func (s *amenityService) Delete(ctx context.Context, st storage.Store, id string) error {
	amenity, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return err
	}
	if err := removeAmenity(ctx, st, amenity); err != nil {
		return err
	}
	return save(ctx, st)
}
