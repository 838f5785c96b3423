package service

import (
	"context"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

type cityService struct {
	check *checker
}

func newCityService(check *checker) *cityService {
	return &cityService{check: check}
}

func (s *cityService) GetAllByState(ctx context.Context, st storage.Store, stateID string) ([]*domain.City, error) {
	found, err := exists(ctx, st, domain.KindState, stateID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	return list(ctx, st, domain.KindCity, func(c *domain.City) bool {
		return c.StateID == stateID
	})
}

func (s *cityService) GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.City, error) {
	return getOne[*domain.City](ctx, st, domain.KindCity, id)
}

// Create adds a city to the state. The state id always comes from the
// caller, never from the body.
func (s *cityService) Create(ctx context.Context, st storage.Store, stateID string, body map[string]any) (*domain.City, error) {
	found, err := exists(ctx, st, domain.KindState, stateID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}

	city := domain.NewCity()
	if err := domain.Apply(city, body); err != nil {
		return nil, err
	}
	city.StateID = stateID
	if err := s.check.entity(city); err != nil {
		return nil, err
	}

	st.New(city)
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *cityService) Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.City, error) {
	city, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return nil, err
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}

	if err := domain.Update(city, body); err != nil {
		return nil, err
	}
	if err := s.check.changed(city); err != nil {
		return nil, err
	}
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *cityService) Delete(ctx context.Context, st storage.Store, id string) error {
	city, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return err
	}
	if err := removeCity(ctx, st, city); err != nil {
		return err
	}
	return save(ctx, st)
}
