package service

import (
	"context"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

type stateService struct {
	check *checker
}

func newStateService(check *checker) *stateService {
	return &stateService{check: check}
}

func (s *stateService) GetAll(ctx context.Context, st storage.Store) ([]*domain.State, error) {
	return list[*domain.State](ctx, st, domain.KindState, nil)
}

func (s *stateService) GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.State, error) {
	return getOne[*domain.State](ctx, st, domain.KindState, id)
}

func (s *stateService) Create(ctx context.Context, st storage.Store, body map[string]any) (*domain.State, error) {
	if err := requireBody(body); err != nil {
		return nil, err
	}

	state := domain.NewState()
	if err := domain.Apply(state, body); err != nil {
		return nil, err
	}
	if err := s.check.entity(state); err != nil {
		return nil, err
	}

	st.New(state)
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *stateService) Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.State, error) {
	state, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return nil, err
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}

	if err := domain.Update(state, body); err != nil {
		return nil, err
	}
	if err := s.check.changed(state); err != nil {
		return nil, err
	}
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *stateService) Delete(ctx context.Context, st storage.Store, id string) error {
	state, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return err
	}
	if err := removeState(ctx, st, state); err != nil {
		return err
	}
	return save(ctx, st)
}
