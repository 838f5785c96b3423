package service

import (
	"context"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

type reviewService struct {
	check *checker
}

func newReviewService(check *checker) *reviewService {
	return &reviewService{check: check}
}

func (s *reviewService) GetAllByPlace(ctx context.Context, st storage.Store, placeID string) ([]*domain.Review, error) {
	found, err := exists(ctx, st, domain.KindPlace, placeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	return list(ctx, st, domain.KindReview, func(r *domain.Review) bool {
		return r.PlaceID == placeID
	})
}

func (s *reviewService) GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.Review, error) {
	return getOne[*domain.Review](ctx, st, domain.KindReview, id)
}

// Create checks the place, then the author named by user_id, then the
// text.
func (s *reviewService) Create(ctx context.Context, st storage.Store, placeID string, body map[string]any) (*domain.Review, error) {
	found, err := exists(ctx, st, domain.KindPlace, placeID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}
	if err := requireUser(ctx, st, body); err != nil {
		return nil, err
	}

	review := domain.NewReview()
	if err := domain.Apply(review, body); err != nil {
		return nil, err
	}
	review.PlaceID = placeID

	if err := s.check.entity(review); err != nil {
		return nil, err
	}

	st.New(review)
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.Review, error) {
	review, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return nil, err
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}

	if err := domain.Update(review, body); err != nil {
		return nil, err
	}
	if err := s.check.changed(review); err != nil {
		return nil, err
	}
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, st storage.Store, id string) error {
	review, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return err
	}
	st.Delete(review)
	return save(ctx, st)
}
