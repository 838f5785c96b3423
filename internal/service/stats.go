package service

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

type statsService struct{}

func newStatsService() *statsService {
	return &statsService{}
}

func (s *statsService) Count(ctx context.Context, st storage.Store) (map[string]int, error) {
	out := make(map[string]int, len(domain.Kinds()))
	for _, kind := range domain.Kinds() {
		n, err := st.Count(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", kind.Collection(), err)
		}
		out[kind.Collection()] = n
	}
	return out, nil
}
