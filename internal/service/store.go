package service

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

func getOne[T domain.Entity](ctx context.Context, st storage.Store, kind domain.Kind, id string) (T, error) {
	var zero T

	e, found, err := st.Get(ctx, kind, id)
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", domain.Key(kind, id), err)
	}
	if !found {
		return zero, domain.ErrNotFound
	}

	typed, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("get %s: unexpected entity type %T", domain.Key(kind, id), e)
	}
	return typed, nil
}

// exists reports whether an entity with the given kind and id is stored.
func exists(ctx context.Context, st storage.Store, kind domain.Kind, id string) (bool, error) {
	_, found, err := st.Get(ctx, kind, id)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", domain.Key(kind, id), err)
	}
	return found, nil
}

// list returns the entities of kind accepted by keep, oldest first. A nil
// keep accepts everything.
func list[T domain.Entity](ctx context.Context, st storage.Store, kind domain.Kind, keep func(T) bool) ([]T, error) {
	all, err := st.All(ctx, kind)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(all))
	for _, e := range all {
		typed, ok := e.(T)
		if !ok {
			return nil, fmt.Errorf("list %s: unexpected entity type %T", kind, e)
		}
		if keep == nil || keep(typed) {
			out = append(out, typed)
		}
	}
	domain.SortByCreation(out)
	return out, nil
}

func save(ctx context.Context, st storage.Store) error {
	if err := st.Save(ctx); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

func requireBody(body map[string]any) error {
	if body == nil {
		return ErrNotJSON
	}
	return nil
}

// requireUser resolves the user_id of a create body before the body is
// applied. A value that is not a string names no user.
func requireUser(ctx context.Context, st storage.Store, body map[string]any) error {
	value, ok := body["user_id"]
	if !ok || value == nil || value == "" {
		return &MissingFieldError{Field: "user_id"}
	}
	id, ok := value.(string)
	if !ok {
		return domain.ErrNotFound
	}

	found, err := exists(ctx, st, domain.KindUser, id)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}
