package service

import (
	"context"
	"fmt"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/pkg/hash"
)

type userService struct {
	check  *checker
	hasher hash.PasswordHasher
}

func newUserService(check *checker, hasher hash.PasswordHasher) *userService {
	return &userService{
		check:  check,
		hasher: hasher,
	}
}

func (s *userService) GetAll(ctx context.Context, st storage.Store) ([]*domain.User, error) {
	return list[*domain.User](ctx, st, domain.KindUser, nil)
}

func (s *userService) GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.User, error) {
	return getOne[*domain.User](ctx, st, domain.KindUser, id)
}

// Create requires email, then password. Only the password hash is stored.
func (s *userService) Create(ctx context.Context, st storage.Store, body map[string]any) (*domain.User, error) {
	if err := requireBody(body); err != nil {
		return nil, err
	}

	user := domain.NewUser()
	if err := domain.Apply(user, body); err != nil {
		return nil, err
	}
	if err := s.check.entity(user); err != nil {
		return nil, err
	}
	if err := s.hashPassword(user); err != nil {
		return nil, err
	}

	st.New(user)
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return user, nil
}

// Update never changes the email. A password string in the body replaces
// the stored hash; null leaves it as it is.
func (s *userService) Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.User, error) {
	user, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return nil, err
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}

	if err := domain.Update(user, body); err != nil {
		return nil, err
	}
	if err := s.check.changed(user); err != nil {
		return nil, err
	}
	if _, ok := body["password"].(string); ok {
		if err := s.hashPassword(user); err != nil {
			return nil, err
		}
	}

	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, st storage.Store, id string) error {
	user, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return err
	}
	if err := removeUser(ctx, st, user); err != nil {
		return err
	}
	return save(ctx, st)
}

func (s *userService) hashPassword(user *domain.User) error {
	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed
	return nil
}
