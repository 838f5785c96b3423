package service

import (
	"context"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/pkg/hash"

	"github.com/go-playground/validator/v10"
)

// Services hold no per-request state: every call gets the request's store
// session as an argument.
type Services struct {
	States    States
	Cities    Cities
	Amenities Amenities
	Places    Places
	Reviews   Reviews
	Users     Users
	Stats     Stats
}

type Deps struct {
	Hasher    hash.PasswordHasher
	Validator *validator.Validate
}

func NewServices(deps Deps) *Services {
	check := newChecker(deps.Validator)
	return &Services{
		States:    newStateService(check),
		Cities:    newCityService(check),
		Amenities: newAmenityService(check),
		Places:    newPlaceService(check),
		Reviews:   newReviewService(check),
		Users:     newUserService(check, deps.Hasher),
		Stats:     newStatsService(),
	}
}

type States interface {
	GetAll(ctx context.Context, st storage.Store) ([]*domain.State, error)
	GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.State, error)
	Create(ctx context.Context, st storage.Store, body map[string]any) (*domain.State, error)
	Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.State, error)
	Delete(ctx context.Context, st storage.Store, id string) error
}

type Cities interface {
	GetAllByState(ctx context.Context, st storage.Store, stateID string) ([]*domain.City, error)
	GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.City, error)
	Create(ctx context.Context, st storage.Store, stateID string, body map[string]any) (*domain.City, error)
	Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.City, error)
	Delete(ctx context.Context, st storage.Store, id string) error
}

type Amenities interface {
	GetAll(ctx context.Context, st storage.Store) ([]*domain.Amenity, error)
	GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.Amenity, error)
	Create(ctx context.Context, st storage.Store, body map[string]any) (*domain.Amenity, error)
	Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.Amenity, error)
	Delete(ctx context.Context, st storage.Store, id string) error
}

type Places interface {
	GetAllByCity(ctx context.Context, st storage.Store, cityID string) ([]*domain.Place, error)
	GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.Place, error)
	Create(ctx context.Context, st storage.Store, cityID string, body map[string]any) (*domain.Place, error)
	Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.Place, error)
	Delete(ctx context.Context, st storage.Store, id string) error
	Search(ctx context.Context, st storage.Store, filters PlaceFilters) ([]*domain.Place, error)
	GetAmenities(ctx context.Context, st storage.Store, placeID string) ([]*domain.Amenity, error)
	// LinkAmenity reports created=false when the amenity was already linked.
	LinkAmenity(ctx context.Context, st storage.Store, placeID string, amenityID string) (amenity *domain.Amenity, created bool, err error)
	UnlinkAmenity(ctx context.Context, st storage.Store, placeID string, amenityID string) error
}

type Reviews interface {
	GetAllByPlace(ctx context.Context, st storage.Store, placeID string) ([]*domain.Review, error)
	GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.Review, error)
	Create(ctx context.Context, st storage.Store, placeID string, body map[string]any) (*domain.Review, error)
	Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.Review, error)
	Delete(ctx context.Context, st storage.Store, id string) error
}

type Users interface {
	GetAll(ctx context.Context, st storage.Store) ([]*domain.User, error)
	GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.User, error)
	Create(ctx context.Context, st storage.Store, body map[string]any) (*domain.User, error)
	Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.User, error)
	Delete(ctx context.Context, st storage.Store, id string) error
}

type Stats interface {
	// Count maps each kind's collection name to its number of entities.
	Count(ctx context.Context, st storage.Store) (map[string]int, error)
}

// Create builds an entity of any kind from body. Parent ids are read from
// the body itself. It backs the console's create command.
func (s *Services) Create(ctx context.Context, st storage.Store, kind domain.Kind, body map[string]any) (domain.Entity, error) {
	switch kind {
	case domain.KindState:
		return entity(s.States.Create(ctx, st, body))
	case domain.KindCity:
		return entity(s.Cities.Create(ctx, st, stringField(body, "state_id"), body))
	case domain.KindAmenity:
		return entity(s.Amenities.Create(ctx, st, body))
	case domain.KindPlace:
		return entity(s.Places.Create(ctx, st, stringField(body, "city_id"), body))
	case domain.KindReview:
		return entity(s.Reviews.Create(ctx, st, stringField(body, "place_id"), body))
	case domain.KindUser:
		return entity(s.Users.Create(ctx, st, body))
	}
	return nil, domain.ErrUnknownKind
}

// Update patches the entity of any kind. It backs the console's update
// command.
func (s *Services) Update(ctx context.Context, st storage.Store, kind domain.Kind, id string, body map[string]any) (domain.Entity, error) {
	switch kind {
	case domain.KindState:
		return entity(s.States.Update(ctx, st, id, body))
	case domain.KindCity:
		return entity(s.Cities.Update(ctx, st, id, body))
	case domain.KindAmenity:
		return entity(s.Amenities.Update(ctx, st, id, body))
	case domain.KindPlace:
		return entity(s.Places.Update(ctx, st, id, body))
	case domain.KindReview:
		return entity(s.Reviews.Update(ctx, st, id, body))
	case domain.KindUser:
		return entity(s.Users.Update(ctx, st, id, body))
	}
	return nil, domain.ErrUnknownKind
}

// Delete removes the entity of any kind together with its dependents.
func (s *Services) Delete(ctx context.Context, st storage.Store, kind domain.Kind, id string) error {
	switch kind {
	case domain.KindState:
		return s.States.Delete(ctx, st, id)
	case domain.KindCity:
		return s.Cities.Delete(ctx, st, id)
	case domain.KindAmenity:
		return s.Amenities.Delete(ctx, st, id)
	case domain.KindPlace:
		return s.Places.Delete(ctx, st, id)
	case domain.KindReview:
		return s.Reviews.Delete(ctx, st, id)
	case domain.KindUser:
		return s.Users.Delete(ctx, st, id)
	}
	return domain.ErrUnknownKind
}

func stringField(body map[string]any, key string) string {
	v, _ := body[key].(string)
	return v
}

// entity keeps a typed nil out of the returned interface.
func entity[T domain.Entity](e T, err error) (domain.Entity, error) {
	if err != nil {
		return nil, err
	}
	return e, nil
}
