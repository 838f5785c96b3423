package service

import (
	"context"
	"errors"
	"slices"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

// PlaceFilters narrow a place search. States and Cities select places by
// location (a union of both); Amenities keeps only places offering every
// listed amenity. Empty filters select everything.
type PlaceFilters struct {
	States    []string `json:"states" binding:"omitempty,dive,entityid"`
	Cities    []string `json:"cities" binding:"omitempty,dive,entityid"`
	Amenities []string `json:"amenities" binding:"omitempty,dive,entityid"`
}

type placeService struct {
	check *checker
}

func newPlaceService(check *checker) *placeService {
	return &placeService{check: check}
}

func (s *placeService) GetAllByCity(ctx context.Context, st storage.Store, cityID string) ([]*domain.Place, error) {
	found, err := exists(ctx, st, domain.KindCity, cityID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, domain.ErrNotFound
	}

	return list(ctx, st, domain.KindPlace, func(p *domain.Place) bool {
		return p.CityID == cityID
	})
}

func (s *placeService) GetOneByID(ctx context.Context, st storage.Store, id string) (*domain.Place, error) {
	return getOne[*domain.Place](ctx, st, domain.KindPlace, id)
}

// Create checks the city, then the owner named by user_id, then the name.
// A user_id that is not a string names no user.
func (s *placeService) Create(ctx context.Context, st storage.Store, cityID string, body map[string]any) (*domain.Place, error) {
	found, err := exists(ctx, st, domain.KindCity, cityID)
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

	place := domain.NewPlace()
	if err := domain.Apply(place, body); err != nil {
		return nil, err
	}
	place.CityID = cityID
	// amenities are linked one by one once the place exists
	place.AmenityIDs = domain.IDList{}

	if err := s.check.entity(place); err != nil {
		return nil, err
	}

	st.New(place)
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *placeService) Update(ctx context.Context, st storage.Store, id string, body map[string]any) (*domain.Place, error) {
	place, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return nil, err
	}
	if err := requireBody(body); err != nil {
		return nil, err
	}

	if err := domain.Update(place, body); err != nil {
		return nil, err
	}
	if err := s.check.changed(place); err != nil {
		return nil, err
	}
	if place.AmenityIDs == nil {
		place.AmenityIDs = domain.IDList{}
	}
	if err := save(ctx, st); err != nil {
		return nil, err
	}
	return place, nil
}

func (s *placeService) Delete(ctx context.Context, st storage.Store, id string) error {
	place, err := s.GetOneByID(ctx, st, id)
	if err != nil {
		return err
	}
	if err := removePlace(ctx, st, place); err != nil {
		return err
	}
	return save(ctx, st)
}

func (s *placeService) Search(ctx context.Context, st storage.Store, filters PlaceFilters) ([]*domain.Place, error) {
	cities := slices.Clone(filters.Cities)
	if len(filters.States) > 0 {
		inStates, err := list(ctx, st, domain.KindCity, func(c *domain.City) bool {
			return slices.Contains(filters.States, c.StateID)
		})
		if err != nil {
			return nil, err
		}
		for _, c := range inStates {
			cities = append(cities, c.ID)
		}
	}

	byLocation := len(filters.States) > 0 || len(filters.Cities) > 0
	return list(ctx, st, domain.KindPlace, func(p *domain.Place) bool {
		if byLocation && !slices.Contains(cities, p.CityID) {
			return false
		}
		for _, id := range filters.Amenities {
			if !p.AmenityIDs.Contains(id) {
				return false
			}
		}
		return true
	})
}

// GetAmenities lists the linked amenities in link order. Ids of amenities
// deleted elsewhere are skipped.
func (s *placeService) GetAmenities(ctx context.Context, st storage.Store, placeID string) ([]*domain.Amenity, error) {
	place, err := s.GetOneByID(ctx, st, placeID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Amenity, 0, len(place.AmenityIDs))
	for _, id := range place.AmenityIDs {
		amenity, err := getOne[*domain.Amenity](ctx, st, domain.KindAmenity, id)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, amenity)
	}
	return out, nil
}

func (s *placeService) LinkAmenity(ctx context.Context, st storage.Store, placeID string, amenityID string) (*domain.Amenity, bool, error) {
	place, amenity, err := s.pair(ctx, st, placeID, amenityID)
	if err != nil {
		return nil, false, err
	}
	if place.AmenityIDs.Contains(amenity.ID) {
		return amenity, false, nil
	}

	place.AmenityIDs = append(place.AmenityIDs, amenity.ID)
	if err := save(ctx, st); err != nil {
		return nil, false, err
	}
	return amenity, true, nil
}

func (s *placeService) UnlinkAmenity(ctx context.Context, st storage.Store, placeID string, amenityID string) error {
	place, amenity, err := s.pair(ctx, st, placeID, amenityID)
	if err != nil {
		return err
	}
	if !place.AmenityIDs.Remove(amenity.ID) {
		return domain.ErrNotFound
	}
	return save(ctx, st)
}

func (s *placeService) pair(ctx context.Context, st storage.Store, placeID string, amenityID string) (*domain.Place, *domain.Amenity, error) {
	place, err := s.GetOneByID(ctx, st, placeID)
	if err != nil {
		return nil, nil, err
	}
	amenity, err := getOne[*domain.Amenity](ctx, st, domain.KindAmenity, amenityID)
	if err != nil {
		return nil, nil, err
	}
	return place, amenity, nil
}
