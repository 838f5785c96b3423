package service

import (
	"context"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

// The remove functions mark an entity and everything that references it
// for deletion. Dependents are marked before their parent; nothing is
// saved here.

func removeState(ctx context.Context, st storage.Store, s *domain.State) error {
	cities, err := list(ctx, st, domain.KindCity, func(c *domain.City) bool {
		return c.StateID == s.ID
	})
	if err != nil {
		return err
	}
	for _, c := range cities {
		if err := removeCity(ctx, st, c); err != nil {
			return err
		}
	}
	st.Delete(s)
	return nil
}

func removeCity(ctx context.Context, st storage.Store, c *domain.City) error {
	places, err := list(ctx, st, domain.KindPlace, func(p *domain.Place) bool {
		return p.CityID == c.ID
	})
	if err != nil {
		return err
	}
	for _, p := range places {
		if err := removePlace(ctx, st, p); err != nil {
			return err
		}
	}
	st.Delete(c)
	return nil
}

func removePlace(ctx context.Context, st storage.Store, p *domain.Place) error {
	reviews, err := list(ctx, st, domain.KindReview, func(r *domain.Review) bool {
		return r.PlaceID == p.ID
	})
	if err != nil {
		return err
	}
	for _, r := range reviews {
		st.Delete(r)
	}
	st.Delete(p)
	return nil
}

func removeUser(ctx context.Context, st storage.Store, u *domain.User) error {
	places, err := list(ctx, st, domain.KindPlace, func(p *domain.Place) bool {
		return p.UserID == u.ID
	})
	if err != nil {
		return err
	}
	for _, p := range places {
		if err := removePlace(ctx, st, p); err != nil {
			return err
		}
	}

	reviews, err := list(ctx, st, domain.KindReview, func(r *domain.Review) bool {
		return r.UserID == u.ID
	})
	if err != nil {
		return err
	}
	for _, r := range reviews {
		st.Delete(r)
	}

	st.Delete(u)
	return nil
}

// removeAmenity unlinks the amenity from every place before deleting it.
func removeAmenity(ctx context.Context, st storage.Store, a *domain.Amenity) error {
	places, err := list(ctx, st, domain.KindPlace, func(p *domain.Place) bool {
		return p.AmenityIDs.Contains(a.ID)
	})
	if err != nil {
		return err
	}
	for _, p := range places {
		p.AmenityIDs.Remove(a.ID)
	}
	st.Delete(a)
	return nil
}
