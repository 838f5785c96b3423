package service_test

import (
	"context"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/service"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/internal/storage/filestore"
	"github.com/vibe-gaming/hbnb/pkg/hash"
	"github.com/vibe-gaming/hbnb/pkg/validator"
)

type fixture struct {
	ctx      context.Context
	provider *storage.Provider
	services *service.Services
	hasher   hash.PasswordHasher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	backend, err := filestore.New("")
	require.NoError(t, err)
	hasher := hash.NewSHA256Hasher("salt")

	return &fixture{
		ctx:      context.Background(),
		provider: storage.NewProvider(backend),
		services: service.NewServices(service.Deps{
			Hasher:    hasher,
			Validator: validator.New(),
		}),
		hasher: hasher,
	}
}

// session opens a store session closed with the test.
func (f *fixture) session(t *testing.T) storage.Store {
	t.Helper()
	st := f.provider.Session()
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func (f *fixture) state(t *testing.T, name string) *domain.State {
	t.Helper()
	s, err := f.services.States.Create(f.ctx, f.session(t), map[string]any{"name": name})
	require.NoError(t, err)
	return s
}

func (f *fixture) city(t *testing.T, stateID, name string) *domain.City {
	t.Helper()
	c, err := f.services.Cities.Create(f.ctx, f.session(t), stateID, map[string]any{"name": name})
	require.NoError(t, err)
	return c
}

func (f *fixture) user(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := f.services.Users.Create(f.ctx, f.session(t), map[string]any{"email": email, "password": "pwd"})
	require.NoError(t, err)
	return u
}

func (f *fixture) place(t *testing.T, cityID, userID, name string) *domain.Place {
	t.Helper()
	p, err := f.services.Places.Create(f.ctx, f.session(t), cityID, map[string]any{"user_id": userID, "name": name})
	require.NoError(t, err)
	return p
}

func (f *fixture) review(t *testing.T, placeID, userID, text string) *domain.Review {
	t.Helper()
	r, err := f.services.Reviews.Create(f.ctx, f.session(t), placeID, map[string]any{"user_id": userID, "text": text})
	require.NoError(t, err)
	return r
}

func (f *fixture) amenity(t *testing.T, name string) *domain.Amenity {
	t.Helper()
	a, err := f.services.Amenities.Create(f.ctx, f.session(t), map[string]any{"name": name})
	require.NoError(t, err)
	return a
}

func (f *fixture) exists(t *testing.T, kind domain.Kind, id string) bool {
	t.Helper()
	_, found, err := f.session(t).Get(f.ctx, kind, id)
	require.NoError(t, err)
	return found
}

func TestCreateCityUnderState(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "California")

	city, err := f.services.Cities.Create(f.ctx, f.session(t), state.ID, map[string]any{
		"name":     "X",
		"state_id": "ignored",
		"id":       "forged",
	})
	require.NoError(t, err)

	assert.Equal(t, state.ID, city.StateID)
	assert.Equal(t, "X", city.Name)
	assert.NotEqual(t, "forged", city.ID)
	assert.True(t, f.exists(t, domain.KindCity, city.ID))
}

func TestCreateCityUnknownState(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.Cities.Create(f.ctx, f.session(t), "missing", map[string]any{"name": "X"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.services.Cities.Create(f.ctx, f.session(t), "missing", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound, "parent lookup comes before body checks")
}

func TestCreateValidation(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Nevada")

	_, err := f.services.Cities.Create(f.ctx, f.session(t), state.ID, nil)
	assert.ErrorIs(t, err, service.ErrNotJSON)

	_, err = f.services.Cities.Create(f.ctx, f.session(t), state.ID, map[string]any{})
	var missing *service.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)
	assert.Equal(t, "Missing name", err.Error())
	assert.ErrorIs(t, err, service.ErrMissingField)

	_, err = f.services.States.Create(f.ctx, f.session(t), map[string]any{"name": 42})
	var invalid *domain.InvalidFieldError
	assert.ErrorAs(t, err, &invalid)
}

func TestCreateUserOrder(t *testing.T) {
	f := newFixture(t)
	var missing *service.MissingFieldError

	_, err := f.services.Users.Create(f.ctx, f.session(t), map[string]any{"password": "x"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "email", missing.Field)

	_, err = f.services.Users.Create(f.ctx, f.session(t), map[string]any{"email": "a@b.c"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "password", missing.Field)
}

func TestUserPasswordIsHashed(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@b.c")

	want, err := f.hasher.Hash("pwd")
	require.NoError(t, err)
	assert.Equal(t, want, u.Password)

	updated, err := f.services.Users.Update(f.ctx, f.session(t), u.ID, map[string]any{
		"password": "new",
		"email":    "other@b.c",
	})
	require.NoError(t, err)

	want, err = f.hasher.Hash("new")
	require.NoError(t, err)
	assert.Equal(t, want, updated.Password)
	assert.Equal(t, "a@b.c", updated.Email)

	renamed, err := f.services.Users.Update(f.ctx, f.session(t), u.ID, map[string]any{"first_name": "Ann"})
	require.NoError(t, err)
	assert.Equal(t, want, renamed.Password, "hash untouched without a password key")
}

func TestCreatePlaceOrder(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Oregon")
	city := f.city(t, state.ID, "Portland")
	owner := f.user(t, "owner@b.c")
	var missing *service.MissingFieldError

	_, err := f.services.Places.Create(f.ctx, f.session(t), city.ID, map[string]any{"name": "Loft"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "user_id", missing.Field)

	_, err = f.services.Places.Create(f.ctx, f.session(t), city.ID, map[string]any{"user_id": "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound, "owner lookup comes before the name check")

	_, err = f.services.Places.Create(f.ctx, f.session(t), city.ID, map[string]any{"user_id": owner.ID})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)

	p := f.place(t, city.ID, owner.ID, "Loft")
	assert.Equal(t, city.ID, p.CityID)
	assert.Equal(t, domain.IDList{}, p.AmenityIDs)
}

func TestCreateReviewOrder(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Texas")
	city := f.city(t, state.ID, "Austin")
	owner := f.user(t, "owner@b.c")
	place := f.place(t, city.ID, owner.ID, "Ranch")
	var missing *service.MissingFieldError

	_, err := f.services.Reviews.Create(f.ctx, f.session(t), "missing", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.services.Reviews.Create(f.ctx, f.session(t), place.ID, map[string]any{"text": "ok"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "user_id", missing.Field)

	_, err = f.services.Reviews.Create(f.ctx, f.session(t), place.ID, map[string]any{"user_id": "nobody", "text": "ok"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.services.Reviews.Create(f.ctx, f.session(t), place.ID, map[string]any{"user_id": owner.ID})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "text", missing.Field)

	r := f.review(t, place.ID, owner.ID, "Lovely")
	reviews, err := f.services.Reviews.GetAllByPlace(f.ctx, f.session(t), place.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, r.ID, reviews[0].ID)
}

func TestUpdateIgnoresProtectedFields(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Ohio")
	other := f.state(t, "Iowa")
	city := f.city(t, state.ID, "Dayton")

	updated, err := f.services.Cities.Update(f.ctx, f.session(t), city.ID, map[string]any{
		"id":         "forged",
		"created_at": "2000-01-01T00:00:00Z",
		"state_id":   other.ID,
		"name":       "Columbus",
	})
	require.NoError(t, err)

	assert.Equal(t, city.ID, updated.ID)
	assert.Equal(t, state.ID, updated.StateID)
	assert.Equal(t, "Columbus", updated.Name)
	assert.True(t, city.CreatedAt.Equal(updated.CreatedAt))
	assert.True(t, updated.UpdatedAt.After(city.UpdatedAt))

	got, err := f.services.Cities.GetOneByID(f.ctx, f.session(t), city.ID)
	require.NoError(t, err)
	assert.Equal(t, "Columbus", got.Name)
}

func TestUpdateMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.States.Update(f.ctx, f.session(t), "missing", nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	state := f.state(t, "Maine")
	_, err = f.services.States.Update(f.ctx, f.session(t), state.ID, nil)
	assert.ErrorIs(t, err, service.ErrNotJSON)
}

func TestGetAllSortedByCreation(t *testing.T) {
	f := newFixture(t)
	names := []string{"A", "B", "C", "D"}
	for _, n := range names {
		f.state(t, n)
	}

	states, err := f.services.States.GetAll(f.ctx, f.session(t))
	require.NoError(t, err)

	got := make([]string, len(states))
	for i, s := range states {
		got[i] = s.Name
	}
	assert.ElementsMatch(t, names, got)
	assert.True(t, slices.IsSortedFunc(states, func(a, b *domain.State) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	}))
}

func TestDeleteStateCascades(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "California")
	keep := f.state(t, "Nevada")
	city := f.city(t, state.ID, "Fresno")
	kept := f.city(t, keep.ID, "Reno")
	owner := f.user(t, "o@b.c")
	place := f.place(t, city.ID, owner.ID, "Barn")
	review := f.review(t, place.ID, owner.ID, "Rustic")

	require.NoError(t, f.services.States.Delete(f.ctx, f.session(t), state.ID))

	assert.False(t, f.exists(t, domain.KindState, state.ID))
	assert.False(t, f.exists(t, domain.KindCity, city.ID))
	assert.False(t, f.exists(t, domain.KindPlace, place.ID))
	assert.False(t, f.exists(t, domain.KindReview, review.ID))
	assert.True(t, f.exists(t, domain.KindCity, kept.ID))
	assert.True(t, f.exists(t, domain.KindUser, owner.ID))

	err := f.services.States.Delete(f.ctx, f.session(t), state.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteUserCascades(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Utah")
	city := f.city(t, state.ID, "Provo")
	owner := f.user(t, "owner@b.c")
	guest := f.user(t, "guest@b.c")
	owned := f.place(t, city.ID, owner.ID, "Cabin")
	visited := f.place(t, city.ID, guest.ID, "Tent")
	onOwned := f.review(t, owned.ID, guest.ID, "Cozy")
	byOwner := f.review(t, visited.ID, owner.ID, "Damp")

	require.NoError(t, f.services.Users.Delete(f.ctx, f.session(t), owner.ID))

	assert.False(t, f.exists(t, domain.KindUser, owner.ID))
	assert.False(t, f.exists(t, domain.KindPlace, owned.ID))
	assert.False(t, f.exists(t, domain.KindReview, onOwned.ID))
	assert.False(t, f.exists(t, domain.KindReview, byOwner.ID))
	assert.True(t, f.exists(t, domain.KindPlace, visited.ID))
	assert.True(t, f.exists(t, domain.KindUser, guest.ID))
}

func TestPlaceAmenities(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Hawaii")
	city := f.city(t, state.ID, "Hilo")
	owner := f.user(t, "o@b.c")
	place := f.place(t, city.ID, owner.ID, "Hut")
	wifi := f.amenity(t, "Wifi")
	pool := f.amenity(t, "Pool")

	got, created, err := f.services.Places.LinkAmenity(f.ctx, f.session(t), place.ID, wifi.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, wifi.ID, got.ID)

	_, created, err = f.services.Places.LinkAmenity(f.ctx, f.session(t), place.ID, wifi.ID)
	require.NoError(t, err)
	assert.False(t, created)

	_, _, err = f.services.Places.LinkAmenity(f.ctx, f.session(t), place.ID, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, created, err = f.services.Places.LinkAmenity(f.ctx, f.session(t), place.ID, pool.ID)
	require.NoError(t, err)
	assert.True(t, created)

	amenities, err := f.services.Places.GetAmenities(f.ctx, f.session(t), place.ID)
	require.NoError(t, err)
	require.Len(t, amenities, 2)
	assert.Equal(t, wifi.ID, amenities[0].ID)
	assert.Equal(t, pool.ID, amenities[1].ID)

	require.NoError(t, f.services.Places.UnlinkAmenity(f.ctx, f.session(t), place.ID, wifi.ID))
	err = f.services.Places.UnlinkAmenity(f.ctx, f.session(t), place.ID, wifi.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.services.Amenities.Delete(f.ctx, f.session(t), pool.ID))
	reloaded, err := f.services.Places.GetOneByID(f.ctx, f.session(t), place.ID)
	require.NoError(t, err)
	assert.Empty(t, reloaded.AmenityIDs)
}

func TestSearchPlaces(t *testing.T) {
	f := newFixture(t)
	ca := f.state(t, "California")
	nv := f.state(t, "Nevada")
	sf := f.city(t, ca.ID, "San Francisco")
	la := f.city(t, ca.ID, "Los Angeles")
	reno := f.city(t, nv.ID, "Reno")
	owner := f.user(t, "o@b.c")
	p1 := f.place(t, sf.ID, owner.ID, "Loft")
	p2 := f.place(t, la.ID, owner.ID, "Villa")
	p3 := f.place(t, reno.ID, owner.ID, "Motel")
	wifi := f.amenity(t, "Wifi")
	pool := f.amenity(t, "Pool")

	for _, id := range []string{p1.ID, p3.ID} {
		_, _, err := f.services.Places.LinkAmenity(f.ctx, f.session(t), id, wifi.ID)
		require.NoError(t, err)
	}
	_, _, err := f.services.Places.LinkAmenity(f.ctx, f.session(t), p1.ID, pool.ID)
	require.NoError(t, err)

	ids := func(places []*domain.Place) []string {
		out := make([]string, len(places))
		for i, p := range places {
			out[i] = p.ID
		}
		return out
	}

	tests := []struct {
		name    string
		filters service.PlaceFilters
		want    []string
	}{
		{"empty", service.PlaceFilters{}, []string{p1.ID, p2.ID, p3.ID}},
		{"state", service.PlaceFilters{States: []string{ca.ID}}, []string{p1.ID, p2.ID}},
		{"state and overlapping city", service.PlaceFilters{States: []string{ca.ID}, Cities: []string{sf.ID, reno.ID}}, []string{p1.ID, p2.ID, p3.ID}},
		{"city", service.PlaceFilters{Cities: []string{reno.ID}}, []string{p3.ID}},
		{"amenity", service.PlaceFilters{Amenities: []string{wifi.ID}}, []string{p1.ID, p3.ID}},
		{"all amenities", service.PlaceFilters{Amenities: []string{wifi.ID, pool.ID}}, []string{p1.ID}},
		{"state and amenity", service.PlaceFilters{States: []string{nv.ID}, Amenities: []string{wifi.ID}}, []string{p3.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.services.Places.Search(f.ctx, f.session(t), tt.filters)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

func TestStats(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Alaska")
	f.city(t, state.ID, "Juneau")
	f.city(t, state.ID, "Sitka")
	f.amenity(t, "Sauna")

	stats, err := f.services.Stats.Count(f.ctx, f.session(t))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"amenities": 1,
		"cities":    2,
		"places":    0,
		"reviews":   0,
		"states":    1,
		"users":     0,
	}, stats)
}

func TestGenericDispatch(t *testing.T) {
	f := newFixture(t)
	st := f.session(t)

	state, err := f.services.Create(f.ctx, st, domain.KindState, map[string]any{"name": "Idaho"})
	require.NoError(t, err)

	city, err := f.services.Create(f.ctx, st, domain.KindCity, map[string]any{"name": "Boise", "state_id": state.Base().ID})
	require.NoError(t, err)
	assert.Equal(t, state.Base().ID, city.(*domain.City).StateID)

	updated, err := f.services.Update(f.ctx, st, domain.KindCity, city.Base().ID, map[string]any{"name": "Nampa"})
	require.NoError(t, err)
	assert.Equal(t, "Nampa", updated.(*domain.City).Name)

	_, err = f.services.Update(f.ctx, st, domain.KindCity, "missing", map[string]any{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.services.Delete(f.ctx, st, domain.KindState, state.Base().ID))
	assert.False(t, f.exists(t, domain.KindCity, city.Base().ID))

	_, err = f.services.Create(f.ctx, st, domain.Kind("Spaceship"), map[string]any{})
	assert.ErrorIs(t, err, domain.ErrUnknownKind)
}

func TestUserNullPasswordKeepsHash(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "a@b.c")
	want, err := f.hasher.Hash("pwd")
	require.NoError(t, err)

	updated, err := f.services.Users.Update(f.ctx, f.session(t), u.ID, map[string]any{"password": nil})
	require.NoError(t, err)
	assert.Equal(t, want, updated.Password)

	stored, err := f.services.Users.GetOneByID(f.ctx, f.session(t), u.ID)
	require.NoError(t, err)
	assert.Equal(t, want, stored.Password)
}

func TestWrongTypeNamesJSONField(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Georgia")
	city := f.city(t, state.ID, "Macon")
	owner := f.user(t, "o@b.c")

	_, err := f.services.Places.Create(f.ctx, f.session(t), city.ID, map[string]any{
		"user_id":      owner.ID,
		"name":         "Shed",
		"number_rooms": "many",
	})
	var invalid *domain.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid number_rooms", err.Error())

	_, err = f.services.States.Update(f.ctx, f.session(t), state.ID, map[string]any{"name": 5})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid name", err.Error())
}

func TestNonStringUserIDNamesNoUser(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Kansas")
	city := f.city(t, state.ID, "Topeka")
	owner := f.user(t, "o@b.c")
	place := f.place(t, city.ID, owner.ID, "Farm")

	_, err := f.services.Places.Create(f.ctx, f.session(t), city.ID, map[string]any{"user_id": 5, "name": "n"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.services.Reviews.Create(f.ctx, f.session(t), place.ID, map[string]any{"user_id": true, "text": "t"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var missing *service.MissingFieldError
	_, err = f.services.Places.Create(f.ctx, f.session(t), city.ID, map[string]any{"user_id": nil, "name": "n"})
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "user_id", missing.Field)
}

func TestRequiredFieldsMustNotBeBlank(t *testing.T) {
	f := newFixture(t)

	_, err := f.services.States.Create(f.ctx, f.session(t), map[string]any{"name": ""})
	var missing *service.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "name", missing.Field)

	state := f.state(t, "Vermont")
	_, err = f.services.States.Update(f.ctx, f.session(t), state.ID, map[string]any{"name": ""})
	var invalid *domain.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid name", err.Error())

	stored, err := f.services.States.GetOneByID(f.ctx, f.session(t), state.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vermont", stored.Name)

	u := f.user(t, "a@b.c")
	_, err = f.services.Users.Update(f.ctx, f.session(t), u.ID, map[string]any{"password": ""})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "password", invalid.Field)
}

func TestPlaceAmenitiesOnlyChangeThroughLinks(t *testing.T) {
	f := newFixture(t)
	state := f.state(t, "Maine")
	city := f.city(t, state.ID, "Bangor")
	owner := f.user(t, "o@b.c")
	wifi := f.amenity(t, "Wifi")

	place, err := f.services.Places.Create(f.ctx, f.session(t), city.ID, map[string]any{
		"user_id":     owner.ID,
		"name":        "Lodge",
		"amenity_ids": []any{"not-an-amenity"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IDList{}, place.AmenityIDs)

	_, _, err = f.services.Places.LinkAmenity(f.ctx, f.session(t), place.ID, wifi.ID)
	require.NoError(t, err)

	updated, err := f.services.Places.Update(f.ctx, f.session(t), place.ID, map[string]any{
		"amenity_ids": []any{"not-an-amenity"},
		"max_guest":   4,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IDList{wifi.ID}, updated.AmenityIDs)
	assert.Equal(t, 4, updated.MaxGuest)
}
