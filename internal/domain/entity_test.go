package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetsIdentity(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(string(kind), func(t *testing.T) {
			e, err := New(kind)
			require.NoError(t, err)

			assert.Equal(t, kind, e.Kind())
			assert.NotEmpty(t, e.Base().ID)
			assert.Equal(t, time.UTC, e.Base().CreatedAt.Location())
			assert.Equal(t, e.Base().CreatedAt, e.Base().UpdatedAt)
		})
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		id := NewState().ID
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestNewUnknownKind(t *testing.T) {
	_, err := New(Kind("Spaceship"))
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseKind("state")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestTouchIsStrictlyIncreasing(t *testing.T) {
	s := NewState()
	prev := s.UpdatedAt

	for range 50 {
		s.Touch()
		assert.True(t, s.UpdatedAt.After(prev), "%s not after %s", s.UpdatedAt, prev)
		assert.False(t, s.UpdatedAt.Before(s.CreatedAt))
		prev = s.UpdatedAt
	}
}

func TestTouchNeverBeforeCreation(t *testing.T) {
	s := NewState()
	s.CreatedAt = Now().Add(time.Hour)
	s.UpdatedAt = s.CreatedAt

	s.Touch()
	assert.True(t, s.UpdatedAt.After(s.CreatedAt))
}

func TestKeys(t *testing.T) {
	c := NewCity()
	assert.Equal(t, "City."+c.ID, KeyOf(c))
	assert.Equal(t, "Place.42", Key(KindPlace, "42"))
	assert.Equal(t, "cities", KindCity.Collection())
	assert.Equal(t, "amenities", KindAmenity.Collection())
}

func TestPublicHidesPassword(t *testing.T) {
	u := NewUser()
	u.Email = "a@b.c"
	u.Password = "hash"

	pub := Public(u).(*User)
	assert.Empty(t, pub.Password)
	assert.Equal(t, "a@b.c", pub.Email)
	assert.Equal(t, "hash", u.Password, "the stored user keeps its hash")

	s := NewState()
	assert.Same(t, s, Public(s))
}

func TestSortByCreation(t *testing.T) {
	base := Now()
	a, b, c := NewState(), NewState(), NewState()
	a.CreatedAt = base.Add(2 * time.Second)
	b.CreatedAt = base
	c.CreatedAt = base
	b.ID, c.ID = "b", "a"

	list := []*State{a, b, c}
	SortByCreation(list)

	assert.Equal(t, []*State{c, b, a}, list)
}
