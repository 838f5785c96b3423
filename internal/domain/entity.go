package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Kind names a category of entity. The value doubles as the "__class__"
// marker of the storage encoding.
type Kind string

const (
	KindAmenity Kind = "Amenity"
	KindCity    Kind = "City"
	KindPlace   Kind = "Place"
	KindReview  Kind = "Review"
	KindState   Kind = "State"
	KindUser    Kind = "User"
)

var kinds = []Kind{KindAmenity, KindCity, KindPlace, KindReview, KindState, KindUser}

var collections = map[Kind]string{
	KindAmenity: "amenities",
	KindCity:    "cities",
	KindPlace:   "places",
	KindReview:  "reviews",
	KindState:   "states",
	KindUser:    "users",
}

// Kinds returns every known kind in a stable order.
func Kinds() []Kind {
	return slices.Clone(kinds)
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) Valid() bool {
	_, ok := collections[k]
	return ok
}

// Collection is the plural lower-case name of the kind, used for table
// names and stats keys.
func (k Kind) Collection() string {
	return collections[k]
}

// Entity is the contract every persisted record satisfies. Storage engines
// only ever see this interface.
type Entity interface {
	Kind() Kind
	Base() *BaseModel
}

type BaseModel struct {
	ID        string    `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func newBaseModel() BaseModel {
	now := Now()
	return BaseModel{
		ID:        uuid.NewString(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *BaseModel) Base() *BaseModel {
	return b
}

// Touch moves UpdatedAt forward. The new value is strictly greater than the
// previous one and never before CreatedAt, so it can serve as a version.
func (b *BaseModel) Touch() {
	now := Now()
	if now.Before(b.CreatedAt) {
		now = b.CreatedAt
	}
	if !now.After(b.UpdatedAt) {
		now = b.UpdatedAt.Add(time.Microsecond)
	}
	b.UpdatedAt = now
}

// Now returns the current time at the precision every engine can store.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// Key is the composite storage key of an entity: "<Kind>.<id>".
func Key(kind Kind, id string) string {
	return string(kind) + "." + id
}

func KeyOf(e Entity) string {
	return Key(e.Kind(), e.Base().ID)
}

// New constructs a fresh entity of the given kind with a new id and
// timestamps set to now.
func New(kind Kind) (Entity, error) {
	switch kind {
	case KindAmenity:
		return NewAmenity(), nil
	case KindCity:
		return NewCity(), nil
	case KindPlace:
		return NewPlace(), nil
	case KindReview:
		return NewReview(), nil
	case KindState:
		return NewState(), nil
	case KindUser:
		return NewUser(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Empty returns a zero entity of the given kind, ready to be decoded into.
func Empty(kind Kind) (Entity, error) {
	switch kind {
	case KindAmenity:
		return &Amenity{}, nil
	case KindCity:
		return &City{}, nil
	case KindPlace:
		return &Place{AmenityIDs: IDList{}}, nil
	case KindReview:
		return &Review{}, nil
	case KindState:
		return &State{}, nil
	case KindUser:
		return &User{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

// Public returns the representation of e that may leave the service.
// Users lose their password hash.
func Public(e Entity) Entity {
	if u, ok := e.(*User); ok {
		c := *u
		c.Password = ""
		return &c
	}
	return e
}

// SortByCreation orders entities by creation time, then id.
func SortByCreation[T Entity](items []T) {
	slices.SortFunc(items, func(a, b T) int {
		if c := a.Base().CreatedAt.Compare(b.Base().CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.Base().ID < b.Base().ID:
			return -1
		case a.Base().ID > b.Base().ID:
			return 1
		}
		return 0
	})
}
