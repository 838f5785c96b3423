// Package storage is the engine-agnostic object store. A Provider is built
// once per process around a Backend; every unit of work (one inbound request,
// one console command) opens its own Store session from it.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/vibe-gaming/hbnb/internal/domain"
)

var ErrClosed = errors.New("storage session closed")

// Store is a unit of work over the persisted entities. It is not safe for
// concurrent use; open one per goroutine.
type Store interface {
	// All returns every entity keyed by "<Kind>.<id>", restricted to kind
	// unless kind is empty.
	All(ctx context.Context, kind domain.Kind) (map[string]domain.Entity, error)
	// Get returns found=false, not an error, when nothing matches.
	Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, bool, error)
	Count(ctx context.Context, kind domain.Kind) (int, error)
	New(e domain.Entity)
	Delete(e domain.Entity)
	Save(ctx context.Context) error
	Reload(ctx context.Context) error
	Close() error
}

type Op int

const (
	OpInsert Op = iota + 1
	OpUpdate
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Change is one element of a batch handed to Backend.Apply.
type Change struct {
	Op     Op
	Entity domain.Entity
	// Version is the committed updated_at the session saw when it loaded
	// the entity. Zero means the change is unconditional.
	Version time.Time
}

func (c Change) Key() string {
	return domain.KeyOf(c.Entity)
}

// Backend is implemented by every storage engine.
type Backend interface {
	Name() string
	Load(ctx context.Context, kind domain.Kind, id string) (domain.Entity, bool, error)
	// List returns entities of kind, or of every kind when kind is empty.
	List(ctx context.Context, kind domain.Kind) ([]domain.Entity, error)
	Count(ctx context.Context, kind domain.Kind) (int, error)
	// Apply commits the whole batch or nothing. A version mismatch fails
	// with domain.ErrConflict, an insert of an existing key with
	// domain.ErrDuplicateEntry.
	Apply(ctx context.Context, changes []Change) error
	Close() error
}
