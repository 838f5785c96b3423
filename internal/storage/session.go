package storage

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/vibe-gaming/hbnb/internal/domain"
)

type session struct {
	p      *Provider
	closed bool

	// identity map of entities handed out by this session
	loaded    map[string]domain.Entity
	versions  map[string]time.Time
	snapshots map[string][]byte

	created map[string]domain.Entity
	order   []string

	removed     map[string]struct{}
	removedList []domain.Entity
}

func newSession(p *Provider) *session {
	s := &session{p: p}
	s.reset()
	return s
}

func (s *session) reset() {
	s.loaded = make(map[string]domain.Entity)
	s.versions = make(map[string]time.Time)
	s.snapshots = make(map[string][]byte)
	s.created = make(map[string]domain.Entity)
	s.order = nil
	s.removed = make(map[string]struct{})
	s.removedList = nil
}

func (s *session) All(ctx context.Context, kind domain.Kind) (map[string]domain.Entity, error) {
	if s.closed {
		return nil, ErrClosed
	}

	start := time.Now()
	list, err := s.p.backend.List(ctx, kind)
	s.p.observe("list", start, err)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kindLabel(kind), err)
	}

	out := make(map[string]domain.Entity, len(list)+len(s.created))
	for _, e := range list {
		key := domain.KeyOf(e)
		if _, gone := s.removed[key]; gone {
			continue
		}
		if cached, ok := s.loaded[key]; ok {
			out[key] = cached
			continue
		}
		if err := s.track(e); err != nil {
			return nil, err
		}
		out[key] = e
	}
	for key, e := range s.created {
		if kind == "" || e.Kind() == kind {
			out[key] = e
		}
	}
	return out, nil
}

func (s *session) Get(ctx context.Context, kind domain.Kind, id string) (domain.Entity, bool, error) {
	if s.closed {
		return nil, false, ErrClosed
	}
	if id == "" {
		return nil, false, nil
	}

	key := domain.Key(kind, id)
	if _, gone := s.removed[key]; gone {
		return nil, false, nil
	}
	if e, ok := s.created[key]; ok {
		return e, true, nil
	}
	if e, ok := s.loaded[key]; ok {
		return e, true, nil
	}

	start := time.Now()
	e, found, err := s.p.backend.Load(ctx, kind, id)
	s.p.observe("load", start, err)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", key, err)
	}
	if !found {
		return nil, false, nil
	}
	if err := s.track(e); err != nil {
		return nil, false, err
	}
	return e, true, nil
}

func (s *session) Count(ctx context.Context, kind domain.Kind) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if len(s.created) > 0 || len(s.removed) > 0 {
		all, err := s.All(ctx, kind)
		if err != nil {
			return 0, err
		}
		return len(all), nil
	}

	start := time.Now()
	n, err := s.p.backend.Count(ctx, kind)
	s.p.observe("count", start, err)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", kindLabel(kind), err)
	}
	return n, nil
}

func (s *session) New(e domain.Entity) {
	if s.closed || e == nil {
		return
	}
	key := domain.KeyOf(e)
	if _, gone := s.removed[key]; gone {
		delete(s.removed, key)
		s.removedList = slices.DeleteFunc(s.removedList, func(r domain.Entity) bool {
			return domain.KeyOf(r) == key
		})
	}
	if _, ok := s.versions[key]; ok {
		// known to the backend already: saving it is an update
		s.loaded[key] = e
		return
	}
	if _, ok := s.created[key]; !ok {
		s.order = append(s.order, key)
	}
	s.created[key] = e
}

func (s *session) Delete(e domain.Entity) {
	if s.closed || e == nil {
		return
	}
	key := domain.KeyOf(e)
	if _, ok := s.created[key]; ok {
		delete(s.created, key)
		s.order = slices.DeleteFunc(s.order, func(k string) bool { return k == key })
		return
	}
	if _, gone := s.removed[key]; gone {
		return
	}
	delete(s.loaded, key)
	s.removed[key] = struct{}{}
	s.removedList = append(s.removedList, e)
}

// Save sends inserts, then in-place modifications, then deletes, as one
// batch. Modified entities get a fresh updated_at, which is rolled back
// when the batch fails.
func (s *session) Save(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}

	var changes []Change
	for _, key := range s.order {
		changes = append(changes, Change{Op: OpInsert, Entity: s.created[key]})
	}

	encoded := make(map[string][]byte)
	touched := make(map[domain.Entity]time.Time)
	untouch := func() {
		for e, updatedAt := range touched {
			e.Base().UpdatedAt = updatedAt
		}
	}
	for _, key := range slices.Sorted(maps.Keys(s.loaded)) {
		e := s.loaded[key]
		data, err := domain.Encode(e)
		if err != nil {
			untouch()
			return fmt.Errorf("encode %s: %w", key, err)
		}
		if bytes.Equal(data, s.snapshots[key]) {
			continue
		}
		touched[e] = e.Base().UpdatedAt
		e.Base().Touch()
		if data, err = domain.Encode(e); err != nil {
			untouch()
			return fmt.Errorf("encode %s: %w", key, err)
		}
		encoded[key] = data
		changes = append(changes, Change{Op: OpUpdate, Entity: e, Version: s.versions[key]})
	}

	for _, e := range s.removedList {
		changes = append(changes, Change{Op: OpDelete, Entity: e, Version: s.versions[domain.KeyOf(e)]})
	}

	if len(changes) == 0 {
		return nil
	}

	start := time.Now()
	err := s.p.backend.Apply(ctx, changes)
	s.p.observe("apply", start, err)
	if err != nil {
		// nothing was written: keep the versions the entities were loaded with
		untouch()
		return fmt.Errorf("save %d changes: %w", len(changes), err)
	}

	for _, c := range changes {
		key := c.Key()
		switch c.Op {
		case OpInsert:
			if err := s.track(c.Entity); err != nil {
				return err
			}
		case OpUpdate:
			s.versions[key] = c.Entity.Base().UpdatedAt
			s.snapshots[key] = encoded[key]
		case OpDelete:
			delete(s.versions, key)
			delete(s.snapshots, key)
		}
	}
	s.created = make(map[string]domain.Entity)
	s.order = nil
	s.removed = make(map[string]struct{})
	s.removedList = nil
	return nil
}

func (s *session) Reload(_ context.Context) error {
	if s.closed {
		return ErrClosed
	}
	s.reset()
	return nil
}

func (s *session) Close() error {
	if s.closed {
		return nil
	}
	s.reset()
	s.closed = true
	return nil
}

func (s *session) track(e domain.Entity) error {
	key := domain.KeyOf(e)
	data, err := domain.Encode(e)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	s.loaded[key] = e
	s.versions[key] = e.Base().UpdatedAt
	s.snapshots[key] = data
	return nil
}

func kindLabel(kind domain.Kind) string {
	if kind == "" {
		return "all kinds"
	}
	return kind.Collection()
}
