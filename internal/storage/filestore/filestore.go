// Package filestore keeps every entity in memory, encoded as JSON, and
// mirrors the whole set to a single JSON file on each commit. An empty path
// keeps the store in memory only.
package filestore

import (
	"context"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

const Name = "file"

type Store struct {
	path string

	mu      sync.RWMutex
	objects map[string][]byte
}

// New opens the store, loading path when the file exists.
func New(path string) (*Store, error) {
	s := &Store{
		path:    path,
		objects: make(map[string][]byte),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) Name() string {
	return Name
}

func (s *Store) load() error {
	if s.path == "" {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "read storage file")
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "decode storage file %s", s.path)
	}

	for key, value := range raw {
		e, err := domain.Decode(value)
		if err != nil {
			return errors.Wrapf(err, "decode %s", key)
		}
		s.objects[domain.KeyOf(e)] = []byte(value)
	}
	return nil
}

func (s *Store) Load(_ context.Context, kind domain.Kind, id string) (domain.Entity, bool, error) {
	s.mu.RLock()
	data, ok := s.objects[domain.Key(kind, id)]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}

	e, err := domain.Decode(data)
	if err != nil {
		return nil, false, err
	}
	return e, true, nil
}

func (s *Store) List(_ context.Context, kind domain.Kind) ([]domain.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Entity
	for _, key := range slices.Sorted(maps.Keys(s.objects)) {
		if !matches(key, kind) {
			continue
		}
		e, err := domain.Decode(s.objects[key])
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *Store) Count(_ context.Context, kind domain.Kind) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for key := range s.objects {
		if matches(key, kind) {
			n++
		}
	}
	return n, nil
}

// Apply validates the batch against a copy of the committed set, writes
// the copy to disk, and only then swaps it in.
func (s *Store) Apply(_ context.Context, changes []storage.Change) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := maps.Clone(s.objects)
	for _, c := range changes {
		key := c.Key()
		committed, exists := next[key]
		if err := storage.Check(c, committed, exists); err != nil {
			return err
		}

		if c.Op == storage.OpDelete {
			delete(next, key)
			continue
		}
		data, err := domain.Encode(c.Entity)
		if err != nil {
			return errors.Wrapf(err, "encode %s", key)
		}
		next[key] = data
	}

	if err := s.write(next); err != nil {
		return err
	}
	s.objects = next
	return nil
}

func (s *Store) write(objects map[string][]byte) error {
	if s.path == "" {
		return nil
	}

	raw := make(map[string]json.RawMessage, len(objects))
	for key, data := range objects {
		raw[key] = data
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return errors.Wrap(err, "encode storage file")
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Wrap(err, "create temp storage file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "write temp storage file")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temp storage file")
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrap(err, "replace storage file")
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}

func matches(key string, kind domain.Kind) bool {
	return kind == "" || strings.HasPrefix(key, string(kind)+".")
}
