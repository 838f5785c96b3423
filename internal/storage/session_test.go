package storage_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/internal/storage/filestore"
)

// countingBackend counts the batches that reach the engine.
type countingBackend struct {
	storage.Backend
	applies atomic.Int32
}

func (b *countingBackend) Apply(ctx context.Context, changes []storage.Change) error {
	b.applies.Add(1)
	return b.Backend.Apply(ctx, changes)
}

type recorded struct {
	engine string
	op     string
	err    error
}

type recorder struct {
	calls []recorded
}

func (r *recorder) ObserveStorage(engine, op string, _ time.Duration, err error) {
	r.calls = append(r.calls, recorded{engine, op, err})
}

func newProvider(t *testing.T, opts ...storage.Option) (*storage.Provider, *countingBackend) {
	t.Helper()
	fs, err := filestore.New("")
	require.NoError(t, err)
	backend := &countingBackend{Backend: fs}
	p := storage.NewProvider(backend, opts...)
	t.Cleanup(func() { _ = p.Close() })
	return p, backend
}

func newState(name string) *domain.State {
	s := domain.NewState()
	s.Name = name
	return s
}

func TestGetAfterSave(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	st := p.Session()
	s := newState("California")
	st.New(s)
	require.NoError(t, st.Save(ctx))
	require.NoError(t, st.Close())

	other := p.Session()
	defer other.Close()

	got, found, err := other.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	require.True(t, found)
	if diff := cmp.Diff(domain.Entity(s), got); diff != "" {
		t.Errorf("stored state mismatch (-want +got):\n%s", diff)
	}
}

func TestGetAbsentIsNotAnError(t *testing.T) {
	p, _ := newProvider(t)
	st := p.Session()
	defer st.Close()

	got, found, err := st.Get(context.Background(), domain.KindState, "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)

	_, found, err = st.Get(context.Background(), domain.KindState, "")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestGetReturnsSameInstance(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	seed := p.Session()
	s := newState("Nevada")
	seed.New(s)
	require.NoError(t, seed.Save(ctx))

	st := p.Session()
	defer st.Close()

	first, _, err := st.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	second, _, err := st.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	assert.Same(t, first, second)

	all, err := st.All(ctx, domain.KindState)
	require.NoError(t, err)
	assert.Same(t, first, all[domain.KeyOf(s)])
}

func TestInPlaceModificationIsSaved(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	seed := p.Session()
	s := newState("Nevada")
	seed.New(s)
	require.NoError(t, seed.Save(ctx))

	st := p.Session()
	e, _, err := st.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	e.(*domain.State).Name = "Oregon"
	require.NoError(t, st.Save(ctx))

	assert.True(t, e.Base().UpdatedAt.After(s.UpdatedAt))
	assert.Equal(t, s.CreatedAt, e.Base().CreatedAt)

	check := p.Session()
	got, _, err := check.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oregon", got.(*domain.State).Name)
}

func TestDeleteThenGet(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	st := p.Session()
	s := newState("Texas")
	st.New(s)
	require.NoError(t, st.Save(ctx))

	st.Delete(s)
	_, found, err := st.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	assert.False(t, found, "pending delete hides the entity")

	require.NoError(t, st.Save(ctx))

	fresh := p.Session()
	_, found, err = fresh.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	st := p.Session()
	s := newState("Utah")
	st.New(s)
	require.NoError(t, st.Save(ctx))

	st.Delete(s)
	st.Delete(s)
	require.NoError(t, st.Save(ctx))

	n, err := st.Count(ctx, domain.KindState)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestDeleteUnsavedNew(t *testing.T) {
	ctx := context.Background()
	p, backend := newProvider(t)

	st := p.Session()
	s := newState("Idaho")
	st.New(s)
	st.Delete(s)
	require.NoError(t, st.Save(ctx))

	assert.Zero(t, backend.applies.Load())
}

func TestAllReflectsPendingChanges(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	seed := p.Session()
	kept, gone := newState("Kept"), newState("Gone")
	seed.New(kept)
	seed.New(gone)
	require.NoError(t, seed.Save(ctx))

	st := p.Session()
	defer st.Close()
	added := newState("Added")
	st.New(added)
	st.Delete(gone)

	city := domain.NewCity()
	st.New(city)

	states, err := st.All(ctx, domain.KindState)
	require.NoError(t, err)
	assert.Len(t, states, 2)
	assert.Contains(t, states, domain.KeyOf(kept))
	assert.Contains(t, states, domain.KeyOf(added))
	assert.NotContains(t, states, domain.KeyOf(gone))

	everything, err := st.All(ctx, "")
	require.NoError(t, err)
	assert.Len(t, everything, 3)

	n, err := st.Count(ctx, domain.KindState)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestAllEmpty(t *testing.T) {
	p, _ := newProvider(t)
	st := p.Session()
	defer st.Close()

	all, err := st.All(context.Background(), domain.KindReview)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	p, backend := newProvider(t)

	st := p.Session()
	s := newState("Maine")
	st.New(s)
	require.NoError(t, st.Save(ctx))
	updatedAt := s.UpdatedAt

	require.NoError(t, st.Save(ctx))
	require.NoError(t, st.Save(ctx))

	assert.Equal(t, int32(1), backend.applies.Load())
	assert.Equal(t, updatedAt, s.UpdatedAt)
}

func TestConcurrentUpdateConflicts(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	seed := p.Session()
	s := newState("Ohio")
	seed.New(s)
	require.NoError(t, seed.Save(ctx))

	first, second := p.Session(), p.Session()
	a, _, err := first.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	b, _, err := second.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)

	a.(*domain.State).Name = "First"
	b.(*domain.State).Name = "Second"

	loadedAt := b.Base().UpdatedAt

	require.NoError(t, first.Save(ctx))
	err = second.Save(ctx)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, loadedAt, b.Base().UpdatedAt, "a failed save leaves updated_at as loaded")
	assert.Equal(t, "Second", b.(*domain.State).Name)

	check := p.Session()
	got, _, err := check.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.(*domain.State).Name)
}

func TestDeleteAfterConcurrentUpdateConflicts(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	seed := p.Session()
	s := newState("Iowa")
	seed.New(s)
	require.NoError(t, seed.Save(ctx))

	editor, remover := p.Session(), p.Session()
	a, _, err := editor.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)
	b, _, err := remover.Get(ctx, domain.KindState, s.ID)
	require.NoError(t, err)

	a.(*domain.State).Name = "Changed"
	require.NoError(t, editor.Save(ctx))

	remover.Delete(b)
	assert.ErrorIs(t, remover.Save(ctx), domain.ErrConflict)
}

func TestDuplicateInsert(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	s := newState("Vermont")
	first := p.Session()
	first.New(s)
	require.NoError(t, first.Save(ctx))

	clone := *s
	second := p.Session()
	second.New(&clone)
	assert.ErrorIs(t, second.Save(ctx), domain.ErrDuplicateEntry)
}

func TestReloadDiscardsPending(t *testing.T) {
	ctx := context.Background()
	p, backend := newProvider(t)

	st := p.Session()
	st.New(newState("Discarded"))
	require.NoError(t, st.Reload(ctx))
	require.NoError(t, st.Save(ctx))

	assert.Zero(t, backend.applies.Load())
	n, err := st.Count(ctx, domain.KindState)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClosedSession(t *testing.T) {
	ctx := context.Background()
	p, _ := newProvider(t)

	st := p.Session()
	require.NoError(t, st.Close())
	require.NoError(t, st.Close())

	_, err := st.All(ctx, "")
	assert.ErrorIs(t, err, storage.ErrClosed)
	_, _, err = st.Get(ctx, domain.KindState, "x")
	assert.ErrorIs(t, err, storage.ErrClosed)
	_, err = st.Count(ctx, "")
	assert.ErrorIs(t, err, storage.ErrClosed)
	assert.ErrorIs(t, st.Save(ctx), storage.ErrClosed)
	assert.ErrorIs(t, st.Reload(ctx), storage.ErrClosed)

	st.New(newState("ignored"))
	st.Delete(newState("ignored"))
}

func TestRecorderObservesBackendCalls(t *testing.T) {
	ctx := context.Background()
	rec := &recorder{}
	p, _ := newProvider(t, storage.WithRecorder(rec))

	st := p.Session()
	st.New(newState("Kansas"))
	require.NoError(t, st.Save(ctx))
	_, _, err := st.Get(ctx, domain.KindState, "missing")
	require.NoError(t, err)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, recorded{filestore.Name, "apply", nil}, rec.calls[0])
	assert.Equal(t, recorded{filestore.Name, "load", nil}, rec.calls[1])
	assert.Equal(t, filestore.Name, p.Engine())
}
