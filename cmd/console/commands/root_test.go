package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/service"
	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/internal/storage/filestore"
	"github.com/vibe-gaming/hbnb/pkg/hash"
	"github.com/vibe-gaming/hbnb/pkg/validator"
)

type console struct {
	t   *testing.T
	app *app
}

func newConsole(t *testing.T) *console {
	t.Helper()

	backend, err := filestore.New("")
	require.NoError(t, err)

	return &console{
		t: t,
		app: &app{
			provider: storage.NewProvider(backend),
			services: service.NewServices(service.Deps{
				Hasher:    hash.NewSHA256Hasher(""),
				Validator: validator.New(),
			}),
		},
	}
}

func (c *console) run(args ...string) (stdout string, stderr string, err error) {
	c.t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand(c.app)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func (c *console) create(args ...string) map[string]any {
	c.t.Helper()

	out, _, err := c.run(append([]string{"create"}, args...)...)
	require.NoError(c.t, err)

	var doc map[string]any
	require.NoError(c.t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func TestCreateAndShow(t *testing.T) {
	c := newConsole(t)

	state := c.create("State", `name="New_York"`, `junk`)
	assert.Equal(t, "State", state["__class__"])
	assert.Equal(t, "New York", state["name"])
	id := state["id"].(string)

	out, _, err := c.run("show", "State", id)
	require.NoError(t, err)
	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, state, shown)

	_, _, err = c.run("show", "State", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = c.run("show", "Spaceship", id)
	assert.ErrorIs(t, err, domain.ErrUnknownKind)

	_, _, err = c.run("show", "State")
	assert.Error(t, err)
}

func TestCreateChildReadsParentFromParams(t *testing.T) {
	c := newConsole(t)

	state := c.create("State", `name="Texas"`)
	city := c.create("City", `state_id="`+state["id"].(string)+`"`, `name="Austin"`)
	assert.Equal(t, state["id"], city["state_id"])

	_, _, err := c.run("create", "City", `state_id="missing"`, `name="Nowhere"`)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, _, err = c.run("create", "User", `email="a@b.c"`)
	var missing *service.MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "password", missing.Field)

	user := c.create("User", `email="a@b.c"`, `password="pwd"`)
	assert.NotContains(t, user, "password")
}

func TestAllAndCount(t *testing.T) {
	c := newConsole(t)
	c.create("State", `name="A"`)
	c.create("State", `name="B"`)
	c.create("Amenity", `name="Wifi"`)

	out, _, err := c.run("count")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = c.run("count", "State")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, _, err = c.run("all", "State")
	require.NoError(t, err)
	var states []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &states))
	assert.Len(t, states, 2)

	out, _, err = c.run("all", "-o", "yaml")
	require.NoError(t, err)
	var all []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &all))
	assert.Len(t, all, 3)
}

func TestUpdateAndDestroy(t *testing.T) {
	c := newConsole(t)
	state := c.create("State", `name="Ohio"`)
	id := state["id"].(string)

	out, _, err := c.run("update", "State", id, "name", `"Iowa_State"`)
	require.NoError(t, err)
	var updated map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "Iowa State", updated["name"])

	out, _, err = c.run("update", "State", id, "name", "Plain")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &updated))
	assert.Equal(t, "Plain", updated["name"])

	_, _, err = c.run("update", "State", "missing", "name", "X")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, stderr, err := c.run("destroy", "State", id)
	require.NoError(t, err)
	assert.Equal(t, "destroyed State."+id+"\n", stderr)

	_, _, err = c.run("destroy", "State", id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type closeCounter struct {
	storage.Backend
	closed int
}

func (c *closeCounter) Close() error {
	c.closed++
	return c.Backend.Close()
}

func TestExecuteClosesStoreOnFailure(t *testing.T) {
	for name, args := range map[string][]string{
		"success": {"count"},
		"failure": {"show", "State", "missing"},
	} {
		t.Run(name, func(t *testing.T) {
			c := newConsole(t)
			backend := &closeCounter{Backend: mustFilestore(t)}
			c.app.provider = storage.NewProvider(backend)

			cmd := newRootCommand(c.app)
			cmd.SetArgs(args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			err := c.app.execute(context.Background(), cmd)

			if name == "failure" {
				assert.ErrorIs(t, err, domain.ErrNotFound)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, backend.closed)
			assert.Nil(t, c.app.provider)
		})
	}
}

func mustFilestore(t *testing.T) *filestore.Store {
	t.Helper()

	backend, err := filestore.New("")
	require.NoError(t, err)
	return backend
}
