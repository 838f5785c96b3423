package domain

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeAddsClass(t *testing.T) {
	c := NewCity()
	c.StateID = "s1"
	c.Name = "San Francisco"

	data, err := Encode(c)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "City", fields[ClassField])
	assert.Equal(t, "San Francisco", fields["name"])
	assert.Equal(t, c.ID, fields["id"])
}

func TestEncodeDecodePlace(t *testing.T) {
	p := NewPlace()
	p.CityID = "c1"
	p.UserID = "u1"
	p.Name = "Loft"
	p.NumberRooms = 3
	p.Latitude = 37.77
	p.AmenityIDs = IDList{"a1", "a2"}

	data, err := Encode(p)
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)

	if diff := cmp.Diff(Entity(p), decoded); diff != "" {
		t.Errorf("decoded place mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	u := NewUser()
	u.Email = "x@y.z"

	first, err := Encode(u)
	require.NoError(t, err)
	second, err := Encode(u)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"no class", `{"id": "1"}`},
		{"unknown class", `{"__class__": "Spaceship", "id": "1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
