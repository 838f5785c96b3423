package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDListValue(t *testing.T) {
	v, err := IDList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = IDList{"a", "b"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, v)
}

func TestIDListScan(t *testing.T) {
	var l IDList
	require.NoError(t, l.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, IDList{"a", "b"}, l)

	require.NoError(t, l.Scan(`["c"]`))
	assert.Equal(t, IDList{"c"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, IDList{}, l)

	assert.Error(t, l.Scan(42))
}

func TestIDListRemove(t *testing.T) {
	l := IDList{"a", "b", "a"}

	assert.True(t, l.Contains("a"))
	assert.True(t, l.Remove("a"))
	assert.Equal(t, IDList{"b"}, l)
	assert.False(t, l.Remove("a"))
	assert.False(t, l.Contains("a"))
}
