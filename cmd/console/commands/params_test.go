package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
		ok   bool
	}{
		{`"California"`, "California", true},
		{`"My_little_house"`, "My little house", true},
		{`"say_\"hi\""`, `say "hi"`, true},
		{`""`, "", true},
		{`4`, 4, true},
		{`-12`, -12, true},
		{`37.77`, 37.77, true},
		{`abc`, nil, false},
		{`"open`, nil, false},
		{`"`, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseValue(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseParams(t *testing.T) {
	got := parseParams([]string{
		`name="My_house"`,
		`number_rooms=4`,
		`latitude=37.77`,
		`junk`,
		`=5`,
		`bad=value`,
		`text="a=b"`,
	})

	assert.Equal(t, map[string]any{
		"name":         "My house",
		"number_rooms": 4,
		"latitude":     37.77,
		"text":         "a=b",
	}, got)
}
