package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestStringSlice(t *testing.T) {
	tests := []struct {
		name string
		give string
		want StringSlice
	}{
		{name: "single", give: "input: close", want: StringSlice{"close"}},
		{name: "list", give: "input: [high, low]", want: StringSlice{"high", "low"}},
		{name: "comma separated", give: "input: 'fast, slow'", want: StringSlice{"fast", "slow"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var node Node
			assert.NoError(t, yaml.Unmarshal([]byte(tt.give), &node))
			assert.Equal(t, tt.want, node.Inputs)
		})
	}
}

func TestStringSlice_Invalid(t *testing.T) {
	var node Node
	assert.Error(t, yaml.Unmarshal([]byte("input: {a: b}"), &node))

	var s StringSlice
	assert.Error(t, json.Unmarshal([]byte(`[1, 2]`), &s))
	assert.NoError(t, json.Unmarshal([]byte(`["close", "open"]`), &s))
	assert.Equal(t, StringSlice{"close", "open"}, s)
}
