package cmdutil

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/streamta/pkg/types"
)

func TestLoadGraph_Overrides(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("config", "../../config/testdata/graph.yaml")
	viper.Set("source", "../../datasource/csvsource/testdata")
	viper.Set("symbol", "ETHUSDT")
	viper.Set("interval", "4h")

	graph, err := LoadGraph()
	require.NoError(t, err)
	assert.Equal(t, "ETHUSDT", graph.Symbol)
	assert.Equal(t, types.Interval4h, graph.Interval)
	assert.Equal(t, "../../datasource/csvsource/testdata", graph.Source.Path)

	kLines, err := LoadKLines(graph)
	require.NoError(t, err)
	assert.Len(t, kLines, 48)
	assert.Equal(t, "ETHUSDT", kLines[0].Symbol)
	assert.Equal(t, types.Interval4h, kLines[0].Interval)
}

func TestLoadGraph_InvalidInterval(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	viper.Set("config", "../../config/testdata/graph.yaml")
	viper.Set("interval", "7m")

	_, err := LoadGraph()
	assert.Error(t, err)
}
