package cmdutil

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/c9s/streamta/pkg/config"
	"github.com/c9s/streamta/pkg/datasource/csvsource"
	"github.com/c9s/streamta/pkg/types"
)

// PersistentFlags defines the flags shared by the commands that replay a graph.
func PersistentFlags(flags *pflag.FlagSet) {
	flags.String("config", "streamta.yaml", "indicator graph file")
	flags.String("source", "", "csv file or directory of the bars, overrides source.path")
	flags.String("format", "", "csv format: binance or metatrader, overrides source.format")
	flags.String("symbol", "", "symbol of the bars, overrides the graph symbol")
	flags.String("interval", "", "interval of the bars, overrides the graph interval")
}

// LoadGraph loads the graph file and applies the flag overrides.
func LoadGraph() (*config.Graph, error) {
	graph, err := config.Load(viper.GetString("config"))
	if err != nil {
		return nil, err
	}

	if source := viper.GetString("source"); source != "" {
		graph.Source.Path = source
	}

	if format := viper.GetString("format"); format != "" {
		graph.Source.Format = format
	}

	if symbol := viper.GetString("symbol"); symbol != "" {
		graph.Symbol = symbol
	}

	if interval := viper.GetString("interval"); interval != "" {
		i, err := types.ParseInterval(interval)
		if err != nil {
			return nil, err
		}
		graph.Interval = i
	}

	if graph.Source.Path == "" {
		return nil, errors.New("source path is not set, use --source or source.path")
	}

	return graph, nil
}

// LoadKLines reads the bars of the graph source.
func LoadKLines(graph *config.Graph) ([]types.KLine, error) {
	return csvsource.ReadKLinesFromCSVWithFormat(
		graph.Source.Path,
		graph.Symbol,
		graph.Interval,
		csvsource.Format(graph.Source.Format),
	)
}
