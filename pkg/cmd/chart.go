package cmd

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/streamta/pkg/chart"
	"github.com/c9s/streamta/pkg/cmd/cmdutil"
	"github.com/c9s/streamta/pkg/config"
	"github.com/c9s/streamta/pkg/engine"
	"github.com/c9s/streamta/pkg/types"
)

func init() {
	ChartCommand.Flags().StringSlice("indicators", nil, "the indicator ids to plot, all by default")
	ChartCommand.Flags().String("output", "indicators.png", "the png file to write")
	ChartCommand.Flags().Bool("no-price", false, "do not plot the close price")
	RootCmd.AddCommand(ChartCommand)
}

var ChartCommand = &cobra.Command{
	Use:   "chart [--config=streamta.yaml] [--indicators=id,...] [--output=indicators.png]",
	Short: "replay the bars and render the indicator streams into a png",
	RunE:  renderChart,
}

func renderChart(cmd *cobra.Command, args []string) error {
	ids, err := cmd.Flags().GetStringSlice("indicators")
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	noPrice, err := cmd.Flags().GetBool("no-price")
	if err != nil {
		return err
	}

	graph, err := cmdutil.LoadGraph()
	if err != nil {
		return err
	}

	kLines, err := cmdutil.LoadKLines(graph)
	if err != nil {
		return errors.Wrap(err, "load klines")
	}

	e, err := engine.FromGraph(graph)
	if err != nil {
		return err
	}

	selected := make(map[string]bool)
	if len(ids) == 0 {
		ids = e.IDs()
	}
	for _, id := range ids {
		if _, err := e.Stream(id); err != nil {
			return err
		}
		selected[id] = true
	}

	canvas := chart.NewCanvas(graph.Symbol+" "+graph.Interval.String(), graph.Interval)
	if !noPrice {
		closePrices, _ := e.Price(config.InputClose)
		closePrices.OnUpdate(func(s types.Sample) {
			canvas.Plot("close", s)
		})
	}

	e.OnUpdate(func(id string, s types.Sample) {
		if selected[id] {
			canvas.Plot(id, s)
		}
	})

	n := e.PushAll(kLines)
	log.Infof("replayed %d bars, writing %s", n, output)
	return canvas.Save(output)
}
