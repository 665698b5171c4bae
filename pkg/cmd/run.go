package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/c9s/streamta/pkg/cmd/cmdutil"
	"github.com/c9s/streamta/pkg/engine"
	"github.com/c9s/streamta/pkg/metrics"
	"github.com/c9s/streamta/pkg/style"
	"github.com/c9s/streamta/pkg/types"
	"github.com/c9s/streamta/pkg/util"
)

func init() {
	RunCmd.Flags().String("metrics-listen", "", "serve prometheus metrics on the address, e.g. :9090, and wait for a signal after the replay")
	RunCmd.Flags().Int("print-every", 0, "print the snapshot every n bars")
	RunCmd.Flags().Bool("no-color", false, "print the table title without color")
	RootCmd.AddCommand(RunCmd)
}

var RunCmd = &cobra.Command{
	Use:   "run [--config=streamta.yaml] [--source=bars.csv]",
	Short: "replay the bars through the indicator graph and print the streams",
	RunE:  run,
}

func run(cmd *cobra.Command, args []string) error {
	metricsListen, err := cmd.Flags().GetString("metrics-listen")
	if err != nil {
		return err
	}

	printEvery, err := cmd.Flags().GetInt("print-every")
	if err != nil {
		return err
	}

	noColor, err := cmd.Flags().GetBool("no-color")
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

	rejectLogger := util.NewWarnFirstLogger(5, time.Minute, log.WithField("symbol", graph.Symbol))
	e.OnReject(func(id string, s types.Sample, status types.Status) {
		rejectLogger.WarnOrError(nil, "%s rejected the sample at %s: %s", id, s.Time.Format(time.RFC3339), status)
	})

	var server *metrics.Server
	if metricsListen != "" {
		metrics.Bind(e, graph.Symbol, graph.Interval)
		server = metrics.NewServer(metricsListen)
		server.Start()
	}

	tableStyle := style.TableStyle(!noColor)
	accepted := 0
	for _, k := range kLines {
		if !e.Push(k) {
			log.Debugf("skipped bar %s", k)
			continue
		}

		accepted++
		if printEvery > 0 && accepted%printEvery == 0 {
			e.Print(os.Stdout, tableStyle, !noColor)
		}
	}

	log.Infof("replayed %d of %d bars", accepted, len(kLines))
	e.Print(os.Stdout, tableStyle, !noColor)

	if server == nil {
		return nil
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Info("serving metrics, press ctrl-c to exit")
	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	util.LogErr(server.Shutdown(shutdownCtx), "metrics server shutdown")
	return nil
}
