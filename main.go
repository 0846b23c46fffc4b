package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sockbench/sockbench/bench"
	"github.com/sockbench/sockbench/config"
	"github.com/sockbench/sockbench/internal/stats"
	"github.com/sockbench/sockbench/log"
	"github.com/sockbench/sockbench/server"
	"github.com/sockbench/sockbench/server/tcp"
	"github.com/sockbench/sockbench/server/udp"
	"github.com/sockbench/sockbench/sockbench"
	"github.com/sockbench/sockbench/ui"
	serverui "github.com/sockbench/sockbench/ui/server"
)

func main() {
	fmt.Println("\nsockbench: TCP/UDP round-trip benchmark (Version: " + config.Version + ")")
	fmt.Println("")

	if err := config.Init(); err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Printf("Please use \"sockbench -h\" for the complete list of command line arguments.\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("Shutting down...")
		cancel()
	}()

	level := log.LevelInfo
	if config.Debug {
		level = log.LevelDebug
	}

	loggers := make([]log.Logger, 0, 3)
	stdout := log.NewSTDOutLogger(level)
	stdout.Init(ctx)
	loggers = append(loggers, stdout)

	if !config.NoOutput {
		jsonLogger, err := log.NewJSONLogger(config.OutputFile, level, 64)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		jsonLogger.Init(ctx)
		loggers = append(loggers, jsonLogger)
	}

	if config.IsServer {
		runServer(ctx, level, loggers)
	} else {
		runClient(ctx, log.NewAggregateLogger(loggers...))
	}
}

// runServer hosts both echo servers until interrupted.
func runServer(ctx context.Context, level log.LogLevel, loggers []log.Logger) {
	counters := &server.Counters{}
	watcher := stats.NewWatcher()
	watcher.Start(ctx)

	term := serverui.NewUI(config.ShowUI, counters, watcher)
	term.Display(ctx)

	tuiLogger := log.NewTuiLogger(level, term.Terminal)
	tuiLogger.Init(ctx)
	logger := log.NewAggregateLogger(append(loggers, tuiLogger)...)

	params := config.Params()
	tcpCfg := server.ConfigFromParams(params, sockbench.TCP)
	tcpCfg.LocalIP = config.LocalIP
	udpCfg := server.ConfigFromParams(params, sockbench.UDP)
	udpCfg.LocalIP = config.LocalIP

	tcpSrv := tcp.NewServer(tcpCfg, tcp.NewHandler(logger, tcpCfg, counters))
	udpSrv := udp.NewServer(udpCfg, udp.NewHandler(logger, udpCfg, counters))

	errCh := make(chan error, 2)
	go func() {
		errCh <- tcpSrv.Serve(ctx)
	}()
	go func() {
		errCh <- udpSrv.Serve(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed: %v", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}
	udpSrv.Stop()
}

// runClient runs the requested benchmark legs and prints the report.
func runClient(ctx context.Context, logger *log.AggregateLogger) {
	params := config.Params()

	reporter := ui.NewReporter(params.Iterations, params.DataSize)
	reporter.PrintRunHeader(config.Mode, config.Host)

	o := bench.NewOrchestrator(logger, params, config.Mode)
	o.NoCheck = config.NoCheck
	o.Progress = reporter.Progress

	var protocols []sockbench.Protocol
	if config.RunTCP {
		protocols = append(protocols, sockbench.TCP)
	}
	if config.RunUDP {
		protocols = append(protocols, sockbench.UDP)
	}

	runs := o.RunComparison(ctx, protocols)

	rows := make([]ui.Row, 0, len(runs))
	completed := 0
	for _, run := range runs {
		row := ui.Row{Protocol: run.Protocol, Summary: run.Summary}
		reporter.PrintResult(row)
		rows = append(rows, row)

		if run.Summary != nil {
			completed++
			logger.Result(run.Protocol, config.Host, true, run.Summary)
		} else {
			logger.Result(run.Protocol, config.Host, false, log.NoDetails)
		}
	}

	if len(rows) > 1 {
		reporter.PrintComparison(rows)
	}
	if completed == 0 {
		os.Exit(1)
	}
}
