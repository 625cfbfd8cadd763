package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/tracewatch/internal/config"
	"github.com/gabapcia/tracewatch/internal/handlers/cli"
	"github.com/gabapcia/tracewatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/tracewatch/internal/infra/notifier/console"
	"github.com/gabapcia/tracewatch/internal/infra/notifier/kafka"
	"github.com/gabapcia/tracewatch/internal/pkg/logger"
	"github.com/gabapcia/tracewatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/tracewatch/internal/pkg/transport/http"
	"github.com/gabapcia/tracewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/tracewatch/internal/tracescan"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	var (
		httpClient = transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.RPCTimeout),
			transporthttp.WithRetryMax(cfg.RPCRetryMax),
		)
		conn   = jsonrpc.NewClient(httpClient, cfg.RPCURL)
		source = ethereum.NewClient(conn, ethereum.WithTraceTimeout(cfg.TraceTimeout))
	)

	notifiers := []tracescan.ReportNotifier{console.New(os.Stdout)}
	if cfg.KafkaEnabled() {
		producer, err := kafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			return err
		}

		kafkaNotifier := kafka.New(producer, kafka.WithTopic(cfg.KafkaTopic))
		defer kafkaNotifier.Close()

		notifiers = append(notifiers, kafkaNotifier)
	}

	svc := tracescan.New(source,
		tracescan.WithConcurrency(cfg.ScanConcurrency),
		tracescan.WithMaxBlockRange(cfg.ScanMaxBlockRange),
		tracescan.WithMalformedValuePolicy(policy),
		tracescan.WithNotifiers(notifiers...),
	)

	return cli.Run(ctx, svc, ethereum.DecodeBlockTraces, cfg.WatchedAddress)
}
