package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/config"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/governance"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/providers/jetstream"
	temporalprovider "github.com/nexus-dao/nexus-governance/internal/providers/temporal"
	"github.com/nexus-dao/nexus-governance/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerGovernanceConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "worker-governance",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Governance Worker")

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	natsJS := adapter.NewNatsJetStream()

	// Initialize NATS publisher; the ledger's event log flows through it
	// into the read model
	natsPublisher, err := jetstream.NewPublisher(
		jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
		}, natsJS, jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer natsPublisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	// Initialize the governance ledger
	ledgerCfg, err := cfg.Governance.LedgerConfig(cfg.Ethereum.ChainID)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid governance configuration", zap.Error(err))
	}
	ledger, err := governance.NewLedger(ledgerCfg, clockAdapter, governance.NewPublisherSink(natsPublisher))
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create governance ledger", zap.Error(err))
	}

	// Initialize executor for activities
	executor := workflows.NewExecutor(ledger, workflows.ExecutorConfig{
		Operator: domain.NewAddress(cfg.OperatorAddress),
	})

	// Connect to Temporal with logger integration
	temporalLogger := temporalprovider.NewZapLoggerAdapter(logger.Default())
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporalLogger,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.GovernanceTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			MaxConcurrentActivityTaskPollers:   cfg.Temporal.MaxConcurrentActivityTaskPollers,
		})
	logger.Info("Created Temporal worker", zap.String("taskQueue", cfg.Temporal.GovernanceTaskQueue))

	// Create governance worker instance
	workerGovernance := workflows.NewWorkerGovernance(executor,
		workflows.WorkerGovernanceConfig{
			ChainID: cfg.Ethereum.ChainID,
		})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerGovernance.CastVotePipeline)
	temporalWorker.RegisterWorkflow(workerGovernance.FinalizeProposal)
	temporalWorker.RegisterWorkflow(workerGovernance.ExecuteProposalPipeline)
	logger.Info("Registered workflows")

	// Register activities
	// Activities will be called by workflows
	temporalWorker.RegisterActivity(executor.CheckVoterEligibility)
	temporalWorker.RegisterActivity(executor.CheckProposalOpen)
	temporalWorker.RegisterActivity(executor.HasVoted)
	temporalWorker.RegisterActivity(executor.SubmitVote)
	temporalWorker.RegisterActivity(executor.FinalizeProposal)
	temporalWorker.RegisterActivity(executor.QueueProposal)
	temporalWorker.RegisterActivity(executor.ExecuteProposal)
	temporalWorker.RegisterActivity(executor.GetExecutionDelay)
	logger.Info("Registered activities")

	// Start worker
	err = temporalWorker.Start()
	if err != nil {
		logger.Fatal("Failed to start worker", zap.Error(err))
	}
	logger.Info("Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
