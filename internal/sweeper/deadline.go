package sweeper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/providers/temporal"
	"github.com/nexus-dao/nexus-governance/internal/store"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

const (
	SWEEP_CYCLE_INTERVAL = 1 * time.Minute // Time to sleep between sweep cycles
)

// DeadlineSweeperConfig holds configuration for the proposal deadline sweeper
type DeadlineSweeperConfig struct {
	BatchSize      int // Proposals to scan per cycle
	WorkerPoolSize int // Concurrent workflow starts
}

// deadlineSweeper implements the Sweeper interface. It scans the read
// model for active proposals whose voting window has closed and starts a
// finalization workflow for each. The workflow id is derived from the
// proposal id, so a sweep racing a caller-triggered finalization dedupes
// on the Temporal side.
type deadlineSweeper struct {
	config                *DeadlineSweeperConfig
	store                 store.Store
	clock                 adapter.Clock
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
	pool                  pond.Pool
	running               atomic.Bool
	stopChan              chan struct{}
	stoppedCh             chan struct{}
}

// NewDeadlineSweeper creates a new proposal deadline sweeper
func NewDeadlineSweeper(
	config *DeadlineSweeperConfig,
	st store.Store,
	clock adapter.Clock,
	orchestrator temporal.TemporalOrchestrator,
	orchestratorTaskQueue string,
) Sweeper {
	return &deadlineSweeper{
		config:                config,
		store:                 st,
		clock:                 clock,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
		stopChan:              make(chan struct{}),
		stoppedCh:             make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *deadlineSweeper) Name() string {
	return "proposal-deadline-sweeper"
}

// Start begins the sweeper's main loop
func (s *deadlineSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting proposal deadline sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	// Create worker pool
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Proposal deadline sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Proposal deadline sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if ctx.Err() == nil {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *deadlineSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *deadlineSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping proposal deadline sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Proposal deadline sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Proposal deadline sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *deadlineSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	proposals, err := s.fetchActiveProposalsWithRetry(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch active proposals: %w", err)
	}

	now := s.clock.Now()
	var ended []uint64
	for _, p := range proposals {
		if p.EndTime.Before(now) {
			ended = append(ended, p.ProposalID)
		}
	}

	if len(ended) == 0 {
		if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
			return ctx.Err() // Context canceled during sleep
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found proposals past their voting deadline", zap.Int("count", len(ended)))

	var startedCount, skippedCount atomic.Int32
	for _, proposalID := range ended {
		s.pool.Submit(func() {
			s.startFinalization(ctx, proposalID, &startedCount, &skippedCount)
		})
	}

	// Wait for all workflow starts to complete
	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	duration := s.clock.Since(startTime)
	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", duration),
		zap.Int("total_ended", len(ended)),
		zap.Int32("started", startedCount.Load()),
		zap.Int32("skipped", skippedCount.Load()),
	)

	if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
		return ctx.Err() // Context canceled during sleep
	}

	return nil
}

// fetchActiveProposalsWithRetry queries the read model with exponential
// backoff so a transient database error does not abort the cycle
func (s *deadlineSweeper) fetchActiveProposalsWithRetry(ctx context.Context) ([]schema.Proposal, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 2 * time.Minute
	backoffWithContext := backoff.WithContext(b, ctx)

	var proposals []schema.Proposal
	operation := func() error {
		var err error
		proposals, _, err = s.store.GetProposalsByFilter(ctx, store.ProposalQueryFilter{
			Statuses: []string{string(domain.ProposalStatusActive)},
			Limit:    s.config.BatchSize,
		})
		return err
	}

	notifyOnError := func(err error, duration time.Duration) {
		logger.WarnCtx(ctx, "Proposal query failed, retrying",
			zap.Error(err),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return nil, err
	}
	return proposals, nil
}

// sleep sleeps for the given duration but can be interrupted by context
// cancellation. Returns true if sleep completed normally.
func (s *deadlineSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}

// startFinalization starts a finalization workflow for a single proposal
func (s *deadlineSweeper) startFinalization(ctx context.Context, proposalID uint64, startedCount, skippedCount *atomic.Int32) {
	workflowOptions := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("finalize-proposal-%d", proposalID),
		TaskQueue:             s.orchestratorTaskQueue,
		WorkflowRunTimeout:    5 * time.Minute,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY,
	}

	workflowRun, err := s.orchestrator.ExecuteWorkflow(ctx, workflowOptions, "FinalizeProposal", proposalID)
	if err != nil {
		// An already-started error means another actor got there first,
		// which is the expected race with caller-triggered finalization
		skippedCount.Add(1)
		logger.WarnCtx(ctx, "Finalization workflow not started",
			zap.Uint64("proposal_id", proposalID),
			zap.Error(err),
		)
		return
	}

	startedCount.Add(1)
	if workflowRun != nil {
		logger.InfoCtx(ctx, "Finalization workflow started",
			zap.Uint64("proposal_id", proposalID),
			zap.String("workflow_id", workflowRun.GetID()),
			zap.String("run_id", workflowRun.GetRunID()),
		)
	}
}
