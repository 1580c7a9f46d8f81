package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
)

// FinalizeProposal settles a proposal whose voting window has closed,
// resolving quorum and majority into defeated or succeeded.
func (w *workerGovernance) FinalizeProposal(ctx workflow.Context, proposalID uint64) (domain.ProposalStatus, error) {
	logger.InfoWf(ctx, "Finalizing proposal",
		zap.Uint64("proposalID", proposalID),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var status domain.ProposalStatus
	err := workflow.ExecuteActivity(ctx, w.executor.FinalizeProposal, proposalID).Get(ctx, &status)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to finalize proposal"),
			zap.Error(err),
			zap.Uint64("proposalID", proposalID),
		)
		return "", err
	}

	logger.InfoWf(ctx, "Proposal finalized",
		zap.Uint64("proposalID", proposalID),
		zap.String("status", string(status)),
	)
	return status, nil
}

// ExecuteProposalPipeline queues a succeeded proposal into the timelock,
// sleeps out the execution delay on a durable workflow timer, and executes it.
//
// Execution runs with a single attempt. The ledger rejects a replayed
// execution, so after a failure the pipeline surfaces the error instead
// of retrying into an already-executed proposal.
func (w *workerGovernance) ExecuteProposalPipeline(ctx workflow.Context, proposalID uint64) error {
	logger.InfoWf(ctx, "Starting proposal execution pipeline",
		zap.Uint64("proposalID", proposalID),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Step 1: queue into the timelock
	err := workflow.ExecuteActivity(ctx, w.executor.QueueProposal, proposalID).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to queue proposal"),
			zap.Error(err),
			zap.Uint64("proposalID", proposalID),
		)
		return err
	}

	// Step 2: wait out the timelock
	var delay time.Duration
	err = workflow.ExecuteActivity(ctx, w.executor.GetExecutionDelay).Get(ctx, &delay)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to read execution delay"),
			zap.Error(err),
			zap.Uint64("proposalID", proposalID),
		)
		return err
	}

	logger.InfoWf(ctx, "Proposal queued, waiting out the timelock",
		zap.Uint64("proposalID", proposalID),
		zap.Duration("delay", delay),
	)
	if err := workflow.Sleep(ctx, delay); err != nil {
		return err
	}

	// Step 3: execute, single attempt
	executeOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	executeCtx := workflow.WithActivityOptions(ctx, executeOptions)

	err = workflow.ExecuteActivity(executeCtx, w.executor.ExecuteProposal, proposalID).Get(executeCtx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to execute proposal"),
			zap.Error(err),
			zap.Uint64("proposalID", proposalID),
		)
		return err
	}

	logger.InfoWf(ctx, "Proposal executed",
		zap.Uint64("proposalID", proposalID),
	)
	return nil
}
