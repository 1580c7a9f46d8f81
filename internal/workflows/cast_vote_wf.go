package workflows

import (
	"errors"
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
)

// CastVotePipeline validates a voter end to end and casts their ballot.
//
// The submit stage runs with a single attempt: casting a vote is not
// idempotent from the workflow's point of view, so after a submit failure
// the pipeline confirms through HasVoted whether the ballot actually
// landed before reporting an error. It never blindly re-submits.
func (w *workerGovernance) CastVotePipeline(ctx workflow.Context, req VoteRequest) (*VoteReceipt, error) {
	logger.InfoWf(ctx, "Processing cast vote request",
		zap.Uint64("proposalID", req.ProposalID),
		zap.String("voter", req.Voter),
		zap.String("support", string(req.Support)),
	)

	// Stage 1: validate the request shape. Deterministic, no activity needed.
	voter := domain.NewAddress(req.Voter)
	if !voter.Valid() {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid wallet address", "InvalidVoteRequest", domain.ErrInvalidAddress)
	}
	if !req.Support.Valid() {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid vote support", "InvalidVoteRequest", domain.ErrInvalidSupport)
	}
	req.Voter = voter.String()

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	// Stage 2: eligibility and voting power
	var eligibility EligibilityResult
	err := workflow.ExecuteActivity(ctx, w.executor.CheckVoterEligibility, req.Voter).Get(ctx, &eligibility)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to check voter eligibility"),
			zap.Error(err),
			zap.String("voter", req.Voter),
		)
		return nil, err
	}
	if !eligibility.Eligible {
		return nil, temporal.NewNonRetryableApplicationError(
			eligibility.Reason, "VoterNotEligible", domain.ErrNotEligible)
	}

	// Stage 3: proposal state
	err = workflow.ExecuteActivity(ctx, w.executor.CheckProposalOpen, req.ProposalID).Get(ctx, nil)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("proposal is not open for voting"),
			zap.Error(err),
			zap.Uint64("proposalID", req.ProposalID),
		)
		return nil, err
	}

	// Stage 4: duplicate ballot
	var voted bool
	err = workflow.ExecuteActivity(ctx, w.executor.HasVoted, req.ProposalID, req.Voter).Get(ctx, &voted)
	if err != nil {
		logger.ErrorWf(ctx,
			fmt.Errorf("failed to check prior ballot"),
			zap.Error(err),
			zap.Uint64("proposalID", req.ProposalID),
		)
		return nil, err
	}
	if voted {
		return nil, temporal.NewNonRetryableApplicationError(
			"already voted on this proposal", "AlreadyVoted", domain.ErrAlreadyVoted)
	}

	// Stage 5: submit, single attempt
	submitOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	submitCtx := workflow.WithActivityOptions(ctx, submitOptions)

	submitErr := workflow.ExecuteActivity(submitCtx, w.executor.SubmitVote, req).Get(submitCtx, nil)
	if submitErr != nil {
		// Stage 6: confirm. The submit may have landed before the failure
		// was observed, so check the ledger before surfacing an error.
		err = workflow.ExecuteActivity(ctx, w.executor.HasVoted, req.ProposalID, req.Voter).Get(ctx, &voted)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to confirm ballot after submit failure"),
				zap.Error(errors.Join(submitErr, err)),
				zap.Uint64("proposalID", req.ProposalID),
			)
			return nil, submitErr
		}
		if !voted {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to submit vote"),
				zap.Error(submitErr),
				zap.Uint64("proposalID", req.ProposalID),
				zap.String("voter", req.Voter),
			)
			return nil, submitErr
		}
		logger.WarnWf(ctx, "Submit reported failure but ballot landed",
			zap.Uint64("proposalID", req.ProposalID),
			zap.String("voter", req.Voter),
		)
	}

	logger.InfoWf(ctx, "Vote cast successfully",
		zap.Uint64("proposalID", req.ProposalID),
		zap.String("voter", req.Voter),
		zap.String("weight", eligibility.VotingPower),
	)

	return &VoteReceipt{
		ProposalID: req.ProposalID,
		Voter:      req.Voter,
		Support:    req.Support,
		Weight:     eligibility.VotingPower,
	}, nil
}
