package workflows

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/governance"
	"github.com/nexus-dao/nexus-governance/internal/logger"
)

// VoteRequest is the input to the cast-vote pipeline
type VoteRequest struct {
	ProposalID uint64             `json:"proposalID"`
	Voter      string             `json:"voter"`
	Support    domain.VoteSupport `json:"support"`
}

// VoteReceipt is the pipeline result returned to the caller once
// the ballot is durably recorded in the ledger.
type VoteReceipt struct {
	ProposalID uint64             `json:"proposalID"`
	Voter      string             `json:"voter"`
	Support    domain.VoteSupport `json:"support"`
	Weight     string             `json:"weight"`
}

// EligibilityResult carries the outcome of the voter eligibility check.
// Reason is a user-facing message, set only when Eligible is false.
type EligibilityResult struct {
	Eligible    bool   `json:"eligible"`
	Reason      string `json:"reason,omitempty"`
	VotingPower string `json:"votingPower"`
}

// Executor defines the interface for executing governance activities
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_governance.go -package=mocks -mock_names=Executor=MockGovernanceExecutor
type Executor interface {
	// CheckVoterEligibility verifies the wallet is an active citizen holding voting power
	CheckVoterEligibility(ctx context.Context, wallet string) (*EligibilityResult, error)

	// CheckProposalOpen verifies the proposal exists and is accepting votes
	CheckProposalOpen(ctx context.Context, proposalID uint64) error

	// HasVoted reports whether the wallet already holds a ballot on the proposal
	HasVoted(ctx context.Context, proposalID uint64, wallet string) (bool, error)

	// SubmitVote casts the ballot through the governance ledger
	SubmitVote(ctx context.Context, req VoteRequest) error

	// FinalizeProposal settles quorum and majority after the voting window closes
	FinalizeProposal(ctx context.Context, proposalID uint64) (domain.ProposalStatus, error)

	// QueueProposal moves a succeeded proposal into the timelock
	QueueProposal(ctx context.Context, proposalID uint64) error

	// ExecuteProposal executes a queued proposal once the timelock has elapsed
	ExecuteProposal(ctx context.Context, proposalID uint64) error

	// GetExecutionDelay returns the current timelock delay from the governance parameters
	GetExecutionDelay(ctx context.Context) (time.Duration, error)
}

type ExecutorConfig struct {
	// Operator is the actor recorded on lifecycle transitions the pipelines
	// drive themselves (finalize, queue, execute)
	Operator domain.Address
}

// executor is the concrete implementation of Executor, backed by the
// in-memory governance ledger
type executor struct {
	config ExecutorConfig
	ledger *governance.Ledger
}

// NewExecutor creates a new governance activity executor
func NewExecutor(ledger *governance.Ledger, config ExecutorConfig) Executor {
	return &executor{
		ledger: ledger,
		config: config,
	}
}

// CheckVoterEligibility verifies the wallet is an active citizen holding voting power
func (e *executor) CheckVoterEligibility(_ context.Context, wallet string) (*EligibilityResult, error) {
	addr := domain.NewAddress(wallet)

	citizen, err := e.ledger.GetCitizen(addr)
	if err != nil {
		return &EligibilityResult{
			Eligible:    false,
			Reason:      "wallet is not a registered citizen",
			VotingPower: domain.ZeroAmount().String(),
		}, nil
	}

	if citizen.Status != domain.CitizenStatusActive {
		return &EligibilityResult{
			Eligible:    false,
			Reason:      "citizenship is not active",
			VotingPower: domain.ZeroAmount().String(),
		}, nil
	}

	power := citizen.EffectivePower()
	if power.IsZero() {
		reason := "wallet has no voting power"
		if citizen.Delegating() {
			reason = "voting power is currently delegated"
		}
		return &EligibilityResult{
			Eligible:    false,
			Reason:      reason,
			VotingPower: power.String(),
		}, nil
	}

	return &EligibilityResult{
		Eligible:    true,
		VotingPower: power.String(),
	}, nil
}

// CheckProposalOpen verifies the proposal exists and is accepting votes
func (e *executor) CheckProposalOpen(_ context.Context, proposalID uint64) error {
	p, err := e.ledger.GetProposal(proposalID)
	if err != nil {
		return err
	}
	if p.State != domain.ProposalStatusActive {
		return domain.ErrNotActiveProposal
	}
	return nil
}

// HasVoted reports whether the wallet already holds a ballot on the proposal
func (e *executor) HasVoted(_ context.Context, proposalID uint64, wallet string) (bool, error) {
	return e.ledger.HasVoted(proposalID, domain.NewAddress(wallet))
}

// SubmitVote casts the ballot through the governance ledger
func (e *executor) SubmitVote(ctx context.Context, req VoteRequest) error {
	return e.ledger.CastVote(ctx, domain.NewAddress(req.Voter), req.ProposalID, req.Support)
}

// FinalizeProposal settles quorum and majority after the voting window closes
func (e *executor) FinalizeProposal(ctx context.Context, proposalID uint64) (domain.ProposalStatus, error) {
	status, err := e.ledger.FinalizeProposal(ctx, e.config.Operator, proposalID)
	if err != nil {
		return "", err
	}

	logger.InfoCtx(ctx, "Proposal finalized",
		zap.Uint64("proposalID", proposalID),
		zap.String("status", string(status)),
	)
	return status, nil
}

// QueueProposal moves a succeeded proposal into the timelock
func (e *executor) QueueProposal(ctx context.Context, proposalID uint64) error {
	return e.ledger.QueueProposal(ctx, e.config.Operator, proposalID)
}

// ExecuteProposal executes a queued proposal once the timelock has elapsed
func (e *executor) ExecuteProposal(ctx context.Context, proposalID uint64) error {
	return e.ledger.ExecuteProposal(ctx, e.config.Operator, proposalID)
}

// GetExecutionDelay returns the current timelock delay from the governance parameters
func (e *executor) GetExecutionDelay(_ context.Context) (time.Duration, error) {
	return e.ledger.GetGovernanceParams().ExecutionDelay, nil
}
