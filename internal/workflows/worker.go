package workflows

import (
	"go.temporal.io/sdk/workflow"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// WorkerGovernance defines the interface for the client-facing governance pipelines
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_governance.go -package=mocks -mock_names=WorkerGovernance=MockGovernanceWorker
type WorkerGovernance interface {
	// CastVotePipeline validates a voter end to end and casts their ballot
	CastVotePipeline(ctx workflow.Context, req VoteRequest) (*VoteReceipt, error)

	// FinalizeProposal settles a proposal whose voting window has closed
	FinalizeProposal(ctx workflow.Context, proposalID uint64) (domain.ProposalStatus, error)

	// ExecuteProposalPipeline queues a succeeded proposal into the timelock,
	// waits out the execution delay, and executes it
	ExecuteProposalPipeline(ctx workflow.Context, proposalID uint64) error
}

type WorkerGovernanceConfig struct {
	// ChainID is the chain the governance contracts live on
	ChainID domain.Chain
}

// workerGovernance is the concrete implementation of WorkerGovernance
type workerGovernance struct {
	config   WorkerGovernanceConfig
	executor Executor
}

// NewWorkerGovernance creates a new governance worker instance
func NewWorkerGovernance(executor Executor, config WorkerGovernanceConfig) WorkerGovernance {
	return &workerGovernance{
		executor: executor,
		config:   config,
	}
}
