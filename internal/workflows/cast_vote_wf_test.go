package workflows_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/mocks"
	"github.com/nexus-dao/nexus-governance/internal/workflows"
)

// CastVoteWorkflowTestSuite is the test suite for the cast-vote pipeline
type CastVoteWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env      *testsuite.TestWorkflowEnvironment
	ctrl     *gomock.Controller
	executor *mocks.MockGovernanceExecutor
	worker   workflows.WorkerGovernance
}

// SetupTest is called before each test
func (s *CastVoteWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockGovernanceExecutor(s.ctrl)
	s.worker = workflows.NewWorkerGovernance(s.executor, workflows.WorkerGovernanceConfig{
		ChainID: domain.ChainEthereumMainnet,
	})
}

// TearDownTest is called after each test
func (s *CastVoteWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestCastVoteWorkflowTestSuite runs the test suite
func TestCastVoteWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(CastVoteWorkflowTestSuite))
}

func validVoteRequest() workflows.VoteRequest {
	return workflows.VoteRequest{
		ProposalID: 1,
		Voter:      "0x1234567890123456789012345678901234567890",
		Support:    domain.VoteFor,
	}
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_Success() {
	req := validVoteRequest()

	s.env.OnActivity(s.executor.CheckVoterEligibility, mock.Anything, req.Voter).
		Return(&workflows.EligibilityResult{Eligible: true, VotingPower: "100"}, nil)
	s.env.OnActivity(s.executor.CheckProposalOpen, mock.Anything, req.ProposalID).
		Return(nil)
	s.env.OnActivity(s.executor.HasVoted, mock.Anything, req.ProposalID, req.Voter).
		Return(false, nil)
	s.env.OnActivity(s.executor.SubmitVote, mock.Anything, req).
		Return(nil)

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var receipt workflows.VoteReceipt
	s.NoError(s.env.GetWorkflowResult(&receipt))
	s.Equal(req.ProposalID, receipt.ProposalID)
	s.Equal(req.Voter, receipt.Voter)
	s.Equal(domain.VoteFor, receipt.Support)
	s.Equal("100", receipt.Weight)
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_InvalidWallet() {
	req := validVoteRequest()
	req.Voter = "not-an-address"

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal("InvalidVoteRequest", appErr.Type())
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_InvalidSupport() {
	req := validVoteRequest()
	req.Support = "maybe"

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal("InvalidVoteRequest", appErr.Type())
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_NormalizesWallet() {
	req := validVoteRequest()
	req.Voter = "0x1234567890123456789012345678901234567890"
	mixed := req
	mixed.Voter = "0x1234567890123456789012345678901234567890"

	s.env.OnActivity(s.executor.CheckVoterEligibility, mock.Anything, req.Voter).
		Return(&workflows.EligibilityResult{Eligible: true, VotingPower: "50"}, nil)
	s.env.OnActivity(s.executor.CheckProposalOpen, mock.Anything, req.ProposalID).
		Return(nil)
	s.env.OnActivity(s.executor.HasVoted, mock.Anything, req.ProposalID, req.Voter).
		Return(false, nil)
	s.env.OnActivity(s.executor.SubmitVote, mock.Anything, req).
		Return(nil)

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, mixed)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_NotEligible() {
	req := validVoteRequest()

	s.env.OnActivity(s.executor.CheckVoterEligibility, mock.Anything, req.Voter).
		Return(&workflows.EligibilityResult{
			Eligible:    false,
			Reason:      "citizenship is not active",
			VotingPower: "0",
		}, nil)

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal("VoterNotEligible", appErr.Type())
	s.Contains(appErr.Error(), "citizenship is not active")
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_ProposalNotOpen() {
	req := validVoteRequest()

	s.env.OnActivity(s.executor.CheckVoterEligibility, mock.Anything, req.Voter).
		Return(&workflows.EligibilityResult{Eligible: true, VotingPower: "100"}, nil)
	s.env.OnActivity(s.executor.CheckProposalOpen, mock.Anything, req.ProposalID).
		Return(domain.ErrNotActiveProposal)

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)
	s.Contains(err.Error(), "proposal is not active")
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_AlreadyVoted() {
	req := validVoteRequest()

	s.env.OnActivity(s.executor.CheckVoterEligibility, mock.Anything, req.Voter).
		Return(&workflows.EligibilityResult{Eligible: true, VotingPower: "100"}, nil)
	s.env.OnActivity(s.executor.CheckProposalOpen, mock.Anything, req.ProposalID).
		Return(nil)
	s.env.OnActivity(s.executor.HasVoted, mock.Anything, req.ProposalID, req.Voter).
		Return(true, nil)

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)

	var appErr *temporal.ApplicationError
	s.True(errors.As(err, &appErr))
	s.Equal("AlreadyVoted", appErr.Type())
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_SubmitFailedBallotLanded() {
	req := validVoteRequest()

	s.env.OnActivity(s.executor.CheckVoterEligibility, mock.Anything, req.Voter).
		Return(&workflows.EligibilityResult{Eligible: true, VotingPower: "100"}, nil)
	s.env.OnActivity(s.executor.CheckProposalOpen, mock.Anything, req.ProposalID).
		Return(nil)
	// First check: no ballot. Confirm after submit failure: ballot landed.
	s.env.OnActivity(s.executor.HasVoted, mock.Anything, req.ProposalID, req.Voter).
		Return(false, nil).Once()
	s.env.OnActivity(s.executor.SubmitVote, mock.Anything, req).
		Return(errors.New("connection reset"))
	s.env.OnActivity(s.executor.HasVoted, mock.Anything, req.ProposalID, req.Voter).
		Return(true, nil).Once()

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var receipt workflows.VoteReceipt
	s.NoError(s.env.GetWorkflowResult(&receipt))
	s.Equal(req.ProposalID, receipt.ProposalID)
}

func (s *CastVoteWorkflowTestSuite) TestCastVotePipeline_SubmitFailedNoBallot() {
	req := validVoteRequest()

	s.env.OnActivity(s.executor.CheckVoterEligibility, mock.Anything, req.Voter).
		Return(&workflows.EligibilityResult{Eligible: true, VotingPower: "100"}, nil)
	s.env.OnActivity(s.executor.CheckProposalOpen, mock.Anything, req.ProposalID).
		Return(nil)
	s.env.OnActivity(s.executor.HasVoted, mock.Anything, req.ProposalID, req.Voter).
		Return(false, nil).Twice()
	s.env.OnActivity(s.executor.SubmitVote, mock.Anything, req).
		Return(errors.New("connection reset"))

	s.env.ExecuteWorkflow(s.worker.CastVotePipeline, req)

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)
	s.Contains(err.Error(), "connection reset")
}
