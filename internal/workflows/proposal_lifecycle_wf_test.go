package workflows_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/mocks"
	"github.com/nexus-dao/nexus-governance/internal/workflows"
)

// ProposalLifecycleWorkflowTestSuite is the test suite for the proposal
// finalize and execute pipelines
type ProposalLifecycleWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env      *testsuite.TestWorkflowEnvironment
	ctrl     *gomock.Controller
	executor *mocks.MockGovernanceExecutor
	worker   workflows.WorkerGovernance
}

// SetupTest is called before each test
func (s *ProposalLifecycleWorkflowTestSuite) SetupTest() {
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
func (s *ProposalLifecycleWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestProposalLifecycleWorkflowTestSuite runs the test suite
func TestProposalLifecycleWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(ProposalLifecycleWorkflowTestSuite))
}

func (s *ProposalLifecycleWorkflowTestSuite) TestFinalizeProposal_Succeeded() {
	s.env.OnActivity(s.executor.FinalizeProposal, mock.Anything, uint64(7)).
		Return(domain.ProposalStatusSucceeded, nil)

	s.env.ExecuteWorkflow(s.worker.FinalizeProposal, uint64(7))

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var status domain.ProposalStatus
	s.NoError(s.env.GetWorkflowResult(&status))
	s.Equal(domain.ProposalStatusSucceeded, status)
}

func (s *ProposalLifecycleWorkflowTestSuite) TestFinalizeProposal_Defeated() {
	s.env.OnActivity(s.executor.FinalizeProposal, mock.Anything, uint64(7)).
		Return(domain.ProposalStatusDefeated, nil)

	s.env.ExecuteWorkflow(s.worker.FinalizeProposal, uint64(7))

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var status domain.ProposalStatus
	s.NoError(s.env.GetWorkflowResult(&status))
	s.Equal(domain.ProposalStatusDefeated, status)
}

func (s *ProposalLifecycleWorkflowTestSuite) TestFinalizeProposal_Error() {
	s.env.OnActivity(s.executor.FinalizeProposal, mock.Anything, uint64(7)).
		Return(domain.ProposalStatus(""), domain.ErrProposalNotFound)

	s.env.ExecuteWorkflow(s.worker.FinalizeProposal, uint64(7))

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)
	s.Contains(err.Error(), "proposal not found")
}

func (s *ProposalLifecycleWorkflowTestSuite) TestExecuteProposalPipeline_Success() {
	s.env.OnActivity(s.executor.QueueProposal, mock.Anything, uint64(3)).
		Return(nil)
	s.env.OnActivity(s.executor.GetExecutionDelay, mock.Anything).
		Return(48*time.Hour, nil)
	s.env.OnActivity(s.executor.ExecuteProposal, mock.Anything, uint64(3)).
		Return(nil)

	s.env.ExecuteWorkflow(s.worker.ExecuteProposalPipeline, uint64(3))

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *ProposalLifecycleWorkflowTestSuite) TestExecuteProposalPipeline_WaitsOutTimelock() {
	executedAt := time.Time{}

	s.env.OnActivity(s.executor.QueueProposal, mock.Anything, uint64(3)).
		Return(nil)
	s.env.OnActivity(s.executor.GetExecutionDelay, mock.Anything).
		Return(48*time.Hour, nil)
	s.env.OnActivity(s.executor.ExecuteProposal, mock.Anything, uint64(3)).
		Return(nil).Run(func(args mock.Arguments) {
		executedAt = s.env.Now()
	})

	start := s.env.Now()
	s.env.ExecuteWorkflow(s.worker.ExecuteProposalPipeline, uint64(3))

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
	s.GreaterOrEqual(executedAt.Sub(start), 48*time.Hour)
}

func (s *ProposalLifecycleWorkflowTestSuite) TestExecuteProposalPipeline_QueueNotSucceeded() {
	s.env.OnActivity(s.executor.QueueProposal, mock.Anything, uint64(3)).
		Return(domain.ErrNotSucceeded)

	s.env.ExecuteWorkflow(s.worker.ExecuteProposalPipeline, uint64(3))

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)
	s.Contains(err.Error(), "has not succeeded")
}

func (s *ProposalLifecycleWorkflowTestSuite) TestExecuteProposalPipeline_ExecuteFails() {
	s.env.OnActivity(s.executor.QueueProposal, mock.Anything, uint64(3)).
		Return(nil)
	s.env.OnActivity(s.executor.GetExecutionDelay, mock.Anything).
		Return(time.Hour, nil)
	s.env.OnActivity(s.executor.ExecuteProposal, mock.Anything, uint64(3)).
		Return(errors.New("guardian paused governance"))

	s.env.ExecuteWorkflow(s.worker.ExecuteProposalPipeline, uint64(3))

	s.True(s.env.IsWorkflowCompleted())
	err := s.env.GetWorkflowError()
	s.Error(err)
	s.Contains(err.Error(), "guardian paused governance")
}
