package workflows_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/governance"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/mocks"
	"github.com/nexus-dao/nexus-governance/internal/workflows"
)

const (
	testAdmin    = "0xadmin000000000000000000000000000000000001"
	testOperator = "0x0000000000000000000000000000000000000042"
	testVoter    = "0x1111111111111111111111111111111111111111"
	testDelegate = "0x2222222222222222222222222222222222222222"
)

// testExecutorEnv drives the executor against a real in-memory ledger.
// The clock is controllable so tests can walk proposals through their
// voting window and timelock.
type testExecutorEnv struct {
	ctrl     *gomock.Controller
	now      time.Time
	ledger   *governance.Ledger
	executor workflows.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorEnv {
	err := logger.Initialize(logger.Config{
		Debug: true,
	})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	env := &testExecutorEnv{
		ctrl: ctrl,
		now:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().DoAndReturn(func() time.Time { return env.now }).AnyTimes()

	sink := mocks.NewMockEventSink(ctrl)
	sink.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ledger, err := governance.NewLedger(governance.Config{
		Chain:    domain.ChainEthereumSepolia,
		Contract: domain.NewAddress("0x3333333333333333333333333333333333333333"),
		Admin:    domain.NewAddress(testAdmin),
		Params:   governance.DefaultParams(),
	}, clock, sink)
	require.NoError(t, err)

	env.ledger = ledger
	env.executor = workflows.NewExecutor(ledger, workflows.ExecutorConfig{
		Operator: domain.NewAddress(testOperator),
	})
	return env
}

// registerActiveCitizen registers and approves a citizen with the given base power
func (env *testExecutorEnv) registerActiveCitizen(t *testing.T, wallet string, power int64) {
	ctx := context.Background()
	require.NoError(t, env.ledger.RegisterCitizen(ctx, domain.NewAddress(wallet), domain.NewAmount(power)))
	require.NoError(t, env.ledger.ApproveCitizenship(ctx, domain.NewAddress(testAdmin), domain.NewAddress(wallet)))
}

// createActiveProposal creates a proposal through an eligible proposer
func (env *testExecutorEnv) createActiveProposal(t *testing.T) uint64 {
	id, err := env.ledger.CreateProposal(context.Background(),
		domain.NewAddress(testVoter), "fund the grants program", domain.CategoryGeneral)
	require.NoError(t, err)
	return id
}

func TestCheckVoterEligibility_NotRegistered(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	result, err := env.executor.CheckVoterEligibility(context.Background(), testVoter)
	assert.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, "wallet is not a registered citizen", result.Reason)
	assert.Equal(t, "0", result.VotingPower)
}

func TestCheckVoterEligibility_PendingCitizen(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	err := env.ledger.RegisterCitizen(context.Background(), domain.NewAddress(testVoter), domain.NewAmount(100))
	require.NoError(t, err)

	result, err := env.executor.CheckVoterEligibility(context.Background(), testVoter)
	assert.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, "citizenship is not active", result.Reason)
}

func TestCheckVoterEligibility_ActiveCitizen(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	env.registerActiveCitizen(t, testVoter, 100)

	result, err := env.executor.CheckVoterEligibility(context.Background(), testVoter)
	assert.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.Empty(t, result.Reason)
	assert.Equal(t, "100", result.VotingPower)
}

func TestCheckVoterEligibility_DelegatedAway(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	env.registerActiveCitizen(t, testVoter, 100)
	env.registerActiveCitizen(t, testDelegate, 50)
	err := env.ledger.Delegate(context.Background(),
		domain.NewAddress(testVoter), domain.NewAddress(testDelegate))
	require.NoError(t, err)

	result, err := env.executor.CheckVoterEligibility(context.Background(), testVoter)
	assert.NoError(t, err)
	assert.False(t, result.Eligible)
	assert.Equal(t, "voting power is currently delegated", result.Reason)

	// The delegate now votes with the combined power
	result, err = env.executor.CheckVoterEligibility(context.Background(), testDelegate)
	assert.NoError(t, err)
	assert.True(t, result.Eligible)
	assert.Equal(t, "150", result.VotingPower)
}

func TestCheckProposalOpen(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	err := env.executor.CheckProposalOpen(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrProposalNotFound)

	env.registerActiveCitizen(t, testVoter, 100)
	id := env.createActiveProposal(t)

	assert.NoError(t, env.executor.CheckProposalOpen(context.Background(), id))

	// Past the voting window the proposal is no longer open
	env.now = env.now.Add(governance.DefaultParams().VotingWindow() + time.Hour)
	err = env.executor.CheckProposalOpen(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotActiveProposal)
}

func TestSubmitVoteAndHasVoted(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	env.registerActiveCitizen(t, testVoter, 100)
	id := env.createActiveProposal(t)

	voted, err := env.executor.HasVoted(context.Background(), id, testVoter)
	assert.NoError(t, err)
	assert.False(t, voted)

	err = env.executor.SubmitVote(context.Background(), workflows.VoteRequest{
		ProposalID: id,
		Voter:      testVoter,
		Support:    domain.VoteFor,
	})
	assert.NoError(t, err)

	voted, err = env.executor.HasVoted(context.Background(), id, testVoter)
	assert.NoError(t, err)
	assert.True(t, voted)

	// A second ballot from the same wallet is rejected
	err = env.executor.SubmitVote(context.Background(), workflows.VoteRequest{
		ProposalID: id,
		Voter:      testVoter,
		Support:    domain.VoteAgainst,
	})
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)
}

func TestFinalizeQueueExecuteProposal(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	env.registerActiveCitizen(t, testVoter, 100)
	id := env.createActiveProposal(t)

	err := env.executor.SubmitVote(context.Background(), workflows.VoteRequest{
		ProposalID: id,
		Voter:      testVoter,
		Support:    domain.VoteFor,
	})
	require.NoError(t, err)

	// Finalize before the window closes is rejected
	_, err = env.executor.FinalizeProposal(context.Background(), id)
	assert.Error(t, err)

	env.now = env.now.Add(governance.DefaultParams().VotingWindow() + time.Hour)

	status, err := env.executor.FinalizeProposal(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusSucceeded, status)

	assert.NoError(t, env.executor.QueueProposal(context.Background(), id))

	// Execute inside the timelock is rejected
	err = env.executor.ExecuteProposal(context.Background(), id)
	assert.Error(t, err)

	delay, err := env.executor.GetExecutionDelay(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, governance.DefaultParams().ExecutionDelay, delay)

	env.now = env.now.Add(delay + time.Second)
	assert.NoError(t, env.executor.ExecuteProposal(context.Background(), id))

	p, err := env.ledger.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusExecuted, p.State)
}

func TestFinalizeProposal_QuorumNotMet(t *testing.T) {
	env := setupTestExecutor(t)
	defer env.ctrl.Finish()

	// 100 of 2000 eligible power votes: 5%, below the 10% quorum
	env.registerActiveCitizen(t, testVoter, 100)
	env.registerActiveCitizen(t, testDelegate, 1900)
	id := env.createActiveProposal(t)

	err := env.executor.SubmitVote(context.Background(), workflows.VoteRequest{
		ProposalID: id,
		Voter:      testVoter,
		Support:    domain.VoteFor,
	})
	require.NoError(t, err)

	env.now = env.now.Add(governance.DefaultParams().VotingWindow() + time.Hour)

	status, err := env.executor.FinalizeProposal(context.Background(), id)
	assert.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusDefeated, status)
}
