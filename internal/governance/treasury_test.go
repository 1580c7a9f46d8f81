package governance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/governance"
)

// treasuryEnv extends the ledger env with three signers and a succeeded,
// queued treasury proposal ready for a linked withdrawal.
func newTreasuryEnv(t *testing.T, mutate ...func(*governance.Config)) *ledgerEnv {
	env := newLedgerEnv(t, mutate...)
	ctx := context.Background()

	for _, signer := range []string{testBob, testCarol, testDave} {
		require.NoError(t, env.ledger.GrantRole(ctx, domain.NewAddress(testAdmin), domain.RoleSigner, domain.NewAddress(signer)))
	}
	env.activateCitizen(t, testAlice, 400)
	env.activateCitizen(t, testBob, 600)
	return env
}

// queueTreasuryProposal walks a treasury proposal through voting and into
// the timelock queue, returning its id.
func (env *ledgerEnv) queueTreasuryProposal(t *testing.T) uint64 {
	ctx := context.Background()
	id := env.createProposal(t, testAlice, domain.CategoryTreasury)
	require.NoError(t, env.ledger.CastVote(ctx, domain.NewAddress(testAlice), id, domain.VoteFor))
	env.closeVoting()
	require.NoError(t, env.ledger.QueueProposal(ctx, domain.NewAddress(testAlice), id))
	return id
}

func TestDeposit(t *testing.T) {
	env := newLedgerEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(500)))
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testBob), domain.NewAddress(testToken), domain.NewAmount(250)))
	assert.Equal(t, "750", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())

	e := env.lastEvent(t)
	assert.Equal(t, domain.EventTypeDeposit, e.EventType)
	assert.Equal(t, domain.NewAddress(testBob), e.Treasury.From)
	assert.Equal(t, domain.NewAddress(testContract), e.Treasury.To)

	// Inbound funds are accepted even under emergency pause
	require.NoError(t, env.ledger.Pause(ctx, domain.NewAddress(testAdmin)))
	assert.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(10)))
	assert.Equal(t, "760", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())
}

func TestQueueWithdrawal(t *testing.T) {
	env := newTreasuryEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	proposalID := env.queueTreasuryProposal(t)
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(2000)))

	req := governance.WithdrawalRequest{
		ProposalID: proposalID,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(500),
	}

	_, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAlice), req)
	assert.ErrorIs(t, err, domain.ErrNotAdministrator)

	missing := req
	missing.ProposalID = 42
	_, err = env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), missing)
	assert.ErrorIs(t, err, domain.ErrProposalNotFound)

	oversized := req
	oversized.Amount = domain.NewAmount(1001)
	_, err = env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), oversized)
	assert.ErrorIs(t, err, domain.ErrExceedsSingleTxLimit)

	id, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), req)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)

	w, err := env.ledger.GetWithdrawal(id)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusPending, w.Status)
	assert.Equal(t, proposalID, w.ProposalID)

	e := env.lastEvent(t)
	assert.Equal(t, domain.EventTypeWithdrawalQueued, e.EventType)
	assert.Equal(t, id, e.Treasury.WithdrawalID)
	assert.Equal(t, domain.NewAddress(testCarol), e.Treasury.To)
}

func TestValidateWithdrawalRequest_AllViolations(t *testing.T) {
	treasury := governance.NewTreasury(domain.NewAmount(1000), domain.NewAmount(5000))
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	// A request breaking every constraint reports every violation
	violations := treasury.ValidateWithdrawalRequest(governance.WithdrawalRequest{
		ProposalID: 0,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(6000),
	}, now)

	require.Len(t, violations, 4)
	assert.ErrorIs(t, violations[0], domain.ErrMissingProposalLink)
	assert.ErrorIs(t, violations[1], domain.ErrExceedsSingleTxLimit)
	assert.ErrorIs(t, violations[2], domain.ErrExceedsDailyLimit)
	assert.ErrorIs(t, violations[3], domain.ErrInsufficientBalance)

	treasury.Deposit(domain.NewAddress(testToken), domain.NewAmount(10000))
	violations = treasury.ValidateWithdrawalRequest(governance.WithdrawalRequest{
		ProposalID: 1,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(500),
	}, now)
	assert.Empty(t, violations)
}

func TestApproveWithdrawal(t *testing.T) {
	env := newTreasuryEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	proposalID := env.queueTreasuryProposal(t)
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(2000)))
	id, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), governance.WithdrawalRequest{
		ProposalID: proposalID,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(500),
	})
	require.NoError(t, err)

	// Approvals are restricted to the signer set
	err = env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testAlice), id)
	assert.ErrorIs(t, err, domain.ErrNotAuthorizedSigner)

	err = env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testBob), 42)
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)

	require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testBob), id))

	// One signer cannot count twice
	err = env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testBob), id)
	assert.ErrorIs(t, err, domain.ErrAlreadyApproved)

	w, err := env.ledger.GetWithdrawal(id)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Approvals())
	assert.Equal(t, domain.WithdrawalStatusPending, w.Status)

	require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testCarol), id))
	require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testDave), id))

	// The third distinct signature trips the threshold
	w, err = env.ledger.GetWithdrawal(id)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Approvals())
	assert.Equal(t, domain.WithdrawalStatusApproved, w.Status)
	assert.True(t, w.ApprovedBy(domain.NewAddress(testBob)))
	assert.False(t, w.ApprovedBy(domain.NewAddress(testAlice)))
}

func TestExecuteProposal_LinkedWithdrawal(t *testing.T) {
	env := newTreasuryEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	proposalID := env.queueTreasuryProposal(t)
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(2000)))
	withdrawalID, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), governance.WithdrawalRequest{
		ProposalID: proposalID,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(500),
	})
	require.NoError(t, err)

	delay := env.ledger.GetGovernanceParams().ExecutionDelay
	env.now = env.now.Add(delay)

	// Two approvals are not enough, no matter how long the timelock waited
	require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testBob), withdrawalID))
	require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testCarol), withdrawalID))
	err = env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), proposalID)
	assert.ErrorIs(t, err, domain.ErrInsufficientApprovals)

	require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testDave), withdrawalID))

	before := len(env.events)
	require.NoError(t, env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), proposalID))

	// Proposal execution and the fund movement land in one transaction
	require.Equal(t, before+3, len(env.events))
	assert.Equal(t, domain.EventTypeProposalExecuted, env.events[before].EventType)
	assert.Equal(t, domain.EventTypeWithdrawalExecuted, env.events[before+1].EventType)
	assert.Equal(t, domain.EventTypeWithdrawal, env.events[before+2].EventType)
	assert.Equal(t, env.events[before].TxHash, env.events[before+2].TxHash)
	assert.Equal(t, uint64(2), env.events[before+2].Position.LogIndex)

	assert.Equal(t, "1500", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())
	w, err := env.ledger.GetWithdrawal(withdrawalID)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusExecuted, w.Status)
	require.NotNil(t, w.ExecutedAt)

	p, err := env.ledger.GetProposal(proposalID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusExecuted, p.State)
}

func TestExecuteProposal_TimelockGatesLinkedWithdrawal(t *testing.T) {
	env := newTreasuryEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	proposalID := env.queueTreasuryProposal(t)
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(2000)))
	withdrawalID, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), governance.WithdrawalRequest{
		ProposalID: proposalID,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(500),
	})
	require.NoError(t, err)

	for _, signer := range []string{testBob, testCarol, testDave} {
		require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(signer), withdrawalID))
	}

	// Fully approved but still inside the timelock
	err = env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), proposalID)
	assert.ErrorIs(t, err, domain.ErrTimelockNotElapsed)
	assert.Equal(t, "2000", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())
}

func TestCancelProposal_CancelsLinkedWithdrawal(t *testing.T) {
	env := newTreasuryEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	proposalID := env.queueTreasuryProposal(t)
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(2000)))
	withdrawalID, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), governance.WithdrawalRequest{
		ProposalID: proposalID,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(500),
	})
	require.NoError(t, err)

	before := len(env.events)
	require.NoError(t, env.ledger.CancelProposal(ctx, domain.NewAddress(testAlice), proposalID))

	// Canceling the proposal takes the pending withdrawal down with it,
	// in one transaction
	require.Equal(t, before+2, len(env.events))
	assert.Equal(t, domain.EventTypeProposalCanceled, env.events[before].EventType)
	assert.Equal(t, domain.EventTypeWithdrawalCanceled, env.events[before+1].EventType)
	assert.Equal(t, env.events[before].TxHash, env.events[before+1].TxHash)
	assert.Equal(t, withdrawalID, env.events[before+1].Treasury.WithdrawalID)
	assert.Equal(t, domain.NewAddress(testCarol), env.events[before+1].Treasury.To)

	w, err := env.ledger.GetWithdrawal(withdrawalID)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusCanceled, w.Status)

	// The canceled withdrawal is dead: no approvals, no funds moved
	err = env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(testBob), withdrawalID)
	assert.ErrorIs(t, err, domain.ErrWithdrawalCanceled)
	assert.Equal(t, "2000", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())
}

func TestExecuteProposal_LateQueuedWithdrawalKeepsOwnTimelock(t *testing.T) {
	env := newTreasuryEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	proposalID := env.queueTreasuryProposal(t)
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(2000)))

	// The withdrawal is queued long after the proposal entered the queue,
	// so its timelock runs on its own clock
	delay := env.ledger.GetGovernanceParams().ExecutionDelay
	env.now = env.now.Add(delay - time.Hour)
	withdrawalID, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), governance.WithdrawalRequest{
		ProposalID: proposalID,
		Token:      domain.NewAddress(testToken),
		Recipient:  domain.NewAddress(testCarol),
		Amount:     domain.NewAmount(500),
	})
	require.NoError(t, err)
	for _, signer := range []string{testBob, testCarol, testDave} {
		require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(signer), withdrawalID))
	}

	// The proposal's own timelock has elapsed; the withdrawal's has not
	env.now = env.now.Add(time.Hour)
	err = env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), proposalID)
	assert.ErrorIs(t, err, domain.ErrTimelockNotElapsed)
	assert.Equal(t, "2000", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())

	env.now = env.now.Add(delay - time.Hour)
	require.NoError(t, env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), proposalID))
	assert.Equal(t, "1500", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())

	w, err := env.ledger.GetWithdrawal(withdrawalID)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusExecuted, w.Status)
}

func TestExecuteProposal_DailyLimitRollbackAndRollingWindow(t *testing.T) {
	env := newTreasuryEnv(t, func(cfg *governance.Config) {
		cfg.DailyWithdrawalLimit = domain.NewAmount(1500)
	})
	defer env.ctrl.Finish()
	ctx := context.Background()

	first := env.queueTreasuryProposal(t)
	second := env.queueTreasuryProposal(t)
	require.NoError(t, env.ledger.Deposit(ctx, domain.NewAddress(testAlice), domain.NewAddress(testToken), domain.NewAmount(5000)))

	queueLinked := func(proposalID uint64) uint64 {
		id, err := env.ledger.QueueWithdrawal(ctx, domain.NewAddress(testAdmin), governance.WithdrawalRequest{
			ProposalID: proposalID,
			Token:      domain.NewAddress(testToken),
			Recipient:  domain.NewAddress(testCarol),
			Amount:     domain.NewAmount(800),
		})
		require.NoError(t, err)
		for _, signer := range []string{testBob, testCarol, testDave} {
			require.NoError(t, env.ledger.ApproveWithdrawal(ctx, domain.NewAddress(signer), id))
		}
		return id
	}
	w1 := queueLinked(first)
	w2 := queueLinked(second)

	env.now = env.now.Add(env.ledger.GetGovernanceParams().ExecutionDelay)
	require.NoError(t, env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), first))
	assert.Equal(t, "4200", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())

	// The second withdrawal would push the 24h total to 1600 > 1500.
	// The proposal gates all pass, so the failure must roll the proposal
	// back to queued with nothing else changed.
	err := env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), second)
	assert.ErrorIs(t, err, domain.ErrExceedsDailyLimit)

	p, err := env.ledger.GetProposal(second)
	require.NoError(t, err)
	assert.Equal(t, domain.ProposalStatusQueued, p.State)
	assert.Nil(t, p.ExecutedAt)
	assert.Equal(t, "4200", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())

	// Once the first execution rolls out of the window, it goes through
	env.now = env.now.Add(25 * time.Hour)
	require.NoError(t, env.ledger.ExecuteProposal(ctx, domain.NewAddress(testAlice), second))
	assert.Equal(t, "3400", env.ledger.GetTreasuryBalance(domain.NewAddress(testToken)).String())

	w, err := env.ledger.GetWithdrawal(w1)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusExecuted, w.Status)
	w, err = env.ledger.GetWithdrawal(w2)
	require.NoError(t, err)
	assert.Equal(t, domain.WithdrawalStatusExecuted, w.Status)
}

func TestBudgets(t *testing.T) {
	env := newLedgerEnv(t)
	defer env.ctrl.Finish()
	ctx := context.Background()

	_, err := env.ledger.CreateBudget(ctx, domain.NewAddress(testAlice), "grants", domain.NewAmount(1000))
	assert.ErrorIs(t, err, domain.ErrNotAdministrator)

	id, err := env.ledger.CreateBudget(ctx, domain.NewAddress(testAdmin), "grants", domain.NewAmount(1000))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), id)
	assert.Equal(t, uint64(1), env.ledger.GetBudgetCount())

	e := env.lastEvent(t)
	assert.Equal(t, domain.EventTypeBudgetCreated, e.EventType)
	assert.Equal(t, "grants", e.Treasury.BudgetCategory)

	err = env.ledger.ApproveBudget(ctx, domain.NewAddress(testAdmin), 42)
	assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)

	require.NoError(t, env.ledger.ApproveBudget(ctx, domain.NewAddress(testAdmin), id))
	e = env.lastEvent(t)
	assert.Equal(t, domain.EventTypeBudgetApproved, e.EventType)
	assert.Equal(t, domain.NewAddress(testAdmin), e.Treasury.Approver)
}
