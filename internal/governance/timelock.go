package governance

import (
	"time"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// ApproveWithdrawal records one signer's approval of a queued withdrawal.
// Approval counting is monotonic and deduplicated per signer: a single
// signer can never satisfy the threshold alone. Authorization against the
// signer set is the caller's responsibility (the Ledger checks roles).
func (t *Treasury) ApproveWithdrawal(id uint64, signer domain.Address) (*Withdrawal, error) {
	w, ok := t.withdrawals[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}

	switch w.Status {
	case domain.WithdrawalStatusExecuted:
		return nil, domain.ErrAlreadyExecuted
	case domain.WithdrawalStatusCanceled:
		return nil, domain.ErrWithdrawalCanceled
	}

	if w.approvals[signer] {
		return nil, domain.ErrAlreadyApproved
	}
	w.approvals[signer] = true

	if len(w.approvals) >= RequiredApprovals {
		w.Status = domain.WithdrawalStatusApproved
	}
	return w, nil
}

// ExecuteWithdrawal releases the funds once BOTH gates hold at this very
// moment: the timelock has elapsed (boundary inclusive) and the approval
// threshold is met. The withdrawal constraints are re-validated against
// the current balances and rolling window, not the ones seen at queue time.
func (t *Treasury) ExecuteWithdrawal(id uint64, now time.Time, timelock time.Duration) (*Withdrawal, error) {
	w, ok := t.withdrawals[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}

	switch w.Status {
	case domain.WithdrawalStatusExecuted:
		return nil, domain.ErrAlreadyExecuted
	case domain.WithdrawalStatusCanceled:
		return nil, domain.ErrWithdrawalCanceled
	}

	if now.Before(w.QueuedAt.Add(timelock)) {
		return nil, domain.ErrTimelockNotElapsed
	}
	if len(w.approvals) < RequiredApprovals {
		return nil, domain.ErrInsufficientApprovals
	}

	req := WithdrawalRequest{
		ProposalID: w.ProposalID,
		Token:      w.Token,
		Recipient:  w.Recipient,
		Amount:     w.Amount,
	}
	if violations := t.ValidateWithdrawalRequest(req, now); len(violations) > 0 {
		return nil, violations[0]
	}

	// All gates passed: move the funds and record the movement in the
	// rolling window in the same step.
	t.balances[w.Token] = t.Balance(w.Token).Sub(w.Amount)
	t.recent = append(t.recent, executedWithdrawal{at: now, amount: w.Amount})

	executedAt := now
	w.ExecutedAt = &executedAt
	w.Status = domain.WithdrawalStatusExecuted
	return w, nil
}

// CancelWithdrawal cancels a withdrawal that has not executed yet
func (t *Treasury) CancelWithdrawal(id uint64) (*Withdrawal, error) {
	w, ok := t.withdrawals[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	if w.Status == domain.WithdrawalStatusExecuted {
		return nil, domain.ErrAlreadyExecuted
	}
	w.Status = domain.WithdrawalStatusCanceled
	return w, nil
}
