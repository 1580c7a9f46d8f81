package governance

import (
	"time"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// RequiredApprovals is the multi-party approval threshold for treasury
// withdrawals: 3 signatures out of the fixed signer set of 5.
const RequiredApprovals = 3

// withdrawalWindow is the rolling window over which the daily
// withdrawal limit is enforced.
const withdrawalWindow = 24 * time.Hour

// Withdrawal is a queued treasury withdrawal. Every withdrawal is linked
// to the proposal that authorized it: no withdrawal exists without one.
type Withdrawal struct {
	ID         uint64
	ProposalID uint64
	Token      domain.Address
	Recipient  domain.Address
	Amount     domain.Amount
	Status     domain.WithdrawalStatus
	QueuedAt   time.Time
	ExecutedAt *time.Time

	// approvals is keyed by signer so one signer can never double-count
	approvals map[domain.Address]bool
}

// Approvals returns the number of distinct signers who approved
func (w *Withdrawal) Approvals() int {
	return len(w.approvals)
}

// ApprovedBy reports whether the signer already approved
func (w *Withdrawal) ApprovedBy(signer domain.Address) bool {
	return w.approvals[signer]
}

// WithdrawalRequest is the input to withdrawal validation
type WithdrawalRequest struct {
	ProposalID uint64
	Token      domain.Address
	Recipient  domain.Address
	Amount     domain.Amount
}

// Budget is a governance-approved spending allocation
type Budget struct {
	ID         uint64
	Category   string
	Amount     domain.Amount
	Spent      domain.Amount
	Approvers  []domain.Address
	Active     bool
	CreatedAt  time.Time
	ApprovedAt *time.Time
}

// Remaining returns the unspent part of the allocation
func (b *Budget) Remaining() domain.Amount {
	return b.Amount.Sub(b.Spent)
}

type executedWithdrawal struct {
	at     time.Time
	amount domain.Amount
}

// Treasury is the token balance ledger with withdrawal-limit enforcement.
// Every outbound transfer is linked to a governing proposal and passes
// through the timelocked multi-approval pipeline before funds move.
type Treasury struct {
	balances         map[domain.Address]domain.Amount
	withdrawals      map[uint64]*Withdrawal
	nextWithdrawalID uint64
	budgets          map[uint64]*Budget
	nextBudgetID     uint64

	SingleTransactionLimit domain.Amount
	DailyWithdrawalLimit   domain.Amount

	// recent holds executed withdrawals inside the rolling window
	recent []executedWithdrawal
}

// NewTreasury creates an empty treasury with the given limits
func NewTreasury(singleTxLimit, dailyLimit domain.Amount) *Treasury {
	return &Treasury{
		balances:         make(map[domain.Address]domain.Amount),
		withdrawals:      make(map[uint64]*Withdrawal),
		nextWithdrawalID: 1,
		budgets:          make(map[uint64]*Budget),
		nextBudgetID:     1,

		SingleTransactionLimit: singleTxLimit,
		DailyWithdrawalLimit:   dailyLimit,
	}
}

// Balance returns the treasury balance for a token
func (t *Treasury) Balance(token domain.Address) domain.Amount {
	b, ok := t.balances[token]
	if !ok {
		return domain.ZeroAmount()
	}
	return b
}

// Deposit credits the treasury balance for a token
func (t *Treasury) Deposit(token domain.Address, amount domain.Amount) {
	t.balances[token] = t.Balance(token).Add(amount)
}

// Withdrawal returns a queued withdrawal by id
func (t *Treasury) Withdrawal(id uint64) (*Withdrawal, bool) {
	w, ok := t.withdrawals[id]
	return w, ok
}

// BudgetCount returns the number of budgets ever created
func (t *Treasury) BudgetCount() uint64 {
	return t.nextBudgetID - 1
}

// Budget returns a budget by id
func (t *Treasury) Budget(id uint64) (*Budget, bool) {
	b, ok := t.budgets[id]
	return b, ok
}

// withdrawnWithin sums executed withdrawal amounts inside the rolling
// window ending at now, pruning entries that fell out of it.
func (t *Treasury) withdrawnWithin(now time.Time) domain.Amount {
	cutoff := now.Add(-withdrawalWindow)
	kept := t.recent[:0]
	sum := domain.ZeroAmount()
	for _, e := range t.recent {
		if e.at.After(cutoff) {
			kept = append(kept, e)
			sum = sum.Add(e.amount)
		}
	}
	t.recent = kept
	return sum
}

// ValidateWithdrawalRequest checks all withdrawal constraints and returns
// every violated one, not just the first, so a caller can surface all
// problems at once. An empty slice means the request is valid.
func (t *Treasury) ValidateWithdrawalRequest(req WithdrawalRequest, now time.Time) []error {
	var violations []error

	if req.ProposalID == 0 {
		violations = append(violations, domain.ErrMissingProposalLink)
	}
	if req.Amount.Cmp(t.SingleTransactionLimit) > 0 {
		violations = append(violations, domain.ErrExceedsSingleTxLimit)
	}
	if t.withdrawnWithin(now).Add(req.Amount).Cmp(t.DailyWithdrawalLimit) > 0 {
		violations = append(violations, domain.ErrExceedsDailyLimit)
	}
	if req.Amount.Cmp(t.Balance(req.Token)) > 0 {
		violations = append(violations, domain.ErrInsufficientBalance)
	}

	return violations
}

// QueueWithdrawal validates the request and places it in the timelock
// queue. The constraints are re-checked at execution time: passing here
// does not reserve funds.
func (t *Treasury) QueueWithdrawal(req WithdrawalRequest, now time.Time) (*Withdrawal, error) {
	if violations := t.ValidateWithdrawalRequest(req, now); len(violations) > 0 {
		return nil, violations[0]
	}

	w := &Withdrawal{
		ID:         t.nextWithdrawalID,
		ProposalID: req.ProposalID,
		Token:      req.Token,
		Recipient:  req.Recipient,
		Amount:     req.Amount,
		Status:     domain.WithdrawalStatusPending,
		QueuedAt:   now,
		approvals:  make(map[domain.Address]bool),
	}
	t.withdrawals[w.ID] = w
	t.nextWithdrawalID++
	return w, nil
}

// CreateBudget allocates a new spending budget in pending state
func (t *Treasury) CreateBudget(category string, amount domain.Amount, now time.Time) *Budget {
	b := &Budget{
		ID:        t.nextBudgetID,
		Category:  category,
		Amount:    amount,
		Spent:     domain.ZeroAmount(),
		CreatedAt: now,
	}
	t.budgets[b.ID] = b
	t.nextBudgetID++
	return b
}

// ApproveBudget activates a pending budget
func (t *Treasury) ApproveBudget(id uint64, approver domain.Address, now time.Time) (*Budget, error) {
	b, ok := t.budgets[id]
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	b.Approvers = append(b.Approvers, approver)
	b.Active = true
	approvedAt := now
	b.ApprovedAt = &approvedAt
	return b, nil
}
