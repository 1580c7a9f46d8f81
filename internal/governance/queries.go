package governance

import (
	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// ProposalView is a read-only snapshot of a proposal. Write-path callers
// that need read-your-write consistency query the ledger through these
// methods, never the projection.
type ProposalView struct {
	ID           uint64
	Proposer     domain.Address
	Description  string
	Category     domain.ProposalCategory
	State        domain.ProposalStatus
	ForVotes     domain.Amount
	AgainstVotes domain.Amount
	AbstainVotes domain.Amount
	StartTime    int64
	EndTime      int64
	QueuedAt     *int64
	ExecutedAt   *int64
}

// GetProposal returns a snapshot of a proposal, with its state derived
// from the current clock.
func (l *Ledger) GetProposal(id uint64) (*ProposalView, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.proposals.Get(id)
	if !ok {
		return nil, domain.ErrProposalNotFound
	}

	view := &ProposalView{
		ID:           p.ID,
		Proposer:     p.Proposer,
		Description:  p.Description,
		Category:     p.Category,
		State:        p.State(l.clock.Now(), l.registry.TotalEligiblePower(), l.params),
		ForVotes:     p.ForVotes,
		AgainstVotes: p.AgainstVotes,
		AbstainVotes: p.AbstainVotes,
		StartTime:    p.StartTime.Unix(),
		EndTime:      p.EndTime.Unix(),
	}
	if p.QueuedAt != nil {
		queuedAt := p.QueuedAt.Unix()
		view.QueuedAt = &queuedAt
	}
	if p.ExecutedAt != nil {
		executedAt := p.ExecutedAt.Unix()
		view.ExecutedAt = &executedAt
	}
	return view, nil
}

// GetProposalCount returns the number of proposals ever created
func (l *Ledger) GetProposalCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.proposals.Count()
}

// GetGovernanceParams returns the current governance parameters
func (l *Ledger) GetGovernanceParams() Params {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.params
}

// HasVoted reports whether the voter holds a vote record for the proposal
func (l *Ledger) HasVoted(proposalID uint64, voter domain.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.proposals.Get(proposalID)
	if !ok {
		return false, domain.ErrProposalNotFound
	}
	_, voted := p.VoteOf(voter)
	return voted, nil
}

// GetVotingPower resolves the wallet's effective power right now
func (l *Ledger) GetVotingPower(wallet domain.Address) domain.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.VotingPower(wallet)
}

// GetTotalCitizens returns the number of registered citizens
func (l *Ledger) GetTotalCitizens() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.TotalCitizens()
}

// GetCitizen returns a copy of the citizen record for a wallet
func (l *Ledger) GetCitizen(wallet domain.Address) (*Citizen, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.registry.Get(wallet)
	if !ok {
		return nil, domain.ErrNotCitizen
	}
	copied := *c
	return &copied, nil
}

// GetTreasuryBalance returns the treasury balance for a token
func (l *Ledger) GetTreasuryBalance(token domain.Address) domain.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.treasury.Balance(token)
}

// GetBudgetCount returns the number of budgets ever created
func (l *Ledger) GetBudgetCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.treasury.BudgetCount()
}

// GetWithdrawal returns a read-only copy of a queued withdrawal
func (l *Ledger) GetWithdrawal(id uint64) (*Withdrawal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.treasury.Withdrawal(id)
	if !ok {
		return nil, domain.ErrWithdrawalNotFound
	}
	copied := *w
	copied.approvals = make(map[domain.Address]bool, len(w.approvals))
	for signer := range w.approvals {
		copied.approvals[signer] = true
	}
	return &copied, nil
}

// HasRole reports whether the account holds the governance role
func (l *Ledger) HasRole(role domain.Role, account domain.Address) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.auth.HasRole(role, account)
}

// Paused reports whether governance writes are paused
func (l *Ledger) Paused() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.auth.Paused()
}

// TotalEligiblePower returns the quorum denominator
func (l *Ledger) TotalEligiblePower() domain.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.registry.TotalEligiblePower()
}
