package governance

import (
	"time"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// Vote is a cast ballot. The weight is snapshotted at cast time and is
// never re-derived: delegation changes after the cast do not touch it.
type Vote struct {
	Voter      domain.Address
	ProposalID uint64
	Support    domain.VoteSupport
	Weight     domain.Amount
	Timestamp  time.Time
}

// Proposal is a governance proposal and its vote tallies. Tallies only
// ever increase, and exactly one vote exists per voter.
type Proposal struct {
	ID          uint64
	Proposer    domain.Address
	Description string
	Category    domain.ProposalCategory

	// Status holds only explicitly committed transitions (canceled, queued,
	// executed, finalized outcomes). The current state is derived by State.
	Status domain.ProposalStatus

	ForVotes     domain.Amount
	AgainstVotes domain.Amount
	AbstainVotes domain.Amount

	StartTime  time.Time
	EndTime    time.Time
	QueuedAt   *time.Time
	ExecutedAt *time.Time
	CanceledAt *time.Time

	votes map[domain.Address]*Vote
}

// Turnout returns the total weighted turnout across all three tallies
func (p *Proposal) Turnout() domain.Amount {
	return p.ForVotes.Add(p.AgainstVotes).Add(p.AbstainVotes)
}

// VoteOf returns the vote cast by a voter, if any
func (p *Proposal) VoteOf(voter domain.Address) (*Vote, bool) {
	v, ok := p.votes[voter]
	return v, ok
}

// VoteCount returns the number of distinct voters
func (p *Proposal) VoteCount() int {
	return len(p.votes)
}

// succeeded evaluates both gates independently: strict majority of for
// over against, and weighted turnout meeting the category quorum against
// the total eligible power. Both must pass.
func (p *Proposal) succeeded(totalEligiblePower domain.Amount) bool {
	if p.ForVotes.Cmp(p.AgainstVotes) <= 0 {
		return false
	}
	return p.Turnout().MeetsBps(totalEligiblePower, p.Category.QuorumBps())
}

// State derives the proposal's current state from committed status, clock
// and tallies. Time-based transitions (Pending->Active, Active->outcome,
// Queued->Expired) need no transaction: they fall out of the derivation.
func (p *Proposal) State(now time.Time, totalEligiblePower domain.Amount, params Params) domain.ProposalStatus {
	switch p.Status {
	case domain.ProposalStatusCanceled, domain.ProposalStatusExecuted,
		domain.ProposalStatusDefeated, domain.ProposalStatusExpired:
		return p.Status
	case domain.ProposalStatusQueued:
		// Past the grace window a queued proposal can no longer execute
		if p.QueuedAt != nil && now.After(p.QueuedAt.Add(params.ExecutionDelay).Add(params.GracePeriod)) {
			return domain.ProposalStatusExpired
		}
		return domain.ProposalStatusQueued
	case domain.ProposalStatusSucceeded:
		return domain.ProposalStatusSucceeded
	}

	if now.Before(p.StartTime) {
		return domain.ProposalStatusPending
	}
	if !now.After(p.EndTime) {
		return domain.ProposalStatusActive
	}

	// Voting closed: evaluate quorum and majority
	if p.succeeded(totalEligiblePower) {
		return domain.ProposalStatusSucceeded
	}
	return domain.ProposalStatusDefeated
}

// CastVote records a ballot for the voter with the given snapshot weight.
// All preconditions are checked before any mutation so a failure leaves
// the tallies untouched.
func (p *Proposal) CastVote(voter domain.Address, support domain.VoteSupport, weight domain.Amount, now time.Time, totalEligiblePower domain.Amount, params Params) (*Vote, error) {
	if !support.Valid() {
		return nil, domain.ErrInvalidSupport
	}

	switch p.State(now, totalEligiblePower, params) {
	case domain.ProposalStatusActive:
		// proceed
	case domain.ProposalStatusPending:
		return nil, domain.ErrVotingNotStarted
	case domain.ProposalStatusSucceeded, domain.ProposalStatusDefeated:
		return nil, domain.ErrVotingClosed
	default:
		return nil, domain.ErrNotActiveProposal
	}

	if now.Before(p.StartTime) || now.After(p.EndTime) {
		return nil, domain.ErrVotingClosed
	}
	if _, voted := p.votes[voter]; voted {
		return nil, domain.ErrAlreadyVoted
	}
	if weight.IsZero() {
		return nil, domain.ErrNoVotingPower
	}

	vote := &Vote{
		Voter:      voter,
		ProposalID: p.ID,
		Support:    support,
		Weight:     weight,
		Timestamp:  now,
	}
	p.votes[voter] = vote

	switch support {
	case domain.VoteFor:
		p.ForVotes = p.ForVotes.Add(weight)
	case domain.VoteAgainst:
		p.AgainstVotes = p.AgainstVotes.Add(weight)
	case domain.VoteAbstain:
		p.AbstainVotes = p.AbstainVotes.Add(weight)
	}

	return vote, nil
}

// Finalize commits the post-voting outcome into the stored status.
// It is a no-op error before the voting window closes, and a replay
// error once an outcome has been committed.
func (p *Proposal) Finalize(now time.Time, totalEligiblePower domain.Amount, params Params) (domain.ProposalStatus, error) {
	// Anything beyond the open statuses is already committed; without
	// this guard a committed Succeeded would re-commit and re-emit.
	switch p.Status {
	case domain.ProposalStatusPending, domain.ProposalStatusActive:
	default:
		return p.Status, domain.ErrProposalTerminal
	}

	state := p.State(now, totalEligiblePower, params)
	switch state {
	case domain.ProposalStatusSucceeded, domain.ProposalStatusDefeated:
		p.Status = state
		return state, nil
	case domain.ProposalStatusPending, domain.ProposalStatusActive:
		return state, domain.ErrNotActiveProposal
	default:
		return state, domain.ErrProposalTerminal
	}
}

// Queue moves a succeeded proposal into the timelock queue
func (p *Proposal) Queue(now time.Time, totalEligiblePower domain.Amount, params Params) error {
	if p.State(now, totalEligiblePower, params) != domain.ProposalStatusSucceeded {
		return domain.ErrNotSucceeded
	}
	queuedAt := now
	p.QueuedAt = &queuedAt
	p.Status = domain.ProposalStatusQueued
	return nil
}

// Execute marks a queued proposal as executed once the timelock has
// elapsed (boundary inclusive) and the grace window has not closed.
// Re-execution is an explicit replay error.
func (p *Proposal) Execute(now time.Time, params Params) error {
	if p.Status == domain.ProposalStatusExecuted {
		return domain.ErrAlreadyExecuted
	}
	if p.Status != domain.ProposalStatusQueued || p.QueuedAt == nil {
		return domain.ErrNotQueued
	}

	eta := p.QueuedAt.Add(params.ExecutionDelay)
	if now.Before(eta) {
		return domain.ErrTimelockNotElapsed
	}
	if now.After(eta.Add(params.GracePeriod)) {
		p.Status = domain.ProposalStatusExpired
		return domain.ErrGracePeriodExpired
	}

	executedAt := now
	p.ExecutedAt = &executedAt
	p.Status = domain.ProposalStatusExecuted
	return nil
}

// Cancel marks the proposal canceled. Only the original proposer may
// cancel, and only while the proposal is not terminal.
func (p *Proposal) Cancel(actor domain.Address, now time.Time, totalEligiblePower domain.Amount, params Params) error {
	if actor != p.Proposer {
		return domain.ErrNotProposer
	}
	state := p.State(now, totalEligiblePower, params)
	if state.Terminal() {
		if state == domain.ProposalStatusExecuted {
			return domain.ErrAlreadyExecuted
		}
		return domain.ErrProposalTerminal
	}

	canceledAt := now
	p.CanceledAt = &canceledAt
	p.Status = domain.ProposalStatusCanceled
	return nil
}

// ProposalBook owns the proposal collection and the monotonically
// increasing id sequence.
type ProposalBook struct {
	proposals map[uint64]*Proposal
	nextID    uint64
}

// NewProposalBook creates an empty proposal book. IDs start at 1.
func NewProposalBook() *ProposalBook {
	return &ProposalBook{
		proposals: make(map[uint64]*Proposal),
		nextID:    1,
	}
}

// Get returns a proposal by id
func (b *ProposalBook) Get(id uint64) (*Proposal, bool) {
	p, ok := b.proposals[id]
	return p, ok
}

// Count returns the number of proposals ever created
func (b *ProposalBook) Count() uint64 {
	return b.nextID - 1
}

// Create allocates the next sequential id and opens the voting window
// at now for the configured voting period.
func (b *ProposalBook) Create(proposer domain.Address, description string, category domain.ProposalCategory, now time.Time, params Params) (*Proposal, error) {
	if !category.Valid() {
		return nil, domain.ErrInvalidCategory
	}

	p := &Proposal{
		ID:           b.nextID,
		Proposer:     proposer,
		Description:  description,
		Category:     category,
		Status:       domain.ProposalStatusPending,
		ForVotes:     domain.ZeroAmount(),
		AgainstVotes: domain.ZeroAmount(),
		AbstainVotes: domain.ZeroAmount(),
		StartTime:    now,
		EndTime:      now.Add(params.VotingWindow()),
		votes:        make(map[domain.Address]*Vote),
	}
	b.proposals[p.ID] = p
	b.nextID++
	return p, nil
}
