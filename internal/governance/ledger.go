package governance

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// EventSink receives the ordered event log emitted by the ledger. The
// projection and the audit log consume these events downstream; delivery
// is at-least-once, so consumers must be idempotent.
//
//go:generate mockgen -source=ledger.go -destination=../mocks/event_sink.go -package=mocks -mock_names=EventSink=MockEventSink
type EventSink interface {
	Append(ctx context.Context, event *domain.GovernanceEvent) error
}

// Config holds the ledger configuration
type Config struct {
	Chain    domain.Chain
	Contract domain.Address
	Admin    domain.Address
	Params   Params

	SingleTransactionLimit domain.Amount
	DailyWithdrawalLimit   domain.Amount
}

// Ledger is the write-path aggregate: the identity registry, delegation
// graph, proposal state machine, timelock pipeline and treasury behind a
// single serialized writer. The substrate orders one transaction at a
// time, which the mutex models; failed operations leave no partial state.
type Ledger struct {
	mu    sync.Mutex
	clock adapter.Clock
	sink  EventSink

	registry  *Registry
	proposals *ProposalBook
	treasury  *Treasury
	auth      *AuthState
	params    Params

	chain    domain.Chain
	contract domain.Address

	// height advances once per committed operation; logIndex orders the
	// events emitted within it. Together they form the event Position.
	height uint64
}

// NewLedger creates a governance ledger with the given configuration
func NewLedger(cfg Config, clock adapter.Clock, sink EventSink) (*Ledger, error) {
	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid governance params: %w", err)
	}

	return &Ledger{
		clock:     clock,
		sink:      sink,
		registry:  NewRegistry(),
		proposals: NewProposalBook(),
		treasury:  NewTreasury(cfg.SingleTransactionLimit, cfg.DailyWithdrawalLimit),
		auth:      NewAuthState(cfg.Admin),
		params:    cfg.Params,
		chain:     cfg.Chain,
		contract:  cfg.Contract,
		height:    1,
	}, nil
}

// emit stamps and appends the events of one committed operation. All
// events share the operation's block height; the log index orders them
// within it.
func (l *Ledger) emit(ctx context.Context, actor domain.Address, events ...*domain.GovernanceEvent) error {
	txHash := "0x" + uuid.NewString()
	now := l.clock.Now()

	for i, e := range events {
		e.Chain = l.chain
		e.Contract = l.contract
		e.Position = domain.Position{BlockNumber: l.height, LogIndex: uint64(i)}
		e.TxHash = txHash
		e.Actor = actor
		e.Timestamp = now

		if err := l.sink.Append(ctx, e); err != nil {
			return fmt.Errorf("failed to append event %s: %w", e.EventType, err)
		}
	}

	l.height++
	return nil
}

// guard rejects writes while governance is paused
func (l *Ledger) guard() error {
	if l.auth.Paused() {
		return domain.ErrPaused
	}
	return nil
}

// RegisterCitizen creates a pending citizen record for the wallet
func (l *Ledger) RegisterCitizen(ctx context.Context, wallet domain.Address, basePower domain.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}

	c, err := l.registry.Register(wallet, basePower, l.clock.Now())
	if err != nil {
		return err
	}

	return l.emit(ctx, wallet, &domain.GovernanceEvent{
		EventType: domain.EventTypeCitizenRegistered,
		Citizen:   &domain.CitizenPayload{Wallet: c.Wallet, BasePower: c.BasePower},
	})
}

// ApproveCitizenship activates a pending citizen. Administrator only.
func (l *Ledger) ApproveCitizenship(ctx context.Context, actor, wallet domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}

	c, err := l.registry.Approve(wallet)
	if err != nil {
		return err
	}
	l.auth.GrantRole(domain.RoleCitizen, wallet)

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeCitizenshipApproved,
		Citizen:   &domain.CitizenPayload{Wallet: c.Wallet, BasePower: c.BasePower},
	})
}

// RevokeCitizenship deactivates a citizen. Administrator only.
func (l *Ledger) RevokeCitizenship(ctx context.Context, actor, wallet domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}

	c, err := l.registry.Revoke(wallet)
	if err != nil {
		return err
	}
	l.auth.RevokeRole(domain.RoleCitizen, wallet)

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeCitizenshipRevoked,
		Citizen:   &domain.CitizenPayload{Wallet: c.Wallet, BasePower: c.BasePower},
	})
}

// Delegate moves the actor's base power to the delegate
func (l *Ledger) Delegate(ctx context.Context, actor, to domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}

	power, err := l.registry.Delegate(actor, to)
	if err != nil {
		return err
	}

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypePowerDelegated,
		Citizen: &domain.CitizenPayload{
			Wallet:         actor,
			Delegate:       to,
			DelegatedPower: power,
		},
	})
}

// RemoveDelegation returns the actor's base power to direct control
func (l *Ledger) RemoveDelegation(ctx context.Context, actor domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}

	to, power, err := l.registry.RemoveDelegation(actor)
	if err != nil {
		return err
	}

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeDelegationRevoked,
		Citizen: &domain.CitizenPayload{
			Wallet:         actor,
			Delegate:       to,
			DelegatedPower: power,
		},
	})
}

// CreateProposal allocates the next proposal id and opens voting. The
// proposer must hold at least the proposal threshold of effective power
// or carry the delegate role.
func (l *Ledger) CreateProposal(ctx context.Context, actor domain.Address, description string, category domain.ProposalCategory) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return 0, err
	}

	power := l.registry.VotingPower(actor)
	if power.Cmp(l.params.ProposalThreshold) < 0 && !l.auth.HasRole(domain.RoleDelegate, actor) {
		return 0, domain.ErrBelowProposalThreshold
	}

	p, err := l.proposals.Create(actor, description, category, l.clock.Now(), l.params)
	if err != nil {
		return 0, err
	}

	if c, ok := l.registry.Get(actor); ok {
		c.TotalProposalsCreated++
	}

	err = l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeProposalCreated,
		Proposal: &domain.ProposalPayload{
			ProposalID:  p.ID,
			Proposer:    p.Proposer,
			Description: p.Description,
			Category:    p.Category,
			StartTime:   p.StartTime.Unix(),
			EndTime:     p.EndTime.Unix(),
		},
	})
	if err != nil {
		return 0, err
	}
	return p.ID, nil
}

// CastVote records the actor's ballot with their effective power
// snapshotted at this instant.
func (l *Ledger) CastVote(ctx context.Context, actor domain.Address, proposalID uint64, support domain.VoteSupport) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}

	p, ok := l.proposals.Get(proposalID)
	if !ok {
		return domain.ErrProposalNotFound
	}

	voter, ok := l.registry.Get(actor)
	if !ok || voter.Status != domain.CitizenStatusActive {
		return domain.ErrNotEligible
	}

	weight := voter.EffectivePower()
	vote, err := p.CastVote(actor, support, weight, l.clock.Now(), l.registry.TotalEligiblePower(), l.params)
	if err != nil {
		return err
	}
	voter.TotalVotesCast++

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeVoteCast,
		Vote: &domain.VotePayload{
			ProposalID: proposalID,
			Voter:      actor,
			Support:    vote.Support,
			Weight:     vote.Weight,
		},
	})
}

// CancelProposal cancels a non-terminal proposal. Proposer only.
func (l *Ledger) CancelProposal(ctx context.Context, actor domain.Address, proposalID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}

	p, ok := l.proposals.Get(proposalID)
	if !ok {
		return domain.ErrProposalNotFound
	}

	if err := p.Cancel(actor, l.clock.Now(), l.registry.TotalEligiblePower(), l.params); err != nil {
		return err
	}

	events := []*domain.GovernanceEvent{{
		EventType: domain.EventTypeProposalCanceled,
		Proposal:  &domain.ProposalPayload{ProposalID: proposalID},
	}}

	// A withdrawal has no purpose without its governing proposal; cancel
	// it in the same step so it cannot linger pending forever.
	if linked := l.withdrawalForProposal(proposalID); linked != nil {
		w, err := l.treasury.CancelWithdrawal(linked.ID)
		if err != nil {
			return err
		}
		events = append(events, &domain.GovernanceEvent{
			EventType: domain.EventTypeWithdrawalCanceled,
			Treasury: &domain.TreasuryPayload{
				WithdrawalID: w.ID,
				ProposalID:   w.ProposalID,
				Token:        w.Token,
				Amount:       w.Amount,
				To:           w.Recipient,
			},
		})
	}

	return l.emit(ctx, actor, events...)
}

// FinalizeProposal commits the post-voting outcome of a proposal,
// emitting the corresponding status change.
func (l *Ledger) FinalizeProposal(ctx context.Context, actor domain.Address, proposalID uint64) (domain.ProposalStatus, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.proposals.Get(proposalID)
	if !ok {
		return "", domain.ErrProposalNotFound
	}

	old := p.Status
	outcome, err := p.Finalize(l.clock.Now(), l.registry.TotalEligiblePower(), l.params)
	if err != nil {
		return outcome, err
	}

	err = l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeProposalStatusChanged,
		Proposal: &domain.ProposalPayload{
			ProposalID: proposalID,
			OldStatus:  old,
			NewStatus:  outcome,
		},
	})
	if err != nil {
		return outcome, err
	}
	return outcome, nil
}

// QueueProposal moves a succeeded proposal into the timelock queue
func (l *Ledger) QueueProposal(ctx context.Context, actor domain.Address, proposalID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}

	p, ok := l.proposals.Get(proposalID)
	if !ok {
		return domain.ErrProposalNotFound
	}

	if err := p.Queue(l.clock.Now(), l.registry.TotalEligiblePower(), l.params); err != nil {
		return err
	}

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeProposalQueued,
		Proposal: &domain.ProposalPayload{
			ProposalID: proposalID,
			ETA:        p.QueuedAt.Add(l.params.ExecutionDelay).Unix(),
		},
	})
}

// ExecuteProposal executes a queued proposal once the timelock has
// elapsed. For treasury proposals with a linked withdrawal, the
// multi-approval threshold and fund movement are checked and applied in
// the same atomic step.
func (l *Ledger) ExecuteProposal(ctx context.Context, actor domain.Address, proposalID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}

	p, ok := l.proposals.Get(proposalID)
	if !ok {
		return domain.ErrProposalNotFound
	}

	now := l.clock.Now()
	linked := l.withdrawalForProposal(proposalID)

	// Check every gate before mutating anything so a failure has no
	// partial effect on either the proposal or the treasury.
	if linked != nil {
		if p.Status == domain.ProposalStatusExecuted {
			return domain.ErrAlreadyExecuted
		}
		if p.Status != domain.ProposalStatusQueued || p.QueuedAt == nil {
			return domain.ErrNotQueued
		}
		if now.Before(p.QueuedAt.Add(l.params.ExecutionDelay)) {
			return domain.ErrTimelockNotElapsed
		}
		// The withdrawal carries its own timelock from its QueuedAt. A
		// withdrawal queued after the proposal entered the queue must
		// still wait out the full delay.
		if now.Before(linked.QueuedAt.Add(l.params.ExecutionDelay)) {
			return domain.ErrTimelockNotElapsed
		}
		if linked.Approvals() < RequiredApprovals {
			return domain.ErrInsufficientApprovals
		}
	}

	if err := p.Execute(now, l.params); err != nil {
		return err
	}

	events := []*domain.GovernanceEvent{{
		EventType: domain.EventTypeProposalExecuted,
		Proposal:  &domain.ProposalPayload{ProposalID: proposalID},
	}}

	if linked != nil {
		w, err := l.treasury.ExecuteWithdrawal(linked.ID, now, l.params.ExecutionDelay)
		if err != nil {
			// The proposal gates passed but the treasury constraints did
			// not; roll the proposal back to queued to keep atomicity.
			p.Status = domain.ProposalStatusQueued
			p.ExecutedAt = nil
			return err
		}
		events = append(events,
			&domain.GovernanceEvent{
				EventType: domain.EventTypeWithdrawalExecuted,
				Treasury: &domain.TreasuryPayload{
					WithdrawalID: w.ID,
					ProposalID:   w.ProposalID,
					Token:        w.Token,
					Amount:       w.Amount,
					To:           w.Recipient,
				},
			},
			&domain.GovernanceEvent{
				EventType: domain.EventTypeWithdrawal,
				Treasury: &domain.TreasuryPayload{
					ProposalID: w.ProposalID,
					Token:      w.Token,
					Amount:     w.Amount,
					From:       l.contract,
					To:         w.Recipient,
				},
			},
		)
	}

	return l.emit(ctx, actor, events...)
}

// withdrawalForProposal finds the pending withdrawal linked to a proposal
func (l *Ledger) withdrawalForProposal(proposalID uint64) *Withdrawal {
	for id := uint64(1); id < l.treasury.nextWithdrawalID; id++ {
		w := l.treasury.withdrawals[id]
		if w.ProposalID == proposalID && w.Status != domain.WithdrawalStatusCanceled &&
			w.Status != domain.WithdrawalStatusExecuted {
			return w
		}
	}
	return nil
}

// QueueWithdrawal queues a treasury withdrawal under a governing
// proposal. Administrator only; the proposal must exist.
func (l *Ledger) QueueWithdrawal(ctx context.Context, actor domain.Address, req WithdrawalRequest) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return 0, err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return 0, domain.ErrNotAdministrator
	}
	if _, ok := l.proposals.Get(req.ProposalID); !ok {
		return 0, domain.ErrProposalNotFound
	}

	w, err := l.treasury.QueueWithdrawal(req, l.clock.Now())
	if err != nil {
		return 0, err
	}

	err = l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeWithdrawalQueued,
		Treasury: &domain.TreasuryPayload{
			WithdrawalID: w.ID,
			ProposalID:   w.ProposalID,
			Token:        w.Token,
			Amount:       w.Amount,
			To:           w.Recipient,
		},
	})
	if err != nil {
		return 0, err
	}
	return w.ID, nil
}

// ApproveWithdrawal records one authorized signer's approval
func (l *Ledger) ApproveWithdrawal(ctx context.Context, actor domain.Address, withdrawalID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleSigner, actor) {
		return domain.ErrNotAuthorizedSigner
	}

	w, err := l.treasury.ApproveWithdrawal(withdrawalID, actor)
	if err != nil {
		return err
	}

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeWithdrawalApproved,
		Treasury: &domain.TreasuryPayload{
			WithdrawalID: w.ID,
			ProposalID:   w.ProposalID,
			Approver:     actor,
		},
	})
}

// Deposit credits tokens to the treasury
func (l *Ledger) Deposit(ctx context.Context, actor, token domain.Address, amount domain.Amount) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.treasury.Deposit(token, amount)

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeDeposit,
		Treasury: &domain.TreasuryPayload{
			Token:  token,
			Amount: amount,
			From:   actor,
			To:     l.contract,
		},
	})
}

// CreateBudget allocates a new spending budget. Administrator only.
func (l *Ledger) CreateBudget(ctx context.Context, actor domain.Address, category string, amount domain.Amount) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return 0, err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return 0, domain.ErrNotAdministrator
	}

	b := l.treasury.CreateBudget(category, amount, l.clock.Now())

	err := l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeBudgetCreated,
		Treasury: &domain.TreasuryPayload{
			BudgetID:       b.ID,
			BudgetCategory: b.Category,
			Amount:         b.Amount,
		},
	})
	if err != nil {
		return 0, err
	}
	return b.ID, nil
}

// ApproveBudget activates a pending budget. Administrator only.
func (l *Ledger) ApproveBudget(ctx context.Context, actor domain.Address, budgetID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}

	b, err := l.treasury.ApproveBudget(budgetID, actor, l.clock.Now())
	if err != nil {
		return err
	}

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeBudgetApproved,
		Treasury: &domain.TreasuryPayload{
			BudgetID:       b.ID,
			BudgetCategory: b.Category,
			Amount:         b.Amount,
			Approver:       actor,
		},
	})
}

// UpdateGovernanceParams validates and applies a parameter update as a
// whole. An invalid update leaves the prior parameters unchanged.
func (l *Ledger) UpdateGovernanceParams(ctx context.Context, actor domain.Address, params Params) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}
	if err := params.Validate(); err != nil {
		return err
	}

	var events []*domain.GovernanceEvent
	changed := func(name, oldValue, newValue string) {
		if oldValue != newValue {
			events = append(events, &domain.GovernanceEvent{
				EventType: domain.EventTypeParameterUpdated,
				Param:     &domain.ParamPayload{Name: name, OldValue: oldValue, NewValue: newValue},
			})
		}
	}
	changed("voting_period", strconv.FormatUint(l.params.VotingPeriod, 10), strconv.FormatUint(params.VotingPeriod, 10))
	changed("execution_delay", strconv.FormatInt(int64(l.params.ExecutionDelay/time.Second), 10), strconv.FormatInt(int64(params.ExecutionDelay/time.Second), 10))
	changed("quorum_percentage", strconv.FormatUint(l.params.QuorumPercentage, 10), strconv.FormatUint(params.QuorumPercentage, 10))
	changed("proposal_threshold", l.params.ProposalThreshold.String(), params.ProposalThreshold.String())
	changed("grace_period", strconv.FormatInt(int64(l.params.GracePeriod/time.Second), 10), strconv.FormatInt(int64(params.GracePeriod/time.Second), 10))

	l.params = params
	if len(events) == 0 {
		return nil
	}
	return l.emit(ctx, actor, events...)
}

// RegisterModule registers a module address under an id. Administrator only.
func (l *Ledger) RegisterModule(ctx context.Context, actor domain.Address, id string, address domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}

	if err := l.auth.RegisterModule(id, address); err != nil {
		return err
	}

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeModuleRegistered,
		Module:    &domain.ModulePayload{ModuleID: id, Address: address},
	})
}

// RemoveModule removes a registered module. Administrator only.
func (l *Ledger) RemoveModule(ctx context.Context, actor domain.Address, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}

	if err := l.auth.RemoveModule(id); err != nil {
		return err
	}

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeModuleRemoved,
		Module:    &domain.ModulePayload{ModuleID: id},
	})
}

// GrantRole grants a governance role. Administrator only.
func (l *Ledger) GrantRole(ctx context.Context, actor domain.Address, role domain.Role, account domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}
	if !role.Valid() {
		return fmt.Errorf("unknown role: %s", role)
	}

	l.auth.GrantRole(role, account)

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeRoleGranted,
		Role:      &domain.RolePayload{Role: role, Account: account},
	})
}

// RevokeRole revokes a governance role. Administrator only.
func (l *Ledger) RevokeRole(ctx context.Context, actor domain.Address, role domain.Role, account domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.guard(); err != nil {
		return err
	}
	if !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}

	l.auth.RevokeRole(role, account)

	return l.emit(ctx, actor, &domain.GovernanceEvent{
		EventType: domain.EventTypeRoleRevoked,
		Role:      &domain.RolePayload{Role: role, Account: account},
	})
}

// Pause halts all governance writes. Guardian or administrator only.
func (l *Ledger) Pause(ctx context.Context, actor domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.auth.HasRole(domain.RoleGuardian, actor) && !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}
	if l.auth.Paused() {
		return domain.ErrPaused
	}

	l.auth.SetPaused(true)
	return l.emit(ctx, actor, &domain.GovernanceEvent{EventType: domain.EventTypeEmergencyPaused})
}

// Unpause resumes governance writes. Guardian or administrator only.
func (l *Ledger) Unpause(ctx context.Context, actor domain.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.auth.HasRole(domain.RoleGuardian, actor) && !l.auth.HasRole(domain.RoleAdministrator, actor) {
		return domain.ErrNotAdministrator
	}
	if !l.auth.Paused() {
		return domain.ErrNotPaused
	}

	l.auth.SetPaused(false)
	return l.emit(ctx, actor, &domain.GovernanceEvent{EventType: domain.EventTypeEmergencyUnpaused})
}
