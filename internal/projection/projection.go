package projection

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nexus-dao/nexus-governance/internal/audit"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/store"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

// Projector applies governance events to the read model. Handlers are
// idempotent: replays and at-least-once delivery are absorbed by the store's
// natural-key constraints, so applying the same event twice is a no-op.
//
// Events can arrive ahead of the records they reference when the log is
// consumed concurrently. Handlers create a placeholder row in that case and
// let the original event fill in the remaining fields when it lands.
//
//go:generate mockgen -source=projection.go -destination=../mocks/projector.go -package=mocks -mock_names=Projector=MockProjector
type Projector interface {
	// Apply materializes one governance event into the read model
	Apply(ctx context.Context, event *domain.GovernanceEvent) error
}

type projector struct {
	store    store.Store
	recorder audit.Recorder
}

// NewProjector creates a read model projector
func NewProjector(st store.Store, recorder audit.Recorder) Projector {
	return &projector{store: st, recorder: recorder}
}

// Apply materializes one governance event into the read model
func (p *projector) Apply(ctx context.Context, event *domain.GovernanceEvent) error {
	if !event.Valid() {
		return domain.ErrInvalidGovernanceEvent
	}

	var err error
	switch event.EventType {
	case domain.EventTypeCitizenRegistered:
		err = p.applyCitizenRegistered(ctx, event)
	case domain.EventTypeCitizenshipApproved:
		err = p.applyCitizenStatus(ctx, event, domain.CitizenStatusActive, true)
	case domain.EventTypeCitizenshipRevoked:
		err = p.applyCitizenStatus(ctx, event, domain.CitizenStatusRevoked, false)
	case domain.EventTypePowerDelegated:
		err = p.applyDelegation(ctx, event)
	case domain.EventTypeDelegationRevoked:
		err = p.applyDelegationRevoked(ctx, event)
	case domain.EventTypeProposalCreated:
		err = p.applyProposalCreated(ctx, event)
	case domain.EventTypeVoteCast:
		err = p.applyVoteCast(ctx, event)
	case domain.EventTypeProposalStatusChanged,
		domain.EventTypeProposalCanceled,
		domain.EventTypeProposalQueued,
		domain.EventTypeProposalExecuted:
		err = p.applyProposalTransition(ctx, event)
	case domain.EventTypeDeposit:
		err = p.applyDeposit(ctx, event)
	case domain.EventTypeWithdrawal:
		// The fund movement is already materialized by the paired
		// withdrawal_executed event; only the audit record remains.
	case domain.EventTypeWithdrawalQueued:
		err = p.applyWithdrawalQueued(ctx, event)
	case domain.EventTypeWithdrawalApproved:
		err = p.applyWithdrawalApproved(ctx, event)
	case domain.EventTypeWithdrawalExecuted:
		err = p.applyWithdrawalExecuted(ctx, event)
	case domain.EventTypeWithdrawalCanceled:
		err = p.applyWithdrawalTransition(ctx, event, domain.WithdrawalStatusCanceled, nil)
	case domain.EventTypeBudgetCreated:
		err = p.applyBudgetCreated(ctx, event)
	case domain.EventTypeBudgetApproved:
		err = p.applyBudgetApproved(ctx, event)
	case domain.EventTypeParameterUpdated:
		err = p.applyParameterUpdated(ctx, event)
	case domain.EventTypeModuleRegistered, domain.EventTypeModuleRemoved:
		err = p.applyModuleChange(ctx, event)
	case domain.EventTypeRoleGranted, domain.EventTypeRoleRevoked:
		err = p.applyRoleChange(ctx, event)
	case domain.EventTypeEmergencyPaused, domain.EventTypeEmergencyUnpaused:
		// State machine guard only; the read model carries no pause flag.
		// The audit record below is the durable trace.
	case domain.EventTypeRuleCreated:
		err = p.applyRuleCreated(ctx, event)
	case domain.EventTypeViolationReported:
		err = p.applyViolationReported(ctx, event)
	case domain.EventTypeViolationResolved:
		err = p.applyViolationResolved(ctx, event)
	default:
		return fmt.Errorf("unknown event type: %s", event.EventType)
	}
	if err != nil {
		return err
	}

	return p.writeAuditRecord(ctx, event)
}

// writeAuditRecord appends the audit trail entry for an applied event
func (p *projector) writeAuditRecord(ctx context.Context, event *domain.GovernanceEvent) error {
	record, err := p.recorder.BuildRecord(event)
	if err != nil {
		return fmt.Errorf("failed to build audit record: %w", err)
	}

	if err := p.store.CreateAuditRecord(ctx, record); err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}
	return nil
}

func (p *projector) applyCitizenRegistered(ctx context.Context, event *domain.GovernanceEvent) error {
	return p.store.RecordCitizenRegistration(ctx, schema.Citizen{
		Wallet:                 event.Citizen.Wallet.String(),
		Status:                 string(domain.CitizenStatusPending),
		BasePower:              event.Citizen.BasePower.String(),
		DelegatedPowerReceived: "0",
		RegisteredAt:           event.Timestamp,
	})
}

// ensureCitizen creates a placeholder citizen row so later lifecycle events
// can land before the registration event does
func (p *projector) ensureCitizen(ctx context.Context, wallet string, at time.Time) error {
	return p.store.RecordCitizenRegistration(ctx, schema.Citizen{
		Wallet:                 wallet,
		Status:                 string(domain.CitizenStatusPending),
		BasePower:              "0",
		DelegatedPowerReceived: "0",
		RegisteredAt:           at,
	})
}

func (p *projector) applyCitizenStatus(ctx context.Context, event *domain.GovernanceEvent, status domain.CitizenStatus, verified bool) error {
	wallet := event.Citizen.Wallet.String()

	err := p.store.UpdateCitizenStatus(ctx, wallet, string(status), verified)
	if errors.Is(err, domain.ErrNotCitizen) {
		if err := p.ensureCitizen(ctx, wallet, event.Timestamp); err != nil {
			return err
		}
		return p.store.UpdateCitizenStatus(ctx, wallet, string(status), verified)
	}
	return err
}

func (p *projector) applyDelegation(ctx context.Context, event *domain.GovernanceEvent) error {
	delegator := event.Citizen.Wallet.String()

	citizen, err := p.store.GetCitizenByWallet(ctx, delegator)
	if err != nil {
		return err
	}
	if citizen == nil {
		if err := p.ensureCitizen(ctx, delegator, event.Timestamp); err != nil {
			return err
		}
		citizen = &schema.Citizen{}
	}

	delegate := event.Citizen.Delegate.String()
	return p.store.UpdateDelegation(ctx, store.UpdateDelegationInput{
		Delegator:        delegator,
		Delegate:         &delegate,
		PreviousDelegate: citizen.DelegatedTo,
		Power:            event.Citizen.DelegatedPower.String(),
	})
}

func (p *projector) applyDelegationRevoked(ctx context.Context, event *domain.GovernanceEvent) error {
	delegator := event.Citizen.Wallet.String()

	citizen, err := p.store.GetCitizenByWallet(ctx, delegator)
	if err != nil {
		return err
	}
	if citizen == nil {
		// Nothing to revoke; record the citizen so the row exists
		return p.ensureCitizen(ctx, delegator, event.Timestamp)
	}

	return p.store.UpdateDelegation(ctx, store.UpdateDelegationInput{
		Delegator:        delegator,
		Delegate:         nil,
		PreviousDelegate: citizen.DelegatedTo,
		Power:            event.Citizen.DelegatedPower.String(),
	})
}

func (p *projector) applyProposalCreated(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Proposal

	status := domain.ProposalStatusActive
	startTime := time.Unix(payload.StartTime, 0)
	if event.Timestamp.Before(startTime) {
		status = domain.ProposalStatusPending
	}

	return p.store.RecordProposalCreated(ctx, schema.Proposal{
		ProposalID:   payload.ProposalID,
		Proposer:     payload.Proposer.String(),
		Description:  payload.Description,
		Category:     string(payload.Category),
		Status:       string(status),
		ForVotes:     "0",
		AgainstVotes: "0",
		AbstainVotes: "0",
		StartTime:    startTime,
		EndTime:      time.Unix(payload.EndTime, 0),
		TxHash:       event.TxHash,
		BlockNumber:  event.Position.BlockNumber,
	})
}

// ensureProposal creates a placeholder proposal row so transitions and votes
// can land before the creation event does
func (p *projector) ensureProposal(ctx context.Context, proposalID uint64, at time.Time) error {
	return p.store.RecordProposalCreated(ctx, schema.Proposal{
		ProposalID:   proposalID,
		Status:       string(domain.ProposalStatusPending),
		ForVotes:     "0",
		AgainstVotes: "0",
		AbstainVotes: "0",
		StartTime:    at,
		EndTime:      at,
	})
}

func (p *projector) applyVoteCast(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Vote

	if err := p.ensureProposal(ctx, payload.ProposalID, event.Timestamp); err != nil {
		return err
	}

	return p.store.RecordVote(ctx, schema.Vote{
		ProposalID:  payload.ProposalID,
		Voter:       payload.Voter.String(),
		Support:     string(payload.Support),
		Weight:      payload.Weight.String(),
		CastAt:      event.Timestamp,
		TxHash:      event.TxHash,
		BlockNumber: event.Position.BlockNumber,
	})
}

func (p *projector) applyProposalTransition(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Proposal
	ts := event.Timestamp

	input := store.UpdateProposalStatusInput{ProposalID: payload.ProposalID}
	switch event.EventType {
	case domain.EventTypeProposalStatusChanged:
		input.Status = string(payload.NewStatus)
	case domain.EventTypeProposalCanceled:
		input.Status = string(domain.ProposalStatusCanceled)
	case domain.EventTypeProposalQueued:
		input.Status = string(domain.ProposalStatusQueued)
	case domain.EventTypeProposalExecuted:
		input.Status = string(domain.ProposalStatusExecuted)
	}

	switch domain.ProposalStatus(input.Status) {
	case domain.ProposalStatusQueued:
		input.QueuedAt = &ts
	case domain.ProposalStatusExecuted:
		input.ExecutedAt = &ts
	case domain.ProposalStatusCanceled:
		input.CanceledAt = &ts
	}

	err := p.store.UpdateProposalStatus(ctx, input)
	if errors.Is(err, domain.ErrProposalNotFound) {
		if err := p.ensureProposal(ctx, payload.ProposalID, ts); err != nil {
			return err
		}
		return p.store.UpdateProposalStatus(ctx, input)
	}
	return err
}

func (p *projector) applyDeposit(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Treasury

	return p.store.RecordTreasuryTransaction(ctx, schema.TreasuryTransaction{
		TxHash:      event.TxHash,
		LogIndex:    event.Position.LogIndex,
		Type:        schema.TreasuryTransactionTypeDeposit,
		Token:       payload.Token.String(),
		Amount:      payload.Amount.String(),
		FromAddress: payload.From.String(),
		ToAddress:   event.Contract.String(),
		OccurredAt:  event.Timestamp,
		BlockNumber: event.Position.BlockNumber,
	})
}

func (p *projector) applyWithdrawalQueued(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Treasury

	return p.store.RecordWithdrawalQueued(ctx, schema.Withdrawal{
		WithdrawalID: payload.WithdrawalID,
		ProposalID:   payload.ProposalID,
		Token:        payload.Token.String(),
		Recipient:    payload.To.String(),
		Amount:       payload.Amount.String(),
		Status:       string(domain.WithdrawalStatusPending),
		QueuedAt:     event.Timestamp,
	})
}

// ensureWithdrawal creates a placeholder withdrawal row so approvals and
// transitions can land before the queueing event does
func (p *projector) ensureWithdrawal(ctx context.Context, withdrawalID uint64, at time.Time) error {
	return p.store.RecordWithdrawalQueued(ctx, schema.Withdrawal{
		WithdrawalID: withdrawalID,
		Amount:       "0",
		Status:       string(domain.WithdrawalStatusPending),
		QueuedAt:     at,
	})
}

func (p *projector) applyWithdrawalApproved(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Treasury

	if err := p.ensureWithdrawal(ctx, payload.WithdrawalID, event.Timestamp); err != nil {
		return err
	}

	return p.store.RecordWithdrawalApproval(ctx, schema.WithdrawalApproval{
		WithdrawalID: payload.WithdrawalID,
		Approver:     payload.Approver.String(),
		ApprovedAt:   event.Timestamp,
	})
}

func (p *projector) applyWithdrawalExecuted(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Treasury
	ts := event.Timestamp

	if err := p.applyWithdrawalTransition(ctx, event, domain.WithdrawalStatusExecuted, &ts); err != nil {
		return err
	}

	// The executed fund movement also enters the treasury ledger
	withdrawal, err := p.store.GetWithdrawalByWithdrawalID(ctx, payload.WithdrawalID)
	if err != nil {
		return err
	}
	var proposalID uint64
	if withdrawal != nil {
		proposalID = withdrawal.ProposalID
	}

	return p.store.RecordTreasuryTransaction(ctx, schema.TreasuryTransaction{
		TxHash:      event.TxHash,
		LogIndex:    event.Position.LogIndex,
		Type:        schema.TreasuryTransactionTypeWithdrawal,
		Token:       payload.Token.String(),
		Amount:      payload.Amount.String(),
		FromAddress: event.Contract.String(),
		ToAddress:   payload.To.String(),
		ProposalID:  proposalID,
		OccurredAt:  ts,
		BlockNumber: event.Position.BlockNumber,
	})
}

func (p *projector) applyWithdrawalTransition(ctx context.Context, event *domain.GovernanceEvent, status domain.WithdrawalStatus, executedAt *time.Time) error {
	withdrawalID := event.Treasury.WithdrawalID

	err := p.store.UpdateWithdrawalStatus(ctx, withdrawalID, string(status), executedAt)
	if errors.Is(err, domain.ErrWithdrawalNotFound) {
		if err := p.ensureWithdrawal(ctx, withdrawalID, event.Timestamp); err != nil {
			return err
		}
		return p.store.UpdateWithdrawalStatus(ctx, withdrawalID, string(status), executedAt)
	}
	return err
}

func (p *projector) applyBudgetCreated(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Treasury

	return p.store.UpsertBudget(ctx, schema.Budget{
		BudgetID: payload.BudgetID,
		Category: payload.BudgetCategory,
		Amount:   payload.Amount.String(),
		Spent:    "0",
		Status:   schema.BudgetStatusProposed,
	})
}

func (p *projector) applyBudgetApproved(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Treasury
	ts := event.Timestamp
	approver := payload.Approver.String()

	budget, err := p.store.GetBudgetByBudgetID(ctx, payload.BudgetID)
	if err != nil {
		return err
	}
	if budget == nil {
		budget = &schema.Budget{
			BudgetID: payload.BudgetID,
			Amount:   "0",
			Spent:    "0",
		}
	}

	if !approverListed(budget.Approvers, approver) {
		if budget.Approvers == "" {
			budget.Approvers = approver
		} else {
			budget.Approvers += "," + approver
		}
	}
	budget.Status = schema.BudgetStatusApproved
	budget.ApprovedAt = &ts

	return p.store.UpsertBudget(ctx, *budget)
}

func approverListed(approvers, approver string) bool {
	for _, a := range strings.Split(approvers, ",") {
		if a == approver {
			return true
		}
	}
	return false
}

func (p *projector) applyParameterUpdated(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Param

	return p.store.RecordParameterChange(ctx, schema.ParameterChange{
		Name:      payload.Name,
		OldValue:  payload.OldValue,
		NewValue:  payload.NewValue,
		ChangedBy: event.Actor.String(),
		ChangedAt: event.Timestamp,
		TxHash:    event.TxHash,
		LogIndex:  event.Position.LogIndex,
	})
}

func (p *projector) applyModuleChange(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Module

	return p.store.UpsertModule(ctx, schema.Module{
		Name:         payload.ModuleID,
		Address:      payload.Address.String(),
		Active:       event.EventType == domain.EventTypeModuleRegistered,
		RegisteredBy: event.Actor.String(),
		RegisteredAt: event.Timestamp,
	})
}

func (p *projector) applyRoleChange(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Role

	return p.store.UpsertRoleAssignment(ctx, schema.RoleAssignment{
		Wallet:    payload.Account.String(),
		Role:      string(payload.Role),
		Active:    event.EventType == domain.EventTypeRoleGranted,
		GrantedBy: event.Actor.String(),
		GrantedAt: event.Timestamp,
	})
}

func (p *projector) applyRuleCreated(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Compliance

	return p.store.UpsertComplianceRule(ctx, schema.ComplianceRule{
		RuleID:      payload.RuleID,
		RuleType:    payload.RuleType,
		Description: payload.Description,
		Active:      true,
	})
}

func (p *projector) applyViolationReported(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Compliance

	return p.store.RecordViolation(ctx, schema.ComplianceViolation{
		ViolationID: payload.ViolationID,
		RuleID:      payload.RuleID,
		Violator:    payload.Violator.String(),
		ReportedAt:  event.Timestamp,
	})
}

func (p *projector) applyViolationResolved(ctx context.Context, event *domain.GovernanceEvent) error {
	payload := event.Compliance

	return p.store.ResolveViolation(ctx, payload.ViolationID, payload.Resolver.String(), event.Timestamp)
}
