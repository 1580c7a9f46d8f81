package domain

import (
	"fmt"
	"time"
)

// EventType represents the type of governance event
type EventType string

const (
	// Citizen registry events
	EventTypeCitizenRegistered   EventType = "citizen_registered"
	EventTypeCitizenshipApproved EventType = "citizenship_approved"
	EventTypeCitizenshipRevoked  EventType = "citizenship_revoked"
	EventTypePowerDelegated      EventType = "power_delegated"
	EventTypeDelegationRevoked   EventType = "delegation_revoked"

	// Proposal lifecycle events
	EventTypeProposalCreated       EventType = "proposal_created"
	EventTypeVoteCast              EventType = "vote_cast"
	EventTypeProposalStatusChanged EventType = "proposal_status_changed"
	EventTypeProposalCanceled      EventType = "proposal_canceled"
	EventTypeProposalQueued        EventType = "proposal_queued"
	EventTypeProposalExecuted      EventType = "proposal_executed"

	// Treasury events
	EventTypeDeposit            EventType = "deposit"
	EventTypeWithdrawal         EventType = "withdrawal"
	EventTypeWithdrawalQueued   EventType = "withdrawal_queued"
	EventTypeWithdrawalApproved EventType = "withdrawal_approved"
	EventTypeWithdrawalExecuted EventType = "withdrawal_executed"
	EventTypeWithdrawalCanceled EventType = "withdrawal_canceled"
	EventTypeBudgetCreated      EventType = "budget_created"
	EventTypeBudgetApproved     EventType = "budget_approved"

	// Governance core events
	EventTypeParameterUpdated  EventType = "parameter_updated"
	EventTypeModuleRegistered  EventType = "module_registered"
	EventTypeModuleRemoved     EventType = "module_removed"
	EventTypeEmergencyPaused   EventType = "emergency_paused"
	EventTypeEmergencyUnpaused EventType = "emergency_unpaused"
	EventTypeRoleGranted       EventType = "role_granted"
	EventTypeRoleRevoked       EventType = "role_revoked"

	// Compliance events
	EventTypeRuleCreated       EventType = "rule_created"
	EventTypeViolationReported EventType = "violation_reported"
	EventTypeViolationResolved EventType = "violation_resolved"
)

// Position is the total order of an event in the canonical log:
// block number first, then log index within the block.
type Position struct {
	BlockNumber uint64 `json:"block_number"`
	LogIndex    uint64 `json:"log_index"`
}

// Before reports whether p is strictly earlier in the log than other
func (p Position) Before(other Position) bool {
	if p.BlockNumber != other.BlockNumber {
		return p.BlockNumber < other.BlockNumber
	}
	return p.LogIndex < other.LogIndex
}

// String returns the canonical "block-logIndex" representation
func (p Position) String() string {
	return fmt.Sprintf("%d-%d", p.BlockNumber, p.LogIndex)
}

// CitizenPayload carries citizen registry event fields
type CitizenPayload struct {
	Wallet    Address `json:"wallet"`
	BasePower Amount  `json:"base_power"`
	// Delegate is the delegation target for power_delegated events
	Delegate Address `json:"delegate,omitempty"`
	// DelegatedPower is the power moved for power_delegated / delegation_revoked events
	DelegatedPower Amount `json:"delegated_power,omitempty"`
}

// ProposalPayload carries proposal lifecycle event fields
type ProposalPayload struct {
	ProposalID  uint64           `json:"proposal_id"`
	Proposer    Address          `json:"proposer,omitempty"`
	Description string           `json:"description,omitempty"`
	Category    ProposalCategory `json:"category,omitempty"`
	StartTime   int64            `json:"start_time,omitempty"`
	EndTime     int64            `json:"end_time,omitempty"`
	// OldStatus/NewStatus are set for proposal_status_changed events
	OldStatus ProposalStatus `json:"old_status,omitempty"`
	NewStatus ProposalStatus `json:"new_status,omitempty"`
	// ETA is the earliest execution time for proposal_queued events
	ETA int64 `json:"eta,omitempty"`
}

// VotePayload carries vote_cast event fields
type VotePayload struct {
	ProposalID uint64      `json:"proposal_id"`
	Voter      Address     `json:"voter"`
	Support    VoteSupport `json:"support"`
	Weight     Amount      `json:"weight"`
}

// TreasuryPayload carries deposit/withdrawal and budget event fields
type TreasuryPayload struct {
	Token  Address `json:"token"`
	Amount Amount  `json:"amount"`
	From   Address `json:"from,omitempty"`
	To     Address `json:"to,omitempty"`
	// ProposalID links the movement to its governing proposal (withdrawals only)
	ProposalID uint64 `json:"proposal_id,omitempty"`
	// WithdrawalID identifies the queued withdrawal for approval/execution events
	WithdrawalID uint64  `json:"withdrawal_id,omitempty"`
	Approver     Address `json:"approver,omitempty"`
	// Budget fields for budget_created / budget_approved events
	BudgetID       uint64 `json:"budget_id,omitempty"`
	BudgetCategory string `json:"budget_category,omitempty"`
}

// ParamPayload carries parameter_updated event fields
type ParamPayload struct {
	Name     string `json:"name"`
	OldValue string `json:"old_value"`
	NewValue string `json:"new_value"`
}

// ModulePayload carries module registry event fields
type ModulePayload struct {
	ModuleID string  `json:"module_id"`
	Address  Address `json:"address,omitempty"`
}

// RolePayload carries role grant/revoke event fields
type RolePayload struct {
	Role    Role    `json:"role"`
	Account Address `json:"account"`
}

// CompliancePayload carries compliance engine event fields
type CompliancePayload struct {
	RuleID      uint64  `json:"rule_id,omitempty"`
	RuleType    string  `json:"rule_type,omitempty"`
	Description string  `json:"description,omitempty"`
	ViolationID uint64  `json:"violation_id,omitempty"`
	Violator    Address `json:"violator,omitempty"`
	Resolver    Address `json:"resolver,omitempty"`
}

// GovernanceEvent is the normalized governance event published to NATS.
// It is the durable wire contract between the write-path contracts and the
// read model: everything the projection materializes must be reconstructible
// from a replay of these events in Position order.
type GovernanceEvent struct {
	Chain     Chain     `json:"chain"`
	Contract  Address   `json:"contract"`
	EventType EventType `json:"event_type"`
	Position  Position  `json:"position"`
	TxHash    string    `json:"tx_hash"`
	Actor     Address   `json:"actor"` // transaction sender
	Timestamp time.Time `json:"timestamp"`

	// Exactly one payload is set, matching EventType
	Citizen    *CitizenPayload    `json:"citizen,omitempty"`
	Proposal   *ProposalPayload   `json:"proposal,omitempty"`
	Vote       *VotePayload       `json:"vote,omitempty"`
	Treasury   *TreasuryPayload   `json:"treasury,omitempty"`
	Param      *ParamPayload      `json:"param,omitempty"`
	Module     *ModulePayload     `json:"module,omitempty"`
	Role       *RolePayload       `json:"role,omitempty"`
	Compliance *CompliancePayload `json:"compliance,omitempty"`
}

// Valid checks that the event carries the payload its type requires
func (e *GovernanceEvent) Valid() bool {
	if !IsValidChain(e.Chain) || e.TxHash == "" {
		return false
	}

	switch e.EventType {
	case EventTypeCitizenRegistered, EventTypeCitizenshipApproved, EventTypeCitizenshipRevoked,
		EventTypePowerDelegated, EventTypeDelegationRevoked:
		return e.Citizen != nil && e.Citizen.Wallet.Valid()
	case EventTypeProposalCreated, EventTypeProposalStatusChanged, EventTypeProposalCanceled,
		EventTypeProposalQueued, EventTypeProposalExecuted:
		return e.Proposal != nil
	case EventTypeVoteCast:
		return e.Vote != nil && e.Vote.Voter.Valid() && e.Vote.Support.Valid()
	case EventTypeDeposit, EventTypeWithdrawal, EventTypeWithdrawalQueued,
		EventTypeWithdrawalApproved, EventTypeWithdrawalExecuted, EventTypeWithdrawalCanceled,
		EventTypeBudgetCreated, EventTypeBudgetApproved:
		return e.Treasury != nil
	case EventTypeParameterUpdated:
		return e.Param != nil && e.Param.Name != ""
	case EventTypeModuleRegistered, EventTypeModuleRemoved:
		return e.Module != nil && e.Module.ModuleID != ""
	case EventTypeEmergencyPaused, EventTypeEmergencyUnpaused:
		return true
	case EventTypeRoleGranted, EventTypeRoleRevoked:
		return e.Role != nil && e.Role.Role.Valid() && e.Role.Account.Valid()
	case EventTypeRuleCreated, EventTypeViolationReported, EventTypeViolationResolved:
		return e.Compliance != nil
	default:
		return false
	}
}

// EventID returns a stable unique identifier for the event, used by the
// projection for replay deduplication.
func (e *GovernanceEvent) EventID() string {
	return fmt.Sprintf("%s:%s", e.TxHash, e.Position)
}
