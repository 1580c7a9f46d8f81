package audit

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/oklog/ulid/v2"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

// Categories group audit records by the governance surface they cover
const (
	CategoryIdentity   = "identity"
	CategoryProposal   = "proposal"
	CategoryVote       = "vote"
	CategoryTreasury   = "treasury"
	CategoryGovernance = "governance"
	CategoryCompliance = "compliance"
)

// Recorder builds tamper-evident audit records from governance events.
// The payload hash is a SHA-256 over the JCS-canonicalized event JSON, so
// two independently derived records for the same event hash identically.
//
//go:generate mockgen -source=recorder.go -destination=../mocks/audit_recorder.go -package=mocks -mock_names=Recorder=MockAuditRecorder
type Recorder interface {
	// BuildRecord derives the audit record for a governance event
	BuildRecord(event *domain.GovernanceEvent) (schema.AuditRecord, error)
}

type recorder struct {
	json adapter.JSON
	jcs  adapter.JCS
}

// NewRecorder creates a new audit record builder
func NewRecorder(jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) Recorder {
	return &recorder{json: jsonAdapter, jcs: jcsAdapter}
}

// BuildRecord derives the audit record for a governance event
func (r *recorder) BuildRecord(event *domain.GovernanceEvent) (schema.AuditRecord, error) {
	if !event.Valid() {
		return schema.AuditRecord{}, domain.ErrInvalidGovernanceEvent
	}

	payload, err := r.json.Marshal(event)
	if err != nil {
		return schema.AuditRecord{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	canonical, err := r.jcs.Transform(payload)
	if err != nil {
		return schema.AuditRecord{}, fmt.Errorf("failed to canonicalize event: %w", err)
	}

	hash := sha256.Sum256(canonical)

	return schema.AuditRecord{
		RecordID:    ulid.MustNewDefault(event.Timestamp).String(),
		Subject:     Subject(event),
		Action:      string(event.EventType),
		Category:    Category(event.EventType),
		PayloadHash: hex.EncodeToString(hash[:]),
		RecordedBy:  event.Actor.String(),
		OccurredAt:  event.Timestamp,
		TxHash:      event.TxHash,
		LogIndex:    event.Position.LogIndex,
	}, nil
}

// Subject identifies the primary entity an event concerns
func Subject(event *domain.GovernanceEvent) string {
	switch {
	case event.Citizen != nil:
		return "citizen:" + event.Citizen.Wallet.String()
	case event.Vote != nil:
		return fmt.Sprintf("proposal:%d", event.Vote.ProposalID)
	case event.Proposal != nil:
		return fmt.Sprintf("proposal:%d", event.Proposal.ProposalID)
	case event.Treasury != nil:
		if event.Treasury.WithdrawalID != 0 {
			return fmt.Sprintf("withdrawal:%d", event.Treasury.WithdrawalID)
		}
		if event.Treasury.BudgetID != 0 {
			return fmt.Sprintf("budget:%d", event.Treasury.BudgetID)
		}
		return "treasury:" + event.Treasury.Token.String()
	case event.Param != nil:
		return "param:" + event.Param.Name
	case event.Module != nil:
		return "module:" + event.Module.ModuleID
	case event.Role != nil:
		return fmt.Sprintf("role:%s:%s", event.Role.Role, event.Role.Account)
	case event.Compliance != nil:
		if event.Compliance.ViolationID != 0 {
			return fmt.Sprintf("violation:%d", event.Compliance.ViolationID)
		}
		return fmt.Sprintf("rule:%d", event.Compliance.RuleID)
	default:
		return "chain:" + string(event.Chain)
	}
}

// Category maps an event type to its audit category
func Category(eventType domain.EventType) string {
	switch eventType {
	case domain.EventTypeCitizenRegistered, domain.EventTypeCitizenshipApproved,
		domain.EventTypeCitizenshipRevoked, domain.EventTypePowerDelegated,
		domain.EventTypeDelegationRevoked:
		return CategoryIdentity
	case domain.EventTypeVoteCast:
		return CategoryVote
	case domain.EventTypeProposalCreated, domain.EventTypeProposalStatusChanged,
		domain.EventTypeProposalCanceled, domain.EventTypeProposalQueued,
		domain.EventTypeProposalExecuted:
		return CategoryProposal
	case domain.EventTypeDeposit, domain.EventTypeWithdrawal,
		domain.EventTypeWithdrawalQueued, domain.EventTypeWithdrawalApproved,
		domain.EventTypeWithdrawalExecuted, domain.EventTypeWithdrawalCanceled,
		domain.EventTypeBudgetCreated, domain.EventTypeBudgetApproved:
		return CategoryTreasury
	case domain.EventTypeRuleCreated, domain.EventTypeViolationReported,
		domain.EventTypeViolationResolved:
		return CategoryCompliance
	default:
		return CategoryGovernance
	}
}
