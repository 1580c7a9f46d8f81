package dto

import (
	"time"

	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

// AuditRecordResponse represents an audit log entry
type AuditRecordResponse struct {
	RecordID    string    `json:"record_id"`
	Subject     string    `json:"subject"`
	Action      string    `json:"action"`
	Category    string    `json:"category"`
	PayloadHash string    `json:"payload_hash"`
	RecordedBy  string    `json:"recorded_by"`
	OccurredAt  time.Time `json:"occurred_at"`
	TxHash      string    `json:"tx_hash"`
	LogIndex    uint64    `json:"log_index"`
}

// MapAuditRecordToDTO maps an audit record row to its API representation
func MapAuditRecordToDTO(r schema.AuditRecord) *AuditRecordResponse {
	return &AuditRecordResponse{
		RecordID:    r.RecordID,
		Subject:     r.Subject,
		Action:      r.Action,
		Category:    r.Category,
		PayloadHash: r.PayloadHash,
		RecordedBy:  r.RecordedBy,
		OccurredAt:  r.OccurredAt,
		TxHash:      r.TxHash,
		LogIndex:    r.LogIndex,
	}
}

// ParameterResponse represents a current governance parameter value
type ParameterResponse struct {
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapParameterToDTO maps a governance parameter row to its API representation
func MapParameterToDTO(p schema.GovernanceParameter) *ParameterResponse {
	return &ParameterResponse{
		Name:      p.Name,
		Value:     p.Value,
		UpdatedBy: p.UpdatedBy,
		UpdatedAt: p.UpdatedAt,
	}
}

// ParameterChangeResponse represents one entry of a parameter's change history
type ParameterChangeResponse struct {
	Name      string    `json:"name"`
	OldValue  string    `json:"old_value"`
	NewValue  string    `json:"new_value"`
	ChangedBy string    `json:"changed_by"`
	ChangedAt time.Time `json:"changed_at"`
	TxHash    string    `json:"tx_hash"`
}

// MapParameterChangeToDTO maps a parameter change row to its API representation
func MapParameterChangeToDTO(c schema.ParameterChange) *ParameterChangeResponse {
	return &ParameterChangeResponse{
		Name:      c.Name,
		OldValue:  c.OldValue,
		NewValue:  c.NewValue,
		ChangedBy: c.ChangedBy,
		ChangedAt: c.ChangedAt,
		TxHash:    c.TxHash,
	}
}

// ModuleResponse represents a registered governance module
type ModuleResponse struct {
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	Active       bool      `json:"active"`
	RegisteredBy string    `json:"registered_by"`
	RegisteredAt time.Time `json:"registered_at"`
}

// MapModuleToDTO maps a module row to its API representation
func MapModuleToDTO(m schema.Module) *ModuleResponse {
	return &ModuleResponse{
		Name:         m.Name,
		Address:      m.Address,
		Active:       m.Active,
		RegisteredBy: m.RegisteredBy,
		RegisteredAt: m.RegisteredAt,
	}
}

// RoleAssignmentResponse represents a governance role held by a wallet
type RoleAssignmentResponse struct {
	Wallet    string    `json:"wallet"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	GrantedBy string    `json:"granted_by"`
	GrantedAt time.Time `json:"granted_at"`
}

// MapRoleAssignmentToDTO maps a role assignment row to its API representation
func MapRoleAssignmentToDTO(r schema.RoleAssignment) *RoleAssignmentResponse {
	return &RoleAssignmentResponse{
		Wallet:    r.Wallet,
		Role:      r.Role,
		Active:    r.Active,
		GrantedBy: r.GrantedBy,
		GrantedAt: r.GrantedAt,
	}
}

// ComplianceRuleResponse represents a compliance rule
type ComplianceRuleResponse struct {
	RuleID         uint64 `json:"rule_id"`
	RuleType       string `json:"rule_type"`
	Description    string `json:"description"`
	Active         bool   `json:"active"`
	ViolationCount int    `json:"violation_count"`
}

// MapComplianceRuleToDTO maps a compliance rule row to its API representation
func MapComplianceRuleToDTO(r schema.ComplianceRule) *ComplianceRuleResponse {
	return &ComplianceRuleResponse{
		RuleID:         r.RuleID,
		RuleType:       r.RuleType,
		Description:    r.Description,
		Active:         r.Active,
		ViolationCount: r.ViolationCount,
	}
}

// ViolationResponse represents a reported compliance violation
type ViolationResponse struct {
	ViolationID uint64     `json:"violation_id"`
	RuleID      uint64     `json:"rule_id"`
	Violator    string     `json:"violator"`
	Resolved    bool       `json:"resolved"`
	Resolver    *string    `json:"resolver,omitempty"`
	ReportedAt  time.Time  `json:"reported_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

// MapViolationToDTO maps a violation row to its API representation
func MapViolationToDTO(v schema.ComplianceViolation) *ViolationResponse {
	return &ViolationResponse{
		ViolationID: v.ViolationID,
		RuleID:      v.RuleID,
		Violator:    v.Violator,
		Resolved:    v.Resolved,
		Resolver:    v.Resolver,
		ReportedAt:  v.ReportedAt,
		ResolvedAt:  v.ResolvedAt,
	}
}

// DailyStatsResponse represents one daily aggregation bucket
type DailyStatsResponse struct {
	Day                 time.Time `json:"day"`
	ProposalsCreated    int       `json:"proposals_created"`
	VotesCast           int       `json:"votes_cast"`
	UniqueVoters        int       `json:"unique_voters"`
	NewCitizens         int       `json:"new_citizens"`
	TreasuryDeposits    string    `json:"treasury_deposits"`
	TreasuryWithdrawals string    `json:"treasury_withdrawals"`
}

// MapDailyStatsToDTO maps a daily stats row to its API representation
func MapDailyStatsToDTO(s schema.DailyStats) DailyStatsResponse {
	return DailyStatsResponse{
		Day:                 time.Unix(s.Day, 0).UTC(),
		ProposalsCreated:    s.ProposalsCreated,
		VotesCast:           s.VotesCast,
		UniqueVoters:        s.UniqueVoters,
		NewCitizens:         s.NewCitizens,
		TreasuryDeposits:    s.TreasuryDeposits,
		TreasuryWithdrawals: s.TreasuryWithdrawals,
	}
}

// MonthlyStatsResponse represents one monthly aggregation bucket
type MonthlyStatsResponse struct {
	Month               string `json:"month"`
	ProposalsCreated    int    `json:"proposals_created"`
	VotesCast           int    `json:"votes_cast"`
	UniqueVoters        int    `json:"unique_voters"`
	NewCitizens         int    `json:"new_citizens"`
	TreasuryDeposits    string `json:"treasury_deposits"`
	TreasuryWithdrawals string `json:"treasury_withdrawals"`
}

// MapMonthlyStatsToDTO maps a monthly stats row to its API representation
func MapMonthlyStatsToDTO(s schema.MonthlyStats) MonthlyStatsResponse {
	return MonthlyStatsResponse{
		Month:               s.Month,
		ProposalsCreated:    s.ProposalsCreated,
		VotesCast:           s.VotesCast,
		UniqueVoters:        s.UniqueVoters,
		NewCitizens:         s.NewCitizens,
		TreasuryDeposits:    s.TreasuryDeposits,
		TreasuryWithdrawals: s.TreasuryWithdrawals,
	}
}

// GovernanceHealthResponse summarizes how alive the governance process is
type GovernanceHealthResponse struct {
	TotalCitizens       uint64 `json:"total_citizens"`
	ActiveCitizens      uint64 `json:"active_citizens"`
	TotalProposals      uint64 `json:"total_proposals"`
	ActiveProposals     uint64 `json:"active_proposals"`
	VotesLast30Days     int    `json:"votes_last_30_days"`
	ProposalsLast30Days int    `json:"proposals_last_30_days"`
	// ParticipationRate is votes cast in the last 30 days over active
	// citizens, capped at 1.0
	ParticipationRate float64 `json:"participation_rate"`
}
