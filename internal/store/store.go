package store

import (
	"context"
	"time"

	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

// CitizenQueryFilter defines filters for citizen queries
type CitizenQueryFilter struct {
	Statuses []string
	Limit    int
	Offset   uint64
}

// ProposalQueryFilter defines filters for proposal queries
type ProposalQueryFilter struct {
	Statuses   []string
	Categories []string
	Proposer   string
	Limit      int
	Offset     uint64
}

// TreasuryTransactionFilter defines filters for treasury transaction queries
type TreasuryTransactionFilter struct {
	Types      []string
	ProposalID uint64
	Limit      int
	Offset     uint64
}

// AuditRecordFilter defines filters for audit record queries
type AuditRecordFilter struct {
	Subject  string
	Category string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   uint64
}

// ViolationFilter defines filters for compliance violation queries
type ViolationFilter struct {
	RuleID         uint64
	Violator       string
	UnresolvedOnly bool
	Limit          int
	Offset         uint64
}

// UpdateDelegationInput carries a delegation change. PreviousDelegate is
// the delegate losing Power (nil when the delegator was self-held before),
// Delegate is the one gaining it (nil when the delegation is removed).
type UpdateDelegationInput struct {
	Delegator        string
	Delegate         *string
	PreviousDelegate *string
	Power            string
}

// UpdateProposalStatusInput carries a proposal lifecycle transition
type UpdateProposalStatusInput struct {
	ProposalID uint64
	Status     string
	QueuedAt   *time.Time
	ExecutedAt *time.Time
	CanceledAt *time.Time
}

// TreasuryBalance is the derived per-token treasury balance
type TreasuryBalance struct {
	Token   string `gorm:"column:token"`
	Balance string `gorm:"column:balance"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// RecordCitizenRegistration creates a citizen record and bumps the
	// new-citizen stats, once per wallet regardless of replays
	RecordCitizenRegistration(ctx context.Context, citizen schema.Citizen) error
	// UpdateCitizenStatus transitions a citizen's registration state
	UpdateCitizenStatus(ctx context.Context, wallet string, status string, identityVerified bool) error
	// UpdateCitizenPower sets a citizen's base voting power
	UpdateCitizenPower(ctx context.Context, wallet string, basePower string) error
	// UpdateDelegation applies a delegation change across the affected citizens
	UpdateDelegation(ctx context.Context, input UpdateDelegationInput) error
	// GetCitizenByWallet retrieves a citizen by wallet address
	GetCitizenByWallet(ctx context.Context, wallet string) (*schema.Citizen, error)
	// GetCitizensByFilter retrieves citizens matching the filter with total count
	GetCitizensByFilter(ctx context.Context, filter CitizenQueryFilter) ([]schema.Citizen, uint64, error)

	// RecordProposalCreated creates a proposal record, bumps the proposer's
	// counter and the stats, once per proposal id regardless of replays
	RecordProposalCreated(ctx context.Context, proposal schema.Proposal) error
	// UpdateProposalStatus transitions a proposal's lifecycle state
	UpdateProposalStatus(ctx context.Context, input UpdateProposalStatusInput) error
	// RecordVote creates a ballot, accumulates the proposal tallies, bumps
	// the voter's counter and the stats, once per (proposal, voter)
	RecordVote(ctx context.Context, vote schema.Vote) error
	// GetProposalByProposalID retrieves a proposal by its on-chain id
	GetProposalByProposalID(ctx context.Context, proposalID uint64) (*schema.Proposal, error)
	// GetProposalsByFilter retrieves proposals matching the filter with total count
	GetProposalsByFilter(ctx context.Context, filter ProposalQueryFilter) ([]schema.Proposal, uint64, error)
	// GetVoteByProposalAndVoter retrieves a single ballot
	GetVoteByProposalAndVoter(ctx context.Context, proposalID uint64, voter string) (*schema.Vote, error)
	// GetVotesByProposal retrieves ballots for a proposal with total count
	GetVotesByProposal(ctx context.Context, proposalID uint64, limit int, offset uint64) ([]schema.Vote, uint64, error)
	// GetVotesByVoter retrieves a citizen's voting history with total count
	GetVotesByVoter(ctx context.Context, voter string, limit int, offset uint64) ([]schema.Vote, uint64, error)

	// RecordWithdrawalQueued creates a withdrawal record, once per withdrawal id
	RecordWithdrawalQueued(ctx context.Context, withdrawal schema.Withdrawal) error
	// RecordWithdrawalApproval creates a per-signer approval and bumps the
	// withdrawal's approval count, once per (withdrawal, approver)
	RecordWithdrawalApproval(ctx context.Context, approval schema.WithdrawalApproval) error
	// UpdateWithdrawalStatus transitions a withdrawal's pipeline state
	UpdateWithdrawalStatus(ctx context.Context, withdrawalID uint64, status string, executedAt *time.Time) error
	// GetWithdrawalByWithdrawalID retrieves a withdrawal by its on-chain id
	GetWithdrawalByWithdrawalID(ctx context.Context, withdrawalID uint64) (*schema.Withdrawal, error)
	// GetWithdrawalApprovals retrieves the per-signer approvals for a withdrawal
	GetWithdrawalApprovals(ctx context.Context, withdrawalID uint64) ([]schema.WithdrawalApproval, error)
	// GetWithdrawalsByFilter retrieves withdrawals by status with total count
	GetWithdrawalsByFilter(ctx context.Context, statuses []string, limit int, offset uint64) ([]schema.Withdrawal, uint64, error)
	// RecordTreasuryTransaction creates a fund movement record and bumps the
	// treasury stats, once per (tx_hash, log_index) regardless of replays
	RecordTreasuryTransaction(ctx context.Context, transaction schema.TreasuryTransaction) error
	// GetTreasuryTransactions retrieves fund movements matching the filter with total count
	GetTreasuryTransactions(ctx context.Context, filter TreasuryTransactionFilter) ([]schema.TreasuryTransaction, uint64, error)
	// GetTreasuryBalances derives the per-token treasury balances from the movement log
	GetTreasuryBalances(ctx context.Context) ([]TreasuryBalance, error)
	// UpsertBudget creates or updates a budget allocation
	UpsertBudget(ctx context.Context, budget schema.Budget) error
	// GetBudgetByBudgetID retrieves a budget by its on-chain id
	GetBudgetByBudgetID(ctx context.Context, budgetID uint64) (*schema.Budget, error)
	// GetBudgets retrieves all budget allocations
	GetBudgets(ctx context.Context) ([]schema.Budget, error)

	// RecordParameterChange appends a parameter change and rolls the current
	// value forward, once per (tx_hash, log_index)
	RecordParameterChange(ctx context.Context, change schema.ParameterChange) error
	// GetGovernanceParameters retrieves the current value of every parameter
	GetGovernanceParameters(ctx context.Context) ([]schema.GovernanceParameter, error)
	// GetParameterChanges retrieves the change history for a parameter
	GetParameterChanges(ctx context.Context, name string, limit int, offset uint64) ([]schema.ParameterChange, uint64, error)
	// UpsertModule creates or updates a module registration
	UpsertModule(ctx context.Context, module schema.Module) error
	// GetModules retrieves module registrations, optionally active only
	GetModules(ctx context.Context, activeOnly bool) ([]schema.Module, error)
	// UpsertRoleAssignment creates or updates a role grant
	UpsertRoleAssignment(ctx context.Context, assignment schema.RoleAssignment) error
	// GetRolesByWallet retrieves the active roles held by a wallet
	GetRolesByWallet(ctx context.Context, wallet string) ([]schema.RoleAssignment, error)

	// CreateAuditRecord appends an audit record, once per (tx_hash, log_index)
	CreateAuditRecord(ctx context.Context, record schema.AuditRecord) error
	// GetAuditRecords retrieves audit records matching the filter with total count
	GetAuditRecords(ctx context.Context, filter AuditRecordFilter) ([]schema.AuditRecord, uint64, error)
	// UpsertComplianceRule creates or updates a compliance rule
	UpsertComplianceRule(ctx context.Context, rule schema.ComplianceRule) error
	// GetComplianceRules retrieves all compliance rules
	GetComplianceRules(ctx context.Context) ([]schema.ComplianceRule, error)
	// RecordViolation creates a violation and bumps the rule's counter,
	// once per violation id regardless of replays
	RecordViolation(ctx context.Context, violation schema.ComplianceViolation) error
	// ResolveViolation marks a violation resolved
	ResolveViolation(ctx context.Context, violationID uint64, resolver string, resolvedAt time.Time) error
	// GetViolationsByFilter retrieves violations matching the filter with total count
	GetViolationsByFilter(ctx context.Context, filter ViolationFilter) ([]schema.ComplianceViolation, uint64, error)

	// GetDailyStats retrieves daily aggregation buckets in [fromDay, toDay]
	GetDailyStats(ctx context.Context, fromDay, toDay int64) ([]schema.DailyStats, error)
	// GetMonthlyStats retrieves monthly aggregation buckets in [fromMonth, toMonth]
	GetMonthlyStats(ctx context.Context, fromMonth, toMonth string) ([]schema.MonthlyStats, error)

	// GetBlockCursor retrieves the last processed block number for a chain
	GetBlockCursor(ctx context.Context, chain string) (uint64, error)
	// SetBlockCursor stores the last processed block number for a chain
	SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error

	// TruncateReadModel clears every projection-owned table for a full
	// rebuild. The block cursor is reset too so replay starts from genesis.
	TruncateReadModel(ctx context.Context) error
}
