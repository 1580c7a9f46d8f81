package dto

// Pagination carries list paging info. NextOffset is nil on the last page.
type Pagination struct {
	Total      uint64  `json:"total"`
	NextOffset *uint64 `json:"next_offset,omitempty"`
}

// NewPagination builds pagination info from the query window and total count
func NewPagination(offset uint64, returned int, total uint64) Pagination {
	p := Pagination{Total: total}
	if offset+uint64(returned) < total { //nolint:gosec,G115
		next := offset + uint64(returned) //nolint:gosec,G115
		p.NextOffset = &next
	}
	return p
}

// ProposalListResponse is the response for GET /api/v1/proposals
type ProposalListResponse struct {
	Proposals  []ProposalResponse `json:"proposals"`
	Pagination Pagination         `json:"pagination"`
}

// VoteListResponse is the response for vote listings
type VoteListResponse struct {
	Votes      []VoteResponse `json:"votes"`
	Pagination Pagination     `json:"pagination"`
}

// CitizenListResponse is the response for GET /api/v1/citizens
type CitizenListResponse struct {
	Citizens   []CitizenResponse `json:"citizens"`
	Pagination Pagination        `json:"pagination"`
}

// TreasuryBalanceListResponse is the response for GET /api/v1/treasury/balance
type TreasuryBalanceListResponse struct {
	Balances []TreasuryBalanceResponse `json:"balances"`
}

// TreasuryTransactionListResponse is the response for GET /api/v1/treasury/transactions
type TreasuryTransactionListResponse struct {
	Transactions []TreasuryTransactionResponse `json:"transactions"`
	Pagination   Pagination                    `json:"pagination"`
}

// WithdrawalListResponse is the response for GET /api/v1/withdrawals
type WithdrawalListResponse struct {
	Withdrawals []WithdrawalResponse `json:"withdrawals"`
	Pagination  Pagination           `json:"pagination"`
}

// BudgetListResponse is the response for GET /api/v1/budgets
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ParameterListResponse is the response for GET /api/v1/params
type ParameterListResponse struct {
	Parameters []ParameterResponse `json:"parameters"`
}

// ParameterChangeListResponse is the response for GET /api/v1/params/:name/history
type ParameterChangeListResponse struct {
	Changes    []ParameterChangeResponse `json:"changes"`
	Pagination Pagination                `json:"pagination"`
}

// ModuleListResponse is the response for GET /api/v1/modules
type ModuleListResponse struct {
	Modules []ModuleResponse `json:"modules"`
}

// RoleListResponse is the response for GET /api/v1/citizens/:wallet/roles
type RoleListResponse struct {
	Roles []RoleAssignmentResponse `json:"roles"`
}

// AuditRecordListResponse is the response for GET /api/v1/audit/records
type AuditRecordListResponse struct {
	Records    []AuditRecordResponse `json:"records"`
	Pagination Pagination            `json:"pagination"`
}

// ComplianceRuleListResponse is the response for GET /api/v1/compliance/rules
type ComplianceRuleListResponse struct {
	Rules []ComplianceRuleResponse `json:"rules"`
}

// ViolationListResponse is the response for GET /api/v1/compliance/violations
type ViolationListResponse struct {
	Violations []ViolationResponse `json:"violations"`
	Pagination Pagination          `json:"pagination"`
}

// DailyStatsListResponse is the response for GET /api/v1/stats/daily
type DailyStatsListResponse struct {
	Stats []DailyStatsResponse `json:"stats"`
}

// MonthlyStatsListResponse is the response for GET /api/v1/stats/monthly
type MonthlyStatsListResponse struct {
	Stats []MonthlyStatsResponse `json:"stats"`
}

// CastVoteResponse is the response for POST /api/v1/votes
type CastVoteResponse struct {
	ProposalID uint64 `json:"proposal_id"`
	Voter      string `json:"voter"`
	Support    string `json:"support"`
	Weight     string `json:"weight"`
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// CreateProposalResponse is the response for POST /api/v1/proposals
type CreateProposalResponse struct {
	ProposalID uint64            `json:"proposal_id"`
	Proposal   *ProposalResponse `json:"proposal"`
}

// FinalizeProposalResponse is the response for POST /api/v1/proposals/:id/finalize
type FinalizeProposalResponse struct {
	ProposalID uint64 `json:"proposal_id"`
	Status     string `json:"status"`
}

// WorkflowTriggerResponse acknowledges an asynchronously started pipeline
type WorkflowTriggerResponse struct {
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`
}

// QueueWithdrawalResponse is the response for POST /api/v1/withdrawals
type QueueWithdrawalResponse struct {
	WithdrawalID uint64 `json:"withdrawal_id"`
}

// CreateBudgetResponse is the response for POST /api/v1/budgets
type CreateBudgetResponse struct {
	BudgetID uint64 `json:"budget_id"`
}
