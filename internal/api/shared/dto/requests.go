package dto

// CastVoteRequest is the body for POST /api/v1/votes
type CastVoteRequest struct {
	ProposalID uint64 `json:"proposal_id" binding:"required"`
	Voter      string `json:"voter" binding:"required"`
	Support    string `json:"support" binding:"required"`
}

// CreateProposalRequest is the body for POST /api/v1/proposals
type CreateProposalRequest struct {
	Proposer    string `json:"proposer" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// ActorRequest carries the acting wallet for operations whose only
// input beyond the URL is who performs them
type ActorRequest struct {
	Actor string `json:"actor" binding:"required"`
}

// RegisterCitizenRequest is the body for POST /api/v1/citizens
type RegisterCitizenRequest struct {
	Wallet    string `json:"wallet" binding:"required"`
	BasePower string `json:"base_power" binding:"required"`
}

// DelegateRequest is the body for POST /api/v1/delegations
type DelegateRequest struct {
	Delegator string `json:"delegator" binding:"required"`
	Delegate  string `json:"delegate" binding:"required"`
}

// RemoveDelegationRequest is the body for DELETE /api/v1/delegations
type RemoveDelegationRequest struct {
	Delegator string `json:"delegator" binding:"required"`
}

// DepositRequest is the body for POST /api/v1/treasury/deposits
type DepositRequest struct {
	Actor  string `json:"actor" binding:"required"`
	Token  string `json:"token" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

// QueueWithdrawalRequest is the body for POST /api/v1/withdrawals
type QueueWithdrawalRequest struct {
	Actor      string `json:"actor" binding:"required"`
	ProposalID uint64 `json:"proposal_id" binding:"required"`
	Token      string `json:"token" binding:"required"`
	Recipient  string `json:"recipient" binding:"required"`
	Amount     string `json:"amount" binding:"required"`
}

// CreateBudgetRequest is the body for POST /api/v1/budgets
type CreateBudgetRequest struct {
	Actor    string `json:"actor" binding:"required"`
	Category string `json:"category" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
}

// UpdateParamsRequest is the body for PUT /api/v1/params. All fields are
// required: parameter updates replace the whole set atomically.
type UpdateParamsRequest struct {
	Actor                 string `json:"actor" binding:"required"`
	VotingPeriod          uint64 `json:"voting_period" binding:"required"`
	ExecutionDelaySeconds int64  `json:"execution_delay_seconds" binding:"required"`
	QuorumPercentage      uint64 `json:"quorum_percentage"`
	ProposalThreshold     string `json:"proposal_threshold" binding:"required"`
	GracePeriodSeconds    int64  `json:"grace_period_seconds" binding:"required"`
}

// RegisterModuleRequest is the body for POST /api/v1/modules
type RegisterModuleRequest struct {
	Actor    string `json:"actor" binding:"required"`
	ModuleID string `json:"module_id" binding:"required"`
	Address  string `json:"address" binding:"required"`
}

// RoleRequest is the body for POST /api/v1/roles/grant and /api/v1/roles/revoke
type RoleRequest struct {
	Actor   string `json:"actor" binding:"required"`
	Role    string `json:"role" binding:"required"`
	Account string `json:"account" binding:"required"`
}
