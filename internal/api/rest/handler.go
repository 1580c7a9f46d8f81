package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nexus-dao/nexus-governance/internal/api/shared/constants"
	"github.com/nexus-dao/nexus-governance/internal/api/shared/dto"
	"github.com/nexus-dao/nexus-governance/internal/api/shared/executor"
	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// CastVote casts a ballot through the vote pipeline
	// POST /api/v1/votes
	CastVote(c *gin.Context)

	// CreateProposal creates a new proposal
	// POST /api/v1/proposals
	CreateProposal(c *gin.Context)

	// GetProposal retrieves a single proposal
	// GET /api/v1/proposals/:id
	GetProposal(c *gin.Context)

	// ListProposals retrieves proposals with optional filters
	// GET /api/v1/proposals?status=<s1>&status=<s2>&category=<c>&proposer=<address>&limit=<limit>&offset=<offset>
	ListProposals(c *gin.Context)

	// ListProposalVotes retrieves the ballots cast on a proposal
	// GET /api/v1/proposals/:id/votes?limit=<limit>&offset=<offset>
	ListProposalVotes(c *gin.Context)

	// CancelProposal cancels a proposal, proposer only
	// POST /api/v1/proposals/:id/cancel
	CancelProposal(c *gin.Context)

	// FinalizeProposal settles a proposal whose voting window has closed
	// POST /api/v1/proposals/:id/finalize
	FinalizeProposal(c *gin.Context)

	// QueueProposal queues a succeeded proposal into the timelock pipeline
	// POST /api/v1/proposals/:id/queue
	QueueProposal(c *gin.Context)

	// ExecuteProposal executes a queued proposal whose timelock has elapsed
	// POST /api/v1/proposals/:id/execute
	ExecuteProposal(c *gin.Context)

	// RegisterCitizen registers a pending citizen
	// POST /api/v1/citizens
	RegisterCitizen(c *gin.Context)

	// GetCitizen retrieves a single citizen
	// GET /api/v1/citizens/:wallet
	GetCitizen(c *gin.Context)

	// ListCitizens retrieves citizens with optional status filters
	// GET /api/v1/citizens?status=<s1>&status=<s2>&limit=<limit>&offset=<offset>
	ListCitizens(c *gin.Context)

	// ListCitizenRoles retrieves the governance roles held by a wallet
	// GET /api/v1/citizens/:wallet/roles
	ListCitizenRoles(c *gin.Context)

	// ListCitizenVotes retrieves the ballots cast by a wallet
	// GET /api/v1/citizens/:wallet/votes?limit=<limit>&offset=<offset>
	ListCitizenVotes(c *gin.Context)

	// ApproveCitizenship activates a pending citizen (requires authentication)
	// POST /api/v1/citizens/:wallet/approve
	ApproveCitizenship(c *gin.Context)

	// RevokeCitizenship revokes a citizen (requires authentication)
	// POST /api/v1/citizens/:wallet/revoke
	RevokeCitizenship(c *gin.Context)

	// Delegate points the caller's voting power at another citizen
	// POST /api/v1/delegations
	Delegate(c *gin.Context)

	// RemoveDelegation returns the caller's voting power to self-held
	// DELETE /api/v1/delegations
	RemoveDelegation(c *gin.Context)

	// Deposit records a treasury deposit
	// POST /api/v1/treasury/deposits
	Deposit(c *gin.Context)

	// GetTreasuryBalances retrieves the per-token treasury balances
	// GET /api/v1/treasury/balance
	GetTreasuryBalances(c *gin.Context)

	// ListTreasuryTransactions retrieves treasury movements with optional filters
	// GET /api/v1/treasury/transactions?type=<t1>&proposal_id=<id>&limit=<limit>&offset=<offset>
	ListTreasuryTransactions(c *gin.Context)

	// QueueWithdrawal queues a multisig withdrawal bound to a proposal
	// POST /api/v1/withdrawals
	QueueWithdrawal(c *gin.Context)

	// GetWithdrawal retrieves a withdrawal and its approvals
	// GET /api/v1/withdrawals/:id
	GetWithdrawal(c *gin.Context)

	// ListWithdrawals retrieves withdrawals with optional status filters
	// GET /api/v1/withdrawals?status=<s1>&limit=<limit>&offset=<offset>
	ListWithdrawals(c *gin.Context)

	// ApproveWithdrawal adds one signer approval to a queued withdrawal
	// POST /api/v1/withdrawals/:id/approve
	ApproveWithdrawal(c *gin.Context)

	// CreateBudget creates a treasury budget allocation
	// POST /api/v1/budgets
	CreateBudget(c *gin.Context)

	// ListBudgets retrieves all budgets
	// GET /api/v1/budgets
	ListBudgets(c *gin.Context)

	// ApproveBudget adds one approval to a proposed budget
	// POST /api/v1/budgets/:id/approve
	ApproveBudget(c *gin.Context)

	// ListParameters retrieves the current governance parameter values
	// GET /api/v1/params
	ListParameters(c *gin.Context)

	// ListParameterChanges retrieves the change history of one parameter
	// GET /api/v1/params/:name/history?limit=<limit>&offset=<offset>
	ListParameterChanges(c *gin.Context)

	// UpdateParams replaces the governance parameter set (requires authentication)
	// PUT /api/v1/params
	UpdateParams(c *gin.Context)

	// ListModules retrieves registered modules
	// GET /api/v1/modules?active_only=<bool>
	ListModules(c *gin.Context)

	// RegisterModule registers a governance module address (requires authentication)
	// POST /api/v1/modules
	RegisterModule(c *gin.Context)

	// RemoveModule removes a registered module (requires authentication)
	// DELETE /api/v1/modules/:id
	RemoveModule(c *gin.Context)

	// GrantRole grants a governance role (requires authentication)
	// POST /api/v1/roles/grant
	GrantRole(c *gin.Context)

	// RevokeRole revokes a governance role (requires authentication)
	// POST /api/v1/roles/revoke
	RevokeRole(c *gin.Context)

	// Pause halts governance writes (requires authentication)
	// POST /api/v1/pause
	Pause(c *gin.Context)

	// Unpause resumes governance writes (requires authentication)
	// POST /api/v1/unpause
	Unpause(c *gin.Context)

	// ListAuditRecords retrieves audit log entries with optional filters
	// GET /api/v1/audit/records?subject=<s>&category=<c>&from=<rfc3339>&to=<rfc3339>&limit=<limit>&offset=<offset>
	ListAuditRecords(c *gin.Context)

	// ListComplianceRules retrieves all compliance rules
	// GET /api/v1/compliance/rules
	ListComplianceRules(c *gin.Context)

	// ListViolations retrieves compliance violations with optional filters
	// GET /api/v1/compliance/violations?rule_id=<id>&violator=<address>&unresolved_only=<bool>&limit=<limit>&offset=<offset>
	ListViolations(c *gin.Context)

	// GetDailyStats retrieves daily aggregation buckets
	// GET /api/v1/stats/daily?days=<n>
	GetDailyStats(c *gin.Context)

	// GetMonthlyStats retrieves monthly aggregation buckets
	// GET /api/v1/stats/monthly?months=<n>
	GetMonthlyStats(c *gin.Context)

	// GetGovernanceHealth summarizes governance liveness
	// GET /api/v1/stats/health
	GetGovernanceHealth(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// parseWalletParam parses and normalizes a wallet path parameter
func parseWalletParam(c *gin.Context) (string, bool) {
	wallet := domain.NewAddress(c.Param("wallet"))
	if !wallet.Valid() {
		respondBadRequest(c, "Invalid wallet address")
		return "", false
	}
	return wallet.String(), true
}

func (h *handler) CastVote(c *gin.Context) {
	var req dto.CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.CastVote(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) CreateProposal(c *gin.Context) {
	var req dto.CreateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.CreateProposal(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetProposal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	proposal, err := h.executor.GetProposal(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if proposal == nil {
		respondNotFound(c, "Proposal not found")
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *handler) ListProposals(c *gin.Context) {
	params, err := ParseListProposalsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListProposals(c.Request.Context(), params.Statuses, params.Categories, params.Proposer, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListProposalVotes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	params.cap()

	resp, err := h.executor.ListProposalVotes(c.Request.Context(), id, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) CancelProposal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	proposal, err := h.executor.CancelProposal(c.Request.Context(), id, req.Actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *handler) FinalizeProposal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.executor.FinalizeProposal(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) QueueProposal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	resp, err := h.executor.QueueProposalExecution(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resp)
}

func (h *handler) ExecuteProposal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	proposal, err := h.executor.ExecuteProposal(c.Request.Context(), id, req.Actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, proposal)
}

func (h *handler) RegisterCitizen(c *gin.Context) {
	var req dto.RegisterCitizenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	citizen, err := h.executor.RegisterCitizen(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, citizen)
}

func (h *handler) GetCitizen(c *gin.Context) {
	wallet, ok := parseWalletParam(c)
	if !ok {
		return
	}

	citizen, err := h.executor.GetCitizen(c.Request.Context(), wallet)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if citizen == nil {
		respondNotFound(c, "Citizen not found")
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *handler) ListCitizens(c *gin.Context) {
	params, err := ParseListCitizensQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListCitizens(c.Request.Context(), params.Statuses, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListCitizenRoles(c *gin.Context) {
	wallet, ok := parseWalletParam(c)
	if !ok {
		return
	}

	resp, err := h.executor.ListCitizenRoles(c.Request.Context(), wallet)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListCitizenVotes(c *gin.Context) {
	wallet, ok := parseWalletParam(c)
	if !ok {
		return
	}
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	params.cap()

	resp, err := h.executor.ListVoterVotes(c.Request.Context(), wallet, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ApproveCitizenship(c *gin.Context) {
	wallet, ok := parseWalletParam(c)
	if !ok {
		return
	}
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	citizen, err := h.executor.ApproveCitizenship(c.Request.Context(), wallet, req.Actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *handler) RevokeCitizenship(c *gin.Context) {
	wallet, ok := parseWalletParam(c)
	if !ok {
		return
	}
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	citizen, err := h.executor.RevokeCitizenship(c.Request.Context(), wallet, req.Actor)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *handler) Delegate(c *gin.Context) {
	var req dto.DelegateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	citizen, err := h.executor.Delegate(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *handler) RemoveDelegation(c *gin.Context) {
	var req dto.RemoveDelegationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	citizen, err := h.executor.RemoveDelegation(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, citizen)
}

func (h *handler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.Deposit(c.Request.Context(), req); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) GetTreasuryBalances(c *gin.Context) {
	resp, err := h.executor.GetTreasuryBalances(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListTreasuryTransactions(c *gin.Context) {
	params, err := ParseListTreasuryTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListTreasuryTransactions(c.Request.Context(), params.Types, params.ProposalID, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) QueueWithdrawal(c *gin.Context) {
	var req dto.QueueWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.QueueWithdrawal(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handler) GetWithdrawal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	withdrawal, err := h.executor.GetWithdrawal(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if withdrawal == nil {
		respondNotFound(c, "Withdrawal not found")
		return
	}
	c.JSON(http.StatusOK, withdrawal)
}

func (h *handler) ListWithdrawals(c *gin.Context) {
	params, err := ParseListWithdrawalsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListWithdrawals(c.Request.Context(), params.Statuses, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ApproveWithdrawal(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.ApproveWithdrawal(c.Request.Context(), id, req.Actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) CreateBudget(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.CreateBudget(c.Request.Context(), req)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *handler) ListBudgets(c *gin.Context) {
	resp, err := h.executor.ListBudgets(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ApproveBudget(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.ApproveBudget(c.Request.Context(), id, req.Actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) ListParameters(c *gin.Context) {
	resp, err := h.executor.ListParameters(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListParameterChanges(c *gin.Context) {
	name := c.Param("name")
	if name == "" {
		respondBadRequest(c, "Parameter name is required")
		return
	}
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	params.cap()

	resp, err := h.executor.ListParameterChanges(c.Request.Context(), name, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) UpdateParams(c *gin.Context) {
	var req dto.UpdateParamsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.UpdateParams(c.Request.Context(), req); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) ListModules(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	resp, err := h.executor.ListModules(c.Request.Context(), activeOnly)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) RegisterModule(c *gin.Context) {
	var req dto.RegisterModuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.RegisterModule(c.Request.Context(), req); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

func (h *handler) RemoveModule(c *gin.Context) {
	moduleID := c.Param("id")
	if moduleID == "" {
		respondBadRequest(c, "Module ID is required")
		return
	}
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.RemoveModule(c.Request.Context(), moduleID, req.Actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) GrantRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.GrantRole(c.Request.Context(), req); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) RevokeRole(c *gin.Context) {
	var req dto.RoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.RevokeRole(c.Request.Context(), req); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) Pause(c *gin.Context) {
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.Pause(c.Request.Context(), req.Actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) Unpause(c *gin.Context) {
	var req dto.ActorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if err := h.executor.Unpause(c.Request.Context(), req.Actor); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) ListAuditRecords(c *gin.Context) {
	params, from, to, err := ParseListAuditRecordsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListAuditRecords(c.Request.Context(), params.Subject, params.Category, from, to, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListComplianceRules(c *gin.Context) {
	resp, err := h.executor.ListComplianceRules(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListViolations(c *gin.Context) {
	params, err := ParseListViolationsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListViolations(c.Request.Context(), params.RuleID, params.Violator, params.UnresolvedOnly, params.Limit, params.Offset)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetDailyStats(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(constants.DEFAULT_STATS_DAYS)))
	if err != nil || days <= 0 {
		respondBadRequest(c, "Invalid days parameter")
		return
	}

	resp, err := h.executor.GetDailyStats(c.Request.Context(), days)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetMonthlyStats(c *gin.Context) {
	months, err := strconv.Atoi(c.DefaultQuery("months", strconv.Itoa(constants.DEFAULT_STATS_MONTHS)))
	if err != nil || months <= 0 {
		respondBadRequest(c, "Invalid months parameter")
		return
	}

	resp, err := h.executor.GetMonthlyStats(c.Request.Context(), months)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetGovernanceHealth(c *gin.Context) {
	resp, err := h.executor.GetGovernanceHealth(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
