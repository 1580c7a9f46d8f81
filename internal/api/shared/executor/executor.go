package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/client"

	"github.com/nexus-dao/nexus-governance/internal/api/shared/constants"
	"github.com/nexus-dao/nexus-governance/internal/api/shared/dto"
	apierrors "github.com/nexus-dao/nexus-governance/internal/api/shared/errors"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/governance"
	"github.com/nexus-dao/nexus-governance/internal/providers/temporal"
	"github.com/nexus-dao/nexus-governance/internal/store"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
	"github.com/nexus-dao/nexus-governance/internal/workflows"
)

// Executor is the interface for the API executor. Read operations answer
// from the projection; write operations go through the governance ledger
// (directly or via a Temporal pipeline) and answer from the ledger, so a
// writer always reads their own write.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CastVote runs the cast-vote pipeline synchronously and returns the receipt
	CastVote(ctx context.Context, req dto.CastVoteRequest) (*dto.CastVoteResponse, error)

	// CreateProposal creates a proposal through the ledger
	CreateProposal(ctx context.Context, req dto.CreateProposalRequest) (*dto.CreateProposalResponse, error)

	// CancelProposal cancels a proposal, proposer only
	CancelProposal(ctx context.Context, proposalID uint64, actor string) (*dto.ProposalResponse, error)

	// FinalizeProposal settles a closed proposal through the finalize workflow
	FinalizeProposal(ctx context.Context, proposalID uint64) (*dto.FinalizeProposalResponse, error)

	// QueueProposalExecution starts the execute pipeline (queue, timelock, execute)
	// and returns without waiting for the timelock
	QueueProposalExecution(ctx context.Context, proposalID uint64) (*dto.WorkflowTriggerResponse, error)

	// ExecuteProposal executes an already queued proposal whose timelock has elapsed
	ExecuteProposal(ctx context.Context, proposalID uint64, actor string) (*dto.ProposalResponse, error)

	// RegisterCitizen registers a pending citizen
	RegisterCitizen(ctx context.Context, req dto.RegisterCitizenRequest) (*dto.CitizenResponse, error)

	// ApproveCitizenship activates a pending citizen, administrator only
	ApproveCitizenship(ctx context.Context, wallet, actor string) (*dto.CitizenResponse, error)

	// RevokeCitizenship revokes a citizen, administrator only
	RevokeCitizenship(ctx context.Context, wallet, actor string) (*dto.CitizenResponse, error)

	// Delegate points the delegator's voting power at the delegate
	Delegate(ctx context.Context, req dto.DelegateRequest) (*dto.CitizenResponse, error)

	// RemoveDelegation returns the delegator's power to self-held
	RemoveDelegation(ctx context.Context, req dto.RemoveDelegationRequest) (*dto.CitizenResponse, error)

	// Deposit records a treasury deposit
	Deposit(ctx context.Context, req dto.DepositRequest) error

	// QueueWithdrawal queues a multisig withdrawal bound to a proposal
	QueueWithdrawal(ctx context.Context, req dto.QueueWithdrawalRequest) (*dto.QueueWithdrawalResponse, error)

	// ApproveWithdrawal adds one signer approval to a queued withdrawal
	ApproveWithdrawal(ctx context.Context, withdrawalID uint64, approver string) error

	// CreateBudget creates a treasury budget allocation
	CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*dto.CreateBudgetResponse, error)

	// ApproveBudget adds one approval to a proposed budget
	ApproveBudget(ctx context.Context, budgetID uint64, approver string) error

	// UpdateParams replaces the governance parameter set, administrator only
	UpdateParams(ctx context.Context, req dto.UpdateParamsRequest) error

	// RegisterModule registers a governance module address
	RegisterModule(ctx context.Context, req dto.RegisterModuleRequest) error

	// RemoveModule removes a registered module
	RemoveModule(ctx context.Context, moduleID, actor string) error

	// GrantRole grants a governance role
	GrantRole(ctx context.Context, req dto.RoleRequest) error

	// RevokeRole revokes a governance role
	RevokeRole(ctx context.Context, req dto.RoleRequest) error

	// Pause halts all governance writes, guardian only
	Pause(ctx context.Context, actor string) error

	// Unpause resumes governance writes
	Unpause(ctx context.Context, actor string) error

	// GetProposal retrieves one proposal from the read model
	GetProposal(ctx context.Context, proposalID uint64) (*dto.ProposalResponse, error)

	// ListProposals retrieves proposals with optional filters
	ListProposals(ctx context.Context, statuses, categories []string, proposer string, limit int, offset uint64) (*dto.ProposalListResponse, error)

	// ListProposalVotes retrieves the ballots cast on a proposal
	ListProposalVotes(ctx context.Context, proposalID uint64, limit int, offset uint64) (*dto.VoteListResponse, error)

	// ListVoterVotes retrieves the ballots cast by a wallet
	ListVoterVotes(ctx context.Context, voter string, limit int, offset uint64) (*dto.VoteListResponse, error)

	// GetCitizen retrieves one citizen from the read model
	GetCitizen(ctx context.Context, wallet string) (*dto.CitizenResponse, error)

	// ListCitizens retrieves citizens with optional status filters
	ListCitizens(ctx context.Context, statuses []string, limit int, offset uint64) (*dto.CitizenListResponse, error)

	// ListCitizenRoles retrieves the governance roles held by a wallet
	ListCitizenRoles(ctx context.Context, wallet string) (*dto.RoleListResponse, error)

	// GetTreasuryBalances retrieves the per-token treasury balances
	GetTreasuryBalances(ctx context.Context) (*dto.TreasuryBalanceListResponse, error)

	// ListTreasuryTransactions retrieves treasury movements with optional filters
	ListTreasuryTransactions(ctx context.Context, types []string, proposalID uint64, limit int, offset uint64) (*dto.TreasuryTransactionListResponse, error)

	// ListWithdrawals retrieves withdrawals with optional status filters
	ListWithdrawals(ctx context.Context, statuses []string, limit int, offset uint64) (*dto.WithdrawalListResponse, error)

	// GetWithdrawal retrieves one withdrawal and its approvals
	GetWithdrawal(ctx context.Context, withdrawalID uint64) (*dto.WithdrawalResponse, error)

	// ListBudgets retrieves all budgets
	ListBudgets(ctx context.Context) (*dto.BudgetListResponse, error)

	// ListParameters retrieves the current governance parameter values
	ListParameters(ctx context.Context) (*dto.ParameterListResponse, error)

	// ListParameterChanges retrieves the change history of one parameter
	ListParameterChanges(ctx context.Context, name string, limit int, offset uint64) (*dto.ParameterChangeListResponse, error)

	// ListModules retrieves registered modules
	ListModules(ctx context.Context, activeOnly bool) (*dto.ModuleListResponse, error)

	// ListAuditRecords retrieves audit log entries with optional filters
	ListAuditRecords(ctx context.Context, subject, category string, from, to *time.Time, limit int, offset uint64) (*dto.AuditRecordListResponse, error)

	// ListComplianceRules retrieves all compliance rules
	ListComplianceRules(ctx context.Context) (*dto.ComplianceRuleListResponse, error)

	// ListViolations retrieves compliance violations with optional filters
	ListViolations(ctx context.Context, ruleID uint64, violator string, unresolvedOnly bool, limit int, offset uint64) (*dto.ViolationListResponse, error)

	// GetDailyStats retrieves daily aggregation buckets
	GetDailyStats(ctx context.Context, days int) (*dto.DailyStatsListResponse, error)

	// GetMonthlyStats retrieves monthly aggregation buckets
	GetMonthlyStats(ctx context.Context, months int) (*dto.MonthlyStatsListResponse, error)

	// GetGovernanceHealth summarizes governance liveness from the read model
	GetGovernanceHealth(ctx context.Context) (*dto.GovernanceHealthResponse, error)
}

type executor struct {
	store                 store.Store
	ledger                *governance.Ledger
	orchestrator          temporal.TemporalOrchestrator
	orchestratorTaskQueue string
}

// NewExecutor creates the shared API executor
func NewExecutor(store store.Store, ledger *governance.Ledger, orchestrator temporal.TemporalOrchestrator, orchestratorTaskQueue string) Executor {
	return &executor{
		store:                 store,
		ledger:                ledger,
		orchestrator:          orchestrator,
		orchestratorTaskQueue: orchestratorTaskQueue,
	}
}

func (e *executor) CastVote(ctx context.Context, req dto.CastVoteRequest) (*dto.CastVoteResponse, error) {
	support := domain.VoteSupport(req.Support)
	if !support.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid vote support: %s", req.Support))
	}

	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("cast-vote-%d-%s-%s", req.ProposalID, req.Voter, uuid.NewString()),
		TaskQueue: e.orchestratorTaskQueue,
	}

	run, err := e.orchestrator.ExecuteWorkflow(ctx, options, "CastVotePipeline", workflows.VoteRequest{
		ProposalID: req.ProposalID,
		Voter:      req.Voter,
		Support:    support,
	})
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start cast vote pipeline: %v", err))
	}

	var receipt workflows.VoteReceipt
	if err := run.Get(ctx, &receipt); err != nil {
		// Pipeline errors carry the stage's user-facing message
		return nil, err
	}

	return &dto.CastVoteResponse{
		ProposalID: receipt.ProposalID,
		Voter:      receipt.Voter,
		Support:    string(receipt.Support),
		Weight:     receipt.Weight,
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

func (e *executor) CreateProposal(ctx context.Context, req dto.CreateProposalRequest) (*dto.CreateProposalResponse, error) {
	category := domain.ProposalCategory(req.Category)
	if !category.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid proposal category: %s", req.Category))
	}
	proposer := domain.NewAddress(req.Proposer)
	if !proposer.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid proposer address: %s", req.Proposer))
	}

	id, err := e.ledger.CreateProposal(ctx, proposer, req.Description, category)
	if err != nil {
		return nil, err
	}

	view, err := e.ledger.GetProposal(id)
	if err != nil {
		return nil, err
	}

	return &dto.CreateProposalResponse{
		ProposalID: id,
		Proposal:   dto.MapProposalViewToDTO(view),
	}, nil
}

func (e *executor) CancelProposal(ctx context.Context, proposalID uint64, actor string) (*dto.ProposalResponse, error) {
	if err := e.ledger.CancelProposal(ctx, domain.NewAddress(actor), proposalID); err != nil {
		return nil, err
	}
	view, err := e.ledger.GetProposal(proposalID)
	if err != nil {
		return nil, err
	}
	return dto.MapProposalViewToDTO(view), nil
}

func (e *executor) FinalizeProposal(ctx context.Context, proposalID uint64) (*dto.FinalizeProposalResponse, error) {
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("finalize-proposal-%d", proposalID),
		TaskQueue: e.orchestratorTaskQueue,
	}

	run, err := e.orchestrator.ExecuteWorkflow(ctx, options, "FinalizeProposal", proposalID)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start finalize workflow: %v", err))
	}

	var status domain.ProposalStatus
	if err := run.Get(ctx, &status); err != nil {
		return nil, err
	}

	return &dto.FinalizeProposalResponse{
		ProposalID: proposalID,
		Status:     string(status),
	}, nil
}

func (e *executor) QueueProposalExecution(ctx context.Context, proposalID uint64) (*dto.WorkflowTriggerResponse, error) {
	// The proposal must be finalizable as succeeded before the pipeline
	// is started, otherwise the caller gets an opaque async failure.
	view, err := e.ledger.GetProposal(proposalID)
	if err != nil {
		return nil, err
	}
	if view.State != domain.ProposalStatusSucceeded {
		return nil, domain.ErrNotSucceeded
	}

	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("execute-proposal-%d", proposalID),
		TaskQueue: e.orchestratorTaskQueue,
	}

	run, err := e.orchestrator.ExecuteWorkflow(ctx, options, "ExecuteProposalPipeline", proposalID)
	if err != nil {
		return nil, apierrors.NewServiceError(fmt.Sprintf("Failed to start execute pipeline: %v", err))
	}

	return &dto.WorkflowTriggerResponse{
		WorkflowID: run.GetID(),
		RunID:      run.GetRunID(),
	}, nil
}

func (e *executor) ExecuteProposal(ctx context.Context, proposalID uint64, actor string) (*dto.ProposalResponse, error) {
	if err := e.ledger.ExecuteProposal(ctx, domain.NewAddress(actor), proposalID); err != nil {
		return nil, err
	}
	view, err := e.ledger.GetProposal(proposalID)
	if err != nil {
		return nil, err
	}
	return dto.MapProposalViewToDTO(view), nil
}

func (e *executor) RegisterCitizen(ctx context.Context, req dto.RegisterCitizenRequest) (*dto.CitizenResponse, error) {
	wallet := domain.NewAddress(req.Wallet)
	if !wallet.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid wallet address: %s", req.Wallet))
	}
	power, err := domain.ParseAmount(req.BasePower)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid base power: %s", req.BasePower))
	}

	if err := e.ledger.RegisterCitizen(ctx, wallet, power); err != nil {
		return nil, err
	}
	return e.ledgerCitizen(wallet)
}

func (e *executor) ApproveCitizenship(ctx context.Context, wallet, actor string) (*dto.CitizenResponse, error) {
	w := domain.NewAddress(wallet)
	if err := e.ledger.ApproveCitizenship(ctx, domain.NewAddress(actor), w); err != nil {
		return nil, err
	}
	return e.ledgerCitizen(w)
}

func (e *executor) RevokeCitizenship(ctx context.Context, wallet, actor string) (*dto.CitizenResponse, error) {
	w := domain.NewAddress(wallet)
	if err := e.ledger.RevokeCitizenship(ctx, domain.NewAddress(actor), w); err != nil {
		return nil, err
	}
	return e.ledgerCitizen(w)
}

func (e *executor) Delegate(ctx context.Context, req dto.DelegateRequest) (*dto.CitizenResponse, error) {
	delegator := domain.NewAddress(req.Delegator)
	if err := e.ledger.Delegate(ctx, delegator, domain.NewAddress(req.Delegate)); err != nil {
		return nil, err
	}
	return e.ledgerCitizen(delegator)
}

func (e *executor) RemoveDelegation(ctx context.Context, req dto.RemoveDelegationRequest) (*dto.CitizenResponse, error) {
	delegator := domain.NewAddress(req.Delegator)
	if err := e.ledger.RemoveDelegation(ctx, delegator); err != nil {
		return nil, err
	}
	return e.ledgerCitizen(delegator)
}

// ledgerCitizen reads a citizen back from the write path
func (e *executor) ledgerCitizen(wallet domain.Address) (*dto.CitizenResponse, error) {
	c, err := e.ledger.GetCitizen(wallet)
	if err != nil {
		return nil, err
	}
	return dto.MapLedgerCitizenToDTO(c), nil
}

func (e *executor) Deposit(ctx context.Context, req dto.DepositRequest) error {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid amount: %s", req.Amount))
	}
	return e.ledger.Deposit(ctx, domain.NewAddress(req.Actor), domain.NewAddress(req.Token), amount)
}

func (e *executor) QueueWithdrawal(ctx context.Context, req dto.QueueWithdrawalRequest) (*dto.QueueWithdrawalResponse, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid amount: %s", req.Amount))
	}
	recipient := domain.NewAddress(req.Recipient)
	if !recipient.Valid() {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid recipient address: %s", req.Recipient))
	}

	id, err := e.ledger.QueueWithdrawal(ctx, domain.NewAddress(req.Actor), governance.WithdrawalRequest{
		ProposalID: req.ProposalID,
		Token:      domain.NewAddress(req.Token),
		Recipient:  recipient,
		Amount:     amount,
	})
	if err != nil {
		return nil, err
	}
	return &dto.QueueWithdrawalResponse{WithdrawalID: id}, nil
}

func (e *executor) ApproveWithdrawal(ctx context.Context, withdrawalID uint64, approver string) error {
	return e.ledger.ApproveWithdrawal(ctx, domain.NewAddress(approver), withdrawalID)
}

func (e *executor) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*dto.CreateBudgetResponse, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return nil, apierrors.NewValidationError(fmt.Sprintf("invalid amount: %s", req.Amount))
	}
	id, err := e.ledger.CreateBudget(ctx, domain.NewAddress(req.Actor), req.Category, amount)
	if err != nil {
		return nil, err
	}
	return &dto.CreateBudgetResponse{BudgetID: id}, nil
}

func (e *executor) ApproveBudget(ctx context.Context, budgetID uint64, approver string) error {
	return e.ledger.ApproveBudget(ctx, domain.NewAddress(approver), budgetID)
}

func (e *executor) UpdateParams(ctx context.Context, req dto.UpdateParamsRequest) error {
	threshold, err := domain.ParseAmount(req.ProposalThreshold)
	if err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid proposal threshold: %s", req.ProposalThreshold))
	}

	return e.ledger.UpdateGovernanceParams(ctx, domain.NewAddress(req.Actor), governance.Params{
		VotingPeriod:      req.VotingPeriod,
		ExecutionDelay:    time.Duration(req.ExecutionDelaySeconds) * time.Second,
		QuorumPercentage:  req.QuorumPercentage,
		ProposalThreshold: threshold,
		GracePeriod:       time.Duration(req.GracePeriodSeconds) * time.Second,
	})
}

func (e *executor) RegisterModule(ctx context.Context, req dto.RegisterModuleRequest) error {
	address := domain.NewAddress(req.Address)
	if !address.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid module address: %s", req.Address))
	}
	return e.ledger.RegisterModule(ctx, domain.NewAddress(req.Actor), req.ModuleID, address)
}

func (e *executor) RemoveModule(ctx context.Context, moduleID, actor string) error {
	return e.ledger.RemoveModule(ctx, domain.NewAddress(actor), moduleID)
}

func (e *executor) GrantRole(ctx context.Context, req dto.RoleRequest) error {
	role := domain.Role(req.Role)
	if !role.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid role: %s", req.Role))
	}
	return e.ledger.GrantRole(ctx, domain.NewAddress(req.Actor), role, domain.NewAddress(req.Account))
}

func (e *executor) RevokeRole(ctx context.Context, req dto.RoleRequest) error {
	role := domain.Role(req.Role)
	if !role.Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid role: %s", req.Role))
	}
	return e.ledger.RevokeRole(ctx, domain.NewAddress(req.Actor), role, domain.NewAddress(req.Account))
}

func (e *executor) Pause(ctx context.Context, actor string) error {
	return e.ledger.Pause(ctx, domain.NewAddress(actor))
}

func (e *executor) Unpause(ctx context.Context, actor string) error {
	return e.ledger.Unpause(ctx, domain.NewAddress(actor))
}

func (e *executor) GetProposal(ctx context.Context, proposalID uint64) (*dto.ProposalResponse, error) {
	p, err := e.store.GetProposalByProposalID(ctx, proposalID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get proposal: %v", err))
	}
	if p == nil {
		return nil, nil
	}
	return dto.MapProposalToDTO(*p), nil
}

func (e *executor) ListProposals(ctx context.Context, statuses, categories []string, proposer string, limit int, offset uint64) (*dto.ProposalListResponse, error) {
	proposals, total, err := e.store.GetProposalsByFilter(ctx, store.ProposalQueryFilter{
		Statuses:   statuses,
		Categories: categories,
		Proposer:   proposer,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get proposals: %v", err))
	}

	items := make([]dto.ProposalResponse, len(proposals))
	for i, p := range proposals {
		items[i] = *dto.MapProposalToDTO(p)
	}
	return &dto.ProposalListResponse{
		Proposals:  items,
		Pagination: dto.NewPagination(offset, len(items), total),
	}, nil
}

func (e *executor) ListProposalVotes(ctx context.Context, proposalID uint64, limit int, offset uint64) (*dto.VoteListResponse, error) {
	votes, total, err := e.store.GetVotesByProposal(ctx, proposalID, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get votes: %v", err))
	}
	return mapVoteList(votes, offset, total), nil
}

func (e *executor) ListVoterVotes(ctx context.Context, voter string, limit int, offset uint64) (*dto.VoteListResponse, error) {
	votes, total, err := e.store.GetVotesByVoter(ctx, voter, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get votes: %v", err))
	}
	return mapVoteList(votes, offset, total), nil
}

func mapVoteList(votes []schema.Vote, offset uint64, total uint64) *dto.VoteListResponse {
	items := make([]dto.VoteResponse, len(votes))
	for i, v := range votes {
		items[i] = *dto.MapVoteToDTO(v)
	}
	return &dto.VoteListResponse{
		Votes:      items,
		Pagination: dto.NewPagination(offset, len(items), total),
	}
}

func (e *executor) GetCitizen(ctx context.Context, wallet string) (*dto.CitizenResponse, error) {
	c, err := e.store.GetCitizenByWallet(ctx, domain.NewAddress(wallet).String())
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get citizen: %v", err))
	}
	if c == nil {
		return nil, nil
	}
	return dto.MapCitizenToDTO(*c), nil
}

func (e *executor) ListCitizens(ctx context.Context, statuses []string, limit int, offset uint64) (*dto.CitizenListResponse, error) {
	citizens, total, err := e.store.GetCitizensByFilter(ctx, store.CitizenQueryFilter{
		Statuses: statuses,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get citizens: %v", err))
	}

	items := make([]dto.CitizenResponse, len(citizens))
	for i, c := range citizens {
		items[i] = *dto.MapCitizenToDTO(c)
	}
	return &dto.CitizenListResponse{
		Citizens:   items,
		Pagination: dto.NewPagination(offset, len(items), total),
	}, nil
}

func (e *executor) ListCitizenRoles(ctx context.Context, wallet string) (*dto.RoleListResponse, error) {
	roles, err := e.store.GetRolesByWallet(ctx, domain.NewAddress(wallet).String())
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get roles: %v", err))
	}
	resp := &dto.RoleListResponse{Roles: make([]dto.RoleAssignmentResponse, len(roles))}
	for i, r := range roles {
		resp.Roles[i] = *dto.MapRoleAssignmentToDTO(r)
	}
	return resp, nil
}

func (e *executor) GetTreasuryBalances(ctx context.Context) (*dto.TreasuryBalanceListResponse, error) {
	balances, err := e.store.GetTreasuryBalances(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get treasury balances: %v", err))
	}
	resp := &dto.TreasuryBalanceListResponse{Balances: make([]dto.TreasuryBalanceResponse, len(balances))}
	for i, b := range balances {
		resp.Balances[i] = dto.MapTreasuryBalanceToDTO(b)
	}
	return resp, nil
}

func (e *executor) ListTreasuryTransactions(ctx context.Context, types []string, proposalID uint64, limit int, offset uint64) (*dto.TreasuryTransactionListResponse, error) {
	transactions, total, err := e.store.GetTreasuryTransactions(ctx, store.TreasuryTransactionFilter{
		Types:      types,
		ProposalID: proposalID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get treasury transactions: %v", err))
	}

	items := make([]dto.TreasuryTransactionResponse, len(transactions))
	for i, t := range transactions {
		items[i] = *dto.MapTreasuryTransactionToDTO(t)
	}
	return &dto.TreasuryTransactionListResponse{
		Transactions: items,
		Pagination:   dto.NewPagination(offset, len(items), total),
	}, nil
}

func (e *executor) ListWithdrawals(ctx context.Context, statuses []string, limit int, offset uint64) (*dto.WithdrawalListResponse, error) {
	withdrawals, total, err := e.store.GetWithdrawalsByFilter(ctx, statuses, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get withdrawals: %v", err))
	}

	items := make([]dto.WithdrawalResponse, len(withdrawals))
	for i, w := range withdrawals {
		items[i] = *dto.MapWithdrawalToDTO(w, nil)
	}
	return &dto.WithdrawalListResponse{
		Withdrawals: items,
		Pagination:  dto.NewPagination(offset, len(items), total),
	}, nil
}

func (e *executor) GetWithdrawal(ctx context.Context, withdrawalID uint64) (*dto.WithdrawalResponse, error) {
	w, err := e.store.GetWithdrawalByWithdrawalID(ctx, withdrawalID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get withdrawal: %v", err))
	}
	if w == nil {
		return nil, nil
	}
	approvals, err := e.store.GetWithdrawalApprovals(ctx, withdrawalID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get withdrawal approvals: %v", err))
	}
	return dto.MapWithdrawalToDTO(*w, approvals), nil
}

func (e *executor) ListBudgets(ctx context.Context) (*dto.BudgetListResponse, error) {
	budgets, err := e.store.GetBudgets(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get budgets: %v", err))
	}
	resp := &dto.BudgetListResponse{Budgets: make([]dto.BudgetResponse, len(budgets))}
	for i, b := range budgets {
		resp.Budgets[i] = *dto.MapBudgetToDTO(b)
	}
	return resp, nil
}

func (e *executor) ListParameters(ctx context.Context) (*dto.ParameterListResponse, error) {
	params, err := e.store.GetGovernanceParameters(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get parameters: %v", err))
	}
	resp := &dto.ParameterListResponse{Parameters: make([]dto.ParameterResponse, len(params))}
	for i, p := range params {
		resp.Parameters[i] = *dto.MapParameterToDTO(p)
	}
	return resp, nil
}

func (e *executor) ListParameterChanges(ctx context.Context, name string, limit int, offset uint64) (*dto.ParameterChangeListResponse, error) {
	changes, total, err := e.store.GetParameterChanges(ctx, name, limit, offset)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get parameter changes: %v", err))
	}

	items := make([]dto.ParameterChangeResponse, len(changes))
	for i, c := range changes {
		items[i] = *dto.MapParameterChangeToDTO(c)
	}
	return &dto.ParameterChangeListResponse{
		Changes:    items,
		Pagination: dto.NewPagination(offset, len(items), total),
	}, nil
}

func (e *executor) ListModules(ctx context.Context, activeOnly bool) (*dto.ModuleListResponse, error) {
	modules, err := e.store.GetModules(ctx, activeOnly)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get modules: %v", err))
	}
	resp := &dto.ModuleListResponse{Modules: make([]dto.ModuleResponse, len(modules))}
	for i, m := range modules {
		resp.Modules[i] = *dto.MapModuleToDTO(m)
	}
	return resp, nil
}

func (e *executor) ListAuditRecords(ctx context.Context, subject, category string, from, to *time.Time, limit int, offset uint64) (*dto.AuditRecordListResponse, error) {
	records, total, err := e.store.GetAuditRecords(ctx, store.AuditRecordFilter{
		Subject:  subject,
		Category: category,
		From:     from,
		To:       to,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get audit records: %v", err))
	}

	items := make([]dto.AuditRecordResponse, len(records))
	for i, r := range records {
		items[i] = *dto.MapAuditRecordToDTO(r)
	}
	return &dto.AuditRecordListResponse{
		Records:    items,
		Pagination: dto.NewPagination(offset, len(items), total),
	}, nil
}

func (e *executor) ListComplianceRules(ctx context.Context) (*dto.ComplianceRuleListResponse, error) {
	rules, err := e.store.GetComplianceRules(ctx)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get compliance rules: %v", err))
	}
	resp := &dto.ComplianceRuleListResponse{Rules: make([]dto.ComplianceRuleResponse, len(rules))}
	for i, r := range rules {
		resp.Rules[i] = *dto.MapComplianceRuleToDTO(r)
	}
	return resp, nil
}

func (e *executor) ListViolations(ctx context.Context, ruleID uint64, violator string, unresolvedOnly bool, limit int, offset uint64) (*dto.ViolationListResponse, error) {
	violations, total, err := e.store.GetViolationsByFilter(ctx, store.ViolationFilter{
		RuleID:         ruleID,
		Violator:       violator,
		UnresolvedOnly: unresolvedOnly,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get violations: %v", err))
	}

	items := make([]dto.ViolationResponse, len(violations))
	for i, v := range violations {
		items[i] = *dto.MapViolationToDTO(v)
	}
	return &dto.ViolationListResponse{
		Violations: items,
		Pagination: dto.NewPagination(offset, len(items), total),
	}, nil
}

func (e *executor) GetDailyStats(ctx context.Context, days int) (*dto.DailyStatsListResponse, error) {
	if days <= 0 {
		days = constants.DEFAULT_STATS_DAYS
	}
	toDay := (time.Now().UTC().Unix() / 86400) * 86400
	fromDay := toDay - int64(days-1)*86400

	stats, err := e.store.GetDailyStats(ctx, fromDay, toDay)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get daily stats: %v", err))
	}
	resp := &dto.DailyStatsListResponse{Stats: make([]dto.DailyStatsResponse, len(stats))}
	for i, s := range stats {
		resp.Stats[i] = dto.MapDailyStatsToDTO(s)
	}
	return resp, nil
}

func (e *executor) GetMonthlyStats(ctx context.Context, months int) (*dto.MonthlyStatsListResponse, error) {
	if months <= 0 {
		months = constants.DEFAULT_STATS_MONTHS
	}
	now := time.Now().UTC()
	toMonth := now.Format("2006-01")
	fromMonth := now.AddDate(0, -(months - 1), 0).Format("2006-01")

	stats, err := e.store.GetMonthlyStats(ctx, fromMonth, toMonth)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get monthly stats: %v", err))
	}
	resp := &dto.MonthlyStatsListResponse{Stats: make([]dto.MonthlyStatsResponse, len(stats))}
	for i, s := range stats {
		resp.Stats[i] = dto.MapMonthlyStatsToDTO(s)
	}
	return resp, nil
}

func (e *executor) GetGovernanceHealth(ctx context.Context) (*dto.GovernanceHealthResponse, error) {
	_, totalCitizens, err := e.store.GetCitizensByFilter(ctx, store.CitizenQueryFilter{Limit: 1})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count citizens: %v", err))
	}
	_, activeCitizens, err := e.store.GetCitizensByFilter(ctx, store.CitizenQueryFilter{
		Statuses: []string{string(domain.CitizenStatusActive)},
		Limit:    1,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count active citizens: %v", err))
	}
	_, totalProposals, err := e.store.GetProposalsByFilter(ctx, store.ProposalQueryFilter{Limit: 1})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count proposals: %v", err))
	}
	_, activeProposals, err := e.store.GetProposalsByFilter(ctx, store.ProposalQueryFilter{
		Statuses: []string{string(domain.ProposalStatusActive)},
		Limit:    1,
	})
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to count active proposals: %v", err))
	}

	toDay := (time.Now().UTC().Unix() / 86400) * 86400
	fromDay := toDay - int64(constants.DEFAULT_STATS_DAYS-1)*86400
	stats, err := e.store.GetDailyStats(ctx, fromDay, toDay)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get daily stats: %v", err))
	}

	votes, proposals := 0, 0
	for _, s := range stats {
		votes += s.VotesCast
		proposals += s.ProposalsCreated
	}

	health := &dto.GovernanceHealthResponse{
		TotalCitizens:       totalCitizens,
		ActiveCitizens:      activeCitizens,
		TotalProposals:      totalProposals,
		ActiveProposals:     activeProposals,
		VotesLast30Days:     votes,
		ProposalsLast30Days: proposals,
	}
	if activeCitizens > 0 {
		health.ParticipationRate = float64(votes) / float64(activeCitizens)
		if health.ParticipationRate > 1.0 {
			health.ParticipationRate = 1.0
		}
	}
	return health, nil
}
