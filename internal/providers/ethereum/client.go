package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
)

type EthereumClient interface {
	// ParseEventLog parses an Ethereum log into a normalized governance event
	ParseEventLog(ctx context.Context, vLog types.Log) (*domain.GovernanceEvent, error)

	// SubscribeFilterLogs subscribes to filter logs
	SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error)

	// HeaderByNumber returns a header by number
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)

	// GetGovernanceEvents fetches all historical governance events emitted by
	// the configured contracts within a block range, ordered by log position.
	// A toBlock of 0 means the latest block.
	GetGovernanceEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.GovernanceEvent, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	chainID   domain.Chain
	contracts []common.Address
	client    adapter.EthClient
	clock     adapter.Clock
}

func NewClient(chainID domain.Chain, contractAddresses []string, client adapter.EthClient, clock adapter.Clock) EthereumClient {
	contracts := make([]common.Address, 0, len(contractAddresses))
	for _, addr := range contractAddresses {
		contracts = append(contracts, common.HexToAddress(addr))
	}
	return &ethereumClient{chainID: chainID, contracts: contracts, client: client, clock: clock}
}

func mustABIType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(fmt.Sprintf("invalid ABI type %s: %v", name, err))
	}
	return t
}

// Non-indexed argument layouts for events whose data section carries
// dynamic types and therefore cannot be decoded by fixed-offset slicing
var (
	abiUint256 = mustABIType("uint256")
	abiUint8   = mustABIType("uint8")
	abiString  = mustABIType("string")
	abiAddress = mustABIType("address")

	proposalCreatedArgs = abi.Arguments{
		{Name: "category", Type: abiUint8},
		{Name: "description", Type: abiString},
		{Name: "startTime", Type: abiUint256},
		{Name: "endTime", Type: abiUint256},
	}
	budgetCreatedArgs = abi.Arguments{
		{Name: "category", Type: abiString},
		{Name: "amount", Type: abiUint256},
	}
	parameterUpdatedArgs = abi.Arguments{
		{Name: "name", Type: abiString},
		{Name: "oldValue", Type: abiUint256},
		{Name: "newValue", Type: abiUint256},
	}
	moduleRegisteredArgs = abi.Arguments{
		{Name: "name", Type: abiString},
		{Name: "moduleAddress", Type: abiAddress},
	}
	moduleRemovedArgs = abi.Arguments{
		{Name: "name", Type: abiString},
	}
	ruleCreatedArgs = abi.Arguments{
		{Name: "ruleType", Type: abiString},
		{Name: "description", Type: abiString},
	}
)

// roleHashes maps the keccak256 role identifiers used by the on-chain access
// controller to governance roles. Grants for unknown role hashes are skipped.
var roleHashes = map[common.Hash]domain.Role{
	crypto.Keccak256Hash([]byte("ADMINISTRATOR_ROLE")): domain.RoleAdministrator,
	crypto.Keccak256Hash([]byte("DELEGATE_ROLE")):      domain.RoleDelegate,
	crypto.Keccak256Hash([]byte("GUARDIAN_ROLE")):      domain.RoleGuardian,
	crypto.Keccak256Hash([]byte("AUDITOR_ROLE")):       domain.RoleAuditor,
	crypto.Keccak256Hash([]byte("CITIZEN_ROLE")):       domain.RoleCitizen,
	crypto.Keccak256Hash([]byte("UPGRADER_ROLE")):      domain.RoleUpgrader,
	crypto.Keccak256Hash([]byte("SIGNER_ROLE")):        domain.RoleSigner,
}

// SubscribeFilterLogs subscribes to filter logs
func (c *ethereumClient) SubscribeFilterLogs(ctx context.Context, query ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
	return c.client.SubscribeFilterLogs(ctx, query, ch)
}

// HeaderByNumber returns a header by number
func (c *ethereumClient) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return c.client.HeaderByNumber(ctx, number)
}

// filterLogsWithPagination is an internal method that handles pagination for FilterLogs
// to work around Infura's 10k log limitation
func (c *ethereumClient) filterLogsWithPagination(ctx context.Context, query ethereum.FilterQuery) ([]types.Log, error) {
	// Create a context with timeout (1 minute)
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	// If blockhash is specified, use it directly (no pagination needed)
	if query.BlockHash != nil {
		return c.client.FilterLogs(timeoutCtx, query)
	}

	// 1. Detect initial start/end blocks (genesis and latest)
	var fromBlock, toBlock *big.Int
	if query.FromBlock != nil {
		fromBlock = query.FromBlock
	} else {
		fromBlock = big.NewInt(0) // Genesis
	}

	if query.ToBlock != nil {
		toBlock = query.ToBlock
	} else {
		// Get latest block
		latestBlock, err := c.client.HeaderByNumber(timeoutCtx, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to get latest block: %w", err)
		}
		toBlock = latestBlock.Number
	}

	// 2. Start from fromBlock, step 1M blocks, process query
	var allLogs []types.Log
	currentFrom := new(big.Int).Set(fromBlock)
	stepSize := uint64(1000000) // 1M blocks

	for currentFrom.Cmp(toBlock) < 0 {
		// Calculate current range
		currentTo := new(big.Int).Add(currentFrom, big.NewInt(int64(stepSize)))
		if currentTo.Cmp(toBlock) > 0 {
			currentTo.Set(toBlock)
		}

		// Create query for current range
		rangeQuery := query
		rangeQuery.FromBlock = new(big.Int).Set(currentFrom)
		rangeQuery.ToBlock = currentTo

		// Try to get logs for current range with retry logic
		logs, err := c.getLogsWithRetry(timeoutCtx, rangeQuery, stepSize)
		if err != nil {
			return nil, fmt.Errorf("failed to get logs for range %d-%d: %w", currentFrom.Uint64(), currentTo.Uint64(), err)
		}

		allLogs = append(allLogs, logs...)

		// Move to next range - use the actual end of the processed range
		currentFrom.SetUint64(currentTo.Uint64() + 1)
	}

	return allLogs, nil
}

// getLogsWithRetry attempts to get logs with retry logic and step size reduction
// It processes the entire range from query.FromBlock to query.ToBlock in chunks
func (c *ethereumClient) getLogsWithRetry(ctx context.Context, query ethereum.FilterQuery, stepSize uint64) ([]types.Log, error) {
	currentStepSize := stepSize

	var allLogs []types.Log
	currentFrom := new(big.Int).Set(query.FromBlock)

	// Process the entire range in chunks
	for currentFrom.Cmp(query.ToBlock) <= 0 {
		// Calculate current range based on current step size
		currentTo := new(big.Int).Add(currentFrom, new(big.Int).SetUint64(currentStepSize-1))
		if currentTo.Cmp(query.ToBlock) > 0 {
			currentTo.Set(query.ToBlock)
		}

		// Create query for current chunk
		queryCopy := query
		queryCopy.FromBlock = new(big.Int).Set(currentFrom)
		queryCopy.ToBlock = new(big.Int).Set(currentTo)

		logs, err := c.client.FilterLogs(ctx, queryCopy)
		if err == nil {
			// Success - accumulate logs and move to next chunk
			allLogs = append(allLogs, logs...)

			// Move to next chunk using the full step size
			currentFrom.SetUint64(currentTo.Uint64() + 1)
			continue
		}

		// If other errors than rate limited, return error
		if !isTooManyResultsError(err) {
			return nil, err
		}

		// If rate limited, divide the step by 2 and try again
		currentStepSize = currentStepSize / 2

		logger.Warn("Too many results, reducing step size",
			zap.Uint64("oldStepSize", currentStepSize*2),
			zap.Uint64("newStepSize", currentStepSize),
			zap.Uint64("fromBlock", currentFrom.Uint64()),
			zap.Uint64("toBlock", currentTo.Uint64()))
	}

	return allLogs, nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	// Check for common "too many results" error messages
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum")
}

// GetGovernanceEvents fetches all historical governance events for the
// configured contracts within a block range
func (c *ethereumClient) GetGovernanceEvents(ctx context.Context, fromBlock, toBlock uint64) ([]domain.GovernanceEvent, error) {
	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: c.contracts,
		Topics:    [][]common.Hash{governanceEventSignatures()},
	}
	if toBlock > 0 {
		query.ToBlock = new(big.Int).SetUint64(toBlock)
	}

	logs, err := c.filterLogsWithPagination(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to filter logs: %w", err)
	}

	events := make([]domain.GovernanceEvent, 0, len(logs))
	for _, vLog := range logs {
		event, err := c.ParseEventLog(ctx, vLog)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping unparseable log",
				zap.String("txHash", vLog.TxHash.Hex()),
				zap.Uint64("blockNumber", vLog.BlockNumber),
				zap.Error(err))
			continue
		}

		if event == nil {
			continue
		}

		events = append(events, *event)
	}

	// FilterLogs already returns logs in order, but pagination boundaries make
	// that an implementation detail. Enforce canonical log order explicitly.
	sort.Slice(events, func(i, j int) bool {
		return events[i].Position.Before(events[j].Position)
	})

	return events, nil
}

func (c *ethereumClient) ParseEventLog(ctx context.Context, vLog types.Log) (*domain.GovernanceEvent, error) {
	if len(vLog.Topics) == 0 {
		return nil, fmt.Errorf("log has no topics")
	}

	// Get block to extract timestamp
	block, err := c.client.BlockByNumber(ctx, new(big.Int).SetUint64(vLog.BlockNumber))
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}

	event := &domain.GovernanceEvent{
		Chain:    c.chainID,
		Contract: domain.NewAddress(vLog.Address.Hex()),
		Position: domain.Position{
			BlockNumber: vLog.BlockNumber,
			LogIndex:    uint64(vLog.Index),
		},
		TxHash:    vLog.TxHash.Hex(),
		Timestamp: c.clock.Unix(int64(block.Time()), 0), //nolint:gosec,G115 // block.Time() returns a uint64 from geth which is safe to cast
	}

	// Parse based on event signature
	switch vLog.Topics[0] {
	case citizenRegisteredEventSignature:
		// CitizenRegistered(address indexed wallet, bytes32 identityHash, uint256 votingPower, uint256 registeredAt)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid CitizenRegistered event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 96 {
			return nil, fmt.Errorf("invalid CitizenRegistered event: insufficient data")
		}

		wallet := topicAddress(vLog.Topics[1])
		event.EventType = domain.EventTypeCitizenRegistered
		event.Actor = wallet
		event.Citizen = &domain.CitizenPayload{
			Wallet:    wallet,
			BasePower: domain.AmountFromBig(new(big.Int).SetBytes(vLog.Data[32:64])),
		}

	case citizenshipApprovedEventSignature:
		// CitizenshipApproved(address indexed wallet, address indexed verifier, uint256 approvedAt)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid CitizenshipApproved event: expected 3 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeCitizenshipApproved
		event.Actor = topicAddress(vLog.Topics[2])
		event.Citizen = &domain.CitizenPayload{Wallet: topicAddress(vLog.Topics[1])}

	case citizenshipRevokedEventSignature:
		// CitizenshipRevoked(address indexed wallet, address indexed revoker, uint256 revokedAt)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid CitizenshipRevoked event: expected 3 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeCitizenshipRevoked
		event.Actor = topicAddress(vLog.Topics[2])
		event.Citizen = &domain.CitizenPayload{Wallet: topicAddress(vLog.Topics[1])}

	case votingPowerDelegatedEventSignature:
		// VotingPowerDelegated(address indexed delegator, address indexed delegate, uint256 power)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid VotingPowerDelegated event: expected 3 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid VotingPowerDelegated event: insufficient data")
		}

		delegator := topicAddress(vLog.Topics[1])
		event.EventType = domain.EventTypePowerDelegated
		event.Actor = delegator
		event.Citizen = &domain.CitizenPayload{
			Wallet:         delegator,
			Delegate:       topicAddress(vLog.Topics[2]),
			DelegatedPower: domain.AmountFromBig(new(big.Int).SetBytes(vLog.Data[0:32])),
		}

	case delegationRevokedEventSignature:
		// DelegationRevoked(address indexed delegator, uint256 power)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid DelegationRevoked event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid DelegationRevoked event: insufficient data")
		}

		delegator := topicAddress(vLog.Topics[1])
		event.EventType = domain.EventTypeDelegationRevoked
		event.Actor = delegator
		event.Citizen = &domain.CitizenPayload{
			Wallet:         delegator,
			DelegatedPower: domain.AmountFromBig(new(big.Int).SetBytes(vLog.Data[0:32])),
		}

	case proposalCreatedEventSignature:
		// ProposalCreated(uint256 indexed proposalId, address indexed proposer, uint8 category, string description, uint256 startTime, uint256 endTime)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid ProposalCreated event: expected 3 topics, got %d", len(vLog.Topics))
		}

		values, err := proposalCreatedArgs.Unpack(vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack ProposalCreated data: %w", err)
		}

		category, err := domain.ProposalCategoryFromCode(values[0].(uint8))
		if err != nil {
			return nil, fmt.Errorf("invalid ProposalCreated event: %w", err)
		}

		proposer := topicAddress(vLog.Topics[2])
		event.EventType = domain.EventTypeProposalCreated
		event.Actor = proposer
		event.Proposal = &domain.ProposalPayload{
			ProposalID:  topicUint64(vLog.Topics[1]),
			Proposer:    proposer,
			Category:    category,
			Description: values[1].(string),
			StartTime:   values[2].(*big.Int).Int64(),
			EndTime:     values[3].(*big.Int).Int64(),
		}

	case voteCastEventSignature:
		// VoteCast(uint256 indexed proposalId, address indexed voter, uint8 support, uint256 weight)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid VoteCast event: expected 3 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 64 {
			return nil, fmt.Errorf("invalid VoteCast event: insufficient data")
		}

		support, err := domain.VoteSupportFromCode(vLog.Data[31])
		if err != nil {
			return nil, fmt.Errorf("invalid VoteCast event: %w", err)
		}

		voter := topicAddress(vLog.Topics[2])
		event.EventType = domain.EventTypeVoteCast
		event.Actor = voter
		event.Vote = &domain.VotePayload{
			ProposalID: topicUint64(vLog.Topics[1]),
			Voter:      voter,
			Support:    support,
			Weight:     domain.AmountFromBig(new(big.Int).SetBytes(vLog.Data[32:64])),
		}

	case proposalStatusChangedEventSignature:
		// ProposalStatusChanged(uint256 indexed proposalId, uint8 oldStatus, uint8 newStatus)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid ProposalStatusChanged event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 64 {
			return nil, fmt.Errorf("invalid ProposalStatusChanged event: insufficient data")
		}

		oldStatus, err := domain.ProposalStatusFromCode(vLog.Data[31])
		if err != nil {
			return nil, fmt.Errorf("invalid ProposalStatusChanged event: %w", err)
		}
		newStatus, err := domain.ProposalStatusFromCode(vLog.Data[63])
		if err != nil {
			return nil, fmt.Errorf("invalid ProposalStatusChanged event: %w", err)
		}

		event.EventType = domain.EventTypeProposalStatusChanged
		event.Proposal = &domain.ProposalPayload{
			ProposalID: topicUint64(vLog.Topics[1]),
			OldStatus:  oldStatus,
			NewStatus:  newStatus,
		}

	case proposalCanceledEventSignature:
		// ProposalCanceled(uint256 indexed proposalId)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid ProposalCanceled event: expected 2 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeProposalCanceled
		event.Proposal = &domain.ProposalPayload{ProposalID: topicUint64(vLog.Topics[1])}

	case proposalQueuedEventSignature:
		// ProposalQueued(uint256 indexed proposalId, uint256 eta)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid ProposalQueued event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid ProposalQueued event: insufficient data")
		}

		event.EventType = domain.EventTypeProposalQueued
		event.Proposal = &domain.ProposalPayload{
			ProposalID: topicUint64(vLog.Topics[1]),
			ETA:        new(big.Int).SetBytes(vLog.Data[0:32]).Int64(),
		}

	case proposalExecutedEventSignature:
		// ProposalExecuted(uint256 indexed proposalId)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid ProposalExecuted event: expected 2 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeProposalExecuted
		event.Proposal = &domain.ProposalPayload{ProposalID: topicUint64(vLog.Topics[1])}

	case depositEventSignature:
		// Deposit(address indexed token, address indexed from, uint256 amount)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid Deposit event: expected 3 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 32 {
			return nil, fmt.Errorf("invalid Deposit event: insufficient data")
		}

		from := topicAddress(vLog.Topics[2])
		event.EventType = domain.EventTypeDeposit
		event.Actor = from
		event.Treasury = &domain.TreasuryPayload{
			Token:  topicAddress(vLog.Topics[1]),
			From:   from,
			Amount: domain.AmountFromBig(new(big.Int).SetBytes(vLog.Data[0:32])),
		}

	case withdrawalQueuedEventSignature:
		// WithdrawalQueued(uint256 indexed withdrawalId, uint256 indexed proposalId, address token, address recipient, uint256 amount)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid WithdrawalQueued event: expected 3 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 96 {
			return nil, fmt.Errorf("invalid WithdrawalQueued event: insufficient data")
		}

		event.EventType = domain.EventTypeWithdrawalQueued
		event.Treasury = &domain.TreasuryPayload{
			WithdrawalID: topicUint64(vLog.Topics[1]),
			ProposalID:   topicUint64(vLog.Topics[2]),
			Token:        domain.NewAddress(common.BytesToAddress(vLog.Data[0:32]).Hex()),
			To:           domain.NewAddress(common.BytesToAddress(vLog.Data[32:64]).Hex()),
			Amount:       domain.AmountFromBig(new(big.Int).SetBytes(vLog.Data[64:96])),
		}

	case withdrawalApprovedEventSignature:
		// WithdrawalApproved(uint256 indexed withdrawalId, address indexed approver)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid WithdrawalApproved event: expected 3 topics, got %d", len(vLog.Topics))
		}

		approver := topicAddress(vLog.Topics[2])
		event.EventType = domain.EventTypeWithdrawalApproved
		event.Actor = approver
		event.Treasury = &domain.TreasuryPayload{
			WithdrawalID: topicUint64(vLog.Topics[1]),
			Approver:     approver,
		}

	case withdrawalExecutedEventSignature:
		// WithdrawalExecuted(uint256 indexed withdrawalId, address token, address recipient, uint256 amount)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid WithdrawalExecuted event: expected 2 topics, got %d", len(vLog.Topics))
		}
		if len(vLog.Data) < 96 {
			return nil, fmt.Errorf("invalid WithdrawalExecuted event: insufficient data")
		}

		event.EventType = domain.EventTypeWithdrawalExecuted
		event.Treasury = &domain.TreasuryPayload{
			WithdrawalID: topicUint64(vLog.Topics[1]),
			Token:        domain.NewAddress(common.BytesToAddress(vLog.Data[0:32]).Hex()),
			To:           domain.NewAddress(common.BytesToAddress(vLog.Data[32:64]).Hex()),
			Amount:       domain.AmountFromBig(new(big.Int).SetBytes(vLog.Data[64:96])),
		}

	case withdrawalCanceledEventSignature:
		// WithdrawalCanceled(uint256 indexed withdrawalId)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid WithdrawalCanceled event: expected 2 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeWithdrawalCanceled
		event.Treasury = &domain.TreasuryPayload{WithdrawalID: topicUint64(vLog.Topics[1])}

	case budgetCreatedEventSignature:
		// BudgetCreated(uint256 indexed budgetId, string category, uint256 amount)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid BudgetCreated event: expected 2 topics, got %d", len(vLog.Topics))
		}

		values, err := budgetCreatedArgs.Unpack(vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack BudgetCreated data: %w", err)
		}

		event.EventType = domain.EventTypeBudgetCreated
		event.Treasury = &domain.TreasuryPayload{
			BudgetID:       topicUint64(vLog.Topics[1]),
			BudgetCategory: values[0].(string),
			Amount:         domain.AmountFromBig(values[1].(*big.Int)),
		}

	case budgetApprovedEventSignature:
		// BudgetApproved(uint256 indexed budgetId, address indexed approver)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid BudgetApproved event: expected 3 topics, got %d", len(vLog.Topics))
		}

		approver := topicAddress(vLog.Topics[2])
		event.EventType = domain.EventTypeBudgetApproved
		event.Actor = approver
		event.Treasury = &domain.TreasuryPayload{
			BudgetID: topicUint64(vLog.Topics[1]),
			Approver: approver,
		}

	case parameterUpdatedEventSignature:
		// ParameterUpdated(string name, uint256 oldValue, uint256 newValue)
		values, err := parameterUpdatedArgs.Unpack(vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack ParameterUpdated data: %w", err)
		}

		event.EventType = domain.EventTypeParameterUpdated
		event.Param = &domain.ParamPayload{
			Name:     values[0].(string),
			OldValue: values[1].(*big.Int).String(),
			NewValue: values[2].(*big.Int).String(),
		}

	case moduleRegisteredEventSignature:
		// ModuleRegistered(string name, address moduleAddress)
		values, err := moduleRegisteredArgs.Unpack(vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack ModuleRegistered data: %w", err)
		}

		event.EventType = domain.EventTypeModuleRegistered
		event.Module = &domain.ModulePayload{
			ModuleID: values[0].(string),
			Address:  domain.NewAddress(values[1].(common.Address).Hex()),
		}

	case moduleRemovedEventSignature:
		// ModuleRemoved(string name)
		values, err := moduleRemovedArgs.Unpack(vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack ModuleRemoved data: %w", err)
		}

		event.EventType = domain.EventTypeModuleRemoved
		event.Module = &domain.ModulePayload{ModuleID: values[0].(string)}

	case emergencyPausedEventSignature:
		// EmergencyPaused(address indexed guardian)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid EmergencyPaused event: expected 2 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeEmergencyPaused
		event.Actor = topicAddress(vLog.Topics[1])

	case emergencyUnpausedEventSignature:
		// EmergencyUnpaused(address indexed guardian)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid EmergencyUnpaused event: expected 2 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeEmergencyUnpaused
		event.Actor = topicAddress(vLog.Topics[1])

	case roleGrantedEventSignature, roleRevokedEventSignature:
		// RoleGranted(bytes32 indexed role, address indexed account, address indexed sender)
		// RoleRevoked(bytes32 indexed role, address indexed account, address indexed sender)
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid role event: expected 4 topics, got %d", len(vLog.Topics))
		}

		role, ok := roleHashes[vLog.Topics[1]]
		if !ok {
			// Access controller roles outside the governance set
			logger.DebugCtx(ctx, "Skipping unknown role event",
				zap.String("roleHash", vLog.Topics[1].Hex()),
				zap.String("txHash", vLog.TxHash.Hex()))
			return nil, nil
		}

		if vLog.Topics[0] == roleGrantedEventSignature {
			event.EventType = domain.EventTypeRoleGranted
		} else {
			event.EventType = domain.EventTypeRoleRevoked
		}
		event.Actor = topicAddress(vLog.Topics[3])
		event.Role = &domain.RolePayload{
			Role:    role,
			Account: topicAddress(vLog.Topics[2]),
		}

	case ruleCreatedEventSignature:
		// RuleCreated(uint256 indexed ruleId, string ruleType, string description)
		if len(vLog.Topics) != 2 {
			return nil, fmt.Errorf("invalid RuleCreated event: expected 2 topics, got %d", len(vLog.Topics))
		}

		values, err := ruleCreatedArgs.Unpack(vLog.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to unpack RuleCreated data: %w", err)
		}

		event.EventType = domain.EventTypeRuleCreated
		event.Compliance = &domain.CompliancePayload{
			RuleID:      topicUint64(vLog.Topics[1]),
			RuleType:    values[0].(string),
			Description: values[1].(string),
		}

	case violationReportedEventSignature:
		// ViolationReported(uint256 indexed violationId, uint256 indexed ruleId, address indexed violator)
		if len(vLog.Topics) != 4 {
			return nil, fmt.Errorf("invalid ViolationReported event: expected 4 topics, got %d", len(vLog.Topics))
		}

		event.EventType = domain.EventTypeViolationReported
		event.Compliance = &domain.CompliancePayload{
			ViolationID: topicUint64(vLog.Topics[1]),
			RuleID:      topicUint64(vLog.Topics[2]),
			Violator:    topicAddress(vLog.Topics[3]),
		}

	case violationResolvedEventSignature:
		// ViolationResolved(uint256 indexed violationId, address indexed resolver)
		if len(vLog.Topics) != 3 {
			return nil, fmt.Errorf("invalid ViolationResolved event: expected 3 topics, got %d", len(vLog.Topics))
		}

		resolver := topicAddress(vLog.Topics[2])
		event.EventType = domain.EventTypeViolationResolved
		event.Actor = resolver
		event.Compliance = &domain.CompliancePayload{
			ViolationID: topicUint64(vLog.Topics[1]),
			Resolver:    resolver,
		}

	default:
		return nil, fmt.Errorf("unknown event signature: %s", vLog.Topics[0].Hex())
	}

	return event, nil
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}

// topicAddress decodes an address from an indexed topic
func topicAddress(topic common.Hash) domain.Address {
	return domain.NewAddress(common.BytesToAddress(topic.Bytes()).Hex())
}

// topicUint64 decodes a uint256 identifier from an indexed topic.
// Governance identifiers are sequential counters and fit in 64 bits.
func topicUint64(topic common.Hash) uint64 {
	return new(big.Int).SetBytes(topic.Bytes()).Uint64()
}
