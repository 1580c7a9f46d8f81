package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/messaging"
)

// Config holds the configuration for Ethereum subscription
type Config struct {
	WebSocketURL string       // WebSocket URL (e.g., wss://mainnet.infura.io/ws/v3/YOUR_PROJECT_ID)
	ChainID      domain.Chain // e.g., "eip155:1" for Ethereum mainnet

	// ContractAddresses lists the deployed governance contracts to watch:
	// citizen registry, proposal manager, voting engine, treasury,
	// governance core and compliance engine
	ContractAddresses []string
}

type ethSubscriber struct {
	client    EthereumClient
	chainID   domain.Chain
	contracts []common.Address
}

// Event signatures
var (
	// Citizen registry
	citizenRegisteredEventSignature    = crypto.Keccak256Hash([]byte("CitizenRegistered(address,bytes32,uint256,uint256)"))
	citizenshipApprovedEventSignature  = crypto.Keccak256Hash([]byte("CitizenshipApproved(address,address,uint256)"))
	citizenshipRevokedEventSignature   = crypto.Keccak256Hash([]byte("CitizenshipRevoked(address,address,uint256)"))
	votingPowerDelegatedEventSignature = crypto.Keccak256Hash([]byte("VotingPowerDelegated(address,address,uint256)"))
	delegationRevokedEventSignature    = crypto.Keccak256Hash([]byte("DelegationRevoked(address,uint256)"))

	// Proposal manager / voting engine
	proposalCreatedEventSignature       = crypto.Keccak256Hash([]byte("ProposalCreated(uint256,address,uint8,string,uint256,uint256)"))
	voteCastEventSignature              = crypto.Keccak256Hash([]byte("VoteCast(uint256,address,uint8,uint256)"))
	proposalStatusChangedEventSignature = crypto.Keccak256Hash([]byte("ProposalStatusChanged(uint256,uint8,uint8)"))
	proposalCanceledEventSignature      = crypto.Keccak256Hash([]byte("ProposalCanceled(uint256)"))
	proposalQueuedEventSignature        = crypto.Keccak256Hash([]byte("ProposalQueued(uint256,uint256)"))
	proposalExecutedEventSignature      = crypto.Keccak256Hash([]byte("ProposalExecuted(uint256)"))

	// Treasury
	depositEventSignature            = crypto.Keccak256Hash([]byte("Deposit(address,address,uint256)"))
	withdrawalQueuedEventSignature   = crypto.Keccak256Hash([]byte("WithdrawalQueued(uint256,uint256,address,address,uint256)"))
	withdrawalApprovedEventSignature = crypto.Keccak256Hash([]byte("WithdrawalApproved(uint256,address)"))
	withdrawalExecutedEventSignature = crypto.Keccak256Hash([]byte("WithdrawalExecuted(uint256,address,address,uint256)"))
	withdrawalCanceledEventSignature = crypto.Keccak256Hash([]byte("WithdrawalCanceled(uint256)"))
	budgetCreatedEventSignature      = crypto.Keccak256Hash([]byte("BudgetCreated(uint256,string,uint256)"))
	budgetApprovedEventSignature     = crypto.Keccak256Hash([]byte("BudgetApproved(uint256,address)"))

	// Governance core
	parameterUpdatedEventSignature  = crypto.Keccak256Hash([]byte("ParameterUpdated(string,uint256,uint256)"))
	moduleRegisteredEventSignature  = crypto.Keccak256Hash([]byte("ModuleRegistered(string,address)"))
	moduleRemovedEventSignature     = crypto.Keccak256Hash([]byte("ModuleRemoved(string)"))
	emergencyPausedEventSignature   = crypto.Keccak256Hash([]byte("EmergencyPaused(address)"))
	emergencyUnpausedEventSignature = crypto.Keccak256Hash([]byte("EmergencyUnpaused(address)"))
	roleGrantedEventSignature       = crypto.Keccak256Hash([]byte("RoleGranted(bytes32,address,address)"))
	roleRevokedEventSignature       = crypto.Keccak256Hash([]byte("RoleRevoked(bytes32,address,address)"))

	// Compliance engine
	ruleCreatedEventSignature       = crypto.Keccak256Hash([]byte("RuleCreated(uint256,string,string)"))
	violationReportedEventSignature = crypto.Keccak256Hash([]byte("ViolationReported(uint256,uint256,address)"))
	violationResolvedEventSignature = crypto.Keccak256Hash([]byte("ViolationResolved(uint256,address)"))
)

// governanceEventSignatures returns all governance event signatures for a
// single-position topic filter
func governanceEventSignatures() []common.Hash {
	return []common.Hash{
		citizenRegisteredEventSignature,
		citizenshipApprovedEventSignature,
		citizenshipRevokedEventSignature,
		votingPowerDelegatedEventSignature,
		delegationRevokedEventSignature,
		proposalCreatedEventSignature,
		voteCastEventSignature,
		proposalStatusChangedEventSignature,
		proposalCanceledEventSignature,
		proposalQueuedEventSignature,
		proposalExecutedEventSignature,
		depositEventSignature,
		withdrawalQueuedEventSignature,
		withdrawalApprovedEventSignature,
		withdrawalExecutedEventSignature,
		withdrawalCanceledEventSignature,
		budgetCreatedEventSignature,
		budgetApprovedEventSignature,
		parameterUpdatedEventSignature,
		moduleRegisteredEventSignature,
		moduleRemovedEventSignature,
		emergencyPausedEventSignature,
		emergencyUnpausedEventSignature,
		roleGrantedEventSignature,
		roleRevokedEventSignature,
		ruleCreatedEventSignature,
		violationReportedEventSignature,
		violationResolvedEventSignature,
	}
}

// NewSubscriber creates a new Ethereum governance event subscriber
func NewSubscriber(ctx context.Context, cfg Config, ethereumClient EthereumClient) (messaging.Subscriber, error) {
	contracts := make([]common.Address, 0, len(cfg.ContractAddresses))
	for _, addr := range cfg.ContractAddresses {
		if !common.IsHexAddress(addr) {
			return nil, fmt.Errorf("invalid contract address: %s", addr)
		}
		contracts = append(contracts, common.HexToAddress(addr))
	}

	return &ethSubscriber{
		client:    ethereumClient,
		chainID:   cfg.ChainID,
		contracts: contracts,
	}, nil
}

// SubscribeEvents subscribes to governance events from the configured contracts.
// Events between fromBlock and the current head are replayed through the
// handler before the live subscription starts, since eth_subscribe only
// delivers new logs and a resumed cursor would otherwise skip everything
// emitted while the service was down.
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	latest, err := s.GetLatestBlock(ctx)
	if err != nil {
		return err
	}

	if fromBlock > 0 && fromBlock <= latest {
		events, err := s.client.GetGovernanceEvents(ctx, fromBlock, latest)
		if err != nil {
			return fmt.Errorf("failed to backfill events from block %d: %w", fromBlock, err)
		}

		logger.InfoCtx(ctx, "Replaying historical governance events",
			zap.Uint64("fromBlock", fromBlock),
			zap.Uint64("toBlock", latest),
			zap.Int("count", len(events)))

		for i := range events {
			if err := handler(&events[i]); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"))
			}
		}
	}

	query := ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(latest + 1),
		Addresses: s.contracts,
		Topics:    [][]common.Hash{governanceEventSignatures()},
	}

	logs := make(chan types.Log)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		logger.InfoCtx(ctx, "Unsubscribing from governance event logs")
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from governance event logs")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-sub.Err():
			return fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			event, err := s.client.ParseEventLog(ctx, vLog)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error parsing log"))
				continue
			}

			if event == nil {
				continue
			}

			if err := handler(event); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("message", "Error handling event"))
			}
		}
	}
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}
