package dto

import (
	"strings"
	"time"

	"github.com/nexus-dao/nexus-governance/internal/store"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

// TreasuryBalanceResponse represents a per-token treasury balance
type TreasuryBalanceResponse struct {
	Token   string `json:"token"`
	Balance string `json:"balance"`
}

// MapTreasuryBalanceToDTO maps a derived balance row to its API representation
func MapTreasuryBalanceToDTO(b store.TreasuryBalance) TreasuryBalanceResponse {
	return TreasuryBalanceResponse{
		Token:   b.Token,
		Balance: b.Balance,
	}
}

// TreasuryTransactionResponse represents a treasury movement
type TreasuryTransactionResponse struct {
	TxHash      string    `json:"tx_hash"`
	Type        string    `json:"type"`
	Token       string    `json:"token"`
	Amount      string    `json:"amount"`
	FromAddress string    `json:"from_address"`
	ToAddress   string    `json:"to_address"`
	ProposalID  uint64    `json:"proposal_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	BlockNumber uint64    `json:"block_number"`
}

// MapTreasuryTransactionToDTO maps a treasury transaction row to its API representation
func MapTreasuryTransactionToDTO(t schema.TreasuryTransaction) *TreasuryTransactionResponse {
	return &TreasuryTransactionResponse{
		TxHash:      t.TxHash,
		Type:        t.Type,
		Token:       t.Token,
		Amount:      t.Amount,
		FromAddress: t.FromAddress,
		ToAddress:   t.ToAddress,
		ProposalID:  t.ProposalID,
		OccurredAt:  t.OccurredAt,
		BlockNumber: t.BlockNumber,
	}
}

// WithdrawalResponse represents a multisig withdrawal
type WithdrawalResponse struct {
	WithdrawalID uint64     `json:"withdrawal_id"`
	ProposalID   uint64     `json:"proposal_id"`
	Token        string     `json:"token"`
	Recipient    string     `json:"recipient"`
	Amount       string     `json:"amount"`
	Status       string     `json:"status"`
	Approvals    int        `json:"approvals"`
	Approvers    []string   `json:"approvers,omitempty"`
	QueuedAt     time.Time  `json:"queued_at"`
	ExecutedAt   *time.Time `json:"executed_at,omitempty"`
}

// MapWithdrawalToDTO maps a withdrawal row and its approvals to the API representation
func MapWithdrawalToDTO(w schema.Withdrawal, approvals []schema.WithdrawalApproval) *WithdrawalResponse {
	resp := &WithdrawalResponse{
		WithdrawalID: w.WithdrawalID,
		ProposalID:   w.ProposalID,
		Token:        w.Token,
		Recipient:    w.Recipient,
		Amount:       w.Amount,
		Status:       w.Status,
		Approvals:    w.Approvals,
		QueuedAt:     w.QueuedAt,
		ExecutedAt:   w.ExecutedAt,
	}
	for _, a := range approvals {
		resp.Approvers = append(resp.Approvers, a.Approver)
	}
	return resp
}

// BudgetResponse represents a treasury budget allocation
type BudgetResponse struct {
	BudgetID   uint64     `json:"budget_id"`
	Category   string     `json:"category"`
	Amount     string     `json:"amount"`
	Spent      string     `json:"spent"`
	Status     string     `json:"status"`
	Approvers  []string   `json:"approvers,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}

// MapBudgetToDTO maps a budget row to its API representation
func MapBudgetToDTO(b schema.Budget) *BudgetResponse {
	resp := &BudgetResponse{
		BudgetID:   b.BudgetID,
		Category:   b.Category,
		Amount:     b.Amount,
		Spent:      b.Spent,
		Status:     b.Status,
		ApprovedAt: b.ApprovedAt,
	}
	if b.Approvers != "" {
		resp.Approvers = strings.Split(b.Approvers, ",")
	}
	return resp
}
