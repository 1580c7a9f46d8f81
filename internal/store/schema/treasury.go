package schema

import (
	"time"
)

// Treasury transaction types
const (
	TreasuryTransactionTypeDeposit    = "deposit"
	TreasuryTransactionTypeWithdrawal = "withdrawal"
)

// Budget statuses
const (
	BudgetStatusProposed = "proposed"
	BudgetStatusApproved = "approved"
)

// Withdrawal represents the withdrawals table - queued treasury
// withdrawals passing through the timelocked multi-approval pipeline.
// Every withdrawal links to the proposal that authorized it.
type Withdrawal struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WithdrawalID is the on-chain withdrawal id
	WithdrawalID uint64 `gorm:"column:withdrawal_id;not null;uniqueIndex"`
	// ProposalID is the governing proposal; required, never zero
	ProposalID uint64 `gorm:"column:proposal_id;not null;index"`
	// Token is the token contract address (zero address for the native token)
	Token string `gorm:"column:token;not null;type:text"`
	// Recipient is the destination address
	Recipient string `gorm:"column:recipient;not null;type:text"`
	// Amount is the withdrawal amount
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// Status is the pipeline state (pending, ready, approved, executed, canceled)
	Status string `gorm:"column:status;not null;type:text;index"`
	// Approvals counts distinct signer approvals
	Approvals int `gorm:"column:approvals;not null;default:0"`
	// QueuedAt is when the withdrawal entered the timelock queue
	QueuedAt time.Time `gorm:"column:queued_at;not null;type:timestamptz"`
	// ExecutedAt is when the funds moved
	ExecutedAt *time.Time `gorm:"column:executed_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Withdrawal model
func (Withdrawal) TableName() string {
	return "withdrawals"
}

// WithdrawalApproval represents the withdrawal_approvals table. The
// (withdrawal_id, approver) unique index deduplicates per-signer approvals
// under replay.
type WithdrawalApproval struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// WithdrawalID is the on-chain withdrawal id
	WithdrawalID uint64 `gorm:"column:withdrawal_id;not null;uniqueIndex:idx_withdrawal_approvals,priority:1"`
	// Approver is the authorized signer's address
	Approver string `gorm:"column:approver;not null;type:text;uniqueIndex:idx_withdrawal_approvals,priority:2"`
	// ApprovedAt is the on-chain approval timestamp
	ApprovedAt time.Time `gorm:"column:approved_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WithdrawalApproval model
func (WithdrawalApproval) TableName() string {
	return "withdrawal_approvals"
}

// TreasuryTransaction represents the treasury_transactions table - every
// fund movement in or out of the treasury, keyed by (tx_hash, log_index)
// so replays upsert instead of duplicating.
type TreasuryTransaction struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxHash is the transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_treasury_tx_position,priority:1"`
	// LogIndex is the event position within the transaction's block
	LogIndex uint64 `gorm:"column:log_index;not null;uniqueIndex:idx_treasury_tx_position,priority:2"`
	// Type is the movement direction (deposit, withdrawal)
	Type string `gorm:"column:type;not null;type:text;index"`
	// Token is the token contract address
	Token string `gorm:"column:token;not null;type:text"`
	// Amount is the moved amount
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// FromAddress is the source address
	FromAddress string `gorm:"column:from_address;not null;type:text"`
	// ToAddress is the destination address
	ToAddress string `gorm:"column:to_address;not null;type:text"`
	// ProposalID links withdrawals to their governing proposal (0 for deposits)
	ProposalID uint64 `gorm:"column:proposal_id;not null;default:0;index"`
	// OccurredAt is the on-chain timestamp
	OccurredAt time.Time `gorm:"column:occurred_at;not null;type:timestamptz;index"`
	// BlockNumber is the block of the movement
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TreasuryTransaction model
func (TreasuryTransaction) TableName() string {
	return "treasury_transactions"
}

// Budget represents the budgets table - governance-approved spending allocations
type Budget struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// BudgetID is the on-chain budget id
	BudgetID uint64 `gorm:"column:budget_id;not null;uniqueIndex"`
	// Category is the spending category name
	Category string `gorm:"column:category;not null;type:text"`
	// Amount is the allocated amount
	Amount string `gorm:"column:amount;not null;type:numeric(78,0)"`
	// Spent is the consumed part of the allocation
	Spent string `gorm:"column:spent;not null;default:0;type:numeric(78,0)"`
	// Status is the budget state (pending, active)
	Status string `gorm:"column:status;not null;type:text"`
	// Approvers is a comma-separated list of approver addresses
	Approvers string `gorm:"column:approvers;not null;default:'';type:text"`
	// ApprovedAt is when the budget was approved
	ApprovedAt *time.Time `gorm:"column:approved_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Budget model
func (Budget) TableName() string {
	return "budgets"
}
