package schema

import (
	"time"
)

// Proposal represents the proposals table - the read-model copy of a
// governance proposal and its accumulated weighted tallies.
type Proposal struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProposalID is the on-chain sequential proposal id
	ProposalID uint64 `gorm:"column:proposal_id;not null;uniqueIndex"`
	// Proposer is the creating citizen's address
	Proposer string `gorm:"column:proposer;not null;type:text;index"`
	// Description is the full proposal text (first line is the title)
	Description string `gorm:"column:description;not null;type:text"`
	// Category is the proposal category (general, treasury, parameter, upgrade, emergency)
	Category string `gorm:"column:category;not null;type:text"`
	// Status is the current lifecycle state
	Status string `gorm:"column:status;not null;type:text;index"`
	// ForVotes is the accumulated weighted tally of for votes
	ForVotes string `gorm:"column:for_votes;not null;default:0;type:numeric(78,0)"`
	// AgainstVotes is the accumulated weighted tally of against votes
	AgainstVotes string `gorm:"column:against_votes;not null;default:0;type:numeric(78,0)"`
	// AbstainVotes is the accumulated weighted tally of abstain votes
	AbstainVotes string `gorm:"column:abstain_votes;not null;default:0;type:numeric(78,0)"`
	// TotalVotes counts distinct ballots cast
	TotalVotes int `gorm:"column:total_votes;not null;default:0"`
	// StartTime is when the voting window opens
	StartTime time.Time `gorm:"column:start_time;not null;type:timestamptz"`
	// EndTime is when the voting window closes
	EndTime time.Time `gorm:"column:end_time;not null;type:timestamptz"`
	// QueuedAt is when the proposal entered the timelock queue
	QueuedAt *time.Time `gorm:"column:queued_at;type:timestamptz"`
	// ExecutedAt is when the proposal executed
	ExecutedAt *time.Time `gorm:"column:executed_at;type:timestamptz"`
	// CanceledAt is when the proposer canceled
	CanceledAt *time.Time `gorm:"column:canceled_at;type:timestamptz"`
	// TxHash is the creation transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// BlockNumber is the creation block
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Proposal model
func (Proposal) TableName() string {
	return "proposals"
}

// Vote represents the votes table. The (voter, proposal_id) unique index
// structurally prevents double voting; the weight is the snapshot taken
// at cast time and is never recomputed.
type Vote struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ProposalID is the on-chain proposal id
	ProposalID uint64 `gorm:"column:proposal_id;not null;uniqueIndex:idx_votes_proposal_voter,priority:1"`
	// Voter is the voting citizen's address
	Voter string `gorm:"column:voter;not null;type:text;uniqueIndex:idx_votes_proposal_voter,priority:2;index"`
	// Support is the vote direction (for, against, abstain)
	Support string `gorm:"column:support;not null;type:text"`
	// Weight is the voting power snapshotted at cast time
	Weight string `gorm:"column:weight;not null;type:numeric(78,0)"`
	// CastAt is the on-chain timestamp of the cast
	CastAt time.Time `gorm:"column:cast_at;not null;type:timestamptz"`
	// TxHash is the vote transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text"`
	// BlockNumber is the vote block
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Vote model
func (Vote) TableName() string {
	return "votes"
}
