package schema

import (
	"time"
)

// DailyStats represents the daily_stats table - per-UTC-day aggregation
// buckets owned exclusively by the read model. The whole table is
// rebuildable from the event log at any time.
type DailyStats struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Day is the UTC day boundary, (unix/86400)*86400
	Day int64 `gorm:"column:day;not null;uniqueIndex"`
	// ProposalsCreated counts proposals created this day
	ProposalsCreated int `gorm:"column:proposals_created;not null;default:0"`
	// VotesCast counts ballots cast this day
	VotesCast int `gorm:"column:votes_cast;not null;default:0"`
	// UniqueVoters counts distinct voters who cast at least one ballot this day
	UniqueVoters int `gorm:"column:unique_voters;not null;default:0"`
	// NewCitizens counts citizens registered this day
	NewCitizens int `gorm:"column:new_citizens;not null;default:0"`
	// TreasuryDeposits sums deposit amounts this day
	TreasuryDeposits string `gorm:"column:treasury_deposits;not null;default:0;type:numeric(78,0)"`
	// TreasuryWithdrawals sums withdrawal amounts this day
	TreasuryWithdrawals string `gorm:"column:treasury_withdrawals;not null;default:0;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the DailyStats model
func (DailyStats) TableName() string {
	return "daily_stats"
}

// MonthlyStats represents the monthly_stats table - per-calendar-month
// aggregation buckets, same ownership and rebuild rules as DailyStats.
type MonthlyStats struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Month is the month key in YYYY-MM form
	Month string `gorm:"column:month;not null;uniqueIndex;type:text"`
	// ProposalsCreated counts proposals created this month
	ProposalsCreated int `gorm:"column:proposals_created;not null;default:0"`
	// VotesCast counts ballots cast this month
	VotesCast int `gorm:"column:votes_cast;not null;default:0"`
	// UniqueVoters counts distinct voters who cast at least one ballot this month
	UniqueVoters int `gorm:"column:unique_voters;not null;default:0"`
	// NewCitizens counts citizens registered this month
	NewCitizens int `gorm:"column:new_citizens;not null;default:0"`
	// TreasuryDeposits sums deposit amounts this month
	TreasuryDeposits string `gorm:"column:treasury_deposits;not null;default:0;type:numeric(78,0)"`
	// TreasuryWithdrawals sums withdrawal amounts this month
	TreasuryWithdrawals string `gorm:"column:treasury_withdrawals;not null;default:0;type:numeric(78,0)"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the MonthlyStats model
func (MonthlyStats) TableName() string {
	return "monthly_stats"
}
