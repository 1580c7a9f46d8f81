package schema

import (
	"time"
)

// Citizen represents the citizens table - the read-model copy of the
// identity ledger. Records are never deleted; revocation is a status change.
type Citizen struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Wallet is the citizen's account address, lowercase hex
	Wallet string `gorm:"column:wallet;not null;uniqueIndex;type:text"`
	// Status is the registration state (pending, active, revoked)
	Status string `gorm:"column:status;not null;type:text;index"`
	// IdentityVerified indicates whether identity verification completed
	IdentityVerified bool `gorm:"column:identity_verified;not null;default:false"`
	// BasePower is the citizen's own voting power (numeric string, up to 78 digits)
	BasePower string `gorm:"column:base_power;not null;default:0;type:numeric(78,0)"`
	// DelegatedTo is the delegation target address, nil when self-held
	DelegatedTo *string `gorm:"column:delegated_to;type:text"`
	// DelegatedPowerReceived is the aggregate power delegated to this citizen
	DelegatedPowerReceived string `gorm:"column:delegated_power_received;not null;default:0;type:numeric(78,0)"`
	// TotalProposalsCreated counts proposals this citizen created
	TotalProposalsCreated int `gorm:"column:total_proposals_created;not null;default:0"`
	// TotalVotesCast counts votes this citizen cast
	TotalVotesCast int `gorm:"column:total_votes_cast;not null;default:0"`
	// RegisteredAt is the on-chain registration timestamp
	RegisteredAt time.Time `gorm:"column:registered_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Citizen model
func (Citizen) TableName() string {
	return "citizens"
}
