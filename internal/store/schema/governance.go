package schema

import (
	"time"
)

// GovernanceParameter represents the governance_parameters table - the
// current value of each tunable parameter, keyed by name.
type GovernanceParameter struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the parameter name (voting_period, execution_delay, ...)
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// Value is the current value, stored as a decimal string
	Value string `gorm:"column:value;not null;type:text"`
	// UpdatedBy is the address that last changed the parameter
	UpdatedBy string `gorm:"column:updated_by;not null;type:text"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the GovernanceParameter model
func (GovernanceParameter) TableName() string {
	return "governance_parameters"
}

// ParameterChange represents the parameter_changes table - the history
// of parameter updates.
type ParameterChange struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the parameter name
	Name string `gorm:"column:name;not null;type:text;index"`
	// OldValue is the value before the change, as a decimal string
	OldValue string `gorm:"column:old_value;not null;type:text"`
	// NewValue is the value after the change, as a decimal string
	NewValue string `gorm:"column:new_value;not null;type:text"`
	// ChangedBy is the address that made the change
	ChangedBy string `gorm:"column:changed_by;not null;type:text"`
	// ChangedAt is the on-chain timestamp of the change
	ChangedAt time.Time `gorm:"column:changed_at;not null;type:timestamptz"`
	// TxHash is the causing transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_parameter_changes_position,priority:1"`
	// LogIndex is the event position within the block
	LogIndex uint64 `gorm:"column:log_index;not null;uniqueIndex:idx_parameter_changes_position,priority:2"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ParameterChange model
func (ParameterChange) TableName() string {
	return "parameter_changes"
}

// Module represents the modules table - installed governance modules
type Module struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the module name
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// Address is the module contract address
	Address string `gorm:"column:address;not null;type:text"`
	// Active indicates whether the module is currently registered
	Active bool `gorm:"column:active;not null;default:true"`
	// RegisteredBy is the address that registered the module
	RegisteredBy string `gorm:"column:registered_by;not null;type:text"`
	// RegisteredAt is the on-chain registration timestamp
	RegisteredAt time.Time `gorm:"column:registered_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the Module model
func (Module) TableName() string {
	return "modules"
}

// RoleAssignment represents the role_assignments table
type RoleAssignment struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Wallet is the address holding the role
	Wallet string `gorm:"column:wallet;not null;type:text;uniqueIndex:idx_role_assignments_wallet_role,priority:1"`
	// Role is the role name (administrator, delegate, guardian, ...)
	Role string `gorm:"column:role;not null;type:text;uniqueIndex:idx_role_assignments_wallet_role,priority:2"`
	// Active indicates whether the role is currently held
	Active bool `gorm:"column:active;not null;default:true"`
	// GrantedBy is the address that granted the role
	GrantedBy string `gorm:"column:granted_by;not null;type:text"`
	// GrantedAt is the on-chain grant timestamp
	GrantedAt time.Time `gorm:"column:granted_at;not null;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the RoleAssignment model
func (RoleAssignment) TableName() string {
	return "role_assignments"
}
