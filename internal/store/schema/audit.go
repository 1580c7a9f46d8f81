package schema

import (
	"time"
)

// AuditRecord represents the audit_records table - the append-only
// compliance trail. Records are only ever inserted, never updated.
type AuditRecord struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RecordID is the ULID assigned by the audit log, lexicographically time-ordered
	RecordID string `gorm:"column:record_id;not null;uniqueIndex;type:text"`
	// Subject is the address or entity the record is about
	Subject string `gorm:"column:subject;not null;type:text;index"`
	// Action is the human-readable description of what happened
	Action string `gorm:"column:action;not null;type:text"`
	// Category groups records (governance, treasury, compliance, system)
	Category string `gorm:"column:category;not null;type:text;index"`
	// PayloadHash is the SHA-256 of the JCS-canonicalized event payload
	PayloadHash string `gorm:"column:payload_hash;not null;type:text"`
	// RecordedBy is the transaction sender that caused the record
	RecordedBy string `gorm:"column:recorded_by;not null;type:text"`
	// OccurredAt is the on-chain timestamp
	OccurredAt time.Time `gorm:"column:occurred_at;not null;type:timestamptz;index"`
	// TxHash is the causing transaction hash
	TxHash string `gorm:"column:tx_hash;not null;type:text;uniqueIndex:idx_audit_position,priority:1"`
	// LogIndex is the event position within the block
	LogIndex uint64 `gorm:"column:log_index;not null;uniqueIndex:idx_audit_position,priority:2"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the AuditRecord model
func (AuditRecord) TableName() string {
	return "audit_records"
}

// ComplianceRule represents the compliance_rules table
type ComplianceRule struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RuleID is the on-chain rule id
	RuleID uint64 `gorm:"column:rule_id;not null;uniqueIndex"`
	// RuleType is the rule classification (identity_verification, voting_eligibility, ...)
	RuleType string `gorm:"column:rule_type;not null;type:text"`
	// Description is the rule text
	Description string `gorm:"column:description;not null;type:text"`
	// Active indicates whether the rule is enforced
	Active bool `gorm:"column:active;not null;default:true"`
	// ViolationCount counts reported violations of this rule
	ViolationCount int `gorm:"column:violation_count;not null;default:0"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ComplianceRule model
func (ComplianceRule) TableName() string {
	return "compliance_rules"
}

// ComplianceViolation represents the compliance_violations table
type ComplianceViolation struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ViolationID is the on-chain violation id
	ViolationID uint64 `gorm:"column:violation_id;not null;uniqueIndex"`
	// RuleID is the violated rule
	RuleID uint64 `gorm:"column:rule_id;not null;index"`
	// Violator is the offending address
	Violator string `gorm:"column:violator;not null;type:text;index"`
	// Resolved indicates whether the violation has been resolved
	Resolved bool `gorm:"column:resolved;not null;default:false"`
	// Resolver is the address that resolved the violation
	Resolver *string `gorm:"column:resolver;type:text"`
	// ReportedAt is the on-chain report timestamp
	ReportedAt time.Time `gorm:"column:reported_at;not null;type:timestamptz"`
	// ResolvedAt is the on-chain resolution timestamp
	ResolvedAt *time.Time `gorm:"column:resolved_at;type:timestamptz"`
	// CreatedAt is the timestamp when this record was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ComplianceViolation model
func (ComplianceViolation) TableName() string {
	return "compliance_violations"
}
