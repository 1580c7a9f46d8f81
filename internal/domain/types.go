package domain

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
)

// IsValidChain checks if a chain is valid
func IsValidChain(chain Chain) bool {
	return chain == ChainEthereumMainnet || chain == ChainEthereumSepolia
}

// Address is a lowercase hex-encoded account address
type Address string

// NewAddress normalizes a hex address into its canonical lowercase form
func NewAddress(s string) Address {
	return Address(strings.ToLower(s))
}

// Valid checks if the address is a well-formed hex address
func (a Address) Valid() bool {
	return common.IsHexAddress(string(a))
}

// String returns the string representation of the address
func (a Address) String() string {
	return string(a)
}

// ProposalStatus represents the lifecycle state of a proposal
type ProposalStatus string

const (
	ProposalStatusPending   ProposalStatus = "pending"
	ProposalStatusActive    ProposalStatus = "active"
	ProposalStatusCanceled  ProposalStatus = "canceled"
	ProposalStatusDefeated  ProposalStatus = "defeated"
	ProposalStatusSucceeded ProposalStatus = "succeeded"
	ProposalStatusQueued    ProposalStatus = "queued"
	ProposalStatusExpired   ProposalStatus = "expired"
	ProposalStatusExecuted  ProposalStatus = "executed"
)

// proposalStatusCodes maps the on-chain uint8 encoding to statuses.
// The order is part of the wire contract and must not change.
var proposalStatusCodes = [...]ProposalStatus{
	ProposalStatusPending,
	ProposalStatusActive,
	ProposalStatusCanceled,
	ProposalStatusDefeated,
	ProposalStatusSucceeded,
	ProposalStatusQueued,
	ProposalStatusExpired,
	ProposalStatusExecuted,
}

// ProposalStatusFromCode decodes the on-chain uint8 status encoding.
// Out-of-range codes are an explicit error, never a silent zero value.
func ProposalStatusFromCode(code uint8) (ProposalStatus, error) {
	if int(code) >= len(proposalStatusCodes) {
		return "", fmt.Errorf("invalid proposal status code: %d", code)
	}
	return proposalStatusCodes[code], nil
}

// Code returns the on-chain uint8 encoding of the status
func (s ProposalStatus) Code() uint8 {
	for i, status := range proposalStatusCodes {
		if status == s {
			return uint8(i)
		}
	}
	panic(fmt.Sprintf("invalid proposal status: %s", s))
}

// Valid checks if the status is a known proposal status
func (s ProposalStatus) Valid() bool {
	for _, status := range proposalStatusCodes {
		if status == s {
			return true
		}
	}
	return false
}

// Terminal reports whether the status admits no further transitions
func (s ProposalStatus) Terminal() bool {
	switch s {
	case ProposalStatusCanceled, ProposalStatusDefeated, ProposalStatusExpired, ProposalStatusExecuted:
		return true
	default:
		return false
	}
}

// ProposalCategory represents the kind of action a proposal governs.
// Each category carries its own quorum requirement.
type ProposalCategory string

const (
	CategoryGeneral   ProposalCategory = "general"
	CategoryTreasury  ProposalCategory = "treasury"
	CategoryParameter ProposalCategory = "parameter"
	CategoryUpgrade   ProposalCategory = "upgrade"
	CategoryEmergency ProposalCategory = "emergency"
)

var proposalCategoryCodes = [...]ProposalCategory{
	CategoryGeneral,
	CategoryTreasury,
	CategoryParameter,
	CategoryUpgrade,
	CategoryEmergency,
}

// ProposalCategoryFromCode decodes the on-chain uint8 category encoding
func ProposalCategoryFromCode(code uint8) (ProposalCategory, error) {
	if int(code) >= len(proposalCategoryCodes) {
		return "", fmt.Errorf("invalid proposal category code: %d", code)
	}
	return proposalCategoryCodes[code], nil
}

// Code returns the on-chain uint8 encoding of the category
func (c ProposalCategory) Code() uint8 {
	for i, category := range proposalCategoryCodes {
		if category == c {
			return uint8(i)
		}
	}
	panic(fmt.Sprintf("invalid proposal category: %s", c))
}

// Valid checks if the category is a known proposal category
func (c ProposalCategory) Valid() bool {
	for _, category := range proposalCategoryCodes {
		if category == c {
			return true
		}
	}
	return false
}

// QuorumBps returns the minimum weighted turnout for the category,
// in basis points of the total eligible power.
func (c ProposalCategory) QuorumBps() uint64 {
	switch c {
	case CategoryGeneral:
		return 1000
	case CategoryTreasury:
		return 2000
	case CategoryParameter:
		return 2500
	case CategoryUpgrade:
		return 3000
	case CategoryEmergency:
		return 3000
	default:
		panic(fmt.Sprintf("invalid proposal category: %s", c))
	}
}

// VoteSupport represents the direction of a cast vote
type VoteSupport string

const (
	VoteAgainst VoteSupport = "against"
	VoteFor     VoteSupport = "for"
	VoteAbstain VoteSupport = "abstain"
)

var voteSupportCodes = [...]VoteSupport{VoteAgainst, VoteFor, VoteAbstain}

// VoteSupportFromCode decodes the on-chain uint8 support encoding
// (0 = against, 1 = for, 2 = abstain)
func VoteSupportFromCode(code uint8) (VoteSupport, error) {
	if int(code) >= len(voteSupportCodes) {
		return "", fmt.Errorf("invalid vote support code: %d", code)
	}
	return voteSupportCodes[code], nil
}

// Code returns the on-chain uint8 encoding of the support direction
func (v VoteSupport) Code() uint8 {
	for i, support := range voteSupportCodes {
		if support == v {
			return uint8(i)
		}
	}
	panic(fmt.Sprintf("invalid vote support: %s", v))
}

// Valid checks if the support value is known
func (v VoteSupport) Valid() bool {
	for _, support := range voteSupportCodes {
		if support == v {
			return true
		}
	}
	return false
}

// CitizenStatus represents the registration state of a citizen
type CitizenStatus string

const (
	CitizenStatusPending CitizenStatus = "pending"
	CitizenStatusActive  CitizenStatus = "active"
	CitizenStatusRevoked CitizenStatus = "revoked"
)

// Valid checks if the status is a known citizen status
func (s CitizenStatus) Valid() bool {
	switch s {
	case CitizenStatusPending, CitizenStatusActive, CitizenStatusRevoked:
		return true
	default:
		return false
	}
}

// WithdrawalStatus represents the state of a queued treasury withdrawal
type WithdrawalStatus string

const (
	WithdrawalStatusPending WithdrawalStatus = "pending"
	// WithdrawalStatusReady exists only in the on-chain uint8 encoding,
	// where the timelock expiry is a stored transition. Here the expiry
	// is derived from QueuedAt at execution time, so the pipeline moves
	// straight from pending/approved to executed and never stores ready.
	WithdrawalStatusReady    WithdrawalStatus = "ready"
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	WithdrawalStatusExecuted WithdrawalStatus = "executed"
	WithdrawalStatusCanceled WithdrawalStatus = "canceled"
)

var withdrawalStatusCodes = [...]WithdrawalStatus{
	WithdrawalStatusPending,
	WithdrawalStatusReady,
	WithdrawalStatusApproved,
	WithdrawalStatusExecuted,
	WithdrawalStatusCanceled,
}

// WithdrawalStatusFromCode decodes the on-chain uint8 withdrawal status encoding
func WithdrawalStatusFromCode(code uint8) (WithdrawalStatus, error) {
	if int(code) >= len(withdrawalStatusCodes) {
		return "", fmt.Errorf("invalid withdrawal status code: %d", code)
	}
	return withdrawalStatusCodes[code], nil
}

// Valid checks if the status is a known withdrawal status
func (s WithdrawalStatus) Valid() bool {
	for _, status := range withdrawalStatusCodes {
		if status == s {
			return true
		}
	}
	return false
}

// Role represents a governance access-control role
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleDelegate      Role = "delegate"
	RoleGuardian      Role = "guardian"
	RoleAuditor       Role = "auditor"
	RoleCitizen       Role = "citizen"
	RoleUpgrader      Role = "upgrader"
	RoleSigner        Role = "signer"
)

// Valid checks if the role is a known governance role
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleDelegate, RoleGuardian, RoleAuditor, RoleCitizen, RoleUpgrader, RoleSigner:
		return true
	default:
		return false
	}
}

// Amount represents a token amount or voting power as a non-negative
// arbitrary-precision integer. Amounts travel as decimal strings on the
// wire and in the database (numeric(78,0)) to support full uint256 range.
type Amount struct {
	value *big.Int
}

// NewAmount creates an amount from an int64, panicking on negative input
func NewAmount(v int64) Amount {
	if v < 0 {
		panic("amount must be non-negative")
	}
	return Amount{value: big.NewInt(v)}
}

// ParseAmount parses a decimal string into an amount
func ParseAmount(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, fmt.Errorf("invalid amount: %q", s)
	}
	if v.Sign() < 0 {
		return Amount{}, fmt.Errorf("amount must be non-negative: %q", s)
	}
	return Amount{value: v}, nil
}

// AmountFromBig creates an amount from a big integer. The value is copied,
// so later mutation of v does not affect the amount. Nil maps to zero.
func AmountFromBig(v *big.Int) Amount {
	if v == nil {
		return ZeroAmount()
	}
	return Amount{value: new(big.Int).Set(v)}
}

// ZeroAmount returns a zero amount
func ZeroAmount() Amount {
	return Amount{value: new(big.Int)}
}

func (a Amount) big() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}
	return a.value
}

// Add returns a + b
func (a Amount) Add(b Amount) Amount {
	return Amount{value: new(big.Int).Add(a.big(), b.big())}
}

// Sub returns a - b, panicking if the result would be negative
func (a Amount) Sub(b Amount) Amount {
	v := new(big.Int).Sub(a.big(), b.big())
	if v.Sign() < 0 {
		panic("amount underflow")
	}
	return Amount{value: v}
}

// Cmp compares a against b, returning -1, 0 or 1
func (a Amount) Cmp(b Amount) int {
	return a.big().Cmp(b.big())
}

// IsZero reports whether the amount is zero
func (a Amount) IsZero() bool {
	return a.big().Sign() == 0
}

// MeetsBps reports whether a*10000 >= total*bps, i.e. whether a is at
// least bps basis points of total. Exact integer math, no rounding.
func (a Amount) MeetsBps(total Amount, bps uint64) bool {
	lhs := new(big.Int).Mul(a.big(), big.NewInt(10000))
	rhs := new(big.Int).Mul(total.big(), new(big.Int).SetUint64(bps))
	return lhs.Cmp(rhs) >= 0
}

// String returns the decimal string representation
func (a Amount) String() string {
	return a.big().String()
}

// MarshalJSON implements json.Marshaler, encoding as a decimal string
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
