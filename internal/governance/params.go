package governance

import (
	"time"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// Params holds the governance-configurable parameters. Updates are
// validated as a whole: an invalid update leaves the prior values untouched.
type Params struct {
	// VotingPeriod is the length of the voting window in blocks (~12s each)
	VotingPeriod uint64 `json:"voting_period"`
	// ExecutionDelay is the mandatory timelock between queueing and execution
	ExecutionDelay time.Duration `json:"execution_delay"`
	// QuorumPercentage is the default quorum in basis points (0-10000).
	// Category-specific quorums take precedence when higher.
	QuorumPercentage uint64 `json:"quorum_percentage"`
	// ProposalThreshold is the minimum effective power required to propose
	ProposalThreshold domain.Amount `json:"proposal_threshold"`
	// GracePeriod is how long a queued proposal stays executable after the
	// timelock elapses before it expires
	GracePeriod time.Duration `json:"grace_period"`
}

// DefaultParams returns the default governance parameters
func DefaultParams() Params {
	return Params{
		VotingPeriod:      50400, // ~7 days at 12s blocks
		ExecutionDelay:    48 * time.Hour,
		QuorumPercentage:  1000, // 10%
		ProposalThreshold: domain.NewAmount(100),
		GracePeriod:       14 * 24 * time.Hour,
	}
}

// Validate checks the parameters, returning the first violated constraint
func (p Params) Validate() error {
	if p.VotingPeriod == 0 {
		return domain.ErrInvalidVotingPeriod
	}
	if p.QuorumPercentage > 10000 {
		return domain.ErrInvalidQuorumPercentage
	}
	return nil
}

// VotingWindow converts the voting period from blocks to wall-clock duration
func (p Params) VotingWindow() time.Duration {
	return time.Duration(p.VotingPeriod) * 12 * time.Second
}

// AuthState is the explicit authorization and configuration aggregate passed
// into state-machine operations: role assignments, the module registry and
// the emergency pause flag. It is owned by the Ledger and never exposed as
// mutable global state.
type AuthState struct {
	roles   map[domain.Role]map[domain.Address]bool
	modules map[string]domain.Address
	paused  bool
}

// NewAuthState creates an empty authorization state with admin granted
// the administrator and upgrader roles.
func NewAuthState(admin domain.Address) *AuthState {
	a := &AuthState{
		roles:   make(map[domain.Role]map[domain.Address]bool),
		modules: make(map[string]domain.Address),
	}
	a.grant(domain.RoleAdministrator, admin)
	a.grant(domain.RoleUpgrader, admin)
	return a
}

func (a *AuthState) grant(role domain.Role, account domain.Address) {
	if a.roles[role] == nil {
		a.roles[role] = make(map[domain.Address]bool)
	}
	a.roles[role][account] = true
}

// HasRole reports whether the account holds the role
func (a *AuthState) HasRole(role domain.Role, account domain.Address) bool {
	return a.roles[role][account]
}

// GrantRole grants a role to an account. Granting an already held role is a no-op.
func (a *AuthState) GrantRole(role domain.Role, account domain.Address) {
	a.grant(role, account)
}

// RevokeRole revokes a role from an account. Revoking an unheld role is a no-op.
func (a *AuthState) RevokeRole(role domain.Role, account domain.Address) {
	if a.roles[role] != nil {
		delete(a.roles[role], account)
	}
}

// Signers returns the accounts holding the signer role
func (a *AuthState) Signers() []domain.Address {
	signers := make([]domain.Address, 0, len(a.roles[domain.RoleSigner]))
	for account := range a.roles[domain.RoleSigner] {
		signers = append(signers, account)
	}
	return signers
}

// Paused reports whether governance writes are paused
func (a *AuthState) Paused() bool {
	return a.paused
}

// SetPaused flips the emergency pause flag
func (a *AuthState) SetPaused(paused bool) {
	a.paused = paused
}

// RegisterModule registers a module address under an id.
// A duplicate id is a state error, not an overwrite.
func (a *AuthState) RegisterModule(id string, address domain.Address) error {
	if _, exists := a.modules[id]; exists {
		return domain.ErrModuleAlreadyRegistered
	}
	a.modules[id] = address
	return nil
}

// RemoveModule removes a registered module by id
func (a *AuthState) RemoveModule(id string) error {
	if _, exists := a.modules[id]; !exists {
		return domain.ErrModuleNotFound
	}
	delete(a.modules, id)
	return nil
}

// Module returns the address registered under id, if any
func (a *AuthState) Module(id string) (domain.Address, bool) {
	addr, ok := a.modules[id]
	return addr, ok
}

// ModuleCount returns the number of registered modules
func (a *AuthState) ModuleCount() int {
	return len(a.modules)
}
