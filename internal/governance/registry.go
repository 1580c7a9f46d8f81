package governance

import (
	"time"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// Citizen is the identity ledger record for a registered account.
// Citizens are never deleted: revocation is a status change so the
// audit trail stays intact.
type Citizen struct {
	Wallet           domain.Address
	Status           domain.CitizenStatus
	IdentityVerified bool
	BasePower        domain.Amount
	// DelegatedTo is the delegation target, nil when self-held.
	// A citizen with a delegation in place has zero direct power.
	DelegatedTo *domain.Address
	// DelegatedPowerReceived is the aggregate power delegated to this citizen
	DelegatedPowerReceived domain.Amount
	TotalProposalsCreated  uint64
	TotalVotesCast         uint64
	RegisteredAt           time.Time
}

// Delegating reports whether the citizen currently delegates their base power
func (c *Citizen) Delegating() bool {
	return c.DelegatedTo != nil
}

// EffectivePower is the power the citizen can vote with right now:
// base power unless delegated away, plus any power delegated in.
func (c *Citizen) EffectivePower() domain.Amount {
	if c.Status != domain.CitizenStatusActive {
		return domain.ZeroAmount()
	}
	power := c.DelegatedPowerReceived
	if !c.Delegating() {
		power = power.Add(c.BasePower)
	}
	return power
}

// Registry is the identity and eligibility ledger: it tracks which accounts
// are citizens, their verification status and base voting power, and the
// delegation graph over them. It also maintains the total eligible power
// used as the quorum denominator.
type Registry struct {
	citizens map[domain.Address]*Citizen
	// totalEligiblePower is the sum of effective power over active citizens.
	// Maintained incrementally on every mutation so the quorum check is O(1).
	totalEligiblePower domain.Amount
}

// NewRegistry creates an empty citizen registry
func NewRegistry() *Registry {
	return &Registry{
		citizens:           make(map[domain.Address]*Citizen),
		totalEligiblePower: domain.ZeroAmount(),
	}
}

// Get returns the citizen record for a wallet, if registered
func (r *Registry) Get(wallet domain.Address) (*Citizen, bool) {
	c, ok := r.citizens[wallet]
	return c, ok
}

// TotalCitizens returns the number of registered citizens, any status
func (r *Registry) TotalCitizens() int {
	return len(r.citizens)
}

// TotalEligiblePower returns the quorum denominator: the sum of effective
// power across active citizens.
func (r *Registry) TotalEligiblePower() domain.Amount {
	return r.totalEligiblePower
}

// Register creates a pending citizen record with the given base power
func (r *Registry) Register(wallet domain.Address, basePower domain.Amount, now time.Time) (*Citizen, error) {
	if !wallet.Valid() {
		return nil, domain.ErrInvalidAddress
	}
	if _, exists := r.citizens[wallet]; exists {
		return nil, domain.ErrCitizenExists
	}

	c := &Citizen{
		Wallet:                 wallet,
		Status:                 domain.CitizenStatusPending,
		BasePower:              basePower,
		DelegatedPowerReceived: domain.ZeroAmount(),
		RegisteredAt:           now,
	}
	r.citizens[wallet] = c
	return c, nil
}

// Approve activates a pending citizen, marking identity as verified and
// adding their base power to the eligible total.
func (r *Registry) Approve(wallet domain.Address) (*Citizen, error) {
	c, ok := r.citizens[wallet]
	if !ok {
		return nil, domain.ErrNotCitizen
	}
	if c.Status == domain.CitizenStatusActive {
		return c, nil // idempotent
	}

	c.Status = domain.CitizenStatusActive
	c.IdentityVerified = true
	r.totalEligiblePower = r.totalEligiblePower.Add(c.EffectivePower())
	return c, nil
}

// Revoke deactivates a citizen. Their contribution leaves the eligible
// total; the record itself is preserved.
func (r *Registry) Revoke(wallet domain.Address) (*Citizen, error) {
	c, ok := r.citizens[wallet]
	if !ok {
		return nil, domain.ErrNotCitizen
	}
	if c.Status != domain.CitizenStatusActive {
		return nil, domain.ErrCitizenNotActive
	}

	r.totalEligiblePower = r.totalEligiblePower.Sub(c.EffectivePower())
	c.Status = domain.CitizenStatusRevoked
	return c, nil
}
