package governance

import (
	"github.com/nexus-dao/nexus-governance/internal/domain"
)

// Delegate moves the delegator's base power to the delegate. While the
// delegation is in place the delegator's direct power is zero: effective
// power is self-held or delegated away, never both. Between two active
// citizens the power only changes hands and the eligible total is
// unchanged; the delta accounting keeps that total correct either way.
func (r *Registry) Delegate(from, to domain.Address) (domain.Amount, error) {
	if from == to {
		return domain.Amount{}, domain.ErrSelfDelegation
	}

	delegator, ok := r.citizens[from]
	if !ok {
		return domain.Amount{}, domain.ErrNotCitizen
	}
	if delegator.Status != domain.CitizenStatusActive {
		return domain.Amount{}, domain.ErrCitizenNotActive
	}
	if delegator.Delegating() {
		return domain.Amount{}, domain.ErrAlreadyDelegating
	}

	delegate, ok := r.citizens[to]
	if !ok {
		return domain.Amount{}, domain.ErrNotCitizen
	}
	if delegate.Status != domain.CitizenStatusActive {
		return domain.Amount{}, domain.ErrCitizenNotActive
	}

	beforeFrom := delegator.EffectivePower()
	beforeTo := delegate.EffectivePower()

	target := to
	delegator.DelegatedTo = &target
	delegate.DelegatedPowerReceived = delegate.DelegatedPowerReceived.Add(delegator.BasePower)

	r.applyPowerDelta(beforeFrom.Add(beforeTo), delegator.EffectivePower().Add(delegate.EffectivePower()))
	return delegator.BasePower, nil
}

// RemoveDelegation returns the delegator's base power to direct control.
// Votes the delegate already cast keep their snapshotted weight. Either
// party may have been revoked since the delegation was placed, so the
// eligible total is adjusted by the change in each party's effective
// power rather than assumed constant.
func (r *Registry) RemoveDelegation(from domain.Address) (domain.Address, domain.Amount, error) {
	delegator, ok := r.citizens[from]
	if !ok {
		return "", domain.Amount{}, domain.ErrNotCitizen
	}
	if !delegator.Delegating() {
		return "", domain.Amount{}, domain.ErrNotDelegating
	}

	to := *delegator.DelegatedTo
	delegate := r.citizens[to]

	before := delegator.EffectivePower()
	if delegate != nil {
		before = before.Add(delegate.EffectivePower())
	}

	delegator.DelegatedTo = nil
	after := delegator.EffectivePower()
	if delegate != nil {
		delegate.DelegatedPowerReceived = delegate.DelegatedPowerReceived.Sub(delegator.BasePower)
		after = after.Add(delegate.EffectivePower())
	}

	r.applyPowerDelta(before, after)
	return to, delegator.BasePower, nil
}

// applyPowerDelta folds a change in effective power into the eligible
// total. Adding before subtracting keeps the arithmetic non-negative:
// the before amounts are contributions the total already contains.
func (r *Registry) applyPowerDelta(before, after domain.Amount) {
	r.totalEligiblePower = r.totalEligiblePower.Add(after).Sub(before)
}

// VotingPower resolves the effective power of a wallet at this instant.
// Unregistered wallets have zero power.
func (r *Registry) VotingPower(wallet domain.Address) domain.Amount {
	c, ok := r.citizens[wallet]
	if !ok {
		return domain.ZeroAmount()
	}
	return c.EffectivePower()
}
