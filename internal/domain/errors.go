package domain

import "errors"

// Validation errors: bad input shape, rejected before any state change.
var (
	// ErrInvalidVotingPeriod is returned when a governance parameter update carries a zero voting period
	ErrInvalidVotingPeriod = errors.New("invalid voting period")

	// ErrInvalidQuorumPercentage is returned when a quorum percentage is outside 0-10000 basis points
	ErrInvalidQuorumPercentage = errors.New("invalid quorum percentage")

	// ErrInvalidCategory is returned when a proposal category is unknown
	ErrInvalidCategory = errors.New("invalid proposal category")

	// ErrInvalidSupport is returned when a vote support value is unknown
	ErrInvalidSupport = errors.New("invalid vote support")

	// ErrInvalidAddress is returned when an address is malformed
	ErrInvalidAddress = errors.New("invalid address")

	// ErrInvalidGovernanceEvent is returned when an event fails payload validation
	ErrInvalidGovernanceEvent = errors.New("invalid governance event")
)

// Authorization errors: access-control failures, rejected before state change.
var (
	// ErrNotCitizen is returned when the actor is not a registered citizen
	ErrNotCitizen = errors.New("not a registered citizen")

	// ErrNotDelegate is returned when the actor lacks the delegate role
	ErrNotDelegate = errors.New("not a delegate")

	// ErrNotAuthorizedSigner is returned when the approver is not in the authorized signer set
	ErrNotAuthorizedSigner = errors.New("not an authorized signer")

	// ErrNotAdministrator is returned when the actor lacks the administrator role
	ErrNotAdministrator = errors.New("not an administrator")

	// ErrNotProposer is returned when someone other than the original proposer attempts to cancel
	ErrNotProposer = errors.New("only the proposer may cancel")

	// ErrBelowProposalThreshold is returned when the proposer holds less than the proposal threshold
	ErrBelowProposalThreshold = errors.New("voting power below proposal threshold")

	// ErrNotEligible is returned when the voter is not an active citizen
	ErrNotEligible = errors.New("voter not eligible")
)

// State errors: state-machine precondition violations, rejected atomically.
var (
	// ErrNotActiveProposal is returned when voting on a proposal outside its active state
	ErrNotActiveProposal = errors.New("proposal is not active")

	// ErrAlreadyVoted is returned when a voter already holds a vote record for the proposal
	ErrAlreadyVoted = errors.New("already voted on this proposal")

	// ErrNoVotingPower is returned when the voter's effective power is zero
	ErrNoVotingPower = errors.New("no voting power")

	// ErrNotSucceeded is returned when queueing a proposal that has not succeeded
	ErrNotSucceeded = errors.New("proposal has not succeeded")

	// ErrNotQueued is returned when executing a proposal that is not queued
	ErrNotQueued = errors.New("proposal is not queued")

	// ErrAlreadyExecuted is returned on replayed execution of an executed proposal
	ErrAlreadyExecuted = errors.New("already executed")

	// ErrAlreadyApproved is returned when a signer approves the same withdrawal twice
	ErrAlreadyApproved = errors.New("signer already approved")

	// ErrProposalNotFound is returned when a proposal id is unknown
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrProposalTerminal is returned when mutating a proposal in a terminal state
	ErrProposalTerminal = errors.New("proposal is in a terminal state")

	// ErrCitizenExists is returned when registering an already registered citizen
	ErrCitizenExists = errors.New("citizen already registered")

	// ErrCitizenNotActive is returned when acting on a citizen that is not active
	ErrCitizenNotActive = errors.New("citizen is not active")

	// ErrAlreadyDelegating is returned when delegating while a delegation is in place
	ErrAlreadyDelegating = errors.New("already delegating")

	// ErrNotDelegating is returned when removing a delegation that does not exist
	ErrNotDelegating = errors.New("no delegation to remove")

	// ErrSelfDelegation is returned when delegating to oneself
	ErrSelfDelegation = errors.New("cannot delegate to self")

	// ErrModuleAlreadyRegistered is returned when registering a module id twice
	ErrModuleAlreadyRegistered = errors.New("module already registered")

	// ErrModuleNotFound is returned when removing an unknown module id
	ErrModuleNotFound = errors.New("module not found")

	// ErrWithdrawalNotFound is returned when a withdrawal id is unknown
	ErrWithdrawalNotFound = errors.New("withdrawal not found")

	// ErrWithdrawalCanceled is returned when acting on a canceled withdrawal
	ErrWithdrawalCanceled = errors.New("withdrawal is canceled")

	// ErrPaused is returned when a write operation arrives while governance is paused
	ErrPaused = errors.New("governance is paused")

	// ErrNotPaused is returned when unpausing a system that is not paused
	ErrNotPaused = errors.New("governance is not paused")
)

// Timelock and quorum errors: time-dependent, may become valid later.
var (
	// ErrVotingClosed is returned when casting a vote outside the voting window
	ErrVotingClosed = errors.New("voting is closed")

	// ErrVotingNotStarted is returned when casting a vote before the voting window opens
	ErrVotingNotStarted = errors.New("voting has not started")

	// ErrTimelockNotElapsed is returned when executing before the execution delay has passed
	ErrTimelockNotElapsed = errors.New("timelock has not elapsed")

	// ErrGracePeriodExpired is returned when executing after the grace window has closed
	ErrGracePeriodExpired = errors.New("execution grace period expired")

	// ErrInsufficientApprovals is returned when executing a treasury action below the approval threshold
	ErrInsufficientApprovals = errors.New("insufficient approvals")
)

// Treasury constraint violations, aggregated by withdrawal validation.
var (
	// ErrMissingProposalLink is returned when a withdrawal carries no governing proposal
	ErrMissingProposalLink = errors.New("withdrawal requires a governing proposal")

	// ErrExceedsSingleTxLimit is returned when an amount exceeds the single transaction limit
	ErrExceedsSingleTxLimit = errors.New("amount exceeds single transaction limit")

	// ErrExceedsDailyLimit is returned when an amount would exceed the rolling daily withdrawal limit
	ErrExceedsDailyLimit = errors.New("amount exceeds daily withdrawal limit")

	// ErrInsufficientBalance is returned when the treasury balance cannot cover the amount
	ErrInsufficientBalance = errors.New("insufficient treasury balance")
)
