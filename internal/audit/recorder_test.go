package audit_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-dao/nexus-governance/internal/adapter"
	"github.com/nexus-dao/nexus-governance/internal/audit"
	"github.com/nexus-dao/nexus-governance/internal/domain"
)

const (
	testWallet   = "0x1111111111111111111111111111111111111111"
	testAccount  = "0x2222222222222222222222222222222222222222"
	testToken    = "0x5555555555555555555555555555555555555555"
	testContract = "0x9999999999999999999999999999999999999999"
)

func newTestRecorder() audit.Recorder {
	return audit.NewRecorder(adapter.NewJSON(), adapter.NewJCS())
}

func voteEvent() *domain.GovernanceEvent {
	return &domain.GovernanceEvent{
		Chain:     domain.ChainEthereumSepolia,
		Contract:  domain.NewAddress(testContract),
		EventType: domain.EventTypeVoteCast,
		Position:  domain.Position{BlockNumber: 9, LogIndex: 1},
		TxHash:    "0xabc",
		Actor:     domain.NewAddress(testWallet),
		Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Vote: &domain.VotePayload{
			ProposalID: 7,
			Voter:      domain.NewAddress(testWallet),
			Support:    domain.VoteFor,
			Weight:     domain.NewAmount(250),
		},
	}
}

func TestBuildRecord(t *testing.T) {
	recorder := newTestRecorder()

	record, err := recorder.BuildRecord(voteEvent())
	require.NoError(t, err)

	assert.NotEmpty(t, record.RecordID)
	assert.Equal(t, "proposal:7", record.Subject)
	assert.Equal(t, "vote_cast", record.Action)
	assert.Equal(t, audit.CategoryVote, record.Category)
	assert.Equal(t, testWallet, record.RecordedBy)
	assert.Equal(t, "0xabc", record.TxHash)
	assert.Equal(t, uint64(1), record.LogIndex)
	assert.Len(t, record.PayloadHash, 64)
}

func TestBuildRecord_InvalidEvent(t *testing.T) {
	recorder := newTestRecorder()

	event := voteEvent()
	event.Vote = nil
	_, err := recorder.BuildRecord(event)
	assert.ErrorIs(t, err, domain.ErrInvalidGovernanceEvent)
}

func TestBuildRecord_HashIsDeterministic(t *testing.T) {
	recorder := newTestRecorder()

	// Two independently built records over the same event must agree on
	// the payload hash, so replicas can cross-check each other.
	first, err := recorder.BuildRecord(voteEvent())
	require.NoError(t, err)
	second, err := recorder.BuildRecord(voteEvent())
	require.NoError(t, err)
	assert.Equal(t, first.PayloadHash, second.PayloadHash)

	changed := voteEvent()
	changed.Vote.Weight = domain.NewAmount(251)
	third, err := recorder.BuildRecord(changed)
	require.NoError(t, err)
	assert.NotEqual(t, first.PayloadHash, third.PayloadHash)
}

func TestSubject(t *testing.T) {
	tests := []struct {
		name    string
		event   *domain.GovernanceEvent
		subject string
	}{
		{
			name: "citizen",
			event: &domain.GovernanceEvent{
				Citizen: &domain.CitizenPayload{Wallet: domain.NewAddress(testWallet)},
			},
			subject: "citizen:" + testWallet,
		},
		{
			name: "proposal",
			event: &domain.GovernanceEvent{
				Proposal: &domain.ProposalPayload{ProposalID: 12},
			},
			subject: "proposal:12",
		},
		{
			name: "withdrawal",
			event: &domain.GovernanceEvent{
				Treasury: &domain.TreasuryPayload{WithdrawalID: 4},
			},
			subject: "withdrawal:4",
		},
		{
			name: "budget",
			event: &domain.GovernanceEvent{
				Treasury: &domain.TreasuryPayload{BudgetID: 2},
			},
			subject: "budget:2",
		},
		{
			name: "treasury token",
			event: &domain.GovernanceEvent{
				Treasury: &domain.TreasuryPayload{Token: domain.NewAddress(testToken)},
			},
			subject: "treasury:" + testToken,
		},
		{
			name: "role",
			event: &domain.GovernanceEvent{
				Role: &domain.RolePayload{Role: domain.RoleSigner, Account: domain.NewAddress(testAccount)},
			},
			subject: "role:signer:" + testAccount,
		},
		{
			name: "violation",
			event: &domain.GovernanceEvent{
				Compliance: &domain.CompliancePayload{ViolationID: 9, RuleID: 3},
			},
			subject: "violation:9",
		},
		{
			name:    "bare chain event",
			event:   &domain.GovernanceEvent{Chain: domain.ChainEthereumSepolia},
			subject: "chain:eip155:11155111",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.subject, audit.Subject(tt.event))
		})
	}
}

func TestCategory(t *testing.T) {
	assert.Equal(t, audit.CategoryIdentity, audit.Category(domain.EventTypePowerDelegated))
	assert.Equal(t, audit.CategoryVote, audit.Category(domain.EventTypeVoteCast))
	assert.Equal(t, audit.CategoryProposal, audit.Category(domain.EventTypeProposalQueued))
	assert.Equal(t, audit.CategoryTreasury, audit.Category(domain.EventTypeWithdrawalExecuted))
	assert.Equal(t, audit.CategoryCompliance, audit.Category(domain.EventTypeViolationReported))
	assert.Equal(t, audit.CategoryGovernance, audit.Category(domain.EventTypeEmergencyPaused))
}
