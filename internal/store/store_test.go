package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

// testBaseTime keeps the stats buckets deterministic across tests
var testBaseTime = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestCitizen(wallet string) schema.Citizen {
	return schema.Citizen{
		Wallet:       wallet,
		Status:       "pending",
		BasePower:    "100",
		RegisteredAt: testBaseTime,
	}
}

func buildTestProposal(proposalID uint64, proposer string) schema.Proposal {
	return schema.Proposal{
		ProposalID:   proposalID,
		Proposer:     proposer,
		Description:  fmt.Sprintf("Test proposal %d\n\nLonger description body.", proposalID),
		Category:     "general",
		Status:       "active",
		ForVotes:     "0",
		AgainstVotes: "0",
		AbstainVotes: "0",
		StartTime:    testBaseTime,
		EndTime:      testBaseTime.Add(7 * 24 * time.Hour),
		TxHash:       fmt.Sprintf("0xproposal%d", proposalID),
		BlockNumber:  1000 + proposalID,
	}
}

func buildTestVote(proposalID uint64, voter, support, weight string) schema.Vote {
	return schema.Vote{
		ProposalID:  proposalID,
		Voter:       voter,
		Support:     support,
		Weight:      weight,
		CastAt:      testBaseTime.Add(time.Hour),
		TxHash:      fmt.Sprintf("0xvote%d%s", proposalID, voter),
		BlockNumber: 2000,
	}
}

func buildTestWithdrawal(withdrawalID, proposalID uint64, amount string) schema.Withdrawal {
	return schema.Withdrawal{
		WithdrawalID: withdrawalID,
		ProposalID:   proposalID,
		Token:        "0x0000000000000000000000000000000000000000",
		Recipient:    "0xrecipient00000000000000000000000000000001",
		Amount:       amount,
		Status:       "pending",
		QueuedAt:     testBaseTime,
	}
}

func buildTestTreasuryTransaction(txHash string, logIndex uint64, txType, amount string) schema.TreasuryTransaction {
	return schema.TreasuryTransaction{
		TxHash:      txHash,
		LogIndex:    logIndex,
		Type:        txType,
		Token:       "0x0000000000000000000000000000000000000000",
		Amount:      amount,
		FromAddress: "0xfrom000000000000000000000000000000000001",
		ToAddress:   "0xto00000000000000000000000000000000000001",
		OccurredAt:  testBaseTime,
		BlockNumber: 3000,
	}
}

// =============================================================================
// Citizens
// =============================================================================

func testRecordCitizenRegistration(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("creates citizen and bumps new-citizen stats", func(t *testing.T) {
		err := s.RecordCitizenRegistration(ctx, buildTestCitizen("0xalice00000000000000000000000000000000001"))
		require.NoError(t, err)

		citizen, err := s.GetCitizenByWallet(ctx, "0xalice00000000000000000000000000000000001")
		require.NoError(t, err)
		require.NotNil(t, citizen)
		assert.Equal(t, "pending", citizen.Status)
		assert.Equal(t, "100", citizen.BasePower)

		day := (testBaseTime.Unix() / 86400) * 86400
		stats, err := s.GetDailyStats(ctx, day, day)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, 1, stats[0].NewCitizens)
	})

	t.Run("replay does not duplicate or double-count", func(t *testing.T) {
		wallet := "0xbob0000000000000000000000000000000000001"
		require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(wallet)))
		require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(wallet)))

		citizens, total, err := s.GetCitizensByFilter(ctx, CitizenQueryFilter{Limit: 100})
		require.NoError(t, err)
		count := 0
		for _, c := range citizens {
			if c.Wallet == wallet {
				count++
			}
		}
		assert.Equal(t, 1, count)
		assert.GreaterOrEqual(t, total, uint64(1))
	})
}

func testUpdateCitizenStatus(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("transitions status and verification flag", func(t *testing.T) {
		wallet := "0xcarol0000000000000000000000000000000001"
		require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(wallet)))

		require.NoError(t, s.UpdateCitizenStatus(ctx, wallet, "active", true))

		citizen, err := s.GetCitizenByWallet(ctx, wallet)
		require.NoError(t, err)
		require.NotNil(t, citizen)
		assert.Equal(t, "active", citizen.Status)
		assert.True(t, citizen.IdentityVerified)
	})

	t.Run("unknown wallet returns ErrNotCitizen", func(t *testing.T) {
		err := s.UpdateCitizenStatus(ctx, "0xunknown000000000000000000000000000000001", "active", true)
		assert.ErrorIs(t, err, domain.ErrNotCitizen)
	})
}

func testUpdateDelegation(t *testing.T, s Store) {
	ctx := context.Background()

	delegator := "0xdelegator00000000000000000000000000000001"
	delegate := "0xdelegate000000000000000000000000000000001"
	require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(delegator)))
	require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(delegate)))

	t.Run("delegation credits the delegate", func(t *testing.T) {
		err := s.UpdateDelegation(ctx, UpdateDelegationInput{
			Delegator: delegator,
			Delegate:  &delegate,
			Power:     "100",
		})
		require.NoError(t, err)

		d, err := s.GetCitizenByWallet(ctx, delegator)
		require.NoError(t, err)
		require.NotNil(t, d.DelegatedTo)
		assert.Equal(t, delegate, *d.DelegatedTo)

		target, err := s.GetCitizenByWallet(ctx, delegate)
		require.NoError(t, err)
		assert.Equal(t, "100", target.DelegatedPowerReceived)
	})

	t.Run("removal debits the previous delegate", func(t *testing.T) {
		err := s.UpdateDelegation(ctx, UpdateDelegationInput{
			Delegator:        delegator,
			PreviousDelegate: &delegate,
			Power:            "100",
		})
		require.NoError(t, err)

		d, err := s.GetCitizenByWallet(ctx, delegator)
		require.NoError(t, err)
		assert.Nil(t, d.DelegatedTo)

		target, err := s.GetCitizenByWallet(ctx, delegate)
		require.NoError(t, err)
		assert.Equal(t, "0", target.DelegatedPowerReceived)
	})
}

// =============================================================================
// Proposals and Votes
// =============================================================================

func testRecordProposalCreated(t *testing.T, s Store) {
	ctx := context.Background()

	proposer := "0xproposer000000000000000000000000000000001"
	require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(proposer)))

	t.Run("creates proposal and bumps proposer counter", func(t *testing.T) {
		require.NoError(t, s.RecordProposalCreated(ctx, buildTestProposal(1, proposer)))

		proposal, err := s.GetProposalByProposalID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, proposal)
		assert.Equal(t, proposer, proposal.Proposer)
		assert.Equal(t, "active", proposal.Status)

		citizen, err := s.GetCitizenByWallet(ctx, proposer)
		require.NoError(t, err)
		assert.Equal(t, 1, citizen.TotalProposalsCreated)
	})

	t.Run("replay does not double-count", func(t *testing.T) {
		require.NoError(t, s.RecordProposalCreated(ctx, buildTestProposal(1, proposer)))

		citizen, err := s.GetCitizenByWallet(ctx, proposer)
		require.NoError(t, err)
		assert.Equal(t, 1, citizen.TotalProposalsCreated)
	})
}

func testRecordVote(t *testing.T, s Store) {
	ctx := context.Background()

	proposer := "0xvoteproposer0000000000000000000000000001"
	voterFor := "0xvoterfor0000000000000000000000000000001"
	voterAgainst := "0xvoteragainst00000000000000000000000001"
	require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(proposer)))
	require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(voterFor)))
	require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(voterAgainst)))
	require.NoError(t, s.RecordProposalCreated(ctx, buildTestProposal(10, proposer)))

	t.Run("accumulates tallies per support", func(t *testing.T) {
		require.NoError(t, s.RecordVote(ctx, buildTestVote(10, voterFor, "for", "150")))
		require.NoError(t, s.RecordVote(ctx, buildTestVote(10, voterAgainst, "against", "50")))

		proposal, err := s.GetProposalByProposalID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "150", proposal.ForVotes)
		assert.Equal(t, "50", proposal.AgainstVotes)
		assert.Equal(t, "0", proposal.AbstainVotes)
		assert.Equal(t, 2, proposal.TotalVotes)

		citizen, err := s.GetCitizenByWallet(ctx, voterFor)
		require.NoError(t, err)
		assert.Equal(t, 1, citizen.TotalVotesCast)
	})

	t.Run("replay of the same ballot is a no-op", func(t *testing.T) {
		require.NoError(t, s.RecordVote(ctx, buildTestVote(10, voterFor, "for", "150")))

		proposal, err := s.GetProposalByProposalID(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, "150", proposal.ForVotes)
		assert.Equal(t, 2, proposal.TotalVotes)
	})

	t.Run("rejects unknown support value", func(t *testing.T) {
		err := s.RecordVote(ctx, buildTestVote(10, voterFor, "maybe", "1"))
		assert.ErrorIs(t, err, domain.ErrInvalidSupport)
	})

	t.Run("lists ballots for the proposal", func(t *testing.T) {
		votes, total, err := s.GetVotesByProposal(ctx, 10, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), total)
		assert.Len(t, votes, 2)
	})

	t.Run("a voter counts once per stats bucket", func(t *testing.T) {
		// A second ballot from voterFor on another proposal, same day
		require.NoError(t, s.RecordProposalCreated(ctx, buildTestProposal(11, proposer)))
		require.NoError(t, s.RecordVote(ctx, buildTestVote(11, voterFor, "for", "150")))

		day := (testBaseTime.Add(time.Hour).Unix() / 86400) * 86400
		daily, err := s.GetDailyStats(ctx, day, day)
		require.NoError(t, err)
		require.Len(t, daily, 1)
		// Three ballots, two distinct voters
		assert.Equal(t, 3, daily[0].VotesCast)
		assert.Equal(t, 2, daily[0].UniqueVoters)

		month := testBaseTime.UTC().Format("2006-01")
		monthly, err := s.GetMonthlyStats(ctx, month, month)
		require.NoError(t, err)
		require.Len(t, monthly, 1)
		assert.Equal(t, 3, monthly[0].VotesCast)
		assert.Equal(t, 2, monthly[0].UniqueVoters)
	})
}

func testUpdateProposalStatus(t *testing.T, s Store) {
	ctx := context.Background()

	proposer := "0xstatusproposer000000000000000000000001"
	require.NoError(t, s.RecordCitizenRegistration(ctx, buildTestCitizen(proposer)))
	require.NoError(t, s.RecordProposalCreated(ctx, buildTestProposal(20, proposer)))

	t.Run("records lifecycle timestamps", func(t *testing.T) {
		queuedAt := testBaseTime.Add(8 * 24 * time.Hour)
		err := s.UpdateProposalStatus(ctx, UpdateProposalStatusInput{
			ProposalID: 20,
			Status:     "queued",
			QueuedAt:   &queuedAt,
		})
		require.NoError(t, err)

		proposal, err := s.GetProposalByProposalID(ctx, 20)
		require.NoError(t, err)
		assert.Equal(t, "queued", proposal.Status)
		require.NotNil(t, proposal.QueuedAt)
		assert.WithinDuration(t, queuedAt, *proposal.QueuedAt, time.Second)
	})

	t.Run("unknown proposal returns ErrProposalNotFound", func(t *testing.T) {
		err := s.UpdateProposalStatus(ctx, UpdateProposalStatusInput{ProposalID: 9999, Status: "queued"})
		assert.ErrorIs(t, err, domain.ErrProposalNotFound)
	})
}

// =============================================================================
// Treasury
// =============================================================================

func testWithdrawalPipeline(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("queue, approve, execute", func(t *testing.T) {
		require.NoError(t, s.RecordWithdrawalQueued(ctx, buildTestWithdrawal(1, 5, "1000")))

		// Duplicate queue events are no-ops
		require.NoError(t, s.RecordWithdrawalQueued(ctx, buildTestWithdrawal(1, 5, "1000")))

		signers := []string{
			"0xsigner1000000000000000000000000000000001",
			"0xsigner2000000000000000000000000000000001",
			"0xsigner3000000000000000000000000000000001",
		}
		for _, signer := range signers {
			require.NoError(t, s.RecordWithdrawalApproval(ctx, schema.WithdrawalApproval{
				WithdrawalID: 1,
				Approver:     signer,
				ApprovedAt:   testBaseTime,
			}))
		}

		// A signer approving twice does not move the count
		require.NoError(t, s.RecordWithdrawalApproval(ctx, schema.WithdrawalApproval{
			WithdrawalID: 1,
			Approver:     signers[0],
			ApprovedAt:   testBaseTime,
		}))

		withdrawal, err := s.GetWithdrawalByWithdrawalID(ctx, 1)
		require.NoError(t, err)
		require.NotNil(t, withdrawal)
		assert.Equal(t, 3, withdrawal.Approvals)

		approvals, err := s.GetWithdrawalApprovals(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, approvals, 3)

		executedAt := testBaseTime.Add(48 * time.Hour)
		require.NoError(t, s.UpdateWithdrawalStatus(ctx, 1, "executed", &executedAt))

		withdrawal, err = s.GetWithdrawalByWithdrawalID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "executed", withdrawal.Status)
		require.NotNil(t, withdrawal.ExecutedAt)
	})

	t.Run("unknown withdrawal returns ErrWithdrawalNotFound", func(t *testing.T) {
		err := s.UpdateWithdrawalStatus(ctx, 9999, "executed", nil)
		assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
	})
}

func testRecordTreasuryTransaction(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("accumulates stats and derives balances", func(t *testing.T) {
		require.NoError(t, s.RecordTreasuryTransaction(ctx, buildTestTreasuryTransaction("0xdeposit1", 0, "deposit", "5000")))
		require.NoError(t, s.RecordTreasuryTransaction(ctx, buildTestTreasuryTransaction("0xwithdraw1", 0, "withdrawal", "1500")))

		// Replay of the same movement is a no-op
		require.NoError(t, s.RecordTreasuryTransaction(ctx, buildTestTreasuryTransaction("0xdeposit1", 0, "deposit", "5000")))

		balances, err := s.GetTreasuryBalances(ctx)
		require.NoError(t, err)
		require.Len(t, balances, 1)
		assert.Equal(t, "3500", balances[0].Balance)

		day := (testBaseTime.Unix() / 86400) * 86400
		stats, err := s.GetDailyStats(ctx, day, day)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "5000", stats[0].TreasuryDeposits)
		assert.Equal(t, "1500", stats[0].TreasuryWithdrawals)
	})
}

// =============================================================================
// Parameters, Modules, Roles
// =============================================================================

func testRecordParameterChange(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("rolls the current value forward", func(t *testing.T) {
		change := schema.ParameterChange{
			Name:      "voting_period",
			OldValue:  "50400",
			NewValue:  "60480",
			ChangedBy: "0xadmin0000000000000000000000000000000001",
			ChangedAt: testBaseTime,
			TxHash:    "0xparam1",
			LogIndex:  0,
		}
		require.NoError(t, s.RecordParameterChange(ctx, change))

		// Replay keeps a single history entry
		require.NoError(t, s.RecordParameterChange(ctx, change))

		parameters, err := s.GetGovernanceParameters(ctx)
		require.NoError(t, err)
		require.Len(t, parameters, 1)
		assert.Equal(t, "voting_period", parameters[0].Name)
		assert.Equal(t, "60480", parameters[0].Value)

		changes, total, err := s.GetParameterChanges(ctx, "voting_period", 10, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		assert.Len(t, changes, 1)
	})

	t.Run("later change supersedes the current value", func(t *testing.T) {
		require.NoError(t, s.RecordParameterChange(ctx, schema.ParameterChange{
			Name:      "voting_period",
			OldValue:  "60480",
			NewValue:  "40320",
			ChangedBy: "0xadmin0000000000000000000000000000000001",
			ChangedAt: testBaseTime.Add(time.Hour),
			TxHash:    "0xparam2",
			LogIndex:  0,
		}))

		parameters, err := s.GetGovernanceParameters(ctx)
		require.NoError(t, err)
		require.Len(t, parameters, 1)
		assert.Equal(t, "40320", parameters[0].Value)
	})
}

func testModulesAndRoles(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("module upsert toggles active flag", func(t *testing.T) {
		module := schema.Module{
			Name:         "staking",
			Address:      "0xmodule000000000000000000000000000000001",
			Active:       true,
			RegisteredBy: "0xadmin0000000000000000000000000000000001",
			RegisteredAt: testBaseTime,
		}
		require.NoError(t, s.UpsertModule(ctx, module))

		module.Active = false
		require.NoError(t, s.UpsertModule(ctx, module))

		active, err := s.GetModules(ctx, true)
		require.NoError(t, err)
		assert.Empty(t, active)

		all, err := s.GetModules(ctx, false)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("role grants and revocations", func(t *testing.T) {
		wallet := "0xrolewallet000000000000000000000000000001"
		assignment := schema.RoleAssignment{
			Wallet:    wallet,
			Role:      "guardian",
			Active:    true,
			GrantedBy: "0xadmin0000000000000000000000000000000001",
			GrantedAt: testBaseTime,
		}
		require.NoError(t, s.UpsertRoleAssignment(ctx, assignment))

		roles, err := s.GetRolesByWallet(ctx, wallet)
		require.NoError(t, err)
		require.Len(t, roles, 1)
		assert.Equal(t, "guardian", roles[0].Role)

		assignment.Active = false
		require.NoError(t, s.UpsertRoleAssignment(ctx, assignment))

		roles, err = s.GetRolesByWallet(ctx, wallet)
		require.NoError(t, err)
		assert.Empty(t, roles)
	})
}

// =============================================================================
// Audit and Compliance
// =============================================================================

func testAuditRecords(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("append and filter", func(t *testing.T) {
		record := schema.AuditRecord{
			RecordID:    "01J0000000000000000000AAAA",
			Subject:     "0xsubject000000000000000000000000000000001",
			Action:      "proposal created",
			Category:    "governance",
			PayloadHash: "abc123",
			RecordedBy:  "0xactor0000000000000000000000000000000001",
			OccurredAt:  testBaseTime,
			TxHash:      "0xaudit1",
			LogIndex:    0,
		}
		require.NoError(t, s.CreateAuditRecord(ctx, record))

		// Replay of the same position is a no-op
		require.NoError(t, s.CreateAuditRecord(ctx, record))

		records, total, err := s.GetAuditRecords(ctx, AuditRecordFilter{
			Subject: record.Subject,
			Limit:   10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), total)
		require.Len(t, records, 1)
		assert.Equal(t, "governance", records[0].Category)
	})
}

func testComplianceViolations(t *testing.T, s Store) {
	ctx := context.Background()

	require.NoError(t, s.UpsertComplianceRule(ctx, schema.ComplianceRule{
		RuleID:      1,
		RuleType:    "voting_eligibility",
		Description: "Only active citizens may vote",
		Active:      true,
	}))

	t.Run("violation bumps the rule counter once", func(t *testing.T) {
		violation := schema.ComplianceViolation{
			ViolationID: 1,
			RuleID:      1,
			Violator:    "0xviolator00000000000000000000000000000001",
			ReportedAt:  testBaseTime,
		}
		require.NoError(t, s.RecordViolation(ctx, violation))
		require.NoError(t, s.RecordViolation(ctx, violation))

		rules, err := s.GetComplianceRules(ctx)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		assert.Equal(t, 1, rules[0].ViolationCount)
	})

	t.Run("resolution clears the unresolved filter", func(t *testing.T) {
		resolvedAt := testBaseTime.Add(time.Hour)
		require.NoError(t, s.ResolveViolation(ctx, 1, "0xauditor000000000000000000000000000000001", resolvedAt))

		unresolved, total, err := s.GetViolationsByFilter(ctx, ViolationFilter{
			UnresolvedOnly: true,
			Limit:          10,
		})
		require.NoError(t, err)
		assert.Equal(t, uint64(0), total)
		assert.Empty(t, unresolved)

		all, _, err := s.GetViolationsByFilter(ctx, ViolationFilter{Limit: 10})
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].Resolved)
		require.NotNil(t, all[0].Resolver)
	})
}

// =============================================================================
// Cursor
// =============================================================================

func testBlockCursor(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("missing cursor reads as zero", func(t *testing.T) {
		cursor, err := s.GetBlockCursor(ctx, "eth_sepolia")
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cursor)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		require.NoError(t, s.SetBlockCursor(ctx, "eth_sepolia", 123456))

		cursor, err := s.GetBlockCursor(ctx, "eth_sepolia")
		require.NoError(t, err)
		assert.Equal(t, uint64(123456), cursor)
	})
}

// =============================================================================
// Suite Runner
// =============================================================================

// RunStoreTests runs the shared store test suite against an implementation.
// initDB is called per top-level test and must return an isolated store.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("RecordCitizenRegistration", func(t *testing.T) {
		testRecordCitizenRegistration(t, initDB(t))
	})
	t.Run("UpdateCitizenStatus", func(t *testing.T) {
		testUpdateCitizenStatus(t, initDB(t))
	})
	t.Run("UpdateDelegation", func(t *testing.T) {
		testUpdateDelegation(t, initDB(t))
	})
	t.Run("RecordProposalCreated", func(t *testing.T) {
		testRecordProposalCreated(t, initDB(t))
	})
	t.Run("RecordVote", func(t *testing.T) {
		testRecordVote(t, initDB(t))
	})
	t.Run("UpdateProposalStatus", func(t *testing.T) {
		testUpdateProposalStatus(t, initDB(t))
	})
	t.Run("WithdrawalPipeline", func(t *testing.T) {
		testWithdrawalPipeline(t, initDB(t))
	})
	t.Run("RecordTreasuryTransaction", func(t *testing.T) {
		testRecordTreasuryTransaction(t, initDB(t))
	})
	t.Run("RecordParameterChange", func(t *testing.T) {
		testRecordParameterChange(t, initDB(t))
	})
	t.Run("ModulesAndRoles", func(t *testing.T) {
		testModulesAndRoles(t, initDB(t))
	})
	t.Run("AuditRecords", func(t *testing.T) {
		testAuditRecords(t, initDB(t))
	})
	t.Run("ComplianceViolations", func(t *testing.T) {
		testComplianceViolations(t, initDB(t))
	})
	t.Run("BlockCursor", func(t *testing.T) {
		testBlockCursor(t, initDB(t))
	})
}
