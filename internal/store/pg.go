package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero-valued settings fall back to defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// statsDelta collects bucket increments for a single event. Amount fields
// are decimal strings; empty means no change.
type statsDelta struct {
	proposalsCreated int
	votesCast        int
	// uniqueVotersDay and uniqueVotersMonth differ when a voter already
	// counted earlier in the month casts their first ballot of a new day
	uniqueVotersDay     int
	uniqueVotersMonth   int
	newCitizens         int
	treasuryDeposits    string
	treasuryWithdrawals string
}

// bumpStats upserts the daily and monthly aggregation buckets the event
// timestamp falls into, accumulating the delta into existing rows.
func bumpStats(tx *gorm.DB, at time.Time, delta statsDelta) error {
	deposits := delta.treasuryDeposits
	if deposits == "" {
		deposits = "0"
	}
	withdrawals := delta.treasuryWithdrawals
	if withdrawals == "" {
		withdrawals = "0"
	}

	day := (at.UTC().Unix() / 86400) * 86400
	daily := schema.DailyStats{
		Day:                 day,
		ProposalsCreated:    delta.proposalsCreated,
		VotesCast:           delta.votesCast,
		UniqueVoters:        delta.uniqueVotersDay,
		NewCitizens:         delta.newCitizens,
		TreasuryDeposits:    deposits,
		TreasuryWithdrawals: withdrawals,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "day"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"proposals_created":    gorm.Expr("daily_stats.proposals_created + excluded.proposals_created"),
			"votes_cast":           gorm.Expr("daily_stats.votes_cast + excluded.votes_cast"),
			"unique_voters":        gorm.Expr("daily_stats.unique_voters + excluded.unique_voters"),
			"new_citizens":         gorm.Expr("daily_stats.new_citizens + excluded.new_citizens"),
			"treasury_deposits":    gorm.Expr("daily_stats.treasury_deposits + excluded.treasury_deposits"),
			"treasury_withdrawals": gorm.Expr("daily_stats.treasury_withdrawals + excluded.treasury_withdrawals"),
			"updated_at":           gorm.Expr("now()"),
		}),
	}).Create(&daily).Error; err != nil {
		return fmt.Errorf("failed to bump daily stats: %w", err)
	}

	monthly := schema.MonthlyStats{
		Month:               at.UTC().Format("2006-01"),
		ProposalsCreated:    delta.proposalsCreated,
		VotesCast:           delta.votesCast,
		UniqueVoters:        delta.uniqueVotersMonth,
		NewCitizens:         delta.newCitizens,
		TreasuryDeposits:    deposits,
		TreasuryWithdrawals: withdrawals,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "month"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"proposals_created":    gorm.Expr("monthly_stats.proposals_created + excluded.proposals_created"),
			"votes_cast":           gorm.Expr("monthly_stats.votes_cast + excluded.votes_cast"),
			"unique_voters":        gorm.Expr("monthly_stats.unique_voters + excluded.unique_voters"),
			"new_citizens":         gorm.Expr("monthly_stats.new_citizens + excluded.new_citizens"),
			"treasury_deposits":    gorm.Expr("monthly_stats.treasury_deposits + excluded.treasury_deposits"),
			"treasury_withdrawals": gorm.Expr("monthly_stats.treasury_withdrawals + excluded.treasury_withdrawals"),
			"updated_at":           gorm.Expr("now()"),
		}),
	}).Create(&monthly).Error; err != nil {
		return fmt.Errorf("failed to bump monthly stats: %w", err)
	}

	return nil
}

// RecordCitizenRegistration creates a citizen record and bumps the
// new-citizen stats, once per wallet regardless of replays
func (s *pgStore) RecordCitizenRegistration(ctx context.Context, citizen schema.Citizen) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// ON CONFLICT DO NOTHING on wallet keeps replays from duplicating
		// the record or double-counting the stats
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&citizen).Error; err != nil {
			return fmt.Errorf("failed to create citizen: %w", err)
		}

		// ID == 0 means the wallet already existed, so this is a replay
		if citizen.ID == 0 {
			return nil
		}

		return bumpStats(tx, citizen.RegisteredAt, statsDelta{newCitizens: 1})
	})
}

// UpdateCitizenStatus transitions a citizen's registration state
func (s *pgStore) UpdateCitizenStatus(ctx context.Context, wallet string, status string, identityVerified bool) error {
	result := s.db.WithContext(ctx).Model(&schema.Citizen{}).
		Where("wallet = ?", wallet).
		Updates(map[string]interface{}{
			"status":            status,
			"identity_verified": identityVerified,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update citizen status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotCitizen
	}
	return nil
}

// UpdateCitizenPower sets a citizen's base voting power
func (s *pgStore) UpdateCitizenPower(ctx context.Context, wallet string, basePower string) error {
	result := s.db.WithContext(ctx).Model(&schema.Citizen{}).
		Where("wallet = ?", wallet).
		Update("base_power", basePower)
	if result.Error != nil {
		return fmt.Errorf("failed to update citizen power: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotCitizen
	}
	return nil
}

// UpdateDelegation applies a delegation change across the affected citizens
func (s *pgStore) UpdateDelegation(ctx context.Context, input UpdateDelegationInput) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.Citizen{}).
			Where("wallet = ?", input.Delegator).
			Update("delegated_to", input.Delegate)
		if result.Error != nil {
			return fmt.Errorf("failed to update delegator: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotCitizen
		}

		if input.PreviousDelegate != nil {
			if err := tx.Model(&schema.Citizen{}).
				Where("wallet = ?", *input.PreviousDelegate).
				Update("delegated_power_received", gorm.Expr("delegated_power_received - ?", input.Power)).Error; err != nil {
				return fmt.Errorf("failed to debit previous delegate: %w", err)
			}
		}

		if input.Delegate != nil {
			if err := tx.Model(&schema.Citizen{}).
				Where("wallet = ?", *input.Delegate).
				Update("delegated_power_received", gorm.Expr("delegated_power_received + ?", input.Power)).Error; err != nil {
				return fmt.Errorf("failed to credit delegate: %w", err)
			}
		}

		return nil
	})
}

// GetCitizenByWallet retrieves a citizen by wallet address
func (s *pgStore) GetCitizenByWallet(ctx context.Context, wallet string) (*schema.Citizen, error) {
	var citizen schema.Citizen
	err := s.db.WithContext(ctx).Where("wallet = ?", wallet).First(&citizen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get citizen: %w", err)
	}
	return &citizen, nil
}

// GetCitizensByFilter retrieves citizens matching the filter with total count
func (s *pgStore) GetCitizensByFilter(ctx context.Context, filter CitizenQueryFilter) ([]schema.Citizen, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Citizen{})

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count citizens: %w", err)
	}

	var citizens []schema.Citizen
	if err := query.Order("registered_at DESC").Order("id DESC").
		Limit(filter.Limit).Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&citizens).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get citizens: %w", err)
	}

	return citizens, uint64(total), nil //nolint:gosec,G115
}

// RecordProposalCreated creates a proposal record, bumps the proposer's
// counter and the stats, once per proposal id regardless of replays
func (s *pgStore) RecordProposalCreated(ctx context.Context, proposal schema.Proposal) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "proposal_id"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&proposal).Error; err != nil {
			return fmt.Errorf("failed to create proposal: %w", err)
		}

		// ID == 0 means the proposal already existed, so this is a replay
		if proposal.ID == 0 {
			return nil
		}

		if err := tx.Model(&schema.Citizen{}).
			Where("wallet = ?", proposal.Proposer).
			Update("total_proposals_created", gorm.Expr("total_proposals_created + 1")).Error; err != nil {
			return fmt.Errorf("failed to bump proposer counter: %w", err)
		}

		return bumpStats(tx, proposal.StartTime, statsDelta{proposalsCreated: 1})
	})
}

// UpdateProposalStatus transitions a proposal's lifecycle state
func (s *pgStore) UpdateProposalStatus(ctx context.Context, input UpdateProposalStatusInput) error {
	updates := map[string]interface{}{
		"status": input.Status,
	}
	if input.QueuedAt != nil {
		updates["queued_at"] = *input.QueuedAt
	}
	if input.ExecutedAt != nil {
		updates["executed_at"] = *input.ExecutedAt
	}
	if input.CanceledAt != nil {
		updates["canceled_at"] = *input.CanceledAt
	}

	result := s.db.WithContext(ctx).Model(&schema.Proposal{}).
		Where("proposal_id = ?", input.ProposalID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update proposal status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrProposalNotFound
	}
	return nil
}

// tallyColumns maps a vote support value to the proposal tally column it
// accumulates into
var tallyColumns = map[string]string{
	"for":     "for_votes",
	"against": "against_votes",
	"abstain": "abstain_votes",
}

// RecordVote creates a ballot, accumulates the proposal tallies, bumps
// the voter's counter and the stats, once per (proposal, voter)
func (s *pgStore) RecordVote(ctx context.Context, vote schema.Vote) error {
	column, ok := tallyColumns[vote.Support]
	if !ok {
		return domain.ErrInvalidSupport
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The (proposal_id, voter) unique index makes replays no-ops and
		// keeps the tallies from double-counting
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "proposal_id"}, {Name: "voter"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&vote).Error; err != nil {
			return fmt.Errorf("failed to create vote: %w", err)
		}

		// ID == 0 means the ballot already existed, so this is a replay
		if vote.ID == 0 {
			return nil
		}

		if err := tx.Model(&schema.Proposal{}).
			Where("proposal_id = ?", vote.ProposalID).
			Updates(map[string]interface{}{
				column:        gorm.Expr(column+" + ?", vote.Weight),
				"total_votes": gorm.Expr("total_votes + 1"),
			}).Error; err != nil {
			return fmt.Errorf("failed to accumulate proposal tally: %w", err)
		}

		if err := tx.Model(&schema.Citizen{}).
			Where("wallet = ?", vote.Voter).
			Update("total_votes_cast", gorm.Expr("total_votes_cast + 1")).Error; err != nil {
			return fmt.Errorf("failed to bump voter counter: %w", err)
		}

		delta := statsDelta{votesCast: 1}

		// The ballot above is already committed in this transaction, so a
		// count of 1 in the bucket window means this is the voter's first
		// ballot of the bucket and they count as a new unique voter
		dayStart := time.Unix((vote.CastAt.UTC().Unix()/86400)*86400, 0).UTC()
		var dayBallots int64
		if err := tx.Model(&schema.Vote{}).
			Where("voter = ? AND cast_at >= ? AND cast_at < ?",
				vote.Voter, dayStart, dayStart.Add(24*time.Hour)).
			Count(&dayBallots).Error; err != nil {
			return fmt.Errorf("failed to count daily ballots: %w", err)
		}
		if dayBallots == 1 {
			delta.uniqueVotersDay = 1
		}

		castAt := vote.CastAt.UTC()
		monthStart := time.Date(castAt.Year(), castAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		var monthBallots int64
		if err := tx.Model(&schema.Vote{}).
			Where("voter = ? AND cast_at >= ? AND cast_at < ?",
				vote.Voter, monthStart, monthStart.AddDate(0, 1, 0)).
			Count(&monthBallots).Error; err != nil {
			return fmt.Errorf("failed to count monthly ballots: %w", err)
		}
		if monthBallots == 1 {
			delta.uniqueVotersMonth = 1
		}

		return bumpStats(tx, vote.CastAt, delta)
	})
}

// GetProposalByProposalID retrieves a proposal by its on-chain id
func (s *pgStore) GetProposalByProposalID(ctx context.Context, proposalID uint64) (*schema.Proposal, error) {
	var proposal schema.Proposal
	err := s.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return &proposal, nil
}

// GetProposalsByFilter retrieves proposals matching the filter with total count
func (s *pgStore) GetProposalsByFilter(ctx context.Context, filter ProposalQueryFilter) ([]schema.Proposal, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Proposal{})

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if len(filter.Categories) > 0 {
		query = query.Where("category IN ?", filter.Categories)
	}
	if filter.Proposer != "" {
		query = query.Where("proposer = ?", filter.Proposer)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count proposals: %w", err)
	}

	var proposals []schema.Proposal
	if err := query.Order("proposal_id DESC").
		Limit(filter.Limit).Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&proposals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get proposals: %w", err)
	}

	return proposals, uint64(total), nil //nolint:gosec,G115
}

// GetVoteByProposalAndVoter retrieves a single ballot
func (s *pgStore) GetVoteByProposalAndVoter(ctx context.Context, proposalID uint64, voter string) (*schema.Vote, error) {
	var vote schema.Vote
	err := s.db.WithContext(ctx).
		Where("proposal_id = ? AND voter = ?", proposalID, voter).
		First(&vote).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get vote: %w", err)
	}
	return &vote, nil
}

// GetVotesByProposal retrieves ballots for a proposal with total count
func (s *pgStore) GetVotesByProposal(ctx context.Context, proposalID uint64, limit int, offset uint64) ([]schema.Vote, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Vote{}).Where("proposal_id = ?", proposalID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count votes: %w", err)
	}

	var votes []schema.Vote
	if err := query.Order("cast_at ASC").Order("id ASC").
		Limit(limit).Offset(int(offset)). //nolint:gosec,G115
		Find(&votes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get votes: %w", err)
	}

	return votes, uint64(total), nil //nolint:gosec,G115
}

// GetVotesByVoter retrieves a citizen's voting history with total count
func (s *pgStore) GetVotesByVoter(ctx context.Context, voter string, limit int, offset uint64) ([]schema.Vote, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Vote{}).Where("voter = ?", voter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count votes: %w", err)
	}

	var votes []schema.Vote
	if err := query.Order("cast_at DESC").Order("id DESC").
		Limit(limit).Offset(int(offset)). //nolint:gosec,G115
		Find(&votes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get votes: %w", err)
	}

	return votes, uint64(total), nil //nolint:gosec,G115
}

// RecordWithdrawalQueued creates a withdrawal record, once per withdrawal id
func (s *pgStore) RecordWithdrawalQueued(ctx context.Context, withdrawal schema.Withdrawal) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "withdrawal_id"}},
		DoNothing: true,
	}).Create(&withdrawal).Error; err != nil {
		return fmt.Errorf("failed to create withdrawal: %w", err)
	}
	return nil
}

// RecordWithdrawalApproval creates a per-signer approval and bumps the
// withdrawal's approval count, once per (withdrawal, approver)
func (s *pgStore) RecordWithdrawalApproval(ctx context.Context, approval schema.WithdrawalApproval) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "withdrawal_id"}, {Name: "approver"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&approval).Error; err != nil {
			return fmt.Errorf("failed to create withdrawal approval: %w", err)
		}

		// ID == 0 means this signer already approved, so this is a replay
		if approval.ID == 0 {
			return nil
		}

		if err := tx.Model(&schema.Withdrawal{}).
			Where("withdrawal_id = ?", approval.WithdrawalID).
			Update("approvals", gorm.Expr("approvals + 1")).Error; err != nil {
			return fmt.Errorf("failed to bump approval count: %w", err)
		}

		return nil
	})
}

// UpdateWithdrawalStatus transitions a withdrawal's pipeline state
func (s *pgStore) UpdateWithdrawalStatus(ctx context.Context, withdrawalID uint64, status string, executedAt *time.Time) error {
	updates := map[string]interface{}{
		"status": status,
	}
	if executedAt != nil {
		updates["executed_at"] = *executedAt
	}

	result := s.db.WithContext(ctx).Model(&schema.Withdrawal{}).
		Where("withdrawal_id = ?", withdrawalID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update withdrawal status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrWithdrawalNotFound
	}
	return nil
}

// GetWithdrawalByWithdrawalID retrieves a withdrawal by its on-chain id
func (s *pgStore) GetWithdrawalByWithdrawalID(ctx context.Context, withdrawalID uint64) (*schema.Withdrawal, error) {
	var withdrawal schema.Withdrawal
	err := s.db.WithContext(ctx).Where("withdrawal_id = ?", withdrawalID).First(&withdrawal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get withdrawal: %w", err)
	}
	return &withdrawal, nil
}

// GetWithdrawalApprovals retrieves the per-signer approvals for a withdrawal
func (s *pgStore) GetWithdrawalApprovals(ctx context.Context, withdrawalID uint64) ([]schema.WithdrawalApproval, error) {
	var approvals []schema.WithdrawalApproval
	err := s.db.WithContext(ctx).
		Where("withdrawal_id = ?", withdrawalID).
		Order("approved_at ASC").
		Find(&approvals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal approvals: %w", err)
	}
	return approvals, nil
}

// GetWithdrawalsByFilter retrieves withdrawals by status with total count
func (s *pgStore) GetWithdrawalsByFilter(ctx context.Context, statuses []string, limit int, offset uint64) ([]schema.Withdrawal, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Withdrawal{})

	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count withdrawals: %w", err)
	}

	var withdrawals []schema.Withdrawal
	if err := query.Order("withdrawal_id DESC").
		Limit(limit).Offset(int(offset)). //nolint:gosec,G115
		Find(&withdrawals).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get withdrawals: %w", err)
	}

	return withdrawals, uint64(total), nil //nolint:gosec,G115
}

// RecordTreasuryTransaction creates a fund movement record and bumps the
// treasury stats, once per (tx_hash, log_index) regardless of replays
func (s *pgStore) RecordTreasuryTransaction(ctx context.Context, transaction schema.TreasuryTransaction) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&transaction).Error; err != nil {
			return fmt.Errorf("failed to create treasury transaction: %w", err)
		}

		// ID == 0 means the movement already existed, so this is a replay
		if transaction.ID == 0 {
			return nil
		}

		delta := statsDelta{}
		switch transaction.Type {
		case "deposit":
			delta.treasuryDeposits = transaction.Amount
		case "withdrawal":
			delta.treasuryWithdrawals = transaction.Amount
		}

		return bumpStats(tx, transaction.OccurredAt, delta)
	})
}

// GetTreasuryTransactions retrieves fund movements matching the filter with total count
func (s *pgStore) GetTreasuryTransactions(ctx context.Context, filter TreasuryTransactionFilter) ([]schema.TreasuryTransaction, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.TreasuryTransaction{})

	if len(filter.Types) > 0 {
		query = query.Where("type IN ?", filter.Types)
	}
	if filter.ProposalID != 0 {
		query = query.Where("proposal_id = ?", filter.ProposalID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count treasury transactions: %w", err)
	}

	var transactions []schema.TreasuryTransaction
	if err := query.Order("occurred_at DESC").Order("id DESC").
		Limit(filter.Limit).Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get treasury transactions: %w", err)
	}

	return transactions, uint64(total), nil //nolint:gosec,G115
}

// GetTreasuryBalances derives the per-token treasury balances from the movement log
func (s *pgStore) GetTreasuryBalances(ctx context.Context) ([]TreasuryBalance, error) {
	var balances []TreasuryBalance
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			token,
			SUM(CASE WHEN type = 'deposit' THEN amount ELSE -amount END)::numeric(78,0) AS balance
		FROM treasury_transactions
		GROUP BY token
		ORDER BY token ASC
	`).Scan(&balances).Error
	if err != nil {
		return nil, fmt.Errorf("failed to derive treasury balances: %w", err)
	}
	return balances, nil
}

// UpsertBudget creates or updates a budget allocation
func (s *pgStore) GetBudgetByBudgetID(ctx context.Context, budgetID uint64) (*schema.Budget, error) {
	var budget schema.Budget
	err := s.db.WithContext(ctx).Where("budget_id = ?", budgetID).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (s *pgStore) UpsertBudget(ctx context.Context, budget schema.Budget) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "budget_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"category", "amount", "spent", "status", "approvers", "approved_at", "updated_at",
		}),
	}).Create(&budget).Error; err != nil {
		return fmt.Errorf("failed to upsert budget: %w", err)
	}
	return nil
}

// GetBudgets retrieves all budget allocations
func (s *pgStore) GetBudgets(ctx context.Context) ([]schema.Budget, error) {
	var budgets []schema.Budget
	if err := s.db.WithContext(ctx).Order("budget_id ASC").Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}
	return budgets, nil
}

// RecordParameterChange appends a parameter change and rolls the current
// value forward, once per (tx_hash, log_index)
func (s *pgStore) RecordParameterChange(ctx context.Context, change schema.ParameterChange) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&change).Error; err != nil {
			return fmt.Errorf("failed to create parameter change: %w", err)
		}

		// ID == 0 means the change already existed, so this is a replay
		if change.ID == 0 {
			return nil
		}

		parameter := schema.GovernanceParameter{
			Name:      change.Name,
			Value:     change.NewValue,
			UpdatedBy: change.ChangedBy,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"value":      change.NewValue,
				"updated_by": change.ChangedBy,
				"updated_at": gorm.Expr("now()"),
			}),
		}).Create(&parameter).Error; err != nil {
			return fmt.Errorf("failed to upsert governance parameter: %w", err)
		}

		return nil
	})
}

// GetGovernanceParameters retrieves the current value of every parameter
func (s *pgStore) GetGovernanceParameters(ctx context.Context) ([]schema.GovernanceParameter, error) {
	var parameters []schema.GovernanceParameter
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&parameters).Error; err != nil {
		return nil, fmt.Errorf("failed to get governance parameters: %w", err)
	}
	return parameters, nil
}

// GetParameterChanges retrieves the change history for a parameter
func (s *pgStore) GetParameterChanges(ctx context.Context, name string, limit int, offset uint64) ([]schema.ParameterChange, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.ParameterChange{}).Where("name = ?", name)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count parameter changes: %w", err)
	}

	var changes []schema.ParameterChange
	if err := query.Order("changed_at DESC").Order("id DESC").
		Limit(limit).Offset(int(offset)). //nolint:gosec,G115
		Find(&changes).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get parameter changes: %w", err)
	}

	return changes, uint64(total), nil //nolint:gosec,G115
}

// UpsertModule creates or updates a module registration
func (s *pgStore) UpsertModule(ctx context.Context, module schema.Module) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"address", "active", "registered_by", "registered_at", "updated_at",
		}),
	}).Create(&module).Error; err != nil {
		return fmt.Errorf("failed to upsert module: %w", err)
	}
	return nil
}

// GetModules retrieves module registrations, optionally active only
func (s *pgStore) GetModules(ctx context.Context, activeOnly bool) ([]schema.Module, error) {
	query := s.db.WithContext(ctx).Model(&schema.Module{})
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var modules []schema.Module
	if err := query.Order("name ASC").Find(&modules).Error; err != nil {
		return nil, fmt.Errorf("failed to get modules: %w", err)
	}
	return modules, nil
}

// UpsertRoleAssignment creates or updates a role grant
func (s *pgStore) UpsertRoleAssignment(ctx context.Context, assignment schema.RoleAssignment) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "wallet"}, {Name: "role"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"active", "granted_by", "granted_at", "updated_at",
		}),
	}).Create(&assignment).Error; err != nil {
		return fmt.Errorf("failed to upsert role assignment: %w", err)
	}
	return nil
}

// GetRolesByWallet retrieves the active roles held by a wallet
func (s *pgStore) GetRolesByWallet(ctx context.Context, wallet string) ([]schema.RoleAssignment, error) {
	var assignments []schema.RoleAssignment
	err := s.db.WithContext(ctx).
		Where("wallet = ? AND active = ?", wallet, true).
		Order("role ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	return assignments, nil
}

// CreateAuditRecord appends an audit record, once per (tx_hash, log_index)
func (s *pgStore) CreateAuditRecord(ctx context.Context, record schema.AuditRecord) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}, {Name: "log_index"}},
		DoNothing: true,
	}).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create audit record: %w", err)
	}
	return nil
}

// GetAuditRecords retrieves audit records matching the filter with total count
func (s *pgStore) GetAuditRecords(ctx context.Context, filter AuditRecordFilter) ([]schema.AuditRecord, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.AuditRecord{})

	if filter.Subject != "" {
		query = query.Where("subject = ?", filter.Subject)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.From != nil {
		query = query.Where("occurred_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("occurred_at <= ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count audit records: %w", err)
	}

	var records []schema.AuditRecord
	if err := query.Order("record_id DESC").
		Limit(filter.Limit).Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&records).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get audit records: %w", err)
	}

	return records, uint64(total), nil //nolint:gosec,G115
}

// UpsertComplianceRule creates or updates a compliance rule
func (s *pgStore) UpsertComplianceRule(ctx context.Context, rule schema.ComplianceRule) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "rule_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"rule_type", "description", "active", "updated_at",
		}),
	}).Create(&rule).Error; err != nil {
		return fmt.Errorf("failed to upsert compliance rule: %w", err)
	}
	return nil
}

// GetComplianceRules retrieves all compliance rules
func (s *pgStore) GetComplianceRules(ctx context.Context) ([]schema.ComplianceRule, error) {
	var rules []schema.ComplianceRule
	if err := s.db.WithContext(ctx).Order("rule_id ASC").Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to get compliance rules: %w", err)
	}
	return rules, nil
}

// RecordViolation creates a violation and bumps the rule's counter,
// once per violation id regardless of replays
func (s *pgStore) RecordViolation(ctx context.Context, violation schema.ComplianceViolation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "violation_id"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&violation).Error; err != nil {
			return fmt.Errorf("failed to create violation: %w", err)
		}

		// ID == 0 means the violation already existed, so this is a replay
		if violation.ID == 0 {
			return nil
		}

		if err := tx.Model(&schema.ComplianceRule{}).
			Where("rule_id = ?", violation.RuleID).
			Update("violation_count", gorm.Expr("violation_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to bump rule violation count: %w", err)
		}

		return nil
	})
}

// ResolveViolation marks a violation resolved
func (s *pgStore) ResolveViolation(ctx context.Context, violationID uint64, resolver string, resolvedAt time.Time) error {
	result := s.db.WithContext(ctx).Model(&schema.ComplianceViolation{}).
		Where("violation_id = ?", violationID).
		Updates(map[string]interface{}{
			"resolved":    true,
			"resolver":    resolver,
			"resolved_at": resolvedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to resolve violation: %w", result.Error)
	}
	return nil
}

// GetViolationsByFilter retrieves violations matching the filter with total count
func (s *pgStore) GetViolationsByFilter(ctx context.Context, filter ViolationFilter) ([]schema.ComplianceViolation, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.ComplianceViolation{})

	if filter.RuleID != 0 {
		query = query.Where("rule_id = ?", filter.RuleID)
	}
	if filter.Violator != "" {
		query = query.Where("violator = ?", filter.Violator)
	}
	if filter.UnresolvedOnly {
		query = query.Where("resolved = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count violations: %w", err)
	}

	var violations []schema.ComplianceViolation
	if err := query.Order("violation_id DESC").
		Limit(filter.Limit).Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&violations).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get violations: %w", err)
	}

	return violations, uint64(total), nil //nolint:gosec,G115
}

// GetDailyStats retrieves daily aggregation buckets in [fromDay, toDay]
func (s *pgStore) GetDailyStats(ctx context.Context, fromDay, toDay int64) ([]schema.DailyStats, error) {
	var stats []schema.DailyStats
	err := s.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", fromDay, toDay).
		Order("day ASC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	return stats, nil
}

// GetMonthlyStats retrieves monthly aggregation buckets in [fromMonth, toMonth]
func (s *pgStore) GetMonthlyStats(ctx context.Context, fromMonth, toMonth string) ([]schema.MonthlyStats, error) {
	var stats []schema.MonthlyStats
	err := s.db.WithContext(ctx).
		Where("month >= ? AND month <= ?", fromMonth, toMonth).
		Order("month ASC").
		Find(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly stats: %w", err)
	}
	return stats, nil
}

// GetBlockCursor retrieves the last processed block number for a chain
func (s *pgStore) GetBlockCursor(ctx context.Context, chain string) (uint64, error) {
	key := fmt.Sprintf("block_cursor:%s", chain)

	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get block cursor: %w", err)
	}

	blockNumber, err := strconv.ParseUint(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse block cursor: %w", err)
	}

	return blockNumber, nil
}

// SetBlockCursor stores the last processed block number for a chain
func (s *pgStore) SetBlockCursor(ctx context.Context, chain string, blockNumber uint64) error {
	key := fmt.Sprintf("block_cursor:%s", chain)
	value := strconv.FormatUint(blockNumber, 10)

	kv := schema.KeyValueStore{
		Key:   key,
		Value: value,
	}

	err := s.db.WithContext(ctx).Save(&kv).Error
	if err != nil {
		return fmt.Errorf("failed to set block cursor: %w", err)
	}

	return nil
}

// TruncateReadModel clears every projection-owned table for a full
// rebuild. The block cursor is reset too so replay starts from genesis.
func (s *pgStore) TruncateReadModel(ctx context.Context) error {
	tables := []string{
		schema.Vote{}.TableName(),
		schema.Proposal{}.TableName(),
		schema.Citizen{}.TableName(),
		schema.WithdrawalApproval{}.TableName(),
		schema.Withdrawal{}.TableName(),
		schema.TreasuryTransaction{}.TableName(),
		schema.Budget{}.TableName(),
		schema.GovernanceParameter{}.TableName(),
		schema.ParameterChange{}.TableName(),
		schema.Module{}.TableName(),
		schema.RoleAssignment{}.TableName(),
		schema.AuditRecord{}.TableName(),
		schema.ComplianceRule{}.TableName(),
		schema.ComplianceViolation{}.TableName(),
		schema.DailyStats{}.TableName(),
		schema.MonthlyStats{}.TableName(),
		schema.KeyValueStore{}.TableName(),
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range tables {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				return fmt.Errorf("failed to clear table %s: %w", table, err)
			}
		}
		return nil
	})
}
