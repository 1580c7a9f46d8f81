package dto

import (
	"time"

	"github.com/nexus-dao/nexus-governance/internal/governance"
	"github.com/nexus-dao/nexus-governance/internal/store/schema"
)

// ProposalResponse represents a proposal in API responses
type ProposalResponse struct {
	ProposalID   uint64     `json:"proposal_id"`
	Proposer     string     `json:"proposer"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Status       string     `json:"status"`
	ForVotes     string     `json:"for_votes"`
	AgainstVotes string     `json:"against_votes"`
	AbstainVotes string     `json:"abstain_votes"`
	TotalVotes   int        `json:"total_votes"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	QueuedAt     *time.Time `json:"queued_at,omitempty"`
	ExecutedAt   *time.Time `json:"executed_at,omitempty"`
	CanceledAt   *time.Time `json:"canceled_at,omitempty"`
	TxHash       string     `json:"tx_hash,omitempty"`
	BlockNumber  uint64     `json:"block_number,omitempty"`
}

// MapProposalToDTO maps a read-model proposal row to its API representation
func MapProposalToDTO(p schema.Proposal) *ProposalResponse {
	return &ProposalResponse{
		ProposalID:   p.ProposalID,
		Proposer:     p.Proposer,
		Description:  p.Description,
		Category:     p.Category,
		Status:       p.Status,
		ForVotes:     p.ForVotes,
		AgainstVotes: p.AgainstVotes,
		AbstainVotes: p.AbstainVotes,
		TotalVotes:   p.TotalVotes,
		StartTime:    p.StartTime,
		EndTime:      p.EndTime,
		QueuedAt:     p.QueuedAt,
		ExecutedAt:   p.ExecutedAt,
		CanceledAt:   p.CanceledAt,
		TxHash:       p.TxHash,
		BlockNumber:  p.BlockNumber,
	}
}

// MapProposalViewToDTO maps a ledger proposal snapshot to its API
// representation. Write endpoints answer from the ledger, so the caller
// always reads their own write back.
func MapProposalViewToDTO(p *governance.ProposalView) *ProposalResponse {
	resp := &ProposalResponse{
		ProposalID:   p.ID,
		Proposer:     p.Proposer.String(),
		Description:  p.Description,
		Category:     string(p.Category),
		Status:       string(p.State),
		ForVotes:     p.ForVotes.String(),
		AgainstVotes: p.AgainstVotes.String(),
		AbstainVotes: p.AbstainVotes.String(),
		StartTime:    time.Unix(p.StartTime, 0).UTC(),
		EndTime:      time.Unix(p.EndTime, 0).UTC(),
	}
	if p.QueuedAt != nil {
		t := time.Unix(*p.QueuedAt, 0).UTC()
		resp.QueuedAt = &t
	}
	if p.ExecutedAt != nil {
		t := time.Unix(*p.ExecutedAt, 0).UTC()
		resp.ExecutedAt = &t
	}
	return resp
}

// VoteResponse represents a cast ballot in API responses
type VoteResponse struct {
	ProposalID  uint64    `json:"proposal_id"`
	Voter       string    `json:"voter"`
	Support     string    `json:"support"`
	Weight      string    `json:"weight"`
	CastAt      time.Time `json:"cast_at"`
	TxHash      string    `json:"tx_hash"`
	BlockNumber uint64    `json:"block_number"`
}

// MapVoteToDTO maps a read-model vote row to its API representation
func MapVoteToDTO(v schema.Vote) *VoteResponse {
	return &VoteResponse{
		ProposalID:  v.ProposalID,
		Voter:       v.Voter,
		Support:     v.Support,
		Weight:      v.Weight,
		CastAt:      v.CastAt,
		TxHash:      v.TxHash,
		BlockNumber: v.BlockNumber,
	}
}

// CitizenResponse represents a citizen in API responses
type CitizenResponse struct {
	Wallet                 string    `json:"wallet"`
	Status                 string    `json:"status"`
	IdentityVerified       bool      `json:"identity_verified"`
	BasePower              string    `json:"base_power"`
	DelegatedTo            *string   `json:"delegated_to,omitempty"`
	DelegatedPowerReceived string    `json:"delegated_power_received"`
	TotalProposalsCreated  int       `json:"total_proposals_created"`
	TotalVotesCast         int       `json:"total_votes_cast"`
	RegisteredAt           time.Time `json:"registered_at"`
}

// MapCitizenToDTO maps a read-model citizen row to its API representation
func MapCitizenToDTO(c schema.Citizen) *CitizenResponse {
	return &CitizenResponse{
		Wallet:                 c.Wallet,
		Status:                 c.Status,
		IdentityVerified:       c.IdentityVerified,
		BasePower:              c.BasePower,
		DelegatedTo:            c.DelegatedTo,
		DelegatedPowerReceived: c.DelegatedPowerReceived,
		TotalProposalsCreated:  c.TotalProposalsCreated,
		TotalVotesCast:         c.TotalVotesCast,
		RegisteredAt:           c.RegisteredAt,
	}
}

// MapLedgerCitizenToDTO maps a ledger citizen record to its API representation
func MapLedgerCitizenToDTO(c *governance.Citizen) *CitizenResponse {
	resp := &CitizenResponse{
		Wallet:                 c.Wallet.String(),
		Status:                 string(c.Status),
		IdentityVerified:       c.IdentityVerified,
		BasePower:              c.BasePower.String(),
		DelegatedPowerReceived: c.DelegatedPowerReceived.String(),
		TotalProposalsCreated:  int(c.TotalProposalsCreated), //nolint:gosec,G115
		TotalVotesCast:         int(c.TotalVotesCast),        //nolint:gosec,G115
		RegisteredAt:           c.RegisteredAt,
	}
	if c.DelegatedTo != nil {
		delegate := c.DelegatedTo.String()
		resp.DelegatedTo = &delegate
	}
	return resp
}
