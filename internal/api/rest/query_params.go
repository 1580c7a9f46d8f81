package rest

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexus-dao/nexus-governance/internal/domain"
)

const MAX_PAGE_SIZE = 100

// PaginationQueryParams holds the shared limit/offset pair
type PaginationQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

func (p *PaginationQueryParams) cap() {
	if p.Limit > MAX_PAGE_SIZE {
		p.Limit = MAX_PAGE_SIZE
	}
	if p.Limit <= 0 {
		p.Limit = 20
	}
}

// ListProposalsQueryParams holds query parameters for GET /proposals
type ListProposalsQueryParams struct {
	Statuses   []string `form:"status"`
	Categories []string `form:"category"`
	Proposer   string   `form:"proposer"`

	PaginationQueryParams
}

// Validate checks filter values against the governance vocabulary
func (p *ListProposalsQueryParams) Validate() error {
	for _, s := range p.Statuses {
		if !domain.ProposalStatus(s).Valid() {
			return fmt.Errorf("invalid proposal status: %s", s)
		}
	}
	for _, c := range p.Categories {
		if !domain.ProposalCategory(c).Valid() {
			return fmt.Errorf("invalid proposal category: %s", c)
		}
	}
	if p.Proposer != "" && !domain.NewAddress(p.Proposer).Valid() {
		return fmt.Errorf("invalid proposer address: %s", p.Proposer)
	}
	return nil
}

// ParseListProposalsQuery parses query parameters for GET /proposals
func ParseListProposalsQuery(c *gin.Context) (*ListProposalsQueryParams, error) {
	var params ListProposalsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params.cap()
	return &params, nil
}

// ListCitizensQueryParams holds query parameters for GET /citizens
type ListCitizensQueryParams struct {
	Statuses []string `form:"status"`

	PaginationQueryParams
}

// ParseListCitizensQuery parses query parameters for GET /citizens
func ParseListCitizensQuery(c *gin.Context) (*ListCitizensQueryParams, error) {
	var params ListCitizensQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	for _, s := range params.Statuses {
		if !domain.CitizenStatus(s).Valid() {
			return nil, fmt.Errorf("invalid citizen status: %s", s)
		}
	}
	params.cap()
	return &params, nil
}

// ListTreasuryTransactionsQueryParams holds query parameters for GET /treasury/transactions
type ListTreasuryTransactionsQueryParams struct {
	Types      []string `form:"type"`
	ProposalID uint64   `form:"proposal_id"`

	PaginationQueryParams
}

// ParseListTreasuryTransactionsQuery parses query parameters for GET /treasury/transactions
func ParseListTreasuryTransactionsQuery(c *gin.Context) (*ListTreasuryTransactionsQueryParams, error) {
	var params ListTreasuryTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.cap()
	return &params, nil
}

// ListWithdrawalsQueryParams holds query parameters for GET /withdrawals
type ListWithdrawalsQueryParams struct {
	Statuses []string `form:"status"`

	PaginationQueryParams
}

// ParseListWithdrawalsQuery parses query parameters for GET /withdrawals
func ParseListWithdrawalsQuery(c *gin.Context) (*ListWithdrawalsQueryParams, error) {
	var params ListWithdrawalsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.cap()
	return &params, nil
}

// ListAuditRecordsQueryParams holds query parameters for GET /audit/records
type ListAuditRecordsQueryParams struct {
	Subject  string `form:"subject"`
	Category string `form:"category"`
	// From and To bound created_at, RFC 3339
	From string `form:"from"`
	To   string `form:"to"`

	PaginationQueryParams
}

// ParseListAuditRecordsQuery parses query parameters for GET /audit/records
func ParseListAuditRecordsQuery(c *gin.Context) (*ListAuditRecordsQueryParams, *time.Time, *time.Time, error) {
	var params ListAuditRecordsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, nil, nil, err
	}
	params.cap()

	var from, to *time.Time
	if params.From != "" {
		t, err := time.Parse(time.RFC3339, params.From)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid from timestamp: %s", params.From)
		}
		from = &t
	}
	if params.To != "" {
		t, err := time.Parse(time.RFC3339, params.To)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("invalid to timestamp: %s", params.To)
		}
		to = &t
	}
	return &params, from, to, nil
}

// ListViolationsQueryParams holds query parameters for GET /compliance/violations
type ListViolationsQueryParams struct {
	RuleID         uint64 `form:"rule_id"`
	Violator       string `form:"violator"`
	UnresolvedOnly bool   `form:"unresolved_only"`

	PaginationQueryParams
}

// ParseListViolationsQuery parses query parameters for GET /compliance/violations
func ParseListViolationsQuery(c *gin.Context) (*ListViolationsQueryParams, error) {
	var params ListViolationsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	params.cap()
	return &params, nil
}
