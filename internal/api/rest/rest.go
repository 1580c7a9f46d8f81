package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/nexus-dao/nexus-governance/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Voting (open, the pipeline enforces eligibility)
		v1.POST("/votes", handler.CastVote)

		// Proposal endpoints (public read access)
		v1.GET("/proposals", handler.ListProposals)
		v1.GET("/proposals/:id", handler.GetProposal)
		v1.GET("/proposals/:id/votes", handler.ListProposalVotes)
		v1.POST("/proposals", handler.CreateProposal)
		v1.POST("/proposals/:id/cancel", handler.CancelProposal)
		v1.POST("/proposals/:id/finalize", handler.FinalizeProposal)
		v1.POST("/proposals/:id/queue", handler.QueueProposal)
		v1.POST("/proposals/:id/execute", handler.ExecuteProposal)

		// Citizen registry endpoints
		v1.GET("/citizens", handler.ListCitizens)
		v1.GET("/citizens/:wallet", handler.GetCitizen)
		v1.GET("/citizens/:wallet/roles", handler.ListCitizenRoles)
		v1.GET("/citizens/:wallet/votes", handler.ListCitizenVotes)
		v1.POST("/citizens", handler.RegisterCitizen)

		// Citizenship approval is an administrator action (requires authentication)
		v1.POST("/citizens/:wallet/approve", middleware.Auth(authCfg), handler.ApproveCitizenship)
		v1.POST("/citizens/:wallet/revoke", middleware.Auth(authCfg), handler.RevokeCitizenship)

		// Delegation endpoints
		v1.POST("/delegations", handler.Delegate)
		v1.DELETE("/delegations", handler.RemoveDelegation)

		// Treasury endpoints
		v1.GET("/treasury/balance", handler.GetTreasuryBalances)
		v1.GET("/treasury/transactions", handler.ListTreasuryTransactions)
		v1.POST("/treasury/deposits", handler.Deposit)

		// Withdrawal endpoints (approvals are signer actions in the ledger)
		v1.GET("/withdrawals", handler.ListWithdrawals)
		v1.GET("/withdrawals/:id", handler.GetWithdrawal)
		v1.POST("/withdrawals", middleware.Auth(authCfg), handler.QueueWithdrawal)
		v1.POST("/withdrawals/:id/approve", middleware.Auth(authCfg), handler.ApproveWithdrawal)

		// Budget endpoints
		v1.GET("/budgets", handler.ListBudgets)
		v1.POST("/budgets", middleware.Auth(authCfg), handler.CreateBudget)
		v1.POST("/budgets/:id/approve", middleware.Auth(authCfg), handler.ApproveBudget)

		// Governance parameter endpoints
		v1.GET("/params", handler.ListParameters)
		v1.GET("/params/:name/history", handler.ListParameterChanges)
		v1.PUT("/params", middleware.Auth(authCfg), handler.UpdateParams)

		// Module registry endpoints (requires authentication for writes)
		v1.GET("/modules", handler.ListModules)
		v1.POST("/modules", middleware.Auth(authCfg), handler.RegisterModule)
		v1.DELETE("/modules/:id", middleware.Auth(authCfg), handler.RemoveModule)

		// Role endpoints (requires authentication)
		v1.POST("/roles/grant", middleware.Auth(authCfg), handler.GrantRole)
		v1.POST("/roles/revoke", middleware.Auth(authCfg), handler.RevokeRole)

		// Emergency pause (requires authentication, the ledger checks the guardian role)
		v1.POST("/pause", middleware.Auth(authCfg), handler.Pause)
		v1.POST("/unpause", middleware.Auth(authCfg), handler.Unpause)

		// Audit and compliance endpoints (public read access)
		v1.GET("/audit/records", handler.ListAuditRecords)
		v1.GET("/compliance/rules", handler.ListComplianceRules)
		v1.GET("/compliance/violations", handler.ListViolations)

		// Stats endpoints (public read access)
		v1.GET("/stats/daily", handler.GetDailyStats)
		v1.GET("/stats/monthly", handler.GetMonthlyStats)
		v1.GET("/stats/health", handler.GetGovernanceHealth)
	}
}
