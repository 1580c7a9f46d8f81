package rest_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-dao/nexus-governance/internal/api/middleware"
	"github.com/nexus-dao/nexus-governance/internal/api/rest"
	"github.com/nexus-dao/nexus-governance/internal/api/shared/dto"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
	"github.com/nexus-dao/nexus-governance/internal/mocks"
)

const (
	testAPIKey = "governance-test-key"

	testVoter    = "0x1111111111111111111111111111111111111111"
	testProposer = "0x2222222222222222222222222222222222222222"
	testAdmin    = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa01"
	testToken    = "0x5555555555555555555555555555555555555555"
)

type handlerEnv struct {
	ctrl     *gomock.Controller
	executor *mocks.MockAPIExecutor
	router   *gin.Engine
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	t.Helper()
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	executor := mocks.NewMockAPIExecutor(ctrl)
	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(executor), middleware.AuthConfig{
		APIKeys: []string{testAPIKey},
	})
	return &handlerEnv{ctrl: ctrl, executor: executor, router: router}
}

// request performs an unauthenticated request against the test router
func (e *handlerEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, method, path, body, "")
}

// authed performs a request carrying the configured API key
func (e *handlerEnv) authed(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return e.do(t, method, path, body, "APIKey "+testAPIKey)
}

func (e *handlerEnv) do(t *testing.T, method, path string, body interface{}, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthCheck(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCastVote(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.CastVoteRequest{ProposalID: 7, Voter: testVoter, Support: "for"}

	env.executor.EXPECT().
		CastVote(gomock.Any(), body).
		Return(&dto.CastVoteResponse{
			ProposalID: 7,
			Voter:      testVoter,
			Support:    "for",
			Weight:     "400",
			WorkflowID: "cast-vote-7",
		}, nil)

	w := env.request(t, http.MethodPost, "/api/v1/votes", body)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.CastVoteResponse](t, w)
	assert.Equal(t, uint64(7), resp.ProposalID)
	assert.Equal(t, "400", resp.Weight)
}

func TestCastVote_MissingField(t *testing.T) {
	env := newHandlerEnv(t)

	// support is required; the executor must never be reached
	w := env.request(t, http.MethodPost, "/api/v1/votes", map[string]interface{}{
		"proposal_id": 7,
		"voter":       testVoter,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCastVote_DomainErrors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate vote conflicts", domain.ErrAlreadyVoted, http.StatusConflict},
		{"invalid support is a validation error", domain.ErrInvalidSupport, http.StatusUnprocessableEntity},
		{"missing proposal is not found", domain.ErrProposalNotFound, http.StatusNotFound},
		{"ineligible voter is forbidden", domain.ErrNotEligible, http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newHandlerEnv(t)
			env.executor.EXPECT().CastVote(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			w := env.request(t, http.MethodPost, "/api/v1/votes", dto.CastVoteRequest{
				ProposalID: 7, Voter: testVoter, Support: "for",
			})

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestCreateProposal(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.CreateProposalRequest{Proposer: testProposer, Description: "Fund grants", Category: "treasury"}

	env.executor.EXPECT().
		CreateProposal(gomock.Any(), body).
		Return(&dto.CreateProposalResponse{ProposalID: 3}, nil)

	w := env.request(t, http.MethodPost, "/api/v1/proposals", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[dto.CreateProposalResponse](t, w)
	assert.Equal(t, uint64(3), resp.ProposalID)
}

func TestCreateProposal_BelowThreshold(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).Return(nil, domain.ErrBelowProposalThreshold)

	w := env.request(t, http.MethodPost, "/api/v1/proposals", dto.CreateProposalRequest{
		Proposer: testProposer, Description: "Fund grants", Category: "treasury",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetProposal(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		GetProposal(gomock.Any(), uint64(7)).
		Return(&dto.ProposalResponse{
			ProposalID: 7,
			Proposer:   testProposer,
			Category:   "general",
			Status:     "active",
			ForVotes:   "400",
		}, nil)

	w := env.request(t, http.MethodGet, "/api/v1/proposals/7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.ProposalResponse](t, w)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "400", resp.ForVotes)
}

func TestGetProposal_NotFound(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().GetProposal(gomock.Any(), uint64(42)).Return(nil, nil)

	w := env.request(t, http.MethodGet, "/api/v1/proposals/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProposal_InvalidID(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/proposals/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProposal_ExecutorFailure(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().GetProposal(gomock.Any(), uint64(7)).Return(nil, assert.AnError)

	w := env.request(t, http.MethodGet, "/api/v1/proposals/7", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestListProposals(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		ListProposals(gomock.Any(), []string{"active"}, []string{"treasury"}, "", 100, uint64(40)).
		Return(&dto.ProposalListResponse{
			Proposals:  []dto.ProposalResponse{{ProposalID: 1}},
			Pagination: dto.Pagination{Total: 1},
		}, nil)

	// limit above the page cap is clamped to 100
	w := env.request(t, http.MethodGet, "/api/v1/proposals?status=active&category=treasury&limit=500&offset=40", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.ProposalListResponse](t, w)
	assert.Len(t, resp.Proposals, 1)
}

func TestListProposals_InvalidStatus(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/proposals?status=bogus", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestQueueProposal(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		QueueProposalExecution(gomock.Any(), uint64(7)).
		Return(&dto.WorkflowTriggerResponse{WorkflowID: "execute-proposal-7", RunID: "run-1"}, nil)

	w := env.request(t, http.MethodPost, "/api/v1/proposals/7/queue", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
	resp := decodeBody[dto.WorkflowTriggerResponse](t, w)
	assert.Equal(t, "execute-proposal-7", resp.WorkflowID)
}

func TestQueueProposal_NotSucceeded(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().QueueProposalExecution(gomock.Any(), uint64(7)).Return(nil, domain.ErrNotSucceeded)

	w := env.request(t, http.MethodPost, "/api/v1/proposals/7/queue", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestExecuteProposal(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		ExecuteProposal(gomock.Any(), uint64(7), testAdmin).
		Return(&dto.ProposalResponse{ProposalID: 7, Status: "executed"}, nil)

	w := env.request(t, http.MethodPost, "/api/v1/proposals/7/execute", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.ProposalResponse](t, w)
	assert.Equal(t, "executed", resp.Status)
}

func TestExecuteProposal_TimelockNotElapsed(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().ExecuteProposal(gomock.Any(), uint64(7), testAdmin).Return(nil, domain.ErrTimelockNotElapsed)

	w := env.request(t, http.MethodPost, "/api/v1/proposals/7/execute", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFinalizeProposal(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		FinalizeProposal(gomock.Any(), uint64(7)).
		Return(&dto.FinalizeProposalResponse{ProposalID: 7, Status: "succeeded"}, nil)

	w := env.request(t, http.MethodPost, "/api/v1/proposals/7/finalize", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.FinalizeProposalResponse](t, w)
	assert.Equal(t, "succeeded", resp.Status)
}

func TestCancelProposal_NotProposer(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().CancelProposal(gomock.Any(), uint64(7), testVoter).Return(nil, domain.ErrNotProposer)

	w := env.request(t, http.MethodPost, "/api/v1/proposals/7/cancel", dto.ActorRequest{Actor: testVoter})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRegisterCitizen(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.RegisterCitizenRequest{Wallet: testVoter, BasePower: "400"}

	env.executor.EXPECT().
		RegisterCitizen(gomock.Any(), body).
		Return(&dto.CitizenResponse{Wallet: testVoter, Status: "pending", BasePower: "400"}, nil)

	w := env.request(t, http.MethodPost, "/api/v1/citizens", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[dto.CitizenResponse](t, w)
	assert.Equal(t, "pending", resp.Status)
}

func TestRegisterCitizen_Duplicate(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().RegisterCitizen(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCitizenExists)

	w := env.request(t, http.MethodPost, "/api/v1/citizens", dto.RegisterCitizenRequest{
		Wallet: testVoter, BasePower: "400",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetCitizen(t *testing.T) {
	env := newHandlerEnv(t)
	// the wallet path parameter is lowercased before the lookup
	env.executor.EXPECT().
		GetCitizen(gomock.Any(), testVoter).
		Return(&dto.CitizenResponse{Wallet: testVoter, Status: "active"}, nil)

	w := env.request(t, http.MethodGet, "/api/v1/citizens/0X1111111111111111111111111111111111111111", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetCitizen_NotFound(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().GetCitizen(gomock.Any(), testVoter).Return(nil, nil)

	w := env.request(t, http.MethodGet, "/api/v1/citizens/"+testVoter, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCitizen_InvalidWallet(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/citizens/not-a-wallet", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestApproveCitizenship_RequiresAuth(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodPost, "/api/v1/citizens/"+testVoter+"/approve", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestApproveCitizenship(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		ApproveCitizenship(gomock.Any(), testVoter, testAdmin).
		Return(&dto.CitizenResponse{Wallet: testVoter, Status: "active", IdentityVerified: true}, nil)

	w := env.authed(t, http.MethodPost, "/api/v1/citizens/"+testVoter+"/approve", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.CitizenResponse](t, w)
	assert.True(t, resp.IdentityVerified)
}

func TestApproveCitizenship_NotAdministrator(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().ApproveCitizenship(gomock.Any(), testVoter, testVoter).Return(nil, domain.ErrNotAdministrator)

	w := env.authed(t, http.MethodPost, "/api/v1/citizens/"+testVoter+"/approve", dto.ActorRequest{Actor: testVoter})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDelegate(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.DelegateRequest{Delegator: testVoter, Delegate: testProposer}

	env.executor.EXPECT().
		Delegate(gomock.Any(), body).
		Return(&dto.CitizenResponse{Wallet: testVoter, DelegatedTo: &body.Delegate}, nil)

	w := env.request(t, http.MethodPost, "/api/v1/delegations", body)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.CitizenResponse](t, w)
	require.NotNil(t, resp.DelegatedTo)
	assert.Equal(t, testProposer, *resp.DelegatedTo)
}

func TestDelegate_SelfDelegation(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().Delegate(gomock.Any(), gomock.Any()).Return(nil, domain.ErrSelfDelegation)

	w := env.request(t, http.MethodPost, "/api/v1/delegations", dto.DelegateRequest{
		Delegator: testVoter, Delegate: testVoter,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRemoveDelegation(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.RemoveDelegationRequest{Delegator: testVoter}

	env.executor.EXPECT().
		RemoveDelegation(gomock.Any(), body).
		Return(&dto.CitizenResponse{Wallet: testVoter}, nil)

	w := env.request(t, http.MethodDelete, "/api/v1/delegations", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeposit(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.DepositRequest{Actor: testVoter, Token: testToken, Amount: "750"}

	env.executor.EXPECT().Deposit(gomock.Any(), body).Return(nil)

	w := env.request(t, http.MethodPost, "/api/v1/treasury/deposits", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestQueueWithdrawal(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.QueueWithdrawalRequest{
		Actor:      testAdmin,
		ProposalID: 7,
		Token:      testToken,
		Recipient:  testVoter,
		Amount:     "500",
	}

	env.executor.EXPECT().
		QueueWithdrawal(gomock.Any(), body).
		Return(&dto.QueueWithdrawalResponse{WithdrawalID: 1}, nil)

	w := env.authed(t, http.MethodPost, "/api/v1/withdrawals", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeBody[dto.QueueWithdrawalResponse](t, w)
	assert.Equal(t, uint64(1), resp.WithdrawalID)
}

func TestQueueWithdrawal_ExceedsLimit(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().QueueWithdrawal(gomock.Any(), gomock.Any()).Return(nil, domain.ErrExceedsSingleTxLimit)

	w := env.authed(t, http.MethodPost, "/api/v1/withdrawals", dto.QueueWithdrawalRequest{
		Actor: testAdmin, ProposalID: 7, Token: testToken, Recipient: testVoter, Amount: "5000",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestApproveWithdrawal(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().ApproveWithdrawal(gomock.Any(), uint64(1), testAdmin).Return(nil)

	w := env.authed(t, http.MethodPost, "/api/v1/withdrawals/1/approve", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestApproveWithdrawal_NotFound(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().ApproveWithdrawal(gomock.Any(), uint64(42), testAdmin).Return(domain.ErrWithdrawalNotFound)

	w := env.authed(t, http.MethodPost, "/api/v1/withdrawals/42/approve", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetWithdrawal(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		GetWithdrawal(gomock.Any(), uint64(1)).
		Return(&dto.WithdrawalResponse{
			WithdrawalID: 1,
			ProposalID:   7,
			Status:       "approved",
			Approvals:    3,
			QueuedAt:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		}, nil)

	w := env.request(t, http.MethodGet, "/api/v1/withdrawals/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[dto.WithdrawalResponse](t, w)
	assert.Equal(t, 3, resp.Approvals)
}

func TestGetWithdrawal_NotFound(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().GetWithdrawal(gomock.Any(), uint64(42)).Return(nil, nil)

	w := env.request(t, http.MethodGet, "/api/v1/withdrawals/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateParams(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.UpdateParamsRequest{
		Actor:                 testAdmin,
		VotingPeriod:          25200,
		ExecutionDelaySeconds: 172800,
		QuorumPercentage:      2000,
		ProposalThreshold:     "200",
		GracePeriodSeconds:    1209600,
	}

	env.executor.EXPECT().UpdateParams(gomock.Any(), body).Return(nil)

	w := env.authed(t, http.MethodPut, "/api/v1/params", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateParams_InvalidQuorum(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().UpdateParams(gomock.Any(), gomock.Any()).Return(domain.ErrInvalidQuorumPercentage)

	w := env.authed(t, http.MethodPut, "/api/v1/params", dto.UpdateParamsRequest{
		Actor:                 testAdmin,
		VotingPeriod:          25200,
		ExecutionDelaySeconds: 172800,
		QuorumPercentage:      20000,
		ProposalThreshold:     "200",
		GracePeriodSeconds:    1209600,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestRemoveModule(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().RemoveModule(gomock.Any(), "staking", testAdmin).Return(nil)

	w := env.authed(t, http.MethodDelete, "/api/v1/modules/staking", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRemoveModule_NotFound(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().RemoveModule(gomock.Any(), "staking", testAdmin).Return(domain.ErrModuleNotFound)

	w := env.authed(t, http.MethodDelete, "/api/v1/modules/staking", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGrantRole(t *testing.T) {
	env := newHandlerEnv(t)
	body := dto.RoleRequest{Actor: testAdmin, Role: "signer", Account: testVoter}

	env.executor.EXPECT().GrantRole(gomock.Any(), body).Return(nil)

	w := env.authed(t, http.MethodPost, "/api/v1/roles/grant", body)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPause(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().Pause(gomock.Any(), testAdmin).Return(nil)

	w := env.authed(t, http.MethodPost, "/api/v1/pause", dto.ActorRequest{Actor: testAdmin})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPause_DomainErrors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		code int
	}{
		{"non-guardian is forbidden", domain.ErrNotAdministrator, http.StatusForbidden},
		{"double pause conflicts", domain.ErrPaused, http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := newHandlerEnv(t)
			env.executor.EXPECT().Pause(gomock.Any(), testVoter).Return(tc.err)

			w := env.authed(t, http.MethodPost, "/api/v1/pause", dto.ActorRequest{Actor: testVoter})

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestGetDailyStats(t *testing.T) {
	env := newHandlerEnv(t)
	env.executor.EXPECT().
		GetDailyStats(gomock.Any(), 7).
		Return(&dto.DailyStatsListResponse{Stats: []dto.DailyStatsResponse{}}, nil)

	w := env.request(t, http.MethodGet, "/api/v1/stats/daily?days=7", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetDailyStats_InvalidDays(t *testing.T) {
	env := newHandlerEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/stats/daily?days=0", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
