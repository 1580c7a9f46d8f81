package rest

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.temporal.io/sdk/temporal"
	"go.uber.org/zap"

	"github.com/nexus-dao/nexus-governance/internal/api/shared/errors"
	"github.com/nexus-dao/nexus-governance/internal/domain"
	"github.com/nexus-dao/nexus-governance/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, errors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, errors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, errors.NewValidationError(message))
}

// respondInternalError responds with an internal server error and logs it
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, errors.NewInternalError(message, details...))
}

// notFoundErrs are rejections where the referenced entity does not exist
var notFoundErrs = []error{
	domain.ErrProposalNotFound,
	domain.ErrWithdrawalNotFound,
	domain.ErrModuleNotFound,
	domain.ErrNotCitizen,
}

// forbiddenErrs are rejections of the acting wallet's authority
var forbiddenErrs = []error{
	domain.ErrNotDelegate,
	domain.ErrNotAuthorizedSigner,
	domain.ErrNotAdministrator,
	domain.ErrNotProposer,
	domain.ErrBelowProposalThreshold,
	domain.ErrNotEligible,
}

// conflictErrs are rejections by the state machine: the request was well
// formed and authorized but the entity is not in a state that permits it
var conflictErrs = []error{
	domain.ErrNotActiveProposal,
	domain.ErrAlreadyVoted,
	domain.ErrNoVotingPower,
	domain.ErrNotSucceeded,
	domain.ErrNotQueued,
	domain.ErrAlreadyExecuted,
	domain.ErrAlreadyApproved,
	domain.ErrProposalTerminal,
	domain.ErrCitizenExists,
	domain.ErrCitizenNotActive,
	domain.ErrAlreadyDelegating,
	domain.ErrNotDelegating,
	domain.ErrSelfDelegation,
	domain.ErrModuleAlreadyRegistered,
	domain.ErrWithdrawalCanceled,
	domain.ErrPaused,
	domain.ErrNotPaused,
	domain.ErrVotingClosed,
	domain.ErrVotingNotStarted,
	domain.ErrTimelockNotElapsed,
	domain.ErrGracePeriodExpired,
	domain.ErrInsufficientApprovals,
	domain.ErrExceedsSingleTxLimit,
	domain.ErrExceedsDailyLimit,
	domain.ErrInsufficientBalance,
}

// validationErrs are rejections of the request content itself
var validationErrs = []error{
	domain.ErrInvalidVotingPeriod,
	domain.ErrInvalidQuorumPercentage,
	domain.ErrInvalidCategory,
	domain.ErrInvalidSupport,
	domain.ErrInvalidAddress,
	domain.ErrSelfDelegation,
	domain.ErrMissingProposalLink,
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if stderrors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondDomainError maps a write-path error onto an HTTP response.
// Ledger rejections keep their domain message; workflow failures are
// unwrapped so the pipeline stage's message reaches the caller.
func respondDomainError(c *gin.Context, err error) {
	var apiErr *errors.APIError
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case errors.ErrCodeBadRequest:
			c.JSON(http.StatusBadRequest, apiErr)
		case errors.ErrCodeNotFound:
			c.JSON(http.StatusNotFound, apiErr)
		case errors.ErrCodeValidationFailed:
			c.JSON(http.StatusUnprocessableEntity, apiErr)
		case errors.ErrCodeUnauthorized:
			c.JSON(http.StatusUnauthorized, apiErr)
		case errors.ErrCodeForbidden:
			c.JSON(http.StatusForbidden, apiErr)
		case errors.ErrCodeConflict:
			c.JSON(http.StatusConflict, apiErr)
		default:
			logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.FullPath()))
			c.JSON(http.StatusInternalServerError, apiErr)
		}
		return
	}

	var appErr *temporal.ApplicationError
	if stderrors.As(err, &appErr) {
		switch appErr.Type() {
		case "InvalidVoteRequest":
			respondValidationError(c, appErr.Message())
		case "VoterNotEligible":
			c.JSON(http.StatusForbidden, errors.NewForbiddenError(appErr.Message()))
		case "AlreadyVoted":
			c.JSON(http.StatusConflict, errors.NewConflictError(appErr.Message()))
		default:
			// Domain rejections crossing an activity boundary lose their
			// sentinel identity but keep the message
			c.JSON(http.StatusConflict, errors.NewConflictError(appErr.Message()))
		}
		return
	}

	switch {
	case matchesAny(err, validationErrs):
		respondValidationError(c, err.Error())
	case matchesAny(err, notFoundErrs):
		respondNotFound(c, err.Error())
	case matchesAny(err, forbiddenErrs):
		c.JSON(http.StatusForbidden, errors.NewForbiddenError(err.Error()))
	case matchesAny(err, conflictErrs):
		c.JSON(http.StatusConflict, errors.NewConflictError(err.Error()))
	default:
		respondInternalError(c, err, "Internal server error")
	}
}
