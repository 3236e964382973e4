package handlers

import (
	stderrors "errors"

	"group-ledger/internal/errors"
	"group-ledger/internal/models"
	"group-ledger/internal/repositories"
	"group-ledger/internal/services"

	"github.com/labstack/echo/v4"
)

type errorMapping struct {
	target  error
	code    errors.ErrorCode
	details string
	// expose sends the error text itself as details.
	expose bool
}

// domainErrors is checked in order with errors.Is.
var domainErrors = []errorMapping{
	{target: services.ErrUserAlreadyExists, code: errors.AuthEmailTaken},
	{target: services.ErrInvalidCredentials, code: errors.AuthInvalidCredentials},
	{target: services.ErrAccountLocked, code: errors.AuthAccountLocked},
	{target: services.ErrInvalidRefreshToken, code: errors.AuthInvalidTokenFormat, details: "Invalid or expired refresh token"},
	{target: services.ErrWeakPassword, code: errors.ValidationGeneral, expose: true},

	{target: repositories.ErrGroupNotFound, code: errors.GroupNotFound},
	{target: models.ErrNotAMember, code: errors.GroupNotAMember},
	{target: repositories.ErrMemberNotFound, code: errors.GroupNotAMember},
	{target: models.ErrInsufficientRole, code: errors.GroupInsufficientRole},
	{target: models.ErrAlreadyMember, code: errors.GroupAlreadyMember},
	{target: services.ErrInvalidInviteKey, code: errors.GroupInvalidInviteKey},
	{target: services.ErrKeyGenerationExhausted, code: errors.GroupKeyGenerationExhausted},
	{target: models.ErrOwnerImmutable, code: errors.GroupOwnerImmutable},
	{target: services.ErrOwnerCannotLeave, code: errors.GroupOwnerImmutable, details: "Transfer ownership before leaving the group"},
	{target: models.ErrInvalidOwnerChange, code: errors.GroupInvalidOwnerChange},
	{target: models.ErrInvalidGroupRole, code: errors.GroupInvalidRole},
	{target: models.ErrInvalidCurrency, code: errors.ValidationInvalidFormat, details: "currency must be a 3-letter ISO code"},
	{target: models.ErrInvalidTaxRate, code: errors.ValidationOutOfRange, details: "taxRate must be between 0 and 100"},
	{target: repositories.ErrUserNotFound, code: errors.ValidationGeneral, details: "No registered user has this email"},

	{target: repositories.ErrTransactionNotFound, code: errors.TransactionNotFound},
	{target: models.ErrUnbalancedShares, code: errors.TransactionUnbalancedShares},
	{target: models.ErrInvalidAmount, code: errors.TransactionInvalidAmount},
	{target: models.ErrNegativeAmount, code: errors.TransactionInvalidAmount},
	{target: models.ErrInvalidEntryType, code: errors.TransactionInvalidType},
	{target: models.ErrDescriptionRequired, code: errors.TransactionValidationFailed, expose: true},
	{target: models.ErrCategoryTooLong, code: errors.TransactionValidationFailed, expose: true},
	{target: services.ErrParticipantNotMember, code: errors.TransactionValidationFailed, details: "Every participant must be a member of the group"},
	{target: services.ErrDuplicateParticipant, code: errors.TransactionValidationFailed, details: "Each participant may appear only once"},

	{target: repositories.ErrRecurringObligationNotFound, code: errors.RecurringNotFound},
	{target: services.ErrRecurringNotDue, code: errors.RecurringNotDue},
	{target: repositories.ErrAlreadyProcessed, code: errors.RecurringAlreadyProcessed},
	{target: models.ErrInvalidFrequency, code: errors.RecurringInvalidFrequency},
	{target: services.ErrRecurringInactive, code: errors.RecurringInactive},
	{target: models.ErrOptimisticLockConflict, code: errors.RecurringVersionConflict},
	{target: models.ErrEndBeforeStart, code: errors.ValidationInvalidDate, details: "endDate must not be before startDate"},

	{target: repositories.ErrClientNotFound, code: errors.ClientNotFound},
}

// sendServiceError answers a service failure with its API error code, or
// SYSTEM_001 when the failure is not a known domain error.
func sendServiceError(c echo.Context, err error) error {
	for _, m := range domainErrors {
		if !stderrors.Is(err, m.target) {
			continue
		}
		switch {
		case m.expose:
			return SendError(c, m.code, errors.WithDetails(err.Error()))
		case m.details != "":
			return SendError(c, m.code, errors.WithDetails(m.details))
		default:
			return SendError(c, m.code)
		}
	}
	return SendSystemError(c, err)
}
