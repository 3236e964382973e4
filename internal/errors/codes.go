package errors

import "net/http"

// ErrorCode is the stable, machine-readable identifier of an API error.
type ErrorCode string

const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthAccountLocked          ErrorCode = "AUTH_006"
	AuthEmailTaken             ErrorCode = "AUTH_007"
)

const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

const (
	GroupNotFound               ErrorCode = "GROUP_001"
	GroupNotAMember             ErrorCode = "GROUP_002"
	GroupInsufficientRole       ErrorCode = "GROUP_003"
	GroupAlreadyMember          ErrorCode = "GROUP_004"
	GroupInvalidInviteKey       ErrorCode = "GROUP_005"
	GroupKeyGenerationExhausted ErrorCode = "GROUP_006"
	GroupOwnerImmutable         ErrorCode = "GROUP_007"
	GroupInvalidOwnerChange     ErrorCode = "GROUP_008"
	GroupInvalidRole            ErrorCode = "GROUP_009"
)

const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionUnbalancedShares ErrorCode = "TRANSACTION_002"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_003"
	TransactionInvalidType      ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
)

const (
	RecurringNotFound         ErrorCode = "RECURRING_001"
	RecurringNotDue           ErrorCode = "RECURRING_002"
	RecurringAlreadyProcessed ErrorCode = "RECURRING_003"
	RecurringInvalidFrequency ErrorCode = "RECURRING_004"
	RecurringInactive         ErrorCode = "RECURRING_005"
	RecurringVersionConflict  ErrorCode = "RECURRING_006"
)

const (
	ClientNotFound ErrorCode = "CLIENT_001"
)

const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type definition struct {
	status  int
	message string
}

// catalog is the single source of truth for every code's HTTP status and
// default message. A code missing here renders as a 500.
var catalog = map[ErrorCode]definition{
	AuthInvalidCredentials:     {http.StatusUnauthorized, "Invalid email or password"},
	AuthMissingToken:           {http.StatusUnauthorized, "Authorization token is required"},
	AuthExpiredToken:           {http.StatusUnauthorized, "Authorization token has expired"},
	AuthInvalidTokenFormat:     {http.StatusUnauthorized, "Invalid authorization token format"},
	AuthInsufficientPermission: {http.StatusForbidden, "Insufficient permissions to access this resource"},
	AuthAccountLocked:          {http.StatusForbidden, "Account is locked or disabled"},
	AuthEmailTaken:             {http.StatusConflict, "An account with this email already exists"},

	ValidationGeneral:       {http.StatusBadRequest, "Validation failed"},
	ValidationRequiredField: {http.StatusBadRequest, "Required field is missing"},
	ValidationInvalidFormat: {http.StatusBadRequest, "Invalid field format"},
	ValidationOutOfRange:    {http.StatusBadRequest, "Field value is out of allowed range"},
	ValidationInvalidEmail:  {http.StatusBadRequest, "Invalid email address format"},
	ValidationInvalidDate:   {http.StatusBadRequest, "Invalid date format or range"},

	GroupNotFound:               {http.StatusNotFound, "Group not found"},
	GroupNotAMember:             {http.StatusForbidden, "You are not a member of this group"},
	GroupInsufficientRole:       {http.StatusForbidden, "Your role in this group does not allow this action"},
	GroupAlreadyMember:          {http.StatusConflict, "User is already a member of this group"},
	GroupInvalidInviteKey:       {http.StatusNotFound, "Invite key is invalid"},
	GroupKeyGenerationExhausted: {http.StatusServiceUnavailable, "Could not allocate a unique invite key. Please retry"},
	GroupOwnerImmutable:         {http.StatusForbidden, "The group owner cannot be removed, demoted or leave"},
	GroupInvalidOwnerChange:     {http.StatusBadRequest, "New owner must be another existing member"},
	GroupInvalidRole:            {http.StatusBadRequest, "Invalid group role"},

	TransactionNotFound:         {http.StatusNotFound, "Transaction not found"},
	TransactionUnbalancedShares: {http.StatusBadRequest, "Participant shares must add up to the amount"},
	TransactionInvalidAmount:    {http.StatusBadRequest, "Invalid transaction amount"},
	TransactionInvalidType:      {http.StatusBadRequest, "Transaction type must be income or expense"},
	TransactionValidationFailed: {http.StatusUnprocessableEntity, "Transaction validation failed"},

	RecurringNotFound:         {http.StatusNotFound, "Recurring obligation not found"},
	RecurringNotDue:           {http.StatusUnprocessableEntity, "Recurring obligation is not due yet"},
	RecurringAlreadyProcessed: {http.StatusConflict, "Recurring obligation was already executed for this period"},
	RecurringInvalidFrequency: {http.StatusBadRequest, "Invalid recurring frequency"},
	RecurringInactive:         {http.StatusUnprocessableEntity, "Recurring obligation is inactive"},
	RecurringVersionConflict:  {http.StatusConflict, "Recurring obligation was modified concurrently. Reload and retry"},

	ClientNotFound: {http.StatusNotFound, "Client not found"},

	SystemInternalError:      {http.StatusInternalServerError, "An unexpected error occurred. Please contact support with trace ID"},
	SystemDatabaseError:      {http.StatusInternalServerError, "Database connection error"},
	SystemServiceUnavailable: {http.StatusServiceUnavailable, "Service temporarily unavailable"},
	SystemConfigurationError: {http.StatusInternalServerError, "System configuration error"},
	SystemUnexpectedError:    {http.StatusInternalServerError, "An unexpected error occurred"},
	SystemRateLimitExceeded:  {http.StatusTooManyRequests, "Rate limit exceeded. Please try again later"},
	SystemRouteNotFound:      {http.StatusNotFound, "Resource not found"},
}

// Status returns the HTTP status a code is served with.
func (c ErrorCode) Status() int {
	if def, ok := catalog[c]; ok {
		return def.status
	}
	return http.StatusInternalServerError
}

// Message returns the default client-facing message of a code.
func (c ErrorCode) Message() string {
	if def, ok := catalog[c]; ok {
		return def.message
	}
	return "An error occurred"
}

// Known reports whether the code is registered.
func (c ErrorCode) Known() bool {
	_, ok := catalog[c]
	return ok
}
