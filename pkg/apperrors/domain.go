package apperrors

import "net/http"

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusConflict)
}

// Predefined errors for the frequent, static cases.

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"business_logic",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrNotResourceOwner = New(
	CodeForbidden,
	"business_logic",
	"You do not own this resource",
	http.StatusForbidden,
)

// --- opportunities & quotas ---

// ErrQuotaExceeded is returned when the monthly posting allowance for an
// opportunity type is used up.
var ErrQuotaExceeded = New(
	CodeQuotaExceeded,
	"quota",
	"Monthly posting limit for this opportunity type has been reached",
	http.StatusForbidden,
)

var ErrInvalidOpportunityType = New(
	CodeValidationFailed,
	"validation",
	"Unknown opportunity type",
	http.StatusBadRequest,
)

// --- messaging ---

// ErrConversationNotEstablished rejects a candidate trying to cold-start a
// conversation; only industries may initiate.
var ErrConversationNotEstablished = New(
	CodeConversationNotEstablished,
	"chat",
	"No existing conversation with this user",
	http.StatusForbidden,
)

var ErrCannotMessageSelf = New(
	CodeInvalidOperation,
	"chat",
	"Cannot send a message to yourself",
	http.StatusBadRequest,
)

// --- applications ---

var ErrAlreadyApplied = New(
	CodeAlreadyExists,
	"application",
	"You have already applied to this opportunity",
	http.StatusConflict,
)

var ErrOpportunityInactive = New(
	CodeInvalidStatus,
	"application",
	"This opportunity is not accepting applications",
	http.StatusConflict,
)

// --- subscriptions ---

var ErrSubscriptionCancelled = New(
	CodeInvalidOperation,
	"subscription",
	"Subscription is already cancelled",
	http.StatusBadRequest,
)

var ErrNoActiveSubscription = New(
	CodeNotFound,
	"subscription",
	"No active subscription",
	http.StatusNotFound,
)

// --- auth & user status ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrUserBanned = New(
	CodeForbidden,
	"auth",
	"Your account has been banned",
	http.StatusForbidden,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password is too weak. Minimum 8 characters required.",
	http.StatusBadRequest,
)

// --- profiles ---

var ErrProfileNotPublic = New(
	CodeForbidden,
	"profile",
	"This profile is private",
	http.StatusForbidden,
)

var ErrProfileExists = New(
	CodeAlreadyExists,
	"profile",
	"A profile already exists for this account",
	http.StatusConflict,
)
