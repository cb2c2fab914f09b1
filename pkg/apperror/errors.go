package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Mandate Lifecycle (MND) ----

// ErrInvalidTransition signals an operation not allowed from the
// mandate's current state. Recoverable: the caller may revoke instead.
func ErrInvalidTransition(from, to string) *AppError {
	return New("MND_001", fmt.Sprintf("invalid transition from %s to %s", from, to), http.StatusConflict)
}

// ErrInvalidDerivation signals a mandate-kind or predecessor-state
// violation of the Intent -> {Cart, Payment} chain.
func ErrInvalidDerivation(reason string) *AppError {
	return New("MND_002", fmt.Sprintf("invalid derivation: %s", reason), http.StatusUnprocessableEntity)
}

// ErrRiskBlocked signals an attempted settlement of a High-risk
// mandate. High-risk mandates must be revoked, never settled.
func ErrRiskBlocked() *AppError {
	return New("MND_003", "settlement blocked: mandate risk tier is HIGH", http.StatusUnprocessableEntity)
}

// ErrMandateNotFound signals an unknown mandate identifier.
func ErrMandateNotFound(id string) *AppError {
	return New("MND_004", fmt.Sprintf("mandate %s not found", id), http.StatusNotFound)
}

// ErrSettlementFailed signals that the rail reported a FAILED status.
// The mandate stays in RISK_ASSESSED; the caller may retry or revoke.
func ErrSettlementFailed(txID string) *AppError {
	return New("MND_005", fmt.Sprintf("settlement failed on rail (transaction %s)", txID), http.StatusBadGateway)
}

// ---- Audit Ledger (LDG) ----

// ErrLedgerExhausted signals that the ledger hit its event capacity.
// Fatal: the triggering operation aborts without partial writes.
func ErrLedgerExhausted() *AppError {
	return New("LDG_001", "audit ledger capacity exhausted", http.StatusInsufficientStorage)
}

// ErrLedgerCorrupted signals a signature token mismatch on import.
func ErrLedgerCorrupted(seq uint64) *AppError {
	return New("LDG_002", fmt.Sprintf("audit event %d failed signature verification", seq), http.StatusUnprocessableEntity)
}

// ---- System & Validation ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_001 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
