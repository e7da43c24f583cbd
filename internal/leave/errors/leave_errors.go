package leaveerrors

import (
	"net/http"

	"github.com/Harendra62/leave-management/internal/shared/apperror"
)

var (
	ErrLeaveRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave request not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrRequestNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Leave request is not pending",
		http.StatusBadRequest,
	)
	ErrUpdateRequiresPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending requests can be updated",
		http.StatusBadRequest,
	)
	ErrCancelRequiresPending = apperror.New(
		apperror.CodeInvalidState,
		"Only pending requests can be cancelled",
		http.StatusBadRequest,
	)
	ErrInvalidDecisionStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status for approval. Use approved or rejected.",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveDates = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave dates",
		http.StatusBadRequest,
	)
)

// ValidationFailed wraps a single business-rule failure message, e.g.
// "No leave balance found for this leave type".
func ValidationFailed(message string) *apperror.AppError {
	return apperror.New(apperror.CodeValidationFailed, message, http.StatusBadRequest)
}
