package delegationerrors

import (
	"net/http"

	"github.com/Harendra62/leave-management/internal/shared/apperror"
)

var (
	ErrDelegationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave delegation not found",
		http.StatusNotFound,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Manager not found",
		http.StatusNotFound,
	)
	ErrDelegateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Delegate not found",
		http.StatusNotFound,
	)
	ErrSelfDelegation = apperror.New(
		apperror.CodeInvalidInput,
		"Manager and delegate must be different employees",
		http.StatusBadRequest,
	)
	ErrInvalidDelegationPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid delegation period, expected YYYY-MM-DD with start_date before end_date",
		http.StatusBadRequest,
	)
)
