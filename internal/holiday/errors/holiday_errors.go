package holidayerrors

import (
	"net/http"

	"github.com/Harendra62/leave-management/internal/shared/apperror"
)

var (
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"Holiday not found",
		http.StatusNotFound,
	)
	ErrInvalidHolidayDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrHolidayInactive = apperror.New(
		apperror.CodeInvalidState,
		"Holiday is already inactive",
		http.StatusConflict,
	)
)
