package leavetypeerrors

import (
	"net/http"

	"github.com/Harendra62/leave-management/internal/shared/apperror"
)

var (
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave type not found",
		http.StatusNotFound,
	)
	ErrLeaveTypeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Leave type with the same name already exists",
		http.StatusConflict,
	)
	ErrLeaveTypeInactive = apperror.New(
		apperror.CodeInvalidState,
		"Leave type is already inactive",
		http.StatusConflict,
	)
	ErrCarryForwardLimitWithoutFlag = apperror.New(
		apperror.CodeInvalidInput,
		"max_carry_forward_days requires carry_forward_enabled",
		http.StatusBadRequest,
	)
)
