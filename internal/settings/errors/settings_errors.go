package settingserrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidDeadline = apperror.New(
		apperror.CodeInvalidInput,
		"deadline must be a valid time of day (hour 0-23, minute 0-59)",
		http.StatusBadRequest,
	)
	ErrInvalidGraceDays = apperror.New(
		apperror.CodeInvalidInput,
		"grace_days must be between 0 and 30",
		http.StatusBadRequest,
	)
	ErrInvalidRemoteLimit = apperror.New(
		apperror.CodeInvalidInput,
		"limit must not be negative",
		http.StatusBadRequest,
	)
)
