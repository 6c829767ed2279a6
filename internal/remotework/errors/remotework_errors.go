package remoteworkerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrWindowEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"window end date must not be before its start date",
		http.StatusBadRequest,
	)
	ErrWindowTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"remote work window cannot span more than 7 days",
		http.StatusBadRequest,
	)
	ErrDateOutsideWindow = apperror.New(
		apperror.CodeInvalidInput,
		"date is outside the remote work window",
		http.StatusBadRequest,
	)
	ErrNonWorkingDay = apperror.New(
		apperror.CodeInvalidInput,
		"date is not a working day",
		http.StatusBadRequest,
	)
	ErrTooManyPreferences = apperror.New(
		apperror.CodeInvalidInput,
		"more dates than the remote work limit allows",
		http.StatusBadRequest,
	)
	ErrWindowClosed = apperror.New(
		apperror.CodePolicyConflict,
		"remote work window is closed",
		http.StatusConflict,
	)
	ErrQuotaReached = apperror.New(
		apperror.CodePolicyConflict,
		"remote work quota reached for this period",
		http.StatusConflict,
	)
	ErrRemoteLogExists = apperror.New(
		apperror.CodeConflict,
		"a record already exists for this date",
		http.StatusConflict,
	)
)
