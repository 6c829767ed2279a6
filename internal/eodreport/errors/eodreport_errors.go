package eodreporterrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid report id",
		http.StatusBadRequest,
	)
	ErrFutureReportDate = apperror.New(
		apperror.CodeInvalidInput,
		"report date cannot be in the future",
		http.StatusBadRequest,
	)
	ErrNonWorkingDay = apperror.New(
		apperror.CodeInvalidInput,
		"report date is not a working day",
		http.StatusBadRequest,
	)
	ErrInvalidSubmittedAt = apperror.New(
		apperror.CodeInvalidInput,
		"submitted_at must be an RFC3339 timestamp",
		http.StatusBadRequest,
	)
	ErrOverrideNotAllowed = apperror.New(
		apperror.CodeForbidden,
		"only privileged users can override submitted_at or is_late",
		http.StatusForbidden,
	)
	ErrEditWindowElapsed = apperror.New(
		apperror.CodePolicyConflict,
		"the edit window for this report has elapsed",
		http.StatusConflict,
	)
	ErrReportAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a record already exists for this date",
		http.StatusConflict,
	)
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"EOD report not found",
		http.StatusNotFound,
	)
)
