package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-attendance/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("wrapped app error", func(t *testing.T) {
		got := apperror.ToHTTP(fmt.Errorf("handler: %w", apperror.ErrNotFound))
		assert.Equal(t, http.StatusNotFound, got.Status)
	})

	t.Run("plain error hides its message", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.ErrInternal.Message, got.Message)
	})

	t.Run("missing status", func(t *testing.T) {
		got := apperror.ToHTTP(&apperror.AppError{Code: "X", Message: "x"})
		assert.Equal(t, http.StatusInternalServerError, got.Status)
	})
}

func TestWithCause(t *testing.T) {
	cause := errors.New("bad row")
	err := apperror.WithCause(apperror.ErrInvalidInput, cause)

	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "The provided input is invalid: bad row", err.Error())
	assert.Nil(t, apperror.WithCause(nil, cause))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		ReportDate string `json:"report_date" validate:"required"`
		Email      string `json:"email" validate:"email"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	err := apperror.MapValidationError(v.Struct(payload{Email: "a@b.co"}))
	assert.Equal(t, "Report Date is required", err.Error())

	err = apperror.MapValidationError(v.Struct(payload{ReportDate: "x", Email: "nope"}))
	assert.Equal(t, "Email is invalid", err.Error())

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", err.Error())
}
