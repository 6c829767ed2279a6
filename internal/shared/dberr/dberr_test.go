package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"go-attendance/internal/shared/dberr"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	pgDup := &pgconn.PgError{Code: "23505", ConstraintName: "uq_eod_company_employee_date"}

	assert.True(t, dberr.IsUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, dberr.IsUniqueViolation(pgDup))
	assert.True(t, dberr.IsUniqueViolation(pgDup, "uq_eod_company_employee_date"))
	assert.False(t, dberr.IsUniqueViolation(pgDup, "uq_other"))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, dberr.IsUniqueViolation(errors.New("boom")))
	assert.False(t, dberr.IsUniqueViolation(nil))
}
