package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// IsUniqueViolation matches duplicate-key errors whether or not gorm
// translated them. When constraints are given, the postgres constraint name
// must be one of them.
func IsUniqueViolation(err error, constraints ...string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return false
		}
		if len(constraints) == 0 {
			return true
		}
		for _, c := range constraints {
			if pgErr.ConstraintName == c {
				return true
			}
		}
		return false
	}

	return errors.Is(err, gorm.ErrDuplicatedKey)
}
