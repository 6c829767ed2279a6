// Package gormtx lets gorm repositories run on a *sql.Tx opened by a service
// through database/sql, so services keep one BeginTx/Commit flow while the
// repositories stay on gorm.
package gormtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a session bound to ctx. When tx is non-nil every statement of
// the session runs on tx instead of the pool.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}

	// Session with a context clones the statement, so swapping the pool here
	// does not leak into db.
	session := db.Session(&gorm.Session{Context: ctx, NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
