// Package sqlerr classifies errors coming back from the relational drivers
// gorm can sit on (MySQL, Postgres, SQLite).
package sqlerr

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	mysqlDuplicateEntry = 1062
	pgUniqueViolation   = "23505"
	sqliteUniqueFailed  = "UNIQUE constraint failed"
)

// IsUniqueViolation reports whether err was caused by a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	// Some drivers only surface the message.
	return strings.Contains(err.Error(), sqliteUniqueFailed)
}

// ConstraintName returns the violated constraint when the driver reports one.
func ConstraintName(err error) string {
	if err == nil {
		return ""
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		// Duplicate entry 'x' for key 'contact_forms.idx_contact_forms_email'
		if i := strings.LastIndex(myErr.Message, "for key '"); i >= 0 {
			return strings.TrimSuffix(myErr.Message[i+len("for key '"):], "'")
		}
	}
	// UNIQUE constraint failed: contact_forms.email
	if msg := err.Error(); strings.Contains(msg, sqliteUniqueFailed+": ") {
		return msg[strings.Index(msg, sqliteUniqueFailed+": ")+len(sqliteUniqueFailed+": "):]
	}
	return ""
}
