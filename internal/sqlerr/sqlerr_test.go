package sqlerr_test

import (
	"errors"
	"fmt"
	"testing"

	"formdesk/internal/sqlerr"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("connection refused"), false},
		{"gorm translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a' for key 'email'"}, true},
		{"mysql other", &mysql.MySQLError{Number: 1045, Message: "Access denied"}, false},
		{"postgres unique", &pgconn.PgError{Code: "23505"}, true},
		{"postgres fk", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, true},
		{"sqlite notnull", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}, false},
		{"message only", errors.New("UNIQUE constraint failed: contact_forms.email"), true},
		{"record not found", gorm.ErrRecordNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlerr.IsUniqueViolation(tt.err))
		})
	}
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "idx_contact_forms_email",
		sqlerr.ConstraintName(&pgconn.PgError{Code: "23505", ConstraintName: "idx_contact_forms_email"}))
	assert.Equal(t, "contact_forms.idx_contact_forms_email",
		sqlerr.ConstraintName(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'b@x.com' for key 'contact_forms.idx_contact_forms_email'"}))
	assert.Equal(t, "contact_forms.email",
		sqlerr.ConstraintName(fmt.Errorf("insert: %w", errors.New("UNIQUE constraint failed: contact_forms.email"))))
	assert.Empty(t, sqlerr.ConstraintName(errors.New("other")))
	assert.Empty(t, sqlerr.ConstraintName(nil))
}
