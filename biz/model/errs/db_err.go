package errs

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	mysqlDupEntry     = 1062
	pgUniqueViolation = "23505"
)

// IsDuplicatedErr reports whether err is a unique constraint violation from
// any of the supported dialects.
func IsDuplicatedErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlDupEntry
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	// sqlite drivers without error translation
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
