package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// 23505: unique_violation.
const uniqueViolationCode = "23505"

// isUniqueViolation detecta el choque contra un índice único; los repos lo
// traducen a domain.ErrDuplicate.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	// Errores envueltos fuera de la cadena de pgconn conservan el código en
	// el texto.
	return err != nil && strings.Contains(err.Error(), uniqueViolationCode)
}
