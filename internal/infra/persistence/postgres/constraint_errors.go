package postgres

import (
	"strings"
)

// isNotNullConstraintViolation matches PostgreSQL not_null_violation (23502).
func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not-null constraint") ||
		strings.Contains(errMsg, "23502")
}
