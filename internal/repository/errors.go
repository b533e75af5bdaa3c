package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Constraint names referenced by error translation.
const (
	constraintLicenseUnique    = "uq_drivers_license_number"
	constraintDriverActive     = "uq_assignments_driver_active"
	constraintDriverLoadUnique = "uq_driver_load_assignment"
)

// IsDuplicate - signals that the error is a duplicate key violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

// IsNotFound - signals that the error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsTransient reports failures worth retrying: timeouts, lost connections,
// serialization failures and deadlocks.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) || pgconn.SafeToRetry(err) {
		return true
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		switch pgerr.Code {
		case "40001", "40P01", "57014", "57P01":
			return true
		}
		return strings.HasPrefix(pgerr.Code, "08")
	}
	var connErr *pgconn.ConnectError
	return errors.As(err, &connErr)
}

func violatedConstraint(err error) string {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && pgerr.Code == "23505" {
		return pgerr.ConstraintName
	}
	return ""
}
