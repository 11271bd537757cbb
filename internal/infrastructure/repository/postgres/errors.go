package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"

	"github.com/lib/pq"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/platform/resilience"
)

const (
	pqUndefinedColumn       = pq.ErrorCode("42703")
	pqSerializationFailure  = pq.ErrorCode("40001")
	pqDeadlockDetected      = pq.ErrorCode("40P01")
	pqTooManyConnections    = pq.ErrorCode("53300")
	pqAdminShutdown         = pq.ErrorCode("57P01")
	pqCannotConnectNow      = pq.ErrorCode("57P03")
	pqConnectionExceptionCl = "08"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqCode(err error) (pq.ErrorCode, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code, true
	}
	return "", false
}

func isSerializationFailure(err error) bool {
	code, ok := pqCode(err)
	return ok && (code == pqSerializationFailure || code == pqDeadlockDetected)
}

func isConnectionFailure(err error) bool {
	if errors.Is(err, resilience.ErrCircuitOpen) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled) {
		return true
	}
	return isDatabaseDown(err)
}

// isDatabaseDown is the subset of connection failures blamed on the
// database; cancelled requests do not count against it.
func isDatabaseDown(err error) bool {
	if errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) {
		return true
	}
	code, ok := pqCode(err)
	if !ok {
		return false
	}
	switch code {
	case pqTooManyConnections, pqAdminShutdown, pqCannotConnectNow:
		return true
	}
	return code.Class() == pqConnectionExceptionCl
}

// isContractViolation reports failures caused by this service's own queries
// rather than by data or the database being unavailable.
func isContractViolation(err error) bool {
	if isNotFound(err) {
		return true
	}
	code, ok := pqCode(err)
	return ok && code == pqUndefinedColumn
}

// translate maps storage failures onto the domain taxonomy. Domain errors
// raised inside a unit of work pass through untouched.
func (s *Store) translate(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := listerr.As(err); ok {
		return err
	}

	switch {
	case isConnectionFailure(err):
		s.logger.WarnContext(ctx, "database unavailable", "op", op, "error", err)
		return listerr.DatabaseConnection(err)
	case isContractViolation(err):
		s.logger.ErrorContext(ctx, "database query violated its contract", "op", op, "error", err)
		return listerr.Internal(err)
	default:
		s.logger.ErrorContext(ctx, "database failure", "op", op, "error", err)
		return listerr.Database(err)
	}
}
