package infrastructure

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	ledgerErrors "github.com/sebuszqo/ExpenseTracker/internal/ledger/errors"
)

// queryTimeout bounds every single storage round-trip. A slow or dead
// database turns into an UnavailableError instead of a hung request.
const queryTimeout = 5 * time.Second

const uniqueViolationCode = "23505"

func withQueryTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// wrapStorageError classifies low-level failures: timeouts, cancelled
// contexts and dead connections become UnavailableError so callers can retry,
// everything else passes through for the handler to report as internal.
func wrapStorageError(msg string, err error) error {
	if err == nil {
		return nil
	}
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.As(err, &netErr):
		return ledgerErrors.NewUnavailableError(msg, err)
	}
	return err
}
