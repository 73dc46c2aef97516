// Package store fetches the active-session work-area table from PostgreSQL.
//
// Each Fetch opens its own connection, runs SessionWorkQuery once and closes
// the connection again, so nothing is held open between polls.
package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // registers the "postgres" driver
	"golang.org/x/xerrors"

	"github.com/rileyhilliard/workmon/internal/config"
	"github.com/rileyhilliard/workmon/internal/errors"
	"github.com/rileyhilliard/workmon/internal/logger"
	"github.com/rileyhilliard/workmon/internal/workarea"
)

// DriverName is the database/sql driver used for every connection.
const DriverName = "postgres"

type sessionRecord struct {
	Owner     sql.NullString `db:"owner"`
	PID       sql.NullInt64  `db:"pid"`
	SessionID string         `db:"session_id"`
	Timestamp sql.NullTime   `db:"timestamp"`
	TempSize  float64        `db:"temp_size"`
}

// Postgres runs the session query against one database.
type Postgres struct {
	dsn    string
	target string
	log    logger.Logger
}

// New returns a Postgres for db. A nil log discards output.
func New(db config.DatabaseConfig, log logger.Logger) *Postgres {
	if log == nil {
		log = logger.Noop()
	}
	return &Postgres{
		dsn:    DSN(db),
		target: Target(db),
		log:    log,
	}
}

// Fetch connects, runs SessionWorkQuery and returns its rows. Connection and
// authentication failures come back with code errors.ErrConnect; anything
// else wrong with the query is errors.ErrQuery.
func (p *Postgres) Fetch(ctx context.Context) (workarea.Table, error) {
	start := time.Now()
	p.log.Debug("connecting to %s", p.target)

	db, err := sqlx.ConnectContext(ctx, DriverName, p.dsn)
	if err != nil {
		return workarea.Table{}, connectError(p.target, err)
	}
	defer db.Close()

	conn, err := db.Connx(ctx)
	if err != nil {
		return workarea.Table{}, connectError(p.target, err)
	}
	defer conn.Close()

	var records []sessionRecord
	if err := conn.SelectContext(ctx, &records, SessionWorkQuery); err != nil {
		return workarea.Table{}, queryError(p.target, err)
	}

	p.log.Debug("fetched %d sessions from %s in %s", len(records), p.target, time.Since(start).Round(time.Millisecond))
	return toTable(records), nil
}

func toTable(records []sessionRecord) workarea.Table {
	rows := make([]workarea.Row, 0, len(records))
	for _, r := range records {
		user := workarea.UnknownOwner
		if r.Owner.Valid {
			user = r.Owner.String
		}
		rows = append(rows, workarea.Row{
			User:       user,
			PID:        r.PID.Int64,
			SessionID:  r.SessionID,
			Timestamp:  r.Timestamp.Time,
			WorkAreaMB: r.TempSize,
		})
	}
	return workarea.NewTable(rows)
}

func connectError(target string, err error) error {
	return errors.WrapWithCode(
		xerrors.Errorf("connect: %w", err),
		errors.ErrConnect,
		"Cannot connect to "+target,
		ConnectHint,
	)
}

func queryError(target string, err error) error {
	if IsConnectionFailure(err) {
		return errors.WrapWithCode(
			xerrors.Errorf("query: %w", err),
			errors.ErrConnect,
			"Lost connection to "+target,
			ConnectHint,
		)
	}
	return errors.WrapWithCode(
		xerrors.Errorf("select active sessions: %w", err),
		errors.ErrQuery,
		"Session query failed",
		"",
	)
}
