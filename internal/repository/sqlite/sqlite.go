package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/PONGPONGz/GearMate/internal/db"
	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

// SQLiteRepo implements repository interfaces using the internal DB wrapper.
type SQLiteRepo struct {
	conn   *db.DB
	logger *slog.Logger
}

// Ensure SQLiteRepo implements the public interfaces.
var _ repository.Store = (*SQLiteRepo)(nil)
var _ repository.ScheduleTx = (*scheduleTx)(nil)

func New(conn *db.DB, logger *slog.Logger) *SQLiteRepo {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &SQLiteRepo{conn: conn, logger: logger}
}

// tables whitelists the entities that may be referenced by a foreign key.
var tables = map[models.Entity]string{
	models.EntityDepartment:  "department",
	models.EntityStation:     "station",
	models.EntityFirefighter: "firefighter",
	models.EntityGear:        "gear",
	models.EntitySchedule:    "maintenance_schedule",
}

type rowQueryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Exists reports whether a row with the given id exists in the entity's table.
func (r *SQLiteRepo) Exists(ctx context.Context, entity models.Entity, id int64) (bool, error) {
	return exists(ctx, r.conn.GetConn(), entity, id)
}

func exists(ctx context.Context, q rowQueryer, entity models.Entity, id int64) (bool, error) {
	table, ok := tables[entity]
	if !ok {
		return false, fmt.Errorf("unknown entity %q", entity)
	}

	var found bool
	query := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = ?)`, table)
	if err := q.QueryRowContext(ctx, query, id).Scan(&found); err != nil {
		return false, fmt.Errorf("check %s %d: %w", entity, id, err)
	}

	return found, nil
}

func insert(ctx context.Context, e execer, query string, args ...any) (int64, error) {
	res, err := e.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translate(err)
	}

	return res.LastInsertId()
}

// translate maps SQLite constraint violations onto repository sentinel errors.
func translate(err error) error {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return fmt.Errorf("%w: %v", repository.ErrDuplicate, err)
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return fmt.Errorf("%w: %v", repository.ErrDanglingReference, err)
	}

	return err
}
