package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

// scheduleTx binds the schedule operations to a single transaction.
type scheduleTx struct {
	tx *sqlx.Tx
}

// InScheduleTx runs fn inside one transaction. With the connection opened in
// _txlock=immediate mode the write lock is taken at BEGIN, so a concurrent
// caller waits and then observes whatever this transaction committed.
func (r *SQLiteRepo) InScheduleTx(ctx context.Context, fn func(tx repository.ScheduleTx) error) error {
	return r.conn.WithTx(ctx, func(tx *sqlx.Tx) error {
		return fn(&scheduleTx{tx: tx})
	})
}

func (s *scheduleTx) Exists(ctx context.Context, entity models.Entity, id int64) (bool, error) {
	return exists(ctx, s.tx, entity, id)
}

// HasActiveSchedule reports whether gearID has a schedule dated today or later.
func (s *scheduleTx) HasActiveSchedule(ctx context.Context, gearID int64, today models.Date) (bool, error) {
	var found bool
	err := s.tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM maintenance_schedule WHERE gear_id = ? AND scheduled_date >= ?)`,
		gearID, today).Scan(&found)
	if err != nil {
		return false, fmt.Errorf("check active schedule: %w", err)
	}

	return found, nil
}

func (s *scheduleTx) InsertSchedule(ctx context.Context, m *models.MaintenanceSchedule) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("schedule is nil")
	}

	return insert(ctx, s.tx, `INSERT INTO maintenance_schedule (gear_id, scheduled_date, scheduled_time) VALUES (?, ?, ?)`,
		m.GearID, m.ScheduledDate, m.ScheduledTime)
}

func (s *scheduleTx) InsertReminder(ctx context.Context, m *models.MaintenanceReminder) (int64, error) {
	return insertReminder(ctx, s.tx, m)
}

func (r *SQLiteRepo) ListSchedules(ctx context.Context) ([]models.MaintenanceSchedule, error) {
	out := []models.MaintenanceSchedule{}
	if err := r.conn.Select(ctx, &out, `SELECT id, gear_id, scheduled_date, scheduled_time FROM maintenance_schedule ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}

	return out, nil
}

// NextMaintenanceDate returns MIN(scheduled_date) for the gear, or nil when it has no schedules.
func (r *SQLiteRepo) NextMaintenanceDate(ctx context.Context, gearID int64) (*models.Date, error) {
	var next *models.Date
	if err := r.conn.QueryRow(ctx, `SELECT MIN(scheduled_date) FROM maintenance_schedule WHERE gear_id = ?`, gearID).Scan(&next); err != nil {
		return nil, fmt.Errorf("next maintenance date: %w", err)
	}

	return next, nil
}
