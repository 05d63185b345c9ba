package sqlite

import (
	"context"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

func (r *SQLiteRepo) CreateReminder(ctx context.Context, m *models.MaintenanceReminder) (int64, error) {
	return insertReminder(ctx, r.conn.GetConn(), m)
}

func insertReminder(ctx context.Context, e execer, m *models.MaintenanceReminder) (int64, error) {
	if m == nil {
		return 0, fmt.Errorf("reminder is nil")
	}

	return insert(ctx, e,
		`INSERT INTO maintenance_reminder (gear_id, schedule_id, reminder_date, reminder_time, message, sent) VALUES (?, ?, ?, ?, ?, ?)`,
		m.GearID, m.ScheduleID, m.ReminderDate, m.ReminderTime, m.Message, m.Sent)
}

func (r *SQLiteRepo) ListReminders(ctx context.Context) ([]models.MaintenanceReminder, error) {
	out := []models.MaintenanceReminder{}
	if err := r.conn.Select(ctx, &out, `SELECT id, gear_id, schedule_id, reminder_date, reminder_time, message, sent FROM maintenance_reminder ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	return out, nil
}
