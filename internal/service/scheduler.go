package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

// Scheduler creates maintenance schedules. A gear may hold at most one active
// schedule (scheduled_date >= today); every schedule is written together with
// a reminder carrying the same gear, date and time.
type Scheduler struct {
	repo   repository.ScheduleRepo
	loc    *time.Location
	now    func() time.Time
	locks  *keyedMutex
	logger *slog.Logger
}

// NewScheduler returns a Scheduler evaluating "today" in loc (UTC when nil).
func NewScheduler(repo repository.ScheduleRepo, loc *time.Location, logger *slog.Logger) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Scheduler{repo: repo, loc: loc, now: time.Now, locks: newKeyedMutex(), logger: logger}
}

// SetClock replaces the time source. Passing nil is a no-op.
func (s *Scheduler) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// Today is the current calendar day in the scheduler's location.
func (s *Scheduler) Today() models.Date {
	return models.DateOf(s.now().In(s.loc))
}

// ReminderMessage is the text stored on schedule-derived reminders.
func ReminderMessage(gearID int64) string {
	return fmt.Sprintf("Maintenance scheduled for gear %d", gearID)
}

// CreateSchedule stores a schedule for gearID and its reminder in one
// transaction. at defaults to midnight. It fails with a reference error when
// the gear does not exist and with a conflict error when the gear already has
// an active schedule; in both cases nothing is written.
func (s *Scheduler) CreateSchedule(ctx context.Context, gearID int64, date models.Date, at *models.Clock) (*models.MaintenanceSchedule, *models.MaintenanceReminder, error) {
	if date.IsZero() {
		return nil, nil, ValidationError("scheduled_date is required")
	}
	if gearID == 0 {
		return nil, nil, ValidationError("gear_id is required")
	}

	clock := models.Midnight
	if at != nil {
		clock = *at
	}

	// read once so every check in this call agrees on the boundary
	today := s.Today()

	unlock := s.locks.Lock(gearID)
	defer unlock()

	schedule := &models.MaintenanceSchedule{GearID: gearID, ScheduledDate: date, ScheduledTime: clock}
	var reminder *models.MaintenanceReminder

	err := s.repo.InScheduleTx(ctx, func(tx repository.ScheduleTx) error {
		if err := NewChecker(tx).Required(ctx, models.EntityGear, gearID, "gear_id"); err != nil {
			return err
		}

		active, err := tx.HasActiveSchedule(ctx, gearID, today)
		if err != nil {
			return StorageError("check active schedule", err)
		}
		if active {
			return ConflictError("gear %d already has a pending schedule", gearID)
		}

		id, err := tx.InsertSchedule(ctx, schedule)
		if err != nil {
			return StorageError("insert schedule", err)
		}
		schedule.ID = id

		scheduleID := id
		reminderDate := schedule.ScheduledDate
		reminderTime := schedule.ScheduledTime
		msg := ReminderMessage(gearID)
		reminder = &models.MaintenanceReminder{
			GearID:       gearID,
			ScheduleID:   &scheduleID,
			ReminderDate: &reminderDate,
			ReminderTime: &reminderTime,
			Message:      &msg,
		}
		rid, err := tx.InsertReminder(ctx, reminder)
		if err != nil {
			return StorageError("insert reminder", err)
		}
		reminder.ID = rid

		return nil
	})
	if err != nil {
		switch KindOf(err) {
		case KindStorage:
			if !IsKind(err, KindStorage) {
				err = StorageError("schedule transaction", err)
			}
			s.logger.Error("create schedule failed", "gear_id", gearID, "err", err)
		default:
			s.logger.Warn("create schedule rejected", "gear_id", gearID, "kind", KindOf(err), "err", err)
		}
		return nil, nil, err
	}

	s.logger.Info("maintenance scheduled",
		"gear_id", gearID,
		"schedule_id", schedule.ID,
		"reminder_id", reminder.ID,
		"date", schedule.ScheduledDate.String(),
	)
	return schedule, reminder, nil
}

func (s *Scheduler) ListSchedules(ctx context.Context) ([]models.MaintenanceSchedule, error) {
	out, err := s.repo.ListSchedules(ctx)
	if err != nil {
		return nil, classifyStoreErr(s.logger, "list schedules", err)
	}
	return out, nil
}
