package repository

import (
	"context"
	"errors"

	"github.com/PONGPONGz/GearMate/internal/models"
)

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

var (
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate value")
	// ErrDanglingReference is returned when the storage engine rejects a foreign key.
	ErrDanglingReference = errors.New("foreign key does not resolve")
)

// Exister answers whether row id of the given entity exists.
type Exister interface {
	Exists(ctx context.Context, entity models.Entity, id int64) (bool, error)
}

type DepartmentRepo interface {
	CreateDepartment(ctx context.Context, d *models.Department) (int64, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
}

type StationRepo interface {
	CreateStation(ctx context.Context, s *models.Station) (int64, error)
	ListStations(ctx context.Context) ([]models.Station, error)
}

type FirefighterRepo interface {
	CreateFirefighter(ctx context.Context, f *models.Firefighter) (int64, error)
	ListFirefighters(ctx context.Context) ([]models.Firefighter, error)
	// FindFirefighterIDByName returns the lowest id with exactly that name, or nil.
	FindFirefighterIDByName(ctx context.Context, name string) (*int64, error)
}

type GearRepo interface {
	CreateGear(ctx context.Context, g *models.Gear) (int64, error)
	SerialNumberExists(ctx context.Context, serial string) (bool, error)
	// ListGearViews returns every gear with its aggregated next maintenance date, ordered by id.
	ListGearViews(ctx context.Context) ([]models.GearView, error)
	GetGearView(ctx context.Context, id int64) (*models.GearView, error)
}

type InspectionRepo interface {
	CreateInspection(ctx context.Context, i *models.Inspection) (int64, error)
	ListInspections(ctx context.Context) ([]models.Inspection, error)
}

type DamageReportRepo interface {
	CreateDamageReport(ctx context.Context, r *models.DamageReport) (int64, error)
	ListDamageReports(ctx context.Context) ([]models.DamageReport, error)
}

// ScheduleTx is the set of operations available inside a schedule transaction.
type ScheduleTx interface {
	Exister
	HasActiveSchedule(ctx context.Context, gearID int64, today models.Date) (bool, error)
	InsertSchedule(ctx context.Context, s *models.MaintenanceSchedule) (int64, error)
	InsertReminder(ctx context.Context, r *models.MaintenanceReminder) (int64, error)
}

type ScheduleRepo interface {
	// InScheduleTx runs fn in a single write transaction; any error rolls back every write made through tx.
	InScheduleTx(ctx context.Context, fn func(tx ScheduleTx) error) error
	ListSchedules(ctx context.Context) ([]models.MaintenanceSchedule, error)
	NextMaintenanceDate(ctx context.Context, gearID int64) (*models.Date, error)
}

type ReminderRepo interface {
	CreateReminder(ctx context.Context, r *models.MaintenanceReminder) (int64, error)
	ListReminders(ctx context.Context) ([]models.MaintenanceReminder, error)
}

// Store aggregates every repository; SQLiteRepo implements it.
type Store interface {
	Exister
	DepartmentRepo
	StationRepo
	FirefighterRepo
	GearRepo
	InspectionRepo
	DamageReportRepo
	ScheduleRepo
	ReminderRepo
}
