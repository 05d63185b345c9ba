package mock

import (
	"context"
	"slices"
	"sync"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

var _ repository.Store = (*Store)(nil)

// Store is an in-memory repository.Store for service tests. Rows are kept in
// insertion order and ids start at 1. Setting one of the Err fields makes the
// matching operation fail with that error.
type Store struct {
	mu sync.Mutex

	Departments  []models.Department
	Stations     []models.Station
	Firefighters []models.Firefighter
	Gears        []models.Gear
	Inspections  []models.Inspection
	Damage       []models.DamageReport
	Schedules    []models.MaintenanceSchedule
	Reminders    []models.MaintenanceReminder

	ExistsErr         error
	CreateErr         error
	ListErr           error
	InsertReminderErr error
}

func NewStore() *Store {
	return &Store{}
}

func (m *Store) Exists(ctx context.Context, entity models.Entity, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.exists(entity, id)
}

func (m *Store) exists(entity models.Entity, id int64) (bool, error) {
	if m.ExistsErr != nil {
		return false, m.ExistsErr
	}
	switch entity {
	case models.EntityDepartment:
		return id > 0 && int(id) <= len(m.Departments), nil
	case models.EntityStation:
		return id > 0 && int(id) <= len(m.Stations), nil
	case models.EntityFirefighter:
		return id > 0 && int(id) <= len(m.Firefighters), nil
	case models.EntityGear:
		return id > 0 && int(id) <= len(m.Gears), nil
	case models.EntitySchedule:
		return id > 0 && int(id) <= len(m.Schedules), nil
	}
	return false, nil
}

func (m *Store) CreateDepartment(ctx context.Context, d *models.Department) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	d.ID = int64(len(m.Departments) + 1)
	m.Departments = append(m.Departments, *d)
	return d.ID, nil
}

func (m *Store) ListDepartments(ctx context.Context) ([]models.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Departments), nil
}

func (m *Store) CreateStation(ctx context.Context, s *models.Station) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	s.ID = int64(len(m.Stations) + 1)
	m.Stations = append(m.Stations, *s)
	return s.ID, nil
}

func (m *Store) ListStations(ctx context.Context) ([]models.Station, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Stations), nil
}

func (m *Store) CreateFirefighter(ctx context.Context, f *models.Firefighter) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	f.ID = int64(len(m.Firefighters) + 1)
	m.Firefighters = append(m.Firefighters, *f)
	return f.ID, nil
}

func (m *Store) ListFirefighters(ctx context.Context) ([]models.Firefighter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Firefighters), nil
}

func (m *Store) FindFirefighterIDByName(ctx context.Context, name string) (*int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, f := range m.Firefighters {
		if f.Name == name {
			id := f.ID
			return &id, nil
		}
	}
	return nil, nil
}

func (m *Store) CreateGear(ctx context.Context, g *models.Gear) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	g.ID = int64(len(m.Gears) + 1)
	m.Gears = append(m.Gears, *g)
	return g.ID, nil
}

func (m *Store) SerialNumberExists(ctx context.Context, serial string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.Gears {
		if g.SerialNumber != nil && *g.SerialNumber == serial {
			return true, nil
		}
	}
	return false, nil
}

func (m *Store) ListGearViews(ctx context.Context) ([]models.GearView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.GearView, 0, len(m.Gears))
	for _, g := range m.Gears {
		out = append(out, models.GearView{Gear: g, NextMaintenanceDate: m.nextDate(g.ID)})
	}
	return out, nil
}

func (m *Store) GetGearView(ctx context.Context, id int64) (*models.GearView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	if id <= 0 || int(id) > len(m.Gears) {
		return nil, nil
	}
	return &models.GearView{Gear: m.Gears[id-1], NextMaintenanceDate: m.nextDate(id)}, nil
}

func (m *Store) nextDate(gearID int64) *models.Date {
	var next *models.Date
	for _, s := range m.Schedules {
		if s.GearID != gearID {
			continue
		}
		if next == nil || s.ScheduledDate.Before(*next) {
			d := s.ScheduledDate
			next = &d
		}
	}
	return next
}

func (m *Store) CreateInspection(ctx context.Context, i *models.Inspection) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	i.ID = int64(len(m.Inspections) + 1)
	m.Inspections = append(m.Inspections, *i)
	return i.ID, nil
}

func (m *Store) ListInspections(ctx context.Context) ([]models.Inspection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Inspections), nil
}

func (m *Store) CreateDamageReport(ctx context.Context, r *models.DamageReport) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	r.ID = int64(len(m.Damage) + 1)
	m.Damage = append(m.Damage, *r)
	return r.ID, nil
}

func (m *Store) ListDamageReports(ctx context.Context) ([]models.DamageReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Damage), nil
}

// InScheduleTx holds the store lock for the whole of fn and restores the
// schedule and reminder rows when fn fails.
func (m *Store) InScheduleTx(ctx context.Context, fn func(tx repository.ScheduleTx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	schedules, reminders := len(m.Schedules), len(m.Reminders)
	if err := fn(&scheduleTx{m: m}); err != nil {
		m.Schedules = m.Schedules[:schedules]
		m.Reminders = m.Reminders[:reminders]
		return err
	}
	return nil
}

func (m *Store) ListSchedules(ctx context.Context) ([]models.MaintenanceSchedule, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Schedules), nil
}

func (m *Store) NextMaintenanceDate(ctx context.Context, gearID int64) (*models.Date, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nextDate(gearID), nil
}

func (m *Store) CreateReminder(ctx context.Context, r *models.MaintenanceReminder) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return 0, m.CreateErr
	}
	return m.insertReminder(r)
}

func (m *Store) insertReminder(r *models.MaintenanceReminder) (int64, error) {
	if m.InsertReminderErr != nil {
		return 0, m.InsertReminderErr
	}
	r.ID = int64(len(m.Reminders) + 1)
	m.Reminders = append(m.Reminders, *r)
	return r.ID, nil
}

func (m *Store) ListReminders(ctx context.Context) ([]models.MaintenanceReminder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return slices.Clone(m.Reminders), nil
}

// scheduleTx runs against a Store whose lock is already held.
type scheduleTx struct {
	m *Store
}

func (t *scheduleTx) Exists(ctx context.Context, entity models.Entity, id int64) (bool, error) {
	return t.m.exists(entity, id)
}

func (t *scheduleTx) HasActiveSchedule(ctx context.Context, gearID int64, today models.Date) (bool, error) {
	for _, s := range t.m.Schedules {
		if s.GearID == gearID && !s.ScheduledDate.Before(today) {
			return true, nil
		}
	}
	return false, nil
}

func (t *scheduleTx) InsertSchedule(ctx context.Context, s *models.MaintenanceSchedule) (int64, error) {
	s.ID = int64(len(t.m.Schedules) + 1)
	t.m.Schedules = append(t.m.Schedules, *s)
	return s.ID, nil
}

func (t *scheduleTx) InsertReminder(ctx context.Context, r *models.MaintenanceReminder) (int64, error) {
	return t.m.insertReminder(r)
}
