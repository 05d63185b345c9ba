package models

// Entity names a row set that other rows may reference by id.
type Entity string

const (
	EntityDepartment  Entity = "department"
	EntityStation     Entity = "station"
	EntityFirefighter Entity = "firefighter"
	EntityGear        Entity = "gear"
	EntitySchedule    Entity = "maintenance_schedule"
)

// Domain models matching the database schema in db/migrations/0001_init.sql.
// Optional columns are pointers so that NULL round-trips as JSON null.

type Department struct {
	ID       int64   `json:"id" db:"id"`
	Name     string  `json:"department_name" db:"department_name"`
	Location *string `json:"location" db:"location"`
}

type Station struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Location     *string `json:"location" db:"location"`
	DepartmentID *int64  `json:"department_id" db:"department_id"`
}

type Firefighter struct {
	ID           int64   `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	Rank         *string `json:"ranks" db:"ranks"`
	Email        *string `json:"email" db:"email"`
	Phone        *string `json:"phone" db:"phone"`
	StationID    *int64  `json:"station_id" db:"station_id"`
	DepartmentID *int64  `json:"department_id" db:"department_id"`
}

type Gear struct {
	ID            int64   `json:"id" db:"id"`
	StationID     int64   `json:"station_id" db:"station_id"`
	Name          string  `json:"gear_name" db:"gear_name"`
	SerialNumber  *string `json:"serial_number" db:"serial_number"`
	PhotoURL      *string `json:"photo_url" db:"photo_url"`
	EquipmentType *string `json:"equipment_type" db:"equipment_type"`
	PurchaseDate  *Date   `json:"purchase_date" db:"purchase_date"`
	ExpiryDate    *Date   `json:"expiry_date" db:"expiry_date"`
	Status        *string `json:"status" db:"status"`
}

// GearView is a gear annotated with the earliest scheduled maintenance date
// over all of its schedules. NextMaintenanceDate is nil when none exist.
type GearView struct {
	Gear
	NextMaintenanceDate *Date `json:"next_maintenance_date" db:"next_maintenance_date"`
}

type Inspection struct {
	ID             int64   `json:"id" db:"id"`
	GearID         int64   `json:"gear_id" db:"gear_id"`
	InspectionDate *Date   `json:"inspection_date" db:"inspection_date"`
	InspectorID    *int64  `json:"inspector_id" db:"inspector_id"`
	InspectionType *string `json:"inspection_type" db:"inspection_type"`
	ConditionNotes *string `json:"condition_notes" db:"condition_notes"`
	Result         *string `json:"result" db:"result"`
}

type MaintenanceSchedule struct {
	ID            int64 `json:"id" db:"id"`
	GearID        int64 `json:"gear_id" db:"gear_id"`
	ScheduledDate Date  `json:"scheduled_date" db:"scheduled_date"`
	ScheduledTime Clock `json:"scheduled_time" db:"scheduled_time"`
}

type MaintenanceReminder struct {
	ID           int64   `json:"id" db:"id"`
	GearID       int64   `json:"gear_id" db:"gear_id"`
	ScheduleID   *int64  `json:"schedule_id" db:"schedule_id"`
	ReminderDate *Date   `json:"reminder_date" db:"reminder_date"`
	ReminderTime *Clock  `json:"reminder_time" db:"reminder_time"`
	Message      *string `json:"message" db:"message"`
	Sent         bool    `json:"sent" db:"sent"`
}

type DamageReport struct {
	ID         int64   `json:"id" db:"id"`
	GearID     int64   `json:"gear_id" db:"gear_id"`
	ReporterID *int64  `json:"reporter_id" db:"reporter_id"`
	ReportDate *Date   `json:"report_date" db:"report_date"`
	Notes      *string `json:"notes" db:"notes"`
	PhotoURL   *string `json:"photo_url" db:"photo_url"`
	Status     *string `json:"status" db:"status"`
}
