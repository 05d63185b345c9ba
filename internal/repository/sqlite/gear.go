package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

// gearViewSelect annotates each gear with MIN(scheduled_date) over all of its
// schedules, past and future. Dates are ISO text so MIN is chronological.
const gearViewSelect = `SELECT g.id, g.station_id, g.gear_name, g.serial_number, g.photo_url, g.equipment_type,
	g.purchase_date, g.expiry_date, g.status,
	(SELECT MIN(s.scheduled_date) FROM maintenance_schedule s WHERE s.gear_id = g.id) AS next_maintenance_date
FROM gear g`

func (r *SQLiteRepo) CreateGear(ctx context.Context, g *models.Gear) (int64, error) {
	if g == nil {
		return 0, fmt.Errorf("gear is nil")
	}

	return insert(ctx, r.conn.GetConn(),
		`INSERT INTO gear (station_id, gear_name, serial_number, photo_url, equipment_type, purchase_date, expiry_date, status) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.StationID, g.Name, g.SerialNumber, g.PhotoURL, g.EquipmentType, g.PurchaseDate, g.ExpiryDate, g.Status)
}

func (r *SQLiteRepo) SerialNumberExists(ctx context.Context, serial string) (bool, error) {
	var found bool
	if err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM gear WHERE serial_number = ?)`, serial).Scan(&found); err != nil {
		return false, fmt.Errorf("check serial number: %w", err)
	}

	return found, nil
}

func (r *SQLiteRepo) ListGearViews(ctx context.Context) ([]models.GearView, error) {
	out := []models.GearView{}
	if err := r.conn.Select(ctx, &out, gearViewSelect+` ORDER BY g.id`); err != nil {
		return nil, fmt.Errorf("list gears: %w", err)
	}

	return out, nil
}

func (r *SQLiteRepo) GetGearView(ctx context.Context, id int64) (*models.GearView, error) {
	var g models.GearView
	if err := r.conn.Get(ctx, &g, gearViewSelect+` WHERE g.id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gear %d: %w", id, err)
	}

	return &g, nil
}
