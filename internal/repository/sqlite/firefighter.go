package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

func (r *SQLiteRepo) CreateFirefighter(ctx context.Context, f *models.Firefighter) (int64, error) {
	if f == nil {
		return 0, fmt.Errorf("firefighter is nil")
	}

	return insert(ctx, r.conn.GetConn(),
		`INSERT INTO firefighter (name, ranks, email, phone, station_id, department_id) VALUES (?, ?, ?, ?, ?, ?)`,
		f.Name, f.Rank, f.Email, f.Phone, f.StationID, f.DepartmentID)
}

func (r *SQLiteRepo) ListFirefighters(ctx context.Context) ([]models.Firefighter, error) {
	out := []models.Firefighter{}
	if err := r.conn.Select(ctx, &out, `SELECT id, name, ranks, email, phone, station_id, department_id FROM firefighter ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list firefighters: %w", err)
	}

	return out, nil
}

func (r *SQLiteRepo) FindFirefighterIDByName(ctx context.Context, name string) (*int64, error) {
	var id int64
	err := r.conn.QueryRow(ctx, `SELECT id FROM firefighter WHERE name = ? ORDER BY id LIMIT 1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find firefighter by name: %w", err)
	}

	return &id, nil
}
