package sqlite

import (
	"context"
	"fmt"

	"github.com/PONGPONGz/GearMate/internal/models"
)

func (r *SQLiteRepo) CreateDepartment(ctx context.Context, d *models.Department) (int64, error) {
	if d == nil {
		return 0, fmt.Errorf("department is nil")
	}

	return insert(ctx, r.conn.GetConn(), `INSERT INTO department (department_name, location) VALUES (?, ?)`, d.Name, d.Location)
}

func (r *SQLiteRepo) ListDepartments(ctx context.Context) ([]models.Department, error) {
	out := []models.Department{}
	if err := r.conn.Select(ctx, &out, `SELECT id, department_name, location FROM department ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}

	return out, nil
}
