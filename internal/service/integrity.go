package service

import (
	"context"

	"github.com/PONGPONGz/GearMate/internal/models"
	"github.com/PONGPONGz/GearMate/pkg/repository"
)

// Checker validates foreign keys against existing rows before a dependent
// row is written. Negative and unknown ids fail the same way.
type Checker struct {
	exister repository.Exister
}

func NewChecker(e repository.Exister) *Checker {
	return &Checker{exister: e}
}

// Optional accepts a nil id; otherwise id must name an existing row.
func (c *Checker) Optional(ctx context.Context, entity models.Entity, id *int64) error {
	if id == nil {
		return nil
	}
	return c.resolve(ctx, entity, *id)
}

// Required rejects a missing (zero) id as a validation failure, then resolves it.
func (c *Checker) Required(ctx context.Context, entity models.Entity, id int64, field string) error {
	if id == 0 {
		return ValidationError("%s is required", field)
	}
	return c.resolve(ctx, entity, id)
}

func (c *Checker) resolve(ctx context.Context, entity models.Entity, id int64) error {
	if id <= 0 {
		return ReferenceError(entity, id)
	}

	ok, err := c.exister.Exists(ctx, entity, id)
	if err != nil {
		return StorageError("check reference", err)
	}
	if !ok {
		return ReferenceError(entity, id)
	}

	return nil
}
