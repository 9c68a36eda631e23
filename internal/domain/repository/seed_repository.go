package repository

import (
	"context"

	"mados/internal/domain/entity"
)

// SeedRepository loads the dataset the in-memory state starts from. It is
// read once at startup and never written back.
type SeedRepository interface {
	Load(ctx context.Context) (entity.Dataset, error)
}
