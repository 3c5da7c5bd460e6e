package shared

import (
	"time"
)

// BaseEntity provides common fields for all entities.
// IDs are assigned by the database on insert.
type BaseEntity struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
