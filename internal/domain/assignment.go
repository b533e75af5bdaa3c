package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a driver to a load.
// Driver and Load are snapshots filled when read with relations.
type Assignment struct {
	ID          uuid.UUID
	DriverID    uuid.UUID
	LoadID      uuid.UUID
	Status      AssignmentStatus
	AssignedAt  time.Time
	CompletedAt *time.Time

	Driver *Driver
	Load   *Load
}
