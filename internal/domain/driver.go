package domain

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a transport driver.
type Driver struct {
	ID            uuid.UUID
	Name          string
	LicenseNumber string
	Status        DriverStatus
	CreatedAt     time.Time
}
