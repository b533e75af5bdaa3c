package domain

import (
	"time"

	"github.com/google/uuid"
)

// Load represents a cargo load waiting for or travelling with a driver.
type Load struct {
	ID          uuid.UUID
	Origin      string
	Destination string
	CargoType   string
	Status      LoadStatus
	CreatedAt   time.Time
}

// PartialLoadUpdate carries optional fields to update a load.
// A nil field means “do not change” that attribute.
type PartialLoadUpdate struct {
	ID          uuid.UUID
	Origin      *string
	Destination *string
	CargoType   *string
	Status      *LoadStatus
}

// Empty reports whether the update changes nothing.
func (u PartialLoadUpdate) Empty() bool {
	return u.Origin == nil && u.Destination == nil && u.CargoType == nil && u.Status == nil
}
