package kafka

import (
	"encoding/json"
	"fmt"
	"strings"

	"truck-dispatch/internal/domain"
)

// timestampLayout is RFC3339 with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Envelope is the wire form of a relayed event.
type Envelope struct {
	Type      string         `json:"type"`
	Timestamp string         `json:"timestamp"`
	Data      AssignmentData `json:"data"`
}

// AssignmentData is the payload of a LOAD_ASSIGNED event.
type AssignmentData struct {
	AssignmentID string     `json:"assignmentId"`
	DriverID     string     `json:"driverId"`
	LoadID       string     `json:"loadId"`
	Driver       *DriverDTO `json:"driver,omitempty"`
	Load         *LoadDTO   `json:"load,omitempty"`
}

// DriverDTO is the driver snapshot carried by an event.
type DriverDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
	Status        string `json:"status"`
}

// LoadDTO is the load snapshot carried by an event.
type LoadDTO struct {
	ID          string `json:"id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CargoType   string `json:"cargoType"`
	Status      string `json:"status"`
}

// FromAssignmentEvent builds the wire envelope for ev.
func FromAssignmentEvent(ev domain.AssignmentEvent) Envelope {
	a := ev.Assignment
	data := AssignmentData{
		AssignmentID: a.ID.String(),
		DriverID:     a.DriverID.String(),
		LoadID:       a.LoadID.String(),
	}
	if d := a.Driver; d != nil {
		data.Driver = &DriverDTO{
			ID:            d.ID.String(),
			Name:          d.Name,
			LicenseNumber: d.LicenseNumber,
			Status:        string(d.Status),
		}
	}
	if l := a.Load; l != nil {
		data.Load = &LoadDTO{
			ID:          l.ID.String(),
			Origin:      l.Origin,
			Destination: l.Destination,
			CargoType:   l.CargoType,
			Status:      string(l.Status),
		}
	}
	return Envelope{
		Type:      ev.Type,
		Timestamp: ev.OccurredAt.UTC().Format(timestampLayout),
		Data:      data,
	}
}

type rawEnvelope struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// ToAuditEvent parses a relayed message. The data object is kept verbatim as payload.
func ToAuditEvent(value []byte) (domain.AuditEvent, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(value, &raw); err != nil {
		return domain.AuditEvent{}, fmt.Errorf("decode envelope: %w", err)
	}
	return domain.AuditEvent{
		Type:     strings.TrimSpace(raw.Type),
		DriverID: stringField(raw.Data, "driverId"),
		LoadID:   stringField(raw.Data, "loadId"),
		Payload:  raw.Data,
	}, nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

