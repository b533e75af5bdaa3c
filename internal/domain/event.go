package domain

import "time"

// EventLoadAssigned is the type of the event emitted after a successful assignment.
const EventLoadAssigned = "LOAD_ASSIGNED"

// AssignmentEvent is published to downstream subscribers once an assignment commits.
type AssignmentEvent struct {
	Type       string
	OccurredAt time.Time
	Assignment Assignment
}

// AuditEvent is a relayed event as seen by the audit consumer.
// Payload keeps the raw event data untouched.
type AuditEvent struct {
	Type     string
	DriverID string
	LoadID   string
	Payload  map[string]any
}

// AuditRecord is a persisted audit entry.
type AuditRecord struct {
	Type       string
	DriverID   string
	LoadID     string
	Payload    map[string]any
	ReceivedAt time.Time
}
