package handlers

import "time"

type driverDTO struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"licenseNumber"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type createDriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"licenseNumber"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type loadDTO struct {
	ID          string    `json:"id"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	CargoType   string    `json:"cargoType"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

type createLoadRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	CargoType   string `json:"cargoType"`
}

type updateLoadRequest struct {
	Origin      *string `json:"origin,omitempty"`
	Destination *string `json:"destination,omitempty"`
	CargoType   *string `json:"cargoType,omitempty"`
	Status      *string `json:"status,omitempty"`
}

type assignmentDTO struct {
	ID          string     `json:"id"`
	DriverID    string     `json:"driverId"`
	LoadID      string     `json:"loadId"`
	Status      string     `json:"status"`
	AssignedAt  time.Time  `json:"assignedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	Driver      *driverDTO `json:"driver,omitempty"`
	Load        *loadDTO   `json:"load,omitempty"`
}

type createAssignmentRequest struct {
	DriverID string `json:"driverId"`
	LoadID   string `json:"loadId"`
}
