package domain

type (
	// DriverStatus represents the status of a driver.
	DriverStatus string
	// LoadStatus represents the status of a cargo load.
	LoadStatus string
	// AssignmentStatus represents the status of a driver-load assignment.
	AssignmentStatus string
)

// List of possible driver statuses
const (
	DriverAvailable DriverStatus = "AVAILABLE"
	DriverBusy      DriverStatus = "BUSY"
	DriverInactive  DriverStatus = "INACTIVE"
)

// List of possible load statuses
const (
	LoadPending   LoadStatus = "PENDING"
	LoadAssigned  LoadStatus = "ASSIGNED"
	LoadInTransit LoadStatus = "IN_TRANSIT"
	LoadDelivered LoadStatus = "DELIVERED"
	LoadCancelled LoadStatus = "CANCELLED"
)

// List of possible assignment statuses
const (
	AssignmentAssigned  AssignmentStatus = "ASSIGNED"
	AssignmentCompleted AssignmentStatus = "COMPLETED"
	AssignmentCancelled AssignmentStatus = "CANCELLED"
)

var allowedDriverStatuses = [...]DriverStatus{
	DriverAvailable, DriverBusy, DriverInactive,
}

var allowedLoadStatuses = [...]LoadStatus{
	LoadPending, LoadAssigned, LoadInTransit, LoadDelivered, LoadCancelled,
}

var allowedAssignmentStatuses = [...]AssignmentStatus{
	AssignmentAssigned, AssignmentCompleted, AssignmentCancelled,
}

// Valid checks if the DriverStatus is valid
func (s DriverStatus) Valid() bool {
	for _, v := range allowedDriverStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the LoadStatus is valid
func (s LoadStatus) Valid() bool {
	for _, v := range allowedLoadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the AssignmentStatus is valid
func (s AssignmentStatus) Valid() bool {
	for _, v := range allowedAssignmentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the assignment no longer holds its driver.
func (s AssignmentStatus) Terminal() bool {
	return s == AssignmentCompleted || s == AssignmentCancelled
}

// Release describes the driver and load statuses that follow an assignment transition.
// ok is false when the transition has no side effect on driver or load.
func (s AssignmentStatus) Release() (driver DriverStatus, load LoadStatus, ok bool) {
	switch s {
	case AssignmentCompleted:
		return DriverAvailable, LoadDelivered, true
	case AssignmentCancelled:
		return DriverAvailable, LoadCancelled, true
	default:
		return "", "", false
	}
}
