package domain

import "time"

// Room is a hostel room with a fixed capacity.
type Room struct {
	ID        string
	Number    string
	Block     string
	Capacity  int
	Occupied  int
	Rent      float64
	CampusID  string
	CreatedAt time.Time
}

// AllocationStatus tracks whether an allocation is current.
type AllocationStatus string

const (
	AllocationStatusActive  AllocationStatus = "active"
	AllocationStatusVacated AllocationStatus = "vacated"
)

// RoomAllocation assigns a student to a room.
type RoomAllocation struct {
	ID          string
	RoomID      string
	RoomNumber  string
	StudentID   string
	Status      AllocationStatus
	CampusID    string
	AllocatedAt time.Time
}

// MaintenanceStatus tracks resolution of a maintenance request.
type MaintenanceStatus string

const (
	MaintenanceStatusOpen     MaintenanceStatus = "open"
	MaintenanceStatusResolved MaintenanceStatus = "resolved"
)

// MaintenanceRequest is a reported issue against a room.
type MaintenanceRequest struct {
	ID          string
	RoomID      string
	Description string
	Status      MaintenanceStatus
	CampusID    string
	ReportedAt  time.Time
}
