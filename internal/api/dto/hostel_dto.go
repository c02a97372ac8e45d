package dto

// RoomRequest payload for room creation.
type RoomRequest struct {
	Number   string  `json:"number"`
	Block    string  `json:"block"`
	Capacity int     `json:"capacity"`
	Rent     float64 `json:"rent"`
}

// AllocationRequest payload for assigning a room.
type AllocationRequest struct {
	RoomID    string `json:"room_id"`
	StudentID string `json:"student_id"`
}

// MaintenanceRequest payload for reporting an issue.
type MaintenanceRequest struct {
	RoomID      string `json:"room_id"`
	Description string `json:"description"`
}
