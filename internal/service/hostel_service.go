package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/campusconnect/campus-service/internal/auth"
	"github.com/campusconnect/campus-service/internal/domain"
	"github.com/campusconnect/campus-service/internal/repository"
	apperrors "github.com/campusconnect/campus-service/pkg/util"
)

// HostelService manages rooms, allocations and maintenance for the caller's
// campus.
type HostelService struct {
	repo repository.HostelRepository
}

// NewHostelService builds the service.
func NewHostelService(repo repository.HostelRepository) *HostelService {
	return &HostelService{repo: repo}
}

// RoomInput carries room creation fields.
type RoomInput struct {
	Number   string
	Block    string
	Capacity int
	Rent     float64
}

// CreateRoom adds a room to the caller's campus.
func (s *HostelService) CreateRoom(ctx context.Context, principal *auth.Principal, input RoomInput) (*domain.Room, error) {
	if input.Capacity <= 0 {
		return nil, apperrors.NewValidationError("capacity must be positive", nil)
	}
	room := &domain.Room{
		Number:   input.Number,
		Block:    input.Block,
		Capacity: input.Capacity,
		Occupied: 0,
		Rent:     input.Rent,
		CampusID: principal.CampusID,
	}
	if err := s.repo.CreateRoom(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// ListRooms returns the caller's campus rooms.
func (s *HostelService) ListRooms(ctx context.Context, principal *auth.Principal) ([]domain.Room, error) {
	return s.repo.ListRooms(ctx, principal.CampusID)
}

// AllocateRoom assigns a student to a room with free capacity.
func (s *HostelService) AllocateRoom(ctx context.Context, principal *auth.Principal, roomID, studentID string) (*domain.RoomAllocation, error) {
	room, err := s.repo.GetRoom(ctx, roomID, principal.CampusID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("room", nil)
		}
		return nil, err
	}
	if room.Occupied >= room.Capacity {
		return nil, apperrors.NewConflict("room is full", map[string]any{"room_id": roomID})
	}

	allocation := &domain.RoomAllocation{
		RoomID:     room.ID,
		RoomNumber: room.Number,
		StudentID:  studentID,
		Status:     domain.AllocationStatusActive,
		CampusID:   principal.CampusID,
	}
	if err := s.repo.CreateAllocation(ctx, allocation); err != nil {
		return nil, err
	}
	if err := s.repo.IncrementOccupied(ctx, room.ID, principal.CampusID, 1); err != nil {
		return nil, err
	}
	return allocation, nil
}

// ListAllocations returns the caller's campus allocations.
func (s *HostelService) ListAllocations(ctx context.Context, principal *auth.Principal) ([]domain.RoomAllocation, error) {
	return s.repo.ListAllocations(ctx, principal.CampusID)
}

// ReportMaintenance files a maintenance request against a room of the
// caller's campus.
func (s *HostelService) ReportMaintenance(ctx context.Context, principal *auth.Principal, roomID, description string) (*domain.MaintenanceRequest, error) {
	if _, err := s.repo.GetRoom(ctx, roomID, principal.CampusID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("room", nil)
		}
		return nil, err
	}

	request := &domain.MaintenanceRequest{
		RoomID:      roomID,
		Description: description,
		Status:      domain.MaintenanceStatusOpen,
		CampusID:    principal.CampusID,
	}
	if err := s.repo.CreateMaintenanceRequest(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListMaintenance returns the caller's campus maintenance requests.
func (s *HostelService) ListMaintenance(ctx context.Context, principal *auth.Principal) ([]domain.MaintenanceRequest, error) {
	return s.repo.ListMaintenanceRequests(ctx, principal.CampusID)
}
