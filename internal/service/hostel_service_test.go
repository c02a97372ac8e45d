package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/campusconnect/campus-service/internal/domain"
)

type memoryHostelRepo struct {
	rooms       map[string]*domain.Room
	allocations []domain.RoomAllocation
	maintenance []domain.MaintenanceRequest
	nextID      int
}

func newMemoryHostelRepo() *memoryHostelRepo {
	return &memoryHostelRepo{rooms: make(map[string]*domain.Room)}
}

func (m *memoryHostelRepo) id() string {
	m.nextID++
	return fmt.Sprintf("hostel-%d", m.nextID)
}

func (m *memoryHostelRepo) CreateRoom(_ context.Context, room *domain.Room) error {
	room.ID = m.id()
	copied := *room
	m.rooms[room.ID] = &copied
	return nil
}

func (m *memoryHostelRepo) ListRooms(_ context.Context, campusID string) ([]domain.Room, error) {
	var out []domain.Room
	for _, room := range m.rooms {
		if room.CampusID == campusID {
			out = append(out, *room)
		}
	}
	return out, nil
}

func (m *memoryHostelRepo) GetRoom(_ context.Context, id, campusID string) (*domain.Room, error) {
	room, ok := m.rooms[id]
	if !ok || room.CampusID != campusID {
		return nil, pgx.ErrNoRows
	}
	copied := *room
	return &copied, nil
}

func (m *memoryHostelRepo) IncrementOccupied(_ context.Context, id, campusID string, delta int) error {
	room, ok := m.rooms[id]
	if !ok || room.CampusID != campusID {
		return pgx.ErrNoRows
	}
	room.Occupied += delta
	return nil
}

func (m *memoryHostelRepo) CreateAllocation(_ context.Context, allocation *domain.RoomAllocation) error {
	allocation.ID = m.id()
	m.allocations = append(m.allocations, *allocation)
	return nil
}

func (m *memoryHostelRepo) ListAllocations(_ context.Context, campusID string) ([]domain.RoomAllocation, error) {
	var out []domain.RoomAllocation
	for _, a := range m.allocations {
		if a.CampusID == campusID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memoryHostelRepo) CreateMaintenanceRequest(_ context.Context, request *domain.MaintenanceRequest) error {
	request.ID = m.id()
	m.maintenance = append(m.maintenance, *request)
	return nil
}

func (m *memoryHostelRepo) ListMaintenanceRequests(_ context.Context, campusID string) ([]domain.MaintenanceRequest, error) {
	var out []domain.MaintenanceRequest
	for _, r := range m.maintenance {
		if r.CampusID == campusID {
			out = append(out, r)
		}
	}
	return out, nil
}

func TestAllocateRoomUntilFull(t *testing.T) {
	repo := newMemoryHostelRepo()
	svc := NewHostelService(repo)
	principal := staffPrincipal("CAMPUS_A")
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, principal, RoomInput{Number: "A-101", Block: "A", Capacity: 2, Rent: 1200})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.AllocateRoom(ctx, principal, room.ID, fmt.Sprintf("student-%d", i)); err != nil {
			t.Fatalf("allocation %d: %v", i, err)
		}
	}

	_, err = svc.AllocateRoom(ctx, principal, room.ID, "student-overflow")
	if errorCode(t, err) != "CONFLICT" {
		t.Fatalf("expected CONFLICT when room is full")
	}

	allocations, err := svc.ListAllocations(ctx, principal)
	if err != nil {
		t.Fatalf("list allocations: %v", err)
	}
	if len(allocations) != 2 {
		t.Fatalf("expected 2 allocations, got %d", len(allocations))
	}
}

func TestCreateRoomValidation(t *testing.T) {
	svc := NewHostelService(newMemoryHostelRepo())

	_, err := svc.CreateRoom(context.Background(), staffPrincipal("CAMPUS_A"), RoomInput{Number: "B-1", Capacity: 0})
	if errorCode(t, err) != "VALIDATION_FAILED" {
		t.Fatal("expected VALIDATION_FAILED for zero capacity")
	}
}

func TestMaintenanceRequiresLocalRoom(t *testing.T) {
	repo := newMemoryHostelRepo()
	svc := NewHostelService(repo)
	ctx := context.Background()

	room, err := svc.CreateRoom(ctx, staffPrincipal("CAMPUS_A"), RoomInput{Number: "C-1", Capacity: 1})
	if err != nil {
		t.Fatalf("create room: %v", err)
	}

	request, err := svc.ReportMaintenance(ctx, staffPrincipal("CAMPUS_A"), room.ID, "leaking tap")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if request.Status != domain.MaintenanceStatusOpen {
		t.Errorf("new request must be open, got %s", request.Status)
	}

	if _, err := svc.ReportMaintenance(ctx, staffPrincipal("CAMPUS_B"), room.ID, "x"); errorCode(t, err) != "NOT_FOUND" {
		t.Error("expected NOT_FOUND for another campus's room")
	}
}
