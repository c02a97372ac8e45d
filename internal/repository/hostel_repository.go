package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusconnect/campus-service/internal/domain"
)

// HostelRepository persists rooms, allocations and maintenance requests,
// campus-scoped throughout.
type HostelRepository interface {
	CreateRoom(ctx context.Context, room *domain.Room) error
	ListRooms(ctx context.Context, campusID string) ([]domain.Room, error)
	GetRoom(ctx context.Context, id, campusID string) (*domain.Room, error)
	IncrementOccupied(ctx context.Context, id, campusID string, delta int) error
	CreateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error
	ListAllocations(ctx context.Context, campusID string) ([]domain.RoomAllocation, error)
	CreateMaintenanceRequest(ctx context.Context, request *domain.MaintenanceRequest) error
	ListMaintenanceRequests(ctx context.Context, campusID string) ([]domain.MaintenanceRequest, error)
}

type hostelRepository struct {
	pool *pgxpool.Pool
}

// NewHostelRepository returns a Postgres-backed implementation.
func NewHostelRepository(pool *pgxpool.Pool) HostelRepository {
	return &hostelRepository{pool: pool}
}

func (r *hostelRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	const query = `
        INSERT INTO rooms (number, block, capacity, occupied, rent, campus_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		room.Number,
		room.Block,
		room.Capacity,
		room.Occupied,
		room.Rent,
		room.CampusID,
	).Scan(&room.ID, &room.CreatedAt)
}

func (r *hostelRepository) ListRooms(ctx context.Context, campusID string) ([]domain.Room, error) {
	const query = `
        SELECT id, number, block, capacity, occupied, rent, campus_id, created_at
        FROM rooms WHERE campus_id=$1 ORDER BY block, number`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.Number, &rm.Block, &rm.Capacity, &rm.Occupied, &rm.Rent, &rm.CampusID, &rm.CreatedAt); err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *hostelRepository) GetRoom(ctx context.Context, id, campusID string) (*domain.Room, error) {
	const query = `
        SELECT id, number, block, capacity, occupied, rent, campus_id, created_at
        FROM rooms WHERE id=$1 AND campus_id=$2`

	var rm domain.Room
	if err := r.pool.QueryRow(ctx, query, id, campusID).Scan(
		&rm.ID, &rm.Number, &rm.Block, &rm.Capacity, &rm.Occupied, &rm.Rent, &rm.CampusID, &rm.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *hostelRepository) IncrementOccupied(ctx context.Context, id, campusID string, delta int) error {
	const query = `
        UPDATE rooms SET occupied = occupied + $1
        WHERE id=$2 AND campus_id=$3`

	cmd, err := r.pool.Exec(ctx, query, delta, id, campusID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *hostelRepository) CreateAllocation(ctx context.Context, allocation *domain.RoomAllocation) error {
	const query = `
        INSERT INTO room_allocations (room_id, room_number, student_id, status, campus_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, allocated_at`

	return r.pool.QueryRow(ctx, query,
		allocation.RoomID,
		allocation.RoomNumber,
		allocation.StudentID,
		allocation.Status,
		allocation.CampusID,
	).Scan(&allocation.ID, &allocation.AllocatedAt)
}

func (r *hostelRepository) ListAllocations(ctx context.Context, campusID string) ([]domain.RoomAllocation, error) {
	const query = `
        SELECT id, room_id, room_number, student_id, status, campus_id, allocated_at
        FROM room_allocations WHERE campus_id=$1 ORDER BY allocated_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allocations []domain.RoomAllocation
	for rows.Next() {
		var a domain.RoomAllocation
		if err := rows.Scan(&a.ID, &a.RoomID, &a.RoomNumber, &a.StudentID, &a.Status, &a.CampusID, &a.AllocatedAt); err != nil {
			return nil, err
		}
		allocations = append(allocations, a)
	}
	return allocations, rows.Err()
}

func (r *hostelRepository) CreateMaintenanceRequest(ctx context.Context, request *domain.MaintenanceRequest) error {
	const query = `
        INSERT INTO maintenance_requests (room_id, description, status, campus_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, reported_at`

	return r.pool.QueryRow(ctx, query,
		request.RoomID,
		request.Description,
		request.Status,
		request.CampusID,
	).Scan(&request.ID, &request.ReportedAt)
}

func (r *hostelRepository) ListMaintenanceRequests(ctx context.Context, campusID string) ([]domain.MaintenanceRequest, error) {
	const query = `
        SELECT id, room_id, description, status, campus_id, reported_at
        FROM maintenance_requests WHERE campus_id=$1 ORDER BY reported_at DESC`

	rows, err := r.pool.Query(ctx, query, campusID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.MaintenanceRequest
	for rows.Next() {
		var m domain.MaintenanceRequest
		if err := rows.Scan(&m.ID, &m.RoomID, &m.Description, &m.Status, &m.CampusID, &m.ReportedAt); err != nil {
			return nil, err
		}
		requests = append(requests, m)
	}
	return requests, rows.Err()
}
