package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/api/dto"
	"github.com/campusconnect/campus-service/internal/service"
)

// HostelHandler exposes room, allocation and maintenance endpoints.
type HostelHandler struct {
	hostel *service.HostelService
}

// NewHostelHandler constructs handler.
func NewHostelHandler(hostelService *service.HostelService) *HostelHandler {
	return &HostelHandler{hostel: hostelService}
}

// CreateRoom handles POST /api/rooms.
func (h *HostelHandler) CreateRoom(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.RoomRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Number == "" || req.Block == "" {
		return fiber.NewError(http.StatusBadRequest, "number and block required")
	}

	room, err := h.hostel.CreateRoom(c.Context(), principal, service.RoomInput{
		Number:   req.Number,
		Block:    req.Block,
		Capacity: req.Capacity,
		Rent:     req.Rent,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": room})
}

// ListRooms handles GET /api/rooms.
func (h *HostelHandler) ListRooms(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	rooms, err := h.hostel.ListRooms(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": rooms})
}

// AllocateRoom handles POST /api/allocations.
func (h *HostelHandler) AllocateRoom(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.AllocationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RoomID == "" || req.StudentID == "" {
		return fiber.NewError(http.StatusBadRequest, "room_id and student_id required")
	}

	allocation, err := h.hostel.AllocateRoom(c.Context(), principal, req.RoomID, req.StudentID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": allocation})
}

// ListAllocations handles GET /api/allocations.
func (h *HostelHandler) ListAllocations(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	allocations, err := h.hostel.ListAllocations(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": allocations})
}

// ReportMaintenance handles POST /api/maintenance.
func (h *HostelHandler) ReportMaintenance(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.MaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.RoomID == "" || req.Description == "" {
		return fiber.NewError(http.StatusBadRequest, "room_id and description required")
	}

	request, err := h.hostel.ReportMaintenance(c.Context(), principal, req.RoomID, req.Description)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": request})
}

// ListMaintenance handles GET /api/maintenance.
func (h *HostelHandler) ListMaintenance(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	requests, err := h.hostel.ListMaintenance(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": requests})
}
