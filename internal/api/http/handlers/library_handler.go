package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-service/internal/api/dto"
	"github.com/campusconnect/campus-service/internal/service"
)

// LibraryHandler exposes book and loan endpoints.
type LibraryHandler struct {
	library *service.LibraryService
}

// NewLibraryHandler constructs handler.
func NewLibraryHandler(libraryService *service.LibraryService) *LibraryHandler {
	return &LibraryHandler{library: libraryService}
}

// AddBook handles POST /api/books.
func (h *LibraryHandler) AddBook(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.BookRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Title == "" || req.ISBN == "" {
		return fiber.NewError(http.StatusBadRequest, "isbn and title required")
	}

	book, err := h.library.AddBook(c.Context(), principal, service.BookInput{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Author:      req.Author,
		Category:    req.Category,
		TotalCopies: req.TotalCopies,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": book})
}

// ListBooks handles GET /api/books.
func (h *LibraryHandler) ListBooks(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	books, err := h.library.ListBooks(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": books})
}

// IssueBook handles POST /api/issue.
func (h *LibraryHandler) IssueBook(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.IssueRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.BookID == "" || req.StudentID == "" {
		return fiber.NewError(http.StatusBadRequest, "book_id and student_id required")
	}

	issue, err := h.library.IssueBook(c.Context(), principal, req.BookID, req.StudentID, req.Days)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": issue})
}

// ReturnBook handles POST /api/return.
func (h *LibraryHandler) ReturnBook(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req dto.ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.IssueID == "" {
		return fiber.NewError(http.StatusBadRequest, "issue_id required")
	}

	issue, err := h.library.ReturnBook(c.Context(), principal, req.IssueID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"issue":       issue,
		"fine_amount": issue.FineAmount,
	}})
}

// ListIssues handles GET /api/issues.
func (h *LibraryHandler) ListIssues(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	issues, err := h.library.ListIssues(c.Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": issues})
}
