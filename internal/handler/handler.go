package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/Jgauri24/happenix/internal/domain"
	"github.com/Jgauri24/happenix/internal/handler/dto"
	"github.com/Jgauri24/happenix/internal/middleware"
)

type BookingSvc interface {
	Book(ctx context.Context, eventID, userID string) (*domain.BookingDetails, error)
	Cancel(ctx context.Context, bookingID, userID string) error
	Get(ctx context.Context, bookingID, requesterID string) (*domain.BookingDetails, error)
	ListByUser(ctx context.Context, userID string, f domain.BookingFilter) ([]*domain.UserBooking, error)
	ValidateAttendance(ctx context.Context, bookingID, actorID string) (*domain.BookingDetails, error)
	SelfMarkAttended(ctx context.Context, bookingID, userID string) (*domain.BookingDetails, error)
}

type Handler struct {
	bookingService BookingSvc
}

func NewHandler(bookingService BookingSvc) *Handler {
	return &Handler{bookingService: bookingService}
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "event id is required"})
		return
	}

	details, err := h.bookingService.Book(c.Request.Context(), req.EventID, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	filter := domain.BookingFilter{
		Status: domain.BookingStatus(c.Query("status")),
	}
	switch c.Query("upcoming") {
	case "true":
		upcoming := true
		filter.Upcoming = &upcoming
	case "false":
		upcoming := false
		filter.Upcoming = &upcoming
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), middleware.UserID(c), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToUserBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	details, err := h.bookingService.Get(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), id, middleware.UserID(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) ValidateBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	details, err := h.bookingService.ValidateAttendance(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) AttendBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	details, err := h.bookingService.SelfMarkAttended(c.Request.Context(), id, middleware.UserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingDetailsResponse(details))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotBookable),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrBookingNotConfirmed),
		errors.Is(err, domain.ErrBookingAttended),
		errors.Is(err, domain.ErrEventNotOccurred),
		errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
