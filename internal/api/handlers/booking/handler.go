package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/api/dto"
	"github.com/rufomartins/talent-nexus-notifier/internal/api/respond"
	"github.com/rufomartins/talent-nexus-notifier/internal/availability"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	bookingsvc "github.com/rufomartins/talent-nexus-notifier/internal/service/booking"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/booking/mock.go -package=mocks
type bookingService interface {
	CheckAvailability(ctx context.Context, talentID uuid.UUID, rng availability.Range) (bookingsvc.AvailabilityResult, error)
	CreateBooking(ctx context.Context, b model.Booking, override bool) (uuid.UUID, []model.Booking, error)
}

// Handler serves the booking conflict API.
type Handler struct {
	service   bookingService
	validator *validator.Validate
}

func NewHandler(s bookingService, v *validator.Validate) *Handler {
	return &Handler{service: s, validator: v}
}

// Check handles POST requests asking whether a talent is free for a range.
func (h *Handler) Check(c *ginext.Context) {
	var req dto.CheckAvailabilityRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	talentID, err := uuid.Parse(req.TalentID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid talent id"))
		return
	}

	rng, err := availability.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("malformed booking range")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), talentID, rng)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("talent_id", talentID.String()).Msg("failed to check availability")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, result)
}

// Create handles POST requests creating a booking. Conflicting ranges are
// returned with a 409 unless the request sets override.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateBookingRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	talentID, err := uuid.Parse(req.TalentID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid talent id"))
		return
	}

	rng, err := availability.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		zlog.Logger.Warn().Err(err).Msg("malformed booking range")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
		return
	}

	b := model.Booking{
		TalentID:   talentID,
		StartDate:  rng.Start,
		EndDate:    rng.End,
		Status:     model.BookingStatusPending,
		ResourceID: req.ResourceID,
	}

	id, conflicts, err := h.service.CreateBooking(c.Request.Context(), b, req.Override)
	if err != nil {
		if errors.Is(err, bookingsvc.ErrBookingConflict) {
			respond.FailWithData(c.Writer, http.StatusConflict, err, conflicts)
			return
		}

		zlog.Logger.Error().Err(err).Str("talent_id", talentID.String()).Msg("failed to create booking")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}
