package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/rufomartins/talent-nexus-notifier/internal/api/dto"
	"github.com/rufomartins/talent-nexus-notifier/internal/api/respond"
	"github.com/rufomartins/talent-nexus-notifier/internal/config"
	"github.com/rufomartins/talent-nexus-notifier/internal/model"
	assignrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/assignment"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/assignment/mock.go -package=mocks
type assignmentService interface {
	Create(ctx context.Context, strategy retry.Strategy, a model.Assignment) (uuid.UUID, error)
	SetStatus(ctx context.Context, strategy retry.Strategy, id uuid.UUID, status string) error
	Reassign(ctx context.Context, strategy retry.Strategy, id uuid.UUID, role string) error
}

// Handler serves assignment creation and update requests.
type Handler struct {
	service   assignmentService
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(s assignmentService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// Create handles POST requests creating an assignment. The assigned user
// gets a NEW_ASSIGNMENT notification.
func (h *Handler) Create(c *ginext.Context) {
	var req dto.CreateAssignmentRequest

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

	taskID, err := uuid.Parse(req.TaskID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid task id"))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid start_at format"))
		return
	}

	dueAt, err := time.Parse(time.RFC3339, req.DueAt)
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid due_at format"))
		return
	}

	a := model.Assignment{
		TaskID:  taskID,
		UserID:  userID,
		Role:    req.Role,
		StartAt: startAt,
		DueAt:   dueAt,
		Status:  model.AssignmentStatusOpen,
		Channel: req.Channel,
		To:      req.To,
	}

	id, err := h.service.Create(c.Request.Context(), h.cfg.Retry, a)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("task_id", taskID.String()).Msg("failed to create assignment")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.Created(c.Writer, id)
}

// UpdateStatus handles PUT requests changing an assignment's status.
func (h *Handler) UpdateStatus(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req dto.UpdateAssignmentStatusRequest

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

	err = h.service.SetStatus(c.Request.Context(), h.cfg.Retry, id, req.Status)
	if err != nil {
		if errors.Is(err, assignrepo.ErrAssignmentNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("assignment not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to update assignment status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "assignment updated")
}

// UpdateRole handles PUT requests reassigning the role on an assignment.
func (h *Handler) UpdateRole(c *ginext.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return
	}

	var req dto.UpdateAssignmentRoleRequest

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

	err = h.service.Reassign(c.Request.Context(), h.cfg.Retry, id, req.Role)
	if err != nil {
		if errors.Is(err, assignrepo.ErrAssignmentNotFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("assignment not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to reassign role")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, "assignment updated")
}
