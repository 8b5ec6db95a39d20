package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geoalert/internal/delivery/api/middleware"
	"geoalert/internal/delivery/api/response"
	deliverycontext "geoalert/internal/delivery/context"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PointEventHandlerParams holds dependencies for PointEventHandler, injected by Fx.
type PointEventHandlerParams struct {
	fx.In

	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// PointEventHandler accepts point-created notifications from the point workflow
type PointEventHandler struct {
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewPointEventHandler is the constructor for PointEventHandler
func NewPointEventHandler(params PointEventHandlerParams) *PointEventHandler {
	return &PointEventHandler{
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// PointCreatedRequest represents a committed danger point
type PointCreatedRequest struct {
	ID          int64      `json:"id" validate:"gt=0"`
	Latitude    float64    `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude   float64    `json:"longitude" validate:"gte=-180,lte=180"`
	Description string     `json:"description" validate:"max=1000"`
	Type        string     `json:"type,omitempty" validate:"omitempty,oneof=static_danger dynamic_danger infrastructure other"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// PointCreatedResponse reports whether the fan-out was handed off
type PointCreatedResponse struct {
	PointID int64 `json:"point_id"`
	Queued  bool  `json:"queued"`
}

// PointCreated hands the point to the event publisher and answers 202.
// A publish failure never fails point creation; it is logged and reported as queued=false.
func (h *PointEventHandler) PointCreated(c echo.Context) error {
	var req PointCreatedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	point := &entity.Point{
		ID:          req.ID,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Description: req.Description,
		Type:        entity.PointType(req.Type),
		CreatedAt:   h.now().UTC(),
	}
	if req.CreatedAt != nil {
		point.CreatedAt = req.CreatedAt.UTC()
	}

	caller, _ := middleware.GetCallerService(c)
	event := service.NewPointCreatedEvent(deliverycontext.GetRequestID(c), point)

	queued := true
	if err := h.publisher.PublishPointCreated(ctx, event); err != nil {
		queued = false
		logger.Error("[API] Failed to queue point fan-out",
			slog.Int64("point_id", point.ID),
			slog.String("caller", caller),
			slog.Any("error", err),
		)
	} else {
		logger.Info("[API] Point fan-out queued",
			slog.Int64("point_id", point.ID),
			slog.String("caller", caller),
		)
	}

	return response.Accepted(c, PointCreatedResponse{PointID: point.ID, Queued: queued})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
