package handler

import (
	"log/slog"
	"net/http"

	"clinic/internal/delivery/http/response"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AppointmentHandler holds dependencies for appointment handlers.
type AppointmentHandler struct {
	uc     usecase.AppointmentUsecase
	logger *slog.Logger
}

// NewAppointmentHandler is the constructor for AppointmentHandler, injected by Fx.
func NewAppointmentHandler(uc usecase.AppointmentUsecase, logger *slog.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all appointments, newest first.
func (h *AppointmentHandler) List(c echo.Context) error {
	appointments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, appointments, "")
}

// Create schedules a new appointment.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var input *usecase.AppointmentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid appointment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	appointment, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, appointment, "Appointment scheduled successfully")
}
