package handler

import (
	"log/slog"
	"net/http"

	"clinic/internal/delivery/http/response"
	"clinic/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecordHandler holds dependencies for medical record handlers.
type RecordHandler struct {
	uc     usecase.RecordUsecase
	logger *slog.Logger
}

// NewRecordHandler is the constructor for RecordHandler, injected by Fx.
func NewRecordHandler(uc usecase.RecordUsecase, logger *slog.Logger) *RecordHandler {
	return &RecordHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all medical records.
func (h *RecordHandler) List(c echo.Context) error {
	records, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Create adds a medical record for a patient.
func (h *RecordHandler) Create(c echo.Context) error {
	var input *usecase.RecordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid medical record input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Medical record created successfully")
}
