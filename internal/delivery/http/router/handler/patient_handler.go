package handler

import (
	"log/slog"
	"net/http"

	"clinic/internal/delivery/http/response"
	"clinic/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PatientHandler holds dependencies for patient CRUD handlers.
type PatientHandler struct {
	uc     usecase.PatientUsecase
	logger *slog.Logger
}

// NewPatientHandler is the constructor for PatientHandler, injected by Fx.
func NewPatientHandler(uc usecase.PatientUsecase, logger *slog.Logger) *PatientHandler {
	return &PatientHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all patients.
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patients, "")
}

// Create registers a new patient.
func (h *PatientHandler) Create(c echo.Context) error {
	var input *usecase.PatientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, patient, "Patient added successfully")
}

// Update replaces an existing patient's demographic fields.
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient id")
	}

	var input *usecase.PatientInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	patient, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, patient, "Patient updated successfully")
}

// Delete removes a patient and their appointments and medical records.
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid patient id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Patient deleted successfully")
}
