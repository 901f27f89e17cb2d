package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/batoolShene/DentalDiagnose/internal/core/service"
)

type PatientHandler struct {
	patients *service.PatientService
}

func NewPatientHandler(patients *service.PatientService) *PatientHandler {
	return &PatientHandler{patients: patients}
}

// Find looks up a patient by exact name and birthdate.
//
// @Summary      Find a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        name       query     string  true  "Full name"
// @Param        birthdate  query     string  true  "YYYY-MM-DD"
// @Success      200        {object}  map[string]interface{}
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /api/patients/find [get]
func (h *PatientHandler) Find(c echo.Context) error {
	name := c.QueryParam("name")
	rawDate := c.QueryParam("birthdate")
	if name == "" || rawDate == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Name and birthdate are required")
	}

	birthdate, err := time.Parse("2006-01-02", rawDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Birthdate must be YYYY-MM-DD")
	}

	patient, err := h.patients.Find(c.Request().Context(), name, birthdate)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"patient": patient})
}
