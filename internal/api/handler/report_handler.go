package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolShene/DentalDiagnose/internal/core/service"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// List returns all stored clinical reports.
//
// @Summary      List reports
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/reports/ [get]
func (h *ReportHandler) List(c echo.Context) error {
	reports, err := h.reports.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"reports": reports})
}
