package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

type AdminHandler struct {
	authService ports.AuthService
	plog        ports.ProcessingLog
	log         zerolog.Logger
}

func NewAdminHandler(authService ports.AuthService, plog ports.ProcessingLog, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{authService: authService, plog: plog, log: log}
}

// ProcessingLogs returns the recent image-processing operations.
//
// @Summary      Recent processing operations
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/logs [get]
func (h *AdminHandler) ProcessingLogs(c echo.Context) error {
	entries, err := h.plog.Recent(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"logs": entries})
}

// UsersByStatus lists accounts filtered by lifecycle status. Without a
// status parameter it returns the pending registrations.
//
// @Summary      List users by status
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "inProcess | approved | declined | active"
// @Success      200     {object}  map[string]interface{}
// @Failure      400     {object}  map[string]string
// @Router       /api/admin/users [get]
func (h *AdminHandler) UsersByStatus(c echo.Context) error {
	status := domain.Status(c.QueryParam("status"))
	if status == "" {
		status = domain.StatusInProcess
	}
	if !status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid status value")
	}

	users, err := h.authService.UsersByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{"users": users})
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=approved declined"`
}

// UpdateUserStatus applies an admin review decision to a pending account.
//
// @Summary      Approve or decline a registration
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "User ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/admin/users/{id}/status [put]
func (h *AdminHandler) UpdateUserStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actor, err := claimEmail(c)
	if err != nil {
		return err
	}

	if err := h.authService.UpdateStatus(c.Request().Context(), id, domain.Status(req.Status), actor); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "User status updated successfully"})
}

// AdminData returns the combined dashboard view: approved users plus the
// full audit trail.
//
// @Summary      Admin dashboard data
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/admin/admin-data [get]
func (h *AdminHandler) AdminData(c echo.Context) error {
	data, err := h.authService.AdminData(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"users":         data.Users,
		"activity_logs": data.Logs,
	})
}
