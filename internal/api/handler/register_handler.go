package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

type RegisterHandler struct {
	authService ports.AuthService
}

func NewRegisterHandler(authService ports.AuthService) *RegisterHandler {
	return &RegisterHandler{authService: authService}
}

type registerRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type registerResponse struct {
	Message string      `json:"message"`
	User    userPayload `json:"user"`
}

// Register creates a pending account from the public sign-up form. The
// account is unusable until an admin approves it.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/register [post]
func (h *RegisterHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email already registered"})
		}
		return err
	}

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "Registration successful. Your account is pending approval.",
		User:    toUserPayload(user),
	})
}
