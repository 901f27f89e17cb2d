package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/batoolShene/DentalDiagnose/internal/api/metrics"
	"github.com/batoolShene/DentalDiagnose/internal/core/domain"
	"github.com/batoolShene/DentalDiagnose/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Message  string      `json:"message"`
	Token    string      `json:"token"`
	User     userPayload `json:"user"`
	Username string      `json:"username"`
	Role     string      `json:"role"`
}

func toUserPayload(u *domain.User) userPayload {
	return userPayload{ID: u.ID, Name: u.Name, Email: u.Email, Role: string(u.Role)}
}

// Login authenticates a user and returns a JWT token. Clients may send the
// login identity in either the username or the email field.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
	}

	email := req.Email
	if email == "" {
		email = req.Username
	}
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email and password are required"})
	}

	result, err := h.authService.Login(c.Request().Context(), email, req.Password)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("failure").Inc()
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "Invalid email or password"})
	}
	metrics.AuthAttemptsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message:  "Login successful",
		Token:    result.Token,
		User:     toUserPayload(result.User),
		Username: result.User.Name,
		Role:     string(result.User.Role),
	})
}

type updatePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// UpdatePassword changes the authenticated caller's password.
//
// @Summary      Update own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updatePasswordRequest  true  "New password"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/update-password [post]
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	email, err := claimEmail(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.UpdatePassword(c.Request().Context(), email, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
