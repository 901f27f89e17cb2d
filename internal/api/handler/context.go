package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// claimEmail extracts the caller's email injected by the Auth middleware. An
// empty value means the middleware did not run or the token carried no
// identity; reject rather than proceed anonymously.
func claimEmail(c echo.Context) (string, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
