package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const cartCookie = "cart_token"

func cartToken(c echo.Context) string {
	cookie, err := c.Cookie(cartCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (s *Server) setCartToken(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     cartCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.policy.Window().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCartToken(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     cartCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
