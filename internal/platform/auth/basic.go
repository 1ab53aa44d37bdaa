package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Credentials is the single expected username/password pair, fixed at
// startup. A zero value means no credentials are configured and the gate
// allows every request.
type Credentials struct {
	Username string
	Password string
}

// Enabled reports whether the pair is configured. Both fields must be set;
// a lone username or password does not enable the gate.
func (c Credentials) Enabled() bool {
	return c.Username != "" && c.Password != ""
}

// match compares supplied credentials against the expected pair in constant
// time so the comparison leaks nothing about how much of a guess was right.
func (c Credentials) match(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	return userOK && passOK
}

// BasicAuth returns middleware enforcing HTTP Basic auth against the given
// pair. When no pair is configured the middleware is inert and every request
// passes through; callers are expected to log that choice at startup.
// Rejected requests get a 401 with a fixed JSON body and a Basic challenge.
func BasicAuth(creds Credentials) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !creds.Enabled() {
				return next(c)
			}

			username, password, ok := c.Request().BasicAuth()
			if !ok || !creds.match(username, password) {
				return unauthorized(c)
			}

			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="Restricted"`)
	return c.JSON(http.StatusUnauthorized, map[string]string{
		"error": "Invalid Credentials",
	})
}
