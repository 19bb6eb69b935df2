package middleware

import "github.com/labstack/echo/v4"

// UserID returns the authenticated user id, or "" when JWTAuth has not run.
func UserID(c echo.Context) string {
	if s, ok := c.Get(CtxUserID).(string); ok {
		return s
	}
	return ""
}

// currentUserID is used for rate-limit keys, where anonymous callers share
// one bucket per ip.
func currentUserID(c echo.Context) string {
	if s := UserID(c); s != "" {
		return s
	}
	return "anon"
}
