package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	HeaderVisitorID = "X-Visitor-Id"

	visitorKey = "visitor_id"
)

// Visitor reads the anonymous visitor id from X-Visitor-Id and stores it in
// the echo context. With required=false a missing header is tolerated; a
// malformed one is always rejected.
func Visitor(required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := strings.TrimSpace(c.Request().Header.Get(HeaderVisitorID))
			if id == "" {
				if required {
					return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing " + HeaderVisitorID})
				}
				return next(c)
			}
			if !reVisitorID.MatchString(id) {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid " + HeaderVisitorID})
			}
			c.Set(visitorKey, id)
			return next(c)
		}
	}
}

// VisitorID returns the id stored by Visitor, or "".
func VisitorID(c echo.Context) string {
	id, _ := c.Get(visitorKey).(string)
	return id
}
