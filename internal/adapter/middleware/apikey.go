package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const HeaderAPIKey = "X-API-Key"

// APIKey protects admin routes. An empty key rejects every request.
func APIKey(key string) echo.MiddlewareFunc {
	return echomw.KeyAuthWithConfig(echomw.KeyAuthConfig{
		KeyLookup: "header:" + HeaderAPIKey,
		Validator: func(got string, c echo.Context) (bool, error) {
			if key == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(got), []byte(key)) == 1, nil
		},
	})
}
