package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health is a simple liveness endpoint used by monitoring systems and by
// clients probing whether the API is up.  It always succeeds with a fixed
// JSON body; there is nothing to check beyond the process serving requests.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "API working",
		"status":  "success",
	})
}
