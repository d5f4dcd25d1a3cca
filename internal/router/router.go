// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/answerbox/answerbox/internal/handler"
)

// RegisterRoutes registers the API's routes on the provided Echo instance.
// The surface is deliberately small: a health check and a single
// question-answering endpoint.  The cache middleware applies only to /ask/;
// pass a no-op middleware to run uncached.
func RegisterRoutes(e *echo.Echo, ask *handler.AskHandler, cache echo.MiddlewareFunc) {
	// Health check used by monitoring and smoke tests.
	e.GET("/test/", handler.Health)
	// The answering endpoint. All lookup behavior lives behind the handler.
	e.GET("/ask/", ask.Ask, cache)
}
