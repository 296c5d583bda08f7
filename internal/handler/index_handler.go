package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Index godoc
// @Summary Index
// @Tags meta
// @Produce plain
// @Success 200 {string} string "Hello World"
// @Router / [get]
func Index(c echo.Context) error {
	return c.String(http.StatusOK, "Hello World")
}

// Healthz godoc
// @Summary Liveness probe
// @Tags meta
// @Produce plain
// @Success 200 {string} string "ok"
// @Router /healthz [get]
func Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
