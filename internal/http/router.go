package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "galeria/backend/docs"
	"galeria/backend/internal/handler"
)

// RouterOptions carries the transport settings from config.
type RouterOptions struct {
	StaticDir string
	RateLimit float64
	RateBurst int
}

func NewRouter(
	artworkHandler *handler.ArtworkHandler,
	translateHandler *handler.TranslateHandler,
	systemHandler *handler.SystemHandler,
	opts RouterOptions,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(RequestIDMiddleware())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", RateLimitMiddleware(opts.RateLimit, opts.RateBurst))
	artworkHandler.RegisterRoutes(api)
	translateHandler.RegisterRoutes(api)
	systemHandler.RegisterRoutes(api)

	registerStatic(e, opts.StaticDir)

	return e
}
