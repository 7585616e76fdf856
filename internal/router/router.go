// Package router builds the Echo instance: global middleware in order,
// the error handler, and every route group.
package router

import (
	"github.com/deppfellow/items-api/internal/database"
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter wires routes against the server's database pool.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	return newRouter(s, h, s.DB)
}

func newRouter(s *server.Server, h *handler.Handlers, sessions database.SessionProvider) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s, sessions)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// /items and /items/ resolve to the same route.
	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)
	registerItemRoutes(router, h, middlewares.Session)

	return router
}
