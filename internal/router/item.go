package router

import (
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/labstack/echo/v4"
)

// registerItemRoutes mounts the item CRUD routes. Every route runs inside
// a request-scoped database session.
func registerItemRoutes(r *echo.Echo, h *handler.Handlers, sessions *middleware.SessionMiddleware) {
	items := r.Group("/items", sessions.Scoped())

	items.POST("", h.Item.CreateItem)
	items.GET("", h.Item.GetItems)
	items.GET("/:id", h.Item.GetItemByID)
	items.PUT("/:id", h.Item.UpdateItem)
	items.DELETE("/:id", h.Item.DeleteItem)
}
