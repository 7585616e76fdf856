package handler

import (
	"net/http"

	"github.com/deppfellow/items-api/internal/database"
	"github.com/deppfellow/items-api/internal/model/item"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	Handler
	itemService *service.ItemService
}

func NewItemHandler(s *server.Server, itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler:     NewHandler(s),
		itemService: itemService,
	}
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	return Handle(
		h.Handler,
		WithSession(func(c echo.Context, db database.DBTX, payload *item.CreateItemPayload) (*item.ItemInDB, error) {
			return h.itemService.CreateItem(c, db, payload)
		}),
		http.StatusOK,
		&item.CreateItemPayload{},
	)(c)
}

func (h *ItemHandler) GetItems(c echo.Context) error {
	return Handle(
		h.Handler,
		WithSession(func(c echo.Context, db database.DBTX, query *item.GetItemsQuery) ([]item.ItemInDB, error) {
			return h.itemService.GetItems(c, db, query)
		}),
		http.StatusOK,
		&item.GetItemsQuery{},
	)(c)
}

func (h *ItemHandler) GetItemByID(c echo.Context) error {
	return Handle(
		h.Handler,
		WithSession(func(c echo.Context, db database.DBTX, payload *item.GetItemByIDPayload) (*item.ItemInDB, error) {
			return h.itemService.GetItemByID(c, db, payload.ID)
		}),
		http.StatusOK,
		&item.GetItemByIDPayload{},
	)(c)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	return Handle(
		h.Handler,
		WithSession(func(c echo.Context, db database.DBTX, payload *item.UpdateItemPayload) (*item.ItemInDB, error) {
			return h.itemService.UpdateItem(c, db, payload)
		}),
		http.StatusOK,
		&item.UpdateItemPayload{},
	)(c)
}

// DeleteItem responds with the deleted item.
func (h *ItemHandler) DeleteItem(c echo.Context) error {
	return Handle(
		h.Handler,
		WithSession(func(c echo.Context, db database.DBTX, payload *item.DeleteItemPayload) (*item.ItemInDB, error) {
			return h.itemService.DeleteItem(c, db, payload.ID)
		}),
		http.StatusOK,
		&item.DeleteItemPayload{},
	)(c)
}
