package service

import (
	"errors"

	"github.com/deppfellow/items-api/internal/database"
	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/model/item"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
)

// ItemNotFoundCode is the error code returned for any lookup of a missing id.
const ItemNotFoundCode = "ITEM_NOT_FOUND"

type ItemService struct {
	server   *server.Server
	itemRepo *repository.ItemRepository
}

func NewItemService(s *server.Server, itemRepo *repository.ItemRepository) *ItemService {
	return &ItemService{
		server:   s,
		itemRepo: itemRepo,
	}
}

func itemNotFound() *errs.HTTPError {
	code := ItemNotFoundCode
	return errs.NewNotFoundError("Item not found", false, &code)
}

// notFoundOr maps the repository's not-found signal onto a 404 and passes
// every other error through untouched.
func notFoundOr(err error) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return itemNotFound()
	}
	return err
}

func (s *ItemService) CreateItem(c echo.Context, db database.DBTX, payload *item.CreateItemPayload) (*item.ItemInDB, error) {
	logger := middleware.GetLogger(c)

	created, err := s.itemRepo.CreateItem(c.Request().Context(), db, payload.Item())
	if err != nil {
		logger.Error().Err(err).Msg("failed to create item")
		return nil, err
	}

	logger.Info().
		Int64("item_id", created.ID).
		Msg("item created")

	return created, nil
}

func (s *ItemService) GetItems(c echo.Context, db database.DBTX, query *item.GetItemsQuery) ([]item.ItemInDB, error) {
	items, err := s.itemRepo.GetItems(c.Request().Context(), db, query.Skip, query.Limit)
	if err != nil {
		middleware.GetLogger(c).Error().
			Err(err).
			Int("skip", query.Skip).
			Int("limit", query.Limit).
			Msg("failed to list items")
		return nil, err
	}

	return items, nil
}

func (s *ItemService) GetItemByID(c echo.Context, db database.DBTX, id int64) (*item.ItemInDB, error) {
	found, err := s.itemRepo.GetItemByID(c.Request().Context(), db, id)
	if err != nil {
		if !errors.Is(err, repository.ErrItemNotFound) {
			middleware.GetLogger(c).Error().Err(err).Int64("item_id", id).Msg("failed to get item")
		}
		return nil, notFoundOr(err)
	}

	return found, nil
}

// UpdateItem overwrites every field except the id. A missing id is a 404
// and leaves storage untouched.
func (s *ItemService) UpdateItem(c echo.Context, db database.DBTX, payload *item.UpdateItemPayload) (*item.ItemInDB, error) {
	logger := middleware.GetLogger(c)

	updated, err := s.itemRepo.UpdateItem(c.Request().Context(), db, payload.ID, payload.Item())
	if err != nil {
		if !errors.Is(err, repository.ErrItemNotFound) {
			logger.Error().Err(err).Int64("item_id", payload.ID).Msg("failed to update item")
		}
		return nil, notFoundOr(err)
	}

	logger.Info().
		Int64("item_id", updated.ID).
		Msg("item updated")

	return updated, nil
}

// DeleteItem removes the row and returns the value it held.
func (s *ItemService) DeleteItem(c echo.Context, db database.DBTX, id int64) (*item.ItemInDB, error) {
	logger := middleware.GetLogger(c)

	deleted, err := s.itemRepo.DeleteItem(c.Request().Context(), db, id)
	if err != nil {
		if !errors.Is(err, repository.ErrItemNotFound) {
			logger.Error().Err(err).Int64("item_id", id).Msg("failed to delete item")
		}
		return nil, notFoundOr(err)
	}

	logger.Info().
		Int64("item_id", deleted.ID).
		Msg("item deleted")

	return deleted, nil
}
