// Package service holds the business operations behind each route.
// Services translate repository outcomes into HTTP-level errors.
package service

import (
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
)

type Services struct {
	Item *ItemService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Item: NewItemService(s, repos.Item),
	}, nil
}
