// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
//
// Repositories hold no connection of their own: every method receives
// the session it runs on, so the caller decides the session's scope.
package repository

// Repositories is a container for all repository instances.
type Repositories struct {
	Item *ItemRepository
}

// NewRepositories constructs the repository container.
func NewRepositories() *Repositories {
	return &Repositories{
		Item: NewItemRepository(),
	}
}
