// Package item defines the Item entity and the request payloads
// that carry it over HTTP.
package item

// Item is the user-supplied payload.
//
// Description is nil when absent and serializes as null.
// Done defaults to false when omitted.
type Item struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Done        bool    `json:"done"`
}

// ItemInDB is an Item plus its store-assigned identifier.
// ID is assigned by the database on insert and never changes.
type ItemInDB struct {
	ID int64 `json:"id"`
	Item
}
