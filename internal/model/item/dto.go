package item

import (
	"github.com/go-playground/validator/v10"
)

// ------------------------------------------------------------

// CreateItemPayload is the body of POST /items. Done is a pointer so an
// explicit null can be told apart from an absent field.
type CreateItemPayload struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Done        *bool   `json:"done" validate:"required"`
}

func (p *CreateItemPayload) SetDefaults() {
	p.Done = new(bool)
}

func (p *CreateItemPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// Item copies the payload field by field into the entity shape.
func (p *CreateItemPayload) Item() Item {
	return Item{
		Name:        p.Name,
		Description: p.Description,
		Done:        isDone(p.Done),
	}
}

// ------------------------------------------------------------

// GetItemsQuery carries offset pagination. Absent parameters keep the
// values set by SetDefaults.
type GetItemsQuery struct {
	Skip  int `query:"skip" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0"`
}

const (
	DefaultSkip  = 0
	DefaultLimit = 10
)

func (q *GetItemsQuery) SetDefaults() {
	q.Skip = DefaultSkip
	q.Limit = DefaultLimit
}

func (q *GetItemsQuery) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}

// ------------------------------------------------------------

type GetItemByIDPayload struct {
	ID int64 `param:"id"`
}

func (p *GetItemByIDPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

// UpdateItemPayload replaces every field of the item except its ID.
type UpdateItemPayload struct {
	ID          int64   `param:"id" json:"-"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Done        *bool   `json:"done" validate:"required"`
}

func (p *UpdateItemPayload) SetDefaults() {
	p.Done = new(bool)
}

func (p *UpdateItemPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *UpdateItemPayload) Item() Item {
	return Item{
		Name:        p.Name,
		Description: p.Description,
		Done:        isDone(p.Done),
	}
}

// ------------------------------------------------------------

type DeleteItemPayload struct {
	ID int64 `param:"id"`
}

func (p *DeleteItemPayload) Validate() error {
	return nil
}

func isDone(done *bool) bool {
	return done != nil && *done
}
