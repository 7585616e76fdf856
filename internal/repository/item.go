package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/items-api/internal/database"
	"github.com/deppfellow/items-api/internal/model/item"
	"github.com/jackc/pgx/v5"
)

// ErrItemNotFound signals that no row matches the requested id.
// It is a normal outcome, not a storage failure.
var ErrItemNotFound = errors.New("item not found")

// itemColumns is the column list every statement returns, in scan order.
const itemColumns = "id, name, description, done"

type ItemRepository struct{}

func NewItemRepository() *ItemRepository {
	return &ItemRepository{}
}

func scanItem(row pgx.Row) (*item.ItemInDB, error) {
	var i item.ItemInDB
	if err := row.Scan(&i.ID, &i.Name, &i.Description, &i.Done); err != nil {
		return nil, err
	}
	return &i, nil
}

// scanOne maps pgx.ErrNoRows onto ErrItemNotFound.
func scanOne(row pgx.Row, op string) (*item.ItemInDB, error) {
	i, err := scanItem(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to %s item: %w", op, err)
	}
	return i, nil
}

func (r *ItemRepository) CreateItem(ctx context.Context, db database.DBTX, payload item.Item) (*item.ItemInDB, error) {
	stmt := `
		INSERT INTO
			items (
				name,
				description,
				done
			)
		VALUES
			(
				$1,
				$2,
				$3
			)
		RETURNING
		` + itemColumns

	row := db.QueryRow(ctx, stmt, payload.Name, payload.Description, payload.Done)

	i, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return i, nil
}

// GetItems returns at most limit rows after skipping skip rows, in id order.
func (r *ItemRepository) GetItems(ctx context.Context, db database.DBTX, skip, limit int) ([]item.ItemInDB, error) {
	stmt := `
		SELECT
			` + itemColumns + `
		FROM
			items
		ORDER BY
			id ASC
		LIMIT
			$1
		OFFSET
			$2
	`

	rows, err := db.Query(ctx, stmt, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to execute get items query: %w", err)
	}

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (item.ItemInDB, error) {
		i, err := scanItem(row)
		if err != nil {
			return item.ItemInDB{}, err
		}
		return *i, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect item rows: %w", err)
	}

	if items == nil {
		items = []item.ItemInDB{}
	}

	return items, nil
}

func (r *ItemRepository) GetItemByID(ctx context.Context, db database.DBTX, id int64) (*item.ItemInDB, error) {
	stmt := `
		SELECT
			` + itemColumns + `
		FROM
			items
		WHERE
			id = $1::bigint
	`

	row := db.QueryRow(ctx, stmt, id)

	return scanOne(row, "get")
}

// UpdateItem overwrites name, description and done of an existing row.
// A missing id leaves the table untouched.
func (r *ItemRepository) UpdateItem(ctx context.Context, db database.DBTX, id int64, payload item.Item) (*item.ItemInDB, error) {
	stmt := `
		UPDATE items
		SET
			name = $2,
			description = $3,
			done = $4
		WHERE
			id = $1::bigint
		RETURNING
		` + itemColumns

	row := db.QueryRow(ctx, stmt, id, payload.Name, payload.Description, payload.Done)

	return scanOne(row, "update")
}

// DeleteItem removes the row and returns its last value.
func (r *ItemRepository) DeleteItem(ctx context.Context, db database.DBTX, id int64) (*item.ItemInDB, error) {
	stmt := `
		DELETE FROM items
		WHERE
			id = $1::bigint
		RETURNING
		` + itemColumns

	row := db.QueryRow(ctx, stmt, id)

	return scanOne(row, "delete")
}
