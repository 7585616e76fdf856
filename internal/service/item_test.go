package service

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/model/item"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{"id", "name", "description", "done"}

func boolPtr(b bool) *bool { return &b }

func setup(t *testing.T) (*ItemService, pgxmock.PgxConnIface, echo.Context) {
	t.Helper()

	mock, err := pgxmock.NewConn()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	logger := zerolog.Nop()
	s := &server.Server{Logger: &logger}

	services, err := NewServices(s, repository.NewRepositories())
	require.NoError(t, err)

	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/items", nil), httptest.NewRecorder())

	return services.Item, mock, c
}

func requireItemNotFound(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, http.StatusNotFound, httpErr.Status)
	assert.Equal(t, ItemNotFoundCode, httpErr.Code)
	assert.Equal(t, "Item not found", httpErr.Message)
}

func TestCreateItem(t *testing.T) {
	svc, mock, c := setup(t)

	mock.ExpectQuery("INSERT INTO").
		WithArgs("milk", (*string)(nil), false).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), "milk", nil, false))

	created, err := svc.CreateItem(c, mock, &item.CreateItemPayload{Name: "milk"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "milk", created.Name)
}

func TestGetItemsUsesQueryWindow(t *testing.T) {
	svc, mock, c := setup(t)

	mock.ExpectQuery("SELECT").
		WithArgs(item.DefaultLimit, item.DefaultSkip).
		WillReturnRows(pgxmock.NewRows(columns))

	query := &item.GetItemsQuery{}
	query.SetDefaults()

	items, err := svc.GetItems(c, mock, query)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetItemByIDNotFound(t *testing.T) {
	svc, mock, c := setup(t)

	mock.ExpectQuery("SELECT").
		WithArgs(int64(42)).
		WillReturnRows(pgxmock.NewRows(columns))

	_, err := svc.GetItemByID(c, mock, 42)
	requireItemNotFound(t, err)
}

func TestGetItemByIDStorageErrorIsNotNotFound(t *testing.T) {
	svc, mock, c := setup(t)

	mock.ExpectQuery("SELECT").
		WithArgs(int64(1)).
		WillReturnError(errors.New("connection reset"))

	_, err := svc.GetItemByID(c, mock, 1)
	require.Error(t, err)

	var httpErr *errs.HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

func TestUpdateItemNotFound(t *testing.T) {
	svc, mock, c := setup(t)

	mock.ExpectQuery("UPDATE").
		WithArgs(int64(9), "bread", (*string)(nil), true).
		WillReturnRows(pgxmock.NewRows(columns))

	_, err := svc.UpdateItem(c, mock, &item.UpdateItemPayload{ID: 9, Name: "bread", Done: boolPtr(true)})
	requireItemNotFound(t, err)
}

func TestUpdateItem(t *testing.T) {
	svc, mock, c := setup(t)

	desc := "wholegrain"
	mock.ExpectQuery("UPDATE").
		WithArgs(int64(3), "bread", &desc, true).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(3), "bread", &desc, true))

	updated, err := svc.UpdateItem(c, mock, &item.UpdateItemPayload{ID: 3, Name: "bread", Description: &desc, Done: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), updated.ID)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "wholegrain", *updated.Description)
	assert.True(t, updated.Done)
}

func TestDeleteItem(t *testing.T) {
	svc, mock, c := setup(t)

	mock.ExpectQuery("DELETE FROM").
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(columns).AddRow(int64(1), "milk", nil, false))

	deleted, err := svc.DeleteItem(c, mock, 1)
	require.NoError(t, err)
	assert.Equal(t, "milk", deleted.Name)
}

func TestDeleteItemNotFound(t *testing.T) {
	svc, mock, c := setup(t)

	mock.ExpectQuery("DELETE FROM").
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows(columns))

	_, err := svc.DeleteItem(c, mock, 5)
	requireItemNotFound(t, err)
}
