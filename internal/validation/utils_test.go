package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/items-api/internal/errs"
	"github.com/deppfellow/items-api/internal/model/item"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidateCreatePayload(t *testing.T) {
	c := newContext(http.MethodPost, "/items", `{"name":"milk","description":"2L"}`)

	var payload item.CreateItemPayload
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, "milk", payload.Name)
	require.NotNil(t, payload.Description)
	assert.Equal(t, "2L", *payload.Description)
	require.NotNil(t, payload.Done)
	assert.False(t, *payload.Done)
}

func TestBindAndValidateMissingName(t *testing.T) {
	c := newContext(http.MethodPost, "/items", `{"done":true}`)

	var payload item.CreateItemPayload
	httpErr := requireBadRequest(t, BindAndValidate(c, &payload))

	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "is required"}}, httpErr.Errors)
}

func TestBindAndValidateMalformedJSON(t *testing.T) {
	c := newContext(http.MethodPost, "/items", `{"name":`)

	var payload item.CreateItemPayload
	httpErr := requireBadRequest(t, BindAndValidate(c, &payload))

	assert.NotEmpty(t, httpErr.Message)
	assert.Nil(t, httpErr.Errors)
}

func TestBindAndValidateWrongFieldType(t *testing.T) {
	c := newContext(http.MethodPost, "/items", `{"name":"milk","done":"yes"}`)

	var payload item.CreateItemPayload
	requireBadRequest(t, BindAndValidate(c, &payload))
}

func TestBindAndValidateNullDone(t *testing.T) {
	cases := []struct {
		name    string
		method  string
		payload Validatable
	}{
		{name: "create", method: http.MethodPost, payload: &item.CreateItemPayload{}},
		{name: "update", method: http.MethodPut, payload: &item.UpdateItemPayload{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newContext(tc.method, "/items/1", `{"name":"milk","done":null}`)
			c.SetParamNames("id")
			c.SetParamValues("1")

			httpErr := requireBadRequest(t, BindAndValidate(c, tc.payload))
			assert.Equal(t, []errs.FieldError{{Field: "done", Error: "must not be null"}}, httpErr.Errors)
		})
	}
}

func TestBindAndValidateQueryDefaults(t *testing.T) {
	c := newContext(http.MethodGet, "/items", "")

	var query item.GetItemsQuery
	require.NoError(t, BindAndValidate(c, &query))

	assert.Equal(t, item.DefaultSkip, query.Skip)
	assert.Equal(t, item.DefaultLimit, query.Limit)
}

func TestBindAndValidateQueryOverrides(t *testing.T) {
	c := newContext(http.MethodGet, "/items?skip=5&limit=2", "")

	var query item.GetItemsQuery
	require.NoError(t, BindAndValidate(c, &query))

	assert.Equal(t, 5, query.Skip)
	assert.Equal(t, 2, query.Limit)
}

func TestBindAndValidateNegativeLimit(t *testing.T) {
	c := newContext(http.MethodGet, "/items?limit=-1", "")

	var query item.GetItemsQuery
	httpErr := requireBadRequest(t, BindAndValidate(c, &query))

	assert.Equal(t, []errs.FieldError{{Field: "limit", Error: "must be at least 0"}}, httpErr.Errors)
}

func TestBindAndValidateNonIntegerPathParam(t *testing.T) {
	c := newContext(http.MethodGet, "/items/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	var payload item.GetItemByIDPayload
	requireBadRequest(t, BindAndValidate(c, &payload))
}

func TestBindAndValidatePathParamSurvivesBody(t *testing.T) {
	c := newContext(http.MethodPut, "/items/7", `{"id":99,"name":"bread","done":true}`)
	c.SetParamNames("id")
	c.SetParamValues("7")

	var payload item.UpdateItemPayload
	require.NoError(t, BindAndValidate(c, &payload))

	assert.Equal(t, int64(7), payload.ID)
	assert.Equal(t, "bread", payload.Name)
	require.NotNil(t, payload.Done)
	assert.True(t, *payload.Done)
}

type ruleBased struct{}

func (ruleBased) Validate() error {
	return CustomValidationErrors{{Field: "name", Message: "must not be blank"}}
}

func TestExtractCustomValidationErrors(t *testing.T) {
	msg, fields := extractValidationError(ruleBased{}.Validate())

	assert.Equal(t, "Validation failed", msg)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "must not be blank"}}, fields)
}

func TestBindErrorMessageFallback(t *testing.T) {
	assert.Equal(t, "Invalid request", bindErrorMessage(errors.New("boom")))
	assert.Equal(t, "bad", bindErrorMessage(echo.NewHTTPError(http.StatusBadRequest, "bad")))
}
