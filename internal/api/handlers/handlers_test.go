package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type itemRequest struct {
	ProductID int64 `json:"product_id" validate:"gt=0"`
}

type orderRequest struct {
	CustomerName  string        `json:"customer_name" validate:"required,max=5"`
	CustomerEmail string        `json:"customer_email" validate:"required,email"`
	Items         []itemRequest `json:"items" validate:"required,min=1,dive"`
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	errs := Validate(&orderRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "not-an-email",
		Items:         []itemRequest{{ProductID: 0}},
	})

	require.NotNil(t, errs)
	assert.Equal(t, []string{"Ensure this field has no more than 5 characters."}, errs["customer_name"])
	assert.Equal(t, []string{"Enter a valid email address."}, errs["customer_email"])
	assert.Equal(t, []string{"Ensure this value is greater than 0."}, errs["items[0].product_id"])
}

func TestValidate_Valid(t *testing.T) {
	errs := Validate(&orderRequest{
		CustomerName:  "Jane",
		CustomerEmail: "jane@example.com",
		Items:         []itemRequest{{ProductID: 1}},
	})

	assert.Nil(t, errs)
}

func TestDecodeJSON(t *testing.T) {
	var dst orderRequest
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"customer_name":"Jane","extra":1}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "Jane", dst.CustomerName)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(r, &dst), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{broken"))
	assert.Error(t, DecodeJSON(r, &dst))
}

func TestParsePagination(t *testing.T) {
	p, err := ParsePagination(httptest.NewRequest(http.MethodGet, "/?page=2&page_size=50", nil))
	require.NoError(t, err)
	assert.Equal(t, Pagination{Page: 2, PageSize: 50}, p)

	p, err = ParsePagination(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, Pagination{}, p)

	_, err = ParsePagination(httptest.NewRequest(http.MethodGet, "/?page=two", nil))
	assert.ErrorIs(t, err, ErrInvalidQueryParam)

	_, err = ParsePagination(httptest.NewRequest(http.MethodGet, "/?page_size=-1", nil))
	assert.ErrorIs(t, err, ErrInvalidQueryParam)
}

func TestQueryBool(t *testing.T) {
	b, err := QueryBool(httptest.NewRequest(http.MethodGet, "/?featured=True", nil), "featured")
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.True(t, *b)

	b, err = QueryBool(httptest.NewRequest(http.MethodGet, "/", nil), "featured")
	require.NoError(t, err)
	assert.Nil(t, b)

	_, err = QueryBool(httptest.NewRequest(http.MethodGet, "/?featured=maybe", nil), "featured")
	assert.ErrorIs(t, err, ErrInvalidQueryParam)
}

func TestRespondValidationErrors(t *testing.T) {
	w := httptest.NewRecorder()

	RespondValidationErrors(w, map[string][]string{"email": {"This field is required."}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ValidationErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, []string{"This field is required."}, body.Errors["email"])
}

func TestRespondInternalError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondInternalError(w)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
