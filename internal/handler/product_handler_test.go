package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SushanthKalagi/EcommerceApplication/internal/model"
	"github.com/SushanthKalagi/EcommerceApplication/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCatalog is a canned CatalogService capturing handler inputs.
type stubCatalog struct {
	product    *model.Product
	page       *model.Page
	categories []string
	err        error

	lastID     int
	lastParams service.SearchParams
}

func (s *stubCatalog) Create(req *model.ProductRequest) (*model.Product, error) {
	return s.product, s.err
}

func (s *stubCatalog) Update(id int, req *model.ProductRequest) (*model.Product, error) {
	s.lastID = id
	return s.product, s.err
}

func (s *stubCatalog) Delete(id int) error {
	s.lastID = id
	return s.err
}

func (s *stubCatalog) GetByID(id int) (*model.Product, error) {
	s.lastID = id
	return s.product, s.err
}

func (s *stubCatalog) Search(params service.SearchParams) (*model.Page, error) {
	s.lastParams = params
	return s.page, s.err
}

func (s *stubCatalog) Categories() ([]string, error) {
	return s.categories, s.err
}

func newApp(stub *stubCatalog) *fiber.App {
	h := NewProductHandler(stub)

	app := fiber.New()
	products := app.Group("/api/v1/products")
	products.Get("/categories", h.Categories)
	products.Get("/", h.Search)
	products.Post("/", h.Create)
	products.Get("/:id", h.GetByID)
	products.Put("/:id", h.Update)
	products.Delete("/:id", h.Delete)
	return app
}

func laptop() *model.Product {
	return &model.Product{ID: 7, Name: "Laptop", Price: 999.99, Category: "Electronics", Stock: 5}
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestCreateReturns201(t *testing.T) {
	stub := &stubCatalog{product: laptop()}
	app := newApp(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/",
		strings.NewReader(`{"productName":"Laptop","productPrice":999.99}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got model.Product
	decodeBody(t, resp, &got)
	assert.Equal(t, 7, got.ID)
	assert.Equal(t, "Laptop", got.Name)
}

func TestCreateInvalidJSON(t *testing.T) {
	app := newApp(&stubCatalog{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreateValidationFailureBody(t *testing.T) {
	stub := &stubCatalog{err: &service.ValidationError{Fields: map[string]string{
		"productName": "Product name is required",
	}}}
	app := newApp(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var got map[string]string
	decodeBody(t, resp, &got)
	assert.Equal(t, "Product name is required", got["productName"])
}

func TestGetByIDNotFound(t *testing.T) {
	app := newApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGetByIDInvalidID(t *testing.T) {
	app := newApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetByIDFound(t *testing.T) {
	stub := &stubCatalog{product: laptop()}
	app := newApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 7, stub.lastID)
}

func TestUpdateNotFound(t *testing.T) {
	app := newApp(&stubCatalog{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/42",
		strings.NewReader(`{"productName":"Laptop","productPrice":999.99}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteNotFoundHasErrorBody(t *testing.T) {
	app := newApp(&stubCatalog{err: service.ErrProductNotFound})

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/products/42", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got errorResponse
	decodeBody(t, resp, &got)
	assert.Equal(t, http.StatusNotFound, got.Status)
	assert.Contains(t, got.Message, "42")
}

func TestDeleteReturns204(t *testing.T) {
	stub := &stubCatalog{}
	app := newApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/v1/products/7", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 7, stub.lastID)
}

func TestSearchDefaults(t *testing.T) {
	stub := &stubCatalog{page: model.NewPage(nil, 0, 10, 0)}
	app := newApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	p := stub.lastParams
	assert.Nil(t, p.Name)
	assert.Nil(t, p.Category)
	assert.Nil(t, p.MinPrice)
	assert.Nil(t, p.MaxPrice)
	assert.Equal(t, 0, p.Paging.Page)
	assert.Equal(t, 10, p.Paging.Size)
	assert.Equal(t, "productName", p.Paging.Sort)
	assert.False(t, p.Paging.Desc)
}

func TestSearchPassesFiltersThrough(t *testing.T) {
	stub := &stubCatalog{page: model.NewPage(nil, 0, 10, 0)}
	app := newApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/api/v1/products/?name=phone&category=Electronics&minPrice=400&maxPrice=1000&page=2&size=5&sort=productPrice,desc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	p := stub.lastParams
	require.NotNil(t, p.Name)
	assert.Equal(t, "phone", *p.Name)
	require.NotNil(t, p.Category)
	assert.Equal(t, "Electronics", *p.Category)
	require.NotNil(t, p.MinPrice)
	assert.Equal(t, 400.0, *p.MinPrice)
	require.NotNil(t, p.MaxPrice)
	assert.Equal(t, 1000.0, *p.MaxPrice)
	assert.Equal(t, 2, p.Paging.Page)
	assert.Equal(t, 5, p.Paging.Size)
	assert.Equal(t, "productPrice", p.Paging.Sort)
	assert.True(t, p.Paging.Desc)
}

func TestSearchOneSidedPriceIsForwardedAsIs(t *testing.T) {
	stub := &stubCatalog{page: model.NewPage(nil, 0, 10, 0)}
	app := newApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/?minPrice=400", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NotNil(t, stub.lastParams.MinPrice)
	assert.Nil(t, stub.lastParams.MaxPrice)
}

func TestSearchInvalidMinPrice(t *testing.T) {
	app := newApp(&stubCatalog{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/?minPrice=cheap", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoriesEndpoint(t *testing.T) {
	stub := &stubCatalog{categories: []string{"Electronics", "Footwear"}}
	app := newApp(stub)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/products/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []string
	decodeBody(t, resp, &got)
	assert.Equal(t, []string{"Electronics", "Footwear"}, got)
}
