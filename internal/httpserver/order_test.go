package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"ecommerce-api/internal/models"
	"ecommerce-api/internal/transport"
)

func seedOrderFixtures(env *testEnv) {
	env.DB.Create(&models.Customer{Name: "Ann", Email: "a@x.com", Phone: "1234567890"})
	env.DB.Create(&models.Product{Name: "Widget", Price: 9.99})
	env.DB.Create(&models.Product{Name: "Gadget", Price: 24.50})
}

func TestCreateOrderSingleProduct(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders/1", map[string]any{
		"customer_id": 1,
		"date":        "2024-01-01",
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.EqualValues(t, 1, created.ID)
	require.Equal(t, "2024-01-01", created.Date)
	require.Len(t, created.Products, 1)
	require.Equal(t, "Widget", created.Products[0].Name)
	require.Equal(t, 9.99, created.Products[0].Price)

	recGet, cGet := env.doJSONRequest(http.MethodGet, "/orders/1", nil)
	cGet.SetParamNames("id")
	cGet.SetParamValues("1")
	require.NoError(t, env.Orders.GetOrder(cGet))
	require.Equal(t, http.StatusOK, recGet.Code)

	var got transport.OrderResponse
	require.NoError(t, json.Unmarshal(recGet.Body.Bytes(), &got))
	require.EqualValues(t, 1, got.CustomerID)
	require.Equal(t, "2024-01-01", got.Date)
	require.Len(t, got.Products, 1)
	require.Equal(t, "Widget", got.Products[0].Name)
}

func TestCreateOrderMissingProduct(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	_, c := env.doJSONRequest(http.MethodPost, "/orders/99", map[string]any{
		"customer_id": 1,
		"date":        "2024-01-01",
	})
	c.SetParamNames("id")
	c.SetParamValues("99")

	requireHTTPError(t, env.Orders.CreateOrder(c), http.StatusNotFound)

	// nothing may be persisted when product resolution fails
	require.EqualValues(t, 0, count(t, env.DB, &models.Order{}))
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders/1", map[string]any{
		"customer_id": 77,
		"date":        "2024-01-01",
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, fieldErrors(t, rec), "customer_id")
	require.EqualValues(t, 0, count(t, env.DB, &models.Order{}))
}

func TestCreateOrderBadDate(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders/1", map[string]any{
		"customer_id": 1,
		"date":        "01/02/2024",
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, fieldErrors(t, rec), "date")
}

func TestCreateOrderMultiProduct(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	rec, c := env.doJSONRequest(http.MethodPost, "/order/1,2", map[string]any{
		"customer_id": 1,
		"date":        "2024-02-02",
	})
	c.SetParamNames("ids")
	c.SetParamValues("1,2")
	require.NoError(t, env.Orders.CreateOrderMulti(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Products, 2)

	names := []string{created.Products[0].Name, created.Products[1].Name}
	require.ElementsMatch(t, []string{"Widget", "Gadget"}, names)
}

func TestCreateOrderMultiDedupes(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	rec, c := env.doJSONRequest(http.MethodPost, "/order/1,1", map[string]any{
		"customer_id": 1,
		"date":        "2024-02-02",
	})
	c.SetParamNames("ids")
	c.SetParamValues("1,1")
	require.NoError(t, env.Orders.CreateOrderMulti(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var created transport.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Products, 1)
}

func TestCreateOrderMultiBadIDList(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	_, c := env.doJSONRequest(http.MethodPost, "/order/1,x", map[string]any{
		"customer_id": 1,
		"date":        "2024-02-02",
	})
	c.SetParamNames("ids")
	c.SetParamValues("1,x")

	requireHTTPError(t, env.Orders.CreateOrderMulti(c), http.StatusBadRequest)
	require.EqualValues(t, 0, count(t, env.DB, &models.Order{}))
}

func TestGetOrderNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/orders/5", nil)
	c.SetParamNames("id")
	c.SetParamValues("5")

	requireHTTPError(t, env.Orders.GetOrder(c), http.StatusNotFound)
}

func TestGetOrdersByCustomer(t *testing.T) {
	env := newTestEnv(t)
	seedOrderFixtures(env)

	rec, c := env.doJSONRequest(http.MethodPost, "/orders/1", map[string]any{
		"customer_id": 1,
		"date":        "2024-01-01",
	})
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, env.Orders.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	recList, cList := env.doJSONRequest(http.MethodGet, "/orders/by-customer_id?customer_id=1", nil)
	require.NoError(t, env.Orders.GetOrdersByCustomer(cList))
	require.Equal(t, http.StatusOK, recList.Code)

	var orders []transport.OrderResponse
	require.NoError(t, json.Unmarshal(recList.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Products, 1)
	require.Equal(t, "Widget", orders[0].Products[0].Name)
}

func TestGetOrdersByCustomerEmpty(t *testing.T) {
	env := newTestEnv(t)

	_, c := env.doJSONRequest(http.MethodGet, "/orders/by-customer_id?customer_id=999", nil)
	requireHTTPError(t, env.Orders.GetOrdersByCustomer(c), http.StatusNotFound)
}
