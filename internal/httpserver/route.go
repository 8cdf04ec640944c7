package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	CustomerHandler *CustomerHTTP
	AccountHandler  *AccountHTTP
	ProductHandler  *ProductHTTP
	OrderHandler    *OrderHTTP
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	customers := e.Group("/customers")
	customers.GET("", d.CustomerHandler.GetCustomers)
	customers.GET("/:id", d.CustomerHandler.GetCustomer)
	customers.POST("", d.CustomerHandler.CreateCustomer)
	customers.PUT("/:id", d.CustomerHandler.UpdateCustomer)
	customers.DELETE("/:id", d.CustomerHandler.DeleteCustomer)

	accounts := e.Group("/customeraccounts")
	accounts.GET("/:id", d.AccountHandler.GetAccount)
	accounts.POST("", d.AccountHandler.CreateAccount)
	accounts.PUT("/:id", d.AccountHandler.UpdateAccount)
	accounts.DELETE("/:id", d.AccountHandler.DeleteAccount)

	products := e.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/:id", d.ProductHandler.GetProduct)
	products.POST("", d.ProductHandler.CreateProduct)
	products.PUT("/:id", d.ProductHandler.UpdateProduct)
	products.DELETE("/:id", d.ProductHandler.DeleteProduct)

	orders := e.Group("/orders")
	orders.GET("/by-customer_id", d.OrderHandler.GetOrdersByCustomer)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.POST("/:id", d.OrderHandler.CreateOrder)

	e.POST("/order/:ids", d.OrderHandler.CreateOrderMulti)
}
