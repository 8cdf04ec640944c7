package transport

import "ecommerce-api/internal/models"

// DateLayout is the wire format for order dates.
const DateLayout = "2006-01-02"

type CreateCustomerRequest struct {
	Name  string `json:"name"  validate:"required,min=1"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,min=10"`
}

type CreateAccountRequest struct {
	Username   string `json:"username"    validate:"required,min=1"`
	Password   string `json:"password"    validate:"required,min=1"`
	CustomerID uint   `json:"customer_id" validate:"required"`
}

type UpdateAccountRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type CreateProductRequest struct {
	Name  string   `json:"name"  validate:"required,min=1"`
	Price *float64 `json:"price" validate:"required,gte=0"`
}

type CreateOrderRequest struct {
	CustomerID uint   `json:"customer_id" validate:"required"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
}

// CustomerView is the reduced customer projection embedded in account responses.
type CustomerView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type AccountResponse struct {
	ID         uint         `json:"id"`
	Username   string       `json:"username"`
	Password   string       `json:"password"`
	CustomerID uint         `json:"customer_id"`
	Customer   CustomerView `json:"customer"`
}

// OrderProductView projects an order's product down to name and price.
type OrderProductView struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type OrderResponse struct {
	ID         uint               `json:"id"`
	CustomerID uint               `json:"customer_id"`
	Date       string             `json:"date"`
	Products   []OrderProductView `json:"products"`
}

func NewAccountResponse(a *models.CustomerAccount) AccountResponse {
	return AccountResponse{
		ID:         a.ID,
		Username:   a.Username,
		Password:   a.Password,
		CustomerID: a.CustomerID,
		Customer: CustomerView{
			Name:  a.Customer.Name,
			Email: a.Customer.Email,
			Phone: a.Customer.Phone,
		},
	}
}

func NewOrderResponse(o *models.Order) OrderResponse {
	products := make([]OrderProductView, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, OrderProductView{ID: p.ID, Name: p.Name, Price: p.Price})
	}
	return OrderResponse{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		Date:       o.Date.Format(DateLayout),
		Products:   products,
	}
}

func NewOrderResponses(orders []models.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, NewOrderResponse(&orders[i]))
	}
	return out
}
