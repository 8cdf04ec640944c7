package models

import "time"

type Customer struct {
	ID    uint   `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name  string `gorm:"size:255;not null"         json:"name"`
	Email string `gorm:"size:320"                  json:"email"`
	Phone string `gorm:"size:15"                   json:"phone"`

	Orders  []Order          `gorm:"foreignKey:CustomerID" json:"-"`
	Account *CustomerAccount `gorm:"foreignKey:CustomerID" json:"-"`
}

type CustomerAccount struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"     json:"id"`
	Username   string `gorm:"size:255;uniqueIndex;not null" json:"username"`
	Password   string `gorm:"size:255;not null"            json:"password"`
	CustomerID uint   `gorm:"index;not null"               json:"customer_id"`

	Customer Customer `gorm:"foreignKey:CustomerID" json:"-"`
}

type Product struct {
	ID    uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"size:255;not null"        json:"name"`
	Price float64 `gorm:"not null"                 json:"price"`

	Orders []Order `gorm:"many2many:order_products" json:"-"`
}

type Order struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Date       time.Time `gorm:"type:date;not null"       json:"date"`
	CustomerID uint      `gorm:"index;not null"           json:"customer_id"`

	Products []Product `gorm:"many2many:order_products" json:"products"`
}

// All returns every model in migration order, parents before dependents.
func All() []any {
	return []any{&Customer{}, &CustomerAccount{}, &Product{}, &Order{}}
}
