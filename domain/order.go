package domain

import "gorm.io/datatypes"

const (
	OrderStatusFulfilled = "fulfilled"
	OrderStatusPending   = "pending"
	OrderStatusShipped   = "shipped"
)

type LineItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID            string                        `gorm:"primaryKey;column:id" json:"id"`
	StoreID       string                        `gorm:"column:store_id;index;not null" json:"store_id"`
	OrderNumber   int                           `gorm:"column:order_number" json:"order_number"`
	CustomerName  string                        `gorm:"column:customer_name" json:"customer_name"`
	CustomerEmail string                        `gorm:"column:customer_email" json:"customer_email"`
	TotalPrice    float64                       `gorm:"column:total_price;type:numeric" json:"total_price"`
	LineItems     datatypes.JSONSlice[LineItem] `gorm:"column:line_items" json:"line_items"`
	Status        string                        `gorm:"column:status" json:"status"`
	CreatedAt     string                        `gorm:"column:created_at;index" json:"created_at"`
	Date          string                        `gorm:"column:date" json:"date"`
}

func (Order) TableName() string {
	return "orders"
}
