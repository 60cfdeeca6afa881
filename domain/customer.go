package domain

// Customer is a fold over a store's orders, one row per distinct email. It is
// regenerated together with the order set and never written independently.
type Customer struct {
	ID             string  `gorm:"primaryKey;column:id" json:"id"`
	StoreID        string  `gorm:"column:store_id;index;not null" json:"store_id"`
	Email          string  `gorm:"column:email" json:"email"`
	Name           string  `gorm:"column:name" json:"name"`
	TotalOrders    int     `gorm:"column:total_orders" json:"total_orders"`
	TotalSpent     float64 `gorm:"column:total_spent;type:numeric" json:"total_spent"`
	FirstOrderDate string  `gorm:"column:first_order_date" json:"first_order_date"`
	LastOrderDate  string  `gorm:"column:last_order_date" json:"last_order_date"`
}

func (Customer) TableName() string {
	return "customers"
}
