package domain

// CREATE TABLE public.products (
//     id                 TEXT PRIMARY KEY,
//     store_id           TEXT NOT NULL,
//     title              TEXT,
//     price              NUMERIC,
//     inventory_quantity INT,
//     avg_daily_sales    INT,
//     days_of_stock      NUMERIC,
//     sku                TEXT,
//     vendor             TEXT,
//     created_at         TEXT
// );

// NoStockoutRisk is the days_of_stock value for products whose average daily
// sales are zero, so no stockout runway can be computed. Products carrying it
// never count as low stock.
const NoStockoutRisk = 999

type Product struct {
	ID                string  `gorm:"primaryKey;column:id" json:"id"`
	StoreID           string  `gorm:"column:store_id;index;not null" json:"store_id"`
	Title             string  `gorm:"column:title;type:text" json:"title"`
	Price             float64 `gorm:"column:price;type:numeric" json:"price"`
	InventoryQuantity int     `gorm:"column:inventory_quantity" json:"inventory_quantity"`
	AvgDailySales     int     `gorm:"column:avg_daily_sales" json:"avg_daily_sales"`
	DaysOfStock       float64 `gorm:"column:days_of_stock;type:numeric" json:"days_of_stock"`
	SKU               string  `gorm:"column:sku" json:"sku"`
	Vendor            string  `gorm:"column:vendor" json:"vendor"`
	CreatedAt         string  `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
