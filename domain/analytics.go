package domain

type TopProduct struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

type LowStockProduct struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Inventory   int     `json:"inventory"`
	DaysOfStock float64 `json:"days_of_stock"`
}

type DailySales struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type RecentOrder struct {
	ID          string  `json:"id"`
	OrderNumber int     `json:"order_number"`
	Customer    string  `json:"customer"`
	Total       float64 `json:"total"`
	Status      string  `json:"status"`
	Date        string  `json:"date"`
}

type AnalyticsSummary struct {
	TotalOrders      int               `json:"total_orders"`
	TotalRevenue     float64           `json:"total_revenue"`
	TotalCustomers   int               `json:"total_customers"`
	TotalProducts    int               `json:"total_products"`
	AvgOrderValue    float64           `json:"avg_order_value"`
	TopProducts      []TopProduct      `json:"top_products"`
	RecentOrders     []RecentOrder     `json:"recent_orders"`
	LowStockProducts []LowStockProduct `json:"low_stock_products"`
	SalesByDay       []DailySales      `json:"sales_by_day"`
}
