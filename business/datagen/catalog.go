package datagen

import "shopsight/domain"

// Fixed pools the generator draws from. The product catalog cycles by index so
// any product count yields stable, recognizable titles.
var productNames = []string{
	"Premium Wireless Headphones", "Organic Cotton T-Shirt", "Smart Watch Pro",
	"Leather Wallet Classic", "Running Shoes Elite", "Coffee Maker Deluxe",
	"Yoga Mat Premium", "Portable Charger 20000mAh", "Bamboo Water Bottle",
	"Sunglasses UV400", "Backpack Travel", "Desk Lamp LED", "Bluetooth Speaker",
	"Plant-Based Protein Powder", "Essential Oil Set", "Ceramic Coffee Mug",
	"Fitness Tracker Band", "Stainless Steel Flask", "Notebook Leather Bound",
	"Wireless Mouse Ergonomic",
}

var vendors = []string{"Supplier A", "Supplier B", "Supplier C"}

var customerNames = []string{
	"John Smith", "Emma Wilson", "Michael Brown", "Sarah Davis", "James Johnson",
	"Emily Taylor", "David Anderson", "Olivia Martinez", "Daniel Thomas", "Sophia Garcia",
}

// Repeating fulfilled three times gives the 60/20/20 status split.
var orderStatuses = []string{
	domain.OrderStatusFulfilled,
	domain.OrderStatusFulfilled,
	domain.OrderStatusFulfilled,
	domain.OrderStatusPending,
	domain.OrderStatusShipped,
}
