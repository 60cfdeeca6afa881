package agent

import (
	"fmt"
	"shopsight/domain"
	"strings"
)

const (
	// Thresholds and caps for the prompt context block.
	alertThresholdDays = 7
	maxProductLines    = 10
	maxLowStockLines   = 5
)

// StoreData is the in-memory dataset the agent answers over.
type StoreData struct {
	Products  []domain.Product
	Orders    []domain.Order
	Customers []domain.Customer
}

// buildPrompt renders the store dataset and the question into the text block
// submitted to the LLM.
func buildPrompt(question string, data StoreData) string {
	totalRevenue := 0.0
	for _, o := range data.Orders {
		totalRevenue += o.TotalPrice
	}

	avgOrder := 0.0
	if len(data.Orders) > 0 {
		avgOrder = totalRevenue / float64(len(data.Orders))
	}

	lowStock := make([]domain.Product, 0)
	for _, p := range data.Products {
		if p.DaysOfStock < alertThresholdDays {
			lowStock = append(lowStock, p)
		}
	}

	repeatCustomers := 0
	for _, c := range data.Customers {
		if c.TotalOrders > 1 {
			repeatCustomers++
		}
	}

	var b strings.Builder
	b.WriteString("You are an AI analytics assistant for a Shopify store. Analyze the following store data and answer the user's question in simple, business-friendly language.\n\n")

	b.WriteString("STORE DATA:\n")
	fmt.Fprintf(&b, "- Total products: %d\n", len(data.Products))
	fmt.Fprintf(&b, "- Total orders (90 days): %d\n", len(data.Orders))
	fmt.Fprintf(&b, "- Total Revenue (90 days): $%.2f\n", totalRevenue)
	fmt.Fprintf(&b, "- Average Order Value: $%.2f\n", avgOrder)
	fmt.Fprintf(&b, "- Products with low stock (< %d days): %d\n", alertThresholdDays, len(lowStock))
	fmt.Fprintf(&b, "- Total customers: %d\n", len(data.Customers))
	fmt.Fprintf(&b, "- Repeat customers: %d\n", repeatCustomers)

	b.WriteString("\nTOP PRODUCTS BY DAILY SALES:\n")
	for i, p := range data.Products {
		if i == maxProductLines {
			break
		}
		fmt.Fprintf(&b, "- %s: $%.2f, Stock: %d, Daily Sales: %d\n",
			p.Title, p.Price, p.InventoryQuantity, p.AvgDailySales)
	}

	b.WriteString("\nLOW STOCK ALERTS:\n")
	if len(lowStock) == 0 {
		b.WriteString("No immediate stock concerns\n")
	} else {
		for i, p := range lowStock {
			if i == maxLowStockLines {
				break
			}
			fmt.Fprintf(&b, "- %s: %d units, ~%.1f days of stock\n",
				p.Title, p.InventoryQuantity, p.DaysOfStock)
		}
	}

	fmt.Fprintf(&b, "\nUSER QUESTION: %s\n\n", question)

	b.WriteString("Please provide:\n")
	b.WriteString("1. A clear, actionable answer to the question\n")
	b.WriteString("2. Relevant data points to support your answer\n")
	b.WriteString("3. Any recommendations for the store owner\n\n")
	b.WriteString("Keep the response concise but informative. Use specific numbers when possible.\n")

	return b.String()
}
