package agent

import (
	"fmt"
	"math"
	"shopsight/domain"
	"sort"
	"strings"
)

const fallbackLowStockDays = 14

// fallbackAnswer is the rule-based path taken whenever the LLM attempt fails.
// It is total: every branch produces a complete answer and it never errors.
func fallbackAnswer(question string, data StoreData) Answer {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "stock") || strings.Contains(q, "inventory") || strings.Contains(q, "reorder"):
		return lowStockFallback(data)
	case strings.Contains(q, "top") && (strings.Contains(q, "sell") || strings.Contains(q, "product")):
		return topSellersFallback(data)
	case strings.Contains(q, "repeat") || strings.Contains(q, "loyal"):
		return repeatCustomersFallback(data)
	default:
		return overviewFallback(data)
	}
}

func lowStockFallback(data StoreData) Answer {
	low := make([]domain.Product, 0)
	for _, p := range data.Products {
		if p.DaysOfStock < fallbackLowStockDays {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool { return low[i].DaysOfStock < low[j].DaysOfStock })
	if len(low) > 5 {
		low = low[:5]
	}

	var text string
	if len(low) > 0 {
		parts := make([]string, 0, len(low))
		for _, p := range low {
			parts = append(parts, fmt.Sprintf("%s (%d units, ~%.1f days)",
				p.Title, p.InventoryQuantity, p.DaysOfStock))
		}
		text = fmt.Sprintf("Based on current sales velocity, these products need attention: %s. Consider reordering soon to avoid stockouts.",
			strings.Join(parts, ", "))
	} else {
		text = "All products currently have healthy stock levels (more than 14 days of inventory)."
	}

	return Answer{
		Text:       text,
		Confidence: domain.ConfidenceHigh,
		Intent:     IntentInventoryAnalysis,
		ShopifyQL:  shopifyQL(IntentInventoryAnalysis),
		Source:     AnswerSourceFallback,
	}
}

func topSellersFallback(data StoreData) Answer {
	unitsSold := make(map[string]int)
	for _, o := range data.Orders {
		for _, item := range o.LineItems {
			unitsSold[item.ProductID] += item.Quantity
		}
	}

	ranked := make([]domain.Product, len(data.Products))
	copy(ranked, data.Products)
	sort.SliceStable(ranked, func(i, j int) bool {
		return unitsSold[ranked[i].ID] > unitsSold[ranked[j].ID]
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}

	parts := make([]string, 0, len(ranked))
	for _, p := range ranked {
		parts = append(parts, fmt.Sprintf("%s (%d units sold)", p.Title, unitsSold[p.ID]))
	}

	return Answer{
		Text: fmt.Sprintf("Your top selling products are: %s. These are driving most of your revenue.",
			strings.Join(parts, ", ")),
		Confidence: domain.ConfidenceHigh,
		Intent:     IntentSalesAnalysis,
		ShopifyQL:  shopifyQL(IntentSalesAnalysis),
		Source:     AnswerSourceFallback,
	}
}

func repeatCustomersFallback(data StoreData) Answer {
	repeat := 0
	maxOrders := 0
	for _, c := range data.Customers {
		if c.TotalOrders > 1 {
			repeat++
		}
		if c.TotalOrders > maxOrders {
			maxOrders = c.TotalOrders
		}
	}

	retention := 0.0
	if len(data.Customers) > 0 {
		retention = math.Round(float64(repeat)/float64(len(data.Customers))*1000) / 10
	}

	return Answer{
		Text: fmt.Sprintf("You have %d repeat customers out of %d total (%.1f%% retention rate). Your top repeat customer has %d orders.",
			repeat, len(data.Customers), retention, maxOrders),
		Confidence: domain.ConfidenceHigh,
		Intent:     IntentCustomerAnalysis,
		ShopifyQL:  shopifyQL(IntentCustomerAnalysis),
		Source:     AnswerSourceFallback,
	}
}

func overviewFallback(data StoreData) Answer {
	totalRevenue := 0.0
	for _, o := range data.Orders {
		totalRevenue += o.TotalPrice
	}

	avgOrder := 0.0
	if len(data.Orders) > 0 {
		avgOrder = totalRevenue / float64(len(data.Orders))
	}

	return Answer{
		Text: fmt.Sprintf("Your store has %d orders totaling $%.2f in the last 90 days. Average order value is $%.2f. You have %d products and %d customers.",
			len(data.Orders), totalRevenue, avgOrder, len(data.Products), len(data.Customers)),
		Confidence: domain.ConfidenceMedium,
		Intent:     IntentGeneralAnalysis,
		ShopifyQL:  shopifyQL(IntentGeneralAnalysis),
		Source:     AnswerSourceFallback,
	}
}
