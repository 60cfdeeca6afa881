package agent

import "strings"

type Intent string

const (
	IntentInventoryAnalysis Intent = "inventory_analysis"
	IntentSalesAnalysis     Intent = "sales_analysis"
	IntentCustomerAnalysis  Intent = "customer_analysis"
	IntentGeneralAnalysis   Intent = "general_analysis"
)

// Keyword buckets checked in priority order: a question matching several
// buckets always resolves to the first one (inventory over sales over customer).
var intentKeywords = []struct {
	intent Intent
	words  []string
}{
	{IntentInventoryAnalysis, []string{"inventory", "stock", "reorder", "units"}},
	{IntentSalesAnalysis, []string{"sales", "revenue", "selling", "top"}},
	{IntentCustomerAnalysis, []string{"customer", "repeat", "loyal"}},
}

func ClassifyIntent(question string) Intent {
	q := strings.ToLower(question)
	for _, bucket := range intentKeywords {
		for _, word := range bucket.words {
			if strings.Contains(q, word) {
				return bucket.intent
			}
		}
	}

	return IntentGeneralAnalysis
}

// shopifyQL returns the illustrative ShopifyQL fragment for an intent. The
// fragment is display-only and never executed.
func shopifyQL(intent Intent) string {
	switch intent {
	case IntentInventoryAnalysis:
		return `
FROM products
SHOW product_title, inventory_quantity, variant_sku
WHERE inventory_quantity < 50
ORDER BY inventory_quantity ASC
LIMIT 10
`
	case IntentSalesAnalysis:
		return `
FROM orders
SHOW order_id, total_price, created_at
WHERE created_at >= date_sub(now(), INTERVAL 30 DAY)
ORDER BY total_price DESC
LIMIT 10
`
	case IntentCustomerAnalysis:
		return `
FROM customers
SHOW customer_id, email, orders_count, total_spent
WHERE orders_count > 1
ORDER BY total_spent DESC
LIMIT 10
`
	default:
		return `
FROM orders
SHOW SUM(total_price) AS revenue, COUNT(*) AS order_count
WHERE created_at >= date_sub(now(), INTERVAL 30 DAY)
GROUP BY date(created_at)
`
	}
}
