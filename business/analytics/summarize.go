package analytics

import (
	"math"
	"shopsight/domain"
	"sort"
)

const (
	lowStockThresholdDays = 14
	topProductsLimit      = 5
	lowStockLimit         = 5
	recentOrdersLimit     = 5
	salesByDayWindow      = 14
)

type productSales struct {
	quantity int
	revenue  float64
}

// Summarize reduces a store's dataset into its analytics summary. Orders are
// expected newest first, the way the order repository returns them.
func Summarize(products []domain.Product, orders []domain.Order, customers []domain.Customer) domain.AnalyticsSummary {
	totalRevenue := 0.0
	for _, o := range orders {
		totalRevenue += o.TotalPrice
	}

	avgOrder := 0.0
	if len(orders) > 0 {
		avgOrder = totalRevenue / float64(len(orders))
	}

	return domain.AnalyticsSummary{
		TotalOrders:      len(orders),
		TotalRevenue:     round2(totalRevenue),
		TotalCustomers:   len(customers),
		TotalProducts:    len(products),
		AvgOrderValue:    round2(avgOrder),
		TopProducts:      topProducts(products, orders),
		RecentOrders:     recentOrders(orders),
		LowStockProducts: lowStockProducts(products),
		SalesByDay:       salesByDay(orders),
	}
}

// topProducts ranks products that appear in at least one order by line-item
// revenue, descending. Ties keep catalog order.
func topProducts(products []domain.Product, orders []domain.Order) []domain.TopProduct {
	sales := make(map[string]*productSales)
	for _, o := range orders {
		for _, item := range o.LineItems {
			s, ok := sales[item.ProductID]
			if !ok {
				s = &productSales{}
				sales[item.ProductID] = s
			}
			s.quantity += item.Quantity
			s.revenue += item.Price * float64(item.Quantity)
		}
	}

	top := make([]domain.TopProduct, 0, len(sales))
	for _, p := range products {
		s, ok := sales[p.ID]
		if !ok {
			continue
		}
		top = append(top, domain.TopProduct{
			ID:           p.ID,
			Title:        p.Title,
			QuantitySold: s.quantity,
			Revenue:      round2(s.revenue),
		})
	}

	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Revenue > top[j].Revenue
	})

	if len(top) > topProductsLimit {
		top = top[:topProductsLimit]
	}

	return top
}

// lowStockProducts filters products below the stock-runway threshold, sorted by
// days of stock ascending. Ties keep catalog order.
func lowStockProducts(products []domain.Product) []domain.LowStockProduct {
	low := make([]domain.LowStockProduct, 0)
	for _, p := range products {
		if p.DaysOfStock >= lowStockThresholdDays {
			continue
		}
		low = append(low, domain.LowStockProduct{
			ID:          p.ID,
			Title:       p.Title,
			Inventory:   p.InventoryQuantity,
			DaysOfStock: p.DaysOfStock,
		})
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].DaysOfStock < low[j].DaysOfStock
	})

	if len(low) > lowStockLimit {
		low = low[:lowStockLimit]
	}

	return low
}

// salesByDay folds orders into per-day buckets, keeps the most recent days of
// the window and presents them oldest first.
func salesByDay(orders []domain.Order) []domain.DailySales {
	byDay := make(map[string]*domain.DailySales)
	for _, o := range orders {
		if o.Date == "" {
			continue
		}
		day, ok := byDay[o.Date]
		if !ok {
			day = &domain.DailySales{Date: o.Date}
			byDay[o.Date] = day
		}
		day.Orders++
		day.Revenue += o.TotalPrice
	}

	days := make([]domain.DailySales, 0, len(byDay))
	for _, day := range byDay {
		day.Revenue = round2(day.Revenue)
		days = append(days, *day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })
	if len(days) > salesByDayWindow {
		days = days[:salesByDayWindow]
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days
}

func recentOrders(orders []domain.Order) []domain.RecentOrder {
	recent := make([]domain.RecentOrder, 0, recentOrdersLimit)
	for _, o := range orders {
		if len(recent) == recentOrdersLimit {
			break
		}
		recent = append(recent, domain.RecentOrder{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Customer:    o.CustomerName,
			Total:       o.TotalPrice,
			Status:      o.Status,
			Date:        o.CreatedAt,
		})
	}

	return recent
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
