package datagen

import (
	"fmt"
	"math"
	"math/rand"
	"shopsight/domain"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Defaults used when a store is connected.
const (
	DefaultProductCount = 20
	DefaultOrderCount   = 100
)

// Generator produces a self-consistent synthetic dataset for one store:
// products, orders referencing those products, and customers folded from the
// orders. The random source is injected so tests can seed it.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Generator{rng: rng}
}

func (g *Generator) Products(storeID string, count int) []domain.Product {
	now := time.Now().UTC()
	products := make([]domain.Product, 0, count)

	for i := 0; i < count; i++ {
		inventory := g.intBetween(0, 200)
		dailySales := g.intBetween(2, 15)

		daysOfStock := float64(domain.NoStockoutRisk)
		if dailySales > 0 {
			daysOfStock = round1(float64(inventory) / float64(dailySales))
		}

		createdAt := now.AddDate(0, 0, -g.intBetween(30, 365))

		products = append(products, domain.Product{
			ID:                fmt.Sprintf("prod_%s_%d", storeRef(storeID), i),
			StoreID:           storeID,
			Title:             productNames[i%len(productNames)],
			Price:             round2(g.floatBetween(19.99, 299.99)),
			InventoryQuantity: inventory,
			AvgDailySales:     dailySales,
			DaysOfStock:       daysOfStock,
			SKU:               fmt.Sprintf("SKU-%d", g.intBetween(1000, 9999)),
			Vendor:            vendors[g.rng.Intn(len(vendors))],
			CreatedAt:         createdAt.Format(time.RFC3339),
		})
	}

	return products
}

func (g *Generator) Orders(storeID string, products []domain.Product, count int) []domain.Order {
	now := time.Now().UTC()
	orders := make([]domain.Order, 0, count)

	for i := 0; i < count; i++ {
		numItems := g.intBetween(1, 4)
		if numItems > len(products) {
			numItems = len(products)
		}

		lineItems := make([]domain.LineItem, 0, numItems)
		total := 0.0
		for _, idx := range g.rng.Perm(len(products))[:numItems] {
			p := products[idx]
			qty := g.intBetween(1, 3)
			lineItems = append(lineItems, domain.LineItem{
				ProductID: p.ID,
				Title:     p.Title,
				Quantity:  qty,
				Price:     p.Price,
			})
			total += p.Price * float64(qty)
		}

		orderDate := now.AddDate(0, 0, -g.intBetween(0, 90))

		orders = append(orders, domain.Order{
			ID:            fmt.Sprintf("order_%s_%d", storeRef(storeID), i),
			StoreID:       storeID,
			OrderNumber:   1000 + i,
			CustomerName:  customerNames[g.rng.Intn(len(customerNames))],
			CustomerEmail: fmt.Sprintf("customer%d@example.com", i),
			TotalPrice:    round2(total),
			LineItems:     datatypes.NewJSONSlice(lineItems),
			Status:        orderStatuses[g.rng.Intn(len(orderStatuses))],
			CreatedAt:     orderDate.Format(time.RFC3339),
			Date:          orderDate.Format("2006-01-02"),
		})
	}

	// Newest first. RFC3339 strings sort lexicographically in time order.
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})

	return orders
}

// Customers folds the order set into one customer per distinct email,
// preserving order arrival order in the output.
func (g *Generator) Customers(storeID string, orders []domain.Order) []domain.Customer {
	byEmail := make(map[string]*domain.Customer)
	emails := make([]string, 0)

	for _, order := range orders {
		c, ok := byEmail[order.CustomerEmail]
		if !ok {
			c = &domain.Customer{
				ID:             "cust_" + shortHex(),
				StoreID:        storeID,
				Email:          order.CustomerEmail,
				Name:           order.CustomerName,
				FirstOrderDate: order.CreatedAt,
				LastOrderDate:  order.CreatedAt,
			}
			byEmail[order.CustomerEmail] = c
			emails = append(emails, order.CustomerEmail)
		}

		c.TotalOrders++
		c.TotalSpent = round2(c.TotalSpent + order.TotalPrice)
		if order.CreatedAt < c.FirstOrderDate {
			c.FirstOrderDate = order.CreatedAt
		}
		if order.CreatedAt > c.LastOrderDate {
			c.LastOrderDate = order.CreatedAt
		}
	}

	customers := make([]domain.Customer, 0, len(emails))
	for _, email := range emails {
		customers = append(customers, *byEmail[email])
	}

	return customers
}

// intBetween returns a uniform int in [min, max], both inclusive.
func (g *Generator) intBetween(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

func (g *Generator) floatBetween(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// storeRef shortens a store id to the 8-char prefix used in entity ids.
func storeRef(storeID string) string {
	if len(storeID) > 8 {
		return storeID[:8]
	}

	return storeID
}

func shortHex() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
