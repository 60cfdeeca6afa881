package datagen

import (
	"fmt"
	"math"
	"math/rand"
	"shopsight/domain"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

const testStoreID = "11112222-3333-4444-5555-666677778888"

func newSeededGenerator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

func TestProductsInvariants(t *testing.T) {
	g := newSeededGenerator(42)
	products := g.Products(testStoreID, 40)

	require.Len(t, products, 40)

	for i, p := range products {
		require.Equal(t, fmt.Sprintf("prod_%s_%d", testStoreID[:8], i), p.ID)
		require.Equal(t, testStoreID, p.StoreID)
		require.Equal(t, productNames[i%len(productNames)], p.Title)

		require.GreaterOrEqual(t, p.Price, 19.99)
		require.LessOrEqual(t, p.Price, 299.99)
		require.Equal(t, math.Round(p.Price*100)/100, p.Price)

		require.GreaterOrEqual(t, p.InventoryQuantity, 0)
		require.LessOrEqual(t, p.InventoryQuantity, 200)
		require.GreaterOrEqual(t, p.AvgDailySales, 2)
		require.LessOrEqual(t, p.AvgDailySales, 15)

		want := math.Round(float64(p.InventoryQuantity)/float64(p.AvgDailySales)*10) / 10
		require.Equal(t, want, p.DaysOfStock)

		require.Contains(t, vendors, p.Vendor)
		require.Regexp(t, `^SKU-\d{4}$`, p.SKU)
		require.NotEmpty(t, p.CreatedAt)
	}
}

func TestOrdersInvariants(t *testing.T) {
	g := newSeededGenerator(7)
	products := g.Products(testStoreID, 20)
	orders := g.Orders(testStoreID, products, 100)

	require.Len(t, orders, 100)

	productsByID := make(map[string]domain.Product)
	for _, p := range products {
		productsByID[p.ID] = p
	}

	seenNumbers := make(map[int]bool)
	for i, o := range orders {
		require.Equal(t, testStoreID, o.StoreID)

		// Newest first.
		if i > 0 {
			require.LessOrEqual(t, o.CreatedAt, orders[i-1].CreatedAt)
		}

		require.GreaterOrEqual(t, len(o.LineItems), 1)
		require.LessOrEqual(t, len(o.LineItems), 4)

		total := 0.0
		seenProducts := make(map[string]bool)
		for _, item := range o.LineItems {
			p, ok := productsByID[item.ProductID]
			require.True(t, ok, "line item references unknown product %s", item.ProductID)
			require.False(t, seenProducts[item.ProductID], "duplicate product in one order")
			seenProducts[item.ProductID] = true

			require.Equal(t, p.Title, item.Title)
			require.Equal(t, p.Price, item.Price)
			require.GreaterOrEqual(t, item.Quantity, 1)
			require.LessOrEqual(t, item.Quantity, 3)

			total += item.Price * float64(item.Quantity)
		}
		require.Equal(t, math.Round(total*100)/100, o.TotalPrice)

		require.Contains(t, []string{
			domain.OrderStatusFulfilled,
			domain.OrderStatusPending,
			domain.OrderStatusShipped,
		}, o.Status)

		require.GreaterOrEqual(t, o.OrderNumber, 1000)
		require.Less(t, o.OrderNumber, 1100)
		require.False(t, seenNumbers[o.OrderNumber])
		seenNumbers[o.OrderNumber] = true

		require.Equal(t, fmt.Sprintf("customer%d@example.com", o.OrderNumber-1000), o.CustomerEmail)
		require.Equal(t, o.CreatedAt[:10], o.Date)
	}
}

func TestCustomersFold(t *testing.T) {
	g := newSeededGenerator(99)
	products := g.Products(testStoreID, 10)
	orders := g.Orders(testStoreID, products, 50)
	customers := g.Customers(testStoreID, orders)

	byEmail := make(map[string][]domain.Order)
	for _, o := range orders {
		byEmail[o.CustomerEmail] = append(byEmail[o.CustomerEmail], o)
	}

	require.Len(t, customers, len(byEmail))

	for _, c := range customers {
		ownOrders := byEmail[c.Email]
		require.NotEmpty(t, ownOrders)
		require.Equal(t, len(ownOrders), c.TotalOrders)

		spent := 0.0
		first := ownOrders[0].CreatedAt
		last := ownOrders[0].CreatedAt
		for _, o := range ownOrders {
			spent = math.Round((spent+o.TotalPrice)*100) / 100
			if o.CreatedAt < first {
				first = o.CreatedAt
			}
			if o.CreatedAt > last {
				last = o.CreatedAt
			}
		}

		require.Equal(t, spent, c.TotalSpent)
		require.Equal(t, first, c.FirstOrderDate)
		require.Equal(t, last, c.LastOrderDate)
		require.Regexp(t, `^cust_[0-9a-f]{8}$`, c.ID)
	}
}

func TestOrdersSampleSmallCatalog(t *testing.T) {
	g := newSeededGenerator(3)
	products := g.Products(testStoreID, 2)
	orders := g.Orders(testStoreID, products, 20)

	for _, o := range orders {
		require.LessOrEqual(t, len(o.LineItems), 2)
	}
}

func TestSeededGeneratorIsReproducible(t *testing.T) {
	a := newSeededGenerator(1234).Products(testStoreID, 20)
	b := newSeededGenerator(1234).Products(testStoreID, 20)

	// CreatedAt is anchored to the wall clock, so strip it before comparing.
	for i := range a {
		a[i].CreatedAt = ""
		b[i].CreatedAt = ""
	}
	require.Equal(t, a, b)
}

func TestSortedOrderNumbersAreStable(t *testing.T) {
	g := newSeededGenerator(5)
	products := g.Products(testStoreID, 20)
	orders := g.Orders(testStoreID, products, 30)

	sorted := sort.SliceIsSorted(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	require.True(t, sorted)
}
