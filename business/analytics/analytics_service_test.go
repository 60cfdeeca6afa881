package analytics

import (
	"context"
	"errors"
	"shopsight/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeStoreRepo struct{ err error }

func (f fakeStoreRepo) FindByID(_ context.Context, id string) (domain.Store, error) {
	if f.err != nil {
		return domain.Store{}, f.err
	}
	return domain.Store{ID: id}, nil
}

type fakeProductRepo struct{ products []domain.Product }

func (f fakeProductRepo) FindByStore(_ context.Context, _ string, _ int) ([]domain.Product, error) {
	return f.products, nil
}

type fakeOrdersRepo struct{ orders []domain.Order }

func (f fakeOrdersRepo) FindByStore(_ context.Context, _ string, _ int) ([]domain.Order, error) {
	return f.orders, nil
}

type fakeCustomerRepo struct{ customers []domain.Customer }

func (f fakeCustomerRepo) FindByStore(_ context.Context, _ string, _ int) ([]domain.Customer, error) {
	return f.customers, nil
}

type fakeCache struct {
	stored  *domain.AnalyticsSummary
	getErr  error
	lastTTL time.Duration
	sets    int
}

func (f *fakeCache) Get(_ context.Context, _ string) (*domain.AnalyticsSummary, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.stored, nil
}

func (f *fakeCache) Set(_ context.Context, _ string, summary *domain.AnalyticsSummary, ttl time.Duration) error {
	f.stored = summary
	f.lastTTL = ttl
	f.sets++
	return nil
}

func TestGetSummaryComputesAndCaches(t *testing.T) {
	cache := &fakeCache{}
	svc := NewService(
		fakeStoreRepo{},
		fakeProductRepo{products: []domain.Product{{ID: "p1", DaysOfStock: 999}}},
		fakeOrdersRepo{orders: []domain.Order{{ID: "o1", TotalPrice: 40}, {ID: "o2", TotalPrice: 60}}},
		fakeCustomerRepo{customers: []domain.Customer{{ID: "c1"}}},
		cache,
	)

	summary, err := svc.GetSummary(context.Background(), "store-1")
	require.NoError(t, err)

	require.Equal(t, 2, summary.TotalOrders)
	require.Equal(t, 100.0, summary.TotalRevenue)
	require.Equal(t, 50.0, summary.AvgOrderValue)
	require.Equal(t, 1, summary.TotalCustomers)
	require.Equal(t, 1, summary.TotalProducts)

	require.Equal(t, 1, cache.sets)
	require.Equal(t, 5*time.Minute, cache.lastTTL)
	require.Equal(t, summary, cache.stored)
}

func TestGetSummaryServesCacheHit(t *testing.T) {
	cached := &domain.AnalyticsSummary{TotalOrders: 42}
	cache := &fakeCache{stored: cached}
	svc := NewService(fakeStoreRepo{}, fakeProductRepo{}, fakeOrdersRepo{}, fakeCustomerRepo{}, cache)

	summary, err := svc.GetSummary(context.Background(), "store-1")
	require.NoError(t, err)
	require.Same(t, cached, summary)
	require.Equal(t, 0, cache.sets)
}

func TestGetSummaryCacheErrorIsAMiss(t *testing.T) {
	cache := &fakeCache{getErr: errors.New("connection refused")}
	svc := NewService(
		fakeStoreRepo{},
		fakeProductRepo{},
		fakeOrdersRepo{orders: []domain.Order{{ID: "o1", TotalPrice: 10}}},
		fakeCustomerRepo{},
		cache,
	)

	summary, err := svc.GetSummary(context.Background(), "store-1")
	require.NoError(t, err)
	require.Equal(t, 1, summary.TotalOrders)
}

func TestGetSummaryWithoutCache(t *testing.T) {
	svc := NewService(fakeStoreRepo{}, fakeProductRepo{}, fakeOrdersRepo{}, fakeCustomerRepo{}, nil)

	summary, err := svc.GetSummary(context.Background(), "store-1")
	require.NoError(t, err)
	require.Equal(t, 0, summary.TotalOrders)
}

func TestGetSummaryUnknownStore(t *testing.T) {
	svc := NewService(fakeStoreRepo{err: domain.ErrStoreNotFound}, fakeProductRepo{}, fakeOrdersRepo{}, fakeCustomerRepo{}, nil)

	_, err := svc.GetSummary(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrStoreNotFound)
}
