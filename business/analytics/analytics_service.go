package analytics

import (
	"context"
	"fmt"
	"shopsight/domain"
	"shopsight/pkg/logger"
	"time"
)

const (
	// How many records of each collection a summary is computed over.
	loadLimit = 1000

	summaryCacheTTL = 5 * time.Minute
)

type StoreRepository interface {
	FindByID(ctx context.Context, id string) (domain.Store, error)
}

type ProductRepository interface {
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Product, error)
}

type OrdersRepository interface {
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Order, error)
}

type CustomerRepository interface {
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Customer, error)
}

// SummaryCache is a best-effort cache: a (nil, nil) Get is a miss.
type SummaryCache interface {
	Get(ctx context.Context, storeID string) (*domain.AnalyticsSummary, error)
	Set(ctx context.Context, storeID string, summary *domain.AnalyticsSummary, ttl time.Duration) error
}

type Service struct {
	storeRepo    StoreRepository
	productRepo  ProductRepository
	ordersRepo   OrdersRepository
	customerRepo CustomerRepository
	cache        SummaryCache
}

func NewService(
	storeRepo StoreRepository,
	productRepo ProductRepository,
	ordersRepo OrdersRepository,
	customerRepo CustomerRepository,
	cache SummaryCache,
) *Service {
	return &Service{
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		ordersRepo:   ordersRepo,
		customerRepo: customerRepo,
		cache:        cache,
	}
}

// GetSummary computes the analytics summary for a store, serving from the
// cache when possible. Cache failures are logged and treated as misses.
func (s *Service) GetSummary(ctx context.Context, storeID string) (*domain.AnalyticsSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if _, err := s.storeRepo.FindByID(ctx, storeID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, storeID)
		if err != nil {
			logger.Warn("Failed to read summary cache", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	products, err := s.productRepo.FindByStore(ctx, storeID, loadLimit)
	if err != nil {
		logger.Error("Failed to load products for summary", err)
		return nil, err
	}

	orders, err := s.ordersRepo.FindByStore(ctx, storeID, loadLimit)
	if err != nil {
		logger.Error("Failed to load orders for summary", err)
		return nil, err
	}

	customers, err := s.customerRepo.FindByStore(ctx, storeID, loadLimit)
	if err != nil {
		logger.Error("Failed to load customers for summary", err)
		return nil, err
	}

	summary := Summarize(products, orders, customers)

	if s.cache != nil {
		if err := s.cache.Set(ctx, storeID, &summary, summaryCacheTTL); err != nil {
			logger.Warn("Failed to write summary cache", err)
		}
	}

	return &summary, nil
}
