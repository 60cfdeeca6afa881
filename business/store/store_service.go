package store

import (
	"context"
	"fmt"
	"shopsight/business/datagen"
	"shopsight/domain"
	"shopsight/pkg/logger"
	"shopsight/pkg/metrics"
	"time"

	"github.com/google/uuid"
	"github.com/pobyzaarif/goshortcute"
)

const (
	listStoresLimit  = 100
	listDefaultLimit = 50
	listMaxLimit     = 200
)

type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	FindAll(ctx context.Context, limit int) ([]domain.Store, error)
	FindByID(ctx context.Context, id string) (domain.Store, error)
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	CreateBatch(ctx context.Context, products []domain.Product) error
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Product, error)
	DeleteByStore(ctx context.Context, storeID string) error
}

type OrdersRepository interface {
	CreateBatch(ctx context.Context, orders []domain.Order) error
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Order, error)
	DeleteByStore(ctx context.Context, storeID string) error
}

type CustomerRepository interface {
	CreateBatch(ctx context.Context, customers []domain.Customer) error
	FindByStore(ctx context.Context, storeID string, limit int) ([]domain.Customer, error)
	DeleteByStore(ctx context.Context, storeID string) error
}

type QuestionRepository interface {
	DeleteByStore(ctx context.Context, storeID string) error
}

type SummaryCache interface {
	Invalidate(ctx context.Context, storeID string) error
}

type Service struct {
	storeRepo    StoreRepository
	productRepo  ProductRepository
	ordersRepo   OrdersRepository
	customerRepo CustomerRepository
	questionRepo QuestionRepository
	cache        SummaryCache
	generator    *datagen.Generator
	tokenKey     string
}

func NewService(
	storeRepo StoreRepository,
	productRepo ProductRepository,
	ordersRepo OrdersRepository,
	customerRepo CustomerRepository,
	questionRepo QuestionRepository,
	cache SummaryCache,
	generator *datagen.Generator,
	tokenKey string,
) *Service {
	return &Service{
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		ordersRepo:   ordersRepo,
		customerRepo: customerRepo,
		questionRepo: questionRepo,
		cache:        cache,
		generator:    generator,
		tokenKey:     tokenKey,
	}
}

// Connect registers a store (mock OAuth) and seeds its synthetic dataset:
// products first, then orders over those products, then customers folded from
// the orders.
func (s *Service) Connect(ctx context.Context, shopDomain, shopName string) (domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return domain.Store{}, fmt.Errorf("context error: %w", err)
	}

	token, err := s.mintAccessToken(shopDomain)
	if err != nil {
		logger.Error("Failed to mint access token", err)
		return domain.Store{}, err
	}

	newStore := domain.Store{
		ID:          uuid.NewString(),
		ShopDomain:  shopDomain,
		ShopName:    shopName,
		AccessToken: token,
		IsConnected: true,
		ConnectedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.storeRepo.Create(ctx, &newStore); err != nil {
		logger.Error("Failed to create store", err)
		return domain.Store{}, err
	}

	products := s.generator.Products(newStore.ID, datagen.DefaultProductCount)
	orders := s.generator.Orders(newStore.ID, products, datagen.DefaultOrderCount)
	customers := s.generator.Customers(newStore.ID, orders)

	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		logger.Error("Failed to seed products", err)
		return domain.Store{}, err
	}

	if err := s.ordersRepo.CreateBatch(ctx, orders); err != nil {
		logger.Error("Failed to seed orders", err)
		return domain.Store{}, err
	}

	if err := s.customerRepo.CreateBatch(ctx, customers); err != nil {
		logger.Error("Failed to seed customers", err)
		return domain.Store{}, err
	}

	metrics.StoresConnectedTotal.Inc()
	logger.Info("Store connected", "store_id", newStore.ID, "shop_domain", shopDomain)

	return newStore, nil
}

func (s *Service) GetStores(ctx context.Context) ([]domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	return s.storeRepo.FindAll(ctx, listStoresLimit)
}

func (s *Service) GetStoreByID(ctx context.Context, id string) (domain.Store, error) {
	if err := ctx.Err(); err != nil {
		return domain.Store{}, fmt.Errorf("context error: %w", err)
	}

	return s.storeRepo.FindByID(ctx, id)
}

// Disconnect removes the store and every record in its partition, including
// question history, and drops the cached summary.
func (s *Service) Disconnect(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.storeRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.productRepo.DeleteByStore(ctx, id); err != nil {
		logger.Error("Failed to delete store products", err)
		return err
	}

	if err := s.ordersRepo.DeleteByStore(ctx, id); err != nil {
		logger.Error("Failed to delete store orders", err)
		return err
	}

	if err := s.customerRepo.DeleteByStore(ctx, id); err != nil {
		logger.Error("Failed to delete store customers", err)
		return err
	}

	if err := s.questionRepo.DeleteByStore(ctx, id); err != nil {
		logger.Error("Failed to delete store question history", err)
		return err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, id); err != nil {
			logger.Warn("Failed to invalidate summary cache", err)
		}
	}

	logger.Info("Store disconnected", "store_id", id)

	return nil
}

func (s *Service) GetProducts(ctx context.Context, storeID string, limit int) ([]domain.Product, error) {
	return s.productRepo.FindByStore(ctx, storeID, clampLimit(limit))
}

func (s *Service) GetOrders(ctx context.Context, storeID string, limit int) ([]domain.Order, error) {
	return s.ordersRepo.FindByStore(ctx, storeID, clampLimit(limit))
}

func (s *Service) GetCustomers(ctx context.Context, storeID string, limit int) ([]domain.Customer, error) {
	return s.customerRepo.FindByStore(ctx, storeID, clampLimit(limit))
}

// mintAccessToken produces the opaque mock OAuth token: the shop domain plus
// the connect time, AES-CBC encrypted and base64 encoded.
func (s *Service) mintAccessToken(shopDomain string) (string, error) {
	payload := fmt.Sprintf("%s|%d", shopDomain, time.Now().Unix())

	encrypted, err := goshortcute.AESCBCEncrypt([]byte(payload), []byte(s.tokenKey))
	if err != nil {
		return "", fmt.Errorf("failed to encrypt access token: %w", err)
	}

	return "mock_token_" + goshortcute.StringtoBase64Encode(encrypted), nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return listDefaultLimit
	}
	if limit > listMaxLimit {
		return listMaxLimit
	}

	return limit
}
