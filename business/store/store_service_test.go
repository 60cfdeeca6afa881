package store

import (
	"context"
	"math/rand"
	"shopsight/business/datagen"
	"shopsight/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testTokenKey = "0123456789abcdef0123456789abcdef"

type fakeStoreRepo struct {
	created []domain.Store
	stores  []domain.Store
	byID    map[string]domain.Store
	deleted []string
}

func (f *fakeStoreRepo) Create(_ context.Context, store *domain.Store) error {
	f.created = append(f.created, *store)
	return nil
}

func (f *fakeStoreRepo) FindAll(_ context.Context, _ int) ([]domain.Store, error) {
	return f.stores, nil
}

func (f *fakeStoreRepo) FindByID(_ context.Context, id string) (domain.Store, error) {
	store, ok := f.byID[id]
	if !ok {
		return domain.Store{}, domain.ErrStoreNotFound
	}
	return store, nil
}

func (f *fakeStoreRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrStoreNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeProductRepo struct {
	batch        []domain.Product
	deletedStore string
	lastLimit    int
}

func (f *fakeProductRepo) CreateBatch(_ context.Context, products []domain.Product) error {
	f.batch = products
	return nil
}

func (f *fakeProductRepo) FindByStore(_ context.Context, _ string, limit int) ([]domain.Product, error) {
	f.lastLimit = limit
	return f.batch, nil
}

func (f *fakeProductRepo) DeleteByStore(_ context.Context, storeID string) error {
	f.deletedStore = storeID
	return nil
}

type fakeOrdersRepo struct {
	batch        []domain.Order
	deletedStore string
}

func (f *fakeOrdersRepo) CreateBatch(_ context.Context, orders []domain.Order) error {
	f.batch = orders
	return nil
}

func (f *fakeOrdersRepo) FindByStore(_ context.Context, _ string, _ int) ([]domain.Order, error) {
	return f.batch, nil
}

func (f *fakeOrdersRepo) DeleteByStore(_ context.Context, storeID string) error {
	f.deletedStore = storeID
	return nil
}

type fakeCustomerRepo struct {
	batch        []domain.Customer
	deletedStore string
}

func (f *fakeCustomerRepo) CreateBatch(_ context.Context, customers []domain.Customer) error {
	f.batch = customers
	return nil
}

func (f *fakeCustomerRepo) FindByStore(_ context.Context, _ string, _ int) ([]domain.Customer, error) {
	return f.batch, nil
}

func (f *fakeCustomerRepo) DeleteByStore(_ context.Context, storeID string) error {
	f.deletedStore = storeID
	return nil
}

type fakeQuestionRepo struct {
	deletedStore string
}

func (f *fakeQuestionRepo) DeleteByStore(_ context.Context, storeID string) error {
	f.deletedStore = storeID
	return nil
}

type fakeCache struct {
	invalidated []string
}

func (f *fakeCache) Invalidate(_ context.Context, storeID string) error {
	f.invalidated = append(f.invalidated, storeID)
	return nil
}

type serviceFixture struct {
	svc          *Service
	storeRepo    *fakeStoreRepo
	productRepo  *fakeProductRepo
	ordersRepo   *fakeOrdersRepo
	customerRepo *fakeCustomerRepo
	questionRepo *fakeQuestionRepo
	cache        *fakeCache
}

func newServiceFixture() serviceFixture {
	f := serviceFixture{
		storeRepo:    &fakeStoreRepo{byID: make(map[string]domain.Store)},
		productRepo:  &fakeProductRepo{},
		ordersRepo:   &fakeOrdersRepo{},
		customerRepo: &fakeCustomerRepo{},
		questionRepo: &fakeQuestionRepo{},
		cache:        &fakeCache{},
	}
	f.svc = NewService(
		f.storeRepo,
		f.productRepo,
		f.ordersRepo,
		f.customerRepo,
		f.questionRepo,
		f.cache,
		datagen.NewGenerator(rand.New(rand.NewSource(42))),
		testTokenKey,
	)
	return f
}

func TestConnectSeedsDataset(t *testing.T) {
	f := newServiceFixture()

	store, err := f.svc.Connect(context.Background(), "demo.myshopify.com", "Demo Store")
	require.NoError(t, err)

	require.NotEmpty(t, store.ID)
	require.Equal(t, "demo.myshopify.com", store.ShopDomain)
	require.Equal(t, "Demo Store", store.ShopName)
	require.True(t, store.IsConnected)
	require.NotEmpty(t, store.ConnectedAt)
	require.True(t, strings.HasPrefix(store.AccessToken, "mock_token_"))

	require.Len(t, f.storeRepo.created, 1)
	require.Equal(t, store, f.storeRepo.created[0])

	require.Len(t, f.productRepo.batch, datagen.DefaultProductCount)
	require.Len(t, f.ordersRepo.batch, datagen.DefaultOrderCount)
	require.NotEmpty(t, f.customerRepo.batch)

	for _, p := range f.productRepo.batch {
		require.Equal(t, store.ID, p.StoreID)
	}
	for _, o := range f.ordersRepo.batch {
		require.Equal(t, store.ID, o.StoreID)
	}
	for _, c := range f.customerRepo.batch {
		require.Equal(t, store.ID, c.StoreID)
	}
}

func TestConnectMintsDistinctTokens(t *testing.T) {
	f := newServiceFixture()

	a, err := f.svc.Connect(context.Background(), "one.myshopify.com", "One")
	require.NoError(t, err)
	b, err := f.svc.Connect(context.Background(), "two.myshopify.com", "Two")
	require.NoError(t, err)

	require.NotEqual(t, a.AccessToken, b.AccessToken)
}

func TestDisconnectCascades(t *testing.T) {
	f := newServiceFixture()
	f.storeRepo.byID["store-1"] = domain.Store{ID: "store-1"}

	err := f.svc.Disconnect(context.Background(), "store-1")
	require.NoError(t, err)

	require.Equal(t, []string{"store-1"}, f.storeRepo.deleted)
	require.Equal(t, "store-1", f.productRepo.deletedStore)
	require.Equal(t, "store-1", f.ordersRepo.deletedStore)
	require.Equal(t, "store-1", f.customerRepo.deletedStore)
	require.Equal(t, "store-1", f.questionRepo.deletedStore)
	require.Equal(t, []string{"store-1"}, f.cache.invalidated)
}

func TestDisconnectUnknownStore(t *testing.T) {
	f := newServiceFixture()

	err := f.svc.Disconnect(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrStoreNotFound)
	require.Empty(t, f.productRepo.deletedStore)
}

func TestGetStoreByID(t *testing.T) {
	f := newServiceFixture()
	f.storeRepo.byID["store-1"] = domain.Store{ID: "store-1", ShopName: "Demo"}

	store, err := f.svc.GetStoreByID(context.Background(), "store-1")
	require.NoError(t, err)
	require.Equal(t, "Demo", store.ShopName)

	_, err = f.svc.GetStoreByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestGetProductsClampsLimit(t *testing.T) {
	f := newServiceFixture()

	_, err := f.svc.GetProducts(context.Background(), "store-1", 0)
	require.NoError(t, err)
	require.Equal(t, 50, f.productRepo.lastLimit)

	_, err = f.svc.GetProducts(context.Background(), "store-1", 1000)
	require.NoError(t, err)
	require.Equal(t, 200, f.productRepo.lastLimit)

	_, err = f.svc.GetProducts(context.Background(), "store-1", 25)
	require.NoError(t, err)
	require.Equal(t, 25, f.productRepo.lastLimit)
}

func TestConnectCancelledContext(t *testing.T) {
	f := newServiceFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.Connect(ctx, "demo.myshopify.com", "Demo")
	require.Error(t, err)
	require.Empty(t, f.storeRepo.created)
}
