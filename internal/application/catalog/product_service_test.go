package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByBarcode(ctx context.Context, barcode string) (*catalog.Product, error) {
	args := m.Called(ctx, barcode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindLowStock(ctx context.Context, threshold int) ([]catalog.Product, error) {
	args := m.Called(ctx, threshold)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindExpiringWithin(ctx context.Context, days int) ([]catalog.Product, error) {
	args := m.Called(ctx, days)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func TestProductListHidesInactiveByDefault(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, nil)

	product, err := catalog.NewProduct("PRD-0001", "Soap", decimal.NewFromInt(30), 5)
	require.NoError(t, err)

	activeOnly := mock.MatchedBy(func(f shared.Filter) bool {
		active, ok := f.Filters["is_active"]
		return ok && active == true
	})
	repo.On("FindAll", mock.Anything, activeOnly).Return([]catalog.Product{*product}, nil)
	repo.On("Count", mock.Anything, activeOnly).Return(int64(1), nil)

	page, err := service.List(context.Background(), ProductListFilter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	repo.AssertExpectations(t)
}

func TestProductListIncludeInactiveOptIn(t *testing.T) {
	repo := new(MockProductRepository)
	service := NewProductService(repo, nil)

	unfiltered := mock.MatchedBy(func(f shared.Filter) bool {
		_, ok := f.Filters["is_active"]
		return !ok
	})
	repo.On("FindAll", mock.Anything, unfiltered).Return([]catalog.Product{}, nil)
	repo.On("Count", mock.Anything, unfiltered).Return(int64(0), nil)

	page, err := service.List(context.Background(), ProductListFilter{IncludeInactive: true})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	repo.AssertExpectations(t)
}
