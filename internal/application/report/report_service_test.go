package report

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pos/backend/internal/domain/billing"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
)

// MockTransactionRepository is a mock implementation of TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Transaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByNumber(ctx context.Context, number string) (*billing.Transaction, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByDateRange(ctx context.Context, from, to time.Time, filter shared.Filter) ([]billing.Transaction, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).([]billing.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]billing.Transaction, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]billing.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, transaction *billing.Transaction) error {
	args := m.Called(ctx, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTransactionRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

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

func (m *MockProductRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCategory(ctx context.Context, categoryID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, categoryID, filter)
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

// memoryCache is an in-process Cache used to exercise the cache path
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, name string, dest interface{}) (bool, error) {
	data, ok := c.entries[name]
	if !ok {
		return false, nil
	}
	summary := dest.(*SalesSummary)
	*summary = SalesSummary{Date: string(data)}
	return true, nil
}

func (c *memoryCache) Set(_ context.Context, name string, _ interface{}) error {
	c.entries[name] = []byte(name)
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func saleOn(day time.Time, total string, status billing.PaymentStatus, items ...billing.TransactionItem) billing.Transaction {
	base := shared.NewBaseEntity()
	return billing.Transaction{
		BaseEntity:      base,
		Number:          billing.GenerateTransactionNumber(day),
		TransactionDate: day,
		Subtotal:        dec(total),
		DiscountAmount:  decimal.Zero,
		TaxAmount:       decimal.Zero,
		TotalAmount:     dec(total),
		PaymentMethod:   billing.PaymentCash,
		PaymentStatus:   status,
		Items:           items,
	}
}

func testConfig() config.BusinessConfig {
	return config.BusinessConfig{LowStockThreshold: 10, ExpiryAlertDays: 30}
}

func TestReportService_DailySummary(t *testing.T) {
	day := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	t.Run("aggregates the day and skips refunded totals", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		service := NewReportService(txRepo, new(MockProductRepository), testConfig(), nil)

		sales := []billing.Transaction{
			saleOn(day, "236.0000", billing.PaymentCompleted),
			saleOn(day, "100.0000", billing.PaymentCompleted),
			saleOn(day, "59.0000", billing.PaymentRefunded),
		}
		txRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(sales, nil)

		summary, err := service.DailySummary(context.Background(), day)

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-14", summary.Date)
		assert.Equal(t, 2, summary.TransactionCount)
		assert.Equal(t, 1, summary.RefundedCount)
		assert.Equal(t, "336.0000", summary.TotalAmount.StringFixed(4))
	})

	t.Run("serves from the cache without hitting the repository", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		cache := newMemoryCache()
		cache.entries["daily:2025-03-14"] = []byte("2025-03-14")
		service := NewReportService(txRepo, new(MockProductRepository), testConfig(), nil, WithCache(cache))

		summary, err := service.DailySummary(context.Background(), day)

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-14", summary.Date)
		txRepo.AssertNotCalled(t, "FindByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("populates the cache on a miss", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		cache := newMemoryCache()
		service := NewReportService(txRepo, new(MockProductRepository), testConfig(), nil, WithCache(cache))

		txRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return([]billing.Transaction{}, nil)

		_, err := service.DailySummary(context.Background(), day)

		assert.NoError(t, err)
		assert.Contains(t, cache.entries, "daily:2025-03-14")
	})
}

func TestReportService_RangeSummary(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	service := NewReportService(txRepo, new(MockProductRepository), testConfig(), nil)

	day1 := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 3, 16, 15, 0, 0, 0, time.UTC)
	sales := []billing.Transaction{
		saleOn(day1, "100.0000", billing.PaymentCompleted),
		saleOn(day3, "50.0000", billing.PaymentCompleted),
	}
	txRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(sales, nil)

	summaries, err := service.RangeSummary(context.Background(), day1, day3)

	assert.NoError(t, err)
	assert.Len(t, summaries, 3)
	assert.Equal(t, 1, summaries[0].TransactionCount)
	assert.Equal(t, 0, summaries[1].TransactionCount)
	assert.Equal(t, "50.0000", summaries[2].TotalAmount.StringFixed(4))
}

func TestReportService_TopProducts(t *testing.T) {
	txRepo := new(MockTransactionRepository)
	productRepo := new(MockProductRepository)
	service := NewReportService(txRepo, productRepo, testConfig(), nil)

	tea, err := catalog.NewProduct("PRD00001", "Tea", dec("65.00"), 100)
	assert.NoError(t, err)
	rice, err := catalog.NewProduct("PRD00002", "Rice", dec("450.00"), 100)
	assert.NoError(t, err)

	day := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	sale := saleOn(day, "1000.0000", billing.PaymentCompleted,
		billing.TransactionItem{ProductID: tea.ID, Quantity: 3, LineTotal: dec("230.1000")},
		billing.TransactionItem{ProductID: rice.ID, Quantity: 1, LineTotal: dec("477.9000")},
	)
	repeat := saleOn(day, "500.0000", billing.PaymentCompleted,
		billing.TransactionItem{ProductID: tea.ID, Quantity: 2, LineTotal: dec("153.4000")},
	)
	txRepo.On("FindByDateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]billing.Transaction{sale, repeat}, nil)
	productRepo.On("FindByID", mock.Anything, tea.ID).Return(tea, nil)
	productRepo.On("FindByID", mock.Anything, rice.ID).Return(rice, nil)

	rows, err := service.TopProducts(context.Background(), day, day, 5)

	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Tea", rows[0].ProductName)
	assert.Equal(t, 5, rows[0].QuantitySold)
	assert.Equal(t, "383.5000", rows[0].Revenue.StringFixed(4))
	assert.Equal(t, "Rice", rows[1].ProductName)
}

func TestReportService_StockValuation(t *testing.T) {
	productRepo := new(MockProductRepository)
	service := NewReportService(new(MockTransactionRepository), productRepo, testConfig(), nil)

	tea, err := catalog.NewProduct("PRD00001", "Tea", dec("65.00"), 4)
	assert.NoError(t, err)
	tea.CostPrice = dec("40.00")

	productRepo.On("FindAll", mock.Anything, mock.Anything).Return([]catalog.Product{*tea}, nil)

	valuation, err := service.StockValuation(context.Background())

	assert.NoError(t, err)
	assert.Len(t, valuation.Rows, 1)
	assert.Equal(t, "160.0000", valuation.TotalCostValue.StringFixed(4))
	assert.Equal(t, "260.0000", valuation.TotalRetailValue.StringFixed(4))
}

func TestReportService_StockAlerts(t *testing.T) {
	productRepo := new(MockProductRepository)
	service := NewReportService(new(MockTransactionRepository), productRepo, testConfig(), nil)

	low, err := catalog.NewProduct("PRD00003", "Sugar", dec("45.00"), 2)
	assert.NoError(t, err)
	expiry := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	low.ExpiryDate = &expiry

	productRepo.On("FindLowStock", mock.Anything, 10).Return([]catalog.Product{*low}, nil)
	productRepo.On("FindExpiringWithin", mock.Anything, 30).Return([]catalog.Product{*low}, nil)

	lowRows, err := service.LowStock(context.Background())
	assert.NoError(t, err)
	assert.Len(t, lowRows, 1)
	assert.Equal(t, "Sugar", lowRows[0].ProductName)

	expiring, err := service.Expiring(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, expiring[0].ExpiryDate)
}

func TestWriteSummariesCSV(t *testing.T) {
	var buf bytes.Buffer
	summaries := []SalesSummary{
		{
			Date:             "2025-03-14",
			TransactionCount: 2,
			Subtotal:         dec("300.00"),
			DiscountAmount:   dec("10.00"),
			TaxAmount:        dec("46.00"),
			TotalAmount:      dec("336.00"),
		},
	}

	err := WriteSummariesCSV(&buf, summaries)

	assert.NoError(t, err)
	assert.Equal(t,
		"date,transactions,refunded,subtotal,discount,tax,total\n"+
			"2025-03-14,2,0,300.0000,10.0000,46.0000,336.0000\n",
		buf.String())
}
