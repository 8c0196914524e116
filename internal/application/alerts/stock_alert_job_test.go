package alerts

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
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

// recordingNotifier captures every alert it is asked to send
type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) Send(_ context.Context, _, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

func (n *recordingNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

func newJob(productRepo *MockProductRepository, notifier *recordingNotifier) *StockAlertJob {
	return NewStockAlertJob(productRepo, notifier,
		config.AlertsConfig{Enabled: true, CheckInterval: time.Minute, ManagerPhone: "9800000000"},
		config.BusinessConfig{LowStockThreshold: 10, ExpiryAlertDays: 30},
		nil)
}

func TestStockAlertJob_RunOnce(t *testing.T) {
	t.Run("alerts on low stock and expiry", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		notifier := &recordingNotifier{}
		job := newJob(productRepo, notifier)

		low, err := catalog.NewProduct("PRD00001", "Sugar", decimal.NewFromInt(45), 2)
		assert.NoError(t, err)
		expiring, err := catalog.NewProduct("PRD00002", "Milk", decimal.NewFromInt(30), 50)
		assert.NoError(t, err)
		expiry := time.Now().AddDate(0, 0, 7)
		expiring.ExpiryDate = &expiry

		productRepo.On("FindLowStock", mock.Anything, 10).Return([]catalog.Product{*low}, nil)
		productRepo.On("FindExpiringWithin", mock.Anything, 30).Return([]catalog.Product{*expiring}, nil)

		job.RunOnce(context.Background())

		messages := notifier.sent()
		assert.Len(t, messages, 2)
		assert.Contains(t, messages[0], "Sugar")
		assert.Contains(t, messages[1], "Milk")
	})

	t.Run("does not repeat an alert on the same day", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		notifier := &recordingNotifier{}
		job := newJob(productRepo, notifier)

		low, err := catalog.NewProduct("PRD00001", "Sugar", decimal.NewFromInt(45), 2)
		assert.NoError(t, err)

		productRepo.On("FindLowStock", mock.Anything, 10).Return([]catalog.Product{*low}, nil)
		productRepo.On("FindExpiringWithin", mock.Anything, 30).Return([]catalog.Product{}, nil)

		job.RunOnce(context.Background())
		job.RunOnce(context.Background())

		assert.Len(t, notifier.sent(), 1)
	})

	t.Run("stops cleanly", func(t *testing.T) {
		productRepo := new(MockProductRepository)
		notifier := &recordingNotifier{}
		job := newJob(productRepo, notifier)

		productRepo.On("FindLowStock", mock.Anything, 10).Return([]catalog.Product{}, nil)
		productRepo.On("FindExpiringWithin", mock.Anything, 30).Return([]catalog.Product{}, nil)

		assert.NoError(t, job.Start(context.Background()))
		assert.NoError(t, job.Stop(context.Background()))
	})
}
