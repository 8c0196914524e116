package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pos/backend/internal/domain/billing"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/partner"
	"github.com/pos/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

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

func (m *MockTransactionRepository) FindByNumber(ctx context.Context, number string) (*billing.Transaction, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Transaction, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]billing.Transaction), args.Error(1)
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

// MockMovementRepository is a mock implementation of MovementRepository
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Save(ctx context.Context, movement *inventory.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.Movement, error) {
	args := m.Called(ctx, productID, filter)
	return args.Get(0).([]inventory.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindByDateRange(ctx context.Context, from, to time.Time, filter shared.Filter) ([]inventory.Movement, error) {
	args := m.Called(ctx, from, to, filter)
	return args.Get(0).([]inventory.Movement), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByPhone(ctx context.Context, phone string) (*partner.Customer, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) TopByPurchases(ctx context.Context, limit int) ([]partner.Customer, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Search(ctx context.Context, term string, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, term, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// =============================================================================
// Helpers
// =============================================================================

func defaultPolicy() billing.PricingPolicy {
	return billing.PricingPolicy{
		TaxRate:           decimal.NewFromInt(18),
		DiscountThreshold: decimal.NewFromInt(1000),
		DiscountRate:      decimal.RequireFromString("0.10"),
	}
}

func newTestProduct(t *testing.T, price string, stock int) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct("PRD00001", "Test Product", decimal.RequireFromString(price), stock)
	assert.NoError(t, err)
	return product
}

func newCheckoutService(txRepo *MockTransactionRepository, productRepo *MockProductRepository, movementRepo *MockMovementRepository, customerRepo *MockCustomerRepository) *CheckoutService {
	scope := NewNoOpCheckoutScope(txRepo, productRepo, movementRepo, customerRepo)
	return NewCheckoutService(scope, txRepo, defaultPolicy(), nil)
}

// =============================================================================
// Tests
// =============================================================================

func TestCheckoutService_Checkout(t *testing.T) {
	t.Run("completes a sale and decrements stock", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		productRepo := new(MockProductRepository)
		movementRepo := new(MockMovementRepository)
		customerRepo := new(MockCustomerRepository)
		service := newCheckoutService(txRepo, productRepo, movementRepo, customerRepo)

		product := newTestProduct(t, "100.00", 10)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		txRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		movementRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.Checkout(context.Background(), CheckoutRequest{
			PaymentMethod: "cash",
			Items: []CheckoutItemRequest{
				{ProductID: product.ID, Quantity: 2},
			},
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, "200.0000", resp.Subtotal.StringFixed(4))
		assert.Equal(t, "36.0000", resp.TaxAmount.StringFixed(4))
		assert.Equal(t, "236.0000", resp.TotalAmount.StringFixed(4))
		assert.Equal(t, "completed", resp.PaymentStatus)
		assert.Len(t, resp.Items, 1)
		assert.Equal(t, 8, product.QuantityInStock)

		movementRepo.AssertNumberOfCalls(t, "Save", 1)
		txRepo.AssertExpectations(t)
	})

	t.Run("applies the order discount at the threshold", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		productRepo := new(MockProductRepository)
		movementRepo := new(MockMovementRepository)
		customerRepo := new(MockCustomerRepository)
		service := newCheckoutService(txRepo, productRepo, movementRepo, customerRepo)

		product := newTestProduct(t, "500.00", 10)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		txRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		movementRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.Checkout(context.Background(), CheckoutRequest{
			PaymentMethod: "card",
			Items: []CheckoutItemRequest{
				{ProductID: product.ID, Quantity: 2},
			},
		})

		assert.NoError(t, err)
		// subtotal 1000 reaches the threshold: discount 100, tax 180
		assert.Equal(t, "1000.0000", resp.Subtotal.StringFixed(4))
		assert.Equal(t, "100.0000", resp.DiscountAmount.StringFixed(4))
		assert.Equal(t, "1080.0000", resp.TotalAmount.StringFixed(4))
	})

	t.Run("sells through an out of stock line without decrementing", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		productRepo := new(MockProductRepository)
		movementRepo := new(MockMovementRepository)
		customerRepo := new(MockCustomerRepository)
		service := newCheckoutService(txRepo, productRepo, movementRepo, customerRepo)

		product := newTestProduct(t, "50.00", 1)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		txRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.Checkout(context.Background(), CheckoutRequest{
			PaymentMethod: "cash",
			Items: []CheckoutItemRequest{
				{ProductID: product.ID, Quantity: 5},
			},
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, 1, product.QuantityInStock)
		assert.Len(t, resp.StockShortfalls, 1)
		assert.Equal(t, 5, resp.StockShortfalls[0].Requested)
		assert.Equal(t, 1, resp.StockShortfalls[0].InStock)
		productRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		movementRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("credits loyalty points to the customer", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		productRepo := new(MockProductRepository)
		movementRepo := new(MockMovementRepository)
		customerRepo := new(MockCustomerRepository)
		service := newCheckoutService(txRepo, productRepo, movementRepo, customerRepo)

		product := newTestProduct(t, "100.00", 10)
		customer, err := partner.NewCustomer("Asha Rao", "9812345678")
		assert.NoError(t, err)

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		txRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		movementRepo.On("Save", mock.Anything, mock.Anything).Return(nil)
		customerRepo.On("FindByID", mock.Anything, customer.ID).Return(customer, nil)
		customerRepo.On("Save", mock.Anything, customer).Return(nil)

		resp, err := service.Checkout(context.Background(), CheckoutRequest{
			CustomerID:    &customer.ID,
			PaymentMethod: "upi",
			Items: []CheckoutItemRequest{
				{ProductID: product.ID, Quantity: 2},
			},
		})

		assert.NoError(t, err)
		// total 236.00 earns floor(236/10) = 23 points
		assert.Equal(t, 23, customer.LoyaltyPoints)
		assert.Equal(t, "236.0000", customer.TotalPurchases.StringFixed(4))
		assert.Equal(t, resp.TotalAmount.StringFixed(4), customer.TotalPurchases.StringFixed(4))
		customerRepo.AssertExpectations(t)
	})

	t.Run("rejects an inactive product", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		productRepo := new(MockProductRepository)
		movementRepo := new(MockMovementRepository)
		customerRepo := new(MockCustomerRepository)
		service := newCheckoutService(txRepo, productRepo, movementRepo, customerRepo)

		product := newTestProduct(t, "100.00", 10)
		product.Deactivate()

		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)

		resp, err := service.Checkout(context.Background(), CheckoutRequest{
			PaymentMethod: "cash",
			Items: []CheckoutItemRequest{
				{ProductID: product.ID, Quantity: 1},
			},
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		txRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		service := newCheckoutService(new(MockTransactionRepository), new(MockProductRepository),
			new(MockMovementRepository), new(MockCustomerRepository))

		resp, err := service.Checkout(context.Background(), CheckoutRequest{
			PaymentMethod: "cheque",
			Items: []CheckoutItemRequest{
				{ProductID: uuid.New(), Quantity: 1},
			},
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		service := newCheckoutService(new(MockTransactionRepository), new(MockProductRepository),
			new(MockMovementRepository), new(MockCustomerRepository))

		resp, err := service.Checkout(context.Background(), CheckoutRequest{
			PaymentMethod: "cash",
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrEmptyCart)
	})
}

func TestCheckoutService_Refund(t *testing.T) {
	t.Run("marks the sale refunded and restores stock", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		productRepo := new(MockProductRepository)
		movementRepo := new(MockMovementRepository)
		customerRepo := new(MockCustomerRepository)
		service := newCheckoutService(txRepo, productRepo, movementRepo, customerRepo)

		product := newTestProduct(t, "100.00", 8)

		cart := billing.Cart{Lines: []billing.CartLine{
			{ProductID: product.ID, Quantity: 2, UnitPrice: decimal.RequireFromString("100.00")},
		}}
		priced, err := cart.Price(defaultPolicy())
		assert.NoError(t, err)
		transaction, err := billing.NewTransaction(priced, nil, nil, billing.PaymentCash, "")
		assert.NoError(t, err)

		txRepo.On("FindByID", mock.Anything, transaction.ID).Return(transaction, nil)
		txRepo.On("Save", mock.Anything, transaction).Return(nil)
		productRepo.On("FindByID", mock.Anything, product.ID).Return(product, nil)
		productRepo.On("Save", mock.Anything, product).Return(nil)
		movementRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

		resp, err := service.Refund(context.Background(), transaction.ID)

		assert.NoError(t, err)
		assert.Equal(t, "refunded", resp.PaymentStatus)
		assert.Equal(t, 10, product.QuantityInStock)
		txRepo.AssertExpectations(t)
	})

	t.Run("rejects refunding twice", func(t *testing.T) {
		txRepo := new(MockTransactionRepository)
		service := newCheckoutService(txRepo, new(MockProductRepository),
			new(MockMovementRepository), new(MockCustomerRepository))

		cart := billing.Cart{Lines: []billing.CartLine{
			{ProductID: uuid.New(), Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		}}
		priced, err := cart.Price(defaultPolicy())
		assert.NoError(t, err)
		transaction, err := billing.NewTransaction(priced, nil, nil, billing.PaymentCash, "")
		assert.NoError(t, err)
		assert.NoError(t, transaction.Refund())

		txRepo.On("FindByID", mock.Anything, transaction.ID).Return(transaction, nil)

		resp, err := service.Refund(context.Background(), transaction.ID)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}
