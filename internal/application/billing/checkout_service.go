package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/billing"
	"github.com/pos/backend/internal/domain/inventory"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
)

// ReportCacheInvalidator drops cached reports after a sale lands so the
// dashboards pick up the new figures.
type ReportCacheInvalidator interface {
	Invalidate(ctx context.Context, names ...string) error
}

// CheckoutService runs the billing flow: it prices a cart against the
// store policy, persists the receipt, moves stock and credits loyalty
// points, all in one database transaction.
type CheckoutService struct {
	scope           CheckoutScope
	transactionRepo billing.TransactionRepository
	policy          billing.PricingPolicy
	reportCache     ReportCacheInvalidator
	logger          *zap.Logger
}

// CheckoutServiceOption is a functional option for configuring the service
type CheckoutServiceOption func(*CheckoutService)

// WithReportCache wires a report cache to invalidate after each sale
func WithReportCache(cache ReportCacheInvalidator) CheckoutServiceOption {
	return func(s *CheckoutService) {
		s.reportCache = cache
	}
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(scope CheckoutScope, transactionRepo billing.TransactionRepository, policy billing.PricingPolicy, logger *zap.Logger, opts ...CheckoutServiceOption) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &CheckoutService{
		scope:           scope,
		transactionRepo: transactionRepo,
		policy:          policy,
		logger:          logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PolicyFromConfig builds the pricing policy from the configured
// business constants
func PolicyFromConfig(cfg config.BusinessConfig) billing.PricingPolicy {
	return billing.PricingPolicy{
		TaxRate:           decimal.NewFromFloat(cfg.TaxRate),
		DiscountThreshold: decimal.NewFromFloat(cfg.DiscountThreshold),
		DiscountRate:      decimal.NewFromFloat(cfg.DiscountRate),
	}
}

// Checkout processes a sale. Products are read inside the transaction
// so the prices and stock the sale is built on are the ones it commits
// against. A line whose product lacks stock still sells; the decrement
// is skipped with a warning and the shortfall surfaces in the next
// stock take.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*TransactionResponse, error) {
	if !billing.ValidPaymentMethod(billing.PaymentMethod(req.PaymentMethod)) {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method must be cash, card or upi")
	}

	var (
		response   TransactionResponse
		shortfalls []StockShortfall
	)
	err := s.scope.Execute(ctx, func(repos CheckoutRepositories) error {
		cart := billing.Cart{Lines: make([]billing.CartLine, 0, len(req.Items))}
		for _, item := range req.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !product.IsActive {
				return shared.NewDomainError("INACTIVE_PRODUCT", "Product "+product.Code+" is not for sale")
			}

			discountRate := product.DiscountPercentage
			if item.DiscountRate != nil {
				discountRate = *item.DiscountRate
			}
			cart.Lines = append(cart.Lines, billing.CartLine{
				ProductID:    product.ID,
				Quantity:     item.Quantity,
				UnitPrice:    product.UnitPrice,
				DiscountRate: discountRate,
			})
		}

		priced, err := cart.Price(s.policy)
		if err != nil {
			return err
		}

		transaction, err := billing.NewTransaction(priced, req.CustomerID, req.EmployeeID,
			billing.PaymentMethod(req.PaymentMethod), req.Notes)
		if err != nil {
			return err
		}

		if err := repos.TransactionRepo().Save(ctx, transaction); err != nil {
			return err
		}

		for _, item := range transaction.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if !product.HasSufficientStock(item.Quantity) {
				s.logger.Warn("Insufficient stock at checkout, selling anyway",
					zap.String("transaction", transaction.Number),
					zap.String("product", product.Code),
					zap.Int("requested", item.Quantity),
					zap.Int("in_stock", product.QuantityInStock))
				shortfalls = append(shortfalls, StockShortfall{
					ProductID:   product.ID,
					ProductCode: product.Code,
					Requested:   item.Quantity,
					InStock:     product.QuantityInStock,
				})
				continue
			}
			if err := product.AdjustStock(-item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}

			movement, err := inventory.NewMovement(product.ID, inventory.MovementOut, item.Quantity,
				inventory.ReferenceSale, &transaction.ID, req.EmployeeID, "")
			if err != nil {
				return err
			}
			movement.CostPerUnit = product.CostPrice
			if err := repos.MovementRepo().Save(ctx, movement); err != nil {
				return err
			}
		}

		if req.CustomerID != nil {
			customer, err := repos.CustomerRepo().FindByID(ctx, *req.CustomerID)
			if err != nil {
				return err
			}
			if err := customer.RecordPurchase(transaction.TotalAmount); err != nil {
				return err
			}
			if err := repos.CustomerRepo().Save(ctx, customer); err != nil {
				return err
			}
		}

		response = ToTransactionResponse(transaction)
		response.StockShortfalls = shortfalls
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sale completed",
		zap.String("number", response.Number),
		zap.String("total", response.TotalAmount.StringFixed(4)),
		zap.Int("lines", len(response.Items)))
	s.invalidateReports(ctx)

	return &response, nil
}

// Refund marks a completed sale as refunded and returns its stock.
// The receipt and its movement history stay on the books.
func (s *CheckoutService) Refund(ctx context.Context, id uuid.UUID) (*TransactionResponse, error) {
	var response TransactionResponse
	err := s.scope.Execute(ctx, func(repos CheckoutRepositories) error {
		transaction, err := repos.TransactionRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := transaction.Refund(); err != nil {
			return err
		}
		if err := repos.TransactionRepo().Save(ctx, transaction); err != nil {
			return err
		}

		for _, item := range transaction.Items {
			product, err := repos.ProductRepo().FindByID(ctx, item.ProductID)
			if err != nil {
				return err
			}
			if err := product.AdjustStock(item.Quantity); err != nil {
				return err
			}
			if err := repos.ProductRepo().Save(ctx, product); err != nil {
				return err
			}

			movement, err := inventory.NewMovement(product.ID, inventory.MovementIn, item.Quantity,
				inventory.ReferenceReturn, &transaction.ID, transaction.EmployeeID, "refund")
			if err != nil {
				return err
			}
			movement.CostPerUnit = product.CostPrice
			if err := repos.MovementRepo().Save(ctx, movement); err != nil {
				return err
			}
		}

		response = ToTransactionResponse(transaction)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Sale refunded", zap.String("number", response.Number))
	s.invalidateReports(ctx)

	return &response, nil
}

// GetByID retrieves a receipt by ID
func (s *CheckoutService) GetByID(ctx context.Context, id uuid.UUID) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToTransactionResponse(transaction)
	return &response, nil
}

// GetByNumber retrieves a receipt by its number
func (s *CheckoutService) GetByNumber(ctx context.Context, number string) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	response := ToTransactionResponse(transaction)
	return &response, nil
}

// List retrieves transactions with filtering and pagination
func (s *CheckoutService) List(ctx context.Context, filter TransactionListFilter) (shared.Paginated[TransactionResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = "transaction_date"
	domainFilter.Search = filter.Search

	if filter.PaymentMethod != "" {
		domainFilter.Filters["payment_method"] = filter.PaymentMethod
	}
	if filter.PaymentStatus != "" {
		domainFilter.Filters["payment_status"] = filter.PaymentStatus
	}
	if filter.EmployeeID != nil {
		domainFilter.Filters["employee_id"] = *filter.EmployeeID
	}

	var (
		transactions []billing.Transaction
		err          error
	)
	switch {
	case filter.CustomerID != nil:
		transactions, err = s.transactionRepo.FindByCustomer(ctx, *filter.CustomerID, domainFilter)
	case filter.From != nil || filter.To != nil:
		from, to := rangeBounds(filter.From, filter.To)
		transactions, err = s.transactionRepo.FindByDateRange(ctx, from, to, domainFilter)
	default:
		transactions, err = s.transactionRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return shared.Paginated[TransactionResponse]{}, err
	}

	total, err := s.transactionRepo.Count(ctx, domainFilter)
	if err != nil {
		return shared.Paginated[TransactionResponse]{}, err
	}

	return shared.NewPaginated(ToTransactionResponses(transactions), total, domainFilter.Page, domainFilter.PageSize), nil
}

func (s *CheckoutService) invalidateReports(ctx context.Context) {
	if s.reportCache == nil {
		return
	}
	if err := s.reportCache.Invalidate(ctx, "daily:"+time.Now().Format("2006-01-02")); err != nil {
		s.logger.Warn("Failed to invalidate report cache", zap.Error(err))
	}
}

// rangeBounds fills in open ends of a date range
func rangeBounds(from, to *time.Time) (time.Time, time.Time) {
	start := time.Time{}
	end := time.Now().Add(24 * time.Hour)
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}
	return start, end
}
