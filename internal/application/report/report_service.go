package report

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/billing"
	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
)

// Cache stores rendered reports between dashboard polls. The redis
// implementation lives in infrastructure/cache.
type Cache interface {
	Get(ctx context.Context, name string, dest interface{}) (bool, error)
	Set(ctx context.Context, name string, report interface{}) error
}

// DefaultTopLimit bounds the top-selling products report when no limit is given
const DefaultTopLimit = 10

// ReportService aggregates transactions and stock into the canned
// back-office reports
type ReportService struct {
	transactionRepo   billing.TransactionRepository
	productRepo       catalog.ProductRepository
	cache             Cache
	lowStockThreshold int
	expiryAlertDays   int
	logger            *zap.Logger
}

// ReportServiceOption is a functional option for configuring the service
type ReportServiceOption func(*ReportService)

// WithCache wires a report cache for the daily summary
func WithCache(cache Cache) ReportServiceOption {
	return func(s *ReportService) {
		s.cache = cache
	}
}

// NewReportService creates a new ReportService
func NewReportService(transactionRepo billing.TransactionRepository, productRepo catalog.ProductRepository, cfg config.BusinessConfig, logger *zap.Logger, opts ...ReportServiceOption) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ReportService{
		transactionRepo:   transactionRepo,
		productRepo:       productRepo,
		lowStockThreshold: cfg.LowStockThreshold,
		expiryAlertDays:   cfg.ExpiryAlertDays,
		logger:            logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// rangeFilter is an unpaginated filter ordered oldest-first, so the
// repository returns the whole date range in one read.
func rangeFilter() shared.Filter {
	return shared.Filter{
		OrderBy:  "transaction_date",
		OrderDir: "asc",
		Filters:  make(map[string]interface{}),
	}
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 0, 1)
}

// summarize folds transactions into one summary row. Refunded sales
// are counted but excluded from the monetary totals.
func summarize(date string, transactions []billing.Transaction) SalesSummary {
	summary := SalesSummary{
		Date:           date,
		Subtotal:       decimal.Zero,
		DiscountAmount: decimal.Zero,
		TaxAmount:      decimal.Zero,
		TotalAmount:    decimal.Zero,
	}
	for _, t := range transactions {
		if t.PaymentStatus == billing.PaymentRefunded {
			summary.RefundedCount++
			continue
		}
		summary.TransactionCount++
		summary.Subtotal = summary.Subtotal.Add(t.Subtotal)
		summary.DiscountAmount = summary.DiscountAmount.Add(t.DiscountAmount)
		summary.TaxAmount = summary.TaxAmount.Add(t.TaxAmount)
		summary.TotalAmount = summary.TotalAmount.Add(t.TotalAmount)
	}
	return summary
}

// DailySummary aggregates one day's sales. The result is cached under
// the day's date; checkout invalidates that key when a sale lands.
func (s *ReportService) DailySummary(ctx context.Context, day time.Time) (*SalesSummary, error) {
	date := day.Format("2006-01-02")
	key := "daily:" + date

	if s.cache != nil {
		var cached SalesSummary
		hit, err := s.cache.Get(ctx, key, &cached)
		if err == nil && hit {
			return &cached, nil
		}
	}

	start, end := dayBounds(day)
	transactions, err := s.transactionRepo.FindByDateRange(ctx, start, end, rangeFilter())
	if err != nil {
		return nil, err
	}

	summary := summarize(date, transactions)
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary); err != nil {
			s.logger.Warn("Failed to cache daily summary", zap.String("date", date), zap.Error(err))
		}
	}
	return &summary, nil
}

// RangeSummary aggregates sales per day over [from, to], inclusive of
// both endpoints. Days without sales produce a zero row.
func (s *ReportService) RangeSummary(ctx context.Context, from, to time.Time) ([]SalesSummary, error) {
	start, _ := dayBounds(from)
	_, end := dayBounds(to)
	if !start.Before(end) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "From date must not be after to date")
	}

	transactions, err := s.transactionRepo.FindByDateRange(ctx, start, end, rangeFilter())
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]billing.Transaction)
	for _, t := range transactions {
		d := t.TransactionDate.Format("2006-01-02")
		byDay[d] = append(byDay[d], t)
	}

	var summaries []SalesSummary
	for day := start; day.Before(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		summaries = append(summaries, summarize(date, byDay[date]))
	}
	return summaries, nil
}

// TopProducts lists the best sellers over [from, to] by quantity sold.
// Refunded sales are skipped.
func (s *ReportService) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]TopProduct, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	start, _ := dayBounds(from)
	_, end := dayBounds(to)

	transactions, err := s.transactionRepo.FindByDateRange(ctx, start, end, rangeFilter())
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*TopProduct)
	for _, t := range transactions {
		if t.PaymentStatus == billing.PaymentRefunded {
			continue
		}
		for _, item := range t.Items {
			key := item.ProductID.String()
			row, ok := totals[key]
			if !ok {
				row = &TopProduct{ProductID: item.ProductID, Revenue: decimal.Zero}
				totals[key] = row
			}
			row.QuantitySold += item.Quantity
			row.Revenue = row.Revenue.Add(item.LineTotal)
		}
	}

	rows := make([]TopProduct, 0, len(totals))
	for _, row := range totals {
		product, err := s.productRepo.FindByID(ctx, row.ProductID)
		if err == nil {
			row.ProductCode = product.Code
			row.ProductName = product.Name
		} else {
			s.logger.Warn("Sold product missing from catalog",
				zap.String("product_id", row.ProductID.String()),
				zap.Error(err))
		}
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].QuantitySold != rows[j].QuantitySold {
			return rows[i].QuantitySold > rows[j].QuantitySold
		}
		return rows[i].Revenue.GreaterThan(rows[j].Revenue)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// StockValuation values the active catalog's on-hand stock at cost
// and at retail
func (s *ReportService) StockValuation(ctx context.Context) (*StockValuation, error) {
	filter := shared.Filter{
		OrderBy:  "name",
		OrderDir: "asc",
		Filters:  map[string]interface{}{"is_active": true},
	}
	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	valuation := &StockValuation{
		Rows:             make([]ValuationRow, 0, len(products)),
		TotalCostValue:   decimal.Zero,
		TotalRetailValue: decimal.Zero,
	}
	for i := range products {
		p := &products[i]
		qty := decimal.NewFromInt(int64(p.QuantityInStock))
		costValue := p.CostPrice.Mul(qty).Round(4)
		retailValue := p.UnitPrice.Mul(qty).Round(4)
		valuation.Rows = append(valuation.Rows, ValuationRow{
			ProductID:   p.ID,
			ProductCode: p.Code,
			ProductName: p.Name,
			Quantity:    p.QuantityInStock,
			CostPrice:   p.CostPrice,
			UnitPrice:   p.UnitPrice,
			CostValue:   costValue,
			RetailValue: retailValue,
		})
		valuation.TotalCostValue = valuation.TotalCostValue.Add(costValue)
		valuation.TotalRetailValue = valuation.TotalRetailValue.Add(retailValue)
	}
	return valuation, nil
}

// LowStock lists active products at or below their reorder point
func (s *ReportService) LowStock(ctx context.Context) ([]StockAlertRow, error) {
	products, err := s.productRepo.FindLowStock(ctx, s.lowStockThreshold)
	if err != nil {
		return nil, err
	}
	return toAlertRows(products), nil
}

// Expiring lists active products whose expiry date falls within the
// configured alert window
func (s *ReportService) Expiring(ctx context.Context) ([]StockAlertRow, error) {
	products, err := s.productRepo.FindExpiringWithin(ctx, s.expiryAlertDays)
	if err != nil {
		return nil, err
	}
	return toAlertRows(products), nil
}

func toAlertRows(products []catalog.Product) []StockAlertRow {
	rows := make([]StockAlertRow, len(products))
	for i := range products {
		p := &products[i]
		rows[i] = StockAlertRow{
			ProductID:   p.ID,
			ProductCode: p.Code,
			ProductName: p.Name,
			Quantity:    p.QuantityInStock,
			MinStock:    p.MinStockLevel,
			ExpiryDate:  p.ExpiryDate,
		}
	}
	return rows
}
