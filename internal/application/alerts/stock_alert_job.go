package alerts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/catalog"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/notification"
)

// StockAlertJob periodically scans the catalog for low-stock and
// soon-to-expire products and notifies the store manager. Each product
// is alerted at most once per day per condition.
type StockAlertJob struct {
	productRepo       catalog.ProductRepository
	notifier          notification.Notifier
	managerPhone      string
	checkInterval     time.Duration
	lowStockThreshold int
	expiryAlertDays   int
	logger            *zap.Logger

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.Mutex
	isRunning bool
	notified  map[string]string // alert key -> date last sent
}

// NewStockAlertJob creates a new StockAlertJob
func NewStockAlertJob(productRepo catalog.ProductRepository, notifier notification.Notifier, alertsCfg config.AlertsConfig, businessCfg config.BusinessConfig, logger *zap.Logger) *StockAlertJob {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StockAlertJob{
		productRepo:       productRepo,
		notifier:          notifier,
		managerPhone:      alertsCfg.ManagerPhone,
		checkInterval:     alertsCfg.CheckInterval,
		lowStockThreshold: businessCfg.LowStockThreshold,
		expiryAlertDays:   businessCfg.ExpiryAlertDays,
		logger:            logger,
		notified:          make(map[string]string),
	}
}

// Start launches the background scan loop
func (j *StockAlertJob) Start(ctx context.Context) error {
	j.mu.Lock()
	if j.isRunning {
		j.mu.Unlock()
		return nil
	}
	j.isRunning = true
	j.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.runLoop(ctx)

	j.logger.Info("Stock alert job started",
		zap.Duration("check_interval", j.checkInterval),
		zap.Int("low_stock_threshold", j.lowStockThreshold),
		zap.Int("expiry_alert_days", j.expiryAlertDays))

	return nil
}

// Stop shuts the loop down, waiting for an in-flight scan to finish
func (j *StockAlertJob) Stop(ctx context.Context) error {
	j.mu.Lock()
	if !j.isRunning {
		j.mu.Unlock()
		return nil
	}
	j.isRunning = false
	j.mu.Unlock()

	if j.cancel != nil {
		j.cancel()
	}

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		j.logger.Info("Stock alert job stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *StockAlertJob) runLoop(ctx context.Context) {
	defer j.wg.Done()

	ticker := time.NewTicker(j.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single scan. Exported so setup and tests can
// trigger a scan without the ticker.
func (j *StockAlertJob) RunOnce(ctx context.Context) {
	lowStock, err := j.productRepo.FindLowStock(ctx, j.lowStockThreshold)
	if err != nil {
		j.logger.Error("Failed to scan for low stock", zap.Error(err))
	} else {
		for i := range lowStock {
			p := &lowStock[i]
			j.send(ctx, "low:"+p.Code,
				fmt.Sprintf("Low stock: %s (%s) has %d left", p.Name, p.Code, p.QuantityInStock))
		}
	}

	expiring, err := j.productRepo.FindExpiringWithin(ctx, j.expiryAlertDays)
	if err != nil {
		j.logger.Error("Failed to scan for expiring products", zap.Error(err))
		return
	}
	for i := range expiring {
		p := &expiring[i]
		if p.ExpiryDate == nil {
			continue
		}
		j.send(ctx, "expiry:"+p.Code,
			fmt.Sprintf("Expiring soon: %s (%s) expires on %s", p.Name, p.Code, p.ExpiryDate.Format("2006-01-02")))
	}
}

// send delivers one alert unless the same alert already went out today
func (j *StockAlertJob) send(ctx context.Context, key, message string) {
	today := time.Now().Format("2006-01-02")

	j.mu.Lock()
	if j.notified[key] == today {
		j.mu.Unlock()
		return
	}
	j.notified[key] = today
	j.mu.Unlock()

	if err := j.notifier.Send(ctx, j.managerPhone, message); err != nil {
		j.logger.Warn("Failed to send alert", zap.String("alert", key), zap.Error(err))
		j.mu.Lock()
		delete(j.notified, key)
		j.mu.Unlock()
	}
}
