package system

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/system"
	"github.com/pos/backend/internal/infrastructure/config"
)

// SettingService manages the editable store configuration. Keys that
// have no stored row fall back to the values in the config file.
type SettingService struct {
	settingRepo system.SettingRepository
	auditRepo   system.AuditLogRepository
	defaults    []system.Setting
	logger      *zap.Logger
}

// NewSettingService creates a new SettingService
func NewSettingService(settingRepo system.SettingRepository, auditRepo system.AuditLogRepository, cfg config.BusinessConfig, logger *zap.Logger) *SettingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingService{
		settingRepo: settingRepo,
		auditRepo:   auditRepo,
		defaults:    defaultSettings(cfg),
		logger:      logger,
	}
}

// defaultSettings builds the built-in rows from the configured
// business constants
func defaultSettings(cfg config.BusinessConfig) []system.Setting {
	mk := func(key, value string, t system.SettingType, description, category string) system.Setting {
		s, _ := system.NewSetting(key, value, t, description, category)
		return *s
	}
	return []system.Setting{
		mk("tax_rate", strconv.FormatFloat(cfg.TaxRate, 'f', -1, 64),
			system.SettingDecimal, "Tax percentage applied at checkout", "billing"),
		mk("discount_threshold", strconv.FormatFloat(cfg.DiscountThreshold, 'f', -1, 64),
			system.SettingDecimal, "Net subtotal at which the order discount applies", "billing"),
		mk("discount_rate", strconv.FormatFloat(cfg.DiscountRate, 'f', -1, 64),
			system.SettingDecimal, "Order discount as a fraction of the net subtotal", "billing"),
		mk("low_stock_threshold", strconv.Itoa(cfg.LowStockThreshold),
			system.SettingInteger, "Stock level that triggers a restock alert", "inventory"),
		mk("expiry_alert_days", strconv.Itoa(cfg.ExpiryAlertDays),
			system.SettingInteger, "Days ahead to warn about expiring products", "inventory"),
		mk("store_name", "My Store", system.SettingString, "Name printed on receipts", "store"),
		mk("receipt_footer", "Thank you for shopping with us", system.SettingString,
			"Message printed at the bottom of receipts", "store"),
	}
}

// Seed inserts any default setting that has no stored row yet.
// Existing rows are never overwritten.
func (s *SettingService) Seed(ctx context.Context) error {
	for i := range s.defaults {
		def := s.defaults[i]
		_, err := s.settingRepo.FindByKey(ctx, def.Key)
		if err == nil {
			continue
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}
		if err := s.settingRepo.Save(ctx, &def); err != nil {
			return fmt.Errorf("failed to seed setting %s: %w", def.Key, err)
		}
		s.logger.Info("Seeded default setting", zap.String("key", def.Key))
	}
	return nil
}

// Get retrieves a setting by key, falling back to the built-in default
func (s *SettingService) Get(ctx context.Context, key string) (*SettingResponse, error) {
	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err == nil {
		response := ToSettingResponse(setting)
		return &response, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	for i := range s.defaults {
		if s.defaults[i].Key == key {
			response := ToSettingResponse(&s.defaults[i])
			return &response, nil
		}
	}
	return nil, shared.ErrNotFound
}

// List retrieves all settings, optionally limited to one category
func (s *SettingService) List(ctx context.Context, category string) ([]SettingResponse, error) {
	var (
		settings []system.Setting
		err      error
	)
	if category != "" {
		settings, err = s.settingRepo.FindByCategory(ctx, category)
	} else {
		settings, err = s.settingRepo.FindAll(ctx, shared.Filter{Filters: make(map[string]interface{})})
	}
	if err != nil {
		return nil, err
	}
	return ToSettingResponses(settings), nil
}

// Update changes a setting's value. The change lands in the audit
// trail with the old and new value.
func (s *SettingService) Update(ctx context.Context, key string, req UpdateSettingRequest) (*SettingResponse, error) {
	setting, err := s.settingRepo.FindByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	oldValue := setting.Value
	if err := setting.UpdateValue(req.Value, req.UpdatedBy); err != nil {
		return nil, err
	}
	if err := s.settingRepo.Save(ctx, setting); err != nil {
		return nil, err
	}

	s.audit(ctx, req, setting, oldValue)

	response := ToSettingResponse(setting)
	return &response, nil
}

// audit records the change best-effort; a failed audit write never
// fails the update itself.
func (s *SettingService) audit(ctx context.Context, req UpdateSettingRequest, setting *system.Setting, oldValue string) {
	if s.auditRepo == nil {
		return
	}
	entry, err := system.NewAuditLog(req.UpdatedBy, "update", "system_settings", &setting.ID,
		fmt.Sprintf(`{"value":%q}`, oldValue),
		fmt.Sprintf(`{"value":%q}`, setting.Value))
	if err != nil {
		return
	}
	if err := s.auditRepo.Save(ctx, entry); err != nil {
		s.logger.Warn("Failed to write audit record",
			zap.String("key", setting.Key),
			zap.Error(err))
	}
}
