package system

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SettingType describes how a setting value should be parsed
type SettingType string

const (
	SettingString  SettingType = "string"
	SettingInteger SettingType = "integer"
	SettingDecimal SettingType = "decimal"
	SettingBoolean SettingType = "boolean"
)

// Setting is one editable key/value pair of store configuration
type Setting struct {
	shared.BaseEntity
	Key         string
	Value       string
	Type        SettingType
	Description string
	Category    string
	IsEditable  bool
	UpdatedBy   *uuid.UUID
}

// NewSetting creates an editable setting
func NewSetting(key, value string, settingType SettingType, description, category string) (*Setting, error) {
	if key == "" {
		return nil, shared.NewDomainError("INVALID_SETTING", "Setting key cannot be empty")
	}

	return &Setting{
		BaseEntity:  shared.NewBaseEntity(),
		Key:         key,
		Value:       value,
		Type:        settingType,
		Description: description,
		Category:    category,
		IsEditable:  true,
	}, nil
}

// UpdateValue changes the setting value, recording who changed it
func (s *Setting) UpdateValue(value string, updatedBy *uuid.UUID) error {
	if !s.IsEditable {
		return shared.NewDomainError("SETTING_LOCKED", "Setting is not editable")
	}
	switch s.Type {
	case SettingInteger:
		if _, err := strconv.Atoi(value); err != nil {
			return shared.NewDomainError("INVALID_SETTING", "Value must be an integer")
		}
	case SettingDecimal:
		if _, err := decimal.NewFromString(value); err != nil {
			return shared.NewDomainError("INVALID_SETTING", "Value must be a decimal")
		}
	case SettingBoolean:
		if _, err := strconv.ParseBool(value); err != nil {
			return shared.NewDomainError("INVALID_SETTING", "Value must be a boolean")
		}
	}
	s.Value = value
	s.UpdatedBy = updatedBy
	s.Touch()
	return nil
}

// IntValue parses the setting as an integer
func (s *Setting) IntValue() (int, error) {
	return strconv.Atoi(s.Value)
}

// DecimalValue parses the setting as a decimal
func (s *Setting) DecimalValue() (decimal.Decimal, error) {
	return decimal.NewFromString(s.Value)
}

// BoolValue parses the setting as a boolean
func (s *Setting) BoolValue() (bool, error) {
	return strconv.ParseBool(s.Value)
}
