package service

import (
	"context"
	"encoding/json"
	"fmt"

	"solarquote/internal/model"
	"solarquote/internal/pricing"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdatePricingConfigDTO replaces the active pricing configuration.
type UpdatePricingConfigDTO struct {
	MaxPricePerKwp            decimal.Decimal `json:"max_price_per_kwp"`
	PlatformOverpricePercent  decimal.Decimal `json:"platform_overprice_percent"`
	PlatformCommissionPercent decimal.Decimal `json:"platform_commission_percent"`
	VATPercent                decimal.Decimal `json:"vat_percent"`
	MinSystemSizeKwp          decimal.Decimal `json:"min_system_size_kwp"`
	MaxSystemSizeKwp          decimal.Decimal `json:"max_system_size_kwp"`
}

type PricingConfigService interface {
	Current(ctx context.Context) (model.PricingConfig, error)
	Update(ctx context.Context, adminID uuid.UUID, dto UpdatePricingConfigDTO) (model.PricingConfig, error)
}

type pricingConfigService struct {
	tx      repository.TransactionManager
	configs repository.BusinessConfigRepository
	audits  repository.AuditRepository
}

func NewPricingConfigService(tx repository.TransactionManager, configs repository.BusinessConfigRepository, audits repository.AuditRepository) PricingConfigService {
	return &pricingConfigService{tx: tx, configs: configs, audits: audits}
}

// Current returns the stored configuration, or the defaults when none was saved yet.
func (s *pricingConfigService) Current(ctx context.Context) (model.PricingConfig, error) {
	row, err := s.configs.FindByKey(ctx, model.ConfigKeyPricingRules)
	if err != nil {
		if repository.IsNotFound(err) {
			return model.DefaultPricingConfig(), nil
		}
		return model.PricingConfig{}, apperror.Internal(err)
	}
	return decodePricingConfig(row)
}

func decodePricingConfig(row *model.BusinessConfig) (model.PricingConfig, error) {
	cfg := model.DefaultPricingConfig()
	if err := json.Unmarshal(row.ConfigValue, &cfg); err != nil {
		return model.PricingConfig{}, apperror.Internal(fmt.Errorf("failed to decode pricing config: %w", err))
	}
	cfg.Version = row.Version
	return cfg, nil
}

func (s *pricingConfigService) Update(ctx context.Context, adminID uuid.UUID, dto UpdatePricingConfigDTO) (model.PricingConfig, error) {
	next := model.PricingConfig{
		MaxPricePerKwp:            dto.MaxPricePerKwp,
		PlatformOverpricePercent:  dto.PlatformOverpricePercent,
		PlatformCommissionPercent: dto.PlatformCommissionPercent,
		VATPercent:                dto.VATPercent,
		MinSystemSizeKwp:          dto.MinSystemSizeKwp,
		MaxSystemSizeKwp:          dto.MaxSystemSizeKwp,
	}
	if err := pricing.ValidateConfig(next); err != nil {
		return model.PricingConfig{}, err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		previous := model.DefaultPricingConfig()
		row, err := s.configs.FindByKeyForUpdate(txCtx, model.ConfigKeyPricingRules)
		switch {
		case err == nil:
			if previous, err = decodePricingConfig(row); err != nil {
				return err
			}
			next.Version = row.Version + 1
		case repository.IsNotFound(err):
			row = &model.BusinessConfig{ConfigKey: model.ConfigKeyPricingRules}
			next.Version = 1
		default:
			return fmt.Errorf("failed to load pricing config: %w", err)
		}

		raw, err := json.Marshal(next)
		if err != nil {
			return fmt.Errorf("failed to encode pricing config: %w", err)
		}
		row.ConfigValue = raw
		row.Version = next.Version
		row.UpdatedBy = &adminID
		if err := s.configs.Save(txCtx, row); err != nil {
			return fmt.Errorf("failed to save pricing config: %w", err)
		}

		entry := auditEntry(&adminID, RoleAdmin, model.ActionUpdatePricingConfig, "business_config", uuid.Nil, map[string]interface{}{
			"config_key": model.ConfigKeyPricingRules,
			"version":    next.Version,
			"old":        previous,
			"new":        next,
		})
		entry.EntityID = model.ConfigKeyPricingRules
		return writeAudit(txCtx, s.audits, entry)
	})
	if err != nil {
		return model.PricingConfig{}, apperror.Ensure(err)
	}
	return next, nil
}
