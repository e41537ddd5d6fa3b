package service_test

import (
	"context"
	"testing"

	"solarquote/internal/model"
	"solarquote/internal/pricing"
	"solarquote/internal/repository"
	"solarquote/internal/service"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
)

func validConfigDTO() service.UpdatePricingConfigDTO {
	return service.UpdatePricingConfigDTO{
		MaxPricePerKwp:            dec("4500"),
		PlatformOverpricePercent:  dec("8"),
		PlatformCommissionPercent: dec("12"),
		VATPercent:                dec("19"),
		MinSystemSizeKwp:          dec("2"),
		MaxSystemSizeKwp:          dec("500"),
	}
}

func TestPricingConfigService_DefaultsUntilSaved(t *testing.T) {
	e := newTestEnv(t)

	cfg, err := e.configs.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	def := model.DefaultPricingConfig()
	if cfg.Version != 0 || !cfg.PlatformOverpricePercent.Equal(def.PlatformOverpricePercent) ||
		!cfg.PlatformCommissionPercent.Equal(def.PlatformCommissionPercent) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestPricingConfigService_UpdateBumpsVersion(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	adminID := uuid.New()

	first, err := e.configs.Update(ctx, adminID, validConfigDTO())
	if err != nil {
		t.Fatalf("first update: %v", err)
	}
	if first.Version != 1 {
		t.Fatalf("version = %d, want 1", first.Version)
	}

	dto := validConfigDTO()
	dto.PlatformOverpricePercent = dec("9")
	second, err := e.configs.Update(ctx, adminID, dto)
	if err != nil {
		t.Fatalf("second update: %v", err)
	}
	if second.Version != 2 {
		t.Fatalf("version = %d, want 2", second.Version)
	}

	current, err := e.configs.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Version != 2 || !current.PlatformOverpricePercent.Equal(dec("9")) || !current.VATPercent.Equal(dec("19")) {
		t.Fatalf("stored config = %+v", current)
	}

	logs, total, err := e.audit.GetAuditLogs(ctx, repository.AuditFilter{Action: model.ActionUpdatePricingConfig}, pagination.New(1, 10))
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if total != 2 || logs[0].EntityID != model.ConfigKeyPricingRules {
		t.Fatalf("expected two config audit rows, got %d", total)
	}
}

func TestPricingConfigService_UpdateValidates(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*service.UpdatePricingConfigDTO)
		code   string
	}{
		{"overprice above 50", func(d *service.UpdatePricingConfigDTO) { d.PlatformOverpricePercent = dec("51") }, pricing.CodeOverpriceOutOfRange},
		{"negative commission", func(d *service.UpdatePricingConfigDTO) { d.PlatformCommissionPercent = dec("-1") }, pricing.CodeCommissionOutOfRange},
		{"vat above 50", func(d *service.UpdatePricingConfigDTO) { d.VATPercent = dec("60") }, pricing.CodeVATOutOfRange},
		{"zero max price", func(d *service.UpdatePricingConfigDTO) { d.MaxPricePerKwp = dec("0") }, pricing.CodeInvalidMaxPricePerKwp},
		{"inverted size range", func(d *service.UpdatePricingConfigDTO) { d.MaxSystemSizeKwp = dec("1") }, pricing.CodeInvalidSizeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dto := validConfigDTO()
			tt.mutate(&dto)
			_, err := e.configs.Update(ctx, uuid.New(), dto)
			assertCode(t, err, apperror.KindBusinessRule, tt.code)
		})
	}

	cfg, err := e.configs.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cfg.Version != 0 {
		t.Fatalf("rejected updates must not be stored, version %d", cfg.Version)
	}
}
