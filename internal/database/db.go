package database

import (
	"fmt"
	"log"

	"solarquote/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewConnection initializes a new connection pool using GORM
func NewConnection(dsn string, maxOpen, maxIdle int) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		sqlDB.SetMaxIdleConns(maxIdle)
	}

	return db, nil
}

// Migrate creates or updates every marketplace table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.QuoteRequest{},
		&model.ContractorAssignment{},
		&model.ContractorQuote{},
		&model.QuotationLineItem{},
		&model.BusinessConfig{},
		&model.PenaltyRule{},
		&model.PenaltyInstance{},
		&model.QuoteComparison{},
		&model.AuditLog{},
	)
}

func money(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultPenaltyRules is the rule book installed on an empty database.
func DefaultPenaltyRules() []model.PenaltyRule {
	return []model.PenaltyRule{
		{PenaltyType: model.PenaltyLateInstallation, SeverityLevel: model.SeverityMinor, AmountCalculation: model.AmountDaily,
			AmountValue: decimal.NewFromInt(50), MaximumAmount: money(500), Description: "Installation up to 3 days late"},
		{PenaltyType: model.PenaltyLateInstallation, SeverityLevel: model.SeverityModerate, AmountCalculation: model.AmountDaily,
			AmountValue: decimal.NewFromInt(100), MaximumAmount: money(1500), Description: "Installation 4 to 7 days late"},
		{PenaltyType: model.PenaltyLateInstallation, SeverityLevel: model.SeverityMajor, AmountCalculation: model.AmountDaily,
			AmountValue: decimal.NewFromInt(200), MaximumAmount: money(4000), Description: "Installation 8 to 14 days late"},
		{PenaltyType: model.PenaltyLateInstallation, SeverityLevel: model.SeverityCritical, AmountCalculation: model.AmountDaily,
			AmountValue: decimal.NewFromInt(500), MaximumAmount: money(15000), Description: "Installation more than 14 days late"},
		{PenaltyType: model.PenaltyMissedAppointment, SeverityLevel: model.SeverityModerate, AmountCalculation: model.AmountFixed,
			AmountValue: decimal.NewFromInt(200), Description: "Missed site visit or installation appointment"},
		{PenaltyType: model.PenaltyPoorQuality, SeverityLevel: model.SeverityMajor, AmountCalculation: model.AmountPercentage,
			AmountValue: decimal.NewFromInt(5), MaximumAmount: money(5000), Description: "Installation failed quality inspection"},
		{PenaltyType: model.PenaltyCommunicationFailure, SeverityLevel: model.SeverityMinor, AmountCalculation: model.AmountFixed,
			AmountValue: decimal.NewFromInt(100), Description: "Customer left without response"},
		{PenaltyType: model.PenaltyContractBreach, SeverityLevel: model.SeverityCritical, AmountCalculation: model.AmountPercentage,
			AmountValue: decimal.NewFromInt(10), MaximumAmount: money(20000), Description: "Breach of installation contract"},
	}
}

// SeedPenaltyRules installs the default rule book when no rule exists yet.
func SeedPenaltyRules(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.PenaltyRule{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count penalty rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	rules := DefaultPenaltyRules()
	if err := db.Create(&rules).Error; err != nil {
		return fmt.Errorf("failed to seed penalty rules: %w", err)
	}
	log.Printf("Seeded %d default penalty rules", len(rules))
	return nil
}
