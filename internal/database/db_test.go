package database_test

import (
	"testing"

	"solarquote/internal/database"
	"solarquote/internal/model"
	"solarquote/internal/testutil"
)

func TestSeedPenaltyRulesIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)

	if err := database.SeedPenaltyRules(db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	var count int64
	if err := db.Model(&model.PenaltyRule{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if want := int64(len(database.DefaultPenaltyRules())); count != want {
		t.Fatalf("rules = %d, want %d", count, want)
	}
}

func TestDefaultRulesCoverEveryType(t *testing.T) {
	seen := map[model.PenaltyType]bool{}
	for _, r := range database.DefaultPenaltyRules() {
		if !r.PenaltyType.Valid() || !r.SeverityLevel.Valid() || !r.AmountCalculation.Valid() {
			t.Fatalf("invalid default rule %+v", r)
		}
		seen[r.PenaltyType] = true
	}
	for _, pt := range []model.PenaltyType{
		model.PenaltyLateInstallation, model.PenaltyMissedAppointment, model.PenaltyPoorQuality,
		model.PenaltyCommunicationFailure, model.PenaltyContractBreach,
	} {
		if !seen[pt] {
			t.Errorf("no default rule for %s", pt)
		}
	}
}
