package service_test

import (
	"context"
	"testing"
	"time"

	"solarquote/internal/model"
	"solarquote/internal/service"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

func TestDaysOverdue(t *testing.T) {
	due := time.Date(2026, 5, 10, 16, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		asOf time.Time
		want int
	}{
		{"same day later", time.Date(2026, 5, 10, 23, 59, 0, 0, time.UTC), 0},
		{"day before", time.Date(2026, 5, 9, 8, 0, 0, 0, time.UTC), -1},
		{"next morning", time.Date(2026, 5, 11, 0, 1, 0, 0, time.UTC), 1},
		{"two weeks", time.Date(2026, 5, 24, 12, 0, 0, 0, time.UTC), 14},
		{"other zone counts in utc", time.Date(2026, 5, 11, 1, 0, 0, 0, time.FixedZone("CEST", 2*3600)), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.DaysOverdue(due, tt.asOf); got != tt.want {
				t.Fatalf("DaysOverdue = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSLADetector_Detect(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	late := e.selectedOverdueQuote(t, uuid.New(), 5)
	e.selectedOverdueQuote(t, uuid.New(), 0)

	// approved but never selected quotes carry no SLA
	req := e.createRequest(t, uuid.New(), "10")
	unselected := e.submitQuote(t, uuid.New(), req.ID, "20000", "2000", 30)
	e.approve(t, unselected.ID)
	e.backdate(t, unselected.ID, time.Now().AddDate(0, 0, -60))

	violations, err := e.detector.Detect(ctx, time.Now())
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if len(violations) != 1 {
		t.Fatalf("expected one violation, got %d", len(violations))
	}
	v := violations[0]
	if v.QuoteID != late.ID || v.DaysOverdue != 5 || v.Severity != model.SeverityModerate {
		t.Fatalf("unexpected violation: %+v", v)
	}
}

func TestPenaltyScheduler_DailyRunIsIdempotent(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	e.selectedOverdueQuote(t, uuid.New(), 5)
	e.selectedOverdueQuote(t, uuid.New(), 20)

	e.wallet.EXPECT().ApplyPenaltyDebit(gomock.Any(), gomock.Any()).Return("wtx", nil).Times(2)

	first, err := e.scheduler.RunDaily(ctx)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first.ViolationsDetected != 2 || first.PenaltiesApplied != 2 || first.Errors != 0 {
		t.Fatalf("first run = %+v", first)
	}

	second, err := e.scheduler.RunDaily(ctx)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.ViolationsDetected != 0 || second.PenaltiesApplied != 0 {
		t.Fatalf("second run must not penalize again: %+v", second)
	}

	stats, err := e.scheduler.RunWeekly(ctx)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if stats.Total != 2 || stats.ByStatus[model.PenaltyApplied] != 2 || stats.ByType[model.PenaltyLateInstallation] != 2 {
		t.Fatalf("weekly stats = %+v", stats)
	}
	if stats.BySeverity[model.SeverityModerate] != 1 || stats.BySeverity[model.SeverityCritical] != 1 {
		t.Fatalf("severity breakdown = %v", stats.BySeverity)
	}
	// 5 days x 100 and 20 days x 500
	assertDecimal(t, "total_amount", stats.TotalAmount, "10500")
}

func TestPenaltyScheduler_AutomaticPenaltiesAreAttributedToSystem(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	contractor := uuid.New()
	quote := e.selectedOverdueQuote(t, contractor, 3)

	e.wallet.EXPECT().ApplyPenaltyDebit(gomock.Any(), gomock.Any()).Return("wtx", nil)
	if _, err := e.scheduler.RunDaily(ctx); err != nil {
		t.Fatalf("daily run: %v", err)
	}

	var penalty model.PenaltyInstance
	if err := e.db.Where("quote_id = ?", quote.ID).First(&penalty).Error; err != nil {
		t.Fatalf("load penalty: %v", err)
	}
	if !penalty.IsAutomatic || penalty.AppliedBy != nil {
		t.Fatalf("automatic penalty must carry no actor: %+v", penalty)
	}
	if penalty.Severity != model.SeverityMinor || penalty.DaysOverdue != 3 {
		t.Fatalf("unexpected grading: %+v", penalty)
	}
	assertDecimal(t, "amount", penalty.Amount, "150")
}

func TestPenaltyScheduler_HourlyReportsCritical(t *testing.T) {
	e := newTestEnv(t)

	e.selectedOverdueQuote(t, uuid.New(), 2)
	critical := e.selectedOverdueQuote(t, uuid.New(), 15)

	result, err := e.scheduler.RunHourly(context.Background())
	if err != nil {
		t.Fatalf("hourly: %v", err)
	}
	if result.ViolationsDetected != 2 {
		t.Fatalf("violations = %d, want 2", result.ViolationsDetected)
	}
	if len(result.Critical) != 1 || result.Critical[0].QuoteID != critical.ID {
		t.Fatalf("critical = %+v", result.Critical)
	}
}

func TestPenaltyScheduler_StartRejectsBadCronExpression(t *testing.T) {
	e := newTestEnv(t)

	bad := service.NewPenaltyScheduler(e.detector, e.penalties, e.penaltyRepo, service.SchedulerConfig{DailySpec: "every tuesday"})
	if err := bad.Start(); err == nil {
		t.Fatal("expected an invalid cron expression to fail")
	}

	good := service.NewPenaltyScheduler(e.detector, e.penalties, e.penaltyRepo, service.SchedulerConfig{
		DailySpec:  "0 2 * * *",
		HourlySpec: "@hourly",
		WeeklySpec: "0 3 * * 1",
	})
	if err := good.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	good.Stop()
}
