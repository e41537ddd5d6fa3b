package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

const retryDebitBatch = 100

// SchedulerConfig holds the cron expressions of the penalty jobs.
type SchedulerConfig struct {
	DailySpec  string
	HourlySpec string
	WeeklySpec string
	Timeout    time.Duration
}

type DailyRunResult struct {
	ViolationsDetected int              `json:"violations_detected"`
	PenaltiesApplied   int              `json:"penalties_applied"`
	Skipped            int              `json:"skipped"`
	Errors             int              `json:"errors"`
	DebitsRetried      DebitRetryResult `json:"debits_retried"`
	RanAt              time.Time        `json:"ran_at"`
}

type HourlyRunResult struct {
	ViolationsDetected int         `json:"violations_detected"`
	Critical           []Violation `json:"critical"`
	RanAt              time.Time   `json:"ran_at"`
}

type WeeklyStats struct {
	Since       time.Time                   `json:"since"`
	Total       int                         `json:"total"`
	ByStatus    map[model.PenaltyStatus]int `json:"by_status"`
	ByType      map[model.PenaltyType]int   `json:"by_type"`
	BySeverity  map[model.Severity]int      `json:"by_severity"`
	TotalAmount decimal.Decimal             `json:"total_amount"`
}

// PenaltyScheduler runs SLA detection and automatic penalties on a timer. Runs may overlap
// across processes; the duplicate-penalty guard keeps them from charging twice.
type PenaltyScheduler struct {
	detector  SLADetector
	penalties PenaltyService
	repo      repository.PenaltyRepository
	cfg       SchedulerConfig
	now       func() time.Time
	cron      *cron.Cron
}

func NewPenaltyScheduler(detector SLADetector, penalties PenaltyService, repo repository.PenaltyRepository, cfg SchedulerConfig) *PenaltyScheduler {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Minute
	}
	return &PenaltyScheduler{
		detector:  detector,
		penalties: penalties,
		repo:      repo,
		cfg:       cfg,
		now:       time.Now,
	}
}

// RunDaily retries pending debits, then detects violations and applies late-installation penalties.
func (s *PenaltyScheduler) RunDaily(ctx context.Context) (DailyRunResult, error) {
	result := DailyRunResult{RanAt: s.now()}

	retried, err := s.penalties.RetryPendingDebits(ctx, retryDebitBatch)
	if err != nil {
		log.Printf("[SCHEDULER] debit retry failed: %v", err)
		result.Errors++
	}
	result.DebitsRetried = retried

	violations, err := s.detector.Detect(ctx, result.RanAt)
	if err != nil {
		return result, err
	}
	result.ViolationsDetected = len(violations)

	for _, v := range violations {
		if ctx.Err() != nil {
			log.Printf("[SCHEDULER] daily run interrupted: %v", ctx.Err())
			break
		}
		_, err := s.penalties.Apply(ctx, ApplyPenaltyDTO{
			ContractorID: v.ContractorID,
			QuoteID:      v.QuoteID,
			PenaltyType:  model.PenaltyLateInstallation,
			Severity:     v.Severity,
			DaysOverdue:  v.DaysOverdue,
			Description:  fmt.Sprintf("Installation overdue by %d day(s), due %s", v.DaysOverdue, v.DueDate.Format("2006-01-02")),
			Automatic:    true,
		})
		switch {
		case err == nil:
			result.PenaltiesApplied++
		case apperror.KindOf(err) == apperror.KindConflict:
			result.Skipped++
		default:
			result.Errors++
			log.Printf("[PENALTY] auto-apply for quote %s failed: %v", v.QuoteID, err)
		}
	}

	log.Printf("[SCHEDULER] daily run: detected=%d applied=%d skipped=%d errors=%d retried=%d",
		result.ViolationsDetected, result.PenaltiesApplied, result.Skipped, result.Errors, result.DebitsRetried.Attempted)
	return result, nil
}

// RunHourly detects only, logging critical violations for early visibility.
func (s *PenaltyScheduler) RunHourly(ctx context.Context) (HourlyRunResult, error) {
	result := HourlyRunResult{RanAt: s.now(), Critical: []Violation{}}

	violations, err := s.detector.Detect(ctx, result.RanAt)
	if err != nil {
		return result, err
	}
	result.ViolationsDetected = len(violations)
	for _, v := range violations {
		if v.Severity != model.SeverityCritical {
			continue
		}
		result.Critical = append(result.Critical, v)
		log.Printf("[SCHEDULER] critical SLA violation: quote=%s contractor=%s overdue=%dd",
			v.QuoteID, v.ContractorID, v.DaysOverdue)
	}
	return result, nil
}

// RunWeekly rolls up the penalties created during the last seven days.
func (s *PenaltyScheduler) RunWeekly(ctx context.Context) (WeeklyStats, error) {
	since := s.now().AddDate(0, 0, -7)
	stats := WeeklyStats{
		Since:       since,
		ByStatus:    make(map[model.PenaltyStatus]int),
		ByType:      make(map[model.PenaltyType]int),
		BySeverity:  make(map[model.Severity]int),
		TotalAmount: decimal.Zero,
	}

	penalties, err := s.repo.ListCreatedSince(ctx, since)
	if err != nil {
		return stats, apperror.Internal(err)
	}
	for _, p := range penalties {
		stats.Total++
		stats.ByStatus[p.Status]++
		stats.ByType[p.PenaltyType]++
		stats.BySeverity[p.Severity]++
		stats.TotalAmount = stats.TotalAmount.Add(p.Amount)
	}

	log.Printf("[SCHEDULER] weekly rollup since %s: total=%d amount=%s by_status=%v",
		since.Format("2006-01-02"), stats.Total, stats.TotalAmount.StringFixed(2), stats.ByStatus)
	return stats, nil
}

// Start registers the three jobs and starts the cron runner.
func (s *PenaltyScheduler) Start() error {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	jobs := []struct {
		name string
		spec string
		run  func(ctx context.Context) error
	}{
		{"daily", s.cfg.DailySpec, func(ctx context.Context) error { _, err := s.RunDaily(ctx); return err }},
		{"hourly", s.cfg.HourlySpec, func(ctx context.Context) error { _, err := s.RunHourly(ctx); return err }},
		{"weekly", s.cfg.WeeklySpec, func(ctx context.Context) error { _, err := s.RunWeekly(ctx); return err }},
	}
	for _, job := range jobs {
		if job.spec == "" {
			continue
		}
		job := job
		if _, err := c.AddFunc(job.spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Timeout)
			defer cancel()
			if err := job.run(ctx); err != nil {
				log.Printf("[SCHEDULER] %s job failed: %v", job.name, err)
			}
		}); err != nil {
			return fmt.Errorf("failed to schedule %s job %q: %w", job.name, job.spec, err)
		}
		log.Printf("[SCHEDULER] %s job scheduled at %q", job.name, job.spec)
	}

	s.cron = c
	c.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *PenaltyScheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}
