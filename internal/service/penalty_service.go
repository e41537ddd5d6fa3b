package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"solarquote/internal/integration"
	"solarquote/internal/model"
	"solarquote/internal/pricing"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- DTOs ---

// ApplyPenaltyDTO levies a penalty. AppliedBy is nil and Automatic true when the SLA job raises it.
type ApplyPenaltyDTO struct {
	ContractorID uuid.UUID         `json:"contractor_id" validate:"required"`
	QuoteID      uuid.UUID         `json:"quote_id" validate:"required"`
	PenaltyType  model.PenaltyType `json:"penalty_type" validate:"required"`
	Severity     model.Severity    `json:"severity"`
	Description  string            `json:"description" validate:"max=2000"`
	CustomAmount *decimal.Decimal  `json:"custom_amount"`
	DaysOverdue  int               `json:"days_overdue" validate:"min=0"`
	AppliedBy    *uuid.UUID        `json:"-"`
	Automatic    bool              `json:"-"`
}

type DisputePenaltyDTO struct {
	Reason string `json:"reason" validate:"max=2000"`
}

type WaivePenaltyDTO struct {
	Reason string `json:"reason" validate:"max=2000"`
}

type CreatePenaltyRuleDTO struct {
	PenaltyType       model.PenaltyType       `json:"penalty_type" validate:"required"`
	SeverityLevel     model.Severity          `json:"severity_level" validate:"required"`
	AmountCalculation model.AmountCalculation `json:"amount_calculation" validate:"required"`
	AmountValue       decimal.Decimal         `json:"amount_value"`
	MaximumAmount     *decimal.Decimal        `json:"maximum_amount"`
	Description       string                  `json:"description" validate:"max=1000"`
	IsActive          *bool                   `json:"is_active"`
}

type UpdatePenaltyRuleDTO struct {
	SeverityLevel     *model.Severity          `json:"severity_level"`
	AmountCalculation *model.AmountCalculation `json:"amount_calculation"`
	AmountValue       *decimal.Decimal         `json:"amount_value"`
	MaximumAmount     *decimal.Decimal         `json:"maximum_amount"`
	ClearMaximum      bool                     `json:"clear_maximum"`
	Description       *string                  `json:"description" validate:"omitempty,max=1000"`
	IsActive          *bool                    `json:"is_active"`
}

// DebitRetryResult counts one pass over pending penalties.
type DebitRetryResult struct {
	Attempted int `json:"attempted"`
	Applied   int `json:"applied"`
	Failed    int `json:"failed"`
}

// --- Interface ---

type PenaltyService interface {
	Apply(ctx context.Context, dto ApplyPenaltyDTO) (*model.PenaltyInstance, error)
	Dispute(ctx context.Context, contractorID, penaltyID uuid.UUID, dto DisputePenaltyDTO) (*model.PenaltyInstance, error)
	Waive(ctx context.Context, adminID, penaltyID uuid.UUID, dto WaivePenaltyDTO) (*model.PenaltyInstance, error)
	RetryPendingDebits(ctx context.Context, limit int) (DebitRetryResult, error)
	Get(ctx context.Context, actor Actor, penaltyID uuid.UUID) (*model.PenaltyInstance, error)
	List(ctx context.Context, filter repository.PenaltyFilter, page pagination.Params) ([]model.PenaltyInstance, int64, error)

	CreateRule(ctx context.Context, adminID uuid.UUID, dto CreatePenaltyRuleDTO) (*model.PenaltyRule, error)
	UpdateRule(ctx context.Context, adminID, ruleID uuid.UUID, dto UpdatePenaltyRuleDTO) (*model.PenaltyRule, error)
	ListRules(ctx context.Context, penaltyType model.PenaltyType, activeOnly bool) ([]model.PenaltyRule, error)
}

type penaltyService struct {
	tx        repository.TransactionManager
	quotes    repository.ContractorQuoteRepository
	rules     repository.PenaltyRuleRepository
	penalties repository.PenaltyRepository
	audits    repository.AuditRepository
	wallet    integration.WalletClient
	notifier  integration.Notifier
}

func NewPenaltyService(
	tx repository.TransactionManager,
	quotes repository.ContractorQuoteRepository,
	rules repository.PenaltyRuleRepository,
	penalties repository.PenaltyRepository,
	audits repository.AuditRepository,
	wallet integration.WalletClient,
	notifier integration.Notifier,
) PenaltyService {
	return &penaltyService{
		tx:        tx,
		quotes:    quotes,
		rules:     rules,
		penalties: penalties,
		audits:    audits,
		wallet:    wallet,
		notifier:  notifier,
	}
}

// --- Implementation ---

// ResolvePenaltyAmount prices a penalty from its rule. A custom amount overrides the rule.
// Percentage rules apply to the quote base price, daily rules to the overdue day count, and
// both are capped by the rule maximum.
func ResolvePenaltyAmount(rule *model.PenaltyRule, basePrice decimal.Decimal, custom *decimal.Decimal, daysOverdue int) (decimal.Decimal, error) {
	if custom != nil {
		if !custom.IsPositive() {
			return decimal.Zero, apperror.BusinessRule("INVALID_PENALTY_AMOUNT", "custom amount must be greater than zero")
		}
		return pricing.Round(*custom), nil
	}

	var amount decimal.Decimal
	switch rule.AmountCalculation {
	case model.AmountFixed:
		return pricing.Round(rule.AmountValue), nil
	case model.AmountPercentage:
		amount = pricing.Round(basePrice.Mul(rule.AmountValue).Div(decimal.NewFromInt(100)))
	case model.AmountDaily:
		if daysOverdue < 1 {
			return decimal.Zero, apperror.BusinessRule("DAYS_OVERDUE_REQUIRED", "daily penalties need the number of days overdue")
		}
		amount = pricing.Round(rule.AmountValue.Mul(decimal.NewFromInt(int64(daysOverdue))))
	default:
		return decimal.Zero, apperror.BusinessRule("INVALID_AMOUNT_CALCULATION", "unknown amount calculation "+string(rule.AmountCalculation))
	}

	if rule.MaximumAmount != nil && amount.GreaterThan(*rule.MaximumAmount) {
		amount = pricing.Round(*rule.MaximumAmount)
	}
	return amount, nil
}

// Apply creates the penalty, then tries the wallet debit. The penalty row is durable before the
// debit: a failed debit leaves it pending for RetryPendingDebits.
func (s *penaltyService) Apply(ctx context.Context, dto ApplyPenaltyDTO) (*model.PenaltyInstance, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	if !dto.PenaltyType.Valid() {
		return nil, apperror.BusinessRule("INVALID_PENALTY_TYPE", "unknown penalty type "+string(dto.PenaltyType))
	}
	severity := dto.Severity
	if severity == "" && dto.DaysOverdue > 0 {
		severity = model.SeverityForDaysOverdue(dto.DaysOverdue)
	}
	if severity != "" && !severity.Valid() {
		return nil, apperror.BusinessRule("INVALID_SEVERITY", "unknown severity "+string(severity))
	}

	var penalty *model.PenaltyInstance
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		quote, err := s.quotes.FindByIDForUpdate(txCtx, dto.QuoteID)
		if err != nil {
			return translate(err, "QUOTE_NOT_FOUND", "quote not found")
		}
		if quote.ContractorID != dto.ContractorID {
			return apperror.BusinessRule("QUOTE_CONTRACTOR_MISMATCH", "quote does not belong to the contractor")
		}

		rule, err := s.rules.FindActive(txCtx, dto.PenaltyType, severity)
		if err != nil {
			if repository.IsNotFound(err) {
				return apperror.BusinessRule("NO_PENALTY_RULE", "no active penalty rule for "+string(dto.PenaltyType))
			}
			return fmt.Errorf("failed to find penalty rule: %w", err)
		}
		if severity == "" {
			severity = rule.SeverityLevel
		}

		exists, err := s.penalties.ExistsActive(txCtx, dto.ContractorID, dto.QuoteID, dto.PenaltyType)
		if err != nil {
			return fmt.Errorf("failed to check existing penalty: %w", err)
		}
		if exists {
			return apperror.Conflict("PENALTY_ALREADY_EXISTS", "an active "+string(dto.PenaltyType)+" penalty already exists for this quote")
		}

		amount, err := ResolvePenaltyAmount(rule, quote.BasePrice, dto.CustomAmount, dto.DaysOverdue)
		if err != nil {
			return err
		}

		description := dto.Description
		if description == "" {
			description = rule.Description
		}
		penalty = &model.PenaltyInstance{
			ContractorID: dto.ContractorID,
			QuoteID:      dto.QuoteID,
			RuleID:       rule.ID,
			PenaltyType:  dto.PenaltyType,
			Severity:     severity,
			Amount:       amount,
			DaysOverdue:  dto.DaysOverdue,
			Description:  description,
			Status:       model.PenaltyPending,
			AppliedBy:    dto.AppliedBy,
			IsAutomatic:  dto.Automatic,
		}
		if err := s.penalties.Create(txCtx, penalty); err != nil {
			if repository.IsUniqueViolation(err) {
				return apperror.Conflict("PENALTY_ALREADY_EXISTS", "an active "+string(dto.PenaltyType)+" penalty already exists for this quote")
			}
			return fmt.Errorf("failed to create penalty: %w", err)
		}

		role := RoleAdmin
		if dto.Automatic {
			role = roleSystem
		}
		return writeAudit(txCtx, s.audits, auditEntry(dto.AppliedBy, role, model.ActionApplyPenalty, "penalty_instance", penalty.ID, map[string]interface{}{
			"contractor_id": penalty.ContractorID,
			"quote_id":      penalty.QuoteID,
			"penalty_type":  penalty.PenaltyType,
			"severity":      penalty.Severity,
			"amount":        penalty.Amount,
			"days_overdue":  penalty.DaysOverdue,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}

	penalty = s.debit(ctx, penalty)

	publish(ctx, s.notifier, integration.Event{
		Type:       integration.EventPenaltyApplied,
		Recipients: []uuid.UUID{penalty.ContractorID},
		Payload: map[string]interface{}{
			"penalty_id":   penalty.ID,
			"quote_id":     penalty.QuoteID,
			"penalty_type": penalty.PenaltyType,
			"amount":       penalty.Amount,
			"status":       penalty.Status,
		},
	})
	return penalty, nil
}

// debit charges the wallet and records the outcome. Wallet failures are logged and leave the
// penalty pending; they are never returned.
func (s *penaltyService) debit(ctx context.Context, penalty *model.PenaltyInstance) *model.PenaltyInstance {
	if s.wallet == nil {
		return penalty
	}

	txID, debitErr := s.wallet.ApplyPenaltyDebit(ctx, integration.PenaltyDebit{
		ContractorID: penalty.ContractorID,
		PenaltyID:    penalty.ID,
		Amount:       penalty.Amount,
		Description:  penalty.Description,
	})
	if debitErr != nil {
		log.Printf("[WALLET] debit for penalty %s failed: %v", penalty.ID, debitErr)
	}

	var updated *model.PenaltyInstance
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.penalties.FindByIDForUpdate(txCtx, penalty.ID)
		if err != nil {
			return err
		}
		current.DebitAttempts++
		if debitErr != nil {
			current.LastDebitError = debitErr.Error()
			updated = current
			return s.penalties.Update(txCtx, current)
		}
		if current.Status != model.PenaltyPending {
			// waived while the wallet call was in flight
			log.Printf("[WALLET] penalty %s debited as %s but is now %s", current.ID, txID, current.Status)
			current.WalletTransactionID = txID
			updated = current
			return s.penalties.Update(txCtx, current)
		}

		now := time.Now()
		current.Status = model.PenaltyApplied
		current.WalletTransactionID = txID
		current.LastDebitError = ""
		current.AppliedAt = &now
		if err := s.penalties.Update(txCtx, current); err != nil {
			return err
		}
		updated = current
		return writeAudit(txCtx, s.audits, auditEntry(nil, roleSystem, model.ActionPenaltyDebitApplied, "penalty_instance", current.ID, map[string]interface{}{
			"wallet_transaction_id": txID,
			"amount":                current.Amount,
		}))
	})
	if err != nil {
		log.Printf("[PENALTY] failed to record debit outcome for %s: %v", penalty.ID, err)
		return penalty
	}
	return updated
}

// RetryPendingDebits re-attempts the wallet debit of penalties still pending, oldest first.
func (s *penaltyService) RetryPendingDebits(ctx context.Context, limit int) (DebitRetryResult, error) {
	var result DebitRetryResult

	pending, err := s.penalties.ListByStatus(ctx, model.PenaltyPending, limit)
	if err != nil {
		return result, apperror.Internal(err)
	}
	for i := range pending {
		if ctx.Err() != nil {
			break
		}
		result.Attempted++
		updated := s.debit(ctx, &pending[i])
		if updated.Status == model.PenaltyApplied {
			result.Applied++
		} else {
			result.Failed++
		}
	}
	return result, nil
}

func (s *penaltyService) Dispute(ctx context.Context, contractorID, penaltyID uuid.UUID, dto DisputePenaltyDTO) (*model.PenaltyInstance, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(dto.Reason)
	if reason == "" {
		return nil, apperror.BusinessRule("DISPUTE_REASON_REQUIRED", "a dispute reason is required")
	}

	var penalty *model.PenaltyInstance
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		penalty, err = s.penalties.FindByIDForUpdate(txCtx, penaltyID)
		if err != nil {
			return translate(err, "PENALTY_NOT_FOUND", "penalty not found")
		}
		if penalty.ContractorID != contractorID {
			return apperror.Forbidden("NOT_PENALTY_OWNER", "penalty belongs to another contractor")
		}
		if penalty.Status != model.PenaltyApplied {
			return apperror.Conflict("PENALTY_NOT_DISPUTABLE", "only applied penalties can be disputed, status "+string(penalty.Status))
		}

		now := time.Now()
		penalty.Status = model.PenaltyDisputed
		penalty.DisputeReason = reason
		penalty.DisputedAt = &now
		if err := s.penalties.Update(txCtx, penalty); err != nil {
			return fmt.Errorf("failed to update penalty: %w", err)
		}
		return writeAudit(txCtx, s.audits, auditEntry(&contractorID, RoleContractor, model.ActionDisputePenalty, "penalty_instance", penalty.ID, map[string]interface{}{
			"reason": reason,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return penalty, nil
}

func (s *penaltyService) Waive(ctx context.Context, adminID, penaltyID uuid.UUID, dto WaivePenaltyDTO) (*model.PenaltyInstance, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	reason := strings.TrimSpace(dto.Reason)
	if reason == "" {
		return nil, apperror.BusinessRule("WAIVE_REASON_REQUIRED", "a waive reason is required")
	}

	var penalty *model.PenaltyInstance
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		penalty, err = s.penalties.FindByIDForUpdate(txCtx, penaltyID)
		if err != nil {
			return translate(err, "PENALTY_NOT_FOUND", "penalty not found")
		}
		if penalty.Status != model.PenaltyPending && penalty.Status != model.PenaltyDisputed {
			return apperror.Conflict("PENALTY_NOT_WAIVABLE", "only pending or disputed penalties can be waived, status "+string(penalty.Status))
		}

		previous := penalty.Status
		now := time.Now()
		penalty.Status = model.PenaltyWaived
		penalty.WaivedBy = &adminID
		penalty.WaiveReason = reason
		penalty.WaivedAt = &now
		if err := s.penalties.Update(txCtx, penalty); err != nil {
			return fmt.Errorf("failed to update penalty: %w", err)
		}
		return writeAudit(txCtx, s.audits, auditEntry(&adminID, RoleAdmin, model.ActionWaivePenalty, "penalty_instance", penalty.ID, map[string]interface{}{
			"from":   previous,
			"reason": reason,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return penalty, nil
}

func (s *penaltyService) Get(ctx context.Context, actor Actor, penaltyID uuid.UUID) (*model.PenaltyInstance, error) {
	penalty, err := s.penalties.FindByID(ctx, penaltyID)
	if err != nil {
		return nil, translate(err, "PENALTY_NOT_FOUND", "penalty not found")
	}
	if !actor.IsAdmin() && penalty.ContractorID != actor.ID {
		return nil, apperror.Forbidden("NOT_PENALTY_OWNER", "penalty belongs to another contractor")
	}
	return penalty, nil
}

func (s *penaltyService) List(ctx context.Context, filter repository.PenaltyFilter, page pagination.Params) ([]model.PenaltyInstance, int64, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, apperror.BusinessRule("INVALID_STATUS", "unknown penalty status "+string(filter.Status))
	}
	out, total, err := s.penalties.List(ctx, filter, page)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}
	return out, total, nil
}

func validateRule(rule *model.PenaltyRule) error {
	switch {
	case !rule.PenaltyType.Valid():
		return apperror.BusinessRule("INVALID_PENALTY_TYPE", "unknown penalty type "+string(rule.PenaltyType))
	case !rule.SeverityLevel.Valid():
		return apperror.BusinessRule("INVALID_SEVERITY", "unknown severity "+string(rule.SeverityLevel))
	case !rule.AmountCalculation.Valid():
		return apperror.BusinessRule("INVALID_AMOUNT_CALCULATION", "unknown amount calculation "+string(rule.AmountCalculation))
	case !rule.AmountValue.IsPositive():
		return apperror.BusinessRule("INVALID_RULE_AMOUNT", "amount value must be greater than zero")
	case rule.AmountCalculation == model.AmountPercentage && rule.AmountValue.GreaterThan(decimal.NewFromInt(100)):
		return apperror.BusinessRule("INVALID_RULE_AMOUNT", "percentage rules cannot exceed 100")
	case rule.MaximumAmount != nil && !rule.MaximumAmount.IsPositive():
		return apperror.BusinessRule("INVALID_RULE_MAXIMUM", "maximum amount must be greater than zero")
	}
	return nil
}

func (s *penaltyService) CreateRule(ctx context.Context, adminID uuid.UUID, dto CreatePenaltyRuleDTO) (*model.PenaltyRule, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}
	rule := &model.PenaltyRule{
		PenaltyType:       dto.PenaltyType,
		SeverityLevel:     dto.SeverityLevel,
		AmountCalculation: dto.AmountCalculation,
		AmountValue:       dto.AmountValue,
		MaximumAmount:     dto.MaximumAmount,
		Description:       dto.Description,
		IsActive:          true,
	}
	if dto.IsActive != nil {
		rule.IsActive = *dto.IsActive
	}
	if err := validateRule(rule); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.rules.Create(txCtx, rule); err != nil {
			return fmt.Errorf("failed to create penalty rule: %w", err)
		}
		return writeAudit(txCtx, s.audits, auditEntry(&adminID, RoleAdmin, model.ActionCreatePenaltyRule, "penalty_rule", rule.ID, map[string]interface{}{
			"rule": rule,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return rule, nil
}

func (s *penaltyService) UpdateRule(ctx context.Context, adminID, ruleID uuid.UUID, dto UpdatePenaltyRuleDTO) (*model.PenaltyRule, error) {
	if err := validateDTO(dto); err != nil {
		return nil, err
	}

	var rule *model.PenaltyRule
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		rule, err = s.rules.FindByID(txCtx, ruleID)
		if err != nil {
			return translate(err, "PENALTY_RULE_NOT_FOUND", "penalty rule not found")
		}
		old := *rule

		if dto.SeverityLevel != nil {
			rule.SeverityLevel = *dto.SeverityLevel
		}
		if dto.AmountCalculation != nil {
			rule.AmountCalculation = *dto.AmountCalculation
		}
		if dto.AmountValue != nil {
			rule.AmountValue = *dto.AmountValue
		}
		if dto.ClearMaximum {
			rule.MaximumAmount = nil
		} else if dto.MaximumAmount != nil {
			rule.MaximumAmount = dto.MaximumAmount
		}
		if dto.Description != nil {
			rule.Description = *dto.Description
		}
		if dto.IsActive != nil {
			rule.IsActive = *dto.IsActive
		}
		if err := validateRule(rule); err != nil {
			return err
		}

		if err := s.rules.Update(txCtx, rule); err != nil {
			return fmt.Errorf("failed to update penalty rule: %w", err)
		}
		return writeAudit(txCtx, s.audits, auditEntry(&adminID, RoleAdmin, model.ActionUpdatePenaltyRule, "penalty_rule", rule.ID, map[string]interface{}{
			"old": old,
			"new": rule,
		}))
	})
	if err != nil {
		return nil, apperror.Ensure(err)
	}
	return rule, nil
}

func (s *penaltyService) ListRules(ctx context.Context, penaltyType model.PenaltyType, activeOnly bool) ([]model.PenaltyRule, error) {
	if penaltyType != "" && !penaltyType.Valid() {
		return nil, apperror.BusinessRule("INVALID_PENALTY_TYPE", "unknown penalty type "+string(penaltyType))
	}
	out, err := s.rules.List(ctx, penaltyType, activeOnly)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return out, nil
}
