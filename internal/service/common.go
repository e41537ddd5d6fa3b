package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"solarquote/internal/integration"
	"solarquote/internal/model"
	"solarquote/internal/repository"
	"solarquote/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Roles carried in the access token.
const (
	RoleAdmin      = "admin"
	RoleContractor = "contractor"
	RoleUser       = "user"
	roleSystem     = "system"
)

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateDTO runs struct tag validation and reports the first failing field.
func validateDTO(dto interface{}) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := fmt.Sprintf("field %s failed on %s", strings.ToLower(fe.Field()), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return apperror.BusinessRule("VALIDATION_FAILED", msg)
	}
	return apperror.Internal(err)
}

// translate maps repository errors onto the service taxonomy. Errors that already carry a kind
// pass through untouched.
func translate(err error, notFoundCode, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return err
	}
	if repository.IsNotFound(err) {
		return apperror.NotFound(notFoundCode, notFoundMsg)
	}
	return apperror.Internal(err)
}

// auditEntry builds an audit row. actorID nil marks a scheduler action.
func auditEntry(actorID *uuid.UUID, role, action, entityType string, entityID uuid.UUID, details map[string]interface{}) *model.AuditLog {
	raw, err := json.Marshal(details)
	if err != nil {
		raw = []byte("{}")
	}
	if role == "" {
		role = roleSystem
	}
	return &model.AuditLog{
		ActorID:    actorID,
		ActorRole:  role,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID.String(),
		Details:    raw,
	}
}

func writeAudit(ctx context.Context, repo repository.AuditRepository, entry *model.AuditLog) error {
	if err := repo.Log(ctx, entry); err != nil {
		return fmt.Errorf("failed to write audit log: %w", err)
	}
	return nil
}

// publish sends a notification after commit. Failures are logged only.
func publish(ctx context.Context, notifier integration.Notifier, event integration.Event) {
	if notifier == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if err := notifier.Publish(ctx, event); err != nil {
		log.Printf("[NOTIFY] %s event failed: %v", event.Type, err)
	}
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
