package service

import (
	"context"
	"encoding/json"

	"solarquote/internal/repository"
	"solarquote/pkg/apperror"
	"solarquote/pkg/pagination"
)

type AuditLogResponse struct {
	ID         string          `json:"id"`
	ActorID    string          `json:"actor_id"`
	ActorRole  string          `json:"actor_role"`
	Action     string          `json:"action"`
	EntityType string          `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Details    json.RawMessage `json:"details"`
	CreatedAt  string          `json:"created_at"`
}

type AuditService interface {
	GetAuditLogs(ctx context.Context, filter repository.AuditFilter, page pagination.Params) ([]AuditLogResponse, int64, error)
}

type auditService struct {
	audits repository.AuditRepository
}

// NewAuditService creates a new AuditService instance
func NewAuditService(audits repository.AuditRepository) AuditService {
	return &auditService{audits: audits}
}

// GetAuditLogs returns one page of the trail, newest first. Scheduler rows carry no actor id.
func (s *auditService) GetAuditLogs(ctx context.Context, filter repository.AuditFilter, page pagination.Params) ([]AuditLogResponse, int64, error) {
	logs, total, err := s.audits.List(ctx, filter, page)
	if err != nil {
		return nil, 0, apperror.Internal(err)
	}

	res := make([]AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		actorID := ""
		if l.ActorID != nil {
			actorID = l.ActorID.String()
		}
		details := json.RawMessage(l.Details)
		if len(details) == 0 {
			details = json.RawMessage("{}")
		}

		res = append(res, AuditLogResponse{
			ID:         l.ID.String(),
			ActorID:    actorID,
			ActorRole:  l.ActorRole,
			Action:     l.Action,
			EntityType: l.EntityType,
			EntityID:   l.EntityID,
			Details:    details,
			CreatedAt:  l.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return res, total, nil
}
