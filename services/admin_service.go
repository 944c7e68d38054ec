package services

import (
	"context"
	"fmt"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
)

// recentActivityLimit is how many audit entries the dashboard shows
const recentActivityLimit = 10

// Dashboard is the moderator's overview of outstanding work
type Dashboard struct {
	PendingRecords  models.PendingCounts   `json:"pending_records"`
	PendingDisputes int                    `json:"pending_disputes"`
	RecentActivity  []models.AuditLogEntry `json:"recent_activity"`
}

// AuditPage is one page of the audit log
type AuditPage struct {
	Entries []models.AuditLogEntry `json:"entries"`
	Total   int                    `json:"total"`
	Limit   int                    `json:"limit"`
	Offset  int                    `json:"offset"`
}

// AdminService interface defines the admin panel read models
type AdminService interface {
	Dashboard(ctx context.Context, actor *models.Actor) (*Dashboard, error)
	AuditLog(ctx context.Context, actor *models.Actor, filter models.AuditFilter) (*AuditPage, error)
}

// adminService implements AdminService interface
type adminService struct {
	entities repositories.EntityRepository
	disputes repositories.DisputeRepository
	audit    repositories.AuditRepository
}

// NewAdminService creates a new admin service
func NewAdminService(entities repositories.EntityRepository, disputes repositories.DisputeRepository, audit repositories.AuditRepository) AdminService {
	return &adminService{entities: entities, disputes: disputes, audit: audit}
}

// Dashboard counts unverified records per kind and pending disputes, and
// lists the most recent audit entries
func (s *adminService) Dashboard(ctx context.Context, actor *models.Actor) (*Dashboard, error) {
	if err := requireModerator(actor, "view admin panel"); err != nil {
		return nil, err
	}

	pending := make(models.PendingCounts, len(models.ModeratableKinds))
	for _, kind := range models.ModeratableKinds {
		count, err := s.entities.CountUnverified(ctx, kind)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending %s: %w", kind, err)
		}
		pending[kind] = count
	}

	disputes, err := s.disputes.CountByStatus(ctx, models.DisputePending)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending disputes: %w", err)
	}

	recent, err := s.audit.List(ctx, models.AuditFilter{Page: models.Page{Limit: recentActivityLimit}})
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}

	return &Dashboard{
		PendingRecords:  pending,
		PendingDisputes: disputes,
		RecentActivity:  recent,
	}, nil
}

// AuditLog returns one page of audit entries matching filter
func (s *adminService) AuditLog(ctx context.Context, actor *models.Actor, filter models.AuditFilter) (*AuditPage, error) {
	if err := requireModerator(actor, "view audit log"); err != nil {
		return nil, err
	}

	filter.Page = filter.Page.Normalize()
	entries, err := s.audit.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.audit.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &AuditPage{
		Entries: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}
