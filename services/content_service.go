package services

import (
	"context"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
)

// ContentService interface defines intake of officers and moderatable content.
// Every created record starts unverified.
type ContentService interface {
	CreateOfficer(ctx context.Context, actor *models.Actor, form models.OfficerForm) (*models.Officer, error)
	CreateIncident(ctx context.Context, actor *models.Actor, form models.IncidentForm) (*models.Incident, error)
	CreateEvidence(ctx context.Context, actor *models.Actor, form models.EvidenceForm) (*models.Evidence, error)
	SubmitCommunityReport(ctx context.Context, form models.CommunityReportForm) (*models.CommunityReport, error)
}

// contentService implements ContentService interface
type contentService struct {
	tx       repositories.Transactor
	audit    *AuditRecorder
	adminURL string
}

// NewContentService creates a new content service
func NewContentService(tx repositories.Transactor, audit *AuditRecorder, adminURL string) ContentService {
	return &contentService{tx: tx, audit: audit, adminURL: adminURL}
}

// CreateOfficer adds an officer
func (s *contentService) CreateOfficer(ctx context.Context, actor *models.Actor, form models.OfficerForm) (*models.Officer, error) {
	if err := requireModerator(actor, "add officer"); err != nil {
		return nil, err
	}
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	officer := form.ToOfficer()
	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		if err := repos.Entities.CreateOfficer(ctx, officer); err != nil {
			return err
		}
		return s.recordCreate(ctx, repos, models.RecordRef{Table: models.TableOfficers, ID: officer.ID}, actor)
	})
	if err != nil {
		return nil, err
	}

	return officer, nil
}

// CreateIncident adds an unverified incident for an existing officer
func (s *contentService) CreateIncident(ctx context.Context, actor *models.Actor, form models.IncidentForm) (*models.Incident, error) {
	if err := requireModerator(actor, "add incident"); err != nil {
		return nil, err
	}
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	incident := form.ToIncident()
	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		if err := mustExist(ctx, repos, models.TableOfficers, incident.OfficerID); err != nil {
			return err
		}
		if err := repos.Entities.CreateIncident(ctx, incident); err != nil {
			return err
		}
		return s.recordCreate(ctx, repos, models.IncidentID(incident.ID).Record(), actor)
	})
	if err != nil {
		return nil, err
	}

	return incident, nil
}

// CreateEvidence records metadata of an already stored evidence file
func (s *contentService) CreateEvidence(ctx context.Context, actor *models.Actor, form models.EvidenceForm) (*models.Evidence, error) {
	if err := requireModerator(actor, "add evidence"); err != nil {
		return nil, err
	}
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	evidence := form.ToEvidence()
	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		if err := mustExist(ctx, repos, models.TableOfficers, evidence.OfficerID); err != nil {
			return err
		}
		if evidence.IncidentID != nil {
			if err := mustExist(ctx, repos, models.TableIncidents, *evidence.IncidentID); err != nil {
				return err
			}
		}
		if err := repos.Entities.CreateEvidence(ctx, evidence); err != nil {
			return err
		}
		return s.recordCreate(ctx, repos, models.EvidenceID(evidence.ID).Record(), actor)
	})
	if err != nil {
		return nil, err
	}

	return evidence, nil
}

// SubmitCommunityReport stores an anonymous report and queues a notice to staff
func (s *contentService) SubmitCommunityReport(ctx context.Context, form models.CommunityReportForm) (*models.CommunityReport, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	report := form.ToCommunityReport()
	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		if report.IncidentID != nil {
			if err := mustExist(ctx, repos, models.TableIncidents, *report.IncidentID); err != nil {
				return err
			}
		}
		if err := repos.Entities.CreateCommunityReport(ctx, report); err != nil {
			return err
		}
		if err := s.recordCreate(ctx, repos, models.CommunityReportID(report.ID).Record(), nil); err != nil {
			return err
		}

		return notifyStaff(ctx, repos, func(recipients []string) models.Notification {
			return newReportNotification(recipients, s.adminURL, "community_report", report.ID)
		})
	})
	if err != nil {
		return nil, err
	}

	log.Info("community report submitted", "report_id", report.ID)
	return report, nil
}

func (s *contentService) recordCreate(ctx context.Context, repos *repositories.Repositories, target models.RecordRef, actor *models.Actor) error {
	return s.audit.Record(ctx, repos.Audit, target, models.ActionCreate, models.AuditChange{}, actor)
}

// mustExist returns NotFoundError unless the referenced row is present
func mustExist(ctx context.Context, repos *repositories.Repositories, table models.Table, id int64) error {
	exists, err := repos.Entities.Exists(ctx, models.RecordRef{Table: table, ID: id})
	if err != nil {
		return err
	}
	if !exists {
		return &models.NotFoundError{Resource: string(table), ID: id}
	}
	return nil
}
