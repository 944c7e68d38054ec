package services

import (
	"context"
	"strings"
	"time"

	"github.com/badapples/registry/metrics"
	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
	"github.com/badapples/registry/userctx"
)

// DisputeService interface defines dispute business logic
type DisputeService interface {
	FileDispute(ctx context.Context, form models.DisputeForm) (*models.Dispute, error)
	ResolveDispute(ctx context.Context, id int64, actor *models.Actor, form models.ResolveForm) (*models.Dispute, error)
	MarkUnderReview(ctx context.Context, id int64, actor *models.Actor) (*models.Dispute, error)
	GetDispute(ctx context.Context, id int64, actor *models.Actor) (*models.Dispute, error)
	ListDisputes(ctx context.Context, filter models.DisputeFilter, actor *models.Actor) ([]models.Dispute, error)
	ListDisputesForRecord(ctx context.Context, ref models.RecordRef, actor *models.Actor) ([]models.Dispute, error)
}

// disputeService implements DisputeService interface
type disputeService struct {
	tx       repositories.Transactor
	disputes repositories.DisputeRepository
	audit    *AuditRecorder
	adminURL string
}

// NewDisputeService creates a new dispute service. adminURL is linked from
// staff notifications.
func NewDisputeService(tx repositories.Transactor, disputes repositories.DisputeRepository, audit *AuditRecorder, adminURL string) DisputeService {
	return &disputeService{
		tx:       tx,
		disputes: disputes,
		audit:    audit,
		adminURL: adminURL,
	}
}

// FileDispute records a pending dispute from an anonymous requester and
// queues a notice to staff. The disputed record's verification is untouched.
func (s *disputeService) FileDispute(ctx context.Context, form models.DisputeForm) (*models.Dispute, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	table, err := models.ParseTable(form.TableName)
	if err != nil {
		return nil, models.NewValidationError("Invalid record type")
	}

	dispute := &models.Dispute{
		TableName:        table,
		RecordID:         form.RecordID,
		DisputeType:      models.DisputeType(form.DisputeType),
		Description:      strings.TrimSpace(form.Description),
		DisputerName:     strings.TrimSpace(form.DisputerName),
		DisputerEmail:    strings.TrimSpace(form.DisputerEmail),
		DisputerPhone:    strings.TrimSpace(form.DisputerPhone),
		EvidenceProvided: strings.TrimSpace(form.EvidenceProvided),
		Status:           models.DisputePending,
		IPAddress:        userctx.GetRequestInfo(ctx).IPAddress,
	}

	err = s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		exists, err := repos.Entities.Exists(ctx, dispute.Target())
		if err != nil {
			return err
		}
		if !exists {
			return &models.NotFoundError{Resource: string(table), ID: dispute.RecordID}
		}

		if err := repos.Disputes.Create(ctx, dispute); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, repos.Audit, dispute.Target(), models.ActionDispute, models.AuditChange{
			NewValue: "Disputed: " + string(dispute.DisputeType),
		}, nil); err != nil {
			return err
		}

		return notifyStaff(ctx, repos, func(recipients []string) models.Notification {
			return newDisputeNotification(recipients, s.adminURL, dispute)
		})
	})
	if err != nil {
		return nil, err
	}

	metrics.DisputesFiled.WithLabelValues(string(dispute.DisputeType)).Inc()
	log.Info("dispute filed", "dispute_id", dispute.ID, "target", dispute.Target().String(), "type", dispute.DisputeType)
	return dispute, nil
}

// ResolveDispute closes a dispute as resolved or dismissed and queues a
// notice to the disputer when an email was given
func (s *disputeService) ResolveDispute(ctx context.Context, id int64, actor *models.Actor, form models.ResolveForm) (*models.Dispute, error) {
	if err := requireModerator(actor, "resolve dispute"); err != nil {
		return nil, err
	}
	if errs := form.Validate(); len(errs) > 0 {
		return nil, models.NewValidationError(errs...)
	}

	var dispute *models.Dispute
	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		var err error
		dispute, err = repos.Disputes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if dispute.Status.IsFinal() {
			return models.NewValidationError("Dispute is already " + string(dispute.Status))
		}

		old := dispute.Status
		now := time.Now().UTC()
		dispute.Status = models.DisputeStatus(form.Status)
		dispute.Resolution = strings.TrimSpace(form.Resolution)
		dispute.ModeratorID = actor.ID()
		dispute.ResolutionDate = &now

		if err := repos.Disputes.Update(ctx, dispute); err != nil {
			return err
		}

		if err := s.audit.Record(ctx, repos.Audit, models.RecordRef{Table: models.TableDisputes, ID: dispute.ID}, models.ActionUpdate, models.AuditChange{
			Field:    "status",
			OldValue: string(old),
			NewValue: string(dispute.Status),
		}, actor); err != nil {
			return err
		}

		if dispute.DisputerEmail == "" {
			return nil
		}
		_, err = repos.Outbox.Enqueue(ctx, disputeResolutionNotification(dispute))
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.DisputesResolved.WithLabelValues(string(dispute.Status)).Inc()
	log.Info("dispute closed", "dispute_id", dispute.ID, "status", dispute.Status, "moderator", actor.Username)
	return dispute, nil
}

// MarkUnderReview moves a pending dispute to under_review
func (s *disputeService) MarkUnderReview(ctx context.Context, id int64, actor *models.Actor) (*models.Dispute, error) {
	if err := requireModerator(actor, "review dispute"); err != nil {
		return nil, err
	}

	var dispute *models.Dispute
	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		var err error
		dispute, err = repos.Disputes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if dispute.Status != models.DisputePending {
			return models.NewValidationError("Only pending disputes can be taken under review")
		}

		dispute.Status = models.DisputeUnderReview
		dispute.ModeratorID = actor.ID()
		if err := repos.Disputes.Update(ctx, dispute); err != nil {
			return err
		}

		return s.audit.Record(ctx, repos.Audit, models.RecordRef{Table: models.TableDisputes, ID: dispute.ID}, models.ActionUpdate, models.AuditChange{
			Field:    "status",
			OldValue: string(models.DisputePending),
			NewValue: string(models.DisputeUnderReview),
		}, actor)
	})
	if err != nil {
		return nil, err
	}

	return dispute, nil
}

// GetDispute retrieves a dispute by ID
func (s *disputeService) GetDispute(ctx context.Context, id int64, actor *models.Actor) (*models.Dispute, error) {
	if err := requireModerator(actor, "view dispute"); err != nil {
		return nil, err
	}
	return s.disputes.GetByID(ctx, id)
}

// ListDisputes lists disputes, newest first
func (s *disputeService) ListDisputes(ctx context.Context, filter models.DisputeFilter, actor *models.Actor) ([]models.Dispute, error) {
	if err := requireModerator(actor, "view disputes"); err != nil {
		return nil, err
	}
	return s.disputes.List(ctx, filter)
}

// ListDisputesForRecord lists every dispute filed against one record
func (s *disputeService) ListDisputesForRecord(ctx context.Context, ref models.RecordRef, actor *models.Actor) ([]models.Dispute, error) {
	if err := requireModerator(actor, "view disputes"); err != nil {
		return nil, err
	}
	return s.disputes.ListByRecord(ctx, ref)
}

// notifyStaff queues a notification to every active admin and moderator.
// Nothing is queued when no staff member has an email.
func notifyStaff(ctx context.Context, repos *repositories.Repositories, build func(recipients []string) models.Notification) error {
	recipients, err := repos.Users.ListStaffEmails(ctx)
	if err != nil {
		return err
	}
	if len(recipients) == 0 {
		return nil
	}

	_, err = repos.Outbox.Enqueue(ctx, build(recipients))
	return err
}
