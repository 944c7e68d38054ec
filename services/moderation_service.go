package services

import (
	"context"
	"strconv"

	"github.com/badapples/registry/metrics"
	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
)

// ModerationService interface defines the moderator review actions
type ModerationService interface {
	Approve(ctx context.Context, ref models.EntityRef, actor *models.Actor) error
	Reject(ctx context.Context, ref models.EntityRef, actor *models.Actor, reasonCode string) error
	BatchApprove(ctx context.Context, kind models.EntityKind, ids []int64, actor *models.Actor) (*models.BatchResult, error)
	BatchReject(ctx context.Context, kind models.EntityKind, ids []int64, actor *models.Actor, reasonCode string) (*models.BatchResult, error)
	ListModerations(ctx context.Context, ref models.RecordRef, actor *models.Actor) ([]models.ContentModeration, error)
	GetRecordForReview(ctx context.Context, ref models.EntityRef, actor *models.Actor) (*models.ReviewRecord, error)
}

// moderationService implements ModerationService interface
type moderationService struct {
	tx         repositories.Transactor
	entities   repositories.EntityRepository
	moderation repositories.ModerationRepository
	disputes   repositories.DisputeRepository
	audit      *AuditRecorder
}

// NewModerationService creates a new moderation service
func NewModerationService(
	tx repositories.Transactor,
	entities repositories.EntityRepository,
	moderation repositories.ModerationRepository,
	disputes repositories.DisputeRepository,
	audit *AuditRecorder,
) ModerationService {
	return &moderationService{
		tx:         tx,
		entities:   entities,
		moderation: moderation,
		disputes:   disputes,
		audit:      audit,
	}
}

// requireModerator fails with AuthorizationError unless actor is admin or moderator
func requireModerator(actor *models.Actor, action string) error {
	if !actor.CanModerate() {
		return &models.AuthorizationError{Action: action}
	}
	return nil
}

// Approve marks the record verified and appends an approve audit entry.
// Approving an already verified record still appends an entry.
func (s *moderationService) Approve(ctx context.Context, ref models.EntityRef, actor *models.Actor) error {
	if err := requireModerator(actor, "approve"); err != nil {
		return err
	}

	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		was, err := repos.Entities.IsVerified(ctx, ref)
		if err != nil {
			return err
		}

		if err := repos.Entities.SetVerified(ctx, ref, true); err != nil {
			return err
		}

		return s.audit.Record(ctx, repos.Audit, ref.Record(), models.ActionApprove, models.AuditChange{
			Field:    "verified",
			OldValue: strconv.FormatBool(was),
			NewValue: "true",
		}, actor)
	})
	if err != nil {
		return err
	}

	metrics.ModerationActions.WithLabelValues(string(models.ActionApprove), string(ref.Kind())).Inc()
	log.Info("record approved", "target", ref.Record().String(), "moderator", actor.Username)
	return nil
}

// Reject adds a rejected ledger row and a reject audit entry. The verified
// flag is left as it is.
func (s *moderationService) Reject(ctx context.Context, ref models.EntityRef, actor *models.Actor, reasonCode string) error {
	if err := requireModerator(actor, "reject"); err != nil {
		return err
	}

	reason := models.NormalizeReason(reasonCode, models.DefaultRejectReason)
	form := models.RejectForm{Reason: reason}
	if errs := form.Validate(); len(errs) > 0 {
		return models.NewValidationError(errs...)
	}

	err := s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		exists, err := repos.Entities.Exists(ctx, ref.Record())
		if err != nil {
			return err
		}
		if !exists {
			return &models.NotFoundError{Resource: string(ref.Kind()), ID: ref.RecordID()}
		}

		if err := repos.Moderation.Create(ctx, rejection(ref.Record(), actor, reason)); err != nil {
			return err
		}

		return s.audit.Record(ctx, repos.Audit, ref.Record(), models.ActionReject, models.AuditChange{
			Field:    "reason_code",
			NewValue: reason,
		}, actor)
	})
	if err != nil {
		return err
	}

	metrics.ModerationActions.WithLabelValues(string(models.ActionReject), string(ref.Kind())).Inc()
	log.Info("record rejected", "target", ref.Record().String(), "reason", reason, "moderator", actor.Username)
	return nil
}

// BatchApprove verifies every resolvable id and appends one aggregate audit
// entry. Unknown ids are skipped.
func (s *moderationService) BatchApprove(ctx context.Context, kind models.EntityKind, ids []int64, actor *models.Actor) (*models.BatchResult, error) {
	if err := requireModerator(actor, "batch approve"); err != nil {
		return nil, err
	}

	refs, err := batchRefs(kind, ids)
	if err != nil {
		return nil, err
	}

	result := &models.BatchResult{Kind: kind, Requested: len(ids)}
	err = s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		result.Processed = 0
		for _, ref := range refs {
			err := repos.Entities.SetVerified(ctx, ref, true)
			if models.IsNotFound(err) {
				continue
			}
			if err != nil {
				return err
			}
			result.Processed++
		}

		return s.audit.Record(ctx, repos.Audit, models.RecordRef{Table: kind.Table()}, models.ActionBatchApprove, models.AuditChange{
			NewValue: models.BatchSummary(models.ActionBatchApprove, result.Processed),
		}, actor)
	})
	if err != nil {
		return nil, err
	}

	metrics.ModerationActions.WithLabelValues(string(models.ActionApprove), string(kind)).Add(float64(result.Processed))
	log.Info("batch approved", "kind", kind, "processed", result.Processed, "requested", result.Requested, "moderator", actor.Username)
	return result, nil
}

// BatchReject adds a rejected ledger row per resolvable id and appends one
// aggregate audit entry. Unknown ids are skipped.
func (s *moderationService) BatchReject(ctx context.Context, kind models.EntityKind, ids []int64, actor *models.Actor, reasonCode string) (*models.BatchResult, error) {
	if err := requireModerator(actor, "batch reject"); err != nil {
		return nil, err
	}

	refs, err := batchRefs(kind, ids)
	if err != nil {
		return nil, err
	}

	reason := models.NormalizeReason(reasonCode, models.DefaultBatchRejectReason)
	result := &models.BatchResult{Kind: kind, Requested: len(ids)}
	err = s.tx.WithTx(ctx, func(repos *repositories.Repositories) error {
		result.Processed = 0
		for _, ref := range refs {
			exists, err := repos.Entities.Exists(ctx, ref.Record())
			if err != nil {
				return err
			}
			if !exists {
				continue
			}

			if err := repos.Moderation.Create(ctx, rejection(ref.Record(), actor, reason)); err != nil {
				return err
			}
			result.Processed++
		}

		return s.audit.Record(ctx, repos.Audit, models.RecordRef{Table: kind.Table()}, models.ActionBatchReject, models.AuditChange{
			NewValue: models.BatchSummary(models.ActionBatchReject, result.Processed),
		}, actor)
	})
	if err != nil {
		return nil, err
	}

	metrics.ModerationActions.WithLabelValues(string(models.ActionReject), string(kind)).Add(float64(result.Processed))
	log.Info("batch rejected", "kind", kind, "processed", result.Processed, "requested", result.Requested, "moderator", actor.Username)
	return result, nil
}

// ListModerations returns the ledger history of any record
func (s *moderationService) ListModerations(ctx context.Context, ref models.RecordRef, actor *models.Actor) ([]models.ContentModeration, error) {
	if err := requireModerator(actor, "view moderation history"); err != nil {
		return nil, err
	}
	return s.moderation.ListByRecord(ctx, ref)
}

// GetRecordForReview loads a record with its verification state, ledger history and disputes
func (s *moderationService) GetRecordForReview(ctx context.Context, ref models.EntityRef, actor *models.Actor) (*models.ReviewRecord, error) {
	if err := requireModerator(actor, "moderate"); err != nil {
		return nil, err
	}

	record, err := s.entities.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	verified, err := s.entities.IsVerified(ctx, ref)
	if err != nil {
		return nil, err
	}

	history, err := s.moderation.ListByRecord(ctx, ref.Record())
	if err != nil {
		return nil, err
	}

	disputes, err := s.disputes.ListByRecord(ctx, ref.Record())
	if err != nil {
		return nil, err
	}

	return &models.ReviewRecord{
		Kind:        ref.Kind(),
		RecordID:    ref.RecordID(),
		Verified:    verified,
		Record:      record,
		Moderations: history,
		Disputes:    disputes,
	}, nil
}

// batchRefs converts raw ids to typed refs, dropping duplicates and non-positive ids
func batchRefs(kind models.EntityKind, ids []int64) ([]models.EntityRef, error) {
	if _, err := models.ParseEntityKind(string(kind)); err != nil {
		return nil, models.NewValidationError("Invalid record type")
	}
	if len(ids) == 0 {
		return nil, models.NewValidationError("Missing parameters")
	}

	seen := make(map[int64]bool, len(ids))
	refs := make([]models.EntityRef, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		ref, err := models.NewEntityRef(kind, id)
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func rejection(target models.RecordRef, actor *models.Actor, reason string) *models.ContentModeration {
	return &models.ContentModeration{
		TableName:   target.Table,
		RecordID:    target.ID,
		Status:      models.ModerationRejected,
		ModeratorID: actor.ID(),
		ReasonCode:  reason,
	}
}
