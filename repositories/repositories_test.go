package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badapples/registry/database"
	"github.com/badapples/registry/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func seedIncident(t *testing.T, repos *Repositories) *models.Incident {
	t.Helper()
	ctx := context.Background()

	officer := &models.Officer{BadgeNumber: "B-" + time.Now().Format("150405.000000"), FirstName: "Jane", LastName: "Doe", Status: "active"}
	require.NoError(t, repos.Entities.CreateOfficer(ctx, officer))

	incident := &models.Incident{
		OfficerID:    officer.ID,
		IncidentDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		IncidentType: "excessive_force",
		Description:  "Reported at traffic stop",
	}
	require.NoError(t, repos.Entities.CreateIncident(ctx, incident))
	return incident
}

func TestEntityRepository_Verification(t *testing.T) {
	repos := NewRepositories(setupTestDB(t))
	ctx := context.Background()
	incident := seedIncident(t, repos)
	ref := models.IncidentID(incident.ID)

	verified, err := repos.Entities.IsVerified(ctx, ref)
	require.NoError(t, err)
	assert.False(t, verified, "new records start unverified")

	require.NoError(t, repos.Entities.SetVerified(ctx, ref, true))
	verified, err = repos.Entities.IsVerified(ctx, ref)
	require.NoError(t, err)
	assert.True(t, verified)

	// Setting the same value twice is a no-op, not an error
	require.NoError(t, repos.Entities.SetVerified(ctx, ref, true))

	err = repos.Entities.SetVerified(ctx, models.IncidentID(9999), true)
	assert.True(t, models.IsNotFound(err), "expected not found, got %v", err)

	_, err = repos.Entities.IsVerified(ctx, models.EvidenceID(9999))
	assert.True(t, models.IsNotFound(err), "expected not found, got %v", err)
}

func TestEntityRepository_GetAndCount(t *testing.T) {
	repos := NewRepositories(setupTestDB(t))
	ctx := context.Background()
	incident := seedIncident(t, repos)

	report := &models.CommunityReport{IncidentID: &incident.ID, ReportType: "witness", Description: "Saw it happen"}
	require.NoError(t, repos.Entities.CreateCommunityReport(ctx, report))

	evidence := &models.Evidence{OfficerID: incident.OfficerID, EvidenceType: "photo", FilePath: "uploads/a.jpg", FileName: "a.jpg"}
	require.NoError(t, repos.Entities.CreateEvidence(ctx, evidence))

	got, err := repos.Entities.Get(ctx, models.CommunityReportID(report.ID))
	require.NoError(t, err)
	loaded, ok := got.(*models.CommunityReport)
	require.True(t, ok, "expected *models.CommunityReport, got %T", got)
	assert.Equal(t, "Saw it happen", loaded.Description)
	require.NotNil(t, loaded.IncidentID)
	assert.Equal(t, incident.ID, *loaded.IncidentID)

	got, err = repos.Entities.Get(ctx, models.EvidenceID(evidence.ID))
	require.NoError(t, err)
	assert.Nil(t, got.(*models.Evidence).IncidentID)

	for _, kind := range models.ModeratableKinds {
		count, err := repos.Entities.CountUnverified(ctx, kind)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "kind %s", kind)
	}

	require.NoError(t, repos.Entities.SetVerified(ctx, models.IncidentID(incident.ID), true))
	count, err := repos.Entities.CountUnverified(ctx, models.KindIncident)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = repos.Entities.CountUnverified(ctx, models.EntityKind("officers"))
	assert.Error(t, err)

	exists, err := repos.Entities.Exists(ctx, models.RecordRef{Table: models.TableOfficers, ID: incident.OfficerID})
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Entities.Exists(ctx, models.RecordRef{Table: models.TableIncidents, ID: 4242})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestAuditRepository_AppendOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAuditRepository(db)
	ctx := context.Background()

	field, oldValue, newValue := "verified", "false", "true"
	entry := &models.AuditLogEntry{
		TableName: models.TableIncidents,
		RecordID:  1,
		Action:    models.ActionApprove,
		FieldName: &field,
		OldValue:  &oldValue,
		NewValue:  &newValue,
		IPAddress: "10.0.0.1",
		UserAgent: "test",
	}
	require.NoError(t, repo.Create(ctx, entry))
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	_, err := db.Exec(`UPDATE audit_logs SET new_value = 'false' WHERE id = ?`, entry.ID)
	assert.Error(t, err, "audit rows must reject updates")

	_, err = db.Exec(`DELETE FROM audit_logs WHERE id = ?`, entry.ID)
	assert.Error(t, err, "audit rows must reject deletes")

	entries, err := repo.List(ctx, models.AuditFilter{})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "true", *entries[0].NewValue)
	assert.Nil(t, entries[0].UserID)
}

func TestAuditRepository_Filter(t *testing.T) {
	repo := NewAuditRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i, action := range []models.AuditAction{models.ActionCreate, models.ActionApprove, models.ActionReject} {
		require.NoError(t, repo.Create(ctx, &models.AuditLogEntry{
			TableName: models.TableIncidents,
			RecordID:  7,
			Action:    action,
			IPAddress: "unknown",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.AuditLogEntry{
		TableName: models.TableEvidence,
		RecordID:  3,
		Action:    models.ActionApprove,
		IPAddress: "unknown",
		Timestamp: base,
	}))

	recordID := int64(7)
	entries, err := repo.List(ctx, models.AuditFilter{Table: models.TableIncidents, RecordID: &recordID})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, models.ActionReject, entries[0].Action, "newest first")

	count, err := repo.Count(ctx, models.AuditFilter{Action: models.ActionApprove})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	entries, err = repo.List(ctx, models.AuditFilter{Page: models.Page{Limit: 2, Offset: 3}})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_WithTx(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)
	ctx := context.Background()
	incident := seedIncident(t, store.Repositories)
	ref := models.IncidentID(incident.ID)

	errBoom := errors.New("boom")
	err := store.WithTx(ctx, func(repos *Repositories) error {
		if err := repos.Entities.SetVerified(ctx, ref, true); err != nil {
			return err
		}
		if err := repos.Audit.Create(ctx, &models.AuditLogEntry{
			TableName: models.TableIncidents, RecordID: incident.ID, Action: models.ActionApprove, IPAddress: "unknown",
		}); err != nil {
			return err
		}
		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	verified, err := store.Entities.IsVerified(ctx, ref)
	require.NoError(t, err)
	assert.False(t, verified, "rolled back flag")
	count, err := store.Audit.Count(ctx, models.AuditFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, count, "rolled back audit entry")

	err = store.WithTx(ctx, func(repos *Repositories) error {
		return repos.Entities.SetVerified(ctx, ref, true)
	})
	require.NoError(t, err)

	verified, err = store.Entities.IsVerified(ctx, ref)
	require.NoError(t, err)
	assert.True(t, verified)

	assert.Panics(t, func() {
		_ = store.WithTx(ctx, func(repos *Repositories) error {
			if err := repos.Entities.SetVerified(ctx, ref, false); err != nil {
				return err
			}
			panic("unexpected")
		})
	})
	verified, err = store.Entities.IsVerified(ctx, ref)
	require.NoError(t, err)
	assert.True(t, verified, "panic rolls back")

	assert.NoError(t, store.Ping(ctx))
}

func TestModerationRepository(t *testing.T) {
	repos := NewRepositories(setupTestDB(t))
	ctx := context.Background()

	moderator := &models.User{Username: "mod", Email: "mod@example.com", PasswordHash: "x", Role: models.RoleModerator, IsActive: true}
	require.NoError(t, repos.Users.Create(ctx, moderator))

	ref := models.RecordRef{Table: models.TableEvidence, ID: 5}
	require.NoError(t, repos.Moderation.Create(ctx, &models.ContentModeration{
		TableName: ref.Table, RecordID: ref.ID, Status: models.ModerationApproved, ModeratorID: &moderator.ID,
	}))
	require.NoError(t, repos.Moderation.Create(ctx, &models.ContentModeration{
		TableName: ref.Table, RecordID: ref.ID, Status: models.ModerationRejected, ModeratorID: &moderator.ID,
		ReasonCode: models.DefaultRejectReason,
	}))

	history, err := repos.Moderation.ListByRecord(ctx, ref)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.ModerationApproved, history[0].Status)
	assert.Equal(t, models.ModerationRejected, history[1].Status)
	assert.Equal(t, "inappropriate", history[1].ReasonCode)
	require.NotNil(t, history[1].ModeratorID)
	assert.Equal(t, moderator.ID, *history[1].ModeratorID)

	history, err = repos.Moderation.ListByRecord(ctx, models.RecordRef{Table: models.TableIncidents, ID: 5})
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestDisputeRepository(t *testing.T) {
	repos := NewRepositories(setupTestDB(t))
	ctx := context.Background()

	dispute := &models.Dispute{
		TableName:   models.TableIncidents,
		RecordID:    3,
		DisputeType: models.DisputeFactualError,
		Description: "Wrong date",
		IPAddress:   "10.0.0.2",
	}
	require.NoError(t, repos.Disputes.Create(ctx, dispute))
	assert.Equal(t, models.DisputePending, dispute.Status)

	second := &models.Dispute{TableName: models.TableOfficers, RecordID: 1, DisputeType: models.DisputeOther, Description: "Not me"}
	require.NoError(t, repos.Disputes.Create(ctx, second))

	got, err := repos.Disputes.GetByID(ctx, dispute.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wrong date", got.Description)
	assert.Equal(t, models.RecordRef{Table: models.TableIncidents, ID: 3}, got.Target())
	assert.Nil(t, got.ResolutionDate)

	_, err = repos.Disputes.GetByID(ctx, 9999)
	assert.True(t, models.IsNotFound(err))

	now := time.Now().UTC()
	got.Status = models.DisputeResolved
	got.Resolution = "Corrected"
	got.ResolutionDate = &now
	require.NoError(t, repos.Disputes.Update(ctx, got))

	reloaded, err := repos.Disputes.GetByID(ctx, dispute.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DisputeResolved, reloaded.Status)
	assert.Equal(t, "Corrected", reloaded.Resolution)
	assert.NotNil(t, reloaded.ResolutionDate)

	pending, err := repos.Disputes.List(ctx, models.DisputeFilter{Status: models.DisputePending})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)

	all, err := repos.Disputes.List(ctx, models.DisputeFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID, "newest first")

	forRecord, err := repos.Disputes.ListByRecord(ctx, dispute.Target())
	require.NoError(t, err)
	assert.Len(t, forRecord, 1)

	count, err := repos.Disputes.CountByStatus(ctx, models.DisputePending)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	err = repos.Disputes.Update(ctx, &models.Dispute{ID: 9999, Status: models.DisputeDismissed})
	assert.True(t, models.IsNotFound(err))
}

func TestUserRepository(t *testing.T) {
	repos := NewRepositories(setupTestDB(t))
	ctx := context.Background()

	users := []*models.User{
		{Username: "admin", Email: "Admin@Example.com", PasswordHash: "h", Role: models.RoleAdmin, IsActive: true},
		{Username: "mod", Email: "mod@example.com", PasswordHash: "h", Role: models.RoleModerator, IsActive: true},
		{Username: "retired", Email: "old@example.com", PasswordHash: "h", Role: models.RoleModerator, IsActive: false},
		{Username: "viewer", Email: "viewer@example.com", PasswordHash: "h", Role: models.RoleUser, IsActive: true},
	}
	for _, u := range users {
		require.NoError(t, repos.Users.Create(ctx, u))
	}

	got, err := repos.Users.GetByUsername(ctx, "mod")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, models.RoleModerator, got.Role)

	got, err = repos.Users.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.Username)

	got, err = repos.Users.GetByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = repos.Users.GetByID(ctx, 9999)
	assert.True(t, models.IsNotFound(err))

	emails, err := repos.Users.ListStaffEmails(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Admin@Example.com", "mod@example.com"}, emails)

	count, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	err = repos.Users.Create(ctx, &models.User{Username: "mod", Email: "dup@example.com", PasswordHash: "h"})
	assert.Error(t, err, "usernames are unique")
}

func TestOutboxRepository(t *testing.T) {
	repo := NewOutboxRepository(setupTestDB(t))
	ctx := context.Background()

	first, err := repo.Enqueue(ctx, models.Notification{Subject: "one", Recipients: []string{"a@example.com", "b@example.com"}, Body: "body"})
	require.NoError(t, err)
	second, err := repo.Enqueue(ctx, models.Notification{Subject: "two", Recipients: []string{"c@example.com"}, Body: "body"})
	require.NoError(t, err)

	pending, err := repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, pending[0].Recipients)
	assert.Equal(t, models.OutboxPending, pending[0].Status)

	require.NoError(t, repo.MarkAttempt(ctx, first.ID, "connection refused", false))
	require.NoError(t, repo.MarkDelivered(ctx, second.ID, models.OutboxSent))

	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)
	assert.Equal(t, 1, pending[0].Attempts)
	assert.Equal(t, "connection refused", pending[0].LastError)

	require.NoError(t, repo.MarkAttempt(ctx, first.ID, "connection refused", true))
	pending, err = repo.ListPending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}
