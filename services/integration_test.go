package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badapples/registry/database"
	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories"
	"github.com/badapples/registry/userctx"
)

// workflowFixture wires the real services over a temporary SQLite database
type workflowFixture struct {
	db        *sql.DB
	store     *repositories.Store
	services  *Services
	ctx       context.Context
	admin     *models.Actor
	moderator *models.Actor
	officerID int64
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()

	db, err := database.InitializeDatabase(filepath.Join(t.TempDir(), "workflow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store := repositories.NewStore(db)
	ctx := userctx.SetRequestInfo(context.Background(), userctx.RequestInfo{IPAddress: "192.0.2.10", UserAgent: "integration"})

	f := &workflowFixture{
		db:       db,
		store:    store,
		services: NewServices(store, "http://localhost:8080/admin"),
		ctx:      ctx,
	}

	for _, u := range []*models.User{
		{Username: "admin", Email: "admin@example.com", PasswordHash: "x", Role: models.RoleAdmin, IsActive: true},
		{Username: "mod", Email: "mod@example.com", PasswordHash: "x", Role: models.RoleModerator, IsActive: true},
	} {
		require.NoError(t, store.Users.Create(ctx, u))
		if u.Role == models.RoleAdmin {
			f.admin = models.ActorFromUser(u)
		} else {
			f.moderator = models.ActorFromUser(u)
		}
	}

	officer, err := f.services.Content.CreateOfficer(ctx, f.admin, models.OfficerForm{BadgeNumber: "1234", FirstName: "John", LastName: "Smith"})
	require.NoError(t, err)
	f.officerID = officer.ID

	return f
}

func (f *workflowFixture) incident(t *testing.T) models.IncidentID {
	t.Helper()
	incident, err := f.services.Content.CreateIncident(f.ctx, f.moderator, models.IncidentForm{
		OfficerID:    f.officerID,
		IncidentDate: "2023-06-01",
		IncidentType: "excessive_force",
		Description:  "Bystander video",
	})
	require.NoError(t, err)
	return models.IncidentID(incident.ID)
}

func (f *workflowFixture) countAudit(t *testing.T, filter models.AuditFilter) int {
	t.Helper()
	n, err := f.store.Audit.Count(f.ctx, filter)
	require.NoError(t, err)
	return n
}

func (f *workflowFixture) verified(t *testing.T, ref models.EntityRef) bool {
	t.Helper()
	v, err := f.store.Entities.IsVerified(f.ctx, ref)
	require.NoError(t, err)
	return v
}

func TestWorkflow_ApproveAndReject(t *testing.T) {
	f := newWorkflowFixture(t)
	approved := f.incident(t)
	rejected := f.incident(t)

	assert.False(t, f.verified(t, approved), "records start unverified")
	assert.False(t, f.verified(t, rejected), "records start unverified")

	require.NoError(t, f.services.Moderation.Approve(f.ctx, approved, f.moderator))
	require.NoError(t, f.services.Moderation.Reject(f.ctx, rejected, f.moderator, ""))

	assert.True(t, f.verified(t, approved))
	assert.False(t, f.verified(t, rejected), "reject leaves the gate unverified")

	history, err := f.services.Moderation.ListModerations(f.ctx, rejected.Record(), f.moderator)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.ModerationRejected, history[0].Status)
	assert.Equal(t, "inappropriate", history[0].ReasonCode)

	history, err = f.services.Moderation.ListModerations(f.ctx, approved.Record(), f.moderator)
	require.NoError(t, err)
	assert.Empty(t, history, "approve writes no ledger row")
}

func TestWorkflow_RepeatedApproveAppendsEachTime(t *testing.T) {
	f := newWorkflowFixture(t)
	ref := f.incident(t)
	id := ref.RecordID()

	const n = 3
	for i := 0; i < n; i++ {
		require.NoError(t, f.services.Moderation.Approve(f.ctx, ref, f.moderator))
	}

	assert.True(t, f.verified(t, ref))
	assert.Equal(t, n, f.countAudit(t, models.AuditFilter{Table: models.TableIncidents, RecordID: &id, Action: models.ActionApprove}))
}

func TestWorkflow_BatchApprove(t *testing.T) {
	f := newWorkflowFixture(t)
	first := f.incident(t)
	second := f.incident(t)

	result, err := f.services.Moderation.BatchApprove(f.ctx, models.KindIncident,
		[]int64{first.RecordID(), second.RecordID(), 9998, 9999}, f.moderator)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Processed)

	assert.True(t, f.verified(t, first))
	assert.True(t, f.verified(t, second))

	entries, err := f.store.Audit.List(f.ctx, models.AuditFilter{Action: models.ActionBatchApprove})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, *entries[0].NewValue, "2")
	assert.Equal(t, int64(0), entries[0].RecordID)
}

func TestWorkflow_BatchReject(t *testing.T) {
	f := newWorkflowFixture(t)
	ref := f.incident(t)

	result, err := f.services.Moderation.BatchReject(f.ctx, models.KindIncident, []int64{ref.RecordID(), 9999}, f.moderator, "spam")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	history, err := f.store.Moderation.ListByRecord(f.ctx, ref.Record())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "spam", history[0].ReasonCode)
	assert.Equal(t, 1, f.countAudit(t, models.AuditFilter{Action: models.ActionBatchReject}))
}

func TestWorkflow_DisputeLifecycle(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.db.Exec(`INSERT INTO incidents (id, officer_id, incident_date, incident_type, description) VALUES (42, ?, ?, 'other', 'seeded')`,
		f.officerID, time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	ref := models.IncidentID(42)

	dispute, err := f.services.Disputes.FileDispute(f.ctx, models.DisputeForm{
		TableName:     "incidents",
		RecordID:      42,
		DisputeType:   "factual_error",
		Description:   "Wrong officer",
		DisputerEmail: "citizen@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DisputePending, dispute.Status)
	assert.Equal(t, "192.0.2.10", dispute.IPAddress)

	recordID := int64(42)
	entries, err := f.store.Audit.List(f.ctx, models.AuditFilter{Table: models.TableIncidents, RecordID: &recordID, Action: models.ActionDispute})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, *entries[0].NewValue, "factual_error")
	assert.Nil(t, entries[0].UserID, "disputes are filed anonymously")

	pending, err := f.store.Outbox.ListPending(f.ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "New Dispute Submitted - incidents #42", pending[0].Subject)
	assert.ElementsMatch(t, []string{"admin@example.com", "mod@example.com"}, pending[0].Recipients)

	verifiedBefore := f.verified(t, ref)
	resolved, err := f.services.Disputes.ResolveDispute(f.ctx, dispute.ID, f.moderator, models.ResolveForm{
		Status:     "resolved",
		Resolution: "verified with secondary source",
	})
	require.NoError(t, err)
	assert.Equal(t, models.DisputeResolved, resolved.Status)

	reloaded, err := f.services.Disputes.GetDispute(f.ctx, dispute.ID, f.moderator)
	require.NoError(t, err)
	assert.Equal(t, models.DisputeResolved, reloaded.Status)
	assert.Equal(t, "verified with secondary source", reloaded.Resolution)
	assert.NotNil(t, reloaded.ResolutionDate)
	assert.Equal(t, verifiedBefore, f.verified(t, ref), "resolution never touches the gate")

	pending, err = f.store.Outbox.ListPending(f.ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, []string{"citizen@example.com"}, pending[1].Recipients)
	assert.True(t, strings.Contains(pending[1].Body, "RESOLVED"))
}

func TestWorkflow_UnauthorizedLeavesNoTrace(t *testing.T) {
	f := newWorkflowFixture(t)
	ref := f.incident(t)
	before := f.countAudit(t, models.AuditFilter{})

	viewer := &models.Actor{UserID: f.moderator.UserID, Username: "demoted", Role: models.RoleUser}
	err := f.services.Moderation.Approve(f.ctx, ref, viewer)
	assert.True(t, models.IsAuthorization(err))
	err = f.services.Moderation.Reject(f.ctx, ref, nil, "spam")
	assert.True(t, models.IsAuthorization(err))

	assert.False(t, f.verified(t, ref))
	assert.Equal(t, before, f.countAudit(t, models.AuditFilter{}))
	history, err := f.store.Moderation.ListByRecord(f.ctx, ref.Record())
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestWorkflow_ConcurrentApprove(t *testing.T) {
	f := newWorkflowFixture(t)
	ref := f.incident(t)
	id := ref.RecordID()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, actor := range []*models.Actor{f.admin, f.moderator} {
		wg.Add(1)
		go func(i int, actor *models.Actor) {
			defer wg.Done()
			errs[i] = f.services.Moderation.Approve(f.ctx, ref, actor)
		}(i, actor)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.True(t, f.verified(t, ref))
	assert.Equal(t, 2, f.countAudit(t, models.AuditFilter{Table: models.TableIncidents, RecordID: &id, Action: models.ActionApprove}))
}

func TestWorkflow_CommunityReportAndDashboard(t *testing.T) {
	f := newWorkflowFixture(t)
	f.incident(t)

	report, err := f.services.Content.SubmitCommunityReport(f.ctx, models.CommunityReportForm{
		ReportType:  "witness",
		Description: "I saw the stop",
	})
	require.NoError(t, err)
	assert.False(t, report.Verified)

	pending, err := f.store.Outbox.ListPending(f.ctx, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "New Community_Report Report Submitted", pending[0].Subject)

	dashboard, err := f.services.Admin.Dashboard(f.ctx, f.moderator)
	require.NoError(t, err)
	assert.Equal(t, 1, dashboard.PendingRecords[models.KindIncident])
	assert.Equal(t, 0, dashboard.PendingRecords[models.KindEvidence])
	assert.Equal(t, 1, dashboard.PendingRecords[models.KindCommunityReport])
	assert.Equal(t, 0, dashboard.PendingDisputes)
	// officer, incident and report creations
	assert.Len(t, dashboard.RecentActivity, 3)

	page, err := f.services.Admin.AuditLog(f.ctx, f.moderator, models.AuditFilter{Action: models.ActionCreate})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, models.DefaultPageSize, page.Limit)

	_, err = f.services.Admin.Dashboard(f.ctx, nil)
	assert.True(t, models.IsAuthorization(err))
}

func TestWorkflow_ContentReferencesMustExist(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.services.Content.CreateIncident(f.ctx, f.moderator, models.IncidentForm{
		OfficerID:    9999,
		IncidentDate: "2023-06-01",
		IncidentType: "other",
		Description:  "nobody",
	})
	assert.True(t, models.IsNotFound(err))

	_, err = f.services.Content.SubmitCommunityReport(f.ctx, models.CommunityReportForm{IncidentID: 9999, Description: "x"})
	assert.True(t, models.IsNotFound(err))

	_, err = f.services.Content.CreateEvidence(f.ctx, nil, models.EvidenceForm{})
	assert.True(t, models.IsAuthorization(err))
}
