package controllers

import (
	"fmt"
	"net/http"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/services"
	"github.com/badapples/registry/userctx"
)

// ModerationController handles approve and reject requests
type ModerationController struct {
	services *services.Services
}

// NewModerationController creates a new moderation controller
func NewModerationController(services *services.Services) *ModerationController {
	return &ModerationController{services: services}
}

// Review handles GET /admin/moderate/{kind}/{id}
func (c *ModerationController) Review(w http.ResponseWriter, r *http.Request) {
	ref, err := entityRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	review, err := c.services.Moderation.GetRecordForReview(r.Context(), ref, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

// Approve handles POST /admin/approve/{kind}/{id}
func (c *ModerationController) Approve(w http.ResponseWriter, r *http.Request) {
	ref, err := entityRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.services.Moderation.Approve(r.Context(), ref, userctx.GetActor(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Record approved successfully!", nil)
}

// Reject handles POST /admin/reject/{kind}/{id}?reason=
func (c *ModerationController) Reject(w http.ResponseWriter, r *http.Request) {
	ref, err := entityRef(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reason := r.URL.Query().Get("reason")
	if err := c.services.Moderation.Reject(r.Context(), ref, userctx.GetActor(r.Context()), reason); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Record rejected successfully!", nil)
}

// BatchApprove handles POST /admin/batch_approve
func (c *ModerationController) BatchApprove(w http.ResponseWriter, r *http.Request) {
	form, ok := c.batchForm(w, r)
	if !ok {
		return
	}

	result, err := c.services.Moderation.BatchApprove(r.Context(), form.Kind(), form.RecordIDs, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Approved %d records", result.Processed), map[string]any{
		"approved": result.Processed,
	})
}

// BatchReject handles POST /admin/batch_reject
func (c *ModerationController) BatchReject(w http.ResponseWriter, r *http.Request) {
	form, ok := c.batchForm(w, r)
	if !ok {
		return
	}

	result, err := c.services.Moderation.BatchReject(r.Context(), form.Kind(), form.RecordIDs, userctx.GetActor(r.Context()), form.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, fmt.Sprintf("Rejected %d records", result.Processed), map[string]any{
		"rejected": result.Processed,
	})
}

func (c *ModerationController) batchForm(w http.ResponseWriter, r *http.Request) (*models.BatchForm, bool) {
	var form models.BatchForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return nil, false
	}
	if errs := form.Validate(); len(errs) > 0 {
		writeError(w, r, models.NewValidationError(errs...))
		return nil, false
	}
	return &form, true
}
