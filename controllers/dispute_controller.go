package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/services"
	"github.com/badapples/registry/userctx"
)

// DisputeController handles dispute filing and review
type DisputeController struct {
	services *services.Services
}

// NewDisputeController creates a new dispute controller
func NewDisputeController(services *services.Services) *DisputeController {
	return &DisputeController{services: services}
}

// File handles POST /dispute/{table}/{id}. No login is required.
func (c *DisputeController) File(w http.ResponseWriter, r *http.Request) {
	var form models.DisputeForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	form.TableName = chi.URLParam(r, "table")
	form.RecordID = id

	dispute, err := c.services.Disputes.FileDispute(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated,
		"Dispute submitted successfully! It will be reviewed by moderators and you will be notified of the resolution.",
		map[string]any{"dispute_id": dispute.ID})
}

// List handles GET /admin/disputes?status=
func (c *DisputeController) List(w http.ResponseWriter, r *http.Request) {
	filter := models.DisputeFilter{
		Status: models.DisputeStatus(r.URL.Query().Get("status")),
		Page:   queryPage(r),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		writeError(w, r, models.NewValidationError("Invalid dispute status"))
		return
	}

	disputes, err := c.services.Disputes.ListDisputes(r.Context(), filter, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"disputes": disputes,
		"limit":    filter.Limit,
		"offset":   filter.Offset,
	})
}

// Get handles GET /admin/disputes/{id}
func (c *DisputeController) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	dispute, err := c.services.Disputes.GetDispute(r.Context(), id, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dispute)
}

// Review handles POST /admin/disputes/{id}/review
func (c *DisputeController) Review(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	dispute, err := c.services.Disputes.MarkUnderReview(r.Context(), id, userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Dispute marked under review", map[string]any{"dispute": dispute})
}

// Resolve handles POST /admin/disputes/{id}/resolve
func (c *DisputeController) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var form models.ResolveForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	dispute, err := c.services.Disputes.ResolveDispute(r.Context(), id, userctx.GetActor(r.Context()), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Dispute "+string(dispute.Status), map[string]any{"dispute": dispute})
}
