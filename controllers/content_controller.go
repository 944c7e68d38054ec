package controllers

import (
	"net/http"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/services"
	"github.com/badapples/registry/userctx"
)

// ContentController handles record intake
type ContentController struct {
	services *services.Services
}

// NewContentController creates a new content controller
func NewContentController(services *services.Services) *ContentController {
	return &ContentController{services: services}
}

// CreateOfficer handles POST /officers
func (c *ContentController) CreateOfficer(w http.ResponseWriter, r *http.Request) {
	var form models.OfficerForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	officer, err := c.services.Content.CreateOfficer(r.Context(), userctx.GetActor(r.Context()), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Officer added successfully!", map[string]any{"officer": officer})
}

// CreateIncident handles POST /incidents
func (c *ContentController) CreateIncident(w http.ResponseWriter, r *http.Request) {
	var form models.IncidentForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	incident, err := c.services.Content.CreateIncident(r.Context(), userctx.GetActor(r.Context()), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Incident added successfully!", map[string]any{"incident": incident})
}

// CreateEvidence handles POST /evidence. Only metadata is stored.
func (c *ContentController) CreateEvidence(w http.ResponseWriter, r *http.Request) {
	var form models.EvidenceForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	evidence, err := c.services.Content.CreateEvidence(r.Context(), userctx.GetActor(r.Context()), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated, "Evidence uploaded successfully!", map[string]any{"evidence": evidence})
}

// SubmitCommunityReport handles POST /community_report. No login is required.
func (c *ContentController) SubmitCommunityReport(w http.ResponseWriter, r *http.Request) {
	var form models.CommunityReportForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	report, err := c.services.Content.SubmitCommunityReport(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusCreated,
		"Community report submitted successfully! Administrators have been notified.",
		map[string]any{"report_id": report.ID})
}
