package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/services"
	"github.com/badapples/registry/userctx"
)

// AdminController handles the admin panel, audit log and staff registration
type AdminController struct {
	services *services.Services
}

// NewAdminController creates a new admin controller
func NewAdminController(services *services.Services) *AdminController {
	return &AdminController{services: services}
}

// Dashboard handles GET /admin
func (c *AdminController) Dashboard(w http.ResponseWriter, r *http.Request) {
	data, err := c.services.Admin.Dashboard(r.Context(), userctx.GetActor(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// AuditLog handles GET /admin/audit?table_name=&record_id=&action=&user_id=
func (c *AdminController) AuditLog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.AuditFilter{
		Table:  models.Table(q.Get("table_name")),
		Action: models.AuditAction(q.Get("action")),
		Page:   queryPage(r),
	}

	var err error
	if filter.RecordID, err = queryInt64(r, "record_id"); err != nil {
		writeError(w, r, err)
		return
	}
	if filter.UserID, err = queryInt64(r, "user_id"); err != nil {
		writeError(w, r, err)
		return
	}

	page, err := c.services.Admin.AuditLog(r.Context(), userctx.GetActor(r.Context()), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// Register handles POST /admin/register
func (c *AdminController) Register(w http.ResponseWriter, r *http.Request) {
	var form models.RegisterUserForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := c.services.Users.ProvisionUser(r.Context(), userctx.GetActor(r.Context()), form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message := fmt.Sprintf("%s user %s created successfully!", titleRole(user.Role), user.Username)
	writeMessage(w, http.StatusCreated, message, map[string]any{"user": user})
}

func titleRole(role models.Role) string {
	s := string(role)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
