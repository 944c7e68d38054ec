package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/badapples/registry/authenticator"
	"github.com/badapples/registry/models"
	"github.com/badapples/registry/services"
)

var log = slog.Default().With("system", "controllers")

const maxBodyBytes = 1 << 20

// Controllers holds all controller instances
type Controllers struct {
	Auth       *AuthController
	Moderation *ModerationController
	Disputes   *DisputeController
	Admin      *AdminController
	Content    *ContentController
}

// NewControllers creates and initializes all controller instances. sso may
// be nil when single sign-on is not configured.
func NewControllers(services *services.Services, sso authenticator.Provider) *Controllers {
	return &Controllers{
		Auth:       NewAuthController(services, sso),
		Moderation: NewModerationController(services),
		Disputes:   NewDisputeController(services),
		Admin:      NewAdminController(services),
		Content:    NewContentController(services),
	}
}

// writeJSON writes payload with the given status
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("failed to encode response", "err", err)
	}
}

// writeMessage writes a success envelope carrying a user-facing message
func writeMessage(w http.ResponseWriter, status int, message string, extra map[string]any) {
	body := map[string]any{"success": status < 400, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	writeJSON(w, status, body)
}

// writeError maps domain errors onto HTTP statuses. Unexpected errors are
// logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validation *models.ValidationError
		notFound   *models.NotFoundError
		authz      *models.AuthorizationError
	)

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": strings.Join(validation.Messages, ", "),
			"errors":  validation.Messages,
		})
	case errors.As(err, &authz):
		writeMessage(w, http.StatusForbidden, "Access denied", nil)
	case errors.As(err, &notFound):
		writeMessage(w, http.StatusNotFound, notFound.Error(), nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials or insufficient privileges.", nil)
	default:
		log.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
		writeMessage(w, http.StatusInternalServerError, "Something went wrong", nil)
	}
}

// decodeJSON reads a JSON request body into dst. An empty body leaves dst unchanged.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return models.NewValidationError("Request body is not valid JSON")
	}
	return nil
}

// pathID parses a positive integer URL parameter
func pathID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, models.NewValidationError("Invalid " + param)
	}
	return id, nil
}

// entityRef resolves the {kind}/{id} route parameters of a moderatable record
func entityRef(r *http.Request) (models.EntityRef, error) {
	kind, err := models.ParseEntityKind(chi.URLParam(r, "kind"))
	if err != nil {
		return nil, models.NewValidationError("Invalid record type")
	}
	id, err := pathID(r, "id")
	if err != nil {
		return nil, err
	}
	ref, err := models.NewEntityRef(kind, id)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	return ref, nil
}

// queryPage reads limit and offset query parameters
func queryPage(r *http.Request) models.Page {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	return models.Page{Limit: limit, Offset: offset}.Normalize()
}

// queryInt64 parses an optional integer query parameter
func queryInt64(r *http.Request, key string) (*int64, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, models.NewValidationError("Invalid " + key)
	}
	return &n, nil
}
