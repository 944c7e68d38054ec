package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"net/http"

	"gitea.com/go-chi/session"

	"github.com/badapples/registry/authenticator"
	"github.com/badapples/registry/middleware"
	"github.com/badapples/registry/models"
	"github.com/badapples/registry/services"
)

const stateKey = "oidc_state"

// AuthController handles staff login and logout
type AuthController struct {
	services *services.Services
	sso      authenticator.Provider
}

// NewAuthController creates a new auth controller
func NewAuthController(services *services.Services, sso authenticator.Provider) *AuthController {
	return &AuthController{services: services, sso: sso}
}

// Login handles POST /admin/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var form models.LoginForm
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := c.services.Users.Authenticate(r.Context(), form)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.startSession(r, user); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Login successful!", map[string]any{"user": user})
}

// Logout handles POST /admin/logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	sess := session.GetSession(r)
	if err := sess.Delete(middleware.SessionUserKey); err != nil {
		writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "Logged out successfully.", nil)
}

// SSOLogin handles GET /login by redirecting to the identity provider
func (c *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if c.sso == nil {
		writeMessage(w, http.StatusNotFound, "Single sign-on is not configured", nil)
		return
	}

	state, err := generateRandomState()
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Save the state in the session to validate in callback
	if err := session.GetSession(r).Set(stateKey, state); err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, c.sso.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles GET /callback from the identity provider. Only existing
// staff accounts matched by email may sign in.
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if c.sso == nil {
		writeMessage(w, http.StatusNotFound, "Single sign-on is not configured", nil)
		return
	}

	sess := session.GetSession(r)
	stored, _ := sess.Get(stateKey).(string)
	if stored == "" || r.URL.Query().Get("state") != stored {
		writeMessage(w, http.StatusBadRequest, "Invalid state parameter", nil)
		return
	}
	sess.Delete(stateKey)

	token, err := c.sso.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		log.Warn("sso code exchange failed", "err", err)
		writeMessage(w, http.StatusUnauthorized, "Failed to exchange authorization code", nil)
		return
	}

	claims, err := c.sso.GetClaims(r.Context(), token)
	if err != nil {
		log.Warn("sso token verification failed", "err", err)
		writeMessage(w, http.StatusUnauthorized, "Failed to verify identity token", nil)
		return
	}

	email, err := claims.Email()
	if err != nil {
		writeError(w, r, services.ErrInvalidCredentials)
		return
	}

	user, err := c.services.Users.AuthenticateByEmail(r.Context(), email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.startSession(r, user); err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// startSession stores only the user id; the actor is resolved per request
func (c *AuthController) startSession(r *http.Request, user *models.User) error {
	sess := session.GetSession(r)
	if err := sess.Set(middleware.SessionUserKey, user.ID); err != nil {
		return err
	}
	log.Info("staff login", "user_id", user.ID, "username", user.Username)
	return nil
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
