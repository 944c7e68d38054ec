package services

import (
	"log/slog"

	"github.com/badapples/registry/repositories"
)

var log = slog.Default().With("system", "services")

// Services holds all service instances
type Services struct {
	Moderation ModerationService
	Disputes   DisputeService
	Users      UserService
	Content    ContentService
	Admin      AdminService
}

// NewServices creates and initializes all service instances. adminURL is
// linked from staff notifications.
func NewServices(store *repositories.Store, adminURL string) *Services {
	audit := NewAuditRecorder()

	return &Services{
		Moderation: NewModerationService(store, store.Entities, store.Moderation, store.Disputes, audit),
		Disputes:   NewDisputeService(store, store.Disputes, audit, adminURL),
		Users:      NewUserService(store, store.Users, audit),
		Content:    NewContentService(store, audit, adminURL),
		Admin:      NewAdminService(store.Entities, store.Disputes, store.Audit),
	}
}
