package userctx

import (
	"context"

	"github.com/badapples/registry/models"
)

// Context key type
type contextKey string

const actorKey contextKey = "actor"
const requestInfoKey contextKey = "request_info"

// UnknownIP is recorded when no requester address could be resolved
const UnknownIP = "unknown"

// RequestInfo holds the environmental inputs of an audited request
type RequestInfo struct {
	IPAddress string
	UserAgent string
}

// SetActor adds the resolved actor to request context
func SetActor(ctx context.Context, actor *models.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor retrieves the actor from request context. Nil means anonymous.
func GetActor(ctx context.Context) *models.Actor {
	actor, _ := ctx.Value(actorKey).(*models.Actor)
	return actor
}

// SetRequestInfo adds requester IP and user agent to request context
func SetRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey, info)
}

// GetRequestInfo retrieves requester IP and user agent from request context
func GetRequestInfo(ctx context.Context) RequestInfo {
	info, _ := ctx.Value(requestInfoKey).(RequestInfo)
	if info.IPAddress == "" {
		info.IPAddress = UnknownIP
	}
	return info
}
