package userctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/badapples/registry/models"
)

func TestActorRoundTrip(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetActor(ctx), "no actor means anonymous")

	actor := &models.Actor{UserID: 3, Username: "mod", Role: models.RoleModerator}
	assert.Same(t, actor, GetActor(SetActor(ctx, actor)))
}

func TestRequestInfoDefaults(t *testing.T) {
	info := GetRequestInfo(context.Background())
	assert.Equal(t, UnknownIP, info.IPAddress)
	assert.Empty(t, info.UserAgent)

	ctx := SetRequestInfo(context.Background(), RequestInfo{IPAddress: "203.0.113.9", UserAgent: "curl/8"})
	info = GetRequestInfo(ctx)
	assert.Equal(t, "203.0.113.9", info.IPAddress)
	assert.Equal(t, "curl/8", info.UserAgent)
}
