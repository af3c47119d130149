package ctxkeys

import (
	"context"

	"github.com/nikita1503agarwal/perma-backend/internal/model"
)

// contextKey is a type for context keys to avoid collisions
type contextKey string

const (
	IdentityKey contextKey = "identity"
)

func Identity(ctx context.Context) model.Identity {
	identity, ok := ctx.Value(IdentityKey).(model.Identity)
	if !ok {
		// Identity middleware not installed; act as the anonymous user.
		return model.ResolveIdentity("")
	}
	return identity
}

func WithIdentity(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, identity)
}
