package model

import (
	"strings"
)

// AnonUserID is the fallback identity for requests carrying no user header.
const AnonUserID = "anon"

// Identity is the resolved caller identity. The backend trusts the
// X-User-Id header as-is; requests without one act as the shared anonymous
// user rather than being rejected.
type Identity struct {
	UserID    string
	Anonymous bool
}

// ResolveIdentity maps an X-User-Id header value to an Identity, falling
// back to the anonymous user when the header is absent or blank.
func ResolveIdentity(headerValue string) Identity {
	id := strings.TrimSpace(headerValue)
	if id == "" {
		return Identity{UserID: AnonUserID, Anonymous: true}
	}
	return Identity{UserID: id}
}
