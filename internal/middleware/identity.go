package middleware

import (
	"net/http"

	"github.com/nikita1503agarwal/perma-backend/internal/ctxkeys"
	"github.com/nikita1503agarwal/perma-backend/internal/model"
)

// UserIDHeader carries the caller's identity. The value is trusted as-is;
// authentication beyond this header is out of scope.
const UserIDHeader = "X-User-Id"

// Identity resolves the caller's identity from the X-User-Id header and adds
// it to the request context. A missing or blank header resolves to the
// anonymous user rather than rejecting the request.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := model.ResolveIdentity(r.Header.Get(UserIDHeader))
		ctx := ctxkeys.WithIdentity(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
