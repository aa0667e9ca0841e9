package api

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"
)

// Context keys for middleware
type contextKey string

const (
	// OwnerKey holds the authenticated caller's username.
	OwnerKey contextKey = "owner"
	// RequestIDKey holds the request correlation ID.
	RequestIDKey contextKey = "request_id"
)

// usernameClaim is the JWT claim the caller identity is read from.
const usernameClaim = "cognito:username"

// RequestID attaches a correlation ID to each request, reusing the caller's
// X-Request-ID header when present.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerIdentity resolves the authenticated caller from the verified JWT and
// places the username in the request context. It must run after
// jwtauth.Verifier. The username from the token is the only source of the
// owner identity; body fields never override it.
func CallerIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			writeStatus(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		username, _ := claims[usernameClaim].(string)
		if username == "" {
			writeStatus(w, r, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), OwnerKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OwnerFromContext returns the authenticated caller's username.
func OwnerFromContext(ctx context.Context) (string, bool) {
	owner, ok := ctx.Value(OwnerKey).(string)
	return owner, ok && owner != ""
}
