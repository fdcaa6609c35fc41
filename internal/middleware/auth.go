package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"aviation-institute-api/internal/session"
)

type ctxKey string

const usernameKey ctxKey = "admin"

// RequireSession gates privileged routes on a valid server-side session. On
// rejection the handler never runs, so no store access can happen.
func RequireSession(codec *session.Codec, sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := codec.Token(r)
			if !ok {
				unauthorized(w)
				return
			}
			s, err := sessions.Get(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}
			ctx := context.WithValue(r.Context(), usernameKey, s.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionUsername returns the authenticated admin username, or "" outside a
// gated route.
func SessionUsername(ctx context.Context) string {
	if v, ok := ctx.Value(usernameKey).(string); ok {
		return v
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"message": "Unauthorized"})
}
