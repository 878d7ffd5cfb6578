package middleware

import (
	"crypto/hmac"
	"encoding/json"
	"net/http"
)

// APIKey guards a route with the shared secret the game server presents in
// X-Api-Key. The compare is constant-time; a mismatch never reaches the
// wrapped handler.
func APIKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("X-Api-Key")
			if presented == "" || !hmac.Equal([]byte(presented), []byte(secret)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
