package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS wraps the app with an open-origin policy. The storefront is a static
// site served from a different origin, so pre-flight requests must succeed
// (OPTIONS -> 200) for every endpoint.
func CORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
		MaxAge:         600,
	})(next)
}
