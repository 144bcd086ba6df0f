package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS restricts cross-origin browser access to the configured origins.
// An origin of "*" allows any origin.
func (m *Middleware) CORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   normalizeOrigins(origins),
		AllowedMethods:   []string{http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

// normalizeOrigins drops trailing slashes, browsers never send them.
func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		for len(o) > 1 && o[len(o)-1] == '/' {
			o = o[:len(o)-1]
		}
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
