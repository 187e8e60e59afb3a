package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// corsMaxAge is how long, in seconds, browsers may cache a preflight answer.
const corsMaxAge = 12 * 60 * 60

// withCORS allows every origin. Preflight requests are answered by the
// middleware itself and never reach the router.
var withCORS = cors.Handler(cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{
		http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
		http.MethodDelete, http.MethodHead, http.MethodOptions,
	},
	AllowedHeaders: []string{
		"Origin", "Content-Length", "Content-Type", "Authorization",
		"Cache-Control", "Pragma", "Expires",
	},
	MaxAge: corsMaxAge,
})
