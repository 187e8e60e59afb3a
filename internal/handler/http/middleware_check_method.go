// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/utils"
	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path called with a method it does not serve is answered the same
// way as an unknown path: 404 with an [models.ErrorResponse] body.
//
// Only exact route patterns are looked up, so "/swagger/*" never counts as
// registered for a concrete path below it.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			for method := range route.Handlers {
				allowed = append(allowed, method)
			}
			break
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Strs("allowed", allowed).
			Msg("method not served on route")

		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}
