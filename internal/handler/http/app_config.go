package http

import (
	"net/http"

	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/utils"
)

// getAppConfig serves the runtime configuration document read by clients
// before their first API call.
//
//	@Summary	Runtime configuration for clients
//	@Tags		config
//	@Produce	json
//	@Success	200	{object}	models.AppConfigDocument
//	@Router		/app-config.json [get]
func (h *Handler) getAppConfig(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache")
	if _, err := utils.WriteJSON(w, h.appConfig, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing app config")
	}
}
