package http

import (
	"net/http"

	"github.com/MKhiriev/cidr-viewer/internal/logger"
)

// getServerVersion godoc
//
//	@Summary	Server version
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"build version"
//	@Router		/api/version [get]
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte(serverVersion)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing server version")
	}
}
