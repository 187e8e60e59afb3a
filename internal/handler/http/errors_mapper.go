package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/service"
	"github.com/MKhiriev/cidr-viewer/internal/utils"
	"github.com/MKhiriev/cidr-viewer/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	context.Canceled:         http.StatusServiceUnavailable,
	context.DeadlineExceeded: http.StatusGatewayTimeout,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Client errors carry
// the error text, server errors only the status text.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	} else {
		log.Err(err).Int("status", status).Msg("request failed")
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
