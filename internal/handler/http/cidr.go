package http

import (
	"net/http"

	"github.com/MKhiriev/cidr-viewer/internal/app"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/utils"
	"github.com/MKhiriev/cidr-viewer/models"
)

// analyze godoc
//
//	@Summary		Analyze CIDR ranges
//	@Description	Parses every CIDR, reports gaps and overlaps between the valid ones and sums up the address space.
//	@Tags			cidr
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.AnalysisRequest	true	"CIDR lists"
//	@Success		200		{object}	models.AnalysisResponse
//	@Failure		400		{object}	models.ErrorResponse
//	@Failure		500		{object}	models.ErrorResponse
//	@Router			/api/analyze [post]
func (h *Handler) analyze(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AnalysisRequest
	if err := utils.ReadJSON(r.Body, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidRequestFormat}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.CIDRService.Analyze(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing analysis response")
	}
}

// validate godoc
//
//	@Summary		Validate a CIDR range
//	@Description	A malformed CIDR is answered with 200 and valid set to false.
//	@Tags			cidr
//	@Accept			json
//	@Produce		json
//	@Param			request	body		models.ValidationRequest	true	"CIDR to validate"
//	@Success		200		{object}	models.CIDRRange
//	@Failure		400		{object}	models.ErrorResponse
//	@Router			/api/validate [post]
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ValidationRequest
	if err := utils.ReadJSON(r.Body, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidRequestFormat}, http.StatusBadRequest)
		return
	}

	result, err := h.services.CIDRService.Validate(r.Context(), req.CIDR)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, result, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing validation response")
	}
}

// health godoc
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	models.HealthResponse
//	@Router		/api/health [get]
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.services.CIDRService.Health(r.Context()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health response")
	}
}
