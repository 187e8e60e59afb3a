package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/appconfig"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/utils"
	"github.com/MKhiriev/cidr-viewer/models"
)

const (
	analyzePath  = "/analyze"
	validatePath = "/validate"
	healthPath   = "/health"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	configs ConfigProvider

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The API location and default timeout are read from
// configs before every call, so a cleared and reloaded configuration takes
// effect on the next request.
func NewHTTPServerAdapter(configs ConfigProvider, log *logger.Logger) ServerAdapter {
	if log == nil {
		log = logger.Nop()
	}

	return &httpServerAdapter{
		client:  utils.NewHTTPClient(),
		configs: configs,
		logger:  log,
	}
}

// AnalyzeCIDRs implements [ServerAdapter].
func (h *httpServerAdapter) AnalyzeCIDRs(ctx context.Context, body any, opts ...CallOption) (Payload, error) {
	result, err := h.do(ctx, http.MethodPost, analyzePath, body, opts)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	return result, nil
}

// ValidateCIDR implements [ServerAdapter].
func (h *httpServerAdapter) ValidateCIDR(ctx context.Context, cidr string, opts ...CallOption) (Payload, error) {
	result, err := h.do(ctx, http.MethodPost, validatePath, models.ValidationRequest{CIDR: cidr}, opts)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return result, nil
}

// HealthCheck implements [ServerAdapter].
func (h *httpServerAdapter) HealthCheck(ctx context.Context, opts ...CallOption) (Payload, error) {
	result, err := h.do(ctx, http.MethodGet, healthPath, nil, opts)
	if err != nil {
		return nil, fmt.Errorf("health check: %w", err)
	}

	return result, nil
}

// BaseURL implements [ServerAdapter].
func (h *httpServerAdapter) BaseURL(ctx context.Context) string {
	return h.configs.Get(ctx).APIBaseURL
}

// CurrentConfig implements [ServerAdapter].
func (h *httpServerAdapter) CurrentConfig(ctx context.Context) *appconfig.AppConfig {
	return h.configs.Get(ctx)
}

// do sends one request inside its own cancellation scope and returns a 2xx
// body as is.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body any, opts []CallOption) (Payload, error) {
	cfg := h.configs.Get(ctx)

	ctx, cancel := newCallOptions(opts).scope(ctx, cfg.APITimeout)
	defer cancel()

	req := h.client.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	url := cfg.APIBaseURL + path
	start := time.Now()

	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, h.requestError(ctx, err)
	}

	h.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode()).
		Dur("elapsed", time.Since(start)).
		Msg("api call finished")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return newPayload(resp.Body())
}

// requestError tells a cancelled call apart from a transport failure.
func (h *httpServerAdapter) requestError(ctx context.Context, err error) error {
	if ctx.Err() == nil {
		return fmt.Errorf("request: %w", err)
	}

	cause := context.Cause(ctx)
	if errors.Is(cause, ErrRequestTimeout) {
		return fmt.Errorf("%w: %w", ErrRequestAborted, ErrRequestTimeout)
	}

	return fmt.Errorf("%w: %w", ErrRequestAborted, cause)
}
