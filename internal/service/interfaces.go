package service

import (
	"context"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/adapter"
	"github.com/MKhiriev/cidr-viewer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// CIDRService runs the server side of the CIDR analysis API.
type CIDRService interface {
	// Analyze parses every CIDR of req, splits them into valid and invalid
	// ranges and computes gaps, overlaps and the summary over the valid ones.
	Analyze(ctx context.Context, req models.AnalysisRequest) (models.AnalysisResponse, error)

	// Validate parses a single CIDR. A malformed CIDR is not an error: it is
	// returned with Valid set to false.
	Validate(ctx context.Context, cidr string) (models.CIDRRange, error)

	// Health reports the service status with the current UTC time.
	Health(ctx context.Context) models.HealthResponse
}

// CIDRServiceWrapper defines middleware composition for CIDRService.
// Implementations wrap an existing CIDRService to add behavior such as
// logging or validating.
type CIDRServiceWrapper interface {
	Wrap(CIDRService) CIDRService // returns a decorated CIDRService applying additional behavior
}

// AppInfoService exposes build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// HealthStatus is one observation of the API health made by a HealthMonitor.
// Response is the body of the health endpoint, as sent by the server.
type HealthStatus struct {
	Healthy   bool
	Response  adapter.Payload
	Err       error
	CheckedAt time.Time
}

// HealthMonitor polls the API health in the background.
type HealthMonitor interface {
	// Start checks the API immediately and then every interval, calling
	// onChange with the first observation and with every later one whose
	// Healthy flag differs from the previous. A running monitor is stopped
	// first. If interval is zero or negative it defaults to
	// DefaultHealthInterval.
	Start(ctx context.Context, interval time.Duration, onChange func(HealthStatus))

	// Stop cancels the background goroutine and blocks until it has exited.
	// Safe to call when the monitor is not running.
	Stop()
}
