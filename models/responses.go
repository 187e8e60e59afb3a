package models

// AnalysisResponse is returned by POST /api/analyze. Every slice is encoded
// as an array, never as null.
type AnalysisResponse struct {
	ValidCIDRs   []CIDRRange `json:"valid_cidrs"`
	InvalidCIDRs []CIDRRange `json:"invalid_cidrs"`
	Gaps         []Gap       `json:"gaps"`
	Overlaps     []Overlap   `json:"overlaps"`
	Summary      Summary     `json:"summary"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	// Status is "healthy" whenever the server is able to answer.
	Status string `json:"status"`

	// Timestamp is the server time in RFC 3339 format, UTC.
	Timestamp string `json:"timestamp"`
}

// StatusHealthy is the only status the server reports about itself.
const StatusHealthy = "healthy"

// ErrorResponse is the body written for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AppConfigDocument is the runtime configuration document published at
// /app-config.json and consumed by clients on start-up.
//
// APITimeout is expressed in milliseconds.
type AppConfigDocument struct {
	APIBaseURL string `json:"apiBaseUrl"`
	APITimeout int64  `json:"apiTimeout"`
}
