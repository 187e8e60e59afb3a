package config

import "time"

// Built-in defaults, applied to every field no other source has set.
const (
	DefaultHTTPAddress       = ":8080"
	DefaultRequestTimeout    = 30 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultPublicAPIBaseURL  = "http://localhost:8080/api"
	DefaultPublicAPITimeout  = 30 * time.Second
	DefaultMaxCIDRs          = 10000
	DefaultMaxComparisons    = 1000
	DefaultConfigURL         = "http://localhost:8080/app-config.json"
	DefaultConfigLoadTimeout = 10 * time.Second
	DefaultHealthInterval    = 5 * time.Second
	DefaultLogLevel          = "info"
	DefaultVersion           = "N/A"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: DefaultVersion},
		Server: Server{
			HTTPAddress:      DefaultHTTPAddress,
			RequestTimeout:   DefaultRequestTimeout,
			ShutdownTimeout:  DefaultShutdownTimeout,
			PublicAPIBaseURL: DefaultPublicAPIBaseURL,
			PublicAPITimeout: DefaultPublicAPITimeout,
		},
		Analysis: Analysis{
			MaxCIDRs:       DefaultMaxCIDRs,
			MaxComparisons: DefaultMaxComparisons,
		},
		Adapter: Adapter{
			ConfigURL:         DefaultConfigURL,
			ConfigLoadTimeout: DefaultConfigLoadTimeout,
		},
		Workers: Workers{HealthInterval: DefaultHealthInterval},
		Logging: Logging{Level: DefaultLogLevel},
	}
}
