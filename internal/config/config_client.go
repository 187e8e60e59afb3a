package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientAdapter holds the settings the client uses to locate the API.
type ClientAdapter struct {
	// ConfigURL locates the runtime configuration document (URL or file).
	ConfigURL string
	// ConfigLoadTimeout bounds fetching the runtime configuration document.
	ConfigLoadTimeout time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HealthInterval defines how often the health monitor polls the API.
	HealthInterval time.Duration
}

// ClientLogging contains the client log settings.
type ClientLogging struct {
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the runtime config location and its load timeout.
	Adapter ClientAdapter
	// Workers contains background job settings.
	Workers ClientWorkers
	// Logging contains the log level.
	Logging ClientLogging
	// JSONFilePath optionally names a JSON config file, as -config does for
	// the server.
	JSONFilePath string
}

// GetClientConfig builds and validates the client configuration.
//
// overrides carries the values given on the command line; its non-zero
// fields win over the environment, the JSON file and the defaults.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withConfig(&StructuredConfig{JSONFilePath: overrides.JSONFilePath}).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := overrides
	if err = mergo.Merge(&clientCfg, cfg.clientView()); err != nil {
		return nil, fmt.Errorf("error merging client overrides: %w", err)
	}

	return &clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) clientView() ClientConfig {
	return ClientConfig{
		Adapter: ClientAdapter{
			ConfigURL:         cfg.Adapter.ConfigURL,
			ConfigLoadTimeout: cfg.Adapter.ConfigLoadTimeout,
		},
		Workers:      ClientWorkers{HealthInterval: cfg.Workers.HealthInterval},
		Logging:      ClientLogging{Level: cfg.Logging.Level},
		JSONFilePath: cfg.JSONFilePath,
	}
}
