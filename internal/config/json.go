package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file. Durations accept either Go duration strings ("30s")
// or integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress      string   `json:"http_address"`
		RequestTimeout   Duration `json:"request_timeout"`
		ShutdownTimeout  Duration `json:"shutdown_timeout"`
		PublicAPIBaseURL string   `json:"public_api_base_url"`
		PublicAPITimeout Duration `json:"public_api_timeout"`
	} `json:"server,omitempty"`

	Analysis struct {
		MaxCIDRs       int `json:"max_cidrs"`
		MaxComparisons int `json:"max_comparisons"`
	} `json:"analysis,omitempty"`

	Adapter struct {
		ConfigURL         string   `json:"config_url"`
		ConfigLoadTimeout Duration `json:"config_load_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`

	Logging struct {
		Level string `json:"level"`
	} `json:"logging,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{Version: jsonCfg.App.Version},
		Server: Server{
			HTTPAddress:      jsonCfg.Server.HTTPAddress,
			RequestTimeout:   time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout:  time.Duration(jsonCfg.Server.ShutdownTimeout),
			PublicAPIBaseURL: jsonCfg.Server.PublicAPIBaseURL,
			PublicAPITimeout: time.Duration(jsonCfg.Server.PublicAPITimeout),
		},
		Analysis: Analysis{
			MaxCIDRs:       jsonCfg.Analysis.MaxCIDRs,
			MaxComparisons: jsonCfg.Analysis.MaxComparisons,
		},
		Adapter: Adapter{
			ConfigURL:         jsonCfg.Adapter.ConfigURL,
			ConfigLoadTimeout: time.Duration(jsonCfg.Adapter.ConfigLoadTimeout),
		},
		Workers: Workers{HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval)},
		Logging: Logging{Level: jsonCfg.Logging.Level},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
