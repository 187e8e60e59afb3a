package appconfig

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultAPITimeout, cfg.APITimeout)
	assert.Equal(t, DefaultAPIBaseURL, cfg.Values[KeyAPIBaseURL])
	assert.Equal(t, int64(30000), cfg.Values[KeyAPITimeout])

	// every call returns an independent copy
	cfg.Values["mutated"] = true
	_, ok := Defaults().Get("mutated")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name         string
		doc          map[string]any
		wantBaseURL  string
		wantTimeout  time.Duration
		wantWarnings int
	}{
		{
			name:        "empty document keeps defaults",
			doc:         map[string]any{},
			wantBaseURL: DefaultAPIBaseURL,
			wantTimeout: DefaultAPITimeout,
		},
		{
			name:        "timeout only",
			doc:         map[string]any{"apiTimeout": float64(5000)},
			wantBaseURL: DefaultAPIBaseURL,
			wantTimeout: 5 * time.Second,
		},
		{
			name:        "base url only, trailing slash trimmed",
			doc:         map[string]any{"apiBaseUrl": "https://cidr.example.com/api/"},
			wantBaseURL: "https://cidr.example.com/api",
			wantTimeout: DefaultAPITimeout,
		},
		{
			name:        "duration string",
			doc:         map[string]any{"apiTimeout": "45s"},
			wantBaseURL: DefaultAPIBaseURL,
			wantTimeout: 45 * time.Second,
		},
		{
			name:         "wrong timeout type",
			doc:          map[string]any{"apiTimeout": true},
			wantBaseURL:  DefaultAPIBaseURL,
			wantTimeout:  DefaultAPITimeout,
			wantWarnings: 1,
		},
		{
			name:         "negative timeout",
			doc:          map[string]any{"apiTimeout": float64(-1)},
			wantBaseURL:  DefaultAPIBaseURL,
			wantTimeout:  DefaultAPITimeout,
			wantWarnings: 1,
		},
		{
			name:         "empty base url",
			doc:          map[string]any{"apiBaseUrl": " / "},
			wantBaseURL:  DefaultAPIBaseURL,
			wantTimeout:  DefaultAPITimeout,
			wantWarnings: 1,
		},
		{
			name:         "wrong base url type",
			doc:          map[string]any{"apiBaseUrl": float64(8080), "apiTimeout": float64(100)},
			wantBaseURL:  DefaultAPIBaseURL,
			wantTimeout:  100 * time.Millisecond,
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, warnings := merge(tt.doc)

			require.NotNil(t, cfg)
			assert.Len(t, warnings, tt.wantWarnings)
			assert.Equal(t, tt.wantBaseURL, cfg.APIBaseURL)
			assert.Equal(t, tt.wantTimeout, cfg.APITimeout)
		})
	}
}

func TestMerge_PassesUnknownKeysThrough(t *testing.T) {
	cfg, warnings := merge(map[string]any{
		"apiTimeout": float64(1000),
		"theme":      "dark",
		"features":   map[string]any{"export": true},
	})

	assert.Empty(t, warnings)
	assert.Equal(t, "dark", cfg.Values["theme"])
	assert.Equal(t, map[string]any{"export": true}, cfg.Values["features"])
	assert.Equal(t, int64(1000), cfg.Values[KeyAPITimeout], "fetched keys win")
	assert.Equal(t, DefaultAPIBaseURL, cfg.Values[KeyAPIBaseURL], "defaults fill the rest")
}

func TestMerge_ValuesMirrorTypedFields(t *testing.T) {
	tests := []struct {
		name        string
		doc         map[string]any
		wantBaseURL string
		wantTimeout int64
	}{
		{
			name:        "trailing slash",
			doc:         map[string]any{"apiBaseUrl": "https://cidr.example.com/api/"},
			wantBaseURL: "https://cidr.example.com/api",
			wantTimeout: 30000,
		},
		{
			name:        "duration string",
			doc:         map[string]any{"apiTimeout": "1.5s"},
			wantBaseURL: DefaultAPIBaseURL,
			wantTimeout: 1500,
		},
		{
			name:        "wrong types fall back",
			doc:         map[string]any{"apiBaseUrl": true, "apiTimeout": "soon"},
			wantBaseURL: DefaultAPIBaseURL,
			wantTimeout: 30000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := merge(tt.doc)

			assert.Equal(t, tt.wantBaseURL, cfg.Values[KeyAPIBaseURL])
			assert.Equal(t, tt.wantTimeout, cfg.Values[KeyAPITimeout])
			assert.Equal(t, cfg.APIBaseURL, cfg.Values[KeyAPIBaseURL])
			assert.Equal(t, cfg.APITimeout.Milliseconds(), cfg.Values[KeyAPITimeout])
		})
	}
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		want    time.Duration
		wantErr bool
	}{
		{name: "float milliseconds", raw: float64(1500), want: 1500 * time.Millisecond},
		{name: "fractional milliseconds", raw: 0.5, want: 500 * time.Microsecond},
		{name: "int milliseconds", raw: 250, want: 250 * time.Millisecond},
		{name: "int64 milliseconds", raw: int64(2000), want: 2 * time.Second},
		{name: "duration string", raw: "1m", want: time.Minute},
		{name: "zero", raw: float64(0), wantErr: true},
		{name: "bad string", raw: "soon", wantErr: true},
		{name: "negative string", raw: "-5s", wantErr: true},
		{name: "nil", raw: nil, wantErr: true},
		{name: "bool", raw: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTimeout(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
