package appconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_LazilyCreated(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	l := Default()
	require.NotNil(t, l)
	assert.Same(t, l, Default())
	assert.IsType(t, &HTTPSource{}, l.source)
}

func TestGlobalAccessors(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "app-config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"apiBaseUrl":"http://global/api"}`), 0o600))
	Init(NewLoader(NewFileSource(path), logger.Nop()))

	assert.Nil(t, GetConfigSync())

	cfg := GetConfig(context.Background())
	assert.Equal(t, "http://global/api", cfg.APIBaseURL)
	assert.Same(t, cfg, GetConfigSync())

	ClearConfigCache()
	assert.Nil(t, GetConfigSync())
}

func TestReset_DropsLoader(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := NewLoader(&fakeSource{}, nil)
	Init(custom)
	assert.Same(t, custom, Default())

	Reset()
	assert.NotSame(t, custom, Default())
}
