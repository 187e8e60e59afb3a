package appconfig

import (
	"context"
	"sync"
)

// DefaultConfigURL is where [Default] looks for the document when [Init]
// was never called.
const DefaultConfigURL = "http://localhost:8080/app-config.json"

var (
	globalMu     sync.Mutex
	globalLoader *Loader
)

// Init installs l as the process-wide loader.
func Init(l *Loader) {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalLoader = l
}

// Default returns the process-wide loader, creating one for
// [DefaultConfigURL] on first use.
func Default() *Loader {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalLoader == nil {
		globalLoader = NewLoader(NewHTTPSource(DefaultConfigURL), nil)
	}

	return globalLoader
}

// Reset drops the process-wide loader.
func Reset() {
	Init(nil)
}

// GetConfig resolves the configuration through the process-wide loader.
func GetConfig(ctx context.Context) *AppConfig {
	return Default().Get(ctx)
}

// GetConfigSync peeks at the process-wide cache. It returns nil before the
// first load completes.
func GetConfigSync() *AppConfig {
	return Default().GetSync()
}

// ClearConfigCache invalidates the process-wide cache.
func ClearConfigCache() {
	Default().Clear()
}
