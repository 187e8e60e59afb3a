package appconfig_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/cidr-viewer/internal/appconfig"
	"github.com/MKhiriev/cidr-viewer/internal/logger"
	"github.com/MKhiriev/cidr-viewer/internal/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestLoader_FetchesOnceUntilCleared(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockSource(ctrl)

	gomock.InOrder(
		source.EXPECT().Fetch(gomock.Any()).Return(map[string]any{"apiBaseUrl": "http://first.test/api"}, nil),
		source.EXPECT().Fetch(gomock.Any()).Return(map[string]any{"apiBaseUrl": "http://second.test/api"}, nil),
	)

	loader := appconfig.NewLoader(source, logger.Nop())

	assert.Equal(t, "http://first.test/api", loader.Get(context.Background()).APIBaseURL)
	assert.Equal(t, "http://first.test/api", loader.Get(context.Background()).APIBaseURL)

	loader.Clear()
	assert.Equal(t, "http://second.test/api", loader.Get(context.Background()).APIBaseURL)
}

func TestLoader_SourceErrorYieldsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).Return(nil, errors.New("network down")).Times(1)

	loader := appconfig.NewLoader(source, logger.Nop())

	cfg := loader.Get(context.Background())
	assert.Equal(t, appconfig.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, appconfig.DefaultAPITimeout, cfg.APITimeout)
	assert.Same(t, cfg, loader.GetSync())
}

func TestLoader_FetchContextIsBoundedByLoadTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock.NewMockSource(ctrl)
	source.EXPECT().Fetch(gomock.Any()).DoAndReturn(func(ctx context.Context) (map[string]any, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(time.Second), deadline, 500*time.Millisecond)
		return map[string]any{}, nil
	})

	loader := appconfig.NewLoader(source, logger.Nop(), appconfig.WithLoadTimeout(time.Second))
	loader.Get(context.Background())
}
