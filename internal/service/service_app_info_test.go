package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_ReportsVersionAndBuild(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.3-beta+build.42", "", "abc123")
	svc, err := NewAppInfoService(config.App{Version: "1.2.3"}, build, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.2.3", svc.GetAppVersion(ctx))

	info := svc.GetBuildInfo(ctx)
	assert.Equal(t, "v1.2.3-beta+build.42", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
}
