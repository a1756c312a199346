package service

import (
	"testing"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/lock"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServices(t *testing.T) {
	deps := Dependencies{
		Storages:  newSQLiteStorages(t),
		Source:    newFakeFavorites(),
		Locker:    lock.NewLocal(),
		BuildInfo: models.NewAppBuildInfo("v1", "", ""),
	}

	services, err := NewServices(deps, config.StructuredConfig{App: testAppConfig(), Sync: testSyncConfig()}, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.UserService)
	assert.NotNil(t, services.TagService)
	assert.NotNil(t, services.SyncService)
	assert.IsType(t, &TweetValidationService{}, services.TweetService)

	_, err = NewServices(deps, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
