package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/mock"
	"github.com/MKhiriev/fave-tweets/internal/service"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestResyncWorker_ResyncAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserService(ctrl)
	syncSvc := mock.NewMockSyncService(ctrl)

	all := []models.User{{UserID: 1, UID: 10}, {UserID: 2, UID: 20}, {UserID: 3, UID: 30}}
	users.EXPECT().ListUsers(gomock.Any()).Return(all, nil)
	syncSvc.EXPECT().Synchronize(gomock.Any(), all[0]).Return(models.SyncReport{Inserted: 5}, nil)
	syncSvc.EXPECT().Synchronize(gomock.Any(), all[1]).Return(models.SyncReport{}, service.ErrUpstreamFetch)
	syncSvc.EXPECT().Synchronize(gomock.Any(), all[2]).Return(models.SyncReport{}, service.ErrSyncIterationLimit)

	w := NewResyncWorker(users, syncSvc, time.Minute, logger.Nop())
	synced, failed := w.ResyncAll(context.Background())

	assert.Equal(t, 2, synced)
	assert.Equal(t, 1, failed)
}

func TestResyncWorker_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserService(ctrl)
	users.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("db down"))

	w := NewResyncWorker(users, mock.NewMockSyncService(ctrl), time.Minute, logger.Nop())
	synced, failed := w.ResyncAll(context.Background())

	assert.Zero(t, synced)
	assert.Zero(t, failed)
}

func TestResyncWorker_RunTicksUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserService(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	rounds := 0
	users.EXPECT().ListUsers(gomock.Any()).DoAndReturn(func(context.Context) ([]models.User, error) {
		rounds++
		if rounds == 2 {
			cancel()
		}
		return nil, nil
	}).MinTimes(2)

	w := NewResyncWorker(users, mock.NewMockSyncService(ctrl), 5*time.Millisecond, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestResyncWorker_DisabledReturnsImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := NewResyncWorker(mock.NewMockUserService(ctrl), mock.NewMockSyncService(ctrl), 0, logger.Nop())

	done := make(chan struct{})
	go func() {
		w.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled worker must return at once")
	}
}
