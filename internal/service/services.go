package service

import (
	"github.com/MKhiriev/fave-tweets/internal/adapter"
	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/lock"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/internal/validators"
	"github.com/MKhiriev/fave-tweets/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	UserService    UserService
	TagService     TagService
	TweetService   TweetService
	SyncService    SyncService
}

// Dependencies are the collaborators the services are built over.
type Dependencies struct {
	Storages  *store.Storages
	Source    adapter.FavoritesSource
	Locker    lock.Locker
	Observer  SyncObserver
	BuildInfo models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, deps.BuildInfo, logger)
	if err != nil {
		return nil, err
	}

	tagService := NewTagService(deps.Storages.TagRepository, logger)
	tweetService := NewTweetValidationService(validators.NewStructValidator()).
		Wrap(NewTweetService(deps.Storages.TweetRepository, tagService, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		AppInfoService: appInfoService,
		UserService:    NewUserService(deps.Storages.UserRepository, logger),
		TagService:     tagService,
		TweetService:   tweetService,
		SyncService:    NewSyncService(deps.Source, deps.Storages.TweetRepository, deps.Locker, deps.Observer, cfg.Sync, logger),
	}, nil
}
