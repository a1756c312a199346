package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fave-tweets/internal/lock"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/mock"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/internal/validators"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newTestTweetSvc(t *testing.T) (TweetService, *mock.MockTweetRepository, *mock.MockTagService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTweetRepository(ctrl)
	tags := mock.NewMockTagService(ctrl)
	return NewTweetService(repo, tags, logger.Nop()), repo, tags
}

func TestTweetService_ListTweets_Annotates(t *testing.T) {
	svc, repo, tags := newTestTweetSvc(t)
	stored := []models.Tweet{{ID: 2, TweetID: 9007199254740993, UserID: 1}, {ID: 1, TweetID: 5, UserID: 1}}

	repo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(stored, nil)
	tags.EXPECT().TagsForTweets(gomock.Any(), stored).Return(map[int64][]models.Tag{
		2: {{Name: "b"}, {Name: "a"}},
	}, nil)

	got, err := svc.ListTweets(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "9007199254740993", got[0].IDStr)
	assert.Equal(t, "b, a", got[0].TagList)
	assert.Len(t, got[0].Tags, 2)

	assert.Equal(t, "5", got[1].IDStr)
	assert.Equal(t, "", got[1].TagList)
	assert.NotNil(t, got[1].Tags, "tags must encode as [] rather than null")
}

func TestTweetService_ListTweets_RepositoryError(t *testing.T) {
	svc, repo, _ := newTestTweetSvc(t)
	repo.EXPECT().ListByUser(gomock.Any(), int64(1)).Return(nil, store.ErrExecutingQuery)

	_, err := svc.ListTweets(context.Background(), 1)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestTweetService_GetTweet_NotFound(t *testing.T) {
	svc, repo, _ := newTestTweetSvc(t)
	repo.EXPECT().Get(gomock.Any(), int64(1), int64(99)).Return(models.Tweet{}, store.ErrTweetNotFound)

	_, err := svc.GetTweet(context.Background(), 1, 99)
	assert.ErrorIs(t, err, store.ErrTweetNotFound)
}

func TestTweetService_UpdateTweet(t *testing.T) {
	svc, repo, _ := newTestTweetSvc(t)
	tweet := models.Tweet{ID: 7, TweetID: 70, UserID: 1}

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), int64(1), int64(7)).Return(tweet, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tw models.Tweet, tags []models.Tag) ([]models.Tag, error) {
				assert.True(t, tw.Archived)
				assert.Equal(t, []models.Tag{
					{UserID: 1, Name: "go", Slug: "go"},
					{UserID: 1, Name: "SQL!", Slug: "sql"},
				}, tags)
				return []models.Tag{{ID: 1, Name: "go"}, {ID: 2, Name: "SQL!"}}, nil
			},
		),
	)

	got, err := svc.UpdateTweet(context.Background(), 1, 7, models.TweetUpdateRequest{Archived: ptr(true), TagList: ptr("go, SQL!, go")})
	require.NoError(t, err)
	assert.True(t, got.Archived)
	assert.Equal(t, "go, SQL!", got.TagList)
}

func TestTweetService_UpdateTweet_StoreError(t *testing.T) {
	svc, repo, _ := newTestTweetSvc(t)

	repo.EXPECT().Get(gomock.Any(), int64(1), int64(7)).Return(models.Tweet{ID: 7, UserID: 1}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, store.ErrExecutingStatement)

	_, err := svc.UpdateTweet(context.Background(), 1, 7, models.TweetUpdateRequest{Archived: ptr(true), TagList: ptr("go")})
	assert.ErrorIs(t, err, store.ErrExecutingStatement)
}

func TestTweetService_UpdateTweet_NotFound(t *testing.T) {
	svc, repo, _ := newTestTweetSvc(t)
	repo.EXPECT().Get(gomock.Any(), int64(1), int64(7)).Return(models.Tweet{}, store.ErrTweetNotFound)

	_, err := svc.UpdateTweet(context.Background(), 1, 7, models.TweetUpdateRequest{Archived: ptr(false), TagList: ptr("")})
	assert.ErrorIs(t, err, store.ErrTweetNotFound)
}

func TestTweetService_UpdateTweet_MissingFields(t *testing.T) {
	svc, _, _ := newTestTweetSvc(t)

	_, err := svc.UpdateTweet(context.Background(), 1, 7, models.TweetUpdateRequest{Archived: ptr(true)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTweetValidationService_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockTweetService(ctrl)
	svc := NewTweetValidationService(validators.NewStructValidator()).Wrap(inner)

	_, err := svc.UpdateTweet(context.Background(), 1, 7, models.TweetUpdateRequest{TagList: ptr("go")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrInvalidInput)

	var fieldErrs validators.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, "archived")
}

func TestTweetValidationService_DelegatesValidRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockTweetService(ctrl)
	svc := NewTweetValidationService(validators.NewStructValidator()).Wrap(inner)
	req := models.TweetUpdateRequest{Archived: ptr(false), TagList: ptr("")}

	inner.EXPECT().UpdateTweet(gomock.Any(), int64(1), int64(7), req).Return(models.TweetResponse{}, nil)
	inner.EXPECT().ListTweets(gomock.Any(), int64(1)).Return(nil, nil)
	inner.EXPECT().GetTweet(gomock.Any(), int64(1), int64(7)).Return(models.TweetResponse{}, nil)

	_, err := svc.UpdateTweet(context.Background(), 1, 7, req)
	require.NoError(t, err)
	_, err = svc.ListTweets(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.GetTweet(context.Background(), 1, 7)
	require.NoError(t, err)
}

// --- end-to-end over SQLite ---

func TestTweetServiceE2E_UpdateScenario(t *testing.T) {
	ctx := context.Background()
	storages := newSQLiteStorages(t)

	users := NewUserService(storages.UserRepository, logger.Nop())
	owner, err := users.FindOrCreateByExternalID(ctx, 501)
	require.NoError(t, err)
	other, err := users.FindOrCreateByExternalID(ctx, 502)
	require.NoError(t, err)

	syncSvc := NewSyncService(favoritesRange(1, 3), storages.TweetRepository, lock.NewLocal(), nil, testSyncConfig(), logger.Nop())
	_, err = syncSvc.Synchronize(ctx, owner)
	require.NoError(t, err)

	tagSvc := NewTagService(storages.TagRepository, logger.Nop())
	svc := NewTweetValidationService(validators.NewStructValidator()).
		Wrap(NewTweetService(storages.TweetRepository, tagSvc, logger.Nop()))

	list, err := svc.ListTweets(ctx, owner.UserID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, int64(3), list[0].TweetID)
	assert.Equal(t, int64(1), list[2].TweetID)

	target := list[1]
	updated, err := svc.UpdateTweet(ctx, owner.UserID, target.ID, models.TweetUpdateRequest{
		Archived: ptr(true),
		TagList:  ptr("b, a, b"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Archived)
	assert.Equal(t, "b, a", updated.TagList)

	got, err := svc.GetTweet(ctx, owner.UserID, target.ID)
	require.NoError(t, err)
	assert.True(t, got.Archived)
	assert.Equal(t, "b, a", got.TagList)
	require.Len(t, got.Tags, 2)
	assert.Equal(t, "b", got.Tags[0].Slug)

	_, err = svc.GetTweet(ctx, other.UserID, target.ID)
	assert.ErrorIs(t, err, store.ErrTweetNotFound)

	_, err = svc.UpdateTweet(ctx, other.UserID, target.ID, models.TweetUpdateRequest{Archived: ptr(false), TagList: ptr("")})
	assert.ErrorIs(t, err, store.ErrTweetNotFound)
}
