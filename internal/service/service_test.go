package service

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/models"
	"github.com/stretchr/testify/require"
)

// newSQLiteStorages opens a migrated SQLite database in a temp dir.
func newSQLiteStorages(t *testing.T) *store.Storages {
	t.Helper()

	db, err := store.NewConnectSQLite(context.Background(), config.DB{DSN: filepath.Join(t.TempDir(), "favs.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	return store.NewStorages(db, logger.Nop())
}

// fakeFavorites serves a fixed set of posts with the source's paging rules:
// newest first, MaxID inclusive upper bound, SinceID exclusive lower bound.
type fakeFavorites struct {
	mu      sync.Mutex
	posts   []models.Favorite
	queries []models.FavoritesQuery
}

func newFakeFavorites(ids ...int64) *fakeFavorites {
	f := &fakeFavorites{}
	f.add(ids...)
	return f
}

func favoritesRange(from, to int64) *fakeFavorites {
	ids := make([]int64, 0, to-from+1)
	for id := from; id <= to; id++ {
		ids = append(ids, id)
	}
	return newFakeFavorites(ids...)
}

func (f *fakeFavorites) add(ids ...int64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range ids {
		f.posts = append(f.posts, models.Favorite{
			ID:        id,
			Text:      "post",
			CreatedAt: models.SourceTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute)),
			Author:    models.FavoriteUser{Name: "Author", ScreenName: "author"},
		})
	}
	sort.Slice(f.posts, func(i, j int) bool { return f.posts[i].ID > f.posts[j].ID })
}

func (f *fakeFavorites) Favorites(ctx context.Context, _ int64, q models.FavoritesQuery) ([]models.Favorite, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.queries = append(f.queries, q)

	page := make([]models.Favorite, 0, q.Count)
	for _, post := range f.posts {
		if q.MaxID != 0 && post.ID > q.MaxID {
			continue
		}
		if q.SinceID != 0 && post.ID <= q.SinceID {
			continue
		}
		if len(page) == q.Count {
			break
		}
		page = append(page, post)
	}
	return page, nil
}

func testSyncConfig() config.Sync {
	return config.Sync{PageSize: config.DefaultPageSize, MaxIterations: config.DefaultMaxIterations, Timeout: 10 * time.Second}
}
