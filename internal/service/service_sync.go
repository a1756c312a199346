package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/fave-tweets/internal/adapter"
	"github.com/MKhiriev/fave-tweets/internal/config"
	"github.com/MKhiriev/fave-tweets/internal/lock"
	"github.com/MKhiriev/fave-tweets/internal/logger"
	"github.com/MKhiriev/fave-tweets/internal/store"
	"github.com/MKhiriev/fave-tweets/models"
)

// Outcome labels reported to the SyncObserver.
const (
	OutcomeComplete       = "complete"
	OutcomeIterationLimit = "iteration_limit"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeAborted        = "aborted"
	OutcomeError          = "error"
)

// releaseTimeout bounds the lock release, which runs even when the sync
// context is already done.
const releaseTimeout = 5 * time.Second

// syncService pulls favorites pages into the tweet store until the stored
// id range stops growing.
type syncService struct {
	source          adapter.FavoritesSource
	tweetRepository store.TweetRepository
	locker          lock.Locker
	observer        SyncObserver

	pageSize      int
	maxIterations int
	timeout       time.Duration

	logger *logger.Logger
}

// NewSyncService wires the sync engine. observer may be nil.
func NewSyncService(
	source adapter.FavoritesSource,
	tweetRepository store.TweetRepository,
	locker lock.Locker,
	observer SyncObserver,
	cfg config.Sync,
	logger *logger.Logger,
) SyncService {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > config.MaxPageSize {
		pageSize = config.DefaultPageSize
	}
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = config.DefaultMaxIterations
	}

	return &syncService{
		source:          source,
		tweetRepository: tweetRepository,
		locker:          locker,
		observer:        observer,
		pageSize:        pageSize,
		maxIterations:   maxIterations,
		timeout:         cfg.Timeout,
		logger:          logger,
	}
}

// Synchronize implements SyncService.
//
// Every pass reads the stored id range of the user and requests:
//   - one unbounded page when nothing is stored yet;
//   - otherwise a page older than the oldest stored id and a page newer
//     than the newest one.
//
// Each page is stored in its own transaction, so a failure loses only the
// failing page. The loop ends when a pass stores nothing, when the
// iteration cap is reached (ErrSyncIterationLimit) or when the deadline
// passes (ErrSyncAborted).
//
// Tweet ids are unique across the whole store and the first user to sync a
// post owns it. Posts another user already owns count as AlreadyStored,
// not Inserted, so such a user can reach the fixed point with an empty
// catalog while the source answered normally.
func (s *syncService) Synchronize(ctx context.Context, user models.User) (report models.SyncReport, err error) {
	log := logger.FromContext(ctx).With().Int64("user_id", user.UserID).Int64("uid", user.UID).Logger()
	started := time.Now()
	report.UserID = user.UserID

	defer func() {
		report.Duration = time.Since(started)
		outcome := syncOutcome(err)
		if s.observer != nil {
			s.observer.ObserveSync(outcome, report)
		}

		event := log.Info()
		if err != nil && !errors.Is(err, ErrSyncIterationLimit) {
			event = log.Error().Err(err)
		}
		event.Str("outcome", outcome).
			Int("iterations", report.Iterations).
			Int("requests", report.Requests).
			Int("fetched", report.Fetched).
			Int64("inserted", report.Inserted).
			Int64("already_stored", report.AlreadyStored).
			Int64("total", report.Total).
			Bool("complete", report.Complete).
			Dur("duration", report.Duration).
			Msg("favorites sync finished")
	}()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	release, err := s.locker.Acquire(ctx, "user:"+strconv.FormatInt(user.UserID, 10))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return report, fmt.Errorf("%w: waiting for sync lock: %w", ErrSyncAborted, ctxErr)
		}
		return report, fmt.Errorf("acquiring sync lock failed: %w", err)
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		if releaseErr := release(releaseCtx); releaseErr != nil {
			log.Warn().Err(releaseErr).Msg("releasing sync lock failed")
		}
	}()

	for report.Iterations < s.maxIterations {
		stats, err := s.tweetRepository.Stats(ctx, user.UserID)
		if err != nil {
			return report, s.storeError(ctx, "reading tweet stats", err)
		}

		report.Iterations++
		var added int64
		for _, query := range s.nextQueries(stats) {
			inserted, err := s.fetchPage(ctx, user, query, &report)
			if err != nil {
				report.Total = stats.Count + added
				return report, err
			}
			added += inserted
		}

		report.Inserted += added
		report.Total = stats.Count + added

		log.Debug().
			Int("iteration", report.Iterations).
			Int64("added", added).
			Int64("min_tweet_id", stats.MinTweetID).
			Int64("max_tweet_id", stats.MaxTweetID).
			Msg("sync pass done")

		if added == 0 {
			report.Complete = true
			return report, nil
		}
	}

	return report, fmt.Errorf("%w: %d passes", ErrSyncIterationLimit, s.maxIterations)
}

// nextQueries returns the pages to request for the stored range.
func (s *syncService) nextQueries(stats models.TweetStats) []models.FavoritesQuery {
	if stats.Count == 0 {
		return []models.FavoritesQuery{{Count: s.pageSize}}
	}

	queries := make([]models.FavoritesQuery, 0, 2)
	if stats.MinTweetID > 1 {
		queries = append(queries, models.FavoritesQuery{Count: s.pageSize, MaxID: stats.MinTweetID - 1})
	}
	queries = append(queries, models.FavoritesQuery{Count: s.pageSize, SinceID: stats.MaxTweetID})
	return queries
}

func (s *syncService) fetchPage(ctx context.Context, user models.User, query models.FavoritesQuery, report *models.SyncReport) (int64, error) {
	report.Requests++

	favorites, err := s.source.Favorites(ctx, user.UID, query)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, fmt.Errorf("%w: %w", ErrSyncAborted, ctxErr)
		}
		return 0, fmt.Errorf("%w: %w", ErrUpstreamFetch, err)
	}
	report.Fetched += len(favorites)
	if len(favorites) == 0 {
		return 0, nil
	}

	tweets := make([]models.Tweet, len(favorites))
	for i, favorite := range favorites {
		tweets[i] = favorite.ToTweet(user.UserID)
	}

	inserted, err := s.tweetRepository.InsertPage(ctx, tweets)
	if err != nil {
		return 0, s.storeError(ctx, "storing favorites page", err)
	}
	report.AlreadyStored += int64(len(favorites)) - inserted

	return inserted, nil
}

func (s *syncService) storeError(ctx context.Context, op string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %s: %w", ErrSyncAborted, op, ctxErr)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

func syncOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeComplete
	case errors.Is(err, ErrSyncIterationLimit):
		return OutcomeIterationLimit
	case errors.Is(err, ErrUpstreamFetch):
		return OutcomeUpstreamError
	case errors.Is(err, ErrSyncAborted):
		return OutcomeAborted
	default:
		return OutcomeError
	}
}
