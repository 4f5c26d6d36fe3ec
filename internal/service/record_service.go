package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"scorekeeper/internal/cache"
	"scorekeeper/internal/model"
	"scorekeeper/internal/repository"
)

const (
	// queryLimit caps every leaderboard read.
	queryLimit = 30

	recordCacheTTL = 30 * time.Second

	bestScoresKey = "records:best"
	bestTimesKey  = "records:times"
	latestKey     = "records:latest"
)

// RecordService handles leaderboard reads and writes.
type RecordService interface {
	Create(ctx context.Context, record *model.Record) error
	TopScores(ctx context.Context) ([]model.Record, error)
	BestTimes(ctx context.Context) ([]model.Record, error)
	Latest(ctx context.Context) ([]model.Record, error)
	UserHistory(ctx context.Context, username string) ([]model.Record, error)
}

type recordService struct {
	records repository.RecordRepository
	cache   *cache.Client
}

// NewRecordService creates a new record service.
func NewRecordService(records repository.RecordRepository, cache *cache.Client) RecordService {
	return &recordService{
		records: records,
		cache:   cache,
	}
}

func userHistoryKey(username string) string {
	return fmt.Sprintf("records:user:%s", username)
}

// Create persists a new record and invalidates the cached leaderboard views
// it could appear in. A zero Date means the record was submitted without one
// and defaults to now; a nil Time stays nil and ranks after timed records.
func (s *recordService) Create(ctx context.Context, record *model.Record) error {
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	if err := s.records.Create(ctx, record); err != nil {
		return fmt.Errorf("create record: %w", err)
	}

	_ = s.cache.Delete(ctx, bestScoresKey, bestTimesKey, latestKey, userHistoryKey(record.Username))
	return nil
}

// TopScores returns up to 30 records sorted by score descending.
func (s *recordService) TopScores(ctx context.Context) ([]model.Record, error) {
	return s.cached(ctx, bestScoresKey, func() ([]model.Record, error) {
		return s.records.TopScores(ctx, queryLimit)
	})
}

// BestTimes returns up to 30 records sorted by time ascending, untimed last.
func (s *recordService) BestTimes(ctx context.Context) ([]model.Record, error) {
	return s.cached(ctx, bestTimesKey, func() ([]model.Record, error) {
		return s.records.BestTimes(ctx, queryLimit)
	})
}

// Latest returns up to 30 records sorted by date descending.
func (s *recordService) Latest(ctx context.Context) ([]model.Record, error) {
	return s.cached(ctx, latestKey, func() ([]model.Record, error) {
		return s.records.Latest(ctx, queryLimit)
	})
}

// UserHistory returns up to 30 of one user's records, most recent first. An
// unknown username is indistinguishable from a user with no records.
func (s *recordService) UserHistory(ctx context.Context, username string) ([]model.Record, error) {
	return s.cached(ctx, userHistoryKey(username), func() ([]model.Record, error) {
		return s.records.LatestByUsername(ctx, username, queryLimit)
	})
}

// cached wraps a leaderboard query with cache-aside lookup.
func (s *recordService) cached(ctx context.Context, key string, fetch func() ([]model.Record, error)) ([]model.Record, error) {
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var records []model.Record
		if err := json.Unmarshal(data, &records); err == nil {
			return records, nil
		}
	}

	records, err := fetch()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(records); err == nil {
		_ = s.cache.Set(ctx, key, payload, recordCacheTTL)
	}

	return records, nil
}
