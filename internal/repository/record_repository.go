package repository

import (
	"context"

	"gorm.io/gorm"

	"scorekeeper/internal/model"
)

// RecordRepository defines leaderboard persistence operations. Sorting and
// limiting happen in the store so large collections never cross the wire.
type RecordRepository interface {
	Create(ctx context.Context, record *model.Record) error
	TopScores(ctx context.Context, limit int) ([]model.Record, error)
	BestTimes(ctx context.Context, limit int) ([]model.Record, error)
	Latest(ctx context.Context, limit int) ([]model.Record, error)
	LatestByUsername(ctx context.Context, username string, limit int) ([]model.Record, error)
}

type recordRepository struct {
	db *gorm.DB
}

// NewRecordRepository builds a GORM-backed repository.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	return &recordRepository{db: db}
}

// Create persists a new leaderboard record.
func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// TopScores returns records sorted by score descending.
func (r *recordRepository) TopScores(ctx context.Context, limit int) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).
		Order("score DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// BestTimes returns records sorted by time ascending. Records without a time
// sort last, as if their time were infinite.
func (r *recordRepository) BestTimes(ctx context.Context, limit int) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).
		Order("play_time IS NULL, play_time ASC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Latest returns records sorted by date descending.
func (r *recordRepository) Latest(ctx context.Context, limit int) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// LatestByUsername returns one user's records sorted by date descending.
func (r *recordRepository) LatestByUsername(ctx context.Context, username string, limit int) ([]model.Record, error) {
	var records []model.Record
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("date DESC").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
