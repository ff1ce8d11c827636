package store

import (
	"context"
	"errors"
	"time"

	"github.com/mikeoc61/currency-monitor/pkg/domain"
	"github.com/mikeoc61/currency-monitor/pkg/snapshot"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SnapshotModel is the gorm row backing one currency snapshot.
type SnapshotModel struct {
	Code       string    `gorm:"primaryKey;size:3"`
	Rate       float64   `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null"`
}

// TableName overrides the default pluralized name.
func (SnapshotModel) TableName() string { return "snapshots" }

// GormStore implements snapshot.Store on Postgres via gorm.
type GormStore struct {
	db *gorm.DB
}

// NewDBConnection opens the Postgres connection for the snapshot store
// and ensures the table exists.
func NewDBConnection(databaseURL, appEnv string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("STORE_DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&SnapshotModel{}); err != nil {
		return nil, err
	}
	return db, nil
}

// NewGormStore wraps an open gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Get returns the snapshot for a currency code, or nil if absent.
func (g *GormStore) Get(ctx context.Context, code string) (*domain.Snapshot, error) {
	var model SnapshotModel
	err := g.db.WithContext(ctx).First(&model, "code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &domain.Snapshot{
		Currency:   model.Code,
		Rate:       model.Rate,
		RecordedAt: model.RecordedAt,
	}, nil
}

// Put upserts the snapshot row for snap.Currency.
func (g *GormStore) Put(ctx context.Context, snap domain.Snapshot) error {
	model := SnapshotModel{
		Code:       snap.Currency,
		Rate:       snap.Rate,
		RecordedAt: snap.RecordedAt,
	}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "recorded_at"}),
	}).Create(&model).Error
}

// PutAll bulk-upserts snapshot rows.
func (g *GormStore) PutAll(ctx context.Context, snaps []domain.Snapshot) error {
	if len(snaps) == 0 {
		return nil
	}
	models := make([]SnapshotModel, 0, len(snaps))
	for _, snap := range snaps {
		models = append(models, SnapshotModel{
			Code:       snap.Currency,
			Rate:       snap.Rate,
			RecordedAt: snap.RecordedAt,
		})
	}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate", "recorded_at"}),
	}).Create(&models).Error
}

var _ snapshot.Store = (*GormStore)(nil)
