// Package db provides database connection, migration and vote archiving.
package db

import (
	"fmt"
	stdlog "log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"resolution-monitoring/internal/config"
	"resolution-monitoring/internal/ledger"
	"resolution-monitoring/internal/models"
)

// archiveBatchSize bounds the rows inserted per statement.
const archiveBatchSize = 500

// Open opens a database connection using the provided configuration.
// It returns a nil *gorm.DB when persistence is not configured.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.DBDialect == "" || cfg.DBDsn == "" {
		return nil, nil
	}

	// Silent to avoid cluttering the dashboard; errors are returned to callers
	newLogger := logger.New(
		stdlog.New(os.Stdout, "", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Silent,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	switch cfg.DBDialect {
	case config.DatabaseSchemePostgres:
		return gorm.Open(postgres.Open(cfg.DBDsn), &gorm.Config{Logger: newLogger})
	default:
		return nil, fmt.Errorf("unsupported DB_DIALECT: %s", cfg.DBDialect)
	}
}

// AutoMigrate runs database migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&models.SessionEntry{},
		&models.ObservedVote{},
	)
}

// ObservedVotes converts ledger events to archive rows. Events without a
// transaction hash were not observed on the ledger and are left out.
func ObservedVotes(events []ledger.VoteEvent, at time.Time) []*models.ObservedVote {
	votes := make([]*models.ObservedVote, 0, len(events))
	for _, ev := range events {
		if ev.TxHash() == ledger.SentinelTxHash || !ev.VoteType.Valid() {
			continue
		}
		votes = append(votes, &models.ObservedVote{
			ResolutionID: ev.ResolutionID,
			Voter:        strings.ToLower(ev.Voter.Hex()),
			VoteType:     string(ev.VoteType),
			BlockNumber:  ev.BlockNumber,
			TxHash:       ev.TransactionHash.Hex(),
			ObservedAt:   at,
		})
	}
	return votes
}

// ArchiveVotes stores ledger vote events. Votes already archived are kept as
// first observed. It returns the number of rows written.
func ArchiveVotes(db *gorm.DB, events []ledger.VoteEvent, at time.Time) (int64, error) {
	if db == nil {
		return 0, nil
	}
	votes := ObservedVotes(events, at)
	if len(votes) == 0 {
		return 0, nil
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(votes, archiveBatchSize)
	if res.Error != nil {
		return 0, fmt.Errorf("archive %d votes: %w", len(votes), res.Error)
	}
	return res.RowsAffected, nil
}

// ArchivedVotes returns the archived votes of a resolution in ledger order.
func ArchivedVotes(db *gorm.DB, resolutionID uint64) ([]models.ObservedVote, error) {
	var votes []models.ObservedVote
	err := db.Where(&models.ObservedVote{ResolutionID: resolutionID}).
		Order("block_number, id").
		Find(&votes).Error
	return votes, err
}
