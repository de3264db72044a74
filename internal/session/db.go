package session

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resolution-monitoring/internal/models"
)

// DBStore persists session entries so a session survives client restarts.
type DBStore struct {
	db        *gorm.DB
	sessionID string
}

// NewDBStore scopes a store to sessionID. An empty id starts a fresh session.
func NewDBStore(db *gorm.DB, sessionID string) *DBStore {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	return &DBStore{db: db, sessionID: sessionID}
}

// SessionID returns the id entries are scoped to.
func (s *DBStore) SessionID() string {
	return s.sessionID
}

func (s *DBStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.SessionEntry
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND key = ?", s.sessionID, key).
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "load session key %s", key)
	}
	return entry.Value, true, nil
}

func (s *DBStore) Set(ctx context.Context, key, value string) error {
	entry := models.SessionEntry{SessionID: s.sessionID, Key: key, Value: value}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	return errors.Wrapf(err, "store session key %s", key)
}
