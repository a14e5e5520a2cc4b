// Package archive keeps mission debriefs in a local SQLite database.
package archive

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"squad-tactics/internal/event"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

const appDir = "squad-tactics"

// Store is an open debrief database.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Summary aggregates every stored debrief.
type Summary struct {
	Missions  int64
	Victories int64
	Defeats   int64
}

// DataDir returns $XDG_DATA_HOME/squad-tactics, defaulting to
// ~/.local/share/squad-tactics.
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appDir), nil
}

// Open opens or creates the database at path and migrates the schema.
// An empty path means missions.db under DataDir.
func Open(path string, log zerolog.Logger) (*Store, error) {
	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, fmt.Errorf("locate data dir: %w", err)
		}
		path = filepath.Join(dir, "missions.db")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create archive dir: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	// SSH sessions save concurrently; SQLite allows a single writer.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&Debrief{}); err != nil {
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	log.Debug().Str("path", path).Msg("mission archive open")
	return &Store{db: db, log: log}, nil
}

// Save stores d and fills in its ID, RunID and CreatedAt.
func (s *Store) Save(d *Debrief) error {
	if d.RunID == "" {
		d.RunID = uuid.NewString()
	}
	if err := s.db.Create(d).Error; err != nil {
		return fmt.Errorf("save debrief: %w", err)
	}
	s.log.Info().
		Uint("id", d.ID).
		Str("run", d.RunID).
		Str("mission", d.Mission).
		Str("outcome", d.Outcome).
		Int("turns", d.Turns).
		Msg("debrief saved")
	return nil
}

// Recent returns up to n debriefs, newest first.
func (s *Store) Recent(n int) ([]Debrief, error) {
	var out []Debrief
	err := s.db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true}).
		Limit(n).Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list debriefs: %w", err)
	}
	return out, nil
}

// Get returns the debrief with the given id.
func (s *Store) Get(id uint) (Debrief, error) {
	var d Debrief
	err := s.db.First(&d, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Debrief{}, fmt.Errorf("debrief %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Debrief{}, fmt.Errorf("get debrief %d: %w", id, err)
	}
	return d, nil
}

// ErrNotFound is returned by Get for unknown ids.
var ErrNotFound = errors.New("not found")

// Summarize counts missions by outcome.
func (s *Store) Summarize() (Summary, error) {
	var sum Summary
	if err := s.db.Model(&Debrief{}).Count(&sum.Missions).Error; err != nil {
		return Summary{}, fmt.Errorf("count debriefs: %w", err)
	}
	if err := s.db.Model(&Debrief{}).Where("outcome = ?", event.PhaseVictory.String()).Count(&sum.Victories).Error; err != nil {
		return Summary{}, fmt.Errorf("count victories: %w", err)
	}
	if err := s.db.Model(&Debrief{}).Where("outcome = ?", event.PhaseDefeat.String()).Count(&sum.Defeats).Error; err != nil {
		return Summary{}, fmt.Errorf("count defeats: %w", err)
	}
	return sum, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
