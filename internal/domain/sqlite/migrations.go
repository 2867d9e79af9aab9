package sqlite

import (
	"fmt"

	"studyboard/internal/domain/entity"
	"studyboard/internal/utils"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// SchemaMigration records which versions have already been applied, so
// Migrate can run on every boot without re-executing anything.
type SchemaMigration struct {
	Version   int   `gorm:"primaryKey"`
	AppliedAt int64 `gorm:"not null"`
}

type migration struct {
	Version int
	Apply   func(tx *gorm.DB) error
}

var migrations = []migration{
	{Version: 1, Apply: createBaseTables},
	{Version: 2, Apply: seedDefaultSubjects},
}

// Migrate applies all pending migrations in order, each inside its own
// transaction together with its schema_migrations bookkeeping row.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&SchemaMigration{}); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var count int64
		err := db.Model(&SchemaMigration{}).Where("version = ?", m.Version).Count(&count).Error
		if err != nil {
			return fmt.Errorf("check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := m.Apply(tx); err != nil {
				return err
			}
			return tx.Create(&SchemaMigration{Version: m.Version, AppliedAt: utils.NowUTC()}).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %d: %w", m.Version, err)
		}
		log.Infof("applied schema migration %d", m.Version)
	}
	return nil
}

func createBaseTables(tx *gorm.DB) error {
	return tx.AutoMigrate(
		&entity.User{},
		&entity.Subject{},
		&entity.Post{},
		&entity.Reply{},
		&entity.Session{},
	)
}

var defaultSubjects = []string{"Mathematics", "Science", "History", "English", "Programming", "Other"}

func seedDefaultSubjects(tx *gorm.DB) error {
	var count int64
	if err := tx.Model(&entity.Subject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, name := range defaultSubjects {
		if err := tx.Create(&entity.Subject{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
