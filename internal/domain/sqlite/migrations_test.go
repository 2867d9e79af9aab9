package sqlite

import (
	"testing"

	"studyboard/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var applied int64
	require.NoError(t, db.Model(&SchemaMigration{}).Count(&applied).Error)
	assert.Equal(t, int64(len(migrations)), applied)

	// Seeding must not duplicate on the second run.
	var subjects []*entity.Subject
	require.NoError(t, db.Find(&subjects).Error)
	assert.Len(t, subjects, len(defaultSubjects))
}

func TestSeedSkipsNonEmptySubjectTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&entity.Subject{}))
	require.NoError(t, db.Create(&entity.Subject{Name: "Chemistry"}).Error)

	require.NoError(t, Migrate(db))

	var count int64
	require.NoError(t, db.Model(&entity.Subject{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMigrateCreatesAllTables(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	for _, table := range []string{"users", "subjects", "posts", "replies", "sessions"} {
		assert.True(t, db.Migrator().HasTable(table), "expected table %s", table)
	}
}
