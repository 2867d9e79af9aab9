package service

import (
	"testing"

	dbsqlite "studyboard/internal/domain/sqlite"
	"studyboard/internal/domain/sqlite/repository"
	"studyboard/internal/utils/uid"
	"studyboard/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	uid.Init(1)

	db, err := dbsqlite.Init(":memory:")
	require.NoError(t, err)
	return db
}

func newTestValidate() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("username", validators.Username)
	return validate
}

type testRepos struct {
	users    *repository.DefaultUserRepository
	posts    *repository.DefaultPostRepository
	replies  *repository.DefaultReplyRepository
	subjects *repository.DefaultSubjectRepository
	sessions *repository.DefaultSessionRepository
}

func newTestRepos(db *gorm.DB) *testRepos {
	return &testRepos{
		users:    repository.NewUserRepository(db),
		posts:    repository.NewPostRepository(db),
		replies:  repository.NewReplyRepository(db),
		subjects: repository.NewSubjectRepository(db),
		sessions: repository.NewSessionRepository(db),
	}
}
