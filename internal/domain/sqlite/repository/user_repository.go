package repository

import (
	"errors"
	"strings"

	"studyboard/internal/domain/entity"

	"gorm.io/gorm"
)

// ErrDuplicateUser is returned by Create when the username or email is
// already taken. Detection relies on the UNIQUE indexes, so the insert
// itself is the uniqueness check and there is no check-then-insert race.
var ErrDuplicateUser = errors.New("username or email already exists")

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindByID(id int64) (*entity.User, error) {
	var user entity.User
	err := u.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := u.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *DefaultUserRepository) Create(user *entity.User) error {
	err := u.db.Create(user).Error
	if isUniqueViolation(err) {
		return ErrDuplicateUser
	}
	return err
}

func (u *DefaultUserRepository) SetAdmin(user *entity.User, isAdmin bool) error {
	return u.db.Model(user).Update("is_admin", isAdmin).Error
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
