package repository

import (
	"errors"

	"studyboard/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *DefaultSessionRepository {
	return &DefaultSessionRepository{db: db}
}

func (s *DefaultSessionRepository) Create(session *entity.Session) error {
	return s.db.Create(session).Error
}

// FindUserByTokenHash resolves a presented token hash to its user.
// Expired sessions do not resolve. Returns (nil, nil) when the token
// is unknown or stale.
func (s *DefaultSessionRepository) FindUserByTokenHash(hash string, now int64) (*entity.User, error) {
	var user entity.User
	err := s.db.Model(&entity.User{}).
		Joins("JOIN sessions ON sessions.user_id = users.id").
		Where("sessions.token_hash = ? AND sessions.expires_at > ?", hash, now).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *DefaultSessionRepository) DeleteByTokenHash(hash string) error {
	return s.db.Where("token_hash = ?", hash).Delete(&entity.Session{}).Error
}

func (s *DefaultSessionRepository) DeleteExpired(now int64) (int64, error) {
	res := s.db.Where("expires_at <= ?", now).Delete(&entity.Session{})
	return res.RowsAffected, res.Error
}
