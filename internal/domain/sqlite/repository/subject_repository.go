package repository

import (
	"errors"

	"studyboard/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultSubjectRepository struct {
	db *gorm.DB
}

func NewSubjectRepository(db *gorm.DB) *DefaultSubjectRepository {
	return &DefaultSubjectRepository{db: db}
}

func (d *DefaultSubjectRepository) FindAll() ([]*entity.Subject, error) {
	var subjects []*entity.Subject
	err := d.db.Order("id ASC").Find(&subjects).Error
	if err != nil {
		return nil, err
	}
	return subjects, nil
}

func (d *DefaultSubjectRepository) FindByID(id int64) (*entity.Subject, error) {
	var subject entity.Subject
	err := d.db.First(&subject, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &subject, nil
}
