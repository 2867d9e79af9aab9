package repository

import (
	"errors"

	"studyboard/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultReplyRepository struct {
	db *gorm.DB
}

func NewReplyRepository(db *gorm.DB) *DefaultReplyRepository {
	return &DefaultReplyRepository{db: db}
}

func (d *DefaultReplyRepository) FindByID(id int64) (*entity.Reply, error) {
	var reply entity.Reply
	err := d.db.First(&reply, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// FindByPostID lists a post's replies oldest first, thread order.
func (d *DefaultReplyRepository) FindByPostID(postID int64) ([]*entity.Reply, error) {
	var replies []*entity.Reply
	err := d.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (d *DefaultReplyRepository) FindByUsername(username string) ([]*entity.Reply, error) {
	var replies []*entity.Reply
	err := d.db.Where("author = ?", username).Order("created_at DESC").Find(&replies).Error
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (d *DefaultReplyRepository) Create(reply *entity.Reply) error {
	return d.db.Create(reply).Error
}

func (d *DefaultReplyRepository) Delete(reply *entity.Reply) error {
	return d.db.Delete(reply).Error
}
