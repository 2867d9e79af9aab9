package repository

import (
	"errors"
	"strings"

	"studyboard/internal/domain/entity"

	"gorm.io/gorm"
)

const (
	SortNew = "new"
	SortTop = "top"
)

// PostFilter holds the composable listing filters. Zero values mean
// "not filtered by this".
type PostFilter struct {
	SubjectID int64
	Search    string
	Username  string
	Sort      string
}

// PostRow is a post plus its reply count, as produced by the listing query.
type PostRow struct {
	entity.Post
	ReplyCount int64
}

type DefaultPostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *DefaultPostRepository {
	return &DefaultPostRepository{db: db}
}

const replyCountSelect = "posts.*, (SELECT COUNT(*) FROM replies WHERE replies.post_id = posts.id) AS reply_count"

// Search lists posts matching every filter set in f.
//
// Ordering contract: SortNew is descending creation time; SortTop is
// descending reply count with descending creation time as tie-break.
// Anything else falls back to SortNew.
func (d *DefaultPostRepository) Search(f *PostFilter) ([]*PostRow, error) {
	q := d.db.Model(&entity.Post{}).Select(replyCountSelect)

	if f.SubjectID > 0 {
		q = q.Where("subject_id = ?", f.SubjectID)
	}
	if f.Search != "" {
		needle := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(content) LIKE ?)", needle, needle)
	}
	if f.Username != "" {
		q = q.Where("author = ?", f.Username)
	}

	switch f.Sort {
	case SortTop:
		q = q.Order("reply_count DESC, created_at DESC")
	default:
		q = q.Order("created_at DESC")
	}

	var rows []*PostRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (d *DefaultPostRepository) FindByID(id int64) (*PostRow, error) {
	var row PostRow
	err := d.db.Model(&entity.Post{}).
		Select(replyCountSelect).
		Where("posts.id = ?", id).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (d *DefaultPostRepository) Create(post *entity.Post) error {
	return d.db.Create(post).Error
}

// DeleteWithReplies removes the post and all of its replies in one
// transaction. Returns false when no post row was deleted.
func (d *DefaultPostRepository) DeleteWithReplies(id int64) (bool, error) {
	deleted := false
	err := d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&entity.Reply{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&entity.Post{}, id)
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected > 0
		return nil
	})
	return deleted, err
}
