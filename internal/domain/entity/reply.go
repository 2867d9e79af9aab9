package entity

// Reply is a child of exactly one post.
type Reply struct {
	ID        int64  `gorm:"primaryKey"`
	PostID    int64  `gorm:"not null;index"`
	Content   string `gorm:"not null"`
	AuthorID  int64  `gorm:"not null;index"`
	Author    string `gorm:"not null"`
	CreatedAt int64  `gorm:"not null"`
}
