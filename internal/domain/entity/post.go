package entity

// Post is a top-level topic under a subject.
//
// Author is the author's display name, denormalized at creation time.
// AuthorID never changes once set.
type Post struct {
	ID        int64  `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"not null"`
	AuthorID  int64  `gorm:"not null;index"`
	Author    string `gorm:"not null"`
	SubjectID int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"not null"`
}
