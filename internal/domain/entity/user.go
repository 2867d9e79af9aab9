package entity

// User is a registered member of the board.
//
// PasswordHash never leaves the storage/service layers; responses are
// built from dedicated DTOs that simply have no hash field.
type User struct {
	ID           int64  `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"not null"`
}
