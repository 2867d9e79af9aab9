package entity

// Session is a server-held login session. The bearer token handed to the
// client is never stored; only its SHA-256 is, so a leaked database dump
// does not yield usable credentials.
type Session struct {
	ID        int64  `gorm:"primaryKey;autoIncrement:false"`
	TokenHash string `gorm:"uniqueIndex;not null"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt int64  `gorm:"not null"`
	ExpiresAt int64  `gorm:"not null"`
}
