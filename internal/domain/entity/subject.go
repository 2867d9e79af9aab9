package entity

// Subject is a fixed topic category a post belongs to. The set is
// seeded once by the migrator and is immutable reference data after that.
type Subject struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"uniqueIndex;not null"`
}
