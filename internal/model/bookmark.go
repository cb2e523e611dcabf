package model

import "time"

// Bookmark resource kinds. A bookmark is a loose reference, not ownership:
// the target may vanish independently and is resolved at read time.
const (
	ResourceJob        = "job"
	ResourceRealEstate = "real_estate"
)

func ValidResourceType(t string) bool {
	return t == ResourceJob || t == ResourceRealEstate
}

type Bookmark struct {
	ID           uint64 `gorm:"primaryKey"`
	UserID       uint64 `gorm:"not null;index;uniqueIndex:uk_user_resource"`
	ResourceID   uint64 `gorm:"not null;uniqueIndex:uk_user_resource"`
	ResourceType string `gorm:"size:16;not null;uniqueIndex:uk_user_resource"`
	CreatedAt    time.Time
}
