package model

import "time"

// Privacy modes a community can be created with.
const (
	PrivacyPublic  = "public"
	PrivacyPrivate = "private"
	PrivacySecret  = "secret"
)

// Membership roles. The creator becomes the sole admin.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleMember    = "member"
)

func ValidPrivacy(p string) bool {
	return p == PrivacyPublic || p == PrivacyPrivate || p == PrivacySecret
}

type Community struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:64;not null"`
	Slug        string `gorm:"uniqueIndex;size:80;not null"`
	Description string `gorm:"type:text"`
	Privacy     string `gorm:"size:16;not null;default:'public'"`
	AuthorID    uint64 `gorm:"not null;index"`
	SearchText  string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CommunityMember struct {
	ID          uint64 `gorm:"primaryKey"`
	CommunityID uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	UserID      uint64 `gorm:"not null;index;uniqueIndex:uk_community_user"`
	Role        string `gorm:"size:16;not null;default:'member'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
