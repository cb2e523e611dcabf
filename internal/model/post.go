package model

import "time"

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	CommunityID uint64    `gorm:"not null;index:idx_post_community_time,priority:1"`
	AuthorID    uint64    `gorm:"not null;index"`
	Slug        string    `gorm:"index;size:220;not null"`
	Title       string    `gorm:"size:200;not null"`
	Content     string    `gorm:"type:text"`
	SearchText  string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"index:idx_post_community_time,priority:2,sort:desc"`
	UpdatedAt   time.Time
}
