package model

import "time"

type PostComment struct {
	ID        uint64 `gorm:"primaryKey"`
	PostID    uint64 `gorm:"not null;index"`
	AuthorID  uint64 `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostComment) TableName() string { return "post_comments" }

type PostCommentReply struct {
	ID        uint64 `gorm:"primaryKey"`
	CommentID uint64 `gorm:"not null;index"`
	AuthorID  uint64 `gorm:"not null;index"`
	Content   string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PostCommentReply) TableName() string { return "post_comment_replies" }
