package model

import "time"

// Like rows are the only record of "liked" state. The unique (user, target)
// key is what makes the toggle safe under concurrent requests.

type PostLike struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_post_like"`
	PostID    uint64 `gorm:"not null;index;uniqueIndex:uk_post_like"`
	CreatedAt time.Time
}

func (PostLike) TableName() string { return "post_likes" }

type PostCommentLike struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_comment_like"`
	CommentID uint64 `gorm:"not null;index;uniqueIndex:uk_comment_like"`
	CreatedAt time.Time
}

func (PostCommentLike) TableName() string { return "post_comment_likes" }

type PostCommentReplyLike struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `gorm:"not null;uniqueIndex:uk_reply_like"`
	ReplyID   uint64 `gorm:"not null;index;uniqueIndex:uk_reply_like"`
	CreatedAt time.Time
}

func (PostCommentReplyLike) TableName() string { return "post_comment_reply_likes" }
