package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hallohallo/internal/model"
)

// Like toggles run delete-first: if a row was removed the user had liked the
// target and is now un-liking; otherwise a unique-keyed insert with
// ON CONFLICT DO NOTHING records the like. Two racing toggles cannot leave a
// duplicate row behind.

type PostLikeRepository struct {
	DB *gorm.DB
}

func (r *PostLikeRepository) Toggle(ctx context.Context, userID, postID uint64) (liked bool, err error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostLike{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err = r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoNothing: true,
	}).Create(&model.PostLike{UserID: userID, PostID: postID}).Error
	return true, err
}

func (r *PostLikeRepository) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PostLike{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *PostLikeRepository) Count(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PostLike{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

type CommentLikeRepository struct {
	DB *gorm.DB
}

func (r *CommentLikeRepository) Toggle(ctx context.Context, userID, commentID uint64) (liked bool, err error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.PostCommentLike{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err = r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "comment_id"}},
		DoNothing: true,
	}).Create(&model.PostCommentLike{UserID: userID, CommentID: commentID}).Error
	return true, err
}

func (r *CommentLikeRepository) Count(ctx context.Context, commentID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PostCommentLike{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

type ReplyLikeRepository struct {
	DB *gorm.DB
}

func (r *ReplyLikeRepository) Toggle(ctx context.Context, userID, replyID uint64) (liked bool, err error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND reply_id = ?", userID, replyID).
		Delete(&model.PostCommentReplyLike{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err = r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "reply_id"}},
		DoNothing: true,
	}).Create(&model.PostCommentReplyLike{UserID: userID, ReplyID: replyID}).Error
	return true, err
}

func (r *ReplyLikeRepository) Count(ctx context.Context, replyID uint64) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.PostCommentReplyLike{}).
		Where("reply_id = ?", replyID).
		Count(&count).Error
	return count, err
}
