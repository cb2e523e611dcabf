package service

import (
	"context"

	"gorm.io/gorm"

	"hallohallo/internal/repository/mysql"
	"hallohallo/internal/repository/redis"
)

type LikeService struct {
	postLikes    *mysql.PostLikeRepository
	commentLikes *mysql.CommentLikeRepository
	replyLikes   *mysql.ReplyLikeRepository
	cache        *redis.LikeCache // nil when redis is not configured
}

func NewLikeService(db *gorm.DB, cache *redis.LikeCache) *LikeService {
	return &LikeService{
		postLikes:    &mysql.PostLikeRepository{DB: db},
		commentLikes: &mysql.CommentLikeRepository{DB: db},
		replyLikes:   &mysql.ReplyLikeRepository{DB: db},
		cache:        cache,
	}
}

// TogglePost flips the caller's like on a post. Returns the resulting state.
func (s *LikeService) TogglePost(ctx context.Context, ident *Identity, postID uint64) (bool, error) {
	if err := Authenticated(ident); err != nil {
		return false, err
	}
	liked, err := s.postLikes.Toggle(ctx, ident.ID, postID)
	if err != nil {
		return false, err
	}
	if s.cache != nil {
		s.cache.Warm(ctx, ident.ID, postID, liked)
		_ = s.cache.InvalidateCount(ctx, postID)
	}
	return liked, nil
}

func (s *LikeService) ToggleComment(ctx context.Context, ident *Identity, commentID uint64) (bool, error) {
	if err := Authenticated(ident); err != nil {
		return false, err
	}
	return s.commentLikes.Toggle(ctx, ident.ID, commentID)
}

func (s *LikeService) ToggleReply(ctx context.Context, ident *Identity, replyID uint64) (bool, error) {
	if err := Authenticated(ident); err != nil {
		return false, err
	}
	return s.replyLikes.Toggle(ctx, ident.ID, replyID)
}

func (s *LikeService) IsPostLiked(ctx context.Context, ident *Identity, postID uint64) (bool, error) {
	if err := Authenticated(ident); err != nil {
		return false, err
	}
	if s.cache != nil {
		if liked, hit, err := s.cache.IsLiked(ctx, ident.ID, postID); err == nil && hit {
			return liked, nil
		}
	}
	liked, err := s.postLikes.IsLiked(ctx, ident.ID, postID)
	if err == nil && s.cache != nil {
		s.cache.Warm(ctx, ident.ID, postID, liked)
	}
	return liked, err
}

// PostLikeCount derives the count from the like rows, cache-aside.
func (s *LikeService) PostLikeCount(ctx context.Context, postID uint64) (int64, error) {
	if s.cache != nil {
		if count, hit, err := s.cache.Count(ctx, postID); err == nil && hit {
			return count, nil
		}
	}
	count, err := s.postLikes.Count(ctx, postID)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.SetCount(ctx, postID, count)
	}
	return count, nil
}

func (s *LikeService) CommentLikeCount(ctx context.Context, commentID uint64) (int64, error) {
	return s.commentLikes.Count(ctx, commentID)
}

func (s *LikeService) ReplyLikeCount(ctx context.Context, replyID uint64) (int64, error) {
	return s.replyLikes.Count(ctx, replyID)
}
