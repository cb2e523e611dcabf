package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"hallohallo/internal/model"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/mysql"
)

type CommentService struct {
	comments *mysql.CommentRepository
	replies  *mysql.ReplyRepository
	posts    *mysql.PostRepository
	cascade  *mysql.CascadeRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		comments: &mysql.CommentRepository{DB: db},
		replies:  &mysql.ReplyRepository{DB: db},
		posts:    &mysql.PostRepository{DB: db},
		cascade:  &mysql.CascadeRepository{DB: db},
	}
}

func (s *CommentService) AddComment(ctx context.Context, ident *Identity, postID uint64, content string) (*model.PostComment, error) {
	if err := Authenticated(ident); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.New("content required")
	}
	if _, err := s.posts.FindByID(postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound
		}
		return nil, err
	}
	comment := &model.PostComment{
		PostID:   postID,
		AuthorID: ident.ID,
		Content:  content,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, ident *Identity, id uint64, content string) error {
	comment, err := s.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	if err := Authorize(ident, comment.AuthorID); err != nil {
		return err
	}
	return s.comments.UpdateContent(id, content)
}

// DeleteComment cascades over the comment's replies and like rows. Already
// gone is a no-op.
func (s *CommentService) DeleteComment(ctx context.Context, ident *Identity, id uint64) error {
	if err := Authenticated(ident); err != nil {
		return err
	}
	comment, err := s.comments.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := Authorize(ident, comment.AuthorID); err != nil {
		return err
	}
	return s.cascade.DeleteCommentTree(ctx, ident.ID, comment)
}

func (s *CommentService) ListByPost(ctx context.Context, postID uint64) ([]model.PostComment, error) {
	return s.comments.ListByPost(postID)
}

func (s *CommentService) AddReply(ctx context.Context, ident *Identity, commentID uint64, content string) (*model.PostCommentReply, error) {
	if err := Authenticated(ident); err != nil {
		return nil, err
	}
	if content == "" {
		return nil, errors.New("content required")
	}
	if _, err := s.comments.FindByID(commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.ErrNotFound
		}
		return nil, err
	}
	reply := &model.PostCommentReply{
		CommentID: commentID,
		AuthorID:  ident.ID,
		Content:   content,
	}
	if err := s.replies.Create(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (s *CommentService) UpdateReply(ctx context.Context, ident *Identity, id uint64, content string) error {
	reply, err := s.replies.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.ErrNotFound
		}
		return err
	}
	if err := Authorize(ident, reply.AuthorID); err != nil {
		return err
	}
	return s.replies.UpdateContent(id, content)
}

func (s *CommentService) DeleteReply(ctx context.Context, ident *Identity, id uint64) error {
	if err := Authenticated(ident); err != nil {
		return err
	}
	reply, err := s.replies.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := Authorize(ident, reply.AuthorID); err != nil {
		return err
	}
	return s.cascade.DeleteReplyTree(ctx, ident.ID, reply)
}

func (s *CommentService) ListReplies(ctx context.Context, commentID uint64) ([]model.PostCommentReply, error) {
	return s.replies.ListByComment(commentID)
}
