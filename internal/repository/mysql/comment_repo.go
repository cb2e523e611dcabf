package mysql

import (
	"gorm.io/gorm"

	"hallohallo/internal/model"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(c *model.PostComment) error {
	return r.DB.Create(c).Error
}

func (r *CommentRepository) FindByID(id uint64) (*model.PostComment, error) {
	var c model.PostComment
	err := r.DB.First(&c, id).Error
	return &c, err
}

func (r *CommentRepository) ListByPost(postID uint64) ([]model.PostComment, error) {
	var list []model.PostComment
	err := r.DB.Where("post_id = ?", postID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *CommentRepository) UpdateContent(id uint64, content string) error {
	return r.DB.Model(&model.PostComment{}).Where("id = ?", id).
		Update("content", content).Error
}

type ReplyRepository struct {
	DB *gorm.DB
}

func (r *ReplyRepository) Create(reply *model.PostCommentReply) error {
	return r.DB.Create(reply).Error
}

func (r *ReplyRepository) FindByID(id uint64) (*model.PostCommentReply, error) {
	var reply model.PostCommentReply
	err := r.DB.First(&reply, id).Error
	return &reply, err
}

func (r *ReplyRepository) ListByComment(commentID uint64) ([]model.PostCommentReply, error) {
	var list []model.PostCommentReply
	err := r.DB.Where("comment_id = ?", commentID).Order("id asc").Find(&list).Error
	return list, err
}

func (r *ReplyRepository) UpdateContent(id uint64, content string) error {
	return r.DB.Model(&model.PostCommentReply{}).Where("id = ?", id).
		Update("content", content).Error
}
