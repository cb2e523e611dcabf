package mysql

import (
	"gorm.io/gorm"

	"hallohallo/internal/model"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Create(post).Error
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, id).Error
	return &post, err
}

func (r *PostRepository) ListByCommunity(communityID uint64, offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.
		Where("community_id = ?", communityID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// ListByCommunityCursor pages on (created_at, id): time first, id breaks ties.
// Zero lastCreatedAt means first page.
func (r *PostRepository) ListByCommunityCursor(communityID uint64, lastID uint64, lastCreatedAt int64, limit int) ([]model.Post, error) {
	var list []model.Post
	q := r.DB.Where("community_id = ?", communityID)
	if lastCreatedAt > 0 {
		q = q.Where("(created_at < FROM_UNIXTIME(?) OR (created_at = FROM_UNIXTIME(?) AND id < ?))",
			lastCreatedAt, lastCreatedAt, lastID)
	}
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) Search(query string, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("search_text LIKE ?", "%"+query+"%").
		Order("id desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *PostRepository) Update(id uint64, fields map[string]any) error {
	return r.DB.Model(&model.Post{}).Where("id = ?", id).Updates(fields).Error
}
