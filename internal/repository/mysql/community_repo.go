package mysql

import (
	"gorm.io/gorm"

	"hallohallo/internal/model"
)

type CommunityRepository struct {
	DB *gorm.DB
}

// Create inserts the community and makes the author its admin in one
// transaction.
func (r *CommunityRepository) Create(c *model.Community) (*model.Community, error) {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		mRepo := &CommunityMemberRepository{DB: tx}

		if err := tx.Create(c).Error; err != nil {
			return err
		}

		return mRepo.Join(&model.CommunityMember{
			CommunityID: c.ID,
			UserID:      c.AuthorID,
			Role:        model.RoleAdmin,
		})
	})
	return c, err
}

func (r *CommunityRepository) FindByID(id uint64) (*model.Community, error) {
	var community model.Community
	err := r.DB.First(&community, id).Error
	return &community, err
}

func (r *CommunityRepository) FindBySlug(slug string) (*model.Community, error) {
	var community model.Community
	err := r.DB.Where("slug = ?", slug).First(&community).Error
	return &community, err
}

func (r *CommunityRepository) List(offset, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Order("id desc").Offset(offset).Limit(limit).Find(&list).Error
	return list, err
}

// Search matches against the denormalized search text. Secret communities are
// never listed.
func (r *CommunityRepository) Search(query string, limit int) ([]model.Community, error) {
	var list []model.Community
	err := r.DB.Where("search_text LIKE ? AND privacy <> ?", "%"+query+"%", model.PrivacySecret).
		Order("id desc").Limit(limit).Find(&list).Error
	return list, err
}

func (r *CommunityRepository) Update(id uint64, fields map[string]any) error {
	return r.DB.Model(&model.Community{}).Where("id = ?", id).Updates(fields).Error
}
