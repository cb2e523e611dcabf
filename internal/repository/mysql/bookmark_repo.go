package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hallohallo/internal/model"
)

type BookmarkRepository struct {
	DB *gorm.DB
}

// Toggle mirrors the like toggle: delete-first, otherwise unique-keyed insert.
func (r *BookmarkRepository) Toggle(ctx context.Context, userID, resourceID uint64, resourceType string) (bookmarked bool, err error) {
	res := r.DB.WithContext(ctx).
		Where("user_id = ? AND resource_id = ? AND resource_type = ?", userID, resourceID, resourceType).
		Delete(&model.Bookmark{})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return false, nil
	}
	err = r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "resource_id"}, {Name: "resource_type"}},
		DoNothing: true,
	}).Create(&model.Bookmark{
		UserID:       userID,
		ResourceID:   resourceID,
		ResourceType: resourceType,
	}).Error
	return true, err
}

func (r *BookmarkRepository) ListByUser(ctx context.Context, userID uint64) ([]model.Bookmark, error) {
	var list []model.Bookmark
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id desc").
		Find(&list).Error
	return list, err
}
