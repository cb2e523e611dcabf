package mysql

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hallohallo/internal/model"
)

type CommunityMemberRepository struct {
	DB *gorm.DB
}

// Join is idempotent: an existing (community_id, user_id) row is left alone.
func (r *CommunityMemberRepository) Join(member *model.CommunityMember) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "community_id"}, {Name: "user_id"}},
		DoNothing: true,
	}).Create(member).Error
}

func (r *CommunityMemberRepository) Leave(communityID, userID uint64) error {
	return r.DB.Where("community_id = ? AND user_id = ?", communityID, userID).
		Delete(&model.CommunityMember{}).Error
}

func (r *CommunityMemberRepository) IsMember(communityID, userID uint64) (bool, error) {
	var count int64
	err := r.DB.Model(&model.CommunityMember{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Count(&count).Error
	return count > 0, err
}

// RoleOf returns the member's role, or "" when not a member.
func (r *CommunityMemberRepository) RoleOf(communityID, userID uint64) (string, error) {
	var member model.CommunityMember
	err := r.DB.Where("community_id = ? AND user_id = ?", communityID, userID).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return member.Role, nil
}

func (r *CommunityMemberRepository) ListByCommunity(communityID uint64) ([]model.CommunityMember, error) {
	var list []model.CommunityMember
	err := r.DB.Where("community_id = ?", communityID).Find(&list).Error
	return list, err
}
