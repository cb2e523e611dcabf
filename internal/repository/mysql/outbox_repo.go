package mysql

import (
	"context"

	"gorm.io/gorm"

	"hallohallo/internal/model"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func (r *OutboxRepository) Insert(ctx context.Context, row *model.ContentOutbox) error {
	return r.DB.WithContext(ctx).Create(row).Error
}

// ListPending returns the oldest unsent events, at most batchSize.
func (r *OutboxRepository) ListPending(ctx context.Context, batchSize int) ([]model.ContentOutbox, error) {
	var list []model.ContentOutbox
	err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error
	return list, err
}

func (r *OutboxRepository) MarkSent(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ContentOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.ContentOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}
