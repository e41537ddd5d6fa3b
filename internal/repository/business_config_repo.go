package repository

import (
	"context"

	"solarquote/internal/model"

	"gorm.io/gorm"
)

type BusinessConfigRepository interface {
	FindByKey(ctx context.Context, key string) (*model.BusinessConfig, error)
	FindByKeyForUpdate(ctx context.Context, key string) (*model.BusinessConfig, error)
	Save(ctx context.Context, cfg *model.BusinessConfig) error
}

type businessConfigRepository struct {
	db *gorm.DB
}

func NewBusinessConfigRepository(db *gorm.DB) BusinessConfigRepository {
	return &businessConfigRepository{db: db}
}

func (r *businessConfigRepository) FindByKey(ctx context.Context, key string) (*model.BusinessConfig, error) {
	var cfg model.BusinessConfig
	if err := GetDB(ctx, r.db).First(&cfg, "config_key = ?", key).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (r *businessConfigRepository) FindByKeyForUpdate(ctx context.Context, key string) (*model.BusinessConfig, error) {
	var cfg model.BusinessConfig
	if err := forUpdate(GetDB(ctx, r.db)).First(&cfg, "config_key = ?", key).Error; err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save upserts by primary key.
func (r *businessConfigRepository) Save(ctx context.Context, cfg *model.BusinessConfig) error {
	return GetDB(ctx, r.db).Save(cfg).Error
}
