package admin

import (
	"context"

	"github.com/cokeke26/fenats/internal/model"
	"gorm.io/gorm"
)

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) Create(ctx context.Context, db *gorm.DB, admin *model.Admin) error {
	return db.WithContext(ctx).Create(admin).Error
}

func (r *AdminRepository) FindByID(ctx context.Context, db *gorm.DB, id uint32) (*model.Admin, error) {
	var admin model.Admin
	err := db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Admin, error) {
	var admin model.Admin
	err := db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *AdminRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Admin{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AdminRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&model.Admin{}).Count(&count).Error
	return count, err
}
