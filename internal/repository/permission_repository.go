package repository

import (
	"altacoach_backend/internal/model"

	"gorm.io/gorm"
)

type PermissionRepository struct {
	DB *gorm.DB
}

func NewPermissionRepository(db *gorm.DB) *PermissionRepository {
	return &PermissionRepository{DB: db}
}

func (r *PermissionRepository) FindByRole(role model.UserRole) (*model.PermissionPreset, error) {
	var preset model.PermissionPreset
	err := r.DB.Where("role = ?", role).First(&preset).Error
	if err != nil {
		return nil, err
	}
	return &preset, nil
}

func (r *PermissionRepository) List() ([]model.PermissionPreset, error) {
	var presets []model.PermissionPreset
	err := r.DB.Order("role asc").Find(&presets).Error
	return presets, err
}

func (r *PermissionRepository) Upsert(preset *model.PermissionPreset) error {
	var existing model.PermissionPreset
	err := r.DB.Where("role = ?", preset.Role).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.DB.Create(preset).Error
	} else if err != nil {
		return err
	}
	existing.Name = preset.Name
	existing.Permissions = preset.Permissions
	return r.DB.Save(&existing).Error
}

func (r *PermissionRepository) Delete(role model.UserRole) error {
	return r.DB.Where("role = ?", role).Delete(&model.PermissionPreset{}).Error
}
