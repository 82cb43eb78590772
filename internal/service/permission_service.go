package service

import (
	"encoding/json"
	"fmt"

	"altacoach_backend/internal/model"
	"altacoach_backend/internal/repository"
)

type PermissionService struct {
	PermissionRepo *repository.PermissionRepository
}

func NewPermissionService(permissionRepo *repository.PermissionRepository) *PermissionService {
	return &PermissionService{PermissionRepo: permissionRepo}
}

func (s *PermissionService) GetPreset(role model.UserRole) (*model.PermissionPreset, error) {
	return s.PermissionRepo.FindByRole(role)
}

func (s *PermissionService) ListPresets() ([]model.PermissionPreset, error) {
	return s.PermissionRepo.List()
}

func (s *PermissionService) SavePreset(preset *model.PermissionPreset) error {
	if preset.Role == "" {
		return fmt.Errorf("role is required")
	}
	// Permissions must be a JSON array of permission keys.
	var keys []string
	if err := json.Unmarshal([]byte(preset.Permissions), &keys); err != nil {
		return fmt.Errorf("permissions must be a JSON array: %w", err)
	}
	return s.PermissionRepo.Upsert(preset)
}

func (s *PermissionService) DeletePreset(role model.UserRole) error {
	return s.PermissionRepo.Delete(role)
}
