package model

// PermissionPreset is a named set of permissions granted to a role,
// maintained by the super admin. Permissions is a JSON array of
// permission keys, stored as text.
// swagger:model PermissionPreset
type PermissionPreset struct {
	BaseModel
	Role        UserRole `gorm:"type:varchar(20);uniqueIndex;not null" json:"role"`
	Name        string   `gorm:"size:100;not null" json:"name"`
	Permissions string   `gorm:"type:text;not null" json:"permissions"`
}

func (PermissionPreset) TableName() string {
	return "permission_presets"
}
