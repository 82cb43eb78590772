package model

import (
	"time"
)

type UserRole string

const (
	SuperAdmin UserRole = "superadmin"
	Admin      UserRole = "admin"
	EndUser    UserRole = "user"
)

type UserStatus string

const (
	UserActive    UserStatus = "active"
	UserSuspended UserStatus = "suspended"
)

// swagger:model User
type User struct {
	BaseModel
	Name      string     `gorm:"size:100;not null" json:"name"`
	Email     string     `gorm:"size:100;unique;not null" json:"email"`
	Password  string     `gorm:"size:100;not null" json:"-"`
	Role      UserRole   `gorm:"type:enum('superadmin','admin','user');default:'user'" json:"role"`
	Language  string     `gorm:"size:10;default:'en'" json:"language"`
	Status    UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`
	LastLogin time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time  `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
