package database

import (
	"fmt"
	"log"

	"altacoach_backend/internal/config"
	"altacoach_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Business{},
		&model.BusinessUser{},
		&model.Document{},
		&model.BusinessDocument{},
		&model.Suggestion{},
		&model.PermissionPreset{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Default permission presets, inserted once on a fresh database.
	var count int64
	db.Model(&model.PermissionPreset{}).Count(&count)
	if count == 0 {
		defaults := []model.PermissionPreset{
			{
				Role:        model.SuperAdmin,
				Name:        "Platform administration",
				Permissions: `["businesses:*","users:*","documents:*","permissions:*","dashboard:read"]`,
			},
			{
				Role:        model.Admin,
				Name:        "Tenant administration",
				Permissions: `["businesses:read","users:*","documents:*","dashboard:read"]`,
			},
			{
				Role:        model.EndUser,
				Name:        "Business user",
				Permissions: `["messages:write","suggestions:*","documents:read"]`,
			},
		}
		for _, p := range defaults {
			db.Create(&p)
		}
	}

	return db, nil
}
