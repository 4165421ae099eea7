package database

import (
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/config"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
)

func Connect(cfg config.DBConfig) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	// Keeps pooled connections ahead of MySQL's wait_timeout.
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.ClubInfo{},
		&models.Player{},
		&models.Fixture{},
		&models.NewsItem{},
		&models.GalleryItem{},
		&models.CarouselItem{},
		&models.ContactMessage{},
		&models.Admin{},
	)
}
