package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/config"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/database"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/models"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/routes"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database connection successfully established.")

	store, err := buildStore(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	if err := seedAdmin(db, cfg.Admin); err != nil {
		log.Fatalf("Failed to provision admin account: %v", err)
	}

	r := routes.SetupRouter(routes.Deps{
		DB:         db,
		Store:      store,
		Cache:      services.NewListCache(database.NewRedis(cfg.Redis), cfg.CacheTTL),
		Tokens:     utils.NewTokenManager(cfg.JWTSecret),
		AdminEmail: cfg.Admin.Email,
		UploadDir:  cfg.Storage.UploadDir,
	})

	log.Println("Starting server on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func buildStore(cfg config.StorageConfig) (storage.Uploader, error) {
	if cfg.Bucket == "" {
		log.Println("No S3 bucket configured, storing uploads locally.")
		return storage.NewLocalStore(cfg.UploadDir), nil
	}
	return storage.NewS3Store(context.Background(), cfg)
}

// seedAdmin creates the operator account from config on first start. The
// password is hashed by the model hook before it reaches the table.
func seedAdmin(db *gorm.DB, cfg config.AdminConfig) error {
	if cfg.Email == "" || cfg.Password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin provisioning.")
		return nil
	}

	var count int64
	if err := db.Model(&models.Admin{}).Where("email = ?", cfg.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Create(&models.Admin{Email: cfg.Email, Password: cfg.Password}).Error
}
