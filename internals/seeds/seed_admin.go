package seeds

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizengine_backend/internals/configs"
	"quizengine_backend/internals/constants"
	"quizengine_backend/internals/features/users/model"
)

// SeedAdmin makes sure an administrator account exists. The admin role is
// never handed out through public registration, so this is the only supported
// way to create one. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD; when
// they are unset the seed is a no-op.
func SeedAdmin(db *gorm.DB) {
	email := configs.GetEnv("ADMIN_EMAIL")
	password := configs.GetEnv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("[INFO] ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing model.UserModel
	err := db.Where("user_email = ?", email).First(&existing).Error
	switch {
	case err == nil:
		if existing.Role != constants.RoleAdmin {
			if err := db.Model(&existing).Update("user_role", constants.RoleAdmin).Error; err != nil {
				log.Fatalf("❌ Failed to promote admin: %v", err)
			}
			log.Printf("✅ Promoted %s to admin.", email)
		}
		return
	case !errors.Is(err, gorm.ErrRecordNotFound):
		log.Fatalf("❌ Admin seed lookup failed: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash admin password: %v", err)
	}
	admin := model.UserModel{
		Email:    email,
		Password: string(hash),
		Role:     constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("❌ Failed to seed admin: %v", err)
	}
	log.Printf("✅ Seeded admin account %s.", email)
}
