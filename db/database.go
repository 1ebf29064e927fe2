package db

import (
	"fmt"
	"log"

	"github.com/Krasmol/platform-for-freelancers/config"
	"github.com/Krasmol/platform-for-freelancers/models"
	"github.com/sethvargo/go-password/password"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums(gormDB *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('client', 'freelancer', 'moderator'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE project_status AS ENUM ('open', 'in_progress', 'completed', 'cancelled', 'hidden'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE response_status AS ENUM ('pending', 'accepted', 'rejected'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE ticket_status AS ENUM ('open', 'in_progress', 'closed'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := gormDB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	if err := SeedModerator(DB); err != nil {
		log.Fatal("Failed to seed moderator:", err)
	}

	log.Println("Database connected and migrated")
}

func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}

// Migrate creates the enum types and then the tables that use them.
func Migrate(gormDB *gorm.DB) error {
	createEnums(gormDB)

	return gormDB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Project{},
		&models.ProjectResponse{},
		&models.Favorite{},
		&models.Message{},
		&models.Notification{},
		&models.SupportTicket{},
		&models.TicketMessage{},
		&models.Review{},
	)
}

// SeedModerator creates the platform moderator on first boot. When no
// password is configured one is generated and printed once.
func SeedModerator(gormDB *gorm.DB) error {
	var count int64
	if err := gormDB.Model(&models.User{}).Where("role = ?", models.UserRoleModerator).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	pass := config.ModeratorPassword
	generated := false
	if pass == "" {
		var err error
		pass, err = password.Generate(16, 4, 0, false, false)
		if err != nil {
			return err
		}
		generated = true
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	moderator := models.User{
		Username: "moderator",
		Email:    config.ModeratorEmail,
		Password: string(hashed),
		Role:     models.UserRoleModerator,
		IsActive: true,
	}
	if err := gormDB.Create(&moderator).Error; err != nil {
		return err
	}

	if generated {
		log.Printf("Seeded moderator %s with password %s", moderator.Email, pass)
	} else {
		log.Printf("Seeded moderator %s", moderator.Email)
	}
	return nil
}
