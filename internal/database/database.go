package database

import (
	"log"

	"github.com/glebarez/sqlite"
	"github.com/staffdesk/company-platform/internal/config"
	"github.com/staffdesk/company-platform/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the configured database and migrates the schema. The
// returned handle is passed explicitly into every service; no package
// global holds the session.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DatabaseType {
	case "postgres":
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connected successfully")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.Programmer{},
		&models.ProgrammerLanguage{},
		&models.Leader{},
		&models.Team{},
		&models.TeamMember{},
		&models.Project{},
		&models.ManagementProject{},
		&models.MultimediaProject{},
	)
}
