// File: /database/database.go
package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"sportconnect-api/models"
	"sportconnect-api/pkg/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Warn),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Message{},
		&models.Friendship{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

// addCustomIndexes mirrors the index set the query paths depend on: event
// listing (status, sport, date+time sort) and both directions of the
// friendship scan.
func addCustomIndexes(db *gorm.DB) error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_events_status_date_time ON events(status, date, time)",
		"CREATE INDEX IF NOT EXISTS idx_friendships_friend_status ON friendships(friend_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_friendships_user_status ON friendships(user_id, status)",
	}

	for _, stmt := range indexes {
		if err := db.Exec(stmt).Error; err != nil {
			logger.Warn("Could not create index", "statement", stmt, "error", err)
		}
	}

	return nil
}

// SeedData populates the database with demo users for development. It is a
// no-op once any user exists.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		logger.Debug("Database already has data, skipping seed")
		return nil
	}

	testUsers := []models.User{
		{
			ID:         "user-1",
			Name:       "John Doe",
			Email:      "john@example.com",
			Password:   "$2a$10$dummy",
			Age:        28,
			Location:   "Copenhagen",
			Sports:     models.StringSlice{"football", "running"},
			SkillLevel: models.SkillLevelIntermediate,
			Badges:     models.StringSlice{},
		},
		{
			ID:         "user-2",
			Name:       "Jane Smith",
			Email:      "jane@example.com",
			Password:   "$2a$10$dummy",
			Age:        25,
			Location:   "Aarhus",
			Sports:     models.StringSlice{"tennis", "fitness"},
			SkillLevel: models.SkillLevelBeginner,
			Badges:     models.StringSlice{},
		},
	}

	for _, user := range testUsers {
		if err := db.Create(&user).Error; err != nil {
			logger.Warn("Could not create test user", "email", user.Email, "error", err)
		}
	}

	logger.Info("Database seeded with test data")
	return nil
}
