package database

import (
	"log"
	"os"
	"time"

	"chatline/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the relationship repository relies on to
	// detect a racing insert for the same pair.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	// Run migrations
	err = DB.AutoMigrate(&models.User{}, &models.Relationship{}, &models.Message{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// AutoMigrate cannot express an expression index, so the unordered-pair
	// uniqueness constraint on relationships is created directly. LEAST and
	// GREATEST normalize the pair regardless of which side initiated the
	// current status.
	err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_relationships_pair
		ON relationships (LEAST(sender_id, recipient_id), GREATEST(sender_id, recipient_id))`).Error
	if err != nil {
		log.Fatalf("Failed to create relationship pair index: %v", err)
	}

	log.Println("Database migrated successfully.")
}
