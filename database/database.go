package database

import (
	"log"

	"stash-api/internal/domain/options"
	"stash-api/internal/domain/plans"
	"stash-api/internal/domain/subscriptions"
	"stash-api/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects and migrates, returning the handle so callers construct
// repositories with it instead of reaching for a process-wide global.
// TranslateError turns unique-constraint violations into gorm.ErrDuplicatedKey,
// which handlers map to conflict responses.
func InitDB(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&plans.Plan{},
		&options.Option{},
		&subscriptions.Subscription{},
		&subscriptions.SubscriptionOption{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	log.Println("Connected and migrated successfully")
	return db
}
