package database

import (
	"fmt"
	"time"

	"studybuddy-backend/internal/database/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	Driver          string // postgres (default), mysql or sqlite
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrate     bool
}

// Models lists every table of the schema in dependency order
func Models() []interface{} {
	return []interface{}{
		&models.College{},
		&models.Major{},
		&models.User{},
		&models.Course{},
		&models.StudyGroup{},
		&models.GroupMember{},
		&models.JoinRequest{},
		&models.StudySession{},
		&models.Quiz{},
		&models.Question{},
		&models.Answer{},
		&models.UserQuizAttempt{},
		&models.FlashcardSet{},
		&models.Flashcard{},
		&models.Resource{},
		&models.Conversation{},
		&models.DirectMessage{},
		&models.MessageRequest{},
		&models.ChatMessage{},
	}
}

// Initialize opens a connection for the configured driver and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.Driver == "" {
		opts.Driver = "postgres"
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if opts.Driver == "sqlite" {
		// one long lived connection: keeps in-memory databases alive and serializes writers
		opts.MaxOpenConns = 1
		opts.MaxIdleConns = 1
		opts.ConnMaxLifetime = 0
		opts.ConnMaxIdleTime = 0
	}

	dialector, err := dialectorFor(opts.Driver, dsn)
	if err != nil {
		return nil, err
	}

	// Open DB
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(opts.LogLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", opts.Driver, err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.SkipMigrate {
		if err := db.AutoMigrate(Models()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	return db, nil
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported database driver %q", driver)
}
