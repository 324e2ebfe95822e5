package repositories

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/maxaizer/dreamjob/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DbContext struct {
	DB *gorm.DB
}

// NewDbContext opens the sqlite database. TranslateError is what lets the
// user repository tell a unique-index violation apart from any other fault.
func NewDbContext(connectionString string) (*DbContext, error) {
	db, err := gorm.Open(sqlite.Open(connectionString), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Error),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	err := c.DB.AutoMigrate(entities.User{})
	if err != nil {
		return fmt.Errorf("failed to migrate User entity: %w", err)
	}

	// AutoMigrate already builds the index from the struct tag; the explicit
	// statement keeps databases created by older builds on the constraint.
	if err = c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (email);").
		Error; err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}
