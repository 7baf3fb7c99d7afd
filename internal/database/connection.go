package database

import (
	"errors"
	"os"

	"github.com/thereayou/prochat/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect() (*Database, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	// TranslateError нужен, чтобы нарушение уникальности username
	// приходило как gorm.ErrDuplicatedKey, а не как текст драйвера
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&models.User{}, &models.Message{}, &models.Session{})
	if err != nil {
		return nil, err
	}

	return NewDatabase(db), nil
}

func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
