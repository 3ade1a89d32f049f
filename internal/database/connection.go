package database

import (
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"agora/internal/models"
)

func Connect(dsn string) (*Database, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Room{},
		&models.Message{},
	)
	if err != nil {
		return nil, err
	}

	return &Database{db: db}, nil
}
