package database

import (
	"forohub/config"
	"forohub/models"
	"forohub/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB abre la conexión y migra el esquema del foro
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.Course{},
		&models.Topic{},
		&models.Reply{},
		&models.User{},
	); err != nil {
		log.L.Fatal("failed to migrate schema", zap.Error(err))
	}

	log.L.Info("connect database success")
	return db
}
