package db

import (
	"log"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"Inspection_Tracker_Backend/config"
	"Inspection_Tracker_Backend/models"
)

var instance *gorm.DB

// Connect 打开数据库并迁移。默认 sqlite 单文件（和现场部署一致），
// DB_DRIVER=postgres 时走 Postgres。
func Connect() (*gorm.DB, error) {
	if instance != nil {
		return instance, nil
	}

	var dial gorm.Dialector
	switch config.C.DBDriver {
	case "postgres":
		dial = postgres.Open(config.GetDSN())
	default:
		dial = sqlite.Open(config.C.SQLitePath)
	}

	conn, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// 连接池设置
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetConnMaxLifetime(60 * time.Minute)

	if err := Migrate(conn); err != nil {
		return nil, err
	}

	instance = conn
	return instance, nil
}

func Migrate(conn *gorm.DB) error {
	return conn.AutoMigrate(&models.InspectionRecord{})
}

func GetDB() *gorm.DB {
	if instance == nil {
		log.Fatal("DB not initialized. Call db.Connect() first.")
	}
	return instance
}
