package main

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/rizkyfm/job-board-api/internal/config"
	"github.com/rizkyfm/job-board-api/internal/model"
	"github.com/rizkyfm/job-board-api/internal/seed"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Println("Could not load .env file")
	}

	dbConfig := config.LoadDBConfig()
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbConfig.Host,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Name,
		dbConfig.Port,
		dbConfig.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal(err)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`)
	if err := db.AutoMigrate(&model.Candidate{}, &model.Company{}, &model.Job{}, &model.Application{}); err != nil {
		logrus.Fatal("migration failed: ", err)
	}

	if err := seed.Run(db); err != nil {
		logrus.Fatal("seed failed: ", err)
	}
	logrus.Println("Seed complete")
}
