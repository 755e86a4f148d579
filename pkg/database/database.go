package database

import (
	"fmt"
	"log"
	"sikshyamap_backend/internal/config"
	"sikshyamap_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.User{},
		&model.Concept{},
		&model.Checkpoint{},
		&model.ErrorPattern{},
		&model.Problem{},
		&model.Step{},
		&model.StepOption{},
		&model.StudentProgress{},
		&model.Resource{},
		&model.Simulation{},
		&model.LearningSession{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// Seed a starter concept catalogue on an empty database.
	var count int64
	db.Model(&model.Concept{}).Count(&count)
	if count == 0 {
		defaultConcepts := []model.Concept{
			{Name: "Fractions", Slug: "fractions", Description: "Fractions, equivalence and comparison", Order: 1},
			{Name: "Decimals", Slug: "decimals", Description: "Decimal notation and place value", Order: 2},
			{Name: "Percentages", Slug: "percentages", Description: "Percentages and proportional reasoning", Order: 3},
			{Name: "Linear Equations", Slug: "linear-equations", Description: "Solving single-variable linear equations", Order: 4},
		}
		for _, c := range defaultConcepts {
			db.Create(&c)
		}
	}

	return db, nil
}
