package database

import (
	"fmt"
	"strconv"

	"studio_manager/config"
	"studio_manager/model"
	"studio_manager/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)

	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	utils.Logger.Info().Msg("connection opened to database")
	DB.AutoMigrate(
		&model.Account{},
		&model.Teacher{},
		&model.Member{},
		&model.PasswordResetToken{},
		&model.Item{},
		&model.ItemSchedule{},
		&model.Template{},
		&model.ClassSession{},
		&model.Product{},
		&model.QuotaPool{},
		&model.ProductItem{},
		&model.Membership{},
		&model.MembershipItemUsage{},
		&model.MembershipPoolUsage{},
		&model.Booking{},
	)
	utils.Logger.Info().Msg("database migrated")

	SeedData(DB)
}
