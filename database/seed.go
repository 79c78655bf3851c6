package database

import (
	"studio_manager/constants"
	"studio_manager/model"
	"studio_manager/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	hashPassword := string(bytes)
	if err != nil {
		hashPassword = "changeme123"
	}
	accounts := []model.Account{
		{Username: "administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			utils.Logger.Error().Err(err).Str("username", account.Username).Msg("failed to seed account")
		}
	}

	items := []model.Item{
		{
			Name: "Yoga", Slug: "yoga", Duration: 60, Capacity: 10, IsActive: true,
			Color: "#3BA776", Description: "All-levels vinyasa flow.",
			Schedules: []model.ItemSchedule{
				{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", IsActive: true},
				{DayOfWeek: 3, StartTime: "18:00", IsActive: true},
			},
		},
		{
			Name: "Pilates", Slug: "pilates", Duration: 50, Capacity: 8, IsActive: true,
			Color: "#5A6ACF", Description: "Mat pilates with props.",
			Schedules: []model.ItemSchedule{
				{DayOfWeek: 2, StartTime: "07:30", IsActive: true},
			},
		},
	}
	for _, item := range items {
		if err := db.Where(model.Item{Slug: item.Slug}).FirstOrCreate(&item).Error; err != nil {
			utils.Logger.Error().Err(err).Str("item", item.Name).Msg("failed to seed item")
		}
	}
}
