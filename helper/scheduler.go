package helper

import (
	"time"

	"studio_manager/database"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/robfig/cron/v3"
)

var sessionSweeper *cron.Cron

// StartSessionScheduler marks finished sessions COMPLETED every 5 minutes.
func StartSessionScheduler() {
	sessionSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sessionSweeper.AddFunc("*/5 * * * *", completeFinishedSessions)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("init session sweeper")
		return
	}

	sessionSweeper.Start()
	utils.Logger.Info().Msg("session status sweeper started (every 5 minutes)")
}

func completeFinishedSessions() {
	now := time.Now()
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	result := database.DB.Model(&model.ClassSession{}).
		Where("status = ? AND (date < ? OR (date = ? AND end_time != '' AND end_time < ?))",
			model.SessionScheduled, today, today, clock).
		Update("status", model.SessionCompleted)

	if result.Error != nil {
		utils.Logger.Error().Err(result.Error).Msg("session sweep failed")
		return
	}
	if result.RowsAffected > 0 {
		utils.Logger.Info().Int64("completed", result.RowsAffected).Msg("sessions marked completed")
	}
}

func StopSessionScheduler() {
	if sessionSweeper != nil {
		sessionSweeper.Stop()
	}
}
