package helper

import (
	"errors"
	"time"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/go-co-op/gocron/v2"
	"gorm.io/gorm"
)

var membershipScheduler gocron.Scheduler

// SellMembership creates a membership for a product and initializes its
// usage counters from the product configuration. Counters are snapshots:
// later pool edits never touch already-sold memberships.
func SellMembership(db *gorm.DB, memberId, productId uint, startDate string) (*model.Membership, error) {
	var membership model.Membership

	err := db.Transaction(func(tx *gorm.DB) error {
		var product model.Product
		if err := tx.Preload("Items").Preload("QuotaPools").First(&product, productId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("product not found")
			}
			return err
		}

		start := time.Now()
		if startDate != "" {
			parsed, err := time.Parse("2006-01-02", startDate)
			if err != nil {
				return err
			}
			start = parsed
		}

		membership = model.Membership{
			MemberId:   memberId,
			ProductId:  product.ID,
			Status:     model.MembershipActive,
			StartDate:  utils.CustomDate{Time: start},
			ExpiryDate: utils.CustomDate{Time: start.AddDate(0, 0, product.DurationDays)},
		}
		if err := tx.Create(&membership).Error; err != nil {
			return err
		}

		for _, pi := range product.Items {
			if pi.QuotaType != constants.QUOTA_INDIVIDUAL || pi.QuotaValue == nil {
				continue
			}
			usage := model.MembershipItemUsage{
				MembershipId:  membership.ID,
				ProductItemId: pi.ID,
				Remaining:     *pi.QuotaValue,
			}
			if err := tx.Create(&usage).Error; err != nil {
				return err
			}
		}
		for _, pool := range product.QuotaPools {
			usage := model.MembershipPoolUsage{
				MembershipId: membership.ID,
				QuotaPoolId:  pool.ID,
				Remaining:    pool.TotalQuota,
			}
			if err := tx.Create(&usage).Error; err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// QuotaPoolHasUsage reports whether any membership draws from the pool,
// which freezes its total and blocks deletion.
func QuotaPoolHasUsage(db *gorm.DB, poolId uint) bool {
	var count int64
	db.Model(&model.MembershipPoolUsage{}).Where("quota_pool_id = ?", poolId).Count(&count)
	return count > 0
}

func expireMemberships() {
	today := time.Now().Format("2006-01-02")
	result := database.DB.Model(&model.Membership{}).
		Where("status = ? AND expiry_date < ?", model.MembershipActive, today).
		Update("status", model.MembershipExpired)

	if result.Error != nil {
		utils.Logger.Error().Err(result.Error).Msg("membership expiry sweep failed")
		return
	}
	if result.RowsAffected > 0 {
		utils.Logger.Info().Int64("expired", result.RowsAffected).Msg("memberships expired")
	}
}

// StartMembershipScheduler runs the expiry sweep daily shortly after
// midnight.
func StartMembershipScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("init membership scheduler")
	}

	membershipScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(expireMemberships),
	)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("schedule membership expiry job")
	}

	s.Start()
	utils.Logger.Info().Msg("membership expiry scheduler started (daily 00:05)")
}

func StopMembershipScheduler() {
	if membershipScheduler != nil {
		_ = membershipScheduler.Shutdown()
	}
}
