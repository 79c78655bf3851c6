package handler

import (
	"errors"
	"strings"

	"studio_manager/constants"
	"studio_manager/database"
	"studio_manager/helper"
	"studio_manager/model"
	"studio_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// GetItems lists class types with filters, pagination and related-row
// counts. Storefront callers only see active items.
func GetItems(c *fiber.Ctx) error {
	filterInput := new(model.FilterItemInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)

	condition := db.Model(&model.Item{})
	if !isAdmin && !isManager {
		condition = condition.Where("is_active = ?", true)
	} else if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.DayOfWeek != nil {
		condition = condition.Where(
			"id IN (SELECT item_id FROM item_schedules WHERE day_of_week = ? AND is_active = true)",
			*filterInput.DayOfWeek,
		)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var items model.Items
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Preload("Schedules").Order("name ASC").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	responses := make([]model.ItemResponse, 0, len(items))
	for _, item := range items {
		var resp model.ItemResponse
		resp.Item = item
		resp.ScheduleCount = int64(len(item.Schedules))
		db.Model(&model.ClassSession{}).Where("item_id = ?", item.ID).Count(&resp.SessionCount)
		db.Model(&model.ProductItem{}).Where("item_id = ?", item.ID).Count(&resp.ProductCount)
		responses = append(responses, resp)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"items":      responses,
		"totalCount": totalCount,
	})
}

// GetItemDetail returns one item with its schedules.
func GetItemDetail(c *fiber.Ctx) error {
	item := c.Locals("item").(model.Item)
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// CreateItem creates a class type together with its weekly schedule set.
// The whole aggregate is validated for overlaps before anything is saved.
func CreateItem(c *fiber.Ctx) error {
	input := c.Locals("createItemInput").(model.CreateItemInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB

	schedules := buildSchedules(input.Schedules)
	if err := helper.ValidateScheduleSet(schedules, input.Duration); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid schedule set", err)
	}

	var item model.Item
	if err := copier.Copy(&item, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	item.IsActive = true
	item.Schedules = schedules

	err := db.Transaction(func(tx *gorm.DB) error {
		item.Slug = helper.GenerateUniqueItemSlug(tx, item.Name)
		return tx.Create(&item).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create item", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

// UpdateItem patches item fields. A schedules payload replaces the weekly
// schedule set wholesale after an overlap check against itself.
func UpdateItem(c *fiber.Ctx) error {
	itemId := c.Locals("itemId").(uint)
	input := c.Locals("updateItemInput").(model.UpdateItemInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB

	var item model.Item
	if err := db.First(&item, itemId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Item not found", helper.ErrItemNotFound)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Duration != nil {
		updates["duration"] = *input.Duration
	}
	if input.Capacity != nil {
		updates["capacity"] = *input.Capacity
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if input.Color != nil {
		updates["color"] = *input.Color
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}

	duration := item.Duration
	if input.Duration != nil {
		duration = *input.Duration
	}

	var schedules []model.ItemSchedule
	if input.Schedules != nil {
		schedules = buildSchedules(input.Schedules)
		if err := helper.ValidateScheduleSet(schedules, duration); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid schedule set", err)
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if input.Name != nil && *input.Name != item.Name {
			updates["slug"] = helper.GenerateUniqueItemSlug(tx, *input.Name)
		}
		if len(updates) > 0 {
			if err := tx.Model(&item).Updates(updates).Error; err != nil {
				return err
			}
		}
		if input.Schedules != nil {
			if err := tx.Where("item_id = ?", item.ID).Delete(&model.ItemSchedule{}).Error; err != nil {
				return err
			}
			for i := range schedules {
				schedules[i].ItemId = item.ID
			}
			if len(schedules) > 0 {
				if err := tx.Create(&schedules).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update item", err)
	}

	if err := db.Preload("Schedules").First(&item, item.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// DeleteItems removes items by id. Items referenced by a product, or with
// sessions some non-cancelled booking still points at, are protected;
// deactivate them instead. Unbooked sessions go with the item.
func DeleteItems(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	for _, id := range input.IDs {
		var bookedCount, productCount int64
		db.Model(&model.Booking{}).
			Joins("JOIN class_sessions ON class_sessions.id = bookings.session_id").
			Where("class_sessions.item_id = ? AND bookings.status IN ?", id, helper.BookingStatusesBlockingDeletion).
			Count(&bookedCount)
		db.Model(&model.ProductItem{}).Where("item_id = ?", id).Count(&productCount)
		if bookedCount > 0 || productCount > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
				"Item has products or booked sessions and cannot be deleted", helper.ErrItemReferenced, "ids")
		}
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("session_id IN (SELECT id FROM class_sessions WHERE item_id IN ?)", input.IDs).
			Delete(&model.Booking{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id IN ?", input.IDs).Delete(&model.ClassSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("item_id IN ?", input.IDs).Delete(&model.ItemSchedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Item{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete items", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}

// UploadItemImage stores the uploaded image on Cloudinary and saves its
// URL on the item.
func UploadItemImage(c *fiber.Ctx) error {
	itemId := c.Locals("itemId").(uint)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}

	cld := helper.InitCloudinary()
	url, err := helper.UploadItemImage(cld, itemId, file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot upload image", err)
	}

	db := database.DB
	if err := db.Model(&model.Item{}).Where("id = ?", itemId).Update("image_url", url).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"imageUrl": url})
}

func buildSchedules(inputs []model.ScheduleInput) []model.ItemSchedule {
	schedules := make([]model.ItemSchedule, 0, len(inputs))
	for _, s := range inputs {
		active := true
		if s.IsActive != nil {
			active = *s.IsActive
		}
		schedules = append(schedules, model.ItemSchedule{
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			IsActive:  active,
		})
	}
	return schedules
}
