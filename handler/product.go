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
	"gorm.io/gorm"
)

// GetProducts lists membership plans. Storefront callers only see active
// ones.
func GetProducts(c *fiber.Ctx) error {
	filterInput := new(model.FilterProductInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)

	condition := db.Model(&model.Product{})
	if !isAdmin && !isManager {
		condition = condition.Where("is_active = ?", true)
	} else if filterInput.Active != nil {
		condition = condition.Where("is_active = ?", *filterInput.Active)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.ItemId > 0 {
		condition = condition.Where("id IN (SELECT product_id FROM product_items WHERE item_id = ?)", filterInput.ItemId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var products model.Products
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.
		Preload("Items.Item").
		Preload("Items.QuotaPool").
		Preload("QuotaPools").
		Order("name ASC").
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"products":   products,
		"totalCount": totalCount,
	})
}

func GetProductDetail(c *fiber.Ctx) error {
	id := c.Locals("productId").(uint)

	db := database.DB
	var product model.Product
	if err := db.
		Preload("Items.Item").
		Preload("Items.QuotaPool").
		Preload("QuotaPools").
		First(&product, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// CreateProduct submits the whole product draft (basics, pools, items) in
// one transaction. Items reference pools positionally by key; real ids are
// resolved after the pools are inserted.
func CreateProduct(c *fiber.Ctx) error {
	input := c.Locals("createProductInput").(model.CreateProductInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	draft := helper.NewProductDraft(input.Name, input.Description, input.Price, input.DurationDays)
	for _, pool := range input.QuotaPools {
		if err := draft.AddQuotaPool(pool); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid quota pool", err, "quotaPools")
		}
	}
	for _, item := range input.Items {
		if err := draft.AddItem(item); err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid product item", err, "items")
		}
	}

	product, poolIndexes, err := draft.Build()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid product draft", err)
	}

	db := database.DB
	for _, it := range product.Items {
		var count int64
		db.Model(&model.Item{}).Where("id = ?", it.ItemId).Count(&count)
		if count == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Unknown item in product", helper.ErrItemNotFound, "items")
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		items := product.Items
		product.Items = nil
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ProductId = product.ID
			if poolIndexes[i] >= 0 {
				items[i].QuotaPoolId = utils.Ptr(product.QuotaPools[poolIndexes[i]].ID)
			}
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}
		product.Items = items
		return nil
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot create product", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

// UpdateProduct patches plan basics. Quota configuration is frozen once
// memberships draw from it; only pools without usage can still change.
func UpdateProduct(c *fiber.Ctx) error {
	id := c.Locals("productId").(uint)
	input := c.Locals("updateProductInput").(model.UpdateProductInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var product model.Product
	if err := db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Product not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.DurationDays != nil {
		updates["duration_days"] = *input.DurationDays
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}

	if len(updates) > 0 {
		if err := db.Model(&product).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update product", err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

// UpdateQuotaPool edits a pool's name or total. The total is frozen as
// soon as any membership draws from the pool.
func UpdateQuotaPool(c *fiber.Ctx) error {
	id := c.Locals("quotaPoolId").(uint)
	input := c.Locals("updateQuotaPoolInput").(model.UpdateQuotaPoolInput)

	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var pool model.QuotaPool
	if err := db.First(&pool, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Quota pool not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.TotalQuota != nil {
		if helper.QuotaPoolHasUsage(db, pool.ID) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
				"Pool total is frozen while memberships draw from it", helper.ErrQuotaPoolInUse, "totalQuota")
		}
		updates["total_quota"] = *input.TotalQuota
	}

	if len(updates) > 0 {
		if err := db.Model(&pool).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot update quota pool", err)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pool)
}

// DeleteQuotaPool removes a pool no membership draws from yet.
func DeleteQuotaPool(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	if helper.QuotaPoolHasUsage(db, id) {
		return utils.ErrorResponse(c, fiber.StatusConflict,
			"Pool is in use and cannot be deleted", helper.ErrQuotaPoolInUse)
	}

	var itemCount int64
	db.Model(&model.ProductItem{}).Where("quota_pool_id = ?", id).Count(&itemCount)
	if itemCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict,
			"Pool is referenced by product items", helper.ErrQuotaPoolInUse)
	}

	if err := db.Delete(&model.QuotaPool{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete quota pool", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

// DeleteProducts removes plans no membership was ever sold from.
func DeleteProducts(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("insufficient role"))
	}

	db := database.DB
	var membershipCount int64
	db.Model(&model.Membership{}).Where("product_id IN ?", input.IDs).Count(&membershipCount)
	if membershipCount > 0 {
		return utils.ErrorResponseHaveKey(c, fiber.StatusConflict,
			"Products with sold memberships cannot be deleted", nil, "ids")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id IN ?", input.IDs).Delete(&model.ProductItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("product_id IN ?", input.IDs).Delete(&model.QuotaPool{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Product{}, input.IDs).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Cannot delete products", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
