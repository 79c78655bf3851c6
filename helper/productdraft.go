package helper

import (
	"errors"
	"fmt"

	"studio_manager/constants"
	"studio_manager/model"
)

// ProductDraft accumulates a product aggregate (basics, quota pools,
// product items) across an explicit multi-step workflow before one atomic
// submit. Pools are addressed by caller-chosen keys until persistence
// assigns ids.
type ProductDraft struct {
	Name         string
	Description  string
	Price        float64
	DurationDays int

	pools    []model.QuotaPoolDraftInput
	poolKeys map[string]int
	items    []model.ProductItemDraftInput
}

func NewProductDraft(name, description string, price float64, durationDays int) *ProductDraft {
	return &ProductDraft{
		Name:         name,
		Description:  description,
		Price:        price,
		DurationDays: durationDays,
		poolKeys:     map[string]int{},
	}
}

func (d *ProductDraft) AddQuotaPool(pool model.QuotaPoolDraftInput) error {
	if _, exists := d.poolKeys[pool.Key]; exists {
		return fmt.Errorf("duplicate quota pool key %q", pool.Key)
	}
	if pool.TotalQuota < 1 {
		return fmt.Errorf("quota pool %q must have a positive total", pool.Key)
	}
	d.poolKeys[pool.Key] = len(d.pools)
	d.pools = append(d.pools, pool)
	return nil
}

func (d *ProductDraft) AddItem(item model.ProductItemDraftInput) error {
	switch item.QuotaType {
	case constants.QUOTA_INDIVIDUAL:
		if item.QuotaValue == nil || *item.QuotaValue < 1 {
			return errors.New("INDIVIDUAL quota requires a positive quotaValue")
		}
	case constants.QUOTA_SHARED:
		if item.PoolKey == "" {
			return errors.New("SHARED quota requires a poolKey")
		}
		if _, exists := d.poolKeys[item.PoolKey]; !exists {
			return fmt.Errorf("poolKey %q does not reference a pool of this product", item.PoolKey)
		}
	case constants.QUOTA_FREE:
		// no quota config
	default:
		return fmt.Errorf("unknown quota type %q", item.QuotaType)
	}

	for _, existing := range d.items {
		if existing.ItemId == item.ItemId {
			return fmt.Errorf("item %d is already part of this product", item.ItemId)
		}
	}
	d.items = append(d.items, item)
	return nil
}

// Build validates the accumulated draft and returns the aggregate ready
// for a single transactional insert. Pool back-references stay positional;
// the persistence step resolves them to real ids after the pools are
// created.
func (d *ProductDraft) Build() (model.Product, []int, error) {
	if len(d.items) == 0 {
		return model.Product{}, nil, errors.New("a product needs at least one item")
	}

	product := model.Product{
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		DurationDays: d.DurationDays,
		IsActive:     true,
	}
	for _, p := range d.pools {
		product.QuotaPools = append(product.QuotaPools, model.QuotaPool{
			Name:       p.Name,
			TotalQuota: p.TotalQuota,
		})
	}

	poolIndexes := make([]int, len(d.items))
	for i, it := range d.items {
		pi := model.ProductItem{
			ItemId:     it.ItemId,
			QuotaType:  it.QuotaType,
			QuotaValue: it.QuotaValue,
		}
		poolIndexes[i] = -1
		if it.QuotaType == constants.QUOTA_SHARED {
			poolIndexes[i] = d.poolKeys[it.PoolKey]
		}
		product.Items = append(product.Items, pi)
	}
	return product, poolIndexes, nil
}
