package model

// Product is a purchasable membership plan bundling access to items.
type Product struct {
	DTO
	Name         string  `gorm:"size:100;not null" json:"name" validate:"required,min=2,max=100"`
	Description  string  `gorm:"type:text" json:"description"`
	Price        float64 `gorm:"not null" json:"price" validate:"min=0"`
	DurationDays int     `gorm:"not null;default:30" json:"durationDays" validate:"required,min=1"`
	IsActive     bool    `gorm:"not null;default:true" json:"isActive"`

	Items      []ProductItem `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE" json:"items"`
	QuotaPools []QuotaPool   `gorm:"foreignKey:ProductId;constraint:OnDelete:CASCADE" json:"quotaPools"`
}

type Products []Product

// QuotaPool is a named shared balance consumed across all product items
// linked to it. Its total cannot change once memberships draw from it.
type QuotaPool struct {
	DTO
	ProductId  uint   `gorm:"not null;index" json:"productId"`
	Name       string `gorm:"size:100;not null" json:"name" validate:"required"`
	TotalQuota int    `gorm:"not null" json:"totalQuota" validate:"required,min=1"`
}

// ProductItem links a product to an item with the quota rule that governs
// bookings of that item under the product.
type ProductItem struct {
	DTO
	ProductId   uint   `gorm:"not null;index" json:"productId"`
	ItemId      uint   `gorm:"not null;index" json:"itemId"`
	QuotaType   string `gorm:"size:12;not null" json:"quotaType" validate:"required,oneof=INDIVIDUAL SHARED FREE"`
	QuotaValue  *int   `json:"quotaValue" validate:"omitempty,min=1"`
	QuotaPoolId *uint  `json:"quotaPoolId"`

	Item      Item       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ItemId" json:"item"`
	QuotaPool *QuotaPool `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:QuotaPoolId" json:"quotaPool,omitempty"`
}

// Draft inputs for the multi-step product builder. Pools are referenced by
// their position key so items can point at pools that do not have ids yet.
type QuotaPoolDraftInput struct {
	Key        string `json:"key" validate:"required"`
	Name       string `json:"name" validate:"required"`
	TotalQuota int    `json:"totalQuota" validate:"required,min=1"`
}

type ProductItemDraftInput struct {
	ItemId     uint   `json:"itemId" validate:"required"`
	QuotaType  string `json:"quotaType" validate:"required,oneof=INDIVIDUAL SHARED FREE"`
	QuotaValue *int   `json:"quotaValue" validate:"omitempty,min=1"`
	PoolKey    string `json:"poolKey"`
}

type CreateProductInput struct {
	Name         string                  `json:"name" validate:"required,min=2,max=100"`
	Description  string                  `json:"description"`
	Price        float64                 `json:"price" validate:"min=0"`
	DurationDays int                     `json:"durationDays" validate:"required,min=1"`
	QuotaPools   []QuotaPoolDraftInput   `json:"quotaPools" validate:"omitempty,dive"`
	Items        []ProductItemDraftInput `json:"items" validate:"required,min=1,dive"`
}

type UpdateProductInput struct {
	Name         *string  `json:"name" validate:"omitempty,min=2,max=100"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" validate:"omitempty,min=0"`
	DurationDays *int     `json:"durationDays" validate:"omitempty,min=1"`
	IsActive     *bool    `json:"isActive"`
}

type UpdateQuotaPoolInput struct {
	Name       *string `json:"name"`
	TotalQuota *int    `json:"totalQuota" validate:"omitempty,min=1"`
}

type FilterProductInput struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Active    *bool  `query:"active"`
	ItemId    uint   `query:"itemId" validate:"omitempty,gt=0"`
}
