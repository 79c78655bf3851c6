package model

import "studio_manager/utils"

const (
	MembershipActive    = "ACTIVE"
	MembershipFreezed   = "FREEZED"
	MembershipExpired   = "EXPIRED"
	MembershipSuspended = "SUSPENDED"
)

// Membership is a member's purchased instance of a Product, carrying its
// own usage counters initialized from the product configuration at sale
// time so pool edits never affect already-sold memberships.
type Membership struct {
	DTO
	MemberId   uint             `gorm:"not null;index" json:"memberId"`
	ProductId  uint             `gorm:"not null;index" json:"productId"`
	Status     string           `gorm:"size:12;not null;default:ACTIVE" json:"status"`
	StartDate  utils.CustomDate `gorm:"type:date;not null" json:"startDate"`
	ExpiryDate utils.CustomDate `gorm:"type:date;not null" json:"expiryDate"`

	Member  Member  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:MemberId" json:"member"`
	Product Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;foreignKey:ProductId" json:"product"`

	ItemUsages []MembershipItemUsage `gorm:"foreignKey:MembershipId;constraint:OnDelete:CASCADE" json:"itemUsages"`
	PoolUsages []MembershipPoolUsage `gorm:"foreignKey:MembershipId;constraint:OnDelete:CASCADE" json:"poolUsages"`
}

type Memberships []Membership

// MembershipItemUsage is the remaining INDIVIDUAL quota for one product
// item under one membership.
type MembershipItemUsage struct {
	DTO
	MembershipId  uint `gorm:"not null;index" json:"membershipId"`
	ProductItemId uint `gorm:"not null;index" json:"productItemId"`
	Remaining     int  `gorm:"not null" json:"remaining"`

	ProductItem ProductItem `gorm:"foreignKey:ProductItemId" json:"productItem"`
}

// MembershipPoolUsage is the remaining SHARED balance for one quota pool
// under one membership.
type MembershipPoolUsage struct {
	DTO
	MembershipId uint `gorm:"not null;index" json:"membershipId"`
	QuotaPoolId  uint `gorm:"not null;index" json:"quotaPoolId"`
	Remaining    int  `gorm:"not null" json:"remaining"`

	QuotaPool QuotaPool `gorm:"foreignKey:QuotaPoolId" json:"quotaPool"`
}

type SellMembershipInput struct {
	MemberId  uint   `json:"memberId" validate:"required"`
	ProductId uint   `json:"productId" validate:"required"`
	StartDate string `json:"startDate"` // YYYY-MM-DD, defaults to today
}

type UpdateMembershipStatusInput struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE FREEZED EXPIRED SUSPENDED"`
}

type FilterMembershipInput struct {
	Pagination
	MemberId  uint   `query:"memberId" validate:"omitempty,gt=0"`
	ProductId uint   `query:"productId" validate:"omitempty,gt=0"`
	Status    string `query:"status" validate:"omitempty,oneof=ACTIVE FREEZED EXPIRED SUSPENDED"`
}
