package model

type Account struct {
	DTO
	Username     string `gorm:"uniqueIndex;not null" validate:"required,min=3,max=50" json:"username"`
	Password     string `gorm:"not null" validate:"required,min=6,max=72" json:"-"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Active       bool   `gorm:"not null;default:true" json:"active"`
	Role         string `gorm:"size:20;not null" json:"role"`
}

type Accounts []Account

type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateAccountInput struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=ADMIN MANAGER"`
}

type ActiveAccountInput struct {
	Active bool `json:"active"`
}

type FilterAccount struct {
	Pagination
	SearchKey string  `query:"searchKey"`
	Active    *bool   `query:"active"`
	Role      *string `query:"role"`
}
