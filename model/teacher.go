package model

type Teacher struct {
	DTO
	FirstName   string `gorm:"not null" validate:"required" json:"firstname"`
	LastName    string `gorm:"not null" validate:"required" json:"lastname"`
	Email       string `gorm:"uniqueIndex" validate:"omitempty,email" json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Bio         string `gorm:"type:text" json:"bio"`
	AvatarUrl   string `json:"avatarUrl"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

type Teachers []Teacher

type CreateTeacherInput struct {
	FirstName   string `json:"firstname" validate:"required,min=1"`
	LastName    string `json:"lastname" validate:"required,min=1"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber"`
	Bio         string `json:"bio"`
}

type UpdateTeacherInput struct {
	FirstName   *string `json:"firstname" validate:"omitempty,min=1"`
	LastName    *string `json:"lastname" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	PhoneNumber *string `json:"phoneNumber"`
	Bio         *string `json:"bio"`
	IsActive    *bool   `json:"isActive"`
}

type FilterTeacher struct {
	Pagination
	SearchKey string `query:"searchKey"`
	Active    *bool  `query:"active"`
}
