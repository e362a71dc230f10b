package entities

import (
	"time"
)

type Role struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(30);uniqueIndex;not null" json:"name"`
}

// User is never removed physically: IsDeleted flips once and DeletedAt records when.
// Username and email stay unique across deleted rows too.
type User struct {
	ID                 uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username           string     `gorm:"type:varchar(50);uniqueIndex;not null" json:"username" validate:"required,max=50"`
	Email              string     `gorm:"type:varchar(254);uniqueIndex;not null" json:"email" validate:"required,email,min=4,max=254"`
	Password           string     `gorm:"type:varchar(60);not null" json:"-" validate:"required"`
	Avatar             *string    `json:"avatar,omitempty" validate:"omitempty,url"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Location           string     `json:"location"`
	DietaryPreferences []uint     `gorm:"type:text;serializer:json" json:"dietary_preferences"`
	IsDeleted          bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedAt          *time.Time `gorm:"type:timestamp" json:"deleted_at,omitempty"`
	RoleID             *uint      `json:"role_id,omitempty"`

	Role *Role `gorm:"foreignKey:RoleID"`
	Timestamp
}
