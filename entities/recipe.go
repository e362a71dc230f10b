package entities

import (
	"time"
)

// RecipeStep is stored inside the recipes.steps column as JSON.
type RecipeStep struct {
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

type Recipe struct {
	ID              uint         `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint         `gorm:"not null;index" json:"user_id"`
	Title           string       `gorm:"type:varchar(100);not null" json:"title"`
	Description     string       `gorm:"type:text" json:"description"`
	CookingTime     int          `json:"cooking_time"`
	EquipmentNeeded []string     `gorm:"type:text;serializer:json" json:"equipment_needed"`
	Ingredients     []string     `gorm:"type:text;serializer:json" json:"ingredients"`
	Servings        int          `json:"servings"`
	Steps           []RecipeStep `gorm:"type:text;serializer:json" json:"steps"`
	AuthorsNotes    string       `gorm:"type:text" json:"authors_notes"`
	Spices          []string     `gorm:"type:text;serializer:json" json:"spices"`
	YoutubeLink     *string      `json:"youtube_link,omitempty"`
	EndDate         *time.Time   `gorm:"type:timestamp;index" json:"end_date,omitempty"`

	User      *User      `gorm:"foreignKey:UserID"`
	Images    []Image    `gorm:"foreignKey:OwnerID"`
	MealTypes []MealType `gorm:"many2many:recipe_meal_types"`
	Dietaries []Dietary  `gorm:"many2many:recipe_dietaries"`
	Timestamp
}

type Image struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DefaultURL string `gorm:"not null" json:"default_url"`
	BlurURL    string `json:"blur_url"`
	OwnerID    uint   `gorm:"not null;index" json:"owner_id"`
}

type RecipeMealType struct {
	RecipeID   uint `gorm:"primaryKey"`
	MealTypeID uint `gorm:"primaryKey"`
}

func (RecipeMealType) TableName() string {
	return "recipe_meal_types"
}

type RecipeDietary struct {
	RecipeID  uint `gorm:"primaryKey"`
	DietaryID uint `gorm:"primaryKey"`
}

func (RecipeDietary) TableName() string {
	return "recipe_dietaries"
}
