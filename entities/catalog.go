package entities

// MealType and Dietary are lookup rows seeded at start-up and only referenced by recipes.
type MealType struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"type:varchar(50);uniqueIndex;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

type Dietary struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"type:varchar(50);uniqueIndex;not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
}

func (Dietary) TableName() string {
	return "dietaries"
}
