package migration

import (
	"Culinary-Alchemy/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&entities.Recipe{}, "MealTypes", &entities.RecipeMealType{}); err != nil {
		return fmt.Errorf("setup recipe meal types join table: %w", err)
	}
	if err := db.SetupJoinTable(&entities.Recipe{}, "Dietaries", &entities.RecipeDietary{}); err != nil {
		return fmt.Errorf("setup recipe dietaries join table: %w", err)
	}

	if err := db.AutoMigrate(
		&entities.Role{},
		&entities.User{},
		&entities.MealType{},
		&entities.Dietary{},
		&entities.Recipe{},
		&entities.Image{},
		&entities.RecipeMealType{},
		&entities.RecipeDietary{},
	); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
