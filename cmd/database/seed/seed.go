package seed

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/entities"
	"Culinary-Alchemy/pkg/catalog"
	"Culinary-Alchemy/pkg/user"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

var mealTypes = []entities.MealType{
	{Title: "Breakfast", Description: "Morning meals to start the day"},
	{Title: "Lunch", Description: "Midday meals"},
	{Title: "Dinner", Description: "Evening meals"},
	{Title: "Snack", Description: "Small bites between meals"},
	{Title: "Dessert", Description: "Sweet dishes"},
}

var dietaries = []entities.Dietary{
	{Title: "Vegetarian", Description: "No meat or fish"},
	{Title: "Vegan", Description: "No animal products"},
	{Title: "Gluten Free", Description: "No wheat, barley or rye"},
	{Title: "Dairy Free", Description: "No milk products"},
	{Title: "Keto", Description: "Low carbohydrate, high fat"},
	{Title: "Paleo", Description: "Whole foods, no grains or legumes"},
}

type Admin struct {
	Username string
	Email    string
	Password string
}

// Seed inserts the lookup rows and roles when missing. With a non-nil admin it also creates
// that administrator unless its username or email is already held by any user, deleted or not.
func Seed(ctx context.Context, db *gorm.DB, admin *Admin) error {
	userRepository := user.NewUserRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)

	if err := userRepository.EnsureRoles(ctx, domain.RoleAdmin, domain.RoleUser); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	if err := catalogRepository.EnsureMealTypes(ctx, cloneMealTypes()); err != nil {
		return fmt.Errorf("seed meal types: %w", err)
	}
	if err := catalogRepository.EnsureDietaries(ctx, cloneDietaries()); err != nil {
		return fmt.Errorf("seed dietaries: %w", err)
	}

	if admin == nil {
		return nil
	}

	taken, err := userRepository.IsUserKeyTaken(ctx, admin.Username, admin.Email)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if taken {
		return nil
	}

	userService := user.NewUserService(userRepository, catalogRepository, nil, nil)
	if _, err := userService.CreateUser(ctx, domain.CreateUserRequest{
		Username: admin.Username,
		Email:    admin.Email,
		Password: admin.Password,
		Name:     admin.Username,
		Role:     domain.RoleAdmin,
	}); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Infow("admin user seeded", "username", admin.Username)
	return nil
}

// Create fills in ids, so the package-level templates are copied first.
func cloneMealTypes() []entities.MealType {
	return append([]entities.MealType(nil), mealTypes...)
}

func cloneDietaries() []entities.Dietary {
	return append([]entities.Dietary(nil), dietaries...)
}
