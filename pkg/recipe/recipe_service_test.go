package recipe

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/entities"
	"Culinary-Alchemy/internal/testutil"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRecipeRepository struct {
	RecipeRepository
	transaction   func(ctx context.Context, fn func(repo RecipeRepository) error) error
	getRecipeByID func(ctx context.Context, id uint) (*entities.Recipe, error)
	endRecipe     func(ctx context.Context, id uint, endDate time.Time) (bool, error)
}

func (s *stubRecipeRepository) Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error {
	if s.transaction != nil {
		return s.transaction(ctx, fn)
	}
	return s.RecipeRepository.Transaction(ctx, fn)
}

func (s *stubRecipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	if s.getRecipeByID != nil {
		return s.getRecipeByID(ctx, id)
	}
	return s.RecipeRepository.GetRecipeByID(ctx, id)
}

func (s *stubRecipeRepository) EndRecipe(ctx context.Context, id uint, endDate time.Time) (bool, error) {
	if s.endRecipe != nil {
		return s.endRecipe(ctx, id, endDate)
	}
	return s.RecipeRepository.EndRecipe(ctx, id, endDate)
}

func setupRecipeService(t *testing.T) (RecipeService, *gorm.DB, *entities.User) {
	t.Helper()
	db := testutil.NewTestDB(t)
	testutil.SeedCatalog(t, db, 3)
	user := testutil.CreateUser(t, db, "chef")
	return NewRecipeService(NewRecipeRepository(db)), db, user
}

func pancakes(userID uint) domain.RecipeFields {
	return domain.RecipeFields{
		UserID:      userID,
		Title:       "Pancakes",
		CookingTime: 20,
		Ingredients: []string{"flour", "milk", "egg"},
		Servings:    2,
		Steps: []domain.RecipeStep{
			{Description: "Mix"},
			{Description: "Fry", DurationMinutes: 5},
		},
	}
}

func countRows(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func assertNothingPersisted(t *testing.T, db *gorm.DB) {
	t.Helper()
	assert.Zero(t, countRows(t, db, &entities.Recipe{}))
	assert.Zero(t, countRows(t, db, &entities.Image{}))
	assert.Zero(t, countRows(t, db, &entities.RecipeMealType{}))
	assert.Zero(t, countRows(t, db, &entities.RecipeDietary{}))
}

func mealTypeIDs(detail domain.RecipeDetail) []uint {
	ids := make([]uint, 0, len(detail.MealTypes))
	for _, m := range detail.MealTypes {
		ids = append(ids, m.ID)
	}
	return ids
}

func dietaryIDs(detail domain.RecipeDetail) []uint {
	ids := make([]uint, 0, len(detail.Dietaries))
	for _, d := range detail.Dietaries {
		ids = append(ids, d.ID)
	}
	return ids
}

func TestRecipeService_CreateRecipe(t *testing.T) {
	t.Parallel()
	svc, _, user := setupRecipeService(t)
	ctx := context.Background()

	images := []domain.RecipeImage{{
		DefaultURL: "https://cdn.example.com/a.jpg",
		BlurURL:    "https://cdn.example.com/a-blur.jpg",
	}}

	created, err := svc.CreateRecipe(ctx, pancakes(user.ID), images, []uint{1, 2}, []uint{3})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, user.ID, created.UserID)
	require.Len(t, created.Images, 1)
	assert.Equal(t, "https://cdn.example.com/a.jpg", created.Images[0].DefaultURL)
	assert.Equal(t, "https://cdn.example.com/a-blur.jpg", created.Images[0].BlurURL)
	assert.ElementsMatch(t, []uint{1, 2}, mealTypeIDs(created))
	assert.Equal(t, []uint{3}, dietaryIDs(created))
	require.Len(t, created.Steps, 2)
	assert.Equal(t, "Mix", created.Steps[0].Description)
	assert.Equal(t, "Fry", created.Steps[1].Description)

	fetched, err := svc.GetRecipeByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, fetched.Title)
	assert.Equal(t, created.Steps, fetched.Steps)
	assert.Equal(t, created.Ingredients, fetched.Ingredients)
	assert.Len(t, fetched.Images, 1)
	assert.ElementsMatch(t, []uint{1, 2}, mealTypeIDs(fetched))
	assert.Equal(t, []uint{3}, dietaryIDs(fetched))
}

func TestRecipeService_CreateRecipeWithoutAssociations(t *testing.T) {
	t.Parallel()
	svc, db, user := setupRecipeService(t)

	created, err := svc.CreateRecipe(context.Background(), pancakes(user.ID), nil, nil, nil)
	require.NoError(t, err)

	assert.Empty(t, created.Images)
	assert.Empty(t, created.MealTypes)
	assert.Empty(t, created.Dietaries)
	assert.Equal(t, int64(1), countRows(t, db, &entities.Recipe{}))
}

func TestRecipeService_CreateRecipeCollapsesDuplicateIDs(t *testing.T) {
	t.Parallel()
	svc, db, user := setupRecipeService(t)

	created, err := svc.CreateRecipe(context.Background(), pancakes(user.ID), nil, []uint{1, 1, 2}, []uint{3, 3})
	require.NoError(t, err)

	assert.ElementsMatch(t, []uint{1, 2}, mealTypeIDs(created))
	assert.Equal(t, []uint{3}, dietaryIDs(created))
	assert.Equal(t, int64(2), countRows(t, db, &entities.RecipeMealType{}))
	assert.Equal(t, int64(1), countRows(t, db, &entities.RecipeDietary{}))
}

func TestRecipeService_CreateRecipeRollsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		mealTypes  []uint
		dietaries  []uint
		wantEntity string
		wantIDs    []uint
	}{
		{
			name:       "unknown dietary",
			mealTypes:  []uint{1},
			dietaries:  []uint{999},
			wantEntity: domain.EntityDietary,
			wantIDs:    []uint{999},
		},
		{
			name:       "every unknown meal type is reported",
			mealTypes:  []uint{1, 998, 999},
			dietaries:  []uint{3},
			wantEntity: domain.EntityMealType,
			wantIDs:    []uint{998, 999},
		},
		{
			name:       "dietary id that only exists as a meal type",
			mealTypes:  []uint{50},
			dietaries:  []uint{50},
			wantEntity: domain.EntityDietary,
			wantIDs:    []uint{50},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, db, user := setupRecipeService(t)
			require.NoError(t, db.Create(&entities.MealType{ID: 50, Title: "brunch"}).Error)

			images := []domain.RecipeImage{{DefaultURL: "https://cdn.example.com/a.jpg"}}
			_, err := svc.CreateRecipe(context.Background(), pancakes(user.ID), images, tt.mealTypes, tt.dietaries)

			require.ErrorIs(t, err, domain.ErrReferentialIntegrity)
			var refErr *domain.ReferentialIntegrityError
			require.ErrorAs(t, err, &refErr)
			assert.Equal(t, tt.wantEntity, refErr.Entity)
			assert.Equal(t, tt.wantIDs, refErr.IDs)
			assertNothingPersisted(t, db)
		})
	}
}

func TestRecipeService_CreateRecipeRejectsUnknownOwner(t *testing.T) {
	t.Parallel()
	svc, db, user := setupRecipeService(t)
	require.NoError(t, db.Model(user).Update("is_deleted", true).Error)

	_, err := svc.CreateRecipe(context.Background(), pancakes(user.ID), nil, nil, nil)

	var refErr *domain.ReferentialIntegrityError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, domain.EntityUser, refErr.Entity)
	assert.Equal(t, []uint{user.ID}, refErr.IDs)
	assertNothingPersisted(t, db)
}

func TestRecipeService_CreateRecipeRequiresTitle(t *testing.T) {
	t.Parallel()
	svc, db, user := setupRecipeService(t)

	fields := pancakes(user.ID)
	fields.Title = "  "
	_, err := svc.CreateRecipe(context.Background(), fields, nil, nil, nil)

	assert.ErrorIs(t, err, domain.ErrConstraintViolation)
	assertNothingPersisted(t, db)
}

func TestRecipeService_CreateRecipeCommitFailure(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	testutil.SeedCatalog(t, db, 3)
	user := testutil.CreateUser(t, db, "chef")
	commitErr := errors.New("connection reset by peer")

	base := NewRecipeRepository(db)
	svc := NewRecipeService(&stubRecipeRepository{
		RecipeRepository: base,
		transaction: func(ctx context.Context, fn func(repo RecipeRepository) error) error {
			return base.Transaction(ctx, func(repo RecipeRepository) error {
				if err := fn(repo); err != nil {
					return err
				}
				return commitErr
			})
		},
	})

	images := []domain.RecipeImage{{DefaultURL: "https://cdn.example.com/a.jpg"}}
	_, err := svc.CreateRecipe(context.Background(), pancakes(user.ID), images, []uint{1}, []uint{2})

	assert.ErrorIs(t, err, domain.ErrTransactionAbort)
	assert.ErrorIs(t, err, commitErr)
	assertNothingPersisted(t, db)
}

func TestRecipeService_CreateRecipeCancelledContext(t *testing.T) {
	t.Parallel()
	svc, db, user := setupRecipeService(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.CreateRecipe(ctx, pancakes(user.ID), nil, []uint{1}, nil)

	assert.ErrorIs(t, err, domain.ErrTransactionAbort)
	assert.ErrorIs(t, err, context.Canceled)
	assertNothingPersisted(t, db)
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "chef")
	recipe := testutil.CreateRecipe(t, db, user.ID, "Stew")

	first := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &recipeService{
		recipeRepository: NewRecipeRepository(db),
		now:              func() time.Time { return first },
	}
	ctx := context.Background()

	require.NoError(t, svc.DeleteRecipe(ctx, recipe.ID))

	var stored entities.Recipe
	require.NoError(t, db.First(&stored, recipe.ID).Error)
	require.NotNil(t, stored.EndDate)
	assert.True(t, stored.EndDate.Equal(first))

	svc.now = func() time.Time { return first.Add(time.Hour) }
	err := svc.DeleteRecipe(ctx, recipe.ID)
	require.ErrorIs(t, err, domain.ErrAlreadyDeleted)
	var deletedErr *domain.AlreadyDeletedError
	require.ErrorAs(t, err, &deletedErr)
	assert.Equal(t, recipe.ID, deletedErr.ID)

	var after entities.Recipe
	require.NoError(t, db.First(&after, recipe.ID).Error)
	require.NotNil(t, after.EndDate)
	assert.True(t, after.EndDate.Equal(first))

	_, err = svc.GetRecipeByID(ctx, recipe.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeService_DeleteRecipeNotFound(t *testing.T) {
	t.Parallel()
	svc, _, _ := setupRecipeService(t)

	err := svc.DeleteRecipe(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecipeService_DeleteRecipeLosesRace(t *testing.T) {
	t.Parallel()

	svc := NewRecipeService(&stubRecipeRepository{
		getRecipeByID: func(ctx context.Context, id uint) (*entities.Recipe, error) {
			return &entities.Recipe{ID: id, Title: "Stew"}, nil
		},
		endRecipe: func(ctx context.Context, id uint, endDate time.Time) (bool, error) {
			return false, nil
		},
	})

	err := svc.DeleteRecipe(context.Background(), 5)

	assert.ErrorIs(t, err, domain.ErrAlreadyDeleted)
}

func TestRecipeService_GetRecipes(t *testing.T) {
	t.Parallel()
	svc, db, user := setupRecipeService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		testutil.CreateRecipe(t, db, user.ID, fmt.Sprintf("Recipe %02d", i))
	}

	seen := map[uint]bool{}
	sizes := []int{}
	for _, offset := range []int{0, 10, 20} {
		page, err := svc.GetRecipes(ctx, domain.Pagination{Limit: 10, Offset: offset})
		require.NoError(t, err)
		assert.Equal(t, int64(25), page.Total)
		sizes = append(sizes, len(page.Recipes))
		for _, r := range page.Recipes {
			assert.False(t, seen[r.ID], "recipe %d returned twice", r.ID)
			seen[r.ID] = true
		}
	}
	assert.Equal(t, []int{10, 10, 5}, sizes)
	assert.Len(t, seen, 25)

	defaults, err := svc.GetRecipes(ctx, domain.Pagination{})
	require.NoError(t, err)
	assert.Len(t, defaults.Recipes, domain.DefaultPageLimit)
	assert.Equal(t, 0, defaults.Pagination.Offset)
}

func TestRecipeService_GetRecipesExcludesDeleted(t *testing.T) {
	t.Parallel()
	svc, db, user := setupRecipeService(t)
	ctx := context.Background()

	kept := testutil.CreateRecipe(t, db, user.ID, "Kept")
	removed := testutil.CreateRecipe(t, db, user.ID, "Removed")
	require.NoError(t, svc.DeleteRecipe(ctx, removed.ID))

	page, err := svc.GetRecipes(ctx, domain.Pagination{})
	require.NoError(t, err)

	require.Len(t, page.Recipes, 1)
	assert.Equal(t, kept.ID, page.Recipes[0].ID)
	assert.Equal(t, int64(1), page.Total)
}

func TestUniqueIDs(t *testing.T) {
	t.Parallel()
	assert.Nil(t, uniqueIDs(nil))
	assert.Equal(t, []uint{3, 1, 2}, uniqueIDs([]uint{3, 1, 3, 2, 1}))
}
