package catalog

import (
	"Culinary-Alchemy/entities"
	"Culinary-Alchemy/internal/testutil"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_MissingIDs(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	testutil.SeedCatalog(t, db, 3)
	require.NoError(t, db.Create(&entities.MealType{ID: 10, Title: "brunch"}).Error)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	missing, err := repo.MissingMealTypeIDs(ctx, []uint{1, 10, 11})
	require.NoError(t, err)
	assert.Equal(t, []uint{11}, missing)

	missing, err = repo.MissingDietaryIDs(ctx, []uint{10, 3, 12, 10})
	require.NoError(t, err)
	assert.Equal(t, []uint{10, 12}, missing)

	missing, err = repo.MissingDietaryIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestCatalogRepository_EnsureIsIdempotent(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	repo := NewCatalogRepository(db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.EnsureMealTypes(ctx, []entities.MealType{{Title: "Lunch"}, {Title: "Dinner"}}))
		require.NoError(t, repo.EnsureDietaries(ctx, []entities.Dietary{{Title: "Vegan"}}))
	}

	mealTypes, err := repo.GetMealTypes(ctx)
	require.NoError(t, err)
	dietaries, err := repo.GetDietaries(ctx)
	require.NoError(t, err)

	assert.Len(t, mealTypes, 2)
	assert.Len(t, dietaries, 1)
}

func TestCatalogService(t *testing.T) {
	t.Parallel()
	db := testutil.NewTestDB(t)
	testutil.SeedCatalog(t, db, 2)
	svc := NewCatalogService(NewCatalogRepository(db))

	mealTypes, err := svc.GetMealTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, mealTypes, 2)
	assert.Equal(t, uint(1), mealTypes[0].ID)
	assert.Equal(t, "meal type 1", mealTypes[0].Title)

	dietaries, err := svc.GetDietaries(context.Background())
	require.NoError(t, err)
	assert.Len(t, dietaries, 2)
}
