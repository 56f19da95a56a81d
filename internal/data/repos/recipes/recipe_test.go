package recipes

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
)

func TestRecipeRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewRecipeRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "reciperepo@example.com")

	first := testutil.SeedRecipe(t, ctx, tx, u.ID, "Pasta", []types.RecipeIngredient{
		{Name: "spaghetti", Amount: 200, Unit: "g"},
	})
	second := testutil.SeedRecipe(t, ctx, tx, u.ID, "Salad", []types.RecipeIngredient{
		{Name: "lettuce", Amount: 1, Unit: "head"},
	})

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{first.ID, second.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetByIDs: expected 2 recipes, got %d", len(got))
	}

	listed, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("ListByUser: expected 2 recipes, got %d", len(listed))
	}

	other := testutil.SeedUser(t, ctx, tx, "reciperepo-other@example.com")
	listed, err = repo.ListByUser(ctx, tx, other.ID)
	if err != nil {
		t.Fatalf("ListByUser (other user): %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("ListByUser (other user): expected none, got %d", len(listed))
	}
}
