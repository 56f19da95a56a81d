package planner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
)

func TestMealPlanRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewMealPlanRepo(db, testutil.Logger(t))
	ctx := context.Background()

	u := testutil.SeedUser(t, ctx, tx, "mealplanrepo@example.com")
	recipe := testutil.SeedRecipe(t, ctx, tx, u.ID, "Stir Fry", []types.RecipeIngredient{
		{Name: "broccoli", Amount: 1, Unit: "head"},
	})
	plan := testutil.SeedMealPlan(t, ctx, tx, u.ID, "Week of March 2")
	testutil.SeedMealPlanItem(t, ctx, tx, plan.ID, recipe.ID, 2)

	got, err := repo.GetByIDForUser(ctx, tx, plan.ID, u.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser: %v", err)
	}
	if got == nil {
		t.Fatalf("GetByIDForUser: expected plan")
	}
	if len(got.Items) != 1 {
		t.Fatalf("GetByIDForUser: expected 1 item, got %d", len(got.Items))
	}
	if got.Items[0].Recipe == nil || got.Items[0].Recipe.ID != recipe.ID {
		t.Fatalf("GetByIDForUser: recipe not preloaded: %+v", got.Items[0])
	}
	if got.Items[0].Servings != 2 {
		t.Fatalf("GetByIDForUser: expected servings 2, got %d", got.Items[0].Servings)
	}

	other := testutil.SeedUser(t, ctx, tx, "mealplanrepo-other@example.com")
	scoped, err := repo.GetByIDForUser(ctx, tx, plan.ID, other.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser (other user): %v", err)
	}
	if scoped != nil {
		t.Fatalf("GetByIDForUser (other user): expected nil, got %+v", scoped)
	}

	missing, err := repo.GetByIDForUser(ctx, tx, uuid.New(), u.ID)
	if err != nil {
		t.Fatalf("GetByIDForUser (missing): %v", err)
	}
	if missing != nil {
		t.Fatalf("GetByIDForUser (missing): expected nil, got %+v", missing)
	}

	listed, err := repo.ListByUser(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(listed) != 1 || len(listed[0].Items) != 1 {
		t.Fatalf("ListByUser: unexpected result: %+v", listed)
	}
}
