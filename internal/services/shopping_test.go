package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"gorm.io/gorm"
)

func newShoppingServiceForTest(t *testing.T) (ShoppingListService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := testutil.Tx(t, db)

	svc := NewShoppingListService(
		tx, log,
		repos.NewShoppingListRepo(tx, log),
		repos.NewShoppingListItemRepo(tx, log),
		repos.NewMealPlanRepo(tx, log),
	)
	return svc, tx
}

func TestShoppingListServiceGenerateFromPlan(t *testing.T) {
	svc, tx := newShoppingServiceForTest(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "shopping-svc@example.com")
	recipeA := testutil.SeedRecipe(t, ctx, tx, user.ID, "Grilled Chicken", []types.RecipeIngredient{
		{Name: "chicken breast", Amount: 1, Unit: "lb"},
		{Name: "olive oil", Amount: 2, Unit: "tbsp"},
	})
	recipeB := testutil.SeedRecipe(t, ctx, tx, user.ID, "Veggie Saute", []types.RecipeIngredient{
		{Name: "Olive Oil", Amount: 1, Unit: "tbsp"},
		{Name: "milk", Amount: 1, Unit: "cup"},
	})
	plan := testutil.SeedMealPlan(t, ctx, tx, user.ID, "Test Plan")
	testutil.SeedMealPlanItem(t, ctx, tx, plan.ID, recipeA.ID, 2)
	testutil.SeedMealPlanItem(t, ctx, tx, plan.ID, recipeB.ID, 1)

	authed := authedCtx(user.ID)
	list, err := svc.GenerateFromPlan(authed, plan.ID)
	if err != nil {
		t.Fatalf("GenerateFromPlan: %v", err)
	}
	if list.Name != "Shopping List - Test Plan" {
		t.Fatalf("unexpected list name %q", list.Name)
	}
	if !list.StartDate.Equal(plan.StartDate) || !list.EndDate.Equal(plan.EndDate) {
		t.Fatalf("list dates do not match plan dates")
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 aggregated items, got %d", len(list.Items))
	}

	byName := map[string]types.ShoppingListItem{}
	for _, it := range list.Items {
		byName[it.Name] = it
	}
	chicken, ok := byName["Chicken breast"]
	if !ok {
		t.Fatalf("missing chicken item, got %v", byName)
	}
	if chicken.Amount != 2 || chicken.Unit != "lb" {
		t.Fatalf("chicken not scaled by servings: amount=%v unit=%q", chicken.Amount, chicken.Unit)
	}
	oil, ok := byName["Olive oil"]
	if !ok {
		t.Fatalf("missing merged olive oil item, got %v", byName)
	}
	// 2 tbsp * 2 servings + 1 tbsp * 1 serving
	if oil.Amount != 5 || oil.Unit != "tbsp" {
		t.Fatalf("olive oil not merged across recipes: amount=%v unit=%q", oil.Amount, oil.Unit)
	}
	for _, it := range list.Items {
		if it.Category == "" {
			t.Fatalf("item %q has no category", it.Name)
		}
		if it.IsChecked {
			t.Fatalf("item %q created as checked", it.Name)
		}
	}
	// Reload is ordered by category.
	for i := 1; i < len(list.Items); i++ {
		if list.Items[i-1].Category > list.Items[i].Category {
			t.Fatalf("items not ordered by category: %q before %q", list.Items[i-1].Category, list.Items[i].Category)
		}
	}
}

func TestShoppingListServiceGenerateFromPlanErrors(t *testing.T) {
	svc, tx := newShoppingServiceForTest(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "shopping-errors@example.com")
	other := testutil.SeedUser(t, ctx, tx, "shopping-other@example.com")
	plan := testutil.SeedMealPlan(t, ctx, tx, other.ID, "Someone Else's Plan")

	if _, err := svc.GenerateFromPlan(context.Background(), plan.ID); apierr.From(err).Code != apierr.CodeUnauthorized {
		t.Fatalf("expected unauthorized without request data, got %v", err)
	}
	authed := authedCtx(user.ID)
	if _, err := svc.GenerateFromPlan(authed, uuid.Nil); apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("expected validation error for nil plan id, got %v", err)
	}
	if _, err := svc.GenerateFromPlan(authed, uuid.New()); apierr.From(err).Code != apierr.CodeNotFound {
		t.Fatalf("expected not found for unknown plan, got %v", err)
	}
	// Plans owned by another user look like missing plans.
	if _, err := svc.GenerateFromPlan(authed, plan.ID); apierr.From(err).Code != apierr.CodeNotFound {
		t.Fatalf("expected not found for other user's plan, got %v", err)
	}
}

func TestShoppingListServiceToggleItem(t *testing.T) {
	svc, tx := newShoppingServiceForTest(t)
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "shopping-toggle@example.com")
	recipe := testutil.SeedRecipe(t, ctx, tx, user.ID, "Oatmeal", []types.RecipeIngredient{
		{Name: "rolled oats", Amount: 1, Unit: "cup"},
	})
	plan := testutil.SeedMealPlan(t, ctx, tx, user.ID, "Toggle Plan")
	testutil.SeedMealPlanItem(t, ctx, tx, plan.ID, recipe.ID, 1)

	authed := authedCtx(user.ID)
	list, err := svc.GenerateFromPlan(authed, plan.ID)
	if err != nil {
		t.Fatalf("GenerateFromPlan: %v", err)
	}
	item := list.Items[0]

	toggled, err := svc.ToggleItem(authed, list.ID, item.ID, true)
	if err != nil {
		t.Fatalf("ToggleItem: %v", err)
	}
	if !toggled.IsChecked {
		t.Fatalf("item not checked after toggle")
	}

	reloaded, err := svc.List(authed)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(reloaded) != 1 {
		t.Fatalf("expected 1 list, got %d", len(reloaded))
	}

	if _, err := svc.ToggleItem(authed, list.ID, uuid.New(), true); apierr.From(err).Code != apierr.CodeNotFound {
		t.Fatalf("expected not found for unknown item, got %v", err)
	}
	if _, err := svc.ToggleItem(authed, uuid.New(), item.ID, true); apierr.From(err).Code != apierr.CodeNotFound {
		t.Fatalf("expected not found for unknown list, got %v", err)
	}
}
