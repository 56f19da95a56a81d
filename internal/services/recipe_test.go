package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	types "github.com/yungbote/mealplanner-backend/internal/domain"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"gorm.io/gorm"
)

const generatedRecipeJSON = `{
	"name": "Lemon Herb Salmon",
	"description": "Pan-seared salmon with lemon and herbs.",
	"prep_time": 10,
	"cook_time": 15,
	"total_time": 25,
	"servings": 2,
	"ingredients": [
		{"name": "salmon fillet", "amount": 2, "unit": "piece", "notes": ""},
		{"name": "lemon", "amount": 1, "unit": "whole", "notes": "juiced"}
	],
	"instructions": [
		{"step": 1, "description": "Season the salmon."},
		{"step": 2, "description": "Sear and finish with lemon."}
	],
	"calories": 450,
	"protein": 40,
	"carbs": 5,
	"fat": 28,
	"fiber": 1,
	"sugar": 1,
	"sodium": 300,
	"cuisine": "Mediterranean",
	"meal_type": ["dinner"],
	"diet_tags": ["high-protein"]
}`

func mustDecodeObject(t *testing.T, raw string) map[string]any {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return obj
}

func newRecipeServiceForTest(t *testing.T, ai *stubAI) (RecipeService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := testutil.Tx(t, db)

	svc := NewRecipeService(
		tx, log,
		repos.NewRecipeRepo(tx, log),
		repos.NewUserRepo(tx, log),
		repos.NewDietaryPreferencesRepo(tx, log),
		ai,
	)
	return svc, tx
}

func TestRecipeServiceCreate(t *testing.T) {
	svc, tx := newRecipeServiceForTest(t, &stubAI{})
	ctx := context.Background()
	user := testutil.SeedUser(t, ctx, tx, "recipe-create@example.com")
	authed := authedCtx(user.ID)

	created, err := svc.Create(authed, &types.Recipe{Name: "Toast"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UserID != user.ID {
		t.Fatalf("recipe owner = %s, want %s", created.UserID, user.ID)
	}
	if created.IsAIGenerated {
		t.Fatalf("manually created recipe flagged as AI generated")
	}
	if created.Servings != 2 {
		t.Fatalf("servings default = %d, want 2", created.Servings)
	}

	if _, err := svc.Create(authed, &types.Recipe{Name: "   "}); apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), &types.Recipe{Name: "x"}); apierr.From(err).Code != apierr.CodeUnauthorized {
		t.Fatalf("expected unauthorized without request data, got %v", err)
	}
}

func TestRecipeServiceGenerate(t *testing.T) {
	ai := &stubAI{jsonResponse: mustDecodeObject(t, generatedRecipeJSON)}
	svc, tx := newRecipeServiceForTest(t, ai)
	ctx := context.Background()

	user := seedSubscribedUser(t, ctx, tx, "recipe-generate@example.com")
	prefs := &types.DietaryPreferences{
		UserID:          user.ID,
		IsGlutenFree:    true,
		Allergies:       []byte(`["peanuts"]`),
		ServingsPerMeal: 4,
	}
	if err := tx.WithContext(ctx).Create(prefs).Error; err != nil {
		t.Fatalf("seed preferences: %v", err)
	}

	authed := authedCtx(user.ID)
	recipe, err := svc.Generate(authed, GenerateRecipeInput{AdditionalInstructions: "use fresh herbs"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if recipe.Name != "Lemon Herb Salmon" {
		t.Fatalf("recipe name = %q", recipe.Name)
	}
	if !recipe.IsAIGenerated {
		t.Fatalf("generated recipe not flagged as AI generated")
	}
	if recipe.UserID != user.ID {
		t.Fatalf("recipe owner = %s, want %s", recipe.UserID, user.ID)
	}

	if ai.lastSchemaName != "recipe" {
		t.Fatalf("schema name = %q, want recipe", ai.lastSchemaName)
	}
	for _, want := range []string{"dinner", "gluten-free", "peanuts", "Servings: 4", "use fresh herbs"} {
		if !strings.Contains(ai.lastUser, want) {
			t.Fatalf("prompt missing %q:\n%s", want, ai.lastUser)
		}
	}

	listed, err := svc.List(authed)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("expected generated recipe to be persisted, got %d recipes", len(listed))
	}
}

func TestRecipeServiceGenerateRequiresSubscription(t *testing.T) {
	svc, tx := newRecipeServiceForTest(t, &stubAI{jsonResponse: map[string]any{}})
	ctx := context.Background()

	user := testutil.SeedUser(t, ctx, tx, "recipe-nosub@example.com")
	authed := authedCtx(user.ID)

	_, err := svc.Generate(authed, GenerateRecipeInput{})
	if apierr.From(err).Code != apierr.CodeSubscriptionRequired {
		t.Fatalf("expected subscription_required, got %v", err)
	}
}
