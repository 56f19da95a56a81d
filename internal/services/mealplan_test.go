package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/yungbote/mealplanner-backend/internal/data/repos"
	"github.com/yungbote/mealplanner-backend/internal/data/repos/testutil"
	"github.com/yungbote/mealplanner-backend/internal/platform/apierr"
	"gorm.io/gorm"
)

func newMealPlanServiceForTest(t *testing.T, ai *stubAI) (MealPlanService, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	tx := testutil.Tx(t, db)

	svc := NewMealPlanService(
		tx, log,
		repos.NewMealPlanRepo(tx, log),
		repos.NewMealPlanItemRepo(tx, log),
		repos.NewRecipeRepo(tx, log),
		repos.NewUserRepo(tx, log),
		repos.NewDietaryPreferencesRepo(tx, log),
		ai,
	)
	return svc, tx
}

func generatedMealPlanFixture(t *testing.T, days int) map[string]any {
	t.Helper()
	planDays := make([]any, 0, days)
	for d := 1; d <= days; d++ {
		var obj map[string]any = mustDecodeObject(t, generatedRecipeJSON)
		obj["name"] = fmt.Sprintf("Day %d Dinner", d)
		planDays = append(planDays, map[string]any{
			"day": d,
			"meals": []any{
				map[string]any{"meal_type": "dinner", "recipe": obj},
			},
		})
	}
	return map[string]any{"meal_plan": planDays}
}

func TestMealPlanServiceGenerate(t *testing.T) {
	ai := &stubAI{jsonResponse: generatedMealPlanFixture(t, 2)}
	svc, tx := newMealPlanServiceForTest(t, ai)
	ctx := context.Background()

	user := seedSubscribedUser(t, ctx, tx, "mealplan-generate@example.com")
	authed := authedCtx(user.ID)

	plan, err := svc.Generate(authed, GenerateMealPlanInput{
		Days:        2,
		MealsPerDay: []string{"dinner"},
		StartDate:   "2026-03-02",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if plan.Name != "Weekly Meal Plan - 3/2/2026" {
		t.Fatalf("plan name = %q", plan.Name)
	}
	wantStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !plan.StartDate.Equal(wantStart) {
		t.Fatalf("start date = %v, want %v", plan.StartDate, wantStart)
	}
	if !plan.EndDate.Equal(wantStart.AddDate(0, 0, 1)) {
		t.Fatalf("end date = %v", plan.EndDate)
	}
	if len(plan.Items) != 2 {
		t.Fatalf("expected 2 plan items, got %d", len(plan.Items))
	}
	for _, item := range plan.Items {
		if item.Recipe == nil {
			t.Fatalf("plan item missing preloaded recipe")
		}
		if !item.Recipe.IsAIGenerated {
			t.Fatalf("plan recipe %q not flagged as AI generated", item.Recipe.Name)
		}
		if item.MealType != "dinner" {
			t.Fatalf("item meal type = %q", item.MealType)
		}
		if item.Servings != 2 {
			t.Fatalf("item servings = %d, want default 2", item.Servings)
		}
	}

	if ai.lastSchemaName != "meal_plan" {
		t.Fatalf("schema name = %q, want meal_plan", ai.lastSchemaName)
	}
}

func TestMealPlanServiceGenerateValidation(t *testing.T) {
	svc, tx := newMealPlanServiceForTest(t, &stubAI{jsonResponse: map[string]any{}})
	ctx := context.Background()

	user := seedSubscribedUser(t, ctx, tx, "mealplan-validation@example.com")
	authed := authedCtx(user.ID)

	if _, err := svc.Generate(authed, GenerateMealPlanInput{Days: 15}); apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("expected validation error for 15 days, got %v", err)
	}
	if _, err := svc.Generate(authed, GenerateMealPlanInput{StartDate: "03/02/2026"}); apierr.From(err).Code != apierr.CodeValidation {
		t.Fatalf("expected validation error for bad start_date, got %v", err)
	}
	// An empty model response is an upstream failure, not a stored plan.
	if _, err := svc.Generate(authed, GenerateMealPlanInput{}); apierr.From(err).Code != apierr.CodeUpstream {
		t.Fatalf("expected upstream error for empty plan, got %v", err)
	}
	plans, err := svc.List(authed)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(plans) != 0 {
		t.Fatalf("failed generations must not persist plans, got %d", len(plans))
	}
}
