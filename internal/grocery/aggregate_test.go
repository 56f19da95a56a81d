package grocery

import (
	"math"
	"testing"

	types "github.com/yungbote/mealplanner-backend/internal/domain"
)

func TestAggregateMergesByNameAndUnit(t *testing.T) {
	items := []PlanItem{
		{Servings: 2, Ingredients: []types.RecipeIngredient{
			{Name: "Tomato", Amount: 1, Unit: "cup"},
		}},
		{Servings: 1, Ingredients: []types.RecipeIngredient{
			{Name: "tomato", Amount: 2, Unit: "cup"},
		}},
	}

	lines := Aggregate(items)
	if len(lines) != 1 {
		t.Fatalf("expected 1 aggregated line, got %d", len(lines))
	}
	got := lines[0]
	if got.Name != "Tomato" {
		t.Fatalf("display name = %q, want %q (first occurrence wins)", got.Name, "Tomato")
	}
	if got.Amount != 4 {
		t.Fatalf("amount = %v, want 4 (1*2 + 2*1)", got.Amount)
	}
	if got.Unit != "cup" {
		t.Fatalf("unit = %q, want cup", got.Unit)
	}
	if got.Category != CategoryProduce {
		t.Fatalf("category = %q, want Produce", got.Category)
	}
}

func TestAggregateDistinctKeysStaySeparate(t *testing.T) {
	items := []PlanItem{
		{Servings: 1, Ingredients: []types.RecipeIngredient{
			{Name: "flour", Amount: 2, Unit: "cup"},
			{Name: "flour", Amount: 500, Unit: "g"},
			{Name: "Milk", Amount: 1, Unit: "cup"},
		}},
	}

	lines := Aggregate(items)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines (distinct (name,unit) keys never merge), got %d", len(lines))
	}
	// First-seen order is preserved.
	if lines[0].Name != "Flour" || lines[0].Unit != "cup" {
		t.Fatalf("lines[0] = %+v, want Flour/cup", lines[0])
	}
	if lines[1].Name != "Flour" || lines[1].Unit != "g" {
		t.Fatalf("lines[1] = %+v, want Flour/g", lines[1])
	}
	if lines[2].Name != "Milk" {
		t.Fatalf("lines[2] = %+v, want Milk", lines[2])
	}
}

// Hyphenated ingredient names must survive aggregation intact. A naive
// string-joined "name-unit" key truncates them.
func TestAggregateHyphenatedNames(t *testing.T) {
	items := []PlanItem{
		{Servings: 1, Ingredients: []types.RecipeIngredient{
			{Name: "all-purpose flour", Amount: 2, Unit: "cup"},
			{Name: "half-and-half", Amount: 1, Unit: "cup"},
		}},
	}

	lines := Aggregate(items)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Name != "All-purpose flour" {
		t.Fatalf("lines[0].Name = %q, want %q", lines[0].Name, "All-purpose flour")
	}
	if lines[1].Name != "Half-and-half" {
		t.Fatalf("lines[1].Name = %q, want %q", lines[1].Name, "Half-and-half")
	}
}

func TestAggregateFirstOccurrenceFixesDisplayName(t *testing.T) {
	items := []PlanItem{
		{Servings: 1, Ingredients: []types.RecipeIngredient{
			{Name: "baby SPINACH", Amount: 1, Unit: "cup"},
		}},
		{Servings: 3, Ingredients: []types.RecipeIngredient{
			{Name: "Baby Spinach", Amount: 1, Unit: "cup"},
		}},
	}

	lines := Aggregate(items)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Name != "Baby SPINACH" {
		t.Fatalf("display name = %q, want first-seen casing with leading capital", lines[0].Name)
	}
	if lines[0].Amount != 4 {
		t.Fatalf("amount = %v, want 4", lines[0].Amount)
	}
}

func TestAggregateServingsScale(t *testing.T) {
	items := []PlanItem{
		{Servings: 4, Ingredients: []types.RecipeIngredient{
			{Name: "rice", Amount: 0.5, Unit: "cup"},
		}},
	}

	lines := Aggregate(items)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if math.Abs(lines[0].Amount-2) > 1e-9 {
		t.Fatalf("amount = %v, want 2 (0.5 * 4)", lines[0].Amount)
	}
}

func TestAggregateOrderIndependentSum(t *testing.T) {
	forward := []PlanItem{
		{Servings: 2, Ingredients: []types.RecipeIngredient{{Name: "onion", Amount: 1, Unit: "whole"}}},
		{Servings: 3, Ingredients: []types.RecipeIngredient{{Name: "onion", Amount: 2, Unit: "whole"}}},
		{Servings: 1, Ingredients: []types.RecipeIngredient{{Name: "onion", Amount: 5, Unit: "whole"}}},
	}
	reversed := []PlanItem{forward[2], forward[1], forward[0]}

	a := Aggregate(forward)
	b := Aggregate(reversed)
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("expected single lines, got %d and %d", len(a), len(b))
	}
	if a[0].Amount != b[0].Amount {
		t.Fatalf("sum depends on processing order: %v vs %v", a[0].Amount, b[0].Amount)
	}
	if a[0].Amount != 13 {
		t.Fatalf("amount = %v, want 13 (1*2 + 2*3 + 5*1)", a[0].Amount)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	lines := Aggregate(nil)
	if len(lines) != 0 {
		t.Fatalf("expected empty output for nil input, got %d lines", len(lines))
	}

	lines = Aggregate([]PlanItem{{Servings: 2, Ingredients: nil}})
	if len(lines) != 0 {
		t.Fatalf("expected empty output for items without ingredients, got %d lines", len(lines))
	}
}

// Non-positive amounts are accepted as given; the aggregator does not
// validate.
func TestAggregateNonPositiveAmounts(t *testing.T) {
	items := []PlanItem{
		{Servings: 2, Ingredients: []types.RecipeIngredient{
			{Name: "salt", Amount: 0, Unit: "tsp"},
			{Name: "salt", Amount: -1, Unit: "tsp"},
		}},
	}

	lines := Aggregate(items)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Amount != -2 {
		t.Fatalf("amount = %v, want -2", lines[0].Amount)
	}
}
