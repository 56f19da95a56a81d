package services

import (
	"encoding/json"
	"fmt"
	"strings"

	types "github.com/yungbote/mealplanner-backend/internal/domain"
)

// dietaryRestrictions flattens the boolean preference flags into prompt text.
func dietaryRestrictions(prefs *types.DietaryPreferences) []string {
	if prefs == nil {
		return nil
	}
	var out []string
	if prefs.IsVegetarian {
		out = append(out, "vegetarian")
	}
	if prefs.IsVegan {
		out = append(out, "vegan")
	}
	if prefs.IsGlutenFree {
		out = append(out, "gluten-free")
	}
	if prefs.IsDairyFree {
		out = append(out, "dairy-free")
	}
	if prefs.IsKeto {
		out = append(out, "keto")
	}
	if prefs.IsPaleo {
		out = append(out, "paleo")
	}
	if prefs.IsLowCarb {
		out = append(out, "low-carb")
	}
	return out
}

func jsonStrings(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func joinOr(vals []string, fallback string) string {
	if len(vals) == 0 {
		return fallback
	}
	return strings.Join(vals, ", ")
}

func preferenceLines(prefs *types.DietaryPreferences) string {
	var b strings.Builder
	restrictions := dietaryRestrictions(prefs)
	fmt.Fprintf(&b, "Dietary restrictions: %s\n", joinOr(restrictions, "none"))

	var allergies, disliked, cuisines []string
	if prefs != nil {
		allergies = jsonStrings(prefs.Allergies)
		disliked = jsonStrings(prefs.DislikedFoods)
		cuisines = jsonStrings(prefs.CuisinePreferences)
	}
	fmt.Fprintf(&b, "Allergies to avoid: %s\n", joinOr(allergies, "none"))
	fmt.Fprintf(&b, "Foods to avoid: %s\n", joinOr(disliked, "none"))
	fmt.Fprintf(&b, "Preferred cuisines: %s\n", joinOr(cuisines, "any"))
	return b.String()
}

func servingsOrDefault(prefs *types.DietaryPreferences) int {
	if prefs != nil && prefs.ServingsPerMeal > 0 {
		return prefs.ServingsPerMeal
	}
	return 2
}

// -------------------- json_schema definitions --------------------

func recipeProperties() map[string]any {
	return map[string]any{
		"name":        map[string]any{"type": "string"},
		"description": map[string]any{"type": "string"},
		"prep_time":   map[string]any{"type": "integer"},
		"cook_time":   map[string]any{"type": "integer"},
		"total_time":  map[string]any{"type": "integer"},
		"servings":    map[string]any{"type": "integer"},
		"ingredients": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":   map[string]any{"type": "string"},
					"amount": map[string]any{"type": "number"},
					"unit":   map[string]any{"type": "string"},
					"notes":  map[string]any{"type": "string"},
				},
				"required":             []string{"name", "amount", "unit", "notes"},
				"additionalProperties": false,
			},
		},
		"instructions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"step":        map[string]any{"type": "integer"},
					"description": map[string]any{"type": "string"},
				},
				"required":             []string{"step", "description"},
				"additionalProperties": false,
			},
		},
		"calories":  map[string]any{"type": "integer"},
		"protein":   map[string]any{"type": "integer"},
		"carbs":     map[string]any{"type": "integer"},
		"fat":       map[string]any{"type": "integer"},
		"fiber":     map[string]any{"type": "integer"},
		"sugar":     map[string]any{"type": "integer"},
		"sodium":    map[string]any{"type": "integer"},
		"cuisine":   map[string]any{"type": "string"},
		"meal_type": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"diet_tags": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
	}
}

func recipeRequired() []string {
	return []string{
		"name", "description", "prep_time", "cook_time", "total_time",
		"servings", "ingredients", "instructions", "calories", "protein",
		"carbs", "fat", "fiber", "sugar", "sodium", "cuisine", "meal_type",
		"diet_tags",
	}
}

func recipeSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           recipeProperties(),
		"required":             recipeRequired(),
		"additionalProperties": false,
	}
}

func mealPlanSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"meal_plan": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day": map[string]any{"type": "integer"},
						"meals": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"meal_type": map[string]any{"type": "string"},
									"recipe": map[string]any{
										"type":                 "object",
										"properties":           recipeProperties(),
										"required":             recipeRequired(),
										"additionalProperties": false,
									},
								},
								"required":             []string{"meal_type", "recipe"},
								"additionalProperties": false,
							},
						},
					},
					"required":             []string{"day", "meals"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"meal_plan"},
		"additionalProperties": false,
	}
}

func substitutionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"original_ingredient": map[string]any{"type": "string"},
			"substitutions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"ratio":       map[string]any{"type": "string"},
						"notes":       map[string]any{"type": "string"},
						"dietary_tags": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []string{"name", "ratio", "notes", "dietary_tags"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []string{"original_ingredient", "substitutions"},
		"additionalProperties": false,
	}
}

// decodeInto round-trips a decoded JSON object into a typed struct.
func decodeInto(obj map[string]any, out any) error {
	raw, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
