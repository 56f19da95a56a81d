package grocery

import (
	"strings"
	"unicode"
	"unicode/utf8"

	types "github.com/yungbote/mealplanner-backend/internal/domain"
)

// PlanItem is one scheduled recipe occurrence feeding the aggregation: the
// recipe's ingredient lines plus the servings multiplier planned for it.
type PlanItem struct {
	Servings    int
	Ingredients []types.RecipeIngredient
}

// Line is one aggregated shopping list entry.
type Line struct {
	Name     string
	Amount   float64
	Unit     string
	Category Category
}

// aggregationKey dedupes ingredient lines. Two lines merge iff the lowercased
// name AND the unit string match exactly; no unit conversion, no fuzzy name
// matching. A struct key keeps hyphenated names ("all-purpose flour")
// unambiguous, which a joined "name-unit" string would not.
type aggregationKey struct {
	name string
	unit string
}

// Aggregate folds a meal plan's items into deduplicated shopping lines.
// Amounts are scaled by each item's servings and summed per key. The first
// occurrence of a key fixes the display name (original casing, first rune
// upper-cased on output) and the category; later occurrences only add to the
// amount. Output preserves first-seen order. Empty input yields an empty
// slice, and non-positive amounts pass through as given.
func Aggregate(items []PlanItem) []Line {
	type accumulator struct {
		displayName string
		amount      float64
		unit        string
		category    Category
	}

	byKey := make(map[aggregationKey]*accumulator)
	order := make([]aggregationKey, 0)

	for _, item := range items {
		for _, ing := range item.Ingredients {
			scaled := ing.Amount * float64(item.Servings)
			key := aggregationKey{name: strings.ToLower(ing.Name), unit: ing.Unit}
			if acc, ok := byKey[key]; ok {
				acc.amount += scaled
				continue
			}
			byKey[key] = &accumulator{
				displayName: ing.Name,
				amount:      scaled,
				unit:        ing.Unit,
				category:    Categorize(ing.Name),
			}
			order = append(order, key)
		}
	}

	out := make([]Line, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		out = append(out, Line{
			Name:     capitalizeFirst(acc.displayName),
			Amount:   acc.amount,
			Unit:     acc.unit,
			Category: acc.category,
		})
	}
	return out
}

// capitalizeFirst upper-cases only the first rune; the rest keeps whatever
// casing the recipe used.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
