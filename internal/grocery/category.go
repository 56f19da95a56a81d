package grocery

import "strings"

// Category is one of the fixed grocery aisle buckets a shopping list item is
// filed under.
type Category string

const (
	CategoryProduce     Category = "Produce"
	CategoryDairy       Category = "Dairy"
	CategoryMeatSeafood Category = "Meat & Seafood"
	CategoryBakery      Category = "Bakery"
	CategoryPantry      Category = "Pantry"
	CategoryFrozen      Category = "Frozen"
	CategoryBeverages   Category = "Beverages"
	CategorySnacks      Category = "Snacks"
	CategoryOther       Category = "Other"
)

type categoryKeywords struct {
	category Category
	keywords []string
}

// categoryTable is scanned in order and the first category with a matching
// keyword wins, so the ordering is part of the behavior. An ingredient like
// "lemon sauce" lands in Produce ("lemon") before Pantry ("sauce") is ever
// checked, and "ice cream" lands in Dairy because "cream" matches before the
// Frozen row is reached.
var categoryTable = []categoryKeywords{
	{CategoryProduce, []string{
		"apple", "banana", "lettuce", "tomato", "onion", "garlic", "carrot",
		"potato", "pepper", "cucumber", "spinach", "broccoli", "lemon", "lime",
		"orange", "berry", "fruit", "vegetable", "herb", "cilantro", "parsley",
		"basil", "avocado", "mushroom", "celery", "ginger",
	}},
	{CategoryDairy, []string{
		"milk", "cheese", "yogurt", "butter", "cream", "egg", "sour cream",
	}},
	{CategoryMeatSeafood, []string{
		"chicken", "beef", "pork", "fish", "salmon", "shrimp", "turkey",
		"bacon", "sausage", "lamb", "tuna",
	}},
	{CategoryBakery, []string{
		"bread", "tortilla", "bun", "roll", "bagel", "croissant", "pita",
	}},
	{CategoryPantry, []string{
		"rice", "pasta", "flour", "sugar", "oil", "vinegar", "sauce", "can",
		"bean", "lentil", "chickpea", "broth", "stock", "spice", "salt",
		"pepper", "honey", "maple", "soy sauce", "olive oil",
	}},
	{CategoryFrozen, []string{"frozen", "ice cream"}},
	{CategoryBeverages, []string{"juice", "coffee", "tea", "water", "soda"}},
	{CategorySnacks, []string{"chips", "crackers", "nuts", "seeds"}},
}

// Categorize maps a free-text ingredient name to its grocery category by
// substring keyword match. Total over all strings; the empty string and
// anything unrecognized fall through to Other.
func Categorize(name string) Category {
	lower := strings.ToLower(name)
	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
