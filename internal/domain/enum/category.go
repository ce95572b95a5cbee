package enum

import "strings"

// Category is a menu category tag. Stored as its display string so the
// persisted menu round-trips the original field values unchanged.
type Category string

const (
	CategoryBurgers Category = "Burgers"
	CategoryPizza   Category = "Pizza"
	CategorySides   Category = "Sides"
	CategoryDrinks  Category = "Drinks"
)

// CategoryAll is the filter wildcard, never stored on an item.
const CategoryAll = "All"

// Categories lists every storable category.
func Categories() []Category {
	return []Category{CategoryBurgers, CategoryPizza, CategorySides, CategoryDrinks}
}

// IsValid reports whether the category is one of the storable values.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Matches reports whether the category satisfies a filter value. An empty
// filter or "all" matches everything; otherwise the match is exact,
// case-insensitive.
func (c Category) Matches(filter string) bool {
	if filter == "" || strings.EqualFold(filter, CategoryAll) {
		return true
	}
	return strings.EqualFold(string(c), filter)
}
