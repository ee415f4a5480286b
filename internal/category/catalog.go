package category

import "github.com/pageza/fridgechef/internal/types"

// Category is a browsable category with its display name
type Category struct {
	ID   string
	Name string
	Key  Key
}

// Catalog lists the categories a recipe author can pick from
var Catalog = []Category{
	{ID: "1", Name: "Appetizers & Starters", Key: "appetizersAndStarters"},
	{ID: "2", Name: "Main Dishes", Key: "mainDishes"},
	{ID: "3", Name: "Desserts & Sweets", Key: "dessertsAndSweets"},
	{ID: "4", Name: "Salads & Fresh Dishes", Key: "saladsAndFreshDishes"},
	{ID: "5", Name: "Soups & Stews", Key: "soupsAndStews"},
	{ID: "6", Name: "Breakfast & Morning Meals", Key: "breakfastAndMorningMeals"},
	{ID: "7", Name: "Rice, Grains & Pasta", Key: "riceGrainsAndPasta"},
	{ID: "8", Name: "Breads & Baked Goods", Key: "breadsAndBakedGoods"},
	{ID: "9", Name: "Beverages", Key: "beverages"},
	{ID: "10", Name: "Street Food & Snacks", Key: "streetFoodAndSnacks"},
}

// Legacy lists the categories produced by Classify
var Legacy = []Category{
	{ID: "1", Name: "Breakfast", Key: Breakfast},
	{ID: "2", Name: "Lunch", Key: Lunch},
	{ID: "3", Name: "Dinner", Key: Dinner},
	{ID: "4", Name: "Desserts", Key: Desserts},
	{ID: "5", Name: "Vegetarian", Key: Vegetarian},
	{ID: "6", Name: "Quick & Easy", Key: QuickAndEasy},
}

// Difficulties in increasing order
var Difficulties = []string{
	types.DifficultyEasy,
	types.DifficultyIntermediate,
	types.DifficultyAdvanced,
}

// Lookup finds a category by key in the catalog or the legacy set
func Lookup(key Key) (Category, bool) {
	for _, c := range Catalog {
		if c.Key == key {
			return c, true
		}
	}
	for _, c := range Legacy {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Valid reports whether key names a known category
func Valid(key Key) bool {
	_, ok := Lookup(key)
	return ok
}

// ValidDifficulty reports whether d is one of Difficulties
func ValidDifficulty(d string) bool {
	for _, v := range Difficulties {
		if v == d {
			return true
		}
	}
	return false
}
