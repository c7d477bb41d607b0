package model

import "fmt"

// Category is a classifier output label. The numeric value is the model's
// output index.
type Category int

const (
	CategoryRamen Category = iota
	CategoryJapaneseFood
	CategoryInternationalCuisine
	CategoryCafe
	// CategoryOther is the reject category; it is never persisted.
	CategoryOther
)

var categoryNames = [...]string{
	CategoryRamen:                "ramen",
	CategoryJapaneseFood:         "japanese_food",
	CategoryInternationalCuisine: "international_cuisine",
	CategoryCafe:                 "cafe",
	CategoryOther:                "other",
}

// CategoryCount is the size of the classifier output vector.
const CategoryCount = len(categoryNames)

// CategoryFromIndex maps a model output index to a Category.
func CategoryFromIndex(i int) (Category, error) {
	if i < 0 || i >= CategoryCount {
		return 0, fmt.Errorf("category index %d out of range [0, %d)", i, CategoryCount)
	}
	return Category(i), nil
}

func (c Category) String() string {
	if c < 0 || int(c) >= CategoryCount {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// Accepted reports whether photos of this category are kept.
func (c Category) Accepted() bool {
	return c != CategoryOther
}

// FoodCategory is a label produced by the vision model for a single food photo.
type FoodCategory string

const (
	FoodRamen    FoodCategory = "ramen"
	FoodCafe     FoodCategory = "cafe"
	FoodJapanese FoodCategory = "japanese_food"
	FoodWestern  FoodCategory = "western_food"
	FoodEthnic   FoodCategory = "ethnic_food"
	FoodNotFood  FoodCategory = "not_food"
)
