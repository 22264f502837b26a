package model

// Meal enumerates the fixed lunch menu.
type Meal string

const (
	MealFriedChickenWithYogurtSauce Meal = "FRIED_CHICKEN_WITH_YOGURT_SAUCE"
	MealBakedFishWithVegetables     Meal = "BAKED_FISH_WITH_VEGETABLES"
	MealBeanWithSalad               Meal = "BEAN_WITH_SALAD"
	MealBakedTurkeyWithPotatoes     Meal = "BAKED_TURKEY_WITH_POTATOES"
	MealMeatBallsWithTomatoSauce    Meal = "MEAT_BALLS_WITH_TOMATO_SAUCE"
)

var mealDisplayNames = map[Meal]string{
	MealFriedChickenWithYogurtSauce: "Fried chicken with yogurt sauce",
	MealBakedFishWithVegetables:     "Baked fish with vegetables",
	MealBeanWithSalad:               "Bean with salad",
	MealBakedTurkeyWithPotatoes:     "Baked turkey with potatoes",
	MealMeatBallsWithTomatoSauce:    "Meat balls with tomato sauce",
}

// ValidMeal reports whether m is on the menu.
func ValidMeal(m Meal) bool {
	_, ok := mealDisplayNames[m]
	return ok
}

// DisplayName returns the human readable menu entry, or the raw value
// for meals that are not on the menu.
func (m Meal) DisplayName() string {
	if name, ok := mealDisplayNames[m]; ok {
		return name
	}
	return string(m)
}
