package model

import "testing"

func TestValidMeal(t *testing.T) {
	menu := []Meal{
		MealFriedChickenWithYogurtSauce,
		MealBakedFishWithVegetables,
		MealBeanWithSalad,
		MealBakedTurkeyWithPotatoes,
		MealMeatBallsWithTomatoSauce,
	}
	for _, m := range menu {
		if !ValidMeal(m) {
			t.Fatalf("expected %s to be on the menu", m)
		}
		if m.DisplayName() == string(m) {
			t.Fatalf("expected display name for %s", m)
		}
	}

	if ValidMeal("PIZZA") {
		t.Fatal("unknown meal must not be valid")
	}
	if Meal("PIZZA").DisplayName() != "PIZZA" {
		t.Fatal("unknown meal should fall back to its raw value")
	}
}
