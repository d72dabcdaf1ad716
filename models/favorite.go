package models

// FavoriteMeal links a user to a catalog meal. The composite primary key
// makes the mark operation naturally collapsible to a single row.
type FavoriteMeal struct {
	Username string `gorm:"primaryKey" json:"username"`
	MealID   uint   `gorm:"primaryKey" json:"mealId"`

	Meal Meal `gorm:"foreignKey:MealID;constraint:OnDelete:CASCADE" json:"-"`
}

type FavoriteDrink struct {
	Username string `gorm:"primaryKey" json:"username"`
	DrinkID  uint   `gorm:"primaryKey" json:"drinkId"`

	Drink Drink `gorm:"foreignKey:DrinkID;constraint:OnDelete:CASCADE" json:"-"`
}
