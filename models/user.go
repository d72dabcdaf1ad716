package models

// User is keyed by username rather than a surrogate id; every owned row
// (favorites, personal recipes) hangs off the username and goes with it.
type User struct {
	Username  string `gorm:"primaryKey" json:"username"`
	Password  string `gorm:"not null" json:"-"`
	FirstName string `gorm:"column:first_name" json:"firstName"`
	LastName  string `gorm:"column:last_name" json:"lastName"`
	Email     string `gorm:"not null" json:"email"`

	FavoriteMeals  []FavoriteMeal  `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE" json:"-"`
	FavoriteDrinks []FavoriteDrink `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE" json:"-"`
	PersonalMeals  []PersonalMeal  `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE" json:"-"`
	PersonalDrinks []PersonalDrink `gorm:"foreignKey:Username;constraint:OnDelete:CASCADE" json:"-"`
}

// Sanitized strips the password hash before a user leaves the service layer.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// UserProfile is the GET /users/:username response shape: the user record
// plus the ids of everything they favorited.
type UserProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	FavMeals  []uint `json:"favMeals"`
	FavDrinks []uint `json:"favDrinks"`
}
