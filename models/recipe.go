package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// StringList stores an ordered list of strings as a JSON text column so the
// same schema works on Postgres and the sqlite test database.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

// Meal is a shared catalog entry. Names are globally unique; the index is
// the authoritative guard behind the service layer's friendlier pre-check.
type Meal struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"uniqueIndex;not null" json:"name"`
	Category     string     `json:"category"`
	Area         string     `json:"area"`
	Instructions string     `json:"instructions"`
	Thumbnail    string     `json:"thumbnail"`
	Ingredients  StringList `gorm:"type:text" json:"ingredients"`
}

// Drink mirrors Meal with drink-specific descriptive columns.
type Drink struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"uniqueIndex;not null" json:"name"`
	Category     string     `json:"category"`
	Type         string     `json:"type"`
	Glass        string     `json:"glass"`
	Instructions string     `json:"instructions"`
	Thumbnail    string     `json:"thumbnail"`
	Ingredients  StringList `gorm:"type:text" json:"ingredients"`
}

// PersonalMeal is a user's private meal variant. Same shape as Meal plus the
// owner; no name uniqueness.
type PersonalMeal struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"index;not null" json:"username"`
	Name         string     `gorm:"not null" json:"name"`
	Category     string     `json:"category"`
	Area         string     `json:"area"`
	Instructions string     `json:"instructions"`
	Thumbnail    string     `json:"thumbnail"`
	Ingredients  StringList `gorm:"type:text" json:"ingredients"`
}

type PersonalDrink struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"index;not null" json:"username"`
	Name         string     `gorm:"not null" json:"name"`
	Category     string     `json:"category"`
	Type         string     `json:"type"`
	Glass        string     `json:"glass"`
	Instructions string     `json:"instructions"`
	Thumbnail    string     `json:"thumbnail"`
	Ingredients  StringList `gorm:"type:text" json:"ingredients"`
}

// RecipeKind selects between the meal and drink variants of the personal
// recipe and favorite operations.
type RecipeKind int

const (
	KindMeal RecipeKind = iota
	KindDrink
)

// ParseRecipeKind maps the :kind path segment to a variant.
func ParseRecipeKind(s string) (RecipeKind, error) {
	switch s {
	case "meals":
		return KindMeal, nil
	case "drinks":
		return KindDrink, nil
	default:
		return 0, errors.New("kind must be \"meals\" or \"drinks\"")
	}
}

func (k RecipeKind) String() string {
	if k == KindDrink {
		return "drink"
	}
	return "meal"
}
