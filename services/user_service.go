package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctabo91/dreamhost-backend/models"
	"github.com/ctabo91/dreamhost-backend/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

var userFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"email":     true,
	"password":  true,
}

func (s *UserService) Register(user *models.User) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", user.Username).First(&existing).Error
	if err == nil {
		return nil, models.NewDuplicate("username %q is already taken", user.Username)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hashed

	if err := s.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicate("username %q is already taken", user.Username)
		}
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

// Authenticate deliberately returns the same error for an unknown username
// and a wrong password so usernames cannot be enumerated.
func (s *UserService) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewUnauthorized("invalid username or password")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, models.NewUnauthorized("invalid username or password")
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Get(username string) (*models.UserProfile, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("no user named %q", username)
		}
		return nil, err
	}

	favMeals := []uint{}
	if err := s.db.Model(&models.FavoriteMeal{}).
		Where("username = ?", username).
		Order("meal_id ASC").
		Pluck("meal_id", &favMeals).Error; err != nil {
		return nil, err
	}

	favDrinks := []uint{}
	if err := s.db.Model(&models.FavoriteDrink{}).
		Where("username = ?", username).
		Order("drink_id ASC").
		Pluck("drink_id", &favDrinks).Error; err != nil {
		return nil, err
	}

	return &models.UserProfile{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		FavMeals:  favMeals,
		FavDrinks: favDrinks,
	}, nil
}

func (s *UserService) Update(username string, fields map[string]interface{}) (*models.User, error) {
	for k := range fields {
		if !userFields[k] {
			return nil, models.NewBadRequest(fmt.Sprintf("unknown field %q", k))
		}
	}
	if raw, ok := fields["email"]; ok {
		email, _ := raw.(string)
		if !strings.Contains(email, "@") {
			return nil, models.NewBadRequest("email must contain @")
		}
	}
	if raw, ok := fields["password"]; ok {
		password, _ := raw.(string)
		if password == "" {
			return nil, models.NewBadRequest("password must be a non-empty string")
		}
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hashed
	}

	set, args, err := BuildUpdate(fields, userColumns)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf("UPDATE users SET %s WHERE username = $%d", strings.Join(set, ", "), len(args)+1)
	res := s.db.Exec(sql, append(args, username)...)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFound("no user named %q", username)
	}

	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	sanitized := user.Sanitized()
	return &sanitized, nil
}

func (s *UserService) Delete(username string) error {
	res := s.db.Select(clause.Associations).Delete(&models.User{Username: username})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFound("no user named %q", username)
	}
	return nil
}

// MarkFavMeal verifies both sides of the pair exist, then inserts ignoring
// conflicts so repeated marks converge on a single row.
func (s *UserService) MarkFavMeal(username string, mealID uint) error {
	if err := s.checkFavPair(username, models.KindMeal, mealID); err != nil {
		return err
	}
	fav := models.FavoriteMeal{Username: username, MealID: mealID}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

// UnmarkFavMeal deletes the pair if present; deleting an absent pair is a
// successful no-op.
func (s *UserService) UnmarkFavMeal(username string, mealID uint) error {
	if err := s.checkFavPair(username, models.KindMeal, mealID); err != nil {
		return err
	}
	return s.db.Where("username = ? AND meal_id = ?", username, mealID).
		Delete(&models.FavoriteMeal{}).Error
}

func (s *UserService) MarkFavDrink(username string, drinkID uint) error {
	if err := s.checkFavPair(username, models.KindDrink, drinkID); err != nil {
		return err
	}
	fav := models.FavoriteDrink{Username: username, DrinkID: drinkID}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error
}

func (s *UserService) UnmarkFavDrink(username string, drinkID uint) error {
	if err := s.checkFavPair(username, models.KindDrink, drinkID); err != nil {
		return err
	}
	return s.db.Where("username = ? AND drink_id = ?", username, drinkID).
		Delete(&models.FavoriteDrink{}).Error
}

// checkFavPair runs the two independent existence checks every favorite
// operation performs before touching the join table. Each failure names the
// entity that is missing.
func (s *UserService) checkFavPair(username string, kind models.RecipeKind, recipeID uint) error {
	var err error
	switch kind {
	case models.KindMeal:
		err = s.db.First(&models.Meal{}, recipeID).Error
	default:
		err = s.db.First(&models.Drink{}, recipeID).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFound("no %s with id %d", kind, recipeID)
		}
		return err
	}

	if err := s.db.Where("username = ?", username).First(&models.User{}).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFound("no user named %q", username)
		}
		return err
	}
	return nil
}
