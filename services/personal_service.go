package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctabo91/dreamhost-backend/models"

	"gorm.io/gorm"
)

// PersonalService handles the user-owned recipe variants. Every operation is
// parameterized over the RecipeKind variant and scoped to the owning
// username; personal recipes carry no name-uniqueness constraint.
type PersonalService struct {
	db *gorm.DB
}

func NewPersonalService(db *gorm.DB) *PersonalService {
	return &PersonalService{db: db}
}

// PersonalRecipeInput covers both variants; Area applies to meals, Type and
// Glass to drinks.
type PersonalRecipeInput struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Type         string   `json:"type"`
	Glass        string   `json:"glass"`
	Instructions string   `json:"instructions"`
	Thumbnail    string   `json:"thumbnail"`
	Ingredients  []string `json:"ingredients"`
}

func (s *PersonalService) Create(username string, kind models.RecipeKind, in PersonalRecipeInput) (interface{}, error) {
	switch kind {
	case models.KindMeal:
		meal := models.PersonalMeal{
			Username:     username,
			Name:         in.Name,
			Category:     in.Category,
			Area:         in.Area,
			Instructions: in.Instructions,
			Thumbnail:    in.Thumbnail,
			Ingredients:  models.StringList(in.Ingredients),
		}
		if err := s.db.Create(&meal).Error; err != nil {
			return nil, err
		}
		return &meal, nil
	default:
		drink := models.PersonalDrink{
			Username:     username,
			Name:         in.Name,
			Category:     in.Category,
			Type:         in.Type,
			Glass:        in.Glass,
			Instructions: in.Instructions,
			Thumbnail:    in.Thumbnail,
			Ingredients:  models.StringList(in.Ingredients),
		}
		if err := s.db.Create(&drink).Error; err != nil {
			return nil, err
		}
		return &drink, nil
	}
}

func (s *PersonalService) List(username string, kind models.RecipeKind) (interface{}, error) {
	q := s.db.Where("username = ?", username).Order("name ASC")
	if kind == models.KindMeal {
		var meals []models.PersonalMeal
		if err := q.Find(&meals).Error; err != nil {
			return nil, err
		}
		return meals, nil
	}
	var drinks []models.PersonalDrink
	if err := q.Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (s *PersonalService) Get(username string, kind models.RecipeKind, id uint) (interface{}, error) {
	q := s.db.Where("username = ? AND id = ?", username, id)
	if kind == models.KindMeal {
		var meal models.PersonalMeal
		if err := q.First(&meal).Error; err != nil {
			return nil, s.wrapNotFound(err, kind, id)
		}
		return &meal, nil
	}
	var drink models.PersonalDrink
	if err := q.First(&drink).Error; err != nil {
		return nil, s.wrapNotFound(err, kind, id)
	}
	return &drink, nil
}

func (s *PersonalService) Update(username string, kind models.RecipeKind, id uint, fields map[string]interface{}) (interface{}, error) {
	allowed := mealColumns
	table := "personal_meals"
	if kind == models.KindDrink {
		allowed = drinkColumns
		table = "personal_drinks"
	}
	if err := checkColumns(fields, allowed); err != nil {
		return nil, err
	}
	set, args, err := BuildUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d AND username = $%d",
		table, strings.Join(set, ", "), len(args)+1, len(args)+2)
	res := s.db.Exec(sql, append(args, id, username)...)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFound("no personal %s with id %d", kind, id)
	}
	return s.Get(username, kind, id)
}

func (s *PersonalService) Delete(username string, kind models.RecipeKind, id uint) error {
	q := s.db.Where("username = ? AND id = ?", username, id)
	var res *gorm.DB
	if kind == models.KindMeal {
		res = q.Delete(&models.PersonalMeal{})
	} else {
		res = q.Delete(&models.PersonalDrink{})
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFound("no personal %s with id %d", kind, id)
	}
	return nil
}

func (s *PersonalService) wrapNotFound(err error, kind models.RecipeKind, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFound("no personal %s with id %d", kind, id)
	}
	return err
}
