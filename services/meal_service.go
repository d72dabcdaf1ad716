package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctabo91/dreamhost-backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

// MealFilters are ANDed case-insensitive substring matches; zero values are
// skipped.
type MealFilters struct {
	Name     string
	Category string
	Area     string
}

var mealColumns = map[string]bool{
	"name":         true,
	"category":     true,
	"area":         true,
	"instructions": true,
	"thumbnail":    true,
	"ingredients":  true,
}

func (s *MealService) Create(meal *models.Meal) (*models.Meal, error) {
	var existing models.Meal
	err := s.db.Where("name = ?", meal.Name).First(&existing).Error
	if err == nil {
		return nil, models.NewDuplicate("there is already a meal named %q", meal.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(meal).Error; err != nil {
		// The unique index backstops the pre-check race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicate("there is already a meal named %q", meal.Name)
		}
		return nil, err
	}
	return meal, nil
}

func (s *MealService) List(f MealFilters) ([]models.Meal, error) {
	q := s.db.Order("name ASC")
	q = likeFilter(q, "name", f.Name)
	q = likeFilter(q, "category", f.Category)
	q = likeFilter(q, "area", f.Area)

	var meals []models.Meal
	if err := q.Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (s *MealService) Get(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := s.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("no meal with id %d", id)
		}
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) Update(id uint, fields map[string]interface{}) (*models.Meal, error) {
	if err := checkColumns(fields, mealColumns); err != nil {
		return nil, err
	}
	set, args, err := BuildUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf("UPDATE meals SET %s WHERE id = $%d", strings.Join(set, ", "), len(args)+1)
	res := s.db.Exec(sql, append(args, id)...)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicate("there is already a meal with that name")
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFound("no meal with id %d", id)
	}
	return s.Get(id)
}

func (s *MealService) Delete(id uint) error {
	res := s.db.Delete(&models.Meal{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFound("no meal with id %d", id)
	}
	return nil
}

// likeFilter adds a case-insensitive substring predicate; LOWER + LIKE so
// the same query runs on Postgres and sqlite.
func likeFilter(q *gorm.DB, column, value string) *gorm.DB {
	if value == "" {
		return q
	}
	return q.Where(fmt.Sprintf("LOWER(%s) LIKE ?", column), "%"+strings.ToLower(value)+"%")
}

// checkColumns rejects fields that have no storage column before they reach
// the update builder, and normalizes ingredient lists decoded from JSON.
func checkColumns(fields map[string]interface{}, allowed map[string]bool) error {
	for k := range fields {
		if !allowed[k] {
			return models.NewBadRequest(fmt.Sprintf("unknown field %q", k))
		}
	}
	if raw, ok := fields["ingredients"]; ok {
		list, err := toStringList(raw)
		if err != nil {
			return err
		}
		fields["ingredients"] = list
	}
	return nil
}

func toStringList(raw interface{}) (models.StringList, error) {
	switch v := raw.(type) {
	case models.StringList:
		return v, nil
	case []string:
		return models.StringList(v), nil
	case []interface{}:
		list := make(models.StringList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, models.NewBadRequest("ingredients must be a list of strings")
			}
			list = append(list, s)
		}
		return list, nil
	default:
		return nil, models.NewBadRequest("ingredients must be a list of strings")
	}
}
