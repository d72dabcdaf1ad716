package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ctabo91/dreamhost-backend/models"

	"gorm.io/gorm"
)

type DrinkService struct {
	db *gorm.DB
}

func NewDrinkService(db *gorm.DB) *DrinkService {
	return &DrinkService{db: db}
}

type DrinkFilters struct {
	Name     string
	Category string
	Type     string
}

var drinkColumns = map[string]bool{
	"name":         true,
	"category":     true,
	"type":         true,
	"glass":        true,
	"instructions": true,
	"thumbnail":    true,
	"ingredients":  true,
}

func (s *DrinkService) Create(drink *models.Drink) (*models.Drink, error) {
	var existing models.Drink
	err := s.db.Where("name = ?", drink.Name).First(&existing).Error
	if err == nil {
		return nil, models.NewDuplicate("there is already a drink named %q", drink.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.db.Create(drink).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicate("there is already a drink named %q", drink.Name)
		}
		return nil, err
	}
	return drink, nil
}

func (s *DrinkService) List(f DrinkFilters) ([]models.Drink, error) {
	q := s.db.Order("name ASC")
	q = likeFilter(q, "name", f.Name)
	q = likeFilter(q, "category", f.Category)
	q = likeFilter(q, "type", f.Type)

	var drinks []models.Drink
	if err := q.Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (s *DrinkService) Get(id uint) (*models.Drink, error) {
	var drink models.Drink
	if err := s.db.First(&drink, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFound("no drink with id %d", id)
		}
		return nil, err
	}
	return &drink, nil
}

func (s *DrinkService) Update(id uint, fields map[string]interface{}) (*models.Drink, error) {
	if err := checkColumns(fields, drinkColumns); err != nil {
		return nil, err
	}
	set, args, err := BuildUpdate(fields, nil)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf("UPDATE drinks SET %s WHERE id = $%d", strings.Join(set, ", "), len(args)+1)
	res := s.db.Exec(sql, append(args, id)...)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, models.NewDuplicate("there is already a drink with that name")
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, models.NewNotFound("no drink with id %d", id)
	}
	return s.Get(id)
}

func (s *DrinkService) Delete(id uint) error {
	res := s.db.Delete(&models.Drink{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFound("no drink with id %d", id)
	}
	return nil
}
