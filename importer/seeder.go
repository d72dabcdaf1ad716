package importer

import (
	"errors"
	"log"

	"github.com/ctabo91/dreamhost-backend/models"
	"github.com/ctabo91/dreamhost-backend/services"
)

// Seeder walks the third-party APIs letter by letter and feeds each record
// through the regular catalog create path. Best effort: duplicates are
// skipped via the create path's own check and individual failures are
// logged, never fatal.
type Seeder struct {
	client *Client
	meals  *services.MealService
	drinks *services.DrinkService
}

func NewSeeder(client *Client, meals *services.MealService, drinks *services.DrinkService) *Seeder {
	return &Seeder{client: client, meals: meals, drinks: drinks}
}

func (s *Seeder) Run() (inserted int) {
	for letter := 'a'; letter <= 'z'; letter++ {
		meals, err := s.client.MealsByLetter(letter)
		if err != nil {
			log.Printf("meals %c: %v", letter, err)
		}
		for i := range meals {
			if _, err := s.meals.Create(&meals[i]); err != nil {
				logSkip("meal", meals[i].Name, err)
				continue
			}
			inserted++
		}

		drinks, err := s.client.DrinksByLetter(letter)
		if err != nil {
			log.Printf("drinks %c: %v", letter, err)
		}
		for i := range drinks {
			if _, err := s.drinks.Create(&drinks[i]); err != nil {
				logSkip("drink", drinks[i].Name, err)
				continue
			}
			inserted++
		}
	}
	return inserted
}

func logSkip(kind, name string, err error) {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		// Duplicate names across letters are expected; stay quiet.
		return
	}
	log.Printf("skipping %s %q: %v", kind, name, err)
}
