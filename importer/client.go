package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ctabo91/dreamhost-backend/models"
)

const (
	defaultMealAPI  = "https://www.themealdb.com/api/json/v1/1"
	defaultDrinkAPI = "https://www.thecocktaildb.com/api/json/v1/1"

	// The APIs pad every record to a fixed number of ingredient slots.
	mealSlots  = 20
	drinkSlots = 15
)

// Client fetches catalog records from TheMealDB and TheCocktailDB.
type Client struct {
	mealAPI  string
	drinkAPI string
	client   *http.Client
}

func NewClient() *Client {
	return &Client{
		mealAPI:  defaultMealAPI,
		drinkAPI: defaultDrinkAPI,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// MealsByLetter fetches every meal whose name starts with letter and
// normalizes each record into the catalog creation shape.
func (c *Client) MealsByLetter(letter rune) ([]models.Meal, error) {
	records, err := c.search(fmt.Sprintf("%s/search.php?f=%c", c.mealAPI, letter), "meals")
	if err != nil {
		return nil, err
	}

	meals := make([]models.Meal, 0, len(records))
	for _, rec := range records {
		meals = append(meals, models.Meal{
			Name:         str(rec, "strMeal"),
			Category:     str(rec, "strCategory"),
			Area:         str(rec, "strArea"),
			Instructions: str(rec, "strInstructions"),
			Thumbnail:    str(rec, "strMealThumb"),
			Ingredients:  ingredients(rec, mealSlots),
		})
	}
	return meals, nil
}

func (c *Client) DrinksByLetter(letter rune) ([]models.Drink, error) {
	records, err := c.search(fmt.Sprintf("%s/search.php?f=%c", c.drinkAPI, letter), "drinks")
	if err != nil {
		return nil, err
	}

	drinks := make([]models.Drink, 0, len(records))
	for _, rec := range records {
		drinks = append(drinks, models.Drink{
			Name:         str(rec, "strDrink"),
			Category:     str(rec, "strCategory"),
			Type:         str(rec, "strAlcoholic"),
			Glass:        str(rec, "strGlass"),
			Instructions: str(rec, "strInstructions"),
			Thumbnail:    str(rec, "strDrinkThumb"),
			Ingredients:  ingredients(rec, drinkSlots),
		})
	}
	return drinks, nil
}

// search fetches one result page. Letters with no results come back as a
// JSON null list, which decodes to an empty slice here.
func (c *Client) search(url, key string) ([]map[string]interface{}, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to call recipe API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe API response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("recipe API error %d: %s", resp.StatusCode, string(body))
	}

	var page map[string][]map[string]interface{}
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse recipe API JSON: %w", err)
	}
	return page[key], nil
}

func str(rec map[string]interface{}, key string) string {
	s, _ := rec[key].(string)
	return strings.TrimSpace(s)
}

// ingredients folds the strIngredientN/strMeasureN slot pairs into one
// ordered "measure ingredient" list, stopping at empty slots.
func ingredients(rec map[string]interface{}, slots int) models.StringList {
	list := models.StringList{}
	for i := 1; i <= slots; i++ {
		ingredient := str(rec, fmt.Sprintf("strIngredient%d", i))
		if ingredient == "" {
			continue
		}
		measure := str(rec, fmt.Sprintf("strMeasure%d", i))
		if measure == "" {
			list = append(list, ingredient)
			continue
		}
		list = append(list, measure+" "+ingredient)
	}
	return list
}
