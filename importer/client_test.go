package importer

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/ctabo91/dreamhost-backend/config"
	"github.com/ctabo91/dreamhost-backend/models"
	"github.com/ctabo91/dreamhost-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const mealPayload = `{"meals":[{
	"idMeal":"52771",
	"strMeal":"Spicy Arrabiata Penne",
	"strCategory":"Vegetarian",
	"strArea":"Italian",
	"strInstructions":"Bring a large pot of water to a boil.",
	"strMealThumb":"https://www.themealdb.com/images/media/meals/ustsqw1468250014.jpg",
	"strIngredient1":"penne rigate","strMeasure1":"1 pound",
	"strIngredient2":"olive oil","strMeasure2":"1/4 cup",
	"strIngredient3":"garlic","strMeasure3":"3 cloves",
	"strIngredient4":"salt","strMeasure4":" ",
	"strIngredient5":"","strMeasure5":""
}]}`

const drinkPayload = `{"drinks":[{
	"idDrink":"11000",
	"strDrink":"Mojito",
	"strCategory":"Cocktail",
	"strAlcoholic":"Alcoholic",
	"strGlass":"Highball glass",
	"strInstructions":"Muddle mint leaves with sugar and lime juice.",
	"strDrinkThumb":"https://www.thecocktaildb.com/images/media/drink/metwgh1606770327.jpg",
	"strIngredient1":"Light rum","strMeasure1":"2-3 oz",
	"strIngredient2":"Mint","strMeasure2":null,
	"strIngredient3":null,"strMeasure3":null
}]}`

func testClient(mealBody, drinkBody string) (*Client, func()) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/meal/search.php":
			fmt.Fprint(w, mealBody)
		case r.URL.Path == "/drink/search.php":
			fmt.Fprint(w, drinkBody)
		default:
			http.NotFound(w, r)
		}
	}))

	c := NewClient()
	c.mealAPI = srv.URL + "/meal"
	c.drinkAPI = srv.URL + "/drink"
	return c, srv.Close
}

func TestMealsByLetterNormalization(t *testing.T) {
	c, done := testClient(mealPayload, drinkPayload)
	defer done()

	meals, err := c.MealsByLetter('s')
	require.NoError(t, err)
	require.Len(t, meals, 1)

	meal := meals[0]
	assert.Equal(t, "Spicy Arrabiata Penne", meal.Name)
	assert.Equal(t, "Vegetarian", meal.Category)
	assert.Equal(t, "Italian", meal.Area)
	assert.Equal(t, "Bring a large pot of water to a boil.", meal.Instructions)

	// Measures join their ingredient, blank measures fall back to the bare
	// ingredient, and empty slots are dropped while order is preserved.
	assert.Equal(t, models.StringList{
		"1 pound penne rigate",
		"1/4 cup olive oil",
		"3 cloves garlic",
		"salt",
	}, meal.Ingredients)
}

func TestDrinksByLetterNormalization(t *testing.T) {
	c, done := testClient(mealPayload, drinkPayload)
	defer done()

	drinks, err := c.DrinksByLetter('m')
	require.NoError(t, err)
	require.Len(t, drinks, 1)

	drink := drinks[0]
	assert.Equal(t, "Mojito", drink.Name)
	assert.Equal(t, "Alcoholic", drink.Type)
	assert.Equal(t, "Highball glass", drink.Glass)
	assert.Equal(t, models.StringList{"2-3 oz Light rum", "Mint"}, drink.Ingredients)
}

func TestSearchHandlesNullResultList(t *testing.T) {
	c, done := testClient(`{"meals":null}`, `{"drinks":null}`)
	defer done()

	meals, err := c.MealsByLetter('x')
	require.NoError(t, err)
	assert.Empty(t, meals)
}

var dbSeq int64

func TestSeederSkipsDuplicates(t *testing.T) {
	c, done := testClient(mealPayload, drinkPayload)
	defer done()

	dsn := fmt.Sprintf("file:seed%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	seeder := NewSeeder(c, services.NewMealService(db), services.NewDrinkService(db))

	// The canned server returns the same records for every letter, so only
	// the first pass inserts anything.
	inserted := seeder.Run()
	assert.Equal(t, 2, inserted)

	var mealCount, drinkCount int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&mealCount).Error)
	require.NoError(t, db.Model(&models.Drink{}).Count(&drinkCount).Error)
	assert.EqualValues(t, 1, mealCount)
	assert.EqualValues(t, 1, drinkCount)
}
