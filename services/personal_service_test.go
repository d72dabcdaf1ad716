package services

import (
	"net/http"
	"testing"

	"github.com/ctabo91/dreamhost-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalMealRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewPersonalService(db)
	seedUser(t, db, "u1")

	created, err := svc.Create("u1", models.KindMeal, PersonalRecipeInput{
		Name:        "Grandma's Stew",
		Category:    "Stew",
		Area:        "Irish",
		Ingredients: []string{"1 lb lamb", "3 potatoes"},
	})
	require.NoError(t, err)
	meal := created.(*models.PersonalMeal)
	require.NotZero(t, meal.ID)
	assert.Equal(t, "u1", meal.Username)

	got, err := svc.Get("u1", models.KindMeal, meal.ID)
	require.NoError(t, err)
	assert.Equal(t, meal, got)
}

func TestPersonalRecipesAllowDuplicateNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewPersonalService(db)
	seedUser(t, db, "u1")

	in := PersonalRecipeInput{Name: "Same Name"}
	_, err := svc.Create("u1", models.KindDrink, in)
	require.NoError(t, err)
	_, err = svc.Create("u1", models.KindDrink, in)
	require.NoError(t, err)

	recipes, err := svc.List("u1", models.KindDrink)
	require.NoError(t, err)
	assert.Len(t, recipes.([]models.PersonalDrink), 2)
}

func TestPersonalRecipesAreScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewPersonalService(db)
	seedUser(t, db, "owner")
	seedUser(t, db, "other")

	created, err := svc.Create("owner", models.KindMeal, PersonalRecipeInput{Name: "Private"})
	require.NoError(t, err)
	id := created.(*models.PersonalMeal).ID

	_, err = svc.Get("other", models.KindMeal, id)
	requireAPIError(t, err, http.StatusNotFound)

	_, err = svc.Update("other", models.KindMeal, id, map[string]interface{}{"name": "Stolen"})
	requireAPIError(t, err, http.StatusNotFound)

	err = svc.Delete("other", models.KindMeal, id)
	requireAPIError(t, err, http.StatusNotFound)

	recipes, err := svc.List("other", models.KindMeal)
	require.NoError(t, err)
	assert.Empty(t, recipes.([]models.PersonalMeal))
}

func TestPersonalUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewPersonalService(db)
	seedUser(t, db, "u1")

	created, err := svc.Create("u1", models.KindDrink, PersonalRecipeInput{
		Name:  "House Punch",
		Glass: "Punch bowl",
	})
	require.NoError(t, err)
	id := created.(*models.PersonalDrink).ID

	updated, err := svc.Update("u1", models.KindDrink, id, map[string]interface{}{
		"glass":       "Mug",
		"ingredients": []interface{}{"rum", "juice"},
	})
	require.NoError(t, err)
	drink := updated.(*models.PersonalDrink)
	assert.Equal(t, "Mug", drink.Glass)
	assert.Equal(t, models.StringList{"rum", "juice"}, drink.Ingredients)
	assert.Equal(t, "House Punch", drink.Name)

	_, err = svc.Update("u1", models.KindDrink, id, map[string]interface{}{})
	requireAPIError(t, err, http.StatusBadRequest)

	_, err = svc.Update("u1", models.KindDrink, 7777, map[string]interface{}{"glass": "X"})
	requireAPIError(t, err, http.StatusNotFound)

	require.NoError(t, svc.Delete("u1", models.KindDrink, id))
	_, err = svc.Get("u1", models.KindDrink, id)
	requireAPIError(t, err, http.StatusNotFound)
	err = svc.Delete("u1", models.KindDrink, id)
	requireAPIError(t, err, http.StatusNotFound)
}

func TestParseRecipeKind(t *testing.T) {
	kind, err := models.ParseRecipeKind("meals")
	require.NoError(t, err)
	assert.Equal(t, models.KindMeal, kind)

	kind, err = models.ParseRecipeKind("drinks")
	require.NoError(t, err)
	assert.Equal(t, models.KindDrink, kind)

	_, err = models.ParseRecipeKind("snacks")
	assert.Error(t, err)
}
