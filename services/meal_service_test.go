package services

import (
	"net/http"
	"testing"

	"github.com/ctabo91/dreamhost-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealCreateGetRoundTrip(t *testing.T) {
	svc := NewMealService(newTestDB(t))

	created, err := svc.Create(&models.Meal{
		Name:         "Arrabiata",
		Category:     "Pasta",
		Area:         "Italian",
		Instructions: "Boil, toss, serve.",
		Thumbnail:    "https://example.com/arrabiata.jpg",
		Ingredients:  models.StringList{"1 pound penne", "1 can tomatoes"},
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, models.StringList{"1 pound penne", "1 can tomatoes"}, got.Ingredients)
}

func TestMealCreateDuplicateNameLeavesRowsUnchanged(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	fix := seedCatalog(t, db)

	_, err := svc.Create(&models.Meal{Name: fix.Meals[0].Name})
	requireAPIError(t, err, http.StatusBadRequest)

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	assert.EqualValues(t, len(fix.Meals), count)
}

func TestMealListFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	seedCatalog(t, db)

	all, err := svc.List(MealFilters{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "M1", all[0].Name) // name ASC

	byCategory, err := svc.List(MealFilters{Category: "Cat2"})
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "M2", byCategory[0].Name)

	// Matching is case-insensitive and partial.
	mixed, err := svc.List(MealFilters{Name: "m1", Category: "cAt1"})
	require.NoError(t, err)
	require.Len(t, mixed, 1)
	assert.Equal(t, "M1", mixed[0].Name)

	none, err := svc.List(MealFilters{Area: "nowhere"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMealGetMissingIsNotFound(t *testing.T) {
	svc := NewMealService(newTestDB(t))
	_, err := svc.Get(9999)
	requireAPIError(t, err, http.StatusNotFound)
}

func TestMealUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	fix := seedCatalog(t, db)
	target := fix.Meals[1]

	updated, err := svc.Update(target.ID, map[string]interface{}{
		"category":    "Reworked",
		"ingredients": []interface{}{"2 eggs", "salt"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Reworked", updated.Category)
	assert.Equal(t, models.StringList{"2 eggs", "salt"}, updated.Ingredients)
	assert.Equal(t, target.Name, updated.Name, "untouched fields stay put")
}

func TestMealUpdateMissingIdIsNotFound(t *testing.T) {
	svc := NewMealService(newTestDB(t))
	_, err := svc.Update(1234, map[string]interface{}{"name": "X"})
	requireAPIError(t, err, http.StatusNotFound)
}

func TestMealUpdateEmptyFieldsIsBadRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	fix := seedCatalog(t, db)

	_, err := svc.Update(fix.Meals[0].ID, map[string]interface{}{})
	apiErr := requireAPIError(t, err, http.StatusBadRequest)
	assert.Equal(t, "no data", apiErr.Message)
}

func TestMealUpdateUnknownFieldIsBadRequest(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	fix := seedCatalog(t, db)

	_, err := svc.Update(fix.Meals[0].ID, map[string]interface{}{"nope": 1})
	requireAPIError(t, err, http.StatusBadRequest)
}

func TestMealDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewMealService(db)
	fix := seedCatalog(t, db)

	require.NoError(t, svc.Delete(fix.Meals[0].ID))

	_, err := svc.Get(fix.Meals[0].ID)
	requireAPIError(t, err, http.StatusNotFound)

	err = svc.Delete(fix.Meals[0].ID)
	requireAPIError(t, err, http.StatusNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	assert.EqualValues(t, len(fix.Meals)-1, count)
}

func TestDrinkCrud(t *testing.T) {
	db := newTestDB(t)
	svc := NewDrinkService(db)
	fix := seedCatalog(t, db)

	created, err := svc.Create(&models.Drink{
		Name:        "Mojito",
		Category:    "Cocktail",
		Type:        "Alcoholic",
		Glass:       "Highball glass",
		Ingredients: models.StringList{"2 oz rum", "mint"},
	})
	require.NoError(t, err)

	got, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.Create(&models.Drink{Name: fix.Drinks[0].Name})
	requireAPIError(t, err, http.StatusBadRequest)

	byType, err := svc.List(DrinkFilters{Type: "type2"})
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "D2", byType[0].Name)

	updated, err := svc.Update(created.ID, map[string]interface{}{"glass": "Collins glass"})
	require.NoError(t, err)
	assert.Equal(t, "Collins glass", updated.Glass)

	_, err = svc.Update(8888, map[string]interface{}{"glass": "X"})
	requireAPIError(t, err, http.StatusNotFound)

	require.NoError(t, svc.Delete(created.ID))
	err = svc.Delete(created.ID)
	requireAPIError(t, err, http.StatusNotFound)
}
