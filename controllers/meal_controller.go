package controllers

import (
	"net/http"

	"github.com/ctabo91/dreamhost-backend/models"
	"github.com/ctabo91/dreamhost-backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals *services.MealService
}

func NewMealController(meals *services.MealService) *MealController {
	return &MealController{meals: meals}
}

type MealInput struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category"`
	Area         string   `json:"area"`
	Instructions string   `json:"instructions"`
	Thumbnail    string   `json:"thumbnail"`
	Ingredients  []string `json:"ingredients"`
}

func (ct *MealController) List(c *gin.Context) {
	meals, err := ct.meals.List(services.MealFilters{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Area:     c.Query("area"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

func (ct *MealController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	meal, err := ct.meals.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (ct *MealController) Create(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	meal, err := ct.meals.Create(&models.Meal{
		Name:         input.Name,
		Category:     input.Category,
		Area:         input.Area,
		Instructions: input.Instructions,
		Thumbnail:    input.Thumbnail,
		Ingredients:  models.StringList(input.Ingredients),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal})
}

func (ct *MealController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindPartial(c)
	if !ok {
		return
	}

	meal, err := ct.meals.Update(id, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

func (ct *MealController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ct.meals.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
