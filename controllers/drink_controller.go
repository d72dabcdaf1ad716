package controllers

import (
	"net/http"

	"github.com/ctabo91/dreamhost-backend/models"
	"github.com/ctabo91/dreamhost-backend/services"

	"github.com/gin-gonic/gin"
)

type DrinkController struct {
	drinks *services.DrinkService
}

func NewDrinkController(drinks *services.DrinkService) *DrinkController {
	return &DrinkController{drinks: drinks}
}

type DrinkInput struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category"`
	Type         string   `json:"type"`
	Glass        string   `json:"glass"`
	Instructions string   `json:"instructions"`
	Thumbnail    string   `json:"thumbnail"`
	Ingredients  []string `json:"ingredients"`
}

func (ct *DrinkController) List(c *gin.Context) {
	drinks, err := ct.drinks.List(services.DrinkFilters{
		Name:     c.Query("name"),
		Category: c.Query("category"),
		Type:     c.Query("type"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drinks": drinks})
}

func (ct *DrinkController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	drink, err := ct.drinks.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drink": drink})
}

func (ct *DrinkController) Create(c *gin.Context) {
	var input DrinkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	drink, err := ct.drinks.Create(&models.Drink{
		Name:         input.Name,
		Category:     input.Category,
		Type:         input.Type,
		Glass:        input.Glass,
		Instructions: input.Instructions,
		Thumbnail:    input.Thumbnail,
		Ingredients:  models.StringList(input.Ingredients),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"drink": drink})
}

func (ct *DrinkController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindPartial(c)
	if !ok {
		return
	}

	drink, err := ct.drinks.Update(id, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"drink": drink})
}

func (ct *DrinkController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := ct.drinks.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
