package controllers

import (
	"net/http"

	"github.com/ctabo91/dreamhost-backend/models"
	"github.com/ctabo91/dreamhost-backend/services"
	"github.com/ctabo91/dreamhost-backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users    *services.UserService
	personal *services.PersonalService
}

func NewUserController(users *services.UserService, personal *services.PersonalService) *UserController {
	return &UserController{users: users, personal: personal}
}

func (ct *UserController) Get(c *gin.Context) {
	profile, err := ct.users.Get(c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": profile})
}

func (ct *UserController) Update(c *gin.Context) {
	fields, ok := bindPartial(c)
	if !ok {
		return
	}

	user, err := ct.users.Update(c.Param("username"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (ct *UserController) Delete(c *gin.Context) {
	username := c.Param("username")
	if err := ct.users.Delete(username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": username})
}

func (ct *UserController) MarkFavorite(c *gin.Context) {
	ct.favorite(c, true)
}

func (ct *UserController) UnmarkFavorite(c *gin.Context) {
	ct.favorite(c, false)
}

func (ct *UserController) favorite(c *gin.Context, mark bool) {
	username := c.Param("username")
	kind, err := models.ParseRecipeKind(c.Param("kind"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	switch {
	case mark && kind == models.KindMeal:
		err = ct.users.MarkFavMeal(username, id)
	case mark && kind == models.KindDrink:
		err = ct.users.MarkFavDrink(username, id)
	case kind == models.KindMeal:
		err = ct.users.UnmarkFavMeal(username, id)
	default:
		err = ct.users.UnmarkFavDrink(username, id)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	verb := "unmarked"
	if mark {
		verb = "marked"
	}
	c.JSON(http.StatusOK, gin.H{verb: id})
}

func (ct *UserController) ListPersonal(c *gin.Context) {
	kind, err := models.ParseRecipeKind(c.Param("kind"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	recipes, err := ct.personal.List(c.Param("username"), kind)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (ct *UserController) CreatePersonal(c *gin.Context) {
	username := c.Param("username")
	kind, err := models.ParseRecipeKind(c.Param("kind"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	var input services.PersonalRecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err.Error())
		return
	}

	// Base64 thumbnails are swapped for their public URL before storage.
	if thumb, err := utils.UploadThumbnail(input.Thumbnail, username); err != nil {
		respondError(c, err)
		return
	} else {
		input.Thumbnail = thumb
	}

	recipe, err := ct.personal.Create(username, kind, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"recipe": recipe})
}

func (ct *UserController) GetPersonal(c *gin.Context) {
	kind, err := models.ParseRecipeKind(c.Param("kind"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	recipe, err := ct.personal.Get(c.Param("username"), kind, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (ct *UserController) UpdatePersonal(c *gin.Context) {
	username := c.Param("username")
	kind, err := models.ParseRecipeKind(c.Param("kind"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	fields, ok := bindPartial(c)
	if !ok {
		return
	}

	if raw, found := fields["thumbnail"]; found {
		if thumbStr, isStr := raw.(string); isStr {
			thumb, err := utils.UploadThumbnail(thumbStr, username)
			if err != nil {
				respondError(c, err)
				return
			}
			fields["thumbnail"] = thumb
		}
	}

	recipe, err := ct.personal.Update(username, kind, id, fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}

func (ct *UserController) DeletePersonal(c *gin.Context) {
	kind, err := models.ParseRecipeKind(c.Param("kind"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ct.personal.Delete(c.Param("username"), kind, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
