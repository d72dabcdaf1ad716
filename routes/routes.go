package routes

import (
	"github.com/ctabo91/dreamhost-backend/controllers"
	"github.com/ctabo91/dreamhost-backend/middlewares"
	"github.com/ctabo91/dreamhost-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	mealCt := controllers.NewMealController(services.NewMealService(db))
	drinkCt := controllers.NewDrinkController(services.NewDrinkService(db))
	userSvc := services.NewUserService(db)
	userCt := controllers.NewUserController(userSvc, services.NewPersonalService(db))
	authCt := controllers.NewAuthController(userSvc)

	r := gin.Default()
	r.Use(middlewares.Identity())

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCt.Register)
		auth.POST("/login", authCt.Login)
	}

	// Catalog reads are public; writes need any valid identity.
	meals := r.Group("/meals")
	{
		meals.GET("", mealCt.List)
		meals.GET("/:id", mealCt.Get)
		meals.POST("", middlewares.RequireAuth(), mealCt.Create)
		meals.PATCH("/:id", middlewares.RequireAuth(), mealCt.Update)
		meals.DELETE("/:id", middlewares.RequireAuth(), mealCt.Delete)
	}

	drinks := r.Group("/drinks")
	{
		drinks.GET("", drinkCt.List)
		drinks.GET("/:id", drinkCt.Get)
		drinks.POST("", middlewares.RequireAuth(), drinkCt.Create)
		drinks.PATCH("/:id", middlewares.RequireAuth(), drinkCt.Update)
		drinks.DELETE("/:id", middlewares.RequireAuth(), drinkCt.Delete)
	}

	// Everything under a username is gated on that same identity.
	users := r.Group("/users/:username")
	users.Use(middlewares.RequireSameUser())
	{
		users.GET("", userCt.Get)
		users.PATCH("", userCt.Update)
		users.DELETE("", userCt.Delete)

		users.POST("/favorites/:kind/:id", userCt.MarkFavorite)
		users.DELETE("/favorites/:kind/:id", userCt.UnmarkFavorite)

		users.GET("/personal/:kind", userCt.ListPersonal)
		users.POST("/personal/:kind", userCt.CreatePersonal)
		users.GET("/personal/:kind/:id", userCt.GetPersonal)
		users.PATCH("/personal/:kind/:id", userCt.UpdatePersonal)
		users.DELETE("/personal/:kind/:id", userCt.DeletePersonal)
	}

	return r
}
