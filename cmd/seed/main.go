package main

import (
	"log"

	"github.com/ctabo91/dreamhost-backend/config"
	"github.com/ctabo91/dreamhost-backend/importer"
	"github.com/ctabo91/dreamhost-backend/services"
)

// One-shot catalog seeding from TheMealDB and TheCocktailDB.
func main() {
	config.InitDB()

	seeder := importer.NewSeeder(
		importer.NewClient(),
		services.NewMealService(config.DB),
		services.NewDrinkService(config.DB),
	)

	inserted := seeder.Run()
	log.Printf("seeding finished, %d recipes inserted", inserted)
}
