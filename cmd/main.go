package main

import (
	"os"

	"github.com/ctabo91/dreamhost-backend/config"
	"github.com/ctabo91/dreamhost-backend/routes"
	"github.com/ctabo91/dreamhost-backend/utils"
)

func main() {
	config.InitDB()
	if os.Getenv("S3_BUCKET") != "" {
		utils.InitS3()
	}
	r := routes.SetupRouter(config.DB)
	r.Run(":8080")
}
