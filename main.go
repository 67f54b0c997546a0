package main

import (
	"log"

	"github.com/sumeetkoyande/myFans/config"
	"github.com/sumeetkoyande/myFans/db"
	_ "github.com/sumeetkoyande/myFans/docs"
	"github.com/sumeetkoyande/myFans/routes"
	"github.com/sumeetkoyande/myFans/utils"

	"github.com/gin-gonic/gin"
)

// @title myFans API
// @version 1.0
// @description Subscription content platform: creators publish public or premium photos, accounts subscribe to creators through Stripe checkout.
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Provide the JWT with the Bearer prefix: Bearer <JWT>
func main() {
	gin.SetMode(gin.ReleaseMode)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		utils.LogError(err, "Cloudinary initialization failed, photo uploads will not work")
	}

	r := routes.SetupRouter()

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Error starting the server: ", err)
	}
}
