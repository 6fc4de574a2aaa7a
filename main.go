package main

import (
	"log"

	"ekoclub-backend/db"
	_ "ekoclub-backend/docs"
	"ekoclub-backend/payments"
	"ekoclub-backend/routes"
	"ekoclub-backend/utils"

	"github.com/gin-gonic/gin"
)

// @title API Eko Club International
// @version 1.0
// @description API for the Eko Club International website and back office
// @host localhost:8080
// @BasePath /
// @SecurityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter the JWT with the Bearer prefix: Bearer <JWT>
func main() {

	gin.SetMode(gin.ReleaseMode)

	db.InitDB()

	if err := utils.InitCloudinary(); err != nil {
		log.Printf("Warning: Cloudinary initialization failed: %v", err)
		log.Println("Image uploads will not work properly.")
	}

	// Gateway secrets are loaded once here and injected into the adapters.
	billingConfig := payments.LoadConfig()
	if missing := billingConfig.MissingSecrets(); len(missing) > 0 {
		log.Printf("Warning: missing payment gateway secrets: %v", missing)
		log.Println("Recurring charges for the affected providers will fail.")
	}
	payments.Init(billingConfig)

	r := routes.SetupRouter()

	if err := r.Run(":8080"); err != nil {
		log.Fatal("Error starting the server:", err)
	}
}
