package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"sweetspott/cmd/fx/account_fx"
	"sweetspott/cmd/fx/controllers_fx"
	"sweetspott/cmd/fx/db_fx"
	"sweetspott/cmd/fx/memcache_fx"
	"sweetspott/cmd/fx/places_fx"
	"sweetspott/cmd/fx/showcase_fx"
	"sweetspott/internal/api/controllers"
	"sweetspott/internal/infra"
	"sweetspott/internal/services"
	"sweetspott/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		places_fx.Module,
		showcase_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(PrepareShowcase),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func PrepareShowcase(db *gorm.DB, showcase services.ShowcaseServiceInterface) {
	infra.SeedShowcasePlaces(db)

	// Embedding the catalog can take a while; don't block startup.
	go func() {
		if err := showcase.ReindexEmbeddings(context.Background()); err != nil {
			log.Printf("Showcase embedding reindex failed: %v", err)
		}
	}()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	placesController *controllers.PlacesController,
	showcaseController *controllers.ShowcaseController,
	accountController *controllers.AccountController,
	submissionController *controllers.SubmissionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, placesController, showcaseController, accountController, submissionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	showcaseController *controllers.ShowcaseController,
	accountController *controllers.AccountController,
	submissionController *controllers.SubmissionController) {

	placesGroup := r.Group("/places")
	placesGroup.GET("", placesController.Discover)
	placesGroup.GET("/photo", placesController.GetPlacePhoto)
	placesGroup.GET("/:id", placesController.GetPlaceById)

	showcaseGroup := r.Group("/showcase")
	showcaseGroup.GET("", showcaseController.ListShowcase)
	showcaseGroup.GET("/similar", showcaseController.FindSimilar)
	showcaseGroup.GET("/:slug", showcaseController.GetShowcasePlace)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	submissionsGroup := r.Group("/submissions")
	submissionsGroup.Use(middleware.JWTAuthMiddleware())
	submissionsGroup.POST("", submissionController.Submit)
}
