package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/controllers"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/middlewares"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/services"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/storage"
	"github.com/aniket-chavan10/bcc-kuraloshi-sub000/utils"
)

// Deps carries everything the handlers need, built once in main.
type Deps struct {
	DB         *gorm.DB
	Store      storage.Uploader
	Cache      *services.ListCache
	Tokens     *utils.TokenManager
	AdminEmail string
	UploadDir  string
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	// Legacy path: files stored before the object-storage gateway existed.
	r.Static("/uploads", deps.UploadDir)

	info := controllers.NewInfoController(deps.DB, deps.Store, deps.Cache)
	players := controllers.NewPlayerController(deps.DB, deps.Store, deps.Cache)
	fixtures := controllers.NewFixtureController(deps.DB, deps.Store, deps.Cache)
	news := controllers.NewNewsController(deps.DB, deps.Store, deps.Cache)
	gallery := controllers.NewGalleryController(deps.DB, deps.Store, deps.Cache)
	carousel := controllers.NewCarouselController(deps.DB, deps.Store, deps.Cache)
	contact := controllers.NewContactController(deps.DB, deps.Store, deps.Cache)
	auth := controllers.NewAuthController(deps.DB, deps.AdminEmail, deps.Tokens)

	apiV1 := r.Group("/api/v1")
	{
		infoRoutes := apiV1.Group("/info")
		{
			infoRoutes.GET("", info.List)
			infoRoutes.GET("/latest", info.Latest)
			infoRoutes.POST("", info.Create)
			infoRoutes.PUT("/:id", info.Update)
		}

		playerRoutes := apiV1.Group("/players")
		{
			playerRoutes.GET("", players.List)
			playerRoutes.GET("/:id", players.Get)
			playerRoutes.POST("", players.Create)
			playerRoutes.PUT("/:id", players.Update)
			playerRoutes.PUT("/:id/stats", players.AddStats)
		}

		fixtureRoutes := apiV1.Group("/fixtures")
		{
			fixtureRoutes.GET("", fixtures.List)
			fixtureRoutes.GET("/:id", fixtures.Get)
			fixtureRoutes.POST("", fixtures.Create)
			fixtureRoutes.PUT("/:id", fixtures.Update)
		}

		newsRoutes := apiV1.Group("/news")
		{
			newsRoutes.GET("", news.List)
			newsRoutes.GET("/:id", news.Get)
			newsRoutes.POST("", news.Create)
			newsRoutes.PUT("/:id", news.Update)
		}

		galleryRoutes := apiV1.Group("/gallery")
		{
			galleryRoutes.GET("", gallery.List)
			galleryRoutes.GET("/:id", gallery.Get)
			galleryRoutes.POST("", gallery.Create)
			galleryRoutes.PUT("/:id", gallery.Update)
		}

		carouselRoutes := apiV1.Group("/carousel")
		{
			carouselRoutes.GET("", carousel.List)
			carouselRoutes.POST("", carousel.Create)
			carouselRoutes.PUT("/:id", carousel.Update)
		}

		contactRoutes := apiV1.Group("/contact")
		{
			contactRoutes.POST("", contact.Create)
			// Admin inbox for submitted messages.
			contactRoutes.GET("", middlewares.JWTAuthMiddleware(deps.Tokens), contact.List)
		}

		apiV1.POST("/auth/login", auth.Login)
	}

	return r
}
