package routes

import (
	"context"
	"os"

	"city-portal/cache"
	"city-portal/config"
	"city-portal/controllers"
	"city-portal/middleware"
	"city-portal/models"
	"city-portal/nav"
	"city-portal/repositories"
	"city-portal/rowstore"
	"city-portal/services"
	"city-portal/session"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	cfg := config.AppConfig

	authClient := session.NewClient(cfg.AuthURL, cfg.AuthAPIKey, cfg.JWTSecret)
	authClient.Restore(os.Getenv("PERSISTED_SESSION_TOKEN"))
	sessions := session.NewProvider(context.Background(), authClient)

	store := rowstore.New(models.DB)
	queryCache := cache.New(cache.NewRedisStore(models.RedisClient))

	profileSvc := services.NewProfileService(
		repositories.NewProfileRepository(store), queryCache, cfg.ProfileTTL)
	placeSvc := services.NewPlaceService(
		repositories.NewPlaceRepository(store), queryCache, cfg.PlacesTTL)

	authCtrl := controllers.NewAuthController(authClient)
	profileCtrl := controllers.NewProfileController(profileSvc)
	placeCtrl := controllers.NewPlaceController(placeSvc)
	navCtrl := controllers.NewNavController(sessions, nav.DefaultColors)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/login", authCtrl.Login)
	router.POST("/auth/logout", authCtrl.Logout)
	router.GET("/lugares", placeCtrl.GetAllPlaces)
	router.GET("/nav", navCtrl.GetNav)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(authClient.VerifyToken))
	{
		auth.GET("/perfil", profileCtrl.GetProfile)
		auth.PATCH("/perfil", profileCtrl.UpdateProfile)
		auth.DELETE("/perfil/avatar", profileCtrl.DeleteAvatar)
		auth.DELETE("/perfil/cover", profileCtrl.DeleteCover)
		auth.POST("/perfil/photo", profileCtrl.UploadPhoto)
	}
}
