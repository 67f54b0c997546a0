package routes

import (
	"time"

	"github.com/sumeetkoyande/myFans/handlers/ping"
	"github.com/sumeetkoyande/myFans/middleware"
	"github.com/sumeetkoyande/myFans/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRouter() *gin.Engine {
	gin.DefaultWriter = utils.LogWriter()

	r := gin.Default()
	r.Use(middleware.Metrics())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/ping", ping.Ping)

	AuthRoutes(r)
	UsersRoutes(r)
	PhotosRoutes(r)
	SubscriptionsRoutes(r)
	PaymentsRoutes(r)

	return r
}
