package routes

import (
	"github.com/sumeetkoyande/myFans/handlers/users"
	"github.com/sumeetkoyande/myFans/middleware"

	"github.com/gin-gonic/gin"
)

func UsersRoutes(r *gin.Engine) {
	usersRoutes := r.Group("/users")
	usersRoutes.Use(middleware.JWTAuth())
	{
		usersRoutes.GET("/profile", users.GetProfile)
		usersRoutes.PUT("/profile", users.UpdateProfile)
		usersRoutes.PUT("/password", users.ChangePassword)
		usersRoutes.PUT("/become-creator", users.BecomeCreator)
		usersRoutes.GET("/creators", users.GetCreators)
		usersRoutes.GET("/creator/:id", users.GetCreatorProfile)
	}
}
