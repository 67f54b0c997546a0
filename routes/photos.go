package routes

import (
	"github.com/sumeetkoyande/myFans/handlers/photos"
	"github.com/sumeetkoyande/myFans/handlers/photos/comments"
	"github.com/sumeetkoyande/myFans/handlers/photos/likes"
	"github.com/sumeetkoyande/myFans/middleware"

	"github.com/gin-gonic/gin"
)

func PhotosRoutes(r *gin.Engine) {
	photosRoutes := r.Group("/photos")
	photosRoutes.Use(middleware.JWTAuth())
	{
		photosRoutes.POST("", middleware.CreatorAuth(), photos.UploadPhoto)
		photosRoutes.GET("", photos.ListPhotos)
		photosRoutes.GET("/:id", photos.GetPhoto)
		photosRoutes.PUT("/:id", photos.UpdatePhoto)
		photosRoutes.DELETE("/:id", photos.DeletePhoto)
		photosRoutes.GET("/creator/:id", photos.GetCreatorGallery)

		photosRoutes.POST("/:id/like", likes.LikePhoto)
		photosRoutes.DELETE("/:id/like", likes.UnlikePhoto)
		photosRoutes.GET("/:id/likes", likes.GetPhotoLikes)

		photosRoutes.POST("/:id/comments", comments.CreateComment)
		photosRoutes.GET("/:id/comments", comments.GetComments)
		photosRoutes.DELETE("/comments/:commentId", comments.DeleteComment)
	}
}
