package routes

import (
	"github.com/sumeetkoyande/myFans/handlers/subscriptions"
	"github.com/sumeetkoyande/myFans/middleware"

	"github.com/gin-gonic/gin"
)

func SubscriptionsRoutes(r *gin.Engine) {
	subscriptionRoutes := r.Group("/subscriptions")
	subscriptionRoutes.Use(middleware.JWTAuth())
	{
		subscriptionRoutes.POST("/subscribe", subscriptions.SubscribeHandler)
		subscriptionRoutes.DELETE("/:creatorId", subscriptions.Unsubscribe)
		subscriptionRoutes.GET("/my-subscriptions", subscriptions.GetMySubscriptions)
		subscriptionRoutes.GET("/my-subscribers", middleware.CreatorAuth(), subscriptions.GetMySubscribers)
		subscriptionRoutes.GET("/status/:creatorId", subscriptions.GetSubscriptionStatus)
		subscriptionRoutes.GET("/creator-ids", subscriptions.GetSubscribedCreatorIDs)
	}
}
