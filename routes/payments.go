package routes

import (
	"github.com/sumeetkoyande/myFans/handlers/payments"
	"github.com/sumeetkoyande/myFans/middleware"

	"github.com/gin-gonic/gin"
)

func PaymentsRoutes(r *gin.Engine) {
	paymentsRoutes := r.Group("/payments")
	paymentsRoutes.Use(middleware.JWTAuth())
	{
		paymentsRoutes.POST("/subscribe", payments.CreateCheckoutSession)
		paymentsRoutes.GET("/history", payments.GetPaymentHistory)
		paymentsRoutes.GET("/creator/earnings", middleware.CreatorAuth(), payments.GetCreatorEarnings)
	}

	// The webhook authenticates through the Stripe signature, not a JWT.
	r.POST("/payments/webhook", payments.StripeWebhookHandler)
}
