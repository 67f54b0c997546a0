package payments

import (
	"fmt"
	"net/http"

	"github.com/sumeetkoyande/myFans/config"
	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"
	"github.com/sumeetkoyande/myFans/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	session "github.com/stripe/stripe-go/v82/checkout/session"
)

type checkoutInput struct {
	CreatorID uint `json:"creatorId" binding:"required"`
	// Amount in whole currency units.
	Amount int64 `json:"amount" binding:"required"`
}

// @Summary Start a subscription checkout
// @Description Create a Stripe Checkout session to subscribe to a creator. The subscription itself is created by the webhook once payment is confirmed.
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body checkoutInput true "Creator and amount"
// @Security BearerAuth
// @Success 200 {object} map[string]string "sessionId, url"
// @Failure 400 {object} map[string]string "error: Invalid amount"
// @Failure 403 {object} map[string]string "error: Can only subscribe to a creator"
// @Failure 404 {object} map[string]string "error: Creator not found"
// @Failure 500 {object} map[string]string "error: Stripe error"
// @Router /payments/subscribe [post]
func CreateCheckoutSession(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	userEmail := c.GetString("email")

	cfg := config.Get()
	stripe.Key = cfg.StripeSecretKey

	var input checkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if input.Amount < 1 || input.Amount > 99999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	if input.CreatorID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot subscribe to yourself"})
		return
	}

	var creator models.User
	if err := db.DB.First(&creator, "id = ?", input.CreatorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return
	}
	if !creator.IsCreator {
		c.JSON(http.StatusForbidden, gin.H{"error": "Can only subscribe to a creator"})
		return
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail:      stripe.String(userEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Subscription to creator %d", input.CreatorID)),
					},
					UnitAmount: stripe.Int64(input.Amount * 100),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(cfg.PaymentSuccessURL),
		CancelURL:  stripe.String(cfg.PaymentCancelURL),
	}
	params.AddMetadata("creatorId", fmt.Sprintf("%d", input.CreatorID))
	params.AddMetadata("subscriberId", fmt.Sprintf("%d", userID))

	s, err := session.New(params)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating Stripe session in CreateCheckoutSession")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Checkout session created in CreateCheckoutSession")
	c.JSON(http.StatusOK, gin.H{"sessionId": s.ID, "url": s.URL})
}
