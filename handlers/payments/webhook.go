package payments

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sumeetkoyande/myFans/config"
	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/handlers/subscriptions"
	"github.com/sumeetkoyande/myFans/models"
	"github.com/sumeetkoyande/myFans/utils"

	"github.com/gin-gonic/gin"
	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// StripeWebhookHandler receives the asynchronous payment confirmations. The
// delivery may repeat, so everything downstream must tolerate replays: the
// subscribe call is idempotent and payments are unique per session id.
func StripeWebhookHandler(c *gin.Context) {
	const MaxBodyBytes = int64(65536)
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes)

	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not read request body"})
		return
	}

	secret := config.Get().StripeWebhookSecret
	if secret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	sig := c.GetHeader("Stripe-Signature")
	event, err := webhook.ConstructEvent(payload, sig, secret)
	if err != nil {
		utils.LogError(err, "Stripe signature verification failed in StripeWebhookHandler")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stripe signature verification failed"})
		return
	}

	switch event.Type {
	case "checkout.session.completed":
		handleCheckoutSessionCompleted(c, event)
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Event ignored"})
	}
}

func handleCheckoutSessionCompleted(c *gin.Context, event stripe.Event) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error parsing checkout session"})
		return
	}

	// Malformed metadata is logged and rejected rather than dropped silently:
	// a confirmation that cannot be attributed is an incident, not a no-op.
	subscriberID, creatorID, err := parseSessionMetadata(session.Metadata)
	if err != nil {
		utils.LogError(err, "Invalid checkout metadata in handleCheckoutSessionCompleted")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid checkout metadata: " + err.Error()})
		return
	}

	subscription, created, err := subscriptions.Subscribe(subscriberID, creatorID)
	if err != nil {
		utils.LogError(err, "Error creating subscription in handleCheckoutSessionCompleted")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating subscription"})
		return
	}

	if err := recordPayment(subscription.ID, session); err != nil {
		utils.LogError(err, "Error recording payment in handleCheckoutSessionCompleted")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error recording payment"})
		return
	}

	utils.LogSuccessWithUser(subscriberID, "Checkout confirmed in handleCheckoutSessionCompleted")
	if created {
		c.JSON(http.StatusOK, gin.H{"message": "Subscription created"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription already existed"})
}

func parseSessionMetadata(metadata map[string]string) (subscriberID, creatorID uint, err error) {
	if metadata == nil {
		return 0, 0, errors.New("missing metadata")
	}

	rawSubscriber, okSub := metadata["subscriberId"]
	rawCreator, okCre := metadata["creatorId"]
	if !okSub || !okCre {
		return 0, 0, errors.New("missing subscriberId or creatorId")
	}

	sub, err := strconv.ParseUint(rawSubscriber, 10, 32)
	if err != nil {
		return 0, 0, errors.New("subscriberId is not a valid id")
	}
	cre, err := strconv.ParseUint(rawCreator, 10, 32)
	if err != nil {
		return 0, 0, errors.New("creatorId is not a valid id")
	}

	return uint(sub), uint(cre), nil
}

// recordPayment books the confirmed checkout once. A replayed event hits the
// existing row and is skipped.
func recordPayment(subscriptionID uint, session stripe.CheckoutSession) error {
	if session.ID == "" {
		return errors.New("checkout session has no id")
	}

	var existing models.Payment
	if err := db.DB.First(&existing, "stripe_session_id = ?", session.ID).Error; err == nil {
		return nil
	}

	payment := models.Payment{
		SubscriptionID:  subscriptionID,
		Amount:          int(session.AmountTotal),
		Status:          models.PaymentCompleted,
		StripeSessionId: session.ID,
		PaidAt:          time.Now(),
	}
	return db.DB.Create(&payment).Error
}
