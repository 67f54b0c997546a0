package subscriptions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sumeetkoyande/myFans/access"
	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"
	"github.com/sumeetkoyande/myFans/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Subscribe creates the ledger edge for the pair. It is idempotent: when an
// active edge already exists it is returned unchanged, so a redelivered
// payment webhook never produces a duplicate. The partial unique index on
// (subscriber_id, creator_id) backs this up under concurrent inserts.
func Subscribe(subscriberID, creatorID uint) (*models.Subscription, bool, error) {
	var existing models.Subscription
	err := db.DB.Where("subscriber_id = ? AND creator_id = ? AND end_date IS NULL",
		subscriberID, creatorID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	subscription := models.Subscription{
		SubscriberID: subscriberID,
		CreatorID:    creatorID,
		StartDate:    time.Now(),
	}
	if err := db.DB.Create(&subscription).Error; err != nil {
		return nil, false, err
	}
	return &subscription, true, nil
}

// validateCreator checks the target account exists and is an active creator.
func validateCreator(c *gin.Context, creatorID uint) (models.User, bool) {
	var creator models.User
	if err := db.DB.First(&creator, "id = ?", creatorID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Creator not found"})
		return creator, false
	}
	if !creator.IsCreator {
		c.JSON(http.StatusForbidden, gin.H{"error": "Can only subscribe to a creator"})
		return creator, false
	}
	return creator, true
}

// @Summary Subscribe to a creator
// @Description Create a subscription to a creator. Subscribing twice is a no-op returning the existing subscription.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param subscription body models.SubscribeInput true "Creator to subscribe to"
// @Security BearerAuth
// @Success 200 {object} models.Subscription "already subscribed"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} map[string]string "error: Cannot subscribe to yourself"
// @Failure 403 {object} map[string]string "error: Can only subscribe to a creator"
// @Failure 404 {object} map[string]string "error: Creator not found"
// @Router /subscriptions/subscribe [post]
func SubscribeHandler(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input models.SubscribeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Self-subscription is forbidden; this precondition lives here in the
	// calling layer, not in the ledger write.
	if input.CreatorID == userID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot subscribe to yourself"})
		return
	}

	if _, ok := validateCreator(c, input.CreatorID); !ok {
		return
	}

	subscription, created, err := Subscribe(userID, input.CreatorID)
	if err != nil {
		utils.LogErrorWithUser(userID, err, "Error creating subscription in SubscribeHandler")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating subscription"})
		return
	}

	if created {
		utils.LogSuccessWithUser(userID, "Subscription created in SubscribeHandler")
		c.JSON(http.StatusCreated, subscription)
		return
	}
	c.JSON(http.StatusOK, subscription)
}

// @Summary Unsubscribe from a creator
// @Description Remove the subscription edge for the pair
// @Tags subscriptions
// @Produce json
// @Param creatorId path int true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "message: Successfully unsubscribed"
// @Failure 404 {object} map[string]string "error: Subscription not found"
// @Router /subscriptions/{creatorId} [delete]
func Unsubscribe(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	creatorID, err := strconv.ParseUint(c.Param("creatorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return
	}

	var subscription models.Subscription
	if err := db.DB.Where("subscriber_id = ? AND creator_id = ?", userID, uint(creatorID)).
		First(&subscription).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
		return
	}

	if err := db.DB.Delete(&subscription).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting subscription: " + err.Error()})
		return
	}

	utils.LogSuccessWithUser(userID, "Subscription removed in Unsubscribe")
	c.JSON(http.StatusOK, gin.H{"message": "Successfully unsubscribed"})
}

// @Summary List own subscriptions
// @Description Return every subscription of the authenticated account
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Router /subscriptions/my-subscriptions [get]
func GetMySubscriptions(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	subscriptions := []models.Subscription{}
	if err := db.DB.Where("subscriber_id = ?", userID).
		Order("created_at DESC").
		Find(&subscriptions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subscriptions"})
		return
	}

	c.JSON(http.StatusOK, subscriptions)
}

// @Summary List own subscribers
// @Description Return every subscription pointing at the authenticated creator
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Subscription
// @Failure 403 {object} map[string]string "error: Creator role required"
// @Router /subscriptions/my-subscribers [get]
func GetMySubscribers(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	subscribers := []models.Subscription{}
	if err := db.DB.Where("creator_id = ?", userID).
		Order("created_at DESC").
		Find(&subscribers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subscribers"})
		return
	}

	c.JSON(http.StatusOK, subscribers)
}

// @Summary Subscription status towards a creator
// @Description Report whether the caller subscribes to the creator, with dates
// @Tags subscriptions
// @Produce json
// @Param creatorId path int true "Creator ID"
// @Security BearerAuth
// @Success 200 {object} models.SubscriptionStatus
// @Router /subscriptions/status/{creatorId} [get]
func GetSubscriptionStatus(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	creatorID, err := strconv.ParseUint(c.Param("creatorId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid creator ID"})
		return
	}

	status := models.SubscriptionStatus{CreatorID: uint(creatorID)}

	var subscription models.Subscription
	result := db.DB.Where("subscriber_id = ? AND creator_id = ?", userID, uint(creatorID)).
		First(&subscription)
	if result.Error == nil {
		nextBilling := subscription.StartDate.AddDate(0, 0, 30)
		status.IsSubscribed = true
		status.SubscriptionDate = &subscription.StartDate
		status.NextBillingDate = &nextBilling
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subscription"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Subscribed creator ids
// @Description Return the ids of every creator the caller subscribes to
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]int "creatorIds"
// @Router /subscriptions/creator-ids [get]
func GetSubscribedCreatorIDs(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	ids, err := access.SubscribedCreatorIDs(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching subscriptions"})
		return
	}
	if ids == nil {
		ids = []uint{}
	}

	c.JSON(http.StatusOK, gin.H{"creatorIds": ids})
}
