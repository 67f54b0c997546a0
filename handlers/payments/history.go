package payments

import (
	"net/http"
	"time"

	"github.com/sumeetkoyande/myFans/db"
	"github.com/sumeetkoyande/myFans/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type paymentEntry struct {
	ID           uint                 `json:"id"`
	Amount       int                  `json:"amount"`
	Status       models.PaymentStatus `json:"status"`
	CreatorID    uint                 `json:"creatorId"`
	CreatorName  string               `json:"creatorName"`
	CreatorEmail string               `json:"creatorEmail"`
	PaidAt       time.Time            `json:"paidAt"`
}

// @Summary Payment history
// @Description Return the caller's payments, newest first, optionally filtered by status
// @Tags payments
// @Produce json
// @Param status query string false "Filter by payment status"
// @Security BearerAuth
// @Success 200 {array} paymentEntry
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /payments/history [get]
func GetPaymentHistory(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	history := []paymentEntry{}
	query := db.DB.Model(&models.Payment{}).
		Select(`payments.id, payments.amount, payments.status, payments.paid_at,
			subscriptions.creator_id, users.name AS creator_name, users.email AS creator_email`).
		Joins("JOIN subscriptions ON subscriptions.id = payments.subscription_id").
		Joins("JOIN users ON users.id = subscriptions.creator_id").
		Where("subscriptions.subscriber_id = ?", userID).
		Order("payments.paid_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("payments.status = ?", status)
	}

	if err := query.Scan(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving payment history: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, history)
}

// @Summary Creator earnings
// @Description Aggregate the payments ledger for the authenticated creator: totals, current month, subscriber count and recent transactions
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.CreatorEarnings
// @Failure 403 {object} map[string]string "error: Creator role required"
// @Failure 500 {object} map[string]string "error: Error message"
// @Router /payments/creator/earnings [get]
func GetCreatorEarnings(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	earnings := models.CreatorEarnings{
		RecentTransactions: []models.EarningTransaction{},
	}

	base := func() *gorm.DB {
		return db.DB.Model(&models.Payment{}).
			Joins("JOIN subscriptions ON subscriptions.id = payments.subscription_id").
			Where("subscriptions.creator_id = ?", userID).
			Where("payments.status = ?", models.PaymentCompleted)
	}

	if err := base().
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&earnings.TotalEarnings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing earnings: " + err.Error()})
		return
	}

	monthStart := startOfMonth(time.Now())
	if err := base().
		Where("payments.paid_at >= ?", monthStart).
		Select("COALESCE(SUM(payments.amount), 0)").
		Scan(&earnings.ThisMonthEarnings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error computing earnings: " + err.Error()})
		return
	}

	if err := db.DB.Model(&models.Subscription{}).
		Where("creator_id = ?", userID).
		Count(&earnings.SubscriberCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting subscribers: " + err.Error()})
		return
	}

	if err := base().
		Select(`payments.id, payments.amount, payments.paid_at, users.email AS subscriber_email`).
		Joins("JOIN users ON users.id = subscriptions.subscriber_id").
		Order("payments.paid_at DESC").
		Limit(10).
		Scan(&earnings.RecentTransactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving transactions: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, earnings)
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
