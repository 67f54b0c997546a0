package models

import (
	"time"
)

type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "COMPLETED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
)

// Payment records a confirmed checkout for a subscription. StripeSessionId
// is unique so a redelivered webhook never books the same payment twice.
type Payment struct {
	ID              uint          `json:"id" gorm:"primaryKey;autoIncrement"`
	SubscriptionID  uint          `json:"subscriptionId" gorm:"column:subscription_id;not null;index"`
	Amount          int           `json:"amount"`
	Status          PaymentStatus `json:"status" gorm:"type:varchar(20);default:'COMPLETED'"`
	StripeSessionId string        `json:"stripeSessionId" gorm:"uniqueIndex"`
	PaidAt          time.Time     `json:"paidAt"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}

func (Payment) TableName() string {
	return "payments"
}

// CreatorEarnings aggregates the payments ledger for one creator.
type CreatorEarnings struct {
	TotalEarnings      int64                `json:"totalEarnings"`
	ThisMonthEarnings  int64                `json:"thisMonthEarnings"`
	SubscriberCount    int64                `json:"subscriberCount"`
	RecentTransactions []EarningTransaction `json:"recentTransactions"`
}

type EarningTransaction struct {
	ID              uint      `json:"id"`
	Amount          int       `json:"amount"`
	SubscriberEmail string    `json:"subscriberEmail"`
	PaidAt          time.Time `json:"paidAt"`
}
