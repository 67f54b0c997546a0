package models

import (
	"time"
)

// Subscription is a directed edge from subscriber to creator. A row with a
// null EndDate is active; the partial unique index keeps at most one active
// edge per pair.
type Subscription struct {
	ID           uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	SubscriberID uint       `json:"subscriberId" gorm:"column:subscriber_id;not null;index:idx_active_subscription,unique,where:end_date IS NULL"`
	CreatorID    uint       `json:"creatorId" gorm:"column:creator_id;not null;index:idx_active_subscription,unique,where:end_date IS NULL"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

type SubscribeInput struct {
	CreatorID uint `json:"creatorId" binding:"required"`
}

type SubscriptionStatus struct {
	IsSubscribed     bool       `json:"isSubscribed"`
	SubscriptionDate *time.Time `json:"subscriptionDate"`
	CreatorID        uint       `json:"creatorId"`
	NextBillingDate  *time.Time `json:"nextBillingDate"`
}
