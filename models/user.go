package models

import (
	"time"
)

// User is both a regular account and, once IsCreator is set, a content
// creator. The creator transition is one-way.
type User struct {
	ID                uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Email             string    `json:"email" gorm:"uniqueIndex;not null" binding:"required,email"`
	Password          string    `json:"-" gorm:"not null"`
	Name              string    `json:"name"`
	Bio               string    `json:"bio" gorm:"type:text"`
	Avatar            string    `json:"avatar"`
	ProfileImage      string    `json:"profileImage"`
	SubscriptionPrice int       `json:"subscriptionPrice"`
	IsCreator         bool      `json:"isCreator" gorm:"default:false"`
	IsActive          bool      `json:"isActive" gorm:"default:true"`
	StripeCustomerId  string    `json:"stripeCustomerId,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

type RegisterInput struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	IsCreator bool   `json:"isCreator"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ProfileUpdate struct {
	Name         *string `json:"name"`
	Bio          *string `json:"bio"`
	Avatar       *string `json:"avatar"`
	ProfileImage *string `json:"profileImage"`
}

type PasswordUpdate struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type BecomeCreatorInput struct {
	SubscriptionPrice int `json:"subscriptionPrice" binding:"required"`
}

// CreatorSummary is the public card returned by the creator listings.
// PhotoCount and SubscriberCount are computed from the database.
type CreatorSummary struct {
	ID                uint      `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	Bio               string    `json:"bio"`
	Avatar            string    `json:"avatar"`
	SubscriptionPrice int       `json:"subscriptionPrice"`
	PhotoCount        int64     `json:"photoCount"`
	SubscriberCount   int64     `json:"subscriberCount"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
}
